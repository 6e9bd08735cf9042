package dataset

import (
	"fmt"

	"github.com/dtnitsch/article-stats/models"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML sequence of mappings.
func ParseYAML(data []byte) (models.Dataset, error) {
	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid YAML dataset: %w", err)
	}

	ds := make(models.Dataset, 0, len(raw))
	for _, obj := range raw {
		row := make(models.Row, len(obj))
		for k, v := range obj {
			if i, ok := v.(int); ok {
				v = int64(i)
			}
			row[k] = v
		}
		ds = append(ds, row)
	}
	return ds, nil
}
