package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/dtnitsch/article-stats/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource locates a collection of article documents.
type MongoSource struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// LoadMongo reads every document of the collection in natural order.
func LoadMongo(ctx context.Context, src MongoSource) (models.Dataset, error) {
	timeout := src.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(src.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background()) // Disconnect error less important than read result
	}()

	cursor, err := client.Database(src.Database).Collection(src.Collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query %s.%s: %w", src.Database, src.Collection, err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read %s.%s: %w", src.Database, src.Collection, err)
	}
	return rowsFromBSON(docs), nil
}

func rowsFromBSON(docs []bson.M) models.Dataset {
	ds := make(models.Dataset, 0, len(docs))
	for _, doc := range docs {
		row := make(models.Row, len(doc))
		for k, v := range doc {
			row[k] = bsonValue(v)
		}
		ds = append(ds, row)
	}
	return ds
}

func bsonValue(v any) any {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case primitive.ObjectID:
		return x.Hex()
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Decimal128:
		return x.String()
	default:
		return v
	}
}
