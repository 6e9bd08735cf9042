package main

import (
	"testing"

	"github.com/urfave/cli/v2"
)

func TestMongoSourceDefaults(t *testing.T) {
	want := map[string]string{
		"mongo-db":         "amadeus",
		"mongo-collection": "vc_new",
		"db-driver":        "sqlite",
	}

	for _, f := range inputFlags {
		sf, ok := f.(*cli.StringFlag)
		if !ok {
			continue
		}
		if w, ok := want[sf.Name]; ok {
			if sf.Value != w {
				t.Errorf("--%s default = %q, want %q", sf.Name, sf.Value, w)
			}
			delete(want, sf.Name)
		}
	}

	for name := range want {
		t.Errorf("input flag --%s not defined", name)
	}
}
