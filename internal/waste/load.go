package waste

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema a custom catalog file must satisfy.
// Tag values and difficulty bounds are enforced here so that a loaded
// catalog needs no further per-item validation at runtime.
var catalogSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":                 "object",
		"required":             []any{"name", "types", "difficulty", "image_url"},
		"additionalProperties": false,
		"properties": map[string]any{
			"name": map[string]any{"type": "string", "minLength": 1},
			"types": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "string",
					"enum": []any{"Plastik", "Papier", "Biologisch", "Sonstige", "Giftig"},
				},
			},
			"difficulty": map[string]any{"type": "integer", "minimum": 1, "maximum": 3},
			"image_url":  map[string]any{"type": "string"},
		},
	},
}

type itemFile struct {
	Name       string   `json:"name"`
	Types      []string `json:"types"`
	Difficulty int      `json:"difficulty"`
	ImageURL   string   `json:"image_url"`
}

// Load reads a catalog from a JSON file, validates it against the catalog
// schema, and checks the starter-item precondition. Any failure here is a
// configuration error and should abort startup.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	compiled, err := compileCatalogSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	var entries []itemFile
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}

	catalog := make(Catalog, 0, len(entries))
	for _, e := range entries {
		item := Item{
			Name:       e.Name,
			Difficulty: e.Difficulty,
			ImageURL:   e.ImageURL,
		}
		for _, s := range e.Types {
			t, err := ParseType(s)
			if err != nil {
				return nil, fmt.Errorf("item %q: %w", e.Name, err)
			}
			item.Types = append(item.Types, t)
		}
		catalog = append(catalog, item)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://waste-catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
