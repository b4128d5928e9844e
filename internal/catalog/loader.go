package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema every external topic catalog file must
// satisfy before it is merged. Mirrors the Template contract.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"levels": map[string]any{
			"type": "object",
			"patternProperties": map[string]any{
				"^[1-4]$": map[string]any{
					"type":  "array",
					"items": templateSchema,
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"name", "levels"},
	"additionalProperties": false,
}

var templateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"type": map[string]any{"type": "string", "minLength": 1},
		"cognitive_domain": map[string]any{
			"type": "string",
			"enum": []any{"recall", "concept", "procedural", "analytical", "problem_solving", "higher_order"},
		},
		"text_pattern": map[string]any{"type": "string", "minLength": 1},
		"parameters": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"min":  map[string]any{"type": "integer"},
					"max":  map[string]any{"type": "integer"},
					"step": map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"min", "max"},
				"additionalProperties": false,
			},
		},
		"solution": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"kind": map[string]any{
					"type": "string",
					"enum": []any{"const", "choice", "product", "sum"},
				},
				"params": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"a":      map[string]any{"type": "number"},
				"b":      map[string]any{"type": "number"},
				"choice": map[string]any{"type": "integer", "minimum": 0},
			},
			"required":             []any{"kind"},
			"additionalProperties": false,
		},
		"hint": map[string]any{"type": "string"},
		"fixed_choices": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": 2,
		},
	},
	"required":             []any{"type", "cognitive_domain", "text_pattern", "solution"},
	"additionalProperties": false,
}

// SchemaDefinition returns the topic catalog JSON Schema as a map, for
// callers that need to hand the contract to another validator.
func SchemaDefinition() map[string]any {
	return catalogSchema
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledCatalogSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip through
		// encoding/json to normalize the map literal.
		raw, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal catalog schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse catalog schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://topic-catalog.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://topic-catalog.json")
	})
	return compiledSchema, compileErr
}

// fileCatalog is the on-disk shape: level keys are JSON object keys.
type fileCatalog struct {
	Name   string                `json:"name"`
	Levels map[string][]Template `json:"levels"`
}

// ParseCatalog validates raw JSON against the topic catalog schema and
// decodes it. Schema violations are reported before any decoding error so
// authors see the contract failure, not a Go unmarshal message.
func ParseCatalog(data []byte) (Catalog, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return Catalog{}, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledCatalogSchema()
	if err != nil {
		return Catalog{}, err
	}
	if err := schema.Validate(parsed); err != nil {
		return Catalog{}, fmt.Errorf("catalog does not match schema: %w", err)
	}

	var fc fileCatalog
	if err := json.Unmarshal(data, &fc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}

	c := Catalog{Name: fc.Name, Levels: make(map[int][]Template, len(fc.Levels))}
	for key, templates := range fc.Levels {
		level, err := strconv.Atoi(key)
		if err != nil {
			return Catalog{}, fmt.Errorf("invalid level key %q", key)
		}
		c.Levels[level] = templates
	}
	return c, nil
}

// LoadCatalogFile reads and parses one topic catalog JSON file.
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
