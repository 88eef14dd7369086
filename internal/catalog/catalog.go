package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed careers.json
var embeddedCareers []byte

//go:embed schema.json
var catalogSchema []byte

// FieldError is a single schema violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// InvalidCatalogError reports schema or invariant violations in a catalog file.
type InvalidCatalogError struct {
	Errors []FieldError
}

func (e *InvalidCatalogError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("invalid catalog: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("invalid catalog: %d schema violations (first: %s: %s)",
		len(e.Errors), e.Errors[0].Field, e.Errors[0].Message)
}

// Default returns the embedded career catalog. The embedded data is validated
// the same way as an external file; a panic here means the build shipped a
// broken dataset.
func Default() *Catalog {
	c, err := Load(embeddedCareers)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// LoadFile reads and validates a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return c, nil
}

// Load parses catalog JSON, validates it against the embedded JSON Schema,
// and enforces the record invariants the schema cannot express.
func Load(data []byte) (*Catalog, error) {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}
	if !result.Valid() {
		invalid := &InvalidCatalogError{Errors: make([]FieldError, 0, len(result.Errors()))}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			invalid.Errors = append(invalid.Errors, FieldError{Field: field, Message: desc.Description()})
		}
		return nil, invalid
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// validate enforces invariants beyond the schema: unique roles and a salary
// value for every stage (a stage missing from the JSON defaults to 0).
func (c *Catalog) validate() error {
	seen := make(map[string]bool, len(c.Careers))
	for i := range c.Careers {
		rec := &c.Careers[i]
		if seen[rec.Role] {
			return &InvalidCatalogError{Errors: []FieldError{{
				Field:   fmt.Sprintf("careers.%d.role", i),
				Message: fmt.Sprintf("duplicate role %q", rec.Role),
			}}}
		}
		seen[rec.Role] = true

		if rec.Salaries == nil {
			rec.Salaries = make(map[Stage]float64, 3)
		}
		for _, stage := range Stages() {
			if _, ok := rec.Salaries[stage]; !ok {
				rec.Salaries[stage] = 0
			}
		}
	}
	return nil
}
