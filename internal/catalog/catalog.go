// Package catalog holds the fixed property collection and answers search,
// filter and sort queries over it. A Catalog never changes after New returns,
// so every method is safe for concurrent use.
package catalog

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"propertyHub/internal/models"
	"propertyHub/internal/storage"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/properties.json data/catalog.schema.json
var dataFS embed.FS

const schemaURL = "catalog.schema.json"

var ErrNotFound = errors.New("property not found")

var catalogSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	raw, err := dataFS.ReadFile("data/catalog.schema.json")
	if err != nil {
		panic(fmt.Sprintf("read catalog schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	if err := compiler.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
		panic(fmt.Sprintf("add catalog schema: %v", err))
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("compile catalog schema: %v", err))
	}

	return schema
}

type Catalog struct {
	properties []models.Property
	byId       map[string]int
}

// New builds a catalog from properties, keeping their order. The slice is copied.
func New(properties []models.Property) (*Catalog, error) {
	c := &Catalog{
		properties: make([]models.Property, len(properties)),
		byId:       make(map[string]int, len(properties)),
	}

	copy(c.properties, properties)

	for i, p := range c.properties {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("property %q: %w", p.Id, err)
		}

		if _, ok := c.byId[p.Id]; ok {
			return nil, fmt.Errorf("duplicate property id %q", p.Id)
		}

		c.byId[p.Id] = i
	}

	return c, nil
}

func validate(p models.Property) error {
	switch {
	case p.Id == ``:
		return errors.New("empty id")
	case p.Price <= 0:
		return errors.New("price must be positive")
	case p.Bedrooms < 0 || p.Bathrooms < 0:
		return errors.New("negative room count")
	case !p.Type.IsValid():
		return fmt.Errorf("unknown type %q", p.Type)
	case len(p.Images) == 0:
		return errors.New("at least one image is required")
	}

	return nil
}

// DecodeJSON validates a JSON array of properties against the catalog schema
// and decodes it.
func DecodeJSON(r io.Reader) ([]models.Property, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var document interface{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("catalog is not valid JSON: %w", err)
	}

	if err := catalogSchema.Validate(document); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var properties []models.Property
	if err := json.Unmarshal(raw, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}

// EmbeddedSource serves the six-property reference dataset.
type EmbeddedSource struct{}

func (EmbeddedSource) LoadProperties(_ context.Context) ([]models.Property, error) {
	file, err := dataFS.Open("data/properties.json")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeJSON(file)
}

// FileSource reads a catalog seed file in the same format as the reference dataset.
type FileSource struct {
	Path string
}

func (s FileSource) LoadProperties(_ context.Context) ([]models.Property, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return DecodeJSON(file)
}

func Load(ctx context.Context, source storage.PropertySource) (*Catalog, error) {
	properties, err := source.LoadProperties(ctx)
	if err != nil {
		return nil, fmt.Errorf("load properties: %w", err)
	}

	return New(properties)
}

// Reference returns a catalog over the embedded reference dataset.
func Reference() *Catalog {
	c, err := Load(context.Background(), EmbeddedSource{})
	if err != nil {
		panic(err)
	}

	return c
}
