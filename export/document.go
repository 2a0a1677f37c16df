// Package export writes generated segments in the interchange format consumed by instantiation layers
package export

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lixenwraith/evo-body/body"
	"github.com/lixenwraith/evo-body/parameter"
)

const schemaURL = "https://evo-body.local/schema/body.schema.json"

//go:embed schema/body.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Document is one generation run: the segment, how it was sampled, and its placements
type Document struct {
	ID         string           `json:"id"`
	Version    string           `json:"version"`
	Shape      body.Shape       `json:"shape"`
	Strategy   body.Strategy    `json:"strategy"`
	Seed       uint64           `json:"seed"`
	Fill       float64          `json:"fill"`
	Dimensions body.Dimensions  `json:"dimensions"`
	SlotCount  int              `json:"slot_count"`
	Requested  int              `json:"requested"`
	Appendages []body.Appendage `json:"appendages"`
}

// New wraps a generation result with a fresh document id
func New(seg body.Segment, fill float64, seed uint64, apps []body.Appendage) Document {
	if apps == nil {
		apps = []body.Appendage{}
	}
	return Document{
		ID:         uuid.NewString(),
		Version:    parameter.ExportVersion,
		Shape:      seg.Shape(),
		Strategy:   seg.Strategy(),
		Seed:       seed,
		Fill:       fill,
		Dimensions: seg.Dimensions(),
		SlotCount:  seg.SlotCount(),
		Requested:  body.TargetCount(seg.SlotCount(), fill),
		Appendages: apps,
	}
}

// Shortfall is the number of requested placements the selection could not deliver
func (d Document) Shortfall() int {
	return d.Requested - len(d.Appendages)
}

func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	return nil
}

// Decode reads a document, rejecting input that does not match the schema
func Decode(r io.Reader) (Document, error) {
	var doc Document
	raw, err := io.ReadAll(r)
	if err != nil {
		return doc, fmt.Errorf("export: read: %w", err)
	}
	if err := Validate(raw); err != nil {
		return doc, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("export: decode: %w", err)
	}
	return doc, nil
}

// Validate checks raw JSON against the embedded document schema
func Validate(raw []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("export: decode: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("export: schema: %w", err)
	}
	return nil
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("export: schema resource: %w", err)
			return
		}
		schema, schemaErr = c.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("export: schema compile: %w", schemaErr)
		}
	})
	return schema, schemaErr
}
