// Package schema loads the account configuration schema used by the
// schema-validation suite. The schema ships as a standalone JSON file;
// legacy documentation files that carry the schema inside a fenced
// ```json block are still accepted.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Schema describes the constraints applied to account configurations
type Schema struct {
	Title      string     `json:"title"`
	Version    string     `json:"version"`
	Required   []string   `json:"required"`
	Properties Properties `json:"properties"`
}

// Properties holds the per-field constraints the validator understands
type Properties struct {
	Variant     VariantProperty `json:"variant"`
	BaseCapital CapitalProperty `json:"baseCapital"`
}

// VariantProperty constrains the account variant to an enum
type VariantProperty struct {
	Enum []string `json:"enum"`
}

// CapitalProperty constrains the base capital to a minimum
type CapitalProperty struct {
	Minimum *float64 `json:"minimum"`
}

// Load reads the schema from path. JSON files are parsed directly;
// markdown files are searched for a fenced json block first.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".md") {
		block, err := ExtractFenced(string(data))
		if err != nil {
			return nil, fmt.Errorf("schema document %s: %w", filepath.Base(path), err)
		}
		data = []byte(block)
	}

	return Parse(data)
}

// Parse decodes a schema from raw JSON and checks it is usable
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that the schema carries everything the rules need
func (s *Schema) Validate() error {
	if len(s.Required) == 0 {
		return fmt.Errorf("schema declares no required fields")
	}
	if len(s.Properties.Variant.Enum) == 0 {
		return fmt.Errorf("schema declares no variant enum")
	}
	if s.Properties.BaseCapital.Minimum == nil {
		return fmt.Errorf("schema declares no baseCapital minimum")
	}
	return nil
}

// AllowsVariant reports whether value is a member of the variant enum
func (s *Schema) AllowsVariant(value string) bool {
	for _, v := range s.Properties.Variant.Enum {
		if v == value {
			return true
		}
	}
	return false
}

// MinimumCapital returns the declared baseCapital floor
func (s *Schema) MinimumCapital() float64 {
	if s.Properties.BaseCapital.Minimum == nil {
		return 0
	}
	return *s.Properties.BaseCapital.Minimum
}

// ExtractFenced returns the contents of the first fenced ```json block
// in a markdown document.
func ExtractFenced(doc string) (string, error) {
	const open = "```json\n"
	start := strings.Index(doc, open)
	if start < 0 {
		return "", fmt.Errorf("no fenced json block found")
	}
	rest := doc[start+len(open):]
	end := strings.Index(rest, "\n```")
	if end < 0 {
		return "", fmt.Errorf("fenced json block is not terminated")
	}
	return rest[:end], nil
}
