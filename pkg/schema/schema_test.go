package schema

import (
	"os"
	"path/filepath"
	"testing"
)

const validSchema = `{
	"title": "Account Configuration",
	"version": "draft-07",
	"required": ["id", "variant", "baseCapital"],
	"properties": {
		"variant": {"enum": ["evaluation", "straight-to-funded"]},
		"baseCapital": {"minimum": 1000}
	}
}`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(validSchema))
	if err != nil {
		t.Fatalf("Failed to parse schema: %v", err)
	}

	if s.Version != "draft-07" {
		t.Errorf("Expected version 'draft-07', got %q", s.Version)
	}
	if len(s.Required) != 3 {
		t.Errorf("Expected 3 required fields, got %d", len(s.Required))
	}
	if s.MinimumCapital() != 1000 {
		t.Errorf("Expected minimum capital 1000, got %v", s.MinimumCapital())
	}
	if !s.AllowsVariant("evaluation") {
		t.Errorf("Expected 'evaluation' to be allowed")
	}
	if s.AllowsVariant("demo") {
		t.Errorf("Expected 'demo' to be rejected")
	}
}

func TestParseRejectsUnusableSchema(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no required fields", `{"properties": {"variant": {"enum": ["evaluation"]}, "baseCapital": {"minimum": 0}}}`},
		{"no enum", `{"required": ["id"], "properties": {"baseCapital": {"minimum": 0}}}`},
		{"no minimum", `{"required": ["id"], "properties": {"variant": {"enum": ["evaluation"]}}}`},
		{"malformed", `{"required": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestExtractFenced(t *testing.T) {
	doc := "# Schema\n\nSome prose.\n\n```json\n{\"required\": [\"id\"]}\n```\n\nMore prose.\n"
	block, err := ExtractFenced(doc)
	if err != nil {
		t.Fatalf("Failed to extract fenced block: %v", err)
	}
	if block != `{"required": ["id"]}` {
		t.Errorf("Unexpected block content: %q", block)
	}
}

func TestExtractFencedErrors(t *testing.T) {
	if _, err := ExtractFenced("no fence here"); err == nil {
		t.Errorf("Expected error for document without fenced block")
	}
	if _, err := ExtractFenced("```json\n{\"a\": 1}"); err == nil {
		t.Errorf("Expected error for unterminated fenced block")
	}
}

func TestLoadFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte(validSchema), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load schema: %v", err)
	}
	if s.MinimumCapital() != 1000 {
		t.Errorf("Expected minimum capital 1000, got %v", s.MinimumCapital())
	}
}

func TestLoadFromMarkdownFile(t *testing.T) {
	doc := "# Account Schema\n\n```json\n" + validSchema + "\n```\n"
	path := filepath.Join(t.TempDir(), "account-schema.md")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write schema doc: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load schema from markdown: %v", err)
	}
	if !s.AllowsVariant("straight-to-funded") {
		t.Errorf("Expected 'straight-to-funded' to be allowed")
	}
}

func TestLoadMissingSchema(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Expected error for missing schema file")
	}

	// Markdown file extracted from the same loader must match the
	// standalone resource
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "schema.json")
	mdPath := filepath.Join(dir, "schema.md")
	if err := os.WriteFile(jsonPath, []byte(validSchema), 0644); err != nil {
		t.Fatalf("Failed to write schema file: %v", err)
	}
	if err := os.WriteFile(mdPath, []byte("```json\n"+validSchema+"\n```"), 0644); err != nil {
		t.Fatalf("Failed to write schema doc: %v", err)
	}

	fromJSON, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("Failed to load json schema: %v", err)
	}
	fromMD, err := Load(mdPath)
	if err != nil {
		t.Fatalf("Failed to load markdown schema: %v", err)
	}
	if fromJSON.MinimumCapital() != fromMD.MinimumCapital() ||
		len(fromJSON.Required) != len(fromMD.Required) {
		t.Errorf("Standalone and markdown schema disagree")
	}
}
