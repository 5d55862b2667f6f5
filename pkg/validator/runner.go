package validator

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/report"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/schema"
)

// Document statuses
const (
	StatusPassed = "PASSED"
	StatusFailed = "FAILED"
)

// Artifact file names, overwritten each run
const (
	ResultsArtifact = "validation-results.json"
	ErrorsArtifact  = "validation-errors.txt"
)

// Result is the outcome for one configuration document
type Result struct {
	File   string   `json:"file"`
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

// Report aggregates one batch run
type Report struct {
	Timestamp     time.Time `json:"timestamp"`
	SchemaVersion string    `json:"schema_version"`
	RunID         string    `json:"run_id"`
	TotalConfigs  int       `json:"total_configs"`
	Passed        int       `json:"passed"`
	Failed        int       `json:"failed"`
	Results       []Result  `json:"results"`
}

// AllValid reports whether every document passed
func (r *Report) AllValid() bool {
	return r.Failed == 0
}

// Runner validates a batch of configuration files against a schema
type Runner struct {
	Schema *schema.Schema
	Files  []string
}

// Run checks every file in order. A document whose read or parse fails
// is recorded as FAILED with the underlying error message; the batch
// always continues to the next file.
func (r *Runner) Run() *Report {
	rep := &Report{
		Timestamp:     time.Now(),
		SchemaVersion: r.Schema.Version,
		RunID:         report.NewRunID(),
		TotalConfigs:  len(r.Files),
		Results:       make([]Result, 0, len(r.Files)),
	}

	for _, path := range r.Files {
		name := filepath.Base(path)

		cfg, err := model.Load(path)
		if err != nil {
			rep.Failed++
			rep.Results = append(rep.Results, Result{
				File:   name,
				Status: StatusFailed,
				Errors: []string{err.Error()},
			})
			continue
		}

		errs := Check(r.Schema, cfg)
		if len(errs) > 0 {
			rep.Failed++
			rep.Results = append(rep.Results, Result{
				File:   name,
				Status: StatusFailed,
				Errors: errs,
			})
			continue
		}

		rep.Passed++
		rep.Results = append(rep.Results, Result{
			File:   name,
			Status: StatusPassed,
			Errors: []string{},
		})
	}

	return rep
}

// WriteArtifacts writes validation-results.json, plus
// validation-errors.txt when any document failed. It returns the
// artifact paths written.
func WriteArtifacts(rep *Report, dir string) ([]string, error) {
	var paths []string

	p, err := report.WriteJSON(dir, ResultsArtifact, rep)
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)

	if rep.AllValid() {
		return paths, nil
	}

	var b strings.Builder
	b.WriteString("Account Config Validation Errors\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	for _, res := range rep.Results {
		if res.Status != StatusFailed {
			continue
		}
		fmt.Fprintf(&b, "File: %s\n", res.File)
		for _, e := range res.Errors {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
		b.WriteString("\n")
	}

	p, err = report.WriteText(dir, ErrorsArtifact, b.String())
	if err != nil {
		return nil, err
	}
	paths = append(paths, p)

	return paths, nil
}
