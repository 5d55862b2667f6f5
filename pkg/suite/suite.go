// Package suite defines the check-suite interface and the registry
// the audit command resolves suites from. Suites register themselves
// via init, mirroring how simulations announce themselves to a CLI.
package suite

import "context"

// Batch describes one batch of configuration documents to check
type Batch struct {
	// Files are the configuration document paths, in processing order
	Files []string

	// SchemaPath locates the schema resource for suites that need one
	SchemaPath string

	// OutputDir is where run artifacts are written
	OutputDir string

	// NoColor disables colored console rendering
	NoColor bool
}

// Outcome summarizes one suite run over a batch
type Outcome struct {
	Suite     string
	Passed    int
	Failed    int
	Errored   int
	Artifacts []string

	// Blocking marks failures that should produce a nonzero exit code
	Blocking bool
}

// Clean reports whether the run had no failures or load errors
func (o *Outcome) Clean() bool {
	return o.Failed == 0 && o.Errored == 0
}

// Suite is one batch check suite
type Suite interface {
	// Name returns the registry name of the suite
	Name() string

	// Description returns a brief description of what the suite checks
	Description() string

	// Run checks the batch and writes the suite's artifacts
	Run(ctx context.Context, batch Batch) (*Outcome, error)
}
