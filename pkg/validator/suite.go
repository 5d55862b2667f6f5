package validator

import (
	"context"
	"fmt"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/report"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/schema"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/suite"
)

// SuiteName is the registry name of the schema-validation suite
const SuiteName = "schema-validation"

// Suite adapts the schema validator to the suite registry
type Suite struct{}

// NewSuite creates a new schema-validation suite instance
func NewSuite() suite.Suite {
	return &Suite{}
}

// Name returns the registry name of the suite
func (s *Suite) Name() string { return SuiteName }

// Description returns a brief description of what the suite checks
func (s *Suite) Description() string {
	return "Validates account configs against the account schema (required fields, enums, minimums, nested shapes)"
}

// Run validates the batch. A missing or unreadable schema aborts
// before any configuration is processed.
func (s *Suite) Run(_ context.Context, batch suite.Batch) (*suite.Outcome, error) {
	sch, err := schema.Load(batch.SchemaPath)
	if err != nil {
		return nil, fmt.Errorf("schema is required up front: %w", err)
	}

	logger.LogSection("Account Config Validation Report")

	runner := &Runner{Schema: sch, Files: batch.Files}
	rep := runner.Run()

	r := report.Renderer{NoColor: batch.NoColor}
	for _, res := range rep.Results {
		if res.Status == StatusPassed {
			r.Pass(res.File, res.Status)
			continue
		}
		r.Fail(res.File, res.Status)
		for _, e := range res.Errors {
			r.Detail(e)
		}
	}
	r.Summary(rep.Passed, rep.TotalConfigs)

	artifacts, err := WriteArtifacts(rep, batch.OutputDir)
	if err != nil {
		return nil, err
	}
	for _, p := range artifacts {
		logger.Infof("%s Results saved to: %s", logger.IconSave, p)
	}

	return &suite.Outcome{
		Suite:     SuiteName,
		Passed:    rep.Passed,
		Failed:    rep.Failed,
		Artifacts: artifacts,
		Blocking:  true,
	}, nil
}

func init() {
	err := suite.DefaultRegistry.Register(SuiteName, NewSuite)
	if err != nil {
		logger.Errorf("Failed to register suite: %v", err)
	}
}
