package dryrun

import (
	"context"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/logger"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/report"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/suite"
)

// SuiteName is the registry name of the provisioning dry-run suite
const SuiteName = "provisioning-dry-run"

// Suite adapts the dry-run simulator to the suite registry
type Suite struct{}

// NewSuite creates a new provisioning dry-run suite instance
func NewSuite() suite.Suite {
	return &Suite{}
}

// Name returns the registry name of the suite
func (s *Suite) Name() string { return SuiteName }

// Description returns a brief description of what the suite checks
func (s *Suite) Description() string {
	return "Simulates config provisioning (capital floor, challenge presence, payout sums, variant structure, risk sanity)"
}

// Run simulates provisioning for the batch. The dry-run never blocks
// the process exit code; failures are reported through the artifacts.
func (s *Suite) Run(_ context.Context, batch suite.Batch) (*suite.Outcome, error) {
	logger.LogSection("Account Config Dry-Run Provisioning Simulation")

	runner := &Runner{Files: batch.Files}
	rep := runner.Run()

	r := report.Renderer{NoColor: batch.NoColor}
	for _, res := range rep.Results {
		if res.Status == StatusPass {
			r.Pass(res.ConfigName, res.Status)
		} else {
			r.Fail(res.ConfigName, res.Status)
		}
		for _, w := range res.Warnings {
			r.Warning(w)
		}
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
		logger.Infof("%s Simulation results saved to: %s", logger.IconSave, p)
	}

	return &suite.Outcome{
		Suite:     SuiteName,
		Passed:    rep.Passed,
		Failed:    rep.Failed,
		Errored:   rep.Errors,
		Artifacts: artifacts,
		Blocking:  false,
	}, nil
}

func init() {
	err := suite.DefaultRegistry.Register(SuiteName, NewSuite)
	if err != nil {
		logger.Errorf("Failed to register suite: %v", err)
	}
}
