package dryrun

import (
	"path/filepath"
	"time"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/report"
)

// ResultsArtifact is the artifact file name, overwritten each run
const ResultsArtifact = "simulation-results.json"

// SimulatedEndpoint names the provisioning endpoint this dry-run
// stands in for.
const SimulatedEndpoint = "POST /internal/simulate-config"

// Report aggregates one dry-run batch
type Report struct {
	Timestamp      time.Time `json:"timestamp"`
	SimulationType string    `json:"simulation_type"`
	Endpoint       string    `json:"endpoint"`
	RunID          string    `json:"run_id"`
	TotalConfigs   int       `json:"total_configs"`
	Passed         int       `json:"passed"`
	Failed         int       `json:"failed"`
	Errors         int       `json:"errors"`
	Results        []Result  `json:"results"`
}

// Runner simulates provisioning for a batch of configuration files
type Runner struct {
	Files []string
}

// Run simulates every file in order. A document whose load or parse
// fails is recorded with status ERROR and the batch continues.
func (r *Runner) Run() *Report {
	rep := &Report{
		Timestamp:      time.Now(),
		SimulationType: "dry-run",
		Endpoint:       SimulatedEndpoint,
		RunID:          report.NewRunID(),
		TotalConfigs:   len(r.Files),
		Results:        make([]Result, 0, len(r.Files)),
	}

	for _, path := range r.Files {
		name := filepath.Base(path)

		cfg, err := model.Load(path)
		if err != nil {
			unknown := "unknown"
			rep.Errors++
			rep.Results = append(rep.Results, Result{
				ConfigID:   &unknown,
				ConfigName: name,
				Status:     StatusError,
				Checks:     []CheckEntry{},
				Warnings:   []string{},
				Errors:     []string{err.Error()},
			})
			continue
		}

		res := Simulate(cfg, name)
		switch res.Status {
		case StatusPass:
			rep.Passed++
		case StatusFail:
			rep.Failed++
		}
		rep.Results = append(rep.Results, res)
	}

	return rep
}

// WriteArtifacts writes simulation-results.json and returns its path
func WriteArtifacts(rep *Report, dir string) ([]string, error) {
	p, err := report.WriteJSON(dir, ResultsArtifact, rep)
	if err != nil {
		return nil, err
	}
	return []string{p}, nil
}
