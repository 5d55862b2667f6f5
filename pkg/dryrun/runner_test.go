package dryrun

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestRunnerBatch(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "good.json", `{
		"id": "good", "variant": "straight-to-funded", "baseCapital": 50000,
		"challengeDefinitions": [
			{"id": "funded", "name": "Funded", "durationDays": 0,
			 "rules": {"maxDrawdown": -5000, "dailyLossLimit": -5000}}
		],
		"payoutRules": {"stagedPayouts": [{"milestone": "only", "payoutPercent": 100}]}
	}`)
	failing := writeFile(t, dir, "failing.json",
		`{"id": "failing", "baseCapital": 500, "challengeDefinitions": []}`)
	broken := writeFile(t, dir, "broken.json", `{"id":`)

	runner := &Runner{Files: []string{good, failing, broken}}
	rep := runner.Run()

	if rep.TotalConfigs != 3 {
		t.Errorf("Expected 3 configs, got %d", rep.TotalConfigs)
	}
	if rep.Passed != 1 || rep.Failed != 1 || rep.Errors != 1 {
		t.Errorf("Expected 1/1/1 passed/failed/errored, got %d/%d/%d",
			rep.Passed, rep.Failed, rep.Errors)
	}
	if rep.SimulationType != "dry-run" || rep.Endpoint != SimulatedEndpoint {
		t.Errorf("Unexpected report metadata: %+v", rep)
	}

	// Malformed JSON is a third terminal state, distinct from FAIL
	errRes := rep.Results[2]
	if errRes.Status != StatusError {
		t.Errorf("Expected ERROR status, got %s", errRes.Status)
	}
	if errRes.ConfigID == nil || *errRes.ConfigID != "unknown" {
		t.Errorf("Expected config id 'unknown' for unreadable document, got %v", errRes.ConfigID)
	}
	if len(errRes.Errors) != 1 || !strings.Contains(errRes.Errors[0], "JSON parse error") {
		t.Errorf("Expected parse error message, got %v", errRes.Errors)
	}

	// The batch still reported the other files
	if rep.Results[0].Status != StatusPass || rep.Results[1].Status != StatusFail {
		t.Errorf("Batch did not continue past the broken file: %+v", rep.Results)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json",
		`{"id": "good", "baseCapital": 25000,
		  "challengeDefinitions": [{"id": "c", "name": "C", "durationDays": 0, "rules": {}}]}`)

	runner := &Runner{Files: []string{good}}
	rep := runner.Run()

	out := t.TempDir()
	paths, err := WriteArtifacts(rep, out)
	if err != nil {
		t.Fatalf("Failed to write artifacts: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != ResultsArtifact {
		t.Fatalf("Unexpected artifact paths: %v", paths)
	}

	data, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatalf("Failed to read artifact: %v", err)
	}
	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Artifact is not valid JSON: %v", err)
	}
	if decoded.TotalConfigs != 1 || decoded.Passed != 1 {
		t.Errorf("Unexpected artifact content: %+v", decoded)
	}
}

func TestRunnerIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "cfg.json",
		`{"id": "cfg", "variant": "evaluation", "baseCapital": 25000,
		  "challengeDefinitions": [
			{"id": "p1", "name": "P1", "durationDays": 30, "rules": {"maxDrawdown": -2500, "dailyLossLimit": -1250}},
			{"id": "p2", "name": "P2", "durationDays": 60, "rules": {"maxDrawdown": -2500, "dailyLossLimit": -1250}}
		  ],
		  "payoutRules": {"stagedPayouts": [{"milestone": "m", "payoutPercent": 100}]}}`)

	runner := &Runner{Files: []string{cfg}}
	first := runner.Run()
	second := runner.Run()

	a, _ := json.Marshal(first.Results)
	b, _ := json.Marshal(second.Results)
	if string(a) != string(b) {
		t.Errorf("Re-running on unchanged configs changed results:\n%s\nvs\n%s", a, b)
	}
}
