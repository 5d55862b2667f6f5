// Package discovery resolves the configuration documents a batch run
// operates on.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// CanonicalFiles are the tier/variant documents every deployment
// ships. They are resolved against the config directory whether or not
// each file exists; a missing file surfaces as a load failure in the
// batch results rather than being skipped silently.
var CanonicalFiles = []string{
	"25k-eval-v1.json",
	"25k-straight-v1.json",
	"50k-eval-v1.json",
	"50k-straight-v1.json",
	"100k-eval-v1.json",
	"100k-straight-v1.json",
	"150k-eval-v1.json",
	"150k-straight-v1.json",
}

// artifactNames are run outputs that must never be picked up as
// configuration documents when scanning.
var artifactNames = map[string]bool{
	"validation-results.json": true,
	"simulation-results.json": true,
	"flow-results.json":       true,
	"account-schema.json":     true,
}

// Canonical returns the canonical document paths under dir
func Canonical(dir string) []string {
	paths := make([]string, 0, len(CanonicalFiles))
	for _, name := range CanonicalFiles {
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths
}

// Scan returns every JSON configuration document under dir, sorted by
// name, excluding schema resources and run artifacts.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan config directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" || artifactNames[name] {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}

	sort.Strings(paths)
	return paths, nil
}

// Resolve returns the documents for a batch run: every canonical file,
// or the full directory scan when all is set.
func Resolve(dir string, all bool) ([]string, error) {
	if all {
		return Scan(dir)
	}
	return Canonical(dir), nil
}
