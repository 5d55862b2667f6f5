package suite

import (
	"context"
	"testing"
)

type fakeSuite struct {
	name string
}

func (f *fakeSuite) Name() string        { return f.name }
func (f *fakeSuite) Description() string { return "fake suite for registry tests" }
func (f *fakeSuite) Run(ctx context.Context, batch Batch) (*Outcome, error) {
	return &Outcome{Suite: f.name}, nil
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register("alpha", func() Suite { return &fakeSuite{name: "alpha"} })
	if err != nil {
		t.Fatalf("Failed to register suite: %v", err)
	}

	s, err := reg.Get("alpha")
	if err != nil {
		t.Fatalf("Failed to get suite: %v", err)
	}
	if s.Name() != "alpha" {
		t.Errorf("Expected suite 'alpha', got %q", s.Name())
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	factory := func() Suite { return &fakeSuite{name: "alpha"} }

	if err := reg.Register("alpha", factory); err != nil {
		t.Fatalf("Failed to register suite: %v", err)
	}
	if err := reg.Register("alpha", factory); err == nil {
		t.Errorf("Expected error on duplicate registration")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Get("absent"); err == nil {
		t.Errorf("Expected error for unknown suite")
	}
}

func TestRegistryListSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		if err := reg.Register(n, func() Suite { return &fakeSuite{name: n} }); err != nil {
			t.Fatalf("Failed to register %s: %v", n, err)
		}
	}

	names := reg.List()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, names[i])
		}
	}
}

func TestOutcomeClean(t *testing.T) {
	tests := []struct {
		outcome Outcome
		want    bool
	}{
		{Outcome{Passed: 3}, true},
		{Outcome{Passed: 2, Failed: 1}, false},
		{Outcome{Passed: 2, Errored: 1}, false},
	}

	for _, tt := range tests {
		if got := tt.outcome.Clean(); got != tt.want {
			t.Errorf("Clean() for %+v: expected %v, got %v", tt.outcome, tt.want, got)
		}
	}
}
