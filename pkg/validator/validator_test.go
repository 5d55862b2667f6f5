package validator

import (
	"strings"
	"testing"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse([]byte(`{
		"version": "draft-07",
		"required": ["id", "variant", "baseCapital", "currency", "challengeDefinitions", "payoutRules"],
		"properties": {
			"variant": {"enum": ["evaluation", "straight-to-funded"]},
			"baseCapital": {"minimum": 1000}
		}
	}`))
	if err != nil {
		t.Fatalf("Failed to parse test schema: %v", err)
	}
	return s
}

func sptr(s string) *string   { return &s }
func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }

func validConfig() *model.AccountConfig {
	return &model.AccountConfig{
		ID:          sptr("25k-eval-v1"),
		Variant:     sptr("evaluation"),
		BaseCapital: fptr(25000),
		Currency:    sptr("USD"),
		ChallengeDefinitions: []model.Challenge{
			{
				ID:           sptr("phase-1"),
				Name:         sptr("Phase 1"),
				DurationDays: iptr(30),
				Rules:        &model.ChallengeRules{MaxDrawdown: fptr(-2500), DailyLossLimit: fptr(-1250)},
			},
		},
		PayoutRules: &model.PayoutRules{
			StagedPayouts: []model.StagedPayout{
				{Milestone: sptr("first"), PayoutPercent: fptr(100)},
			},
		},
	}
}

func TestCheckValidConfig(t *testing.T) {
	errs := Check(testSchema(t), validConfig())
	if len(errs) != 0 {
		t.Errorf("Expected no errors for valid config, got %v", errs)
	}
}

func TestCheckMissingRequiredFields(t *testing.T) {
	cfg := &model.AccountConfig{ID: sptr("sparse")}
	errs := Check(testSchema(t), cfg)

	// Exactly one "Missing required field" entry per missing field
	want := []string{
		"Missing required field: variant",
		"Missing required field: baseCapital",
		"Missing required field: currency",
		"Missing required field: challengeDefinitions",
		"Missing required field: payoutRules",
	}
	var got []string
	for _, e := range errs {
		if strings.HasPrefix(e, "Missing required field:") {
			got = append(got, e)
		}
	}
	if len(got) != len(want) {
		t.Fatalf("Expected %d missing-field errors, got %d: %v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("Expected error %q, got %q", w, got[i])
		}
	}
}

func TestCheckInvalidVariant(t *testing.T) {
	cfg := validConfig()
	cfg.Variant = sptr("demo")

	errs := Check(testSchema(t), cfg)
	if !contains(errs, "Invalid variant: demo") {
		t.Errorf("Expected invalid-variant error, got %v", errs)
	}
}

func TestCheckCapitalMinimumBoundary(t *testing.T) {
	tests := []struct {
		name    string
		capital float64
		wantErr bool
	}{
		{"above minimum", 25000, false},
		{"equal to minimum", 1000, false},
		{"below minimum", 999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.BaseCapital = fptr(tt.capital)

			errs := Check(testSchema(t), cfg)
			hasErr := false
			for _, e := range errs {
				if strings.HasPrefix(e, "baseCapital") {
					hasErr = true
				}
			}
			if hasErr != tt.wantErr {
				t.Errorf("capital %v: expected error %v, got %v (%v)", tt.capital, tt.wantErr, hasErr, errs)
			}
		})
	}
}

func TestCheckCapitalErrorFormat(t *testing.T) {
	cfg := validConfig()
	cfg.BaseCapital = fptr(500)

	errs := Check(testSchema(t), cfg)
	if !contains(errs, "baseCapital 500 below minimum 1000") {
		t.Errorf("Unexpected capital error format: %v", errs)
	}
}

func TestCheckChallengeShape(t *testing.T) {
	cfg := validConfig()
	cfg.ChallengeDefinitions = []model.Challenge{
		{ID: sptr("ok"), Name: sptr("OK"), Rules: &model.ChallengeRules{}},
		{}, // missing everything
		{ID: sptr("partial")},
	}

	errs := Check(testSchema(t), cfg)
	for _, want := range []string{
		"challengeDefinitions[1] missing 'id'",
		"challengeDefinitions[1] missing 'name'",
		"challengeDefinitions[1] missing 'rules'",
		"challengeDefinitions[2] missing 'name'",
		"challengeDefinitions[2] missing 'rules'",
	} {
		if !contains(errs, want) {
			t.Errorf("Expected %q in %v", want, errs)
		}
	}
	if contains(errs, "challengeDefinitions[0] missing 'id'") {
		t.Errorf("Unexpected error for complete challenge: %v", errs)
	}
}

func TestCheckStagedPayouts(t *testing.T) {
	cfg := validConfig()
	cfg.PayoutRules = &model.PayoutRules{
		StagedPayouts: []model.StagedPayout{
			{Milestone: sptr("first"), PayoutPercent: fptr(50)},
			{PayoutPercent: fptr(150)},
			{Milestone: sptr("third")},
		},
	}

	errs := Check(testSchema(t), cfg)
	for _, want := range []string{
		"payoutRules.stagedPayouts[1] missing 'milestone'",
		"payoutRules.stagedPayouts[1] payoutPercent out of range [0, 100]",
		"payoutRules.stagedPayouts[2] missing 'payoutPercent'",
	} {
		if !contains(errs, want) {
			t.Errorf("Expected %q in %v", want, errs)
		}
	}
}

func TestCheckPayoutRangeBoundaries(t *testing.T) {
	tests := []struct {
		percent float64
		wantErr bool
	}{
		{0, false},
		{100, false},
		{-0.5, true},
		{100.5, true},
	}

	for _, tt := range tests {
		cfg := validConfig()
		cfg.PayoutRules = &model.PayoutRules{
			StagedPayouts: []model.StagedPayout{
				{Milestone: sptr("only"), PayoutPercent: fptr(tt.percent)},
			},
		}

		errs := Check(testSchema(t), cfg)
		hasErr := contains(errs, "payoutRules.stagedPayouts[0] payoutPercent out of range [0, 100]")
		if hasErr != tt.wantErr {
			t.Errorf("payoutPercent %v: expected error %v, got %v", tt.percent, tt.wantErr, hasErr)
		}
	}
}

func TestCheckIsCumulative(t *testing.T) {
	// A failure in one rule must not stop evaluation of the rest
	cfg := &model.AccountConfig{
		Variant:     sptr("demo"),
		BaseCapital: fptr(500),
		ChallengeDefinitions: []model.Challenge{
			{},
		},
	}

	errs := Check(testSchema(t), cfg)
	for _, want := range []string{
		"Missing required field: id",
		"Invalid variant: demo",
		"baseCapital 500 below minimum 1000",
		"challengeDefinitions[0] missing 'id'",
	} {
		if !contains(errs, want) {
			t.Errorf("Expected %q in %v", want, errs)
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
