// Package model defines the trading-account configuration documents
// audited by the CLI. Optional JSON fields map to pointers so that a
// missing field is distinguishable from a zero value; validation rules
// check presence explicitly instead of falling back to defaults.
package model

import (
	"encoding/json"
	"fmt"
	"os"
)

// Account variants
const (
	VariantEvaluation       = "evaluation"
	VariantStraightToFunded = "straight-to-funded"
)

// AccountConfig is one account tier/variant definition
type AccountConfig struct {
	ID                   *string      `json:"id,omitempty"`
	Variant              *string      `json:"variant,omitempty"`
	BaseCapital          *float64     `json:"baseCapital,omitempty"`
	Currency             *string      `json:"currency,omitempty"`
	ChallengeDefinitions []Challenge  `json:"challengeDefinitions,omitempty"`
	PayoutRules          *PayoutRules `json:"payoutRules,omitempty"`
}

// Challenge is a named evaluation stage with risk thresholds and a
// duration. DurationDays of 0 means no fixed duration, which is the
// expected shape for the straight-to-funded variant.
type Challenge struct {
	ID           *string         `json:"id,omitempty"`
	Name         *string         `json:"name,omitempty"`
	DurationDays *int            `json:"durationDays,omitempty"`
	Rules        *ChallengeRules `json:"rules,omitempty"`
}

// ChallengeRules holds the per-stage risk thresholds, expressed as
// negative-or-zero currency deltas.
type ChallengeRules struct {
	MaxDrawdown    *float64 `json:"maxDrawdown,omitempty"`
	DailyLossLimit *float64 `json:"dailyLossLimit,omitempty"`
}

// PayoutRules wraps the staged payout schedule
type PayoutRules struct {
	StagedPayouts []StagedPayout `json:"stagedPayouts,omitempty"`
}

// StagedPayout is a milestone-keyed percentage entitlement. All
// entries for a document are expected to sum to 100.
type StagedPayout struct {
	Milestone     *string  `json:"milestone,omitempty"`
	PayoutPercent *float64 `json:"payoutPercent,omitempty"`
}

// Load reads and parses one configuration document from disk
func Load(path string) (*AccountConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration document from raw JSON
func Parse(data []byte) (*AccountConfig, error) {
	var cfg AccountConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return &cfg, nil
}

// HasField reports whether a top-level schema field is present in the
// document. Field names follow the JSON property names.
func (c *AccountConfig) HasField(name string) bool {
	switch name {
	case "id":
		return c.ID != nil
	case "variant":
		return c.Variant != nil
	case "baseCapital":
		return c.BaseCapital != nil
	case "currency":
		return c.Currency != nil
	case "challengeDefinitions":
		return c.ChallengeDefinitions != nil
	case "payoutRules":
		return c.PayoutRules != nil
	default:
		return false
	}
}

// Name returns the document id, or a placeholder when absent
func (c *AccountConfig) Name() string {
	if c.ID != nil {
		return *c.ID
	}
	return "unknown"
}
