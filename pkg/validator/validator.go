// Package validator implements the schema-validation suite: required
// fields, variant enum membership, capital minimum, and nested shape
// rules for challenge definitions and staged payouts.
package validator

import (
	"fmt"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
	"github.com/DownSYnDdev/QuantLabEngine/pkg/schema"
)

// Check runs every rule against one configuration document and returns
// the ordered list of violations. Rules are cumulative: a failure in
// one rule never stops evaluation of the rest. An empty slice means
// the document is valid.
func Check(s *schema.Schema, cfg *model.AccountConfig) []string {
	var errs []string

	// Rule 1: required fields
	for _, field := range s.Required {
		if !cfg.HasField(field) {
			errs = append(errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}

	// Rule 2: variant enum membership
	if cfg.Variant != nil && !s.AllowsVariant(*cfg.Variant) {
		errs = append(errs, fmt.Sprintf("Invalid variant: %s", *cfg.Variant))
	}

	// Rule 3: capital minimum; equality passes, only < is a violation
	if cfg.BaseCapital != nil && *cfg.BaseCapital < s.MinimumCapital() {
		errs = append(errs, fmt.Sprintf("baseCapital %v below minimum %v",
			*cfg.BaseCapital, s.MinimumCapital()))
	}

	// Rule 4: challenge definition shape
	for i, ch := range cfg.ChallengeDefinitions {
		if ch.ID == nil {
			errs = append(errs, fmt.Sprintf("challengeDefinitions[%d] missing 'id'", i))
		}
		if ch.Name == nil {
			errs = append(errs, fmt.Sprintf("challengeDefinitions[%d] missing 'name'", i))
		}
		if ch.Rules == nil {
			errs = append(errs, fmt.Sprintf("challengeDefinitions[%d] missing 'rules'", i))
		}
	}

	// Rule 5: staged payout shape and range
	if cfg.PayoutRules != nil {
		for i, p := range cfg.PayoutRules.StagedPayouts {
			if p.Milestone == nil {
				errs = append(errs, fmt.Sprintf("payoutRules.stagedPayouts[%d] missing 'milestone'", i))
			}
			if p.PayoutPercent == nil {
				errs = append(errs, fmt.Sprintf("payoutRules.stagedPayouts[%d] missing 'payoutPercent'", i))
			} else if *p.PayoutPercent < 0 || *p.PayoutPercent > 100 {
				errs = append(errs, fmt.Sprintf("payoutRules.stagedPayouts[%d] payoutPercent out of range [0, 100]", i))
			}
		}
	}

	return errs
}
