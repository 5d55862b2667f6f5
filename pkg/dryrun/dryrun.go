// Package dryrun implements the provisioning dry-run suite: a fixed
// battery of semantic checks evaluated against each configuration
// document without contacting any live service.
package dryrun

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/DownSYnDdev/QuantLabEngine/pkg/model"
)

// Check and result statuses. ERROR is a terminal state for documents
// that could not be loaded at all, distinct from a failed check.
const (
	StatusPass    = "PASS"
	StatusFail    = "FAIL"
	StatusWarning = "WARNING"
	StatusError   = "ERROR"
)

// Check names
const (
	CheckBaseCapital       = "BaseCapitalValidation"
	CheckChallengesPresent = "ChallengeDefinitionsPresent"
	CheckPayoutSum         = "PayoutPercentageSum"
	CheckStraightStructure = "StraightToFundedStructure"
	CheckEvaluationStages  = "EvaluationStructure"
)

// MinimumCapital is the provisioning capital floor
const MinimumCapital = 1000

// CheckEntry is one structured check outcome
type CheckEntry struct {
	Check   string `json:"check"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Result is the dry-run outcome for one configuration document.
// Status is FAIL iff any check is FAIL; warnings never demote it.
type Result struct {
	ConfigID   *string      `json:"config_id"`
	ConfigName string       `json:"config_name"`
	Status     string       `json:"status"`
	Checks     []CheckEntry `json:"checks"`
	Warnings   []string     `json:"warnings"`
	Errors     []string     `json:"errors"`
}

// Simulate runs every provisioning check against one document
func Simulate(cfg *model.AccountConfig, configName string) Result {
	result := Result{
		ConfigID:   cfg.ID,
		ConfigName: configName,
		Status:     StatusPass,
		Checks:     []CheckEntry{},
		Warnings:   []string{},
		Errors:     []string{},
	}

	checkBaseCapital(cfg, &result)
	checkChallengesPresent(cfg, &result)
	checkPayoutSum(cfg, &result)
	checkVariantStructure(cfg, &result)
	checkRiskParameters(cfg, &result)

	return result
}

// Check 1: capital floor. An absent baseCapital is an explicit
// failure, never silently treated as zero.
func checkBaseCapital(cfg *model.AccountConfig, result *Result) {
	if cfg.BaseCapital == nil {
		result.Checks = append(result.Checks, CheckEntry{
			Check:   CheckBaseCapital,
			Status:  StatusFail,
			Message: "Base capital not set",
		})
		result.Status = StatusFail
		result.Errors = append(result.Errors, "Insufficient base capital")
		return
	}

	capital := *cfg.BaseCapital
	if capital >= MinimumCapital {
		result.Checks = append(result.Checks, CheckEntry{
			Check:   CheckBaseCapital,
			Status:  StatusPass,
			Message: fmt.Sprintf("Base capital $%s is valid", formatAmount(capital)),
		})
		return
	}

	result.Checks = append(result.Checks, CheckEntry{
		Check:   CheckBaseCapital,
		Status:  StatusFail,
		Message: fmt.Sprintf("Base capital $%s below minimum", formatAmount(capital)),
	})
	result.Status = StatusFail
	result.Errors = append(result.Errors, "Insufficient base capital")
}

// formatAmount renders a currency amount with thousands separators,
// e.g. 25000 -> "25,000" and 1250.5 -> "1,250.5".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteString(frac)
	return b.String()
}

// Check 2: challenge presence
func checkChallengesPresent(cfg *model.AccountConfig, result *Result) {
	if n := len(cfg.ChallengeDefinitions); n > 0 {
		result.Checks = append(result.Checks, CheckEntry{
			Check:   CheckChallengesPresent,
			Status:  StatusPass,
			Message: fmt.Sprintf("%d challenge(s) defined", n),
		})
		return
	}

	result.Checks = append(result.Checks, CheckEntry{
		Check:   CheckChallengesPresent,
		Status:  StatusFail,
		Message: "No challenge definitions found",
	})
	result.Status = StatusFail
	result.Errors = append(result.Errors, "Missing challenge definitions")
}

// Check 3: payout sum. Only evaluated when staged payouts exist;
// missing percentages count as zero. Sums other than exactly 100 are a
// warning, never a failure.
func checkPayoutSum(cfg *model.AccountConfig, result *Result) {
	if cfg.PayoutRules == nil || len(cfg.PayoutRules.StagedPayouts) == 0 {
		return
	}

	var total float64
	for _, p := range cfg.PayoutRules.StagedPayouts {
		if p.PayoutPercent != nil {
			total += *p.PayoutPercent
		}
	}

	if total == 100 {
		result.Checks = append(result.Checks, CheckEntry{
			Check:   CheckPayoutSum,
			Status:  StatusPass,
			Message: "Payout percentages sum to 100%",
		})
		return
	}

	result.Checks = append(result.Checks, CheckEntry{
		Check:   CheckPayoutSum,
		Status:  StatusWarning,
		Message: fmt.Sprintf("Payout percentages sum to %v%% (expected 100%%)", total),
	})
	result.Warnings = append(result.Warnings, fmt.Sprintf("Unusual payout total: %v%%", total))
}

// Check 4: variant structure. Unexpected shapes produce a warning only,
// without a structured check entry.
func checkVariantStructure(cfg *model.AccountConfig, result *Result) {
	if cfg.Variant == nil {
		return
	}

	defs := cfg.ChallengeDefinitions

	switch *cfg.Variant {
	case model.VariantStraightToFunded:
		// Expected: exactly one durationless challenge
		if len(defs) == 1 && defs[0].DurationDays != nil && *defs[0].DurationDays == 0 {
			result.Checks = append(result.Checks, CheckEntry{
				Check:   CheckStraightStructure,
				Status:  StatusPass,
				Message: "Straight-to-funded structure is correct",
			})
			return
		}
		result.Warnings = append(result.Warnings, "Straight-to-funded structure may be incorrect")

	case model.VariantEvaluation:
		if len(defs) >= 2 {
			result.Checks = append(result.Checks, CheckEntry{
				Check:   CheckEvaluationStages,
				Status:  StatusPass,
				Message: fmt.Sprintf("Evaluation has %d stages", len(defs)),
			})
			return
		}
		result.Warnings = append(result.Warnings, "Evaluation typically has 2+ stages")
	}
}

// Check 5: risk sanity. A daily loss limit above the drawdown ceiling
// means a trader could breach the drawdown before the daily limit
// triggers; missing thresholds count as zero.
func checkRiskParameters(cfg *model.AccountConfig, result *Result) {
	for _, ch := range cfg.ChallengeDefinitions {
		var maxDD, dailyLoss float64
		if ch.Rules != nil {
			if ch.Rules.MaxDrawdown != nil {
				maxDD = *ch.Rules.MaxDrawdown
			}
			if ch.Rules.DailyLossLimit != nil {
				dailyLoss = *ch.Rules.DailyLossLimit
			}
		}

		if dailyLoss > maxDD {
			name := "unknown"
			if ch.Name != nil {
				name = *ch.Name
			}
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Challenge '%s': Daily loss limit exceeds max drawdown", name))
		}
	}
}
