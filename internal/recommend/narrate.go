package recommend

import (
	"fmt"
	"strings"
)

// Confirmation tiers for the confident path.
const (
	excellentScore = 0.85
	goodScore      = 0.70
)

// feasibilityNote narrates the ranked outcome. Pure function of the ranking
// and the structured preferences; it never inspects the full catalog.
func feasibilityNote(ranked []ScoredCandidate, query PreferenceQuery) string {
	if len(ranked) == 0 {
		return "No matching careers found for your criteria. Consider broadening your search."
	}

	best := ranked[0]
	if best.NLPScore < relevanceThreshold {
		return lowConfidenceNote(best, query)
	}

	switch {
	case best.TotalScore > excellentScore:
		return "Excellent matches found aligned with your profile and preferences."
	case best.TotalScore > goodScore:
		return "Good matches found. Some trade-offs in salary or risk may be present."
	default:
		return "Moderate matches. Recommendations balance your constraints with available options."
	}
}

// lowConfidenceNote builds the templated advice for weakly relevant results.
func lowConfidenceNote(best ScoredCandidate, query PreferenceQuery) string {
	var advice []string
	if query.SalaryRange == SalaryPremium && query.RiskAppetite == "low" {
		advice = append(advice, "High salary with low risk is rare.")
	}
	if query.SalaryRange == SalaryPremium && query.TimeHorizon == HorizonImmediate {
		advice = append(advice, "Starting directly at premium salary is difficult.")
	}
	if len(advice) == 0 {
		advice = append(advice, "Your criteria are very restrictive.")
	}

	return fmt.Sprintf("Limited strong matches (top score: %.0f%%). %s Consider broadening your search.",
		best.TotalScore*100, strings.Join(advice, " "))
}
