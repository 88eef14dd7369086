// Package recommend implements the matching-and-ranking engine: query
// expansion, domain filtering, threshold gating, constraint scoring, weighted
// ranking, and feasibility narration over the fitted TF-IDF model.
package recommend

import (
	"strings"

	"github.com/jonathan/career-recommender/internal/catalog"
)

// Salary range identifiers accepted in a PreferenceQuery.
const (
	SalaryEntry   = "entry"
	SalaryGrowth  = "growth"
	SalaryPremium = "premium"
)

// Time horizon identifiers accepted in a PreferenceQuery.
const (
	HorizonImmediate = "immediate"
	HorizonMidTerm   = "mid_term"
	HorizonLongTerm  = "long_term"
)

// PreferenceQuery is one user's stated preferences. Transient: created per
// request and discarded with the response.
type PreferenceQuery struct {
	SalaryRange  string `json:"salary_range" validate:"required,oneof=entry growth premium"`
	TimeHorizon  string `json:"time_horizon" validate:"required,oneof=immediate mid_term long_term"`
	RiskAppetite string `json:"risk_appetite" validate:"required,oneof=low medium high"`
	Skills       string `json:"skills,omitempty"`
}

// Normalized returns a copy with the enum fields trimmed and lowercased and
// the skills text trimmed. Out-of-enum values still fail validation; this is
// normalization, not coercion.
func (q PreferenceQuery) Normalized() PreferenceQuery {
	return PreferenceQuery{
		SalaryRange:  strings.ToLower(strings.TrimSpace(q.SalaryRange)),
		TimeHorizon:  strings.ToLower(strings.TrimSpace(q.TimeHorizon)),
		RiskAppetite: strings.ToLower(strings.TrimSpace(q.RiskAppetite)),
		Skills:       strings.TrimSpace(q.Skills),
	}
}

// ScoredCandidate is one surviving catalog record with its per-request
// component scores, each in [0,1].
type ScoredCandidate struct {
	Record      *catalog.CareerRecord
	NLPScore    float64
	SalaryScore float64
	RiskScore   float64
	TotalScore  float64
}

// Recommendation is one ranked output entry with its human-readable scoring
// breakdown.
type Recommendation struct {
	Role   string `json:"role"`
	Reason string `json:"reason"`
}

// Result is the full outcome of one recommendation request.
type Result struct {
	Recommended     []Recommendation `json:"recommended_careers"`
	FeasibilityNote string           `json:"feasibility_note"`
}
