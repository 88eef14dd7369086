package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	// relevanceThreshold is the minimum nlp_score a candidate needs to pass
	// the gate without the fallback.
	relevanceThreshold = 0.30

	// maxResults caps both the final ranking and the gate fallback.
	maxResults = 3

	// Ranking weights. Must sum to 1.0.
	weightNLP    = 0.70
	weightSalary = 0.15
	weightRisk   = 0.15
)

// thresholdGate keeps candidates at or above the relevance threshold. When
// none qualify it falls back to the top maxResults of the domain-filtered
// list by similarity, so a domain match always yields something. An empty
// input stays empty.
func thresholdGate(candidates []ScoredCandidate) []ScoredCandidate {
	if len(candidates) == 0 {
		return candidates
	}

	passed := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.NLPScore >= relevanceThreshold {
			passed = append(passed, c)
		}
	}
	if len(passed) > 0 {
		return passed
	}

	if len(candidates) > maxResults {
		return candidates[:maxResults]
	}
	return candidates
}

// rankCandidates fills in constraint and total scores, then orders by total
// score descending. The sort is stable, so ties keep the incoming similarity
// rank.
func rankCandidates(candidates []ScoredCandidate, query PreferenceQuery) []ScoredCandidate {
	for i := range candidates {
		c := &candidates[i]
		c.SalaryScore = salaryScore(c.Record, query.SalaryRange, query.TimeHorizon)
		c.RiskScore = riskScore(c.Record, query.RiskAppetite)
		c.TotalScore = weightNLP*c.NLPScore + weightSalary*c.SalaryScore + weightRisk*c.RiskScore
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].TotalScore > candidates[j].TotalScore
	})
	return candidates
}

// buildReason renders the deterministic scoring breakdown for one ranked
// candidate. All three component scores are included so the blend can be
// reconstructed from the text.
func buildReason(c ScoredCandidate, timeHorizon string) string {
	salary := c.Record.SalaryAt(stageFor(timeHorizon))

	var b strings.Builder
	fmt.Fprintf(&b, "Match score %.0f%% (relevance %.0f%%, salary fit %.0f%%, risk fit %.0f%%).",
		c.TotalScore*100, c.NLPScore*100, c.SalaryScore*100, c.RiskScore*100)

	switch {
	case c.SalaryScore == 1.0:
		fmt.Fprintf(&b, " Fits salary range (%s LPA).", formatLPA(salary))
	case c.SalaryScore == 0.8:
		fmt.Fprintf(&b, " Exceeds salary target (%s LPA).", formatLPA(salary))
	default:
		fmt.Fprintf(&b, " Salary: %s LPA.", formatLPA(salary))
	}

	if c.RiskScore < 1.0 {
		b.WriteString(" Higher risk profile than requested.")
	}
	return b.String()
}

func formatLPA(salary float64) string {
	return strconv.FormatFloat(salary, 'f', -1, 64)
}

// sortBySimilarity orders candidates by nlp_score descending; the stable sort
// keeps catalog order for equal scores, making the similarity rank
// deterministic.
func sortBySimilarity(candidates []ScoredCandidate) []ScoredCandidate {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].NLPScore > candidates[j].NLPScore
	})
	return candidates
}

// top returns the first n candidates, or all of them when fewer survived.
func top(candidates []ScoredCandidate, n int) []ScoredCandidate {
	if len(candidates) > n {
		return candidates[:n]
	}
	return candidates
}
