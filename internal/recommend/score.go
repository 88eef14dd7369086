package recommend

import (
	"math"

	"github.com/jonathan/career-recommender/internal/catalog"
)

// fallbackScore is the floor for the salary and risk decay branches.
const fallbackScore = 0.2

// horizonStage maps a time horizon to the salary stage it implies.
var horizonStage = map[string]catalog.Stage{
	HorizonImmediate: catalog.StageEntry,
	HorizonMidTerm:   catalog.StageMid,
	HorizonLongTerm:  catalog.StageSenior,
}

// salaryBand is a half-open compensation interval [Lower, Upper) in LPA.
type salaryBand struct {
	Lower float64
	Upper float64
}

var salaryBands = map[string]salaryBand{
	SalaryEntry:   {Lower: 0, Upper: 6},
	SalaryGrowth:  {Lower: 6, Upper: 12},
	SalaryPremium: {Lower: 12, Upper: math.Inf(1)},
}

// stageFor resolves the salary stage implied by a validated time horizon.
func stageFor(timeHorizon string) catalog.Stage {
	if stage, ok := horizonStage[timeHorizon]; ok {
		return stage
	}
	return catalog.StageEntry
}

// salaryScore rates how well a record's compensation at the implied stage
// fits the requested band: 1.0 within the band, 0.8 above it (earning more
// than asked is a soft positive), and a ratio-based decay floored at
// fallbackScore below it.
func salaryScore(rec *catalog.CareerRecord, salaryRange, timeHorizon string) float64 {
	salary := rec.SalaryAt(stageFor(timeHorizon))
	band := salaryBands[salaryRange]

	switch {
	case salary >= band.Lower && salary < band.Upper:
		return 1.0
	case salary >= band.Upper:
		return 0.8
	case band.Lower == 0:
		// Below a zero-lower-bound band cannot happen with non-negative
		// salaries, but guard the division anyway.
		return 0.5
	default:
		return math.Max(fallbackScore, salary/band.Lower)
	}
}

// riskScore treats the user's appetite as a ceiling: a record at or below it
// scores 1.0, and each ordinal step of excess risk costs 0.3, floored at
// fallbackScore.
func riskScore(rec *catalog.CareerRecord, riskAppetite string) float64 {
	recPos := rec.Risk.Ordinal()
	userPos := catalog.RiskLevel(riskAppetite).Ordinal()
	if recPos < 0 || userPos < 0 {
		return 0.5
	}

	gap := recPos - userPos
	if gap <= 0 {
		return 1.0
	}
	return math.Max(fallbackScore, 1.0-0.3*float64(gap))
}
