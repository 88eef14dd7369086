package recommend

import (
	"testing"

	"github.com/jonathan/career-recommender/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func record(entry, mid, senior float64, risk catalog.RiskLevel) *catalog.CareerRecord {
	return &catalog.CareerRecord{
		Role:     "Test Role",
		Category: catalog.CategoryTechnology,
		Salaries: map[catalog.Stage]float64{
			catalog.StageEntry:  entry,
			catalog.StageMid:    mid,
			catalog.StageSenior: senior,
		},
		Risk: risk,
	}
}

func TestSalaryScore_WithinBand(t *testing.T) {
	rec := record(4, 8, 15, catalog.RiskLow)

	assert.Equal(t, 1.0, salaryScore(rec, SalaryEntry, HorizonImmediate))
	assert.Equal(t, 1.0, salaryScore(rec, SalaryGrowth, HorizonMidTerm))
	assert.Equal(t, 1.0, salaryScore(rec, SalaryPremium, HorizonLongTerm))
}

func TestSalaryScore_AboveBandIsSoftPositive(t *testing.T) {
	rec := record(10, 20, 45, catalog.RiskMedium)

	// 10 LPA at entry stage exceeds the entry band's upper bound of 6.
	assert.Equal(t, 0.8, salaryScore(rec, SalaryEntry, HorizonImmediate))
	// 20 LPA exceeds the growth band's upper bound of 12.
	assert.Equal(t, 0.8, salaryScore(rec, SalaryGrowth, HorizonMidTerm))
	// The premium band has no upper bound, so 45 LPA is within it.
	assert.Equal(t, 1.0, salaryScore(rec, SalaryPremium, HorizonLongTerm))
}

func TestSalaryScore_BelowBandDecaysWithRatio(t *testing.T) {
	rec := record(3, 5.5, 9, catalog.RiskLow)

	// 3/6 = 0.5 for the growth band at entry stage.
	assert.InDelta(t, 0.5, salaryScore(rec, SalaryGrowth, HorizonImmediate), 1e-9)
	// 9/12 = 0.75 for the premium band at senior stage.
	assert.InDelta(t, 0.75, salaryScore(rec, SalaryPremium, HorizonLongTerm), 1e-9)
}

func TestSalaryScore_DecayFloor(t *testing.T) {
	rec := record(0, 0, 1, catalog.RiskHigh)

	// 1/12 would be far below the floor.
	assert.Equal(t, fallbackScore, salaryScore(rec, SalaryPremium, HorizonLongTerm))
}

func TestSalaryScore_ZeroSalaryInZeroLowerBand(t *testing.T) {
	rec := record(0, 0, 100, catalog.RiskHigh)

	// 0 LPA sits inside the entry band [0, 6).
	assert.Equal(t, 1.0, salaryScore(rec, SalaryEntry, HorizonImmediate))
}

func TestSalaryScore_BandBoundaryIsHalfOpen(t *testing.T) {
	rec := record(6, 12, 12, catalog.RiskLow)

	// 6 LPA is outside [0, 6) but inside [6, 12).
	assert.Equal(t, 0.8, salaryScore(rec, SalaryEntry, HorizonImmediate))
	assert.Equal(t, 1.0, salaryScore(rec, SalaryGrowth, HorizonImmediate))
	// 12 LPA is the premium lower bound.
	assert.Equal(t, 1.0, salaryScore(rec, SalaryPremium, HorizonMidTerm))
}

func TestRiskScore_AppetiteIsACeiling(t *testing.T) {
	low := record(1, 2, 3, catalog.RiskLow)
	medium := record(1, 2, 3, catalog.RiskMedium)
	high := record(1, 2, 3, catalog.RiskHigh)

	// At or below the appetite: perfect fit.
	assert.Equal(t, 1.0, riskScore(low, "low"))
	assert.Equal(t, 1.0, riskScore(low, "high"))
	assert.Equal(t, 1.0, riskScore(medium, "medium"))
	assert.Equal(t, 1.0, riskScore(high, "high"))

	// One step of excess risk costs 0.3.
	assert.InDelta(t, 0.7, riskScore(medium, "low"), 1e-9)
	assert.InDelta(t, 0.7, riskScore(high, "medium"), 1e-9)
	// Two steps.
	assert.InDelta(t, 0.4, riskScore(high, "low"), 1e-9)
}

func TestRiskScore_UnknownRiskFallsBackToNeutral(t *testing.T) {
	rec := &catalog.CareerRecord{Risk: catalog.RiskLevel("unknown")}
	assert.Equal(t, 0.5, riskScore(rec, "low"))
}

func TestScoreBounds(t *testing.T) {
	records := []*catalog.CareerRecord{
		record(0, 0, 100, catalog.RiskHigh),
		record(3, 5.5, 9, catalog.RiskLow),
		record(15, 30, 60, catalog.RiskHigh),
	}
	ranges := []string{SalaryEntry, SalaryGrowth, SalaryPremium}
	horizons := []string{HorizonImmediate, HorizonMidTerm, HorizonLongTerm}
	risks := []string{"low", "medium", "high"}

	for _, rec := range records {
		for _, sr := range ranges {
			for _, th := range horizons {
				s := salaryScore(rec, sr, th)
				assert.GreaterOrEqual(t, s, fallbackScore)
				assert.LessOrEqual(t, s, 1.0)
			}
		}
		for _, ra := range risks {
			s := riskScore(rec, ra)
			assert.GreaterOrEqual(t, s, fallbackScore)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}
