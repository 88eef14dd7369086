package recommend

import (
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/jonathan/career-recommender/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalogVocabulary(t *testing.T) map[string]bool {
	t.Helper()
	return catalog.Default().Vocabulary()
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(catalog.Default(), nil)
}

func roles(result *Result) []string {
	out := make([]string, 0, len(result.Recommended))
	for _, r := range result.Recommended {
		out = append(out, r.Role)
	}
	return out
}

func TestRecommend_ReturnsAtMostThreeResults(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "medium",
		Skills:       "python programming and data",
	})
	require.NoError(t, err)
	assert.Len(t, result.Recommended, 3)
	assert.NotEmpty(t, result.FeasibilityNote)
}

func TestRecommend_ValidationErrorReturnsNoResult(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "ultra",
		TimeHorizon:  "mid_term",
		RiskAppetite: "low",
	})
	require.Nil(t, result)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "salary_range", verr.Field)
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	e := NewEngine(&catalog.Catalog{}, nil)

	result, err := e.Recommend(validQuery())
	require.Nil(t, result)

	var ierr *InternalError
	require.ErrorAs(t, err, &ierr)
}

func TestRecommend_EmptySkillsFallsBackToConstraintOrdering(t *testing.T) {
	e := newTestEngine(t)

	// With no skills every similarity is zero, so the gate falls back to the
	// first three catalog entries and the constraint scores decide the order.
	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "entry",
		TimeHorizon:  "immediate",
		RiskAppetite: "low",
	})
	require.NoError(t, err)
	require.Len(t, result.Recommended, 3)

	// Service-based wins: entry salary in band and low risk. The other two
	// tie and keep catalog order.
	assert.Equal(t, []string{
		"Service-Based Software Engineer",
		"Software Development Engineer (Product)",
		"Data Scientist",
	}, roles(result))

	assert.Contains(t, result.FeasibilityNote, "Limited strong matches")
}

func TestRecommend_HealthcareSkillsStayInHealthcare(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "low",
		Skills:       "I want to help patients as a doctor in a hospital",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommended)

	byRole := rolesByCategory(t)
	for _, r := range result.Recommended {
		assert.Equal(t, catalog.CategoryHealthcare, byRole[r.Role], "role %s leaked through the domain filter", r.Role)
	}
}

func TestRecommend_FinanceSkillsExcludeTechnology(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "premium",
		TimeHorizon:  "long_term",
		RiskAppetite: "high",
		Skills:       "finance investment banking stocks",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommended)

	byRole := rolesByCategory(t)
	for _, r := range result.Recommended {
		assert.Equal(t, catalog.CategoryFinance, byRole[r.Role], "role %s is outside the activated category", r.Role)
	}
}

func TestRecommend_RestrictiveCriteriaAdvice(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "premium",
		TimeHorizon:  "immediate",
		RiskAppetite: "low",
	})
	require.NoError(t, err)

	assert.Contains(t, result.FeasibilityNote, "High salary with low risk is rare.")
	assert.Contains(t, result.FeasibilityNote, "Starting directly at premium salary is difficult.")
	assert.Contains(t, result.FeasibilityNote, "Consider broadening your search.")
}

func TestRecommend_IsDeterministic(t *testing.T) {
	query := PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "medium",
		Skills:       "coding and cloud computing",
	}

	first, err := newTestEngine(t).Recommend(query)
	require.NoError(t, err)
	second, err := newTestEngine(t).Recommend(query)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRecommend_ConcurrentColdStart(t *testing.T) {
	e := newTestEngine(t)
	query := PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "medium",
		Skills:       "machine learning and statistics",
	}

	const workers = 16
	results := make([]*Result, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.Recommend(query)
		}(i)
	}
	wg.Wait()

	// All concurrent first requests see the same fitted model.
	reference, err := json.Marshal(results[0])
	require.NoError(t, err)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		got, err := json.Marshal(results[i])
		require.NoError(t, err)
		assert.Equal(t, string(reference), string(got))
	}
}

func TestRecommend_ReasonsCarryScoreBreakdown(t *testing.T) {
	e := newTestEngine(t)

	result, err := e.Recommend(PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "medium",
		Skills:       "python data analytics",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Recommended)

	for _, r := range result.Recommended {
		assert.Contains(t, r.Reason, "Match score")
		assert.Contains(t, r.Reason, "relevance")
	}
}

func TestExplainQuery_ExpandsAndWeighsTerms(t *testing.T) {
	e := newTestEngine(t)

	explanation, err := e.ExplainQuery(PreferenceQuery{
		SalaryRange:  "growth",
		TimeHorizon:  "mid_term",
		RiskAppetite: "medium",
		Skills:       "python data",
	})
	require.NoError(t, err)

	// The expanded text repeats and carries the intent expansions.
	assert.Equal(t, 3, strings.Count(explanation.QueryText, "python"))
	assert.NotEmpty(t, explanation.TopTerms)
	assert.LessOrEqual(t, len(explanation.TopTerms), maxExplainTerms)
	for i := 1; i < len(explanation.TopTerms); i++ {
		assert.GreaterOrEqual(t, explanation.TopTerms[i-1].Weight, explanation.TopTerms[i].Weight)
	}
}

func TestExplainQuery_ValidatesLikeRecommend(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.ExplainQuery(PreferenceQuery{SalaryRange: "growth"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func rolesByCategory(t *testing.T) map[string]catalog.Category {
	t.Helper()
	byRole := make(map[string]catalog.Category)
	for _, c := range catalog.Default().Careers {
		byRole[c.Role] = c.Category
	}
	return byRole
}
