package recommend

import (
	"sync"

	"go.uber.org/zap"

	"github.com/jonathan/career-recommender/internal/catalog"
	"github.com/jonathan/career-recommender/internal/corpus"
	"github.com/jonathan/career-recommender/internal/tfidf"
)

// Engine ties the catalog, the fitted vectorizer, and the ranking pipeline
// together. The vectorizer is fitted lazily on first use; the once-guard
// serializes concurrent first requests so the model is fitted exactly once
// and never observed partially built. Everything else is request-local.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger

	fitOnce    sync.Once
	vectorizer *tfidf.Vectorizer
	vocabulary map[string]bool
}

// NewEngine builds an engine over an immutable catalog. The model is not
// fitted yet; the first call to Recommend or ExplainQuery fits it.
func NewEngine(c *catalog.Catalog, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{catalog: c, logger: logger}
}

// fit builds the corpus and fits the TF-IDF model. Runs at most once.
func (e *Engine) fit() {
	e.fitOnce.Do(func() {
		docs := corpus.BuildDocuments(e.catalog)
		e.vectorizer = tfidf.Fit(docs)
		e.vocabulary = e.catalog.Vocabulary()
		e.logger.Info("vectorizer fitted",
			zap.Int("careers", e.catalog.Len()),
			zap.Int("vocabulary_size", e.vectorizer.VocabularySize()),
		)
	})
}

// Recommend runs the full pipeline for one preference query: validate,
// expand, score, domain-filter, gate, constraint-score, rank, narrate.
// Either a full result is produced or an error is returned; never both.
func (e *Engine) Recommend(query PreferenceQuery) (*Result, error) {
	norm := query.Normalized()
	if err := norm.Validate(); err != nil {
		return nil, err
	}
	if e.catalog.Len() == 0 {
		return nil, &InternalError{Message: "catalog is empty"}
	}

	e.fit()

	// Similarity for every catalog entry, then order by similarity rank.
	expanded := ExpandSkills(norm.Skills, e.vocabulary)
	simScores := e.vectorizer.ScoreAll(expanded)

	candidates := make([]ScoredCandidate, 0, len(simScores))
	for _, s := range simScores {
		candidates = append(candidates, ScoredCandidate{
			Record:   &e.catalog.Careers[s.Index],
			NLPScore: s.Score,
		})
	}
	candidates = sortBySimilarity(candidates)

	// Domain purity before everything else, then the relevance gate.
	active := ActiveCategories(norm.Skills)
	candidates = filterByCategory(candidates, active)
	candidates = thresholdGate(candidates)

	ranked := rankCandidates(candidates, norm)
	selected := top(ranked, maxResults)

	recommended := make([]Recommendation, 0, len(selected))
	for _, c := range selected {
		recommended = append(recommended, Recommendation{
			Role:   c.Record.Role,
			Reason: buildReason(c, norm.TimeHorizon),
		})
	}

	return &Result{
		Recommended:     recommended,
		FeasibilityNote: feasibilityNote(ranked, norm),
	}, nil
}

// QueryExplanation is the debug view of a query: the expanded text and its
// top-weighted TF-IDF terms.
type QueryExplanation struct {
	QueryText string             `json:"query_text"`
	TopTerms  []tfidf.TermWeight `json:"top_terms"`
}

// maxExplainTerms bounds the debug term list.
const maxExplainTerms = 20

// ExplainQuery exposes the expanded query text and its top-weighted terms
// for a preference set. Explainability surface only; validation matches
// Recommend.
func (e *Engine) ExplainQuery(query PreferenceQuery) (*QueryExplanation, error) {
	norm := query.Normalized()
	if err := norm.Validate(); err != nil {
		return nil, err
	}

	e.fit()

	expanded := ExpandSkills(norm.Skills, e.vocabulary)
	terms := e.vectorizer.QueryWeights(expanded)
	if len(terms) > maxExplainTerms {
		terms = terms[:maxExplainTerms]
	}

	return &QueryExplanation{QueryText: expanded, TopTerms: terms}, nil
}
