// Package tfidf implements the term-weighting model used to match query text
// against catalog documents: TF-IDF vectors over unigrams and bigrams, scored
// by cosine similarity.
//
// The model is fitted once over a small, curated corpus. There is no
// vocabulary cap and no upper document-frequency cutoff: with tens of
// documents even common terms stay discriminative. IDF uses the smoothed
// formulation ln((1+n)/(1+df)) + 1 and document vectors are L2-normalized,
// so cosine similarity reduces to a dot product in [0,1].
package tfidf

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9][a-z0-9_-]*`)

// DocScore is the similarity of one corpus document to a query.
type DocScore struct {
	Index int
	Score float64
}

// TermWeight is a feature and its TF-IDF weight in a query vector.
type TermWeight struct {
	Term   string  `json:"term"`
	Weight float64 `json:"weight"`
}

// Vectorizer holds the fitted model: per-document normalized weight vectors
// and the corpus IDF table. Immutable after Fit.
type Vectorizer struct {
	docVectors []map[string]float64
	idf        map[string]float64
	numDocs    int
}

// Fit builds the model over the supplied documents. Every feature occurring
// in at least one document is kept.
func Fit(documents []string) *Vectorizer {
	n := len(documents)
	v := &Vectorizer{
		docVectors: make([]map[string]float64, n),
		idf:        make(map[string]float64),
		numDocs:    n,
	}

	// Term frequencies per document and document frequencies per feature.
	termFreqs := make([]map[string]float64, n)
	docFreqs := make(map[string]int)
	for i, doc := range documents {
		features := extractFeatures(doc)
		tf := make(map[string]float64, len(features))
		for _, f := range features {
			tf[f]++
		}
		termFreqs[i] = tf
		for f := range tf {
			docFreqs[f]++
		}
	}

	for feature, df := range docFreqs {
		v.idf[feature] = math.Log(float64(1+n)/float64(1+df)) + 1
	}

	for i, tf := range termFreqs {
		vec := make(map[string]float64, len(tf))
		for feature, count := range tf {
			vec[feature] = count * v.idf[feature]
		}
		normalize(vec)
		v.docVectors[i] = vec
	}

	return v
}

// NumDocuments returns the number of documents the model was fitted on.
func (v *Vectorizer) NumDocuments() int {
	return v.numDocs
}

// VocabularySize returns the number of features (unigrams and bigrams) kept.
func (v *Vectorizer) VocabularySize() int {
	return len(v.idf)
}

// ScoreAll computes the cosine similarity between the query and every fitted
// document, returned in document index order. An empty query scores 0.0
// everywhere: a zero vector has no defined direction, so no vectorization is
// attempted. Out-of-vocabulary query terms contribute zero weight.
func (v *Vectorizer) ScoreAll(query string) []DocScore {
	scores := make([]DocScore, v.numDocs)
	for i := range scores {
		scores[i].Index = i
	}

	queryVec := v.vectorizeQuery(query)
	if queryVec == nil {
		return scores
	}

	for i, docVec := range v.docVectors {
		scores[i].Score = dot(queryVec, docVec)
	}
	return scores
}

// QueryWeights returns the non-zero features of the query vector sorted by
// weight descending. Debug/explainability surface only.
func (v *Vectorizer) QueryWeights(query string) []TermWeight {
	queryVec := v.vectorizeQuery(query)
	if queryVec == nil {
		return nil
	}

	weights := make([]TermWeight, 0, len(queryVec))
	for term, w := range queryVec {
		weights = append(weights, TermWeight{Term: term, Weight: w})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Term < weights[j].Term
	})
	return weights
}

// vectorizeQuery builds the normalized query vector under the fitted
// vocabulary, or nil when the query is blank or shares no features with it.
func (v *Vectorizer) vectorizeQuery(query string) map[string]float64 {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	vec := make(map[string]float64)
	for _, f := range extractFeatures(query) {
		if idf, known := v.idf[f]; known {
			vec[f] += idf
		}
	}
	if len(vec) == 0 {
		return nil
	}
	normalize(vec)
	return vec
}

// extractFeatures lowercases and tokenizes text, removes English stop words,
// and emits both single tokens and adjacent-token pairs.
func extractFeatures(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < 2 || englishStopWords[tok] {
			continue
		}
		tokens = append(tokens, tok)
	}

	features := make([]string, 0, len(tokens)*2)
	features = append(features, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		features = append(features, tokens[i]+" "+tokens[i+1])
	}
	return features
}

func normalize(vec map[string]float64) {
	var sumSq float64
	for _, w := range vec {
		sumSq += w * w
	}
	if sumSq == 0 {
		return
	}
	norm := math.Sqrt(sumSq)
	for term, w := range vec {
		vec[term] = w / norm
	}
}

func dot(a, b map[string]float64) float64 {
	// Iterate the smaller map.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for term, wa := range a {
		if wb, ok := b[term]; ok {
			sum += wa * wb
		}
	}
	return sum
}
