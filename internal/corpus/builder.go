// Package corpus turns catalog records into the text documents the
// vectorizer is fitted on.
package corpus

import (
	"strings"

	"github.com/jonathan/career-recommender/internal/catalog"
)

// keywordBoost is how many times each keyword is repeated in a document.
// Keywords are the domain-distinctive terms of a record; inflating their term
// frequency keeps them from being drowned out by description prose.
const keywordBoost = 5

// BuildDocuments builds one text document per catalog record, index-aligned
// with the catalog. Deterministic and pure; run once at fit time.
func BuildDocuments(c *catalog.Catalog) []string {
	docs := make([]string, 0, c.Len())
	for i := range c.Careers {
		docs = append(docs, buildDocument(&c.Careers[i]))
	}
	return docs
}

func buildDocument(rec *catalog.CareerRecord) string {
	parts := make([]string, 0, 3+len(rec.Keywords)*keywordBoost)
	parts = append(parts, rec.Role, string(rec.Category), rec.Description)
	for _, kw := range rec.Keywords {
		for i := 0; i < keywordBoost; i++ {
			parts = append(parts, kw)
		}
	}
	return strings.Join(parts, " ")
}
