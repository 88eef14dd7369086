package catalog

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Vocabulary returns the set of lowercased word tokens occurring in any
// description or keyword across the catalog. The query expander uses it to
// avoid introducing terms the fitted vectorizer cannot score.
func (c *Catalog) Vocabulary() map[string]bool {
	vocab := make(map[string]bool)
	add := func(text string) {
		for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
			vocab[w] = true
		}
	}
	for i := range c.Careers {
		add(c.Careers[i].Description)
		for _, kw := range c.Careers[i].Keywords {
			add(kw)
		}
	}
	return vocab
}
