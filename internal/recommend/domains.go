package recommend

import (
	"strings"

	"github.com/jonathan/career-recommender/internal/catalog"
)

// categoryTriggers maps each catalog category to the substrings in a user's
// skills text that activate it. Kept as data so the table is independently
// testable; activation is plain substring containment on the lowercased text.
var categoryTriggers = map[catalog.Category][]string{
	catalog.CategoryTechnology: {
		"coding", "programming", "software", "developer", "computer",
		"cyber", "security", "network", "machine learning", "python",
		"java", "sql", "cloud", "devops", "data scien", "analytics",
	},
	catalog.CategoryHealthcare: {
		"medical", "doctor", "hospital", "patient", "nurse", "nursing",
		"pharma", "medicine", "health", "clinic", "mbbs", "surgeon",
	},
	catalog.CategoryFinance: {
		"finance", "financial", "investment", "stocks", "banking",
		"trading", "accounting", "audit", "taxation", "chartered accountant",
	},
	catalog.CategoryBusiness: {
		"business", "strategy", "consulting", "management", "startup",
		"entrepreneur", "mba", "operations",
	},
	catalog.CategoryMarketing: {
		"marketing", "seo", "advertis", "social media", "branding",
		"campaign", "growth hacking",
	},
	catalog.CategoryHR: {
		"human resource", "recruit", "hiring", "payroll", "onboarding",
		"people operations", "talent",
	},
	catalog.CategoryGovernment: {
		"government", "civil service", "public sector", "upsc", "psu",
		"sarkari", "administration", "bureaucra",
	},
	catalog.CategoryCreative: {
		"design", "creative", "artist", "illustration", "graphic",
		"figma", "photoshop", "writing", "copywrit", "blogging",
	},
	catalog.CategorySales: {
		"sales", "selling", "cold calling", "lead generation",
		"business development", "commission", "negotiation",
	},
}

// ActiveCategories scans the skills text for category triggers and returns
// the activated set, possibly empty.
func ActiveCategories(skills string) map[catalog.Category]bool {
	active := make(map[catalog.Category]bool)
	text := strings.ToLower(skills)
	if strings.TrimSpace(text) == "" {
		return active
	}

	for category, triggers := range categoryTriggers {
		for _, trigger := range triggers {
			if strings.Contains(text, trigger) {
				active[category] = true
				break
			}
		}
	}
	return active
}

// filterByCategory applies domain purity: with an empty activation set every
// candidate passes; otherwise only candidates in an activated category
// survive, unconditionally.
func filterByCategory(candidates []ScoredCandidate, active map[catalog.Category]bool) []ScoredCandidate {
	if len(active) == 0 {
		return candidates
	}

	filtered := make([]ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if active[c.Record.Category] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
