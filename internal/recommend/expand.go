package recommend

import (
	"regexp"
	"strings"
)

// queryRepeat is how many times the expanded skills string is repeated in the
// final query, amplifying its term frequency relative to the per-document
// keyword boosting done at corpus-build time.
const queryRepeat = 3

var skillWordPattern = regexp.MustCompile(`[a-z0-9][a-z0-9+#.-]*`)

// intentExpansions maps a user skill word to related terms worth adding to
// the query. Pure lookup, no fuzzy matching or stemming. Candidates are only
// appended when the catalog vocabulary actually contains them, so the fitted
// vectorizer can score every term the expansion introduces.
var intentExpansions = map[string][]string{
	// Technology
	"coding":      {"programming", "software", "developer"},
	"programming": {"coding", "software", "developer", "engineer"},
	"developer":   {"software", "programming", "coding", "engineer"},
	"software":    {"coding", "programming", "developer"},
	"python":      {"programming", "data", "statistics"},
	"java":        {"programming", "software", "enterprise"},
	"sql":         {"data", "enterprise", "software"},
	"data":        {"analytics", "statistics", "machine", "learning"},
	"analytics":   {"data", "statistics", "insights"},
	"security":    {"cyber", "hacking", "networks", "protection"},
	"hacking":     {"security", "cyber", "networks"},
	"cloud":       {"software", "computing", "systems"},

	// Healthcare
	"doctor":   {"medical", "hospital", "patient", "medicine"},
	"medical":  {"doctor", "hospital", "patient", "healthcare"},
	"medicine": {"medical", "doctor", "patient", "healthcare"},
	"nursing":  {"nurse", "patient", "hospital", "care"},
	"nurse":    {"nursing", "patient", "hospital", "care"},
	"pharmacy": {"medicines", "drugs", "healthcare"},

	// Finance
	"finance":    {"banking", "investment", "accounting", "money"},
	"investment": {"finance", "banking", "stocks", "money"},
	"stocks":     {"finance", "investment", "banking", "money"},
	"banking":    {"finance", "investment", "money"},
	"accounting": {"audit", "tax", "finance"},
	"trading":    {"stocks", "investment", "finance"},

	// Business
	"consulting": {"strategy", "business", "management"},
	"strategy":   {"business", "consulting", "management"},
	"startup":    {"entrepreneur", "founder", "business", "innovation"},
	"management": {"business", "strategy", "corporate"},

	// Marketing and creative
	"marketing":   {"seo", "advertising", "social", "media", "brand"},
	"seo":         {"marketing", "content", "digital"},
	"design":      {"creative", "graphics", "visual"},
	"writing":     {"content", "copywriting", "blogs", "articles"},
	"content":     {"writing", "copywriting", "blogs"},
	"photoshop":   {"design", "creative", "graphics", "visual"},
	"illustrator": {"design", "creative", "graphics", "visual"},

	// HR, government, sales
	"recruitment": {"onboarding", "employee", "people"},
	"government":  {"public", "sector", "stable", "secure"},
	"sales":       {"leads", "commission", "b2b", "business"},
	"selling":     {"sales", "leads", "commission"},
}

// ExpandSkills turns free-text skills into the amplified query string fed to
// the vectorizer. Empty or blank skills yield an empty query.
func ExpandSkills(skills string, vocabulary map[string]bool) string {
	words := skillWordPattern.FindAllString(strings.ToLower(skills), -1)
	if len(words) == 0 {
		return ""
	}

	expanded := make([]string, 0, len(words)*2)
	for _, word := range words {
		expanded = append(expanded, word)
		for _, candidate := range intentExpansions[word] {
			if vocabulary[candidate] {
				expanded = append(expanded, candidate)
			}
		}
	}

	joined := strings.Join(expanded, " ")
	repeated := make([]string, queryRepeat)
	for i := range repeated {
		repeated[i] = joined
	}
	return strings.Join(repeated, " ")
}
