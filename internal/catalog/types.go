// Package catalog provides the immutable career catalog: record types, the
// embedded dataset, and schema-validated loading.
package catalog

// Category is the fixed set of career domains used for domain filtering.
type Category string

// Known categories. The catalog loader rejects anything else.
const (
	CategoryTechnology Category = "Technology"
	CategoryHealthcare Category = "Healthcare"
	CategoryFinance    Category = "Finance"
	CategoryBusiness   Category = "Business"
	CategoryMarketing  Category = "Marketing"
	CategoryHR         Category = "HR"
	CategoryGovernment Category = "Government"
	CategoryCreative   Category = "Creative"
	CategorySales      Category = "Sales"
)

// Categories lists every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryHealthcare,
		CategoryFinance,
		CategoryBusiness,
		CategoryMarketing,
		CategoryHR,
		CategoryGovernment,
		CategoryCreative,
		CategorySales,
	}
}

// RiskLevel is the ordered risk scale low < medium < high.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Ordinal returns the position of the risk level on the low/medium/high
// scale, or -1 for an unknown value.
func (r RiskLevel) Ordinal() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}

// Stage identifies a salary stage within a career.
type Stage string

const (
	StageEntry  Stage = "entry"
	StageMid    Stage = "mid"
	StageSenior Stage = "senior"
)

// Stages lists the three salary stages every record must cover.
func Stages() []Stage {
	return []Stage{StageEntry, StageMid, StageSenior}
}

// CareerRecord is one immutable catalog entry. Salaries are in LPA
// (lakhs per annum).
type CareerRecord struct {
	Role        string            `json:"role"`
	Category    Category          `json:"category"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Salaries    map[Stage]float64 `json:"salaries"`
	Risk        RiskLevel         `json:"risk"`
}

// SalaryAt returns the compensation at the given stage. A missing stage
// defaults to 0 per the catalog invariant.
func (c *CareerRecord) SalaryAt(stage Stage) float64 {
	return c.Salaries[stage]
}

// Catalog is the immutable set of career records for the process lifetime.
type Catalog struct {
	Careers []CareerRecord `json:"careers"`
}

// Len returns the number of records in the catalog.
func (c *Catalog) Len() int {
	return len(c.Careers)
}
