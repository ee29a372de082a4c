// Package classify assigns documents to a fixed category taxonomy using
// keyword rules. Classification is a pure function of (content, filename):
// fast, deterministic, no external calls.
package classify

import "strings"

// Category is one of the fixed document classification labels.
type Category string

const (
	CategoryFinancial Category = "financial"
	CategoryLegal     Category = "legal"
	CategoryHR        Category = "hr"
	CategoryTechnical Category = "technical"
	CategoryGeneral   Category = "general"
)

// String returns the category label.
func (c Category) String() string {
	return string(c)
}

// classificationRule defines a single keyword rule.
type classificationRule struct {
	category Category
	keywords []string
}

// classificationRules lists all rules in priority order (first match wins):
// financial > legal > hr > technical. Documents matching no rule fall back
// to general.
var classificationRules = []classificationRule{
	{
		category: CategoryFinancial,
		keywords: []string{"invoice", "payment", "receipt", "budget", "financial", "cost", "price", "total", "amount"},
	},
	{
		category: CategoryLegal,
		keywords: []string{"contract", "agreement", "legal", "terms", "policy", "clause", "liability", "copyright"},
	},
	{
		category: CategoryHR,
		keywords: []string{"resume", "cv", "employee", "hr", "payroll", "benefits", "hiring", "interview"},
	},
	{
		category: CategoryTechnical,
		keywords: []string{"technical", "specification", "manual", "guide", "documentation", "api", "software"},
	},
}

// Classify assigns a category to a document from its content and filename.
// Both are lower-cased and tested for substring containment against each
// rule's keyword set in priority order.
func Classify(content, filename string) Category {
	contentLower := strings.ToLower(content)
	filenameLower := strings.ToLower(filename)

	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(contentLower, keyword) || strings.Contains(filenameLower, keyword) {
				return rule.category
			}
		}
	}

	return CategoryGeneral
}
