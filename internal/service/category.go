package service

import "strings"

// categoryRule maps a merchant-name keyword to a spending category.
type categoryRule struct {
	keyword  string
	category string
}

// categoryRules is a static lookup table, not computed classification; the
// dashboard presents the result with a "categorized" badge but the mechanism
// is a plain substring match. First matching rule wins.
var categoryRules = []categoryRule{
	{"grocer", "Groceries"},
	{"market", "Groceries"},
	{"supermarkt", "Groceries"},
	{"restaurant", "Dining"},
	{"cafe", "Dining"},
	{"coffee", "Dining"},
	{"pizza", "Dining"},
	{"uber", "Transport"},
	{"taxi", "Transport"},
	{"fuel", "Transport"},
	{"shell", "Transport"},
	{"netflix", "Entertainment"},
	{"spotify", "Entertainment"},
	{"cinema", "Entertainment"},
	{"steam", "Entertainment"},
	{"pharmacy", "Health"},
	{"gym", "Health"},
	{"rent", "Housing"},
	{"mortgage", "Housing"},
	{"electric", "Utilities"},
	{"water", "Utilities"},
	{"internet", "Utilities"},
	{"salary", "Income"},
	{"payroll", "Income"},
}

// DefaultCategory is assigned when no keyword matches.
const DefaultCategory = "Other"

// LookupCategory returns the category for a merchant name via the static
// keyword table.
func LookupCategory(merchant string) string {
	lower := strings.ToLower(merchant)
	for _, rule := range categoryRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.category
		}
	}
	return DefaultCategory
}
