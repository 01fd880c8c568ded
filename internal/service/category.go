package service

import "strings"

// categoryRule maps a category to the description keywords that imply
// it. Rules are evaluated in order and the first match wins.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"food", []string{"swiggy", "zomato", "restaurant", "food"}},
	{"transport", []string{"uber", "ola", "petrol", "metro", "travel"}},
	{"bills", []string{"electricity", "phone", "internet", "rent", "bill"}},
	{"entertainment", []string{"netflix", "movie", "game", "entertainment"}},
}

// InferCategory guesses a transaction category from its free-text
// description by case-insensitive substring match. An empty string
// means no rule matched.
func InferCategory(description string) string {
	desc := strings.ToLower(description)
	if desc == "" {
		return ""
	}
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return ""
}
