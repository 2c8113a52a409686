package agent

import "strings"

// Category is the advisory topic a query is classified into.
type Category string

const (
	CategoryPortfolio Category = "portfolio_management"
	CategoryRisk      Category = "risk_analysis"
	CategoryMarket    Category = "market_analysis"
	CategoryPlanning  Category = "financial_planning"
	CategoryGeneral   Category = "general"
)

// classifierOrder fixes the tie-break policy: the first category whose
// keyword list matches wins. Keyword sets overlap ("portfolio risk"), so
// this order is part of the contract.
var classifierOrder = []Category{
	CategoryPortfolio,
	CategoryRisk,
	CategoryMarket,
	CategoryPlanning,
}

var classifierKeywords = map[Category][]string{
	CategoryPortfolio: {"diversif", "portfolio", "allocat", "asset mix", "rebalanc"},
	CategoryRisk:      {"risk", "volatil", "safe", "conserv", "hedge", "drawdown"},
	CategoryMarket:    {"stock", "equity", "share", "market", "valuation", "dividend"},
	CategoryPlanning:  {"retire", "plan", "goal", "long-term", "horizon", "college", "saving"},
}

// Categories returns every advisory category, classification priority
// first, default last.
func Categories() []Category {
	out := make([]Category, 0, len(classifierOrder)+1)
	out = append(out, classifierOrder...)
	return append(out, CategoryGeneral)
}

// Classify maps free text to exactly one advisory category. Matching is
// case-insensitive substring containment against fixed per-category
// keyword lists. Empty or unmatched input yields CategoryGeneral; the
// function never fails.
func Classify(text string) Category {
	lowered := strings.ToLower(text)
	for _, category := range classifierOrder {
		for _, keyword := range classifierKeywords[category] {
			if strings.Contains(lowered, keyword) {
				return category
			}
		}
	}
	return CategoryGeneral
}
