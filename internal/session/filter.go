package session

import "strings"

// FilterSummary returns the subsequence of items whose product contains
// query case-insensitively, preserving input order. The empty query
// returns items unchanged. Purely derived state: no fetch, no mutation.
func FilterSummary(items []TrendSummaryItem, query string) []TrendSummaryItem {
	if query == "" {
		return items
	}

	q := strings.ToLower(query)
	filtered := make([]TrendSummaryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Product), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
