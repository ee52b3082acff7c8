package view

import (
	"strings"

	"storefront/internal/domain"
)

// FilteredProducts derives the visible product list from the full catalogue
// and the current filter. The category filter is an exact, case-sensitive
// match against the resolved category name unless the "All" sentinel is
// selected. The search filter is a case-insensitive substring match against
// title or description; an empty or whitespace-only query matches everything.
// Both filters compose by conjunction, and input order is preserved.
func FilteredProducts(all []domain.Product, f Filter) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	if f.Category == AllCategories && query == "" {
		return all
	}
	filtered := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if f.Category != AllCategories && p.Category != f.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strings.ToLower(p.Description), query) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// CategoryOptions builds the category option set: the fetched category names
// when any were fetched, otherwise the distinct category names observed across
// products (in first-seen order), prefixed with the "All" sentinel.
func CategoryOptions(categories []domain.Category, products []domain.Product) []string {
	options := []string{AllCategories}
	if len(categories) > 0 {
		for _, c := range categories {
			options = append(options, c.Name)
		}
		return options
	}
	seen := map[string]bool{}
	for _, p := range products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		options = append(options, p.Category)
	}
	return options
}
