// Package filter derives a visible, ordered product subset from the
// catalog and a filter configuration. Apply is a pure function: it never
// mutates its inputs and the same inputs always produce the same output.
package filter

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
)

// Sort selects the ordering applied after filtering.
type Sort string

const (
	SortNewest    Sort = "newest"
	SortOldest    Sort = "oldest"
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
)

// CategoryAll disables category filtering; an empty category behaves the same.
const CategoryAll = "all"

// Config describes the active filters. Zero values mean "no restriction":
// empty search matches everything, empty/"all" category matches everything,
// empty price bounds are unbounded, and an empty condition set does not
// exclude anything. Price bounds arrive as free text from the UI; values
// that do not parse as numbers are treated as absent.
type Config struct {
	Search     string             `json:"search"`
	Category   string             `json:"category"`
	MinPrice   string             `json:"minPrice"`
	MaxPrice   string             `json:"maxPrice"`
	Conditions []models.Condition `json:"conditions"`
	Sort       Sort               `json:"sort"`
}

// Apply returns the products matching every active predicate, ordered
// according to cfg.Sort. Filtering predicates combine with logical AND.
// Sorting is stable; an unrecognized sort key leaves the incoming order
// unchanged.
func Apply(products []models.Product, cfg Config) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(&p, &cfg) {
			result = append(result, p)
		}
	}

	switch cfg.Sort {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Price.LessThan(result[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].Price.LessThan(result[i].Price)
		})
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].CreatedAt.Before(result[i].CreatedAt)
		})
	case SortOldest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	}

	return result
}

func matches(p *models.Product, cfg *Config) bool {
	if s := strings.TrimSpace(cfg.Search); s != "" {
		term := strings.ToLower(s)
		title := strings.ToLower(p.Title)
		description := strings.ToLower(p.Description)
		if !strings.Contains(title, term) && !strings.Contains(description, term) {
			return false
		}
	}

	// Category is an exact, case-sensitive match.
	if cfg.Category != "" && cfg.Category != CategoryAll && p.Category != cfg.Category {
		return false
	}

	if min, ok := parsePrice(cfg.MinPrice); ok && p.Price.LessThan(min) {
		return false
	}
	if max, ok := parsePrice(cfg.MaxPrice); ok && p.Price.GreaterThan(max) {
		return false
	}

	if len(cfg.Conditions) > 0 {
		found := false
		for _, c := range cfg.Conditions {
			if p.Condition == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// parsePrice converts a raw bound into a decimal. Empty or malformed input
// means the bound is absent.
func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
