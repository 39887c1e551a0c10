package filter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
)

// testCatalog returns six products spanning categories, conditions, and
// prices, with staggered timestamps.
func testCatalog() []models.Product {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	mk := func(id, title, description, price string, cond models.Condition, category string, age time.Duration) models.Product {
		return models.Product{
			ID:          id,
			Title:       title,
			Description: description,
			Price:       decimal.RequireFromString(price),
			Condition:   cond,
			Category:    category,
			CreatedAt:   base.Add(age),
		}
	}

	return []models.Product{
		mk("1", "Vintage Leather Jacket", "Genuine leather jacket.", "89.99", models.ConditionGood, "Fashion", 0),
		mk("2", "Mechanical Keyboard", "Keyboard with RGB lighting.", "129.99", models.ConditionLikeNew, "Electronics", 24*time.Hour),
		mk("3", "Ceramic Planter Set", "Handmade ceramic planters.", "45.99", models.ConditionNew, "Home & Garden", 48*time.Hour),
		mk("4", "Mountain Bike", "Sturdy mountain bike.", "349.99", models.ConditionGood, "Sports & Outdoors", 72*time.Hour),
		mk("5", "Vintage Record Player", "Record player from the 1970s.", "179.99", models.ConditionFair, "Electronics", 96*time.Hour),
		mk("6", "Designer Watch", "Watch with leather band.", "225.00", models.ConditionLikeNew, "Jewelry", 120*time.Hour),
	}
}

func ids(products []models.Product) []string {
	result := make([]string, len(products))
	for i, p := range products {
		result[i] = p.ID
	}
	return result
}

func TestApply_NoRestrictions_ReturnsFullCatalog(t *testing.T) {
	catalog := testCatalog()

	// No search, category "all", unbounded prices, empty condition set,
	// unknown sort: catalog order is preserved.
	got := Apply(catalog, Config{Category: CategoryAll})
	require.Equal(t, ids(catalog), ids(got))

	// Default "newest" sort reverses the staggered seed order.
	got = Apply(catalog, Config{Category: CategoryAll, Sort: SortNewest})
	require.Equal(t, []string{"6", "5", "4", "3", "2", "1"}, ids(got))
}

func TestApply_EmptyCategoryBehavesLikeAll(t *testing.T) {
	catalog := testCatalog()
	require.Equal(t, ids(Apply(catalog, Config{Category: CategoryAll})), ids(Apply(catalog, Config{})))
}

func TestApply_Idempotent(t *testing.T) {
	catalog := testCatalog()
	cfg := Config{Search: "vintage", MinPrice: "50", Sort: SortPriceAsc}

	once := Apply(catalog, cfg)
	twice := Apply(once, cfg)
	require.Equal(t, once, twice)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	catalog := testCatalog()
	original := ids(catalog)

	Apply(catalog, Config{Sort: SortPriceDesc})
	require.Equal(t, original, ids(catalog))
}

func TestApply_SearchMatchesTitleOrDescription(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"title match, case-insensitive", "VINTAGE", []string{"1", "5"}},
		{"description match", "rgb", []string{"2"}},
		{"title or description", "leather", []string{"1", "6"}},
		{"no match", "spaceship", []string{}},
		{"blank search matches everything", "   ", []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(catalog, Config{Search: tt.search})
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_CategoryExactMatch(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, Config{Category: "Electronics"})
	require.Equal(t, []string{"2", "5"}, ids(got))

	// Matching is case-sensitive.
	got = Apply(catalog, Config{Category: "electronics"})
	require.Empty(t, got)
}

func TestApply_PriceBoundsInclusive(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, Config{MinPrice: "89.99", MaxPrice: "225.00"})
	require.Equal(t, []string{"1", "2", "5", "6"}, ids(got))

	got = Apply(catalog, Config{MinPrice: "350"})
	require.Empty(t, got)
}

func TestApply_MalformedBoundsTreatedAsAbsent(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, Config{MinPrice: "not-a-number", MaxPrice: "12..5"})
	require.Equal(t, ids(catalog), ids(got))
}

func TestApply_ConditionSet(t *testing.T) {
	catalog := testCatalog()

	// Empty set means no restriction, not "exclude all".
	got := Apply(catalog, Config{Conditions: nil})
	require.Len(t, got, len(catalog))

	got = Apply(catalog, Config{Conditions: []models.Condition{models.ConditionLikeNew}})
	require.Equal(t, []string{"2", "6"}, ids(got))

	got = Apply(catalog, Config{Conditions: []models.Condition{models.ConditionNew, models.ConditionFair}})
	require.Equal(t, []string{"3", "5"}, ids(got))
}

func TestApply_Sorting(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		sort Sort
		want []string
	}{
		{"price ascending", SortPriceAsc, []string{"3", "1", "2", "5", "6", "4"}},
		{"price descending", SortPriceDesc, []string{"4", "6", "5", "2", "1", "3"}},
		{"newest first", SortNewest, []string{"6", "5", "4", "3", "2", "1"}},
		{"oldest first", SortOldest, []string{"1", "2", "3", "4", "5", "6"}},
		{"unknown sort keeps incoming order", Sort("popularity"), []string{"1", "2", "3", "4", "5", "6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(catalog, Config{Sort: tt.sort})
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_SortIsStable(t *testing.T) {
	base := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("10.00")

	catalog := []models.Product{
		{ID: "a", Price: price, CreatedAt: base},
		{ID: "b", Price: price, CreatedAt: base},
		{ID: "c", Price: price, CreatedAt: base},
	}

	got := Apply(catalog, Config{Sort: SortPriceAsc})
	require.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = Apply(catalog, Config{Sort: SortNewest})
	require.Equal(t, []string{"a", "b", "c"}, ids(got))
}

func TestApply_CategoryAndPriceScenario(t *testing.T) {
	catalog := testCatalog()

	got := Apply(catalog, Config{Category: "Electronics", Sort: SortPriceAsc})
	require.Equal(t, []string{"2", "5"}, ids(got))
	require.True(t, got[0].Price.LessThanOrEqual(got[1].Price))
}
