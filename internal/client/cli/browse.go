package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/marketcart/internal/client/filter"
	"github.com/dmitrijs2005/marketcart/internal/client/models"
	"github.com/dmitrijs2005/marketcart/internal/common"
)

// List prints the products matching the current filter configuration.
func (a *App) List(ctx context.Context) error {
	products := filter.Apply(a.catalog.List(), a.filters)
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products match the current filters.")
		return nil
	}

	for _, p := range products {
		fmt.Fprintf(a.out, "%-4s %-28s %10s  %-9s %s\n",
			p.ID,
			common.TruncateText(p.Title, 28),
			common.FormatCurrency(p.Price),
			p.Condition.Label(),
			p.Category,
		)
	}
	fmt.Fprintf(a.out, "%d product(s)\n", len(products))
	return nil
}

// Show prints the full detail view of a single product. An unknown id is
// reported to the user, not treated as a failure.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	p, ok := a.catalog.GetByID(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Product %s not found.\n", args[0])
		return nil
	}

	fmt.Fprintf(a.out, "%s\n%s\n", p.Title, p.Description)
	fmt.Fprintf(a.out, "Price: %s  Condition: %s  Category: %s\n",
		common.FormatCurrency(p.Price), p.Condition.Label(), p.Category)
	fmt.Fprintf(a.out, "Sold by %s\n", p.SellerName)
	fmt.Fprintf(a.out, "Image: %s\n", p.PrimaryImage())

	if len(p.Properties) > 0 {
		keys := make([]string, 0, len(p.Properties))
		for k := range p.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(a.out, "  %s: %s\n", k, p.Properties[k])
		}
	}
	return nil
}

// Categories prints the distinct categories with listing counts.
func (a *App) Categories(ctx context.Context) error {
	for _, c := range a.catalog.Categories() {
		fmt.Fprintf(a.out, "%-20s %d listing(s)\n", c.Name, c.Count)
	}
	return nil
}

// SetFilter updates one field of the filter configuration:
//
//	filter search <text...>
//	filter category <name...>|all
//	filter min <price>
//	filter max <price>
//	filter cond <c1,c2,...>      (new, like_new, good, fair, poor)
//	filter sort <key>            (newest, oldest, price_asc, price_desc)
func (a *App) SetFilter(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: filter <search|category|min|max|cond|sort> <value>")
		return nil
	}

	field, value := args[0], strings.Join(args[1:], " ")

	switch field {
	case "search":
		a.filters.Search = value
	case "category":
		a.filters.Category = value
	case "min":
		a.filters.MinPrice = value
	case "max":
		a.filters.MaxPrice = value
	case "cond":
		var conds []models.Condition
		for _, raw := range strings.Split(value, ",") {
			c := models.Condition(strings.TrimSpace(raw))
			if !c.Valid() {
				fmt.Fprintf(a.out, "Unknown condition %q; valid: new, like_new, good, fair, poor\n", raw)
				return nil
			}
			conds = append(conds, c)
		}
		a.filters.Conditions = conds
	case "sort":
		a.filters.Sort = filter.Sort(value)
	default:
		fmt.Fprintf(a.out, "Unknown filter field %q\n", field)
		return nil
	}

	return a.List(ctx)
}

// ResetFilters restores the default filter configuration.
func (a *App) ResetFilters(ctx context.Context) error {
	a.filters = filter.Config{Category: filter.CategoryAll, Sort: filter.SortNewest}
	fmt.Fprintln(a.out, "Filters cleared.")
	return nil
}
