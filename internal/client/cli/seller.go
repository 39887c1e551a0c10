package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrijs2005/marketcart/internal/common"
)

// Seller prints the seller dashboard: the current user's listings and
// derived stats. Only seller accounts may view it.
func (a *App) Seller(ctx context.Context) error {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Please log in first.")
		return common.ErrNotLoggedIn
	}
	if !u.IsSeller {
		fmt.Fprintln(a.out, "This area is for seller accounts.")
		return common.ErrSellerAccountRequired
	}

	listings := a.catalog.ListBySeller(u.ID)
	fmt.Fprintf(a.out, "Seller dashboard for %s\n", u.Name)

	if len(listings) == 0 {
		fmt.Fprintln(a.out, "You don't have any products listed yet.")
		return nil
	}

	value := decimal.Zero
	for _, p := range listings {
		fmt.Fprintf(a.out, "%-4s %-28s %10s  %s\n",
			p.ID, common.TruncateText(p.Title, 28),
			common.FormatCurrency(p.Price), p.Condition.Label())
		value = value.Add(p.Price)
	}
	fmt.Fprintf(a.out, "%d listing(s), combined value %s\n",
		len(listings), common.FormatCurrency(value))
	return nil
}
