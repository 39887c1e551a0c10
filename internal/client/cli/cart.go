package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/marketcart/internal/common"
)

// Cart prints the cart contents and derived totals.
func (a *App) Cart(ctx context.Context) error {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return nil
	}

	for _, item := range items {
		fmt.Fprintf(a.out, "%-4s %-28s %10s x%-3d %10s\n",
			item.ProductID,
			common.TruncateText(item.Product.Title, 28),
			common.FormatCurrency(item.Product.Price),
			item.Quantity,
			common.FormatCurrency(item.LineTotal()),
		)
	}
	fmt.Fprintf(a.out, "Total: %d item(s), %s\n",
		a.cart.TotalItems(), common.FormatCurrency(a.cart.TotalPrice()))
	return nil
}

// AddToCart adds a catalog product to the cart; the optional second
// argument is the quantity (default 1).
func (a *App) AddToCart(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(a.out, "Usage: add <id> [qty]")
		return nil
	}

	quantity := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			fmt.Fprintln(a.out, "Quantity must be a whole number of at least 1.")
			return nil
		}
		quantity = n
	}

	p, ok := a.catalog.GetByID(args[0])
	if !ok {
		fmt.Fprintf(a.out, "Product %s not found.\n", args[0])
		return nil
	}

	if err := a.cart.Add(ctx, *p, quantity); err != nil {
		a.log.Error(ctx, "failed to add to cart", "product", p.ID, "error", err)
		return err
	}
	fmt.Fprintf(a.out, "Added %s to cart.\n", p.Title)
	return nil
}

// SetQuantity changes the quantity of a cart line; 0 removes the line.
func (a *App) SetQuantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.out, "Usage: qty <id> <n>")
		return nil
	}

	n, err := strconv.Atoi(args[1])
	if err != nil || n < 0 {
		fmt.Fprintln(a.out, "Quantity must be a whole number of at least 0.")
		return nil
	}

	if err := a.cart.UpdateQuantity(ctx, args[0], n); err != nil {
		a.log.Error(ctx, "failed to update quantity", "product", args[0], "error", err)
		return err
	}
	return a.Cart(ctx)
}

// RemoveFromCart deletes a cart line. Removing an absent product is a no-op.
func (a *App) RemoveFromCart(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: rm <id>")
		return nil
	}
	if err := a.cart.Remove(ctx, args[0]); err != nil {
		a.log.Error(ctx, "failed to remove from cart", "product", args[0], "error", err)
		return err
	}
	return a.Cart(ctx)
}

// ClearCart empties the cart after confirmation.
func (a *App) ClearCart(ctx context.Context) error {
	if a.cart.TotalItems() == 0 {
		fmt.Fprintln(a.out, "Your cart is already empty.")
		return nil
	}
	confirmed, err := GetYesNo(a.reader, "Remove all items from the cart?", a.out)
	if err != nil || !confirmed {
		return err
	}
	if err := a.cart.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear cart", "error", err)
		return err
	}
	fmt.Fprintln(a.out, "Cart cleared.")
	return nil
}

// Checkout places the order. It requires a logged-in session, mirroring
// the original cart page.
func (a *App) Checkout(ctx context.Context) error {
	if !a.session.IsLoggedIn() {
		fmt.Fprintln(a.out, "Please log in or register to complete your purchase.")
		return common.ErrNotLoggedIn
	}

	receipt, err := a.cart.Checkout(ctx)
	if err != nil {
		if errors.Is(err, common.ErrCartEmpty) {
			fmt.Fprintln(a.out, "Your cart is empty.")
			return nil
		}
		a.log.Error(ctx, "checkout failed", "error", err)
		return err
	}

	fmt.Fprintf(a.out, "Order placed! Thank you for your purchase of %d item(s) totaling %s.\n",
		receipt.TotalItems, common.FormatCurrency(receipt.TotalPrice))
	fmt.Fprintf(a.out, "Receipt: %s\n", receipt.ID)
	return nil
}
