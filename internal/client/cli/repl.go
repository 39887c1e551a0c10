package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Categories(ctx context.Context) error
	SetFilter(ctx context.Context, args []string) error
	ResetFilters(ctx context.Context) error
	Cart(ctx context.Context) error
	AddToCart(ctx context.Context, args []string) error
	SetQuantity(ctx context.Context, args []string) error
	RemoveFromCart(ctx context.Context, args []string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Seller(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the marketcart CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Browsing (always available):
//	  - help                   show available commands
//	  - list                   list products matching the current filters
//	  - show <id>              show a single product
//	  - categories             list categories with listing counts
//	  - filter <field> <args>  set a filter (search/category/min/max/cond/sort)
//	  - clearfilter            reset all filters
//	  - cart                   show cart contents and totals
//	  - add <id> [qty]         add a product to the cart
//	  - qty <id> <n>           change a cart line's quantity
//	  - rm <id>                remove a product from the cart
//	  - clearcart              empty the cart
//	  - exit | quit            leave the program
//
//	Not logged in:
//	  - register               create an account
//	  - login                  authenticate
//
//	Logged in:
//	  - checkout               place the order and clear the cart
//	  - seller                 show the seller dashboard
//	  - logout                 log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mc> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Browse: (l)ist, show <id>, categories, filter <field> <args>, clearfilter")
			printlnFn("Cart:   cart, add <id> [qty], qty <id> <n>, rm <id>, clearcart, checkout")
			if a.isLoggedIn() {
				printlnFn("Account: seller, logout, exit")
			} else {
				printlnFn("Account: register, login, exit")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx, args)

		case "categories":
			_ = a.Categories(ctx)

		case "filter":
			_ = a.SetFilter(ctx, args)

		case "clearfilter":
			_ = a.ResetFilters(ctx)

		case "cart":
			_ = a.Cart(ctx)

		case "add":
			_ = a.AddToCart(ctx, args)

		case "qty":
			_ = a.SetQuantity(ctx, args)

		case "rm":
			_ = a.RemoveFromCart(ctx, args)

		case "clearcart":
			_ = a.ClearCart(ctx)

		case "checkout":
			_ = a.Checkout(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "seller":
			_ = a.Seller(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
