package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/marketcart/internal/client/cart"
	"github.com/dmitrijs2005/marketcart/internal/client/catalog"
	"github.com/dmitrijs2005/marketcart/internal/client/config"
	"github.com/dmitrijs2005/marketcart/internal/client/filter"
	"github.com/dmitrijs2005/marketcart/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/marketcart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/marketcart/internal/client/session"
	"github.com/dmitrijs2005/marketcart/internal/logging"
)

// App wires the stores together and drives them from the REPL. It stands
// in for the original rendering layer: it holds the current filter
// configuration and forwards user actions to the catalog, cart, and
// session stores.
type App struct {
	config  *config.Config
	log     logging.Logger
	catalog catalog.Store
	cart    *cart.Store
	session *session.Store

	filters filter.Config

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, seeds demo accounts, and rehydrates
// persisted cart and session state.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := initDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	if err := accounts.Seed(ctx, db); err != nil {
		return nil, err
	}
	accountsRepo := accounts.NewSQLiteRepository(db)

	storage := kv.NewSQLiteRepository(db)

	cartStore := cart.NewStore(storage, log, c.CheckoutDelay)
	if err := cartStore.Restore(ctx); err != nil {
		return nil, err
	}

	sessionStore := session.NewStore(accountsRepo, storage, log, []byte(c.SessionSecret), c.AuthDelay)
	if err := sessionStore.Restore(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:  c,
		log:     log,
		catalog: catalog.NewStaticStore(catalog.SeedProducts()),
		cart:    cartStore,
		session: sessionStore,
		filters: filter.Config{Category: filter.CategoryAll, Sort: filter.SortNewest},
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// status renders the prompt suffix: the signed-in user name and the cart
// badge, mirroring the original navbar.
func (a *App) status() string {
	s := ""
	if u := a.session.CurrentUser(); u != nil {
		s = u.Name
		if u.IsSeller {
			s += " [seller]"
		}
	}
	if n := a.cart.TotalItems(); n > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("cart:%d", n)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the marketcart CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
