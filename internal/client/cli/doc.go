// Package cli implements the interactive marketcart client: a REPL over
// the catalog, filter engine, cart store, and session store. It is the
// stand-in for the original storefront's rendering layer.
package cli
