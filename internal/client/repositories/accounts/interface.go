// Package accounts stores the set of known user accounts the mock backend
// authenticates against.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
)

// Repository describes CRUD and lookup operations for user accounts.
// Implementations are typically backed by a local SQLite database; tests
// use the in-memory variant.
type Repository interface {
	// Create inserts a new account. The caller is responsible for checking
	// email uniqueness beforehand; a duplicate email surfaces as an error.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the account with the exact email, or
	// common.ErrNotFound if no such account exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the account with the given id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// Count returns the number of known accounts.
	Count(ctx context.Context) (int, error)
}
