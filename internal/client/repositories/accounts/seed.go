package accounts

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
	"github.com/dmitrijs2005/marketcart/internal/dbx"
)

// DemoPassword is the password every seeded demo account accepts.
const DemoPassword = "password123"

// Seed inserts the demo accounts when the accounts table is empty, so a
// fresh database always has a buyer and a seller to log in with. The
// seller id matches the seed catalog's "Vintage Finds" listings. All demo
// accounts are created in a single transaction.
func Seed(ctx context.Context, db *sql.DB) error {
	repo := NewSQLiteRepository(db)

	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check accounts: %w", err)
	}
	if n > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	demo := []models.User{
		{
			ID:           "user1",
			Email:        "buyer@example.com",
			Name:         "John Buyer",
			IsSeller:     false,
			CreatedAt:    time.Now(),
			PasswordHash: hash,
		},
		{
			ID:           "seller1",
			Email:        "seller@example.com",
			Name:         "Vintage Finds",
			IsSeller:     true,
			CreatedAt:    time.Now(),
			PasswordHash: hash,
		},
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		txRepo := NewSQLiteRepository(tx)
		for _, u := range demo {
			if err := txRepo.Create(ctx, &u); err != nil {
				return fmt.Errorf("failed to seed account %s: %w", u.Email, err)
			}
		}
		return nil
	})
}
