package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
	"github.com/dmitrijs2005/marketcart/internal/common"
)

// InMemoryRepository is a slice-backed Repository for tests. Insertion
// order is preserved so lookups are deterministic.
type InMemoryRepository struct {
	users []models.User
}

func NewInMemoryRepository(seed ...models.User) *InMemoryRepository {
	return &InMemoryRepository{users: append([]models.User(nil), seed...)}
}

func (r *InMemoryRepository) Create(_ context.Context, u *models.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("account with email %s already exists", u.Email)
		}
	}
	r.users = append(r.users, *u)
	return nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) Count(_ context.Context) (int, error) {
	return len(r.users), nil
}
