// Package catalog provides the read-only product catalog. The catalog is
// fixed at startup; there is no mutation path.
package catalog

import (
	"sort"

	"github.com/dmitrijs2005/marketcart/internal/client/models"
)

// Store is the read surface of the catalog. Products are available
// synchronously; an absent id is a valid "not found" outcome, not an error.
type Store interface {
	// List returns every product in catalog order.
	List() []models.Product

	// GetByID returns the product with the given id, or ok=false.
	GetByID(id string) (*models.Product, bool)

	// ListBySeller returns the products listed by the given seller,
	// in catalog order.
	ListBySeller(sellerID string) []models.Product

	// Categories returns the distinct category names with listing counts,
	// sorted by name.
	Categories() []Category
}

// Category is a category name with the number of listings it contains.
type Category struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StaticStore is a Store over a fixed slice of products.
type StaticStore struct {
	products []models.Product
	byID     map[string]int
}

// NewStaticStore builds a StaticStore over the given products. The slice
// is copied; later changes to the argument do not affect the store.
func NewStaticStore(products []models.Product) *StaticStore {
	s := &StaticStore{
		products: append([]models.Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range s.products {
		s.byID[p.ID] = i
	}
	return s
}

func (s *StaticStore) List() []models.Product {
	return append([]models.Product(nil), s.products...)
}

func (s *StaticStore) GetByID(id string) (*models.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	p := s.products[i]
	return &p, true
}

func (s *StaticStore) ListBySeller(sellerID string) []models.Product {
	var result []models.Product
	for _, p := range s.products {
		if p.SellerID == sellerID {
			result = append(result, p)
		}
	}
	return result
}

func (s *StaticStore) Categories() []Category {
	counts := make(map[string]int)
	for _, p := range s.products {
		counts[p.Category]++
	}

	result := make([]Category, 0, len(counts))
	for name, count := range counts {
		result = append(result, Category{Name: name, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
