package inventory

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/gearfit/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory inventory. It stands in for the
// storefront's persistence layer and applies the candidate pre-filtering
// the recommendation engine expects: sport, optional category and shop,
// stock on hand, and an optional price interval.
type MemoryStore struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewMemoryStore creates an inventory store seeded with the given products.
func NewMemoryStore(products ...domain.Product) *MemoryStore {
	return &MemoryStore{products: products}
}

// Add appends products to the inventory.
func (s *MemoryStore) Add(products ...domain.Product) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.products = append(s.products, products...)
}

// Query returns in-stock products matching the filter, in insertion order.
// An empty result is not an error; ranking callers render an empty state.
func (s *MemoryStore) Query(ctx context.Context, filter domain.InventoryFilter) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var matched []domain.Product
	for _, p := range s.products {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !matchesFilter(p, filter) {
			continue
		}
		matched = append(matched, p)
	}

	return matched, nil
}

// Size returns the number of products held (for startup logging).
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products)
}

func matchesFilter(p domain.Product, filter domain.InventoryFilter) bool {
	if p.Quantity <= 0 {
		return false
	}
	if filter.Sport != "" && !strings.EqualFold(p.Sport, filter.Sport) {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	if filter.ShopID != "" && p.ShopID != filter.ShopID {
		return false
	}
	if filter.Price != nil && !filter.Price.Contains(p.Price) {
		return false
	}
	return true
}

// LoadSeedFile reads a JSON array of products, for seeding the store at
// startup.
func LoadSeedFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}

	return products, nil
}
