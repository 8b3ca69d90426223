package domain

import "context"

// InventoryFilter narrows an inventory query. Zero-value fields are ignored.
// Price, when set, is the pre-filter applied for an explicit price-range
// selection; scoring still re-checks the interval per product.
type InventoryFilter struct {
	Sport    string
	Category string
	ShopID   string
	Price    *PriceInterval
}

// InventoryRepository defines the interface to the inventory collaborator.
// Query returns only products with quantity > 0.
type InventoryRepository interface {
	Query(ctx context.Context, filter InventoryFilter) ([]Product, error)
}

// SessionRepository records customer form submissions and the
// recommendations returned for them. Best effort: callers must swallow
// failures here rather than fail the recommendation response.
type SessionRepository interface {
	Record(ctx context.Context, profile CustomerProfile, sport, shopID string) (string, error)
	Attach(ctx context.Context, token string, recommendations []ScoredRecommendation) error
}
