package usecase

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/gearfit/backend/internal/domain"
)

// defaultMaxResults caps the ranked list handed back to the transport.
const defaultMaxResults = 10

// RecommendationConfig holds configuration for the recommendation service
type RecommendationConfig struct {
	BaseScore  int
	MaxResults int
}

// RecommendationService ranks candidate products against a customer's
// preference form. Scoring is pure and request-scoped; the only
// collaborators are the inventory query and the best-effort session store.
type RecommendationService struct {
	inventory  domain.InventoryRepository
	sessions   domain.SessionRepository
	baseScore  int
	maxResults int
}

// NewRecommendationService creates a recommendation service with dependencies.
// The session repository may be nil; recording is skipped entirely then.
func NewRecommendationService(
	inventory domain.InventoryRepository,
	sessions domain.SessionRepository,
	config RecommendationConfig,
) *RecommendationService {
	baseScore := config.BaseScore
	if baseScore <= 0 {
		baseScore = defaultBaseScore
	}

	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	return &RecommendationService{
		inventory:  inventory,
		sessions:   sessions,
		baseScore:  baseScore,
		maxResults: maxResults,
	}
}

// Recommend scores and explains every candidate, then returns them ordered
// best-first, truncated to the configured maximum. Candidates arrive
// already filtered to sport/category/shop/stock by the inventory
// collaborator; this method only ranks, it never filters. Ties keep the
// original candidate order.
func (s *RecommendationService) Recommend(
	sport, category string,
	profile domain.CustomerProfile,
	candidates []domain.Product,
) []domain.ScoredRecommendation {
	label, _ := stringValue(profile["priceRange"])
	interval := ResolvePriceRange(label)

	recommendations := make([]domain.ScoredRecommendation, 0, len(candidates))
	for _, product := range candidates {
		signals := evaluateSignals(product, profile, interval)
		recommendations = append(recommendations, domain.ScoredRecommendation{
			Product:      product,
			Score:        scoreSignals(s.baseScore, signals),
			MatchReasons: buildReasons(product, signals),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > s.maxResults {
		recommendations = recommendations[:s.maxResults]
	}

	return recommendations
}

// RecommendRequest is one storefront recommendation request.
type RecommendRequest struct {
	Sport    string
	Category string
	ShopID   string
	Profile  domain.CustomerProfile
}

// RecommendForRequest queries the inventory collaborator, ranks the
// candidates, and records the session best-effort. Session failures are
// logged and swallowed; they never affect the recommendation response.
// Returns the ranked list and the session token, if one was recorded.
func (s *RecommendationService) RecommendForRequest(
	ctx context.Context,
	request *RecommendRequest,
) ([]domain.ScoredRecommendation, string, error) {
	if request == nil || request.Sport == "" {
		return nil, "", domain.ErrInvalidRequest
	}

	label, _ := stringValue(request.Profile["priceRange"])
	interval := ResolvePriceRange(label)

	filter := domain.InventoryFilter{
		Sport:    request.Sport,
		Category: request.Category,
		ShopID:   request.ShopID,
	}
	// Pre-filter on price only when the customer actually picked a range.
	if interval.Min > 0 || !math.IsInf(interval.Max, 1) {
		filter.Price = &interval
	}

	candidates, err := s.inventory.Query(ctx, filter)
	if err != nil {
		return nil, "", fmt.Errorf("inventory query failed: %w", err)
	}

	recommendations := s.Recommend(request.Sport, request.Category, request.Profile, candidates)

	token := s.recordSession(ctx, request, recommendations)

	return recommendations, token, nil
}

// recordSession stores the form submission and its results, best effort.
func (s *RecommendationService) recordSession(
	ctx context.Context,
	request *RecommendRequest,
	recommendations []domain.ScoredRecommendation,
) string {
	if s.sessions == nil {
		return ""
	}

	token, err := s.sessions.Record(ctx, request.Profile, request.Sport, request.ShopID)
	if err != nil {
		log.Printf("[SESSION] record failed: %v", err)
		return ""
	}

	if err := s.sessions.Attach(ctx, token, recommendations); err != nil {
		log.Printf("[SESSION] attach failed for %s: %v", token, err)
	}

	return token
}
