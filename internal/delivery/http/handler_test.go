package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gearfit/backend/config"
	"github.com/gearfit/backend/internal/domain"
	"github.com/gearfit/backend/internal/infrastructure/inventory"
	"github.com/gearfit/backend/internal/infrastructure/session"
	"github.com/gearfit/backend/internal/usecase"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 1000},
		Session:   config.SessionConfig{TTL: time.Hour},
		Recommend: config.RecommendConfig{BaseScore: 75, MaxResults: 10},
	}
}

func testProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "sb-1",
			Name:        "Ridge All-Mountain Board",
			Category:    "snowboards",
			Sport:       "ski",
			Price:       450,
			Description: "A versatile board for intermediate riders.",
			Features:    []string{"All-mountain", "Durable sintered base"},
			Specifications: domain.ProductSpecifications{
				HeightRange:     &domain.SpecificationRange{Min: 64, Max: 74, Unit: "in"},
				WeightRange:     &domain.SpecificationRange{Min: 120, Max: 200, Unit: "lbs"},
				ExperienceLevel: []string{"Intermediate", "Advanced"},
			},
			InStock:  true,
			Quantity: 4,
		},
		{
			ID:          "sb-2",
			Name:        "Basic Board",
			Category:    "snowboards",
			Sport:       "ski",
			Price:       200,
			Description: "A board.",
			InStock:     true,
			Quantity:    1,
		},
	}
}

func setupTestRouter() *gin.Engine {
	store := inventory.NewMemoryStore(testProducts()...)
	sessions := session.NewMemoryStore(time.Hour)
	svc := usecase.NewRecommendationService(store, sessions, usecase.RecommendationConfig{})
	return SetupRouter(testConfig(), NewHandler(svc))
}

type recommendResponse struct {
	Recommendations []domain.ScoredRecommendation `json:"recommendations"`
	Count           int                           `json:"count"`
	SessionToken    string                        `json:"sessionToken"`
}

func postRecommendations(t *testing.T, router *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

func TestRecommendEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := postRecommendations(t, router, gin.H{
		"sport":    "ski",
		"category": "snowboards",
		"formData": gin.H{
			"height":      `5'10"`,
			"weight":      "170 lbs",
			"experience":  "Intermediate",
			"ridingStyle": "All-mountain",
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var resp recommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}

	if resp.Count != 2 {
		t.Fatalf("count = %d, want 2", resp.Count)
	}
	if resp.Recommendations[0].ID != "sb-1" {
		t.Errorf("best recommendation = %s, want sb-1", resp.Recommendations[0].ID)
	}
	if resp.SessionToken == "" {
		t.Error("sessionToken is empty, want a recorded session")
	}
	for _, rec := range resp.Recommendations {
		if rec.Score < 0 || rec.Score > 100 {
			t.Errorf("score %d out of bounds for %s", rec.Score, rec.ID)
		}
		if len(rec.MatchReasons) == 0 || len(rec.MatchReasons) > 3 {
			t.Errorf("reasons %v out of bounds for %s", rec.MatchReasons, rec.ID)
		}
	}
}

func TestRecommendEndpointEmptyInventory(t *testing.T) {
	router := setupTestRouter()

	w := postRecommendations(t, router, gin.H{
		"sport": "surf",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp recommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0 for a sport with no stock", resp.Count)
	}
}

func TestRecommendEndpointMissingSport(t *testing.T) {
	router := setupTestRouter()

	w := postRecommendations(t, router, gin.H{
		"category": "snowboards",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRecommendEndpointMalformedBody(t *testing.T) {
	router := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/recommendations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestRecommendEndpointPriceFilter(t *testing.T) {
	router := setupTestRouter()

	w := postRecommendations(t, router, gin.H{
		"sport": "ski",
		"formData": gin.H{
			"priceRange": "$400 - $600",
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp recommendResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if resp.Count != 1 || resp.Recommendations[0].ID != "sb-1" {
		t.Errorf("got %d results, want only the in-range sb-1", resp.Count)
	}
}
