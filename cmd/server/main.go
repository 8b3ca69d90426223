package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gearfit/backend/config"
	httpDelivery "github.com/gearfit/backend/internal/delivery/http"
	"github.com/gearfit/backend/internal/infrastructure/inventory"
	"github.com/gearfit/backend/internal/infrastructure/session"
	"github.com/gearfit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GearFit Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	inventoryStore := inventory.NewMemoryStore()
	if cfg.Inventory.SeedFile != "" {
		products, err := inventory.LoadSeedFile(cfg.Inventory.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load inventory seed %s: %v", cfg.Inventory.SeedFile, err)
		}
		inventoryStore.Add(products...)
	}
	log.Printf("Inventory: %d products loaded", inventoryStore.Size())

	sessionStore := session.NewMemoryStore(cfg.Session.TTL)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Initialize usecase layer
	recommendationService := usecase.NewRecommendationService(
		inventoryStore,
		sessionStore,
		usecase.RecommendationConfig{
			BaseScore:  cfg.Recommend.BaseScore,
			MaxResults: cfg.Recommend.MaxResults,
		},
	)

	log.Printf("Recommendations: base=%d, max results=%d",
		cfg.Recommend.BaseScore, cfg.Recommend.MaxResults)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recommendationService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
