package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nutrilens/backend/config"
	httpDelivery "github.com/nutrilens/backend/internal/delivery/http"
	"github.com/nutrilens/backend/internal/domain"
	"github.com/nutrilens/backend/internal/infrastructure/cache"
	"github.com/nutrilens/backend/internal/infrastructure/profile"
	"github.com/nutrilens/backend/internal/infrastructure/taxonomy"
	"github.com/nutrilens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting NutriLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	var durable domain.DurableCache
	if cfg.Cache.Type == "sqlite" {
		sqliteCache, err := cache.NewSQLiteCache(cfg.Cache.SQLitePath, cfg.Cache.TTL)
		if err != nil {
			log.Fatalf("Failed to open SQLite cache at %s: %v", cfg.Cache.SQLitePath, err)
		}
		defer sqliteCache.Close()
		durable = sqliteCache
		log.Printf("SQLite cache: %s", cfg.Cache.SQLitePath)
	}

	var taxonomyClient domain.TaxonomyClient
	if cfg.Taxonomy.AllowNetwork {
		taxonomyClient = taxonomy.NewClient(cfg.Taxonomy.BaseURL, cfg.Taxonomy.UserAgent)
		log.Printf("Taxonomy API configured: %s", cfg.Taxonomy.BaseURL)
	} else {
		log.Printf("Taxonomy network resolution disabled; unknown additives fall back to synthetic records")
	}

	profiles := profile.NewMemoryRepository()

	// Initialize usecase layer
	resolver := usecase.NewAdditiveResolver(
		memoryCache,
		durable,
		taxonomyClient,
		usecase.ResolverConfig{CacheTTL: cfg.Cache.TTL},
	)
	scorer := usecase.NewHealthScorer(profiles)
	personalization := usecase.NewPersonalizationService(profiles, usecase.PersonalizedRulesTable())

	analyzer := usecase.NewAnalyzer(resolver, scorer, personalization, cfg.Taxonomy.AllowNetwork)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analyzer, resolver)

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
