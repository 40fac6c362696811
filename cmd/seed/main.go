package main

import (
	"context"
	"log"

	"github.com/hearthvale/forgecore/internal/catalog"
	"github.com/hearthvale/forgecore/internal/config"
	"github.com/hearthvale/forgecore/internal/database"
	"github.com/hearthvale/forgecore/internal/database/postgres"
	"github.com/hearthvale/forgecore/internal/validation"
)

// Seeds the catalog tables from the JSON config files without starting the
// server. Safe to re-run: entries already in the catalog are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	if err := database.RunMigrations(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	catalogService := catalog.NewService(
		postgres.NewMaterialRepository(pool),
		postgres.NewRecipeRepository(pool),
	)

	loader := catalog.NewLoader(catalogService, validation.NewSchemaValidator(), cfg.ConfigDir)
	if err := loader.LoadMaterials(ctx); err != nil {
		log.Fatalf("Failed to seed materials: %v", err)
	}
	if err := loader.LoadRecipes(ctx); err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	log.Println("Catalog seed complete")
}
