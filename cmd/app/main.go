package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hearthvale/forgecore/internal/catalog"
	"github.com/hearthvale/forgecore/internal/config"
	"github.com/hearthvale/forgecore/internal/crafting"
	"github.com/hearthvale/forgecore/internal/craftlog"
	"github.com/hearthvale/forgecore/internal/database"
	"github.com/hearthvale/forgecore/internal/database/postgres"
	"github.com/hearthvale/forgecore/internal/discovery"
	"github.com/hearthvale/forgecore/internal/event"
	"github.com/hearthvale/forgecore/internal/knowledge"
	"github.com/hearthvale/forgecore/internal/metrics"
	"github.com/hearthvale/forgecore/internal/player"
	"github.com/hearthvale/forgecore/internal/server"
	"github.com/hearthvale/forgecore/internal/validation"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(ctx, dbPool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	materialRepo := postgres.NewMaterialRepository(dbPool)
	recipeRepo := postgres.NewRecipeRepository(dbPool)
	knowledgeRepo := postgres.NewKnowledgeRepository(dbPool)
	craftlogRepo := postgres.NewCraftingLogRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// Event bus and metric collection. Publishes go through the resilient
	// wrapper so a failing subscriber cannot drop events silently.
	eventBus := event.NewResilientPublisher(event.NewMemoryBus(),
		event.DefaultResilientConfig(event.DefaultDeadLetterPath))
	if err := metrics.NewEventMetricsCollector().Register(eventBus); err != nil {
		slog.Error("Failed to register event metrics collector", "error", err)
		os.Exit(1)
	}

	// Player collaborators. These in-memory stands-in serve single-node
	// deployments; a game backend supplies its own implementations.
	inventory := player.NewMemoryInventory()
	skills := player.NewMemorySkills()

	// Services
	catalogService := catalog.NewService(materialRepo, recipeRepo)
	knowledgeService := knowledge.NewService(knowledgeRepo, catalogService, eventBus)
	craftingService := crafting.NewService(catalogService, knowledgeService, txManager, inventory, skills, eventBus)
	discoveryService := discovery.NewService(catalogService, knowledgeRepo, eventBus)
	craftlogService := craftlog.NewService(craftlogRepo)

	// Seed the catalog from config files
	loader := catalog.NewLoader(catalogService, validation.NewSchemaValidator(), cfg.ConfigDir)
	if err := loader.Load(ctx); err != nil {
		slog.Error("Failed to load catalog configs", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, server.Services{
		Catalog:   catalogService,
		Crafting:  craftingService,
		Knowledge: knowledgeService,
		Discovery: discoveryService,
		Craftlog:  craftlogService,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
