package app

import (
	"context"
	"fmt"
	"net/http"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"tailor-storefront/app/controller"
	"tailor-storefront/app/router"
	"tailor-storefront/config"
	"tailor-storefront/db"
	"tailor-storefront/pricing"
	"tailor-storefront/repository"
	"tailor-storefront/service"
)

// Initialize wires the stores, services and controllers and returns the HTTP handler.
// The returned cleanup function releases backend connections.
func Initialize(ctx context.Context, cfg *config.Config) (http.Handler, func(), error) {
	store, cleanup, err := newDocumentStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(store)
	designRepo := repository.NewDesignRepository(store)

	if cfg.CatalogSeedPath != "" {
		if err := repository.SeedCatalog(ctx, catalogRepo, cfg.CatalogSeedPath); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Initialize price engine
	engine, err := pricing.NewEngine(cfg.PricingConfigPath)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize price engine: %w", err)
	}

	quoteService := service.NewQuoteService(engine, catalogRepo)

	// Drive is optional; without credentials swatch sync and images are disabled
	var syncService service.SwatchSyncServiceInterface
	var imageService service.SwatchImageServiceInterface
	if cfg.CredentialsPath != "" {
		driveService, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		syncService = service.NewSwatchSyncService(driveService, catalogRepo, cfg.DefaultFabricPrice)
		imageService = service.NewSwatchImageService(driveService, catalogRepo, service.NewImageCache(cfg.ImageCacheDir))
	} else {
		zap.S().Warnf("⚠️  GOOGLE_APPLICATION_CREDENTIALS is not set, swatch sync and images are disabled")
	}

	// Create controllers
	controllers := &router.Controllers{
		Quote:   controller.NewQuoteController(quoteService),
		Catalog: controller.NewCatalogController(catalogRepo, syncService, imageService, cfg.SwatchFolderID),
		Design:  controller.NewDesignController(quoteService, designRepo),
		Model:   controller.NewModelController(),
	}

	// Setup routes using standard http router
	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return mux, cleanup, nil
}

func newDocumentStore(ctx context.Context, cfg *config.Config) (repository.DocumentStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewPostgresStore(db.DB), func() { db.CloseDB() }, nil

	case config.StoreFirestore:
		client, err := firestore.NewClient(ctx, cfg.FirestoreProjectID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create firestore client: %w", err)
		}
		zap.S().Infof("✓ Firestore client created for project %s", cfg.FirestoreProjectID)
		return repository.NewFirestoreStore(client), func() { client.Close() }, nil

	default:
		zap.S().Infof("✓ Using in-memory document store")
		return repository.NewMemoryStore(), func() {}, nil
	}
}
