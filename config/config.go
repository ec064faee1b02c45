package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
)

// Store backends
const (
	StoreMemory    = "memory"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Config holds the service settings read from the environment
type Config struct {
	Env                string
	Port               string
	StoreBackend       string
	DatabaseURL        string
	FirestoreProjectID string
	CredentialsPath    string
	SwatchFolderID     string
	PricingConfigPath  string
	CatalogSeedPath    string
	ImageCacheDir      string
	DefaultFabricPrice decimal.Decimal
}

// IsProduction reports whether ENV is "production"
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Addr returns the listen address. Listens on 0.0.0.0 for Docker.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Env:                getEnv("ENV", "development"),
		Port:               strings.TrimPrefix(getEnv("PORT", "8080"), ":"), // PORT from Render doesn't include the colon
		StoreBackend:       strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)),
		FirestoreProjectID: getEnv("FIRESTORE_PROJECT_ID", ""),
		CredentialsPath:    getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		SwatchFolderID:     getEnv("SWATCH_FOLDER_ID", ""),
		PricingConfigPath:  getEnv("PRICING_CONFIG_PATH", ""),
		CatalogSeedPath:    getEnv("CATALOG_SEED_PATH", ""),
		ImageCacheDir:      getEnv("IMAGE_CACHE_DIR", "cache/swatches"),
	}

	price, err := decimal.NewFromString(getEnv("DEFAULT_FABRIC_PRICE", "149.99"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_FABRIC_PRICE: %w", err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("DEFAULT_FABRIC_PRICE cannot be negative")
	}
	cfg.DefaultFabricPrice = price

	switch cfg.StoreBackend {
	case StoreMemory:
	case StorePostgres:
		cfg.DatabaseURL, err = databaseURL()
		if err != nil {
			return nil, err
		}
	case StoreFirestore:
		if cfg.FirestoreProjectID == "" {
			return nil, fmt.Errorf("FIRESTORE_PROJECT_ID is required when STORE_BACKEND=firestore")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q (use memory, postgres or firestore)", cfg.StoreBackend)
	}

	return cfg, nil
}

// databaseURL uses DATABASE_URL or builds a connection string from DB_* variables
func databaseURL() (string, error) {
	if connStr := getEnv("DATABASE_URL", ""); connStr != "" {
		return connStr, nil
	}

	host := getEnv("DB_HOST", "")
	user := getEnv("DB_USER", "")
	dbname := getEnv("DB_NAME", "")
	if host == "" || user == "" || dbname == "" {
		return "", fmt.Errorf("database connection variables not set. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host,
		getEnv("DB_PORT", "5432"),
		user,
		os.Getenv("DB_PASSWORD"),
		dbname,
		getEnv("DB_SSLMODE", "disable"),
	), nil
}
