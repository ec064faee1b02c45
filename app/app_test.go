package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-storefront/config"
)

func TestInitializeMemoryBackend(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
fabrics:
  - id: f1
    name: Wool
    pricePerUnit: "200"
styles:
  - id: s1
    name: Peak
    category: lapel
    priceDelta: "25"
`), 0o644))

	handler, cleanup, err := Initialize(context.Background(), &config.Config{
		StoreBackend:       config.StoreMemory,
		CatalogSeedPath:    seedPath,
		ImageCacheDir:      filepath.Join(dir, "cache"),
		DefaultFabricPrice: decimal.RequireFromString("149.99"),
	})
	require.NoError(t, err)
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/quote",
		strings.NewReader(`{"mode":"MTO","fabricId":"f1","styles":{"lapel":"s1"}}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":"225.00"`)
}

func TestInitializeBadSeed(t *testing.T) {
	_, _, err := Initialize(context.Background(), &config.Config{
		StoreBackend:    config.StoreMemory,
		CatalogSeedPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	assert.Error(t, err)
}
