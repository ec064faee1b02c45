package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-storefront/app/controller"
	"tailor-storefront/models"
	"tailor-storefront/pricing"
	"tailor-storefront/repository"
	"tailor-storefront/service"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	store := repository.NewMemoryStore()
	catalog := repository.NewCatalogRepository(store)
	require.NoError(t, catalog.SaveFabric(context.Background(), &models.FabricOption{
		ID: "f1", Name: "Wool", PricePerUnit: decimal.NewFromInt(180),
	}))

	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	quotes := service.NewQuoteService(engine, catalog)

	mux := http.NewServeMux()
	SetupRoutes(mux, &Controllers{
		Quote:   controller.NewQuoteController(quotes),
		Catalog: controller.NewCatalogController(catalog, nil, nil, ""),
		Design:  controller.NewDesignController(quotes, repository.NewDesignRepository(store)),
		Model:   controller.NewModelController(),
	})
	return mux
}

func TestRoutes(t *testing.T) {
	mux := newTestMux(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"ping", http.MethodGet, "/ping", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK},
		{"quote", http.MethodPost, "/quote", `{"mode":"MTO","fabricId":"f1"}`, http.StatusOK},
		{"fabrics", http.MethodGet, "/catalog/fabrics", "", http.StatusOK},
		{"styles", http.MethodGet, "/catalog/styles", "", http.StatusOK},
		{"sizes", http.MethodGet, "/catalog/sizes", "", http.StatusOK},
		{"swatch without drive", http.MethodGet, "/catalog/fabrics/f1/swatch", "", http.StatusServiceUnavailable},
		{"unknown fabric subpath", http.MethodGet, "/catalog/fabrics/f1", "", http.StatusNotFound},
		{"sync without drive", http.MethodPost, "/admin/fabrics/sync", "", http.StatusServiceUnavailable},
		{"upsert style", http.MethodPost, "/admin/styles", `{"id":"s1","name":"Peak","category":"lapel","priceDelta":"25"}`, http.StatusOK},
		{"delete fabric", http.MethodDelete, "/admin/fabrics/f1", "", http.StatusNoContent},
		{"missing design", http.MethodGet, "/designs/nope", "", http.StatusNotFound},
		{"layers", http.MethodPost, "/model/layers", `{"nodes":["Collar"]}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
