package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-storefront/models"
	"tailor-storefront/pricing"
	"tailor-storefront/repository"
	"tailor-storefront/service"
)

type fakeSync struct {
	stats    *models.SwatchSyncResponse
	folderID string
}

func (f *fakeSync) SyncSwatches(ctx context.Context, folderID string) (*models.SwatchSyncResponse, error) {
	f.folderID = folderID
	return f.stats, nil
}

type fakeImages struct {
	data []byte
	err  error
}

func (f *fakeImages) GetSwatchImage(ctx context.Context, fabricID string, size string) ([]byte, error) {
	return f.data, f.err
}

func newCatalog(t *testing.T) *repository.CatalogRepository {
	t.Helper()
	ctx := context.Background()
	repo := repository.NewCatalogRepository(repository.NewMemoryStore())

	require.NoError(t, repo.SaveFabric(ctx, &models.FabricOption{
		ID: "f1", Name: "Wool", Color: "Navy", PricePerUnit: decimal.NewFromInt(200),
	}))
	require.NoError(t, repo.SaveStyle(ctx, &models.StyleOption{
		ID: "s1", Name: "Peak", Category: "lapel", PriceDelta: decimal.NewFromInt(25),
	}))
	require.NoError(t, repo.SaveStyle(ctx, &models.StyleOption{
		ID: "s2", Name: "Double", Category: "vents", PriceDelta: decimal.NewFromInt(-10),
	}))
	require.NoError(t, repo.SaveSize(ctx, &models.SizeOption{ID: "42R", Name: "42R"}))
	return repo
}

func newQuoteService(t *testing.T, repo repository.CatalogRepositoryInterface) *service.QuoteService {
	t.Helper()
	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	return service.NewQuoteService(engine, repo)
}

func do(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestQuoteHandler(t *testing.T) {
	c := NewQuoteController(newQuoteService(t, newCatalog(t)))

	rec := do(c.Quote, http.MethodPost, "/quote",
		`{"mode":"MTO","fabricId":"f1","styles":{"lapel":"s1"},"sizeId":"42R"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "225.00", resp.Price)
	assert.Equal(t, "225.00", resp.Properties["Price"])
	assert.Equal(t, "Peak", resp.Properties["Style_lapel"])
}

func TestQuoteHandlerErrors(t *testing.T) {
	c := NewQuoteController(newQuoteService(t, newCatalog(t)))

	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"malformed body", http.MethodPost, `{"mode":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, `{"mode":"MTO","color":"red"}`, http.StatusBadRequest},
		{"unknown mode", http.MethodPost, `{"mode":"BESPOKE"}`, http.StatusBadRequest},
		{"unknown fabric", http.MethodPost, `{"mode":"MTO","fabricId":"nope"}`, http.StatusNotFound},
		{"size in MTM", http.MethodPost, `{"mode":"MTM","sizeId":"42R"}`, http.StatusBadRequest},
		{"blank style id", http.MethodPost, `{"mode":"MTO","styles":{"lapel":""}}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(c.Quote, tt.method, "/quote", tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestDesignLifecycle(t *testing.T) {
	catalog := newCatalog(t)
	c := NewDesignController(newQuoteService(t, catalog), repository.NewDesignRepository(repository.NewMemoryStore()))

	rec := do(c.CreateDesign, http.MethodPost, "/designs",
		`{"name":" Wedding ","selection":{"mode":"MTM","fabricId":"f1","measurements":{"chest":101.5}}}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.SavedDesign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Wedding", created.Name)
	assert.Equal(t, "200.00", created.Price)
	assert.Equal(t, "101.5", created.Properties["Measurement_chest"])

	rec = do(c.DesignByID, http.MethodGet, "/designs/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched models.SavedDesign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.Properties, fetched.Properties)

	rec = do(c.DesignByID, http.MethodDelete, "/designs/"+created.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(c.DesignByID, http.MethodGet, "/designs/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateDesignRejectsInvalidSelection(t *testing.T) {
	c := NewDesignController(newQuoteService(t, newCatalog(t)), repository.NewDesignRepository(repository.NewMemoryStore()))

	rec := do(c.CreateDesign, http.MethodPost, "/designs", `{"selection":{"mode":"MTO","styles":{"lapel":"missing"}}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(c.DesignByID, http.MethodPut, "/designs/abc", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCatalogListing(t *testing.T) {
	c := NewCatalogController(newCatalog(t), nil, nil, "")

	rec := do(c.ListFabrics, http.MethodGet, "/catalog/fabrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fabrics []models.FabricOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fabrics))
	require.Len(t, fabrics, 1)
	assert.True(t, fabrics[0].PricePerUnit.Equal(decimal.NewFromInt(200)))

	rec = do(c.ListStyles, http.MethodGet, "/catalog/styles?category=vents", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var styles []models.StyleOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &styles))
	require.Len(t, styles, 1)
	assert.Equal(t, "s2", styles[0].ID)

	rec = do(c.ListSizes, http.MethodGet, "/catalog/sizes", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogAdmin(t *testing.T) {
	repo := newCatalog(t)
	c := NewCatalogController(repo, nil, nil, "")

	rec := do(c.SaveFabric, http.MethodPost, "/admin/fabrics", `{"id":"f2","name":"Linen","pricePerUnit":"120.50"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	fabric, err := repo.GetFabric(context.Background(), "f2")
	require.NoError(t, err)
	assert.Equal(t, "120.5", fabric.PricePerUnit.String())

	rec = do(c.SaveFabric, http.MethodPost, "/admin/fabrics", `{"id":"f3","name":"Silk","pricePerUnit":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(c.SaveStyle, http.MethodPost, "/admin/styles", `{"id":"s3","name":"Notch","category":"bad_category"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(c.SaveSize, http.MethodPost, "/admin/sizes", `{"id":"40S","name":"40 Short","measurements":{"chest":100}}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(c.DeleteOption, http.MethodDelete, "/admin/fabrics/f2", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, err = repo.GetFabric(context.Background(), "f2")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	rec = do(c.DeleteOption, http.MethodDelete, "/admin/fabrics/f2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(c.DeleteOption, http.MethodDelete, "/admin/designs/x", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSwatchEndpoints(t *testing.T) {
	repo := newCatalog(t)

	disabled := NewCatalogController(repo, nil, nil, "")
	rec := do(disabled.GetSwatchImage, http.MethodGet, "/catalog/fabrics/f1/swatch", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	rec = do(disabled.SyncSwatches, http.MethodPost, "/admin/fabrics/sync", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	sync := &fakeSync{stats: &models.SwatchSyncResponse{Inserted: 2, Skipped: 1, Total: 3}}
	c := NewCatalogController(repo, sync, &fakeImages{data: []byte("jpeg")}, "folder-1")

	rec = do(c.GetSwatchImage, http.MethodGet, "/catalog/fabrics/f1/swatch?size=thumb", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "jpeg", rec.Body.String())

	rec = do(c.SyncSwatches, http.MethodPost, "/admin/fabrics/sync", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "folder-1", sync.folderID)
	assert.JSONEq(t, `{"inserted":2,"updated":0,"skipped":1,"total":3}`, rec.Body.String())

	rec = do(c.SyncSwatches, http.MethodPost, "/admin/fabrics/sync?folderId=other", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "other", sync.folderID)

	missing := NewCatalogController(repo, sync, &fakeImages{err: service.ErrNoSwatch}, "")
	rec = do(missing.GetSwatchImage, http.MethodGet, "/catalog/fabrics/f1/swatch", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(missing.SyncSwatches, http.MethodPost, "/admin/fabrics/sync", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	broken := NewCatalogController(repo, sync, &fakeImages{err: errors.New("drive down")}, "")
	rec = do(broken.GetSwatchImage, http.MethodGet, "/catalog/fabrics/f1/swatch", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestClassifyLayersHandler(t *testing.T) {
	c := NewModelController()

	rec := do(c.ClassifyLayers, http.MethodPost, "/model/layers",
		`{"nodes":["Jacket_Lapel_L","Sleeve_Right","Button_01","Mesh_42"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LayerClassificationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Jacket_Lapel_L"}, resp.Layers["lapel"])
	assert.Equal(t, []string{"Sleeve_Right"}, resp.Layers["sleeve"])
	assert.Equal(t, []string{"Button_01"}, resp.Layers["button"])
	assert.Equal(t, []string{"Mesh_42"}, resp.Layers["other"])
}
