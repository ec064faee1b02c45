package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tailor-storefront/metrics"
	"tailor-storefront/models"
	"tailor-storefront/repository"
	"tailor-storefront/service"
)

// CatalogController handles HTTP requests for fabrics, styles and sizes
type CatalogController struct {
	repository     repository.CatalogRepositoryInterface
	syncService    service.SwatchSyncServiceInterface
	imageService   service.SwatchImageServiceInterface
	swatchFolderID string
}

// NewCatalogController creates a new CatalogController.
// syncService and imageService may be nil when Drive is not configured.
func NewCatalogController(
	repo repository.CatalogRepositoryInterface,
	syncService service.SwatchSyncServiceInterface,
	imageService service.SwatchImageServiceInterface,
	swatchFolderID string,
) *CatalogController {
	return &CatalogController{
		repository:     repo,
		syncService:    syncService,
		imageService:   imageService,
		swatchFolderID: swatchFolderID,
	}
}

// ListFabrics handles GET /catalog/fabrics
func (c *CatalogController) ListFabrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	fabrics, err := c.repository.ListFabrics(r.Context())
	if err != nil {
		zap.S().Errorf("❌ ListFabrics: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list fabrics: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, fabrics)
}

// ListStyles handles GET /catalog/styles
// Optional query parameter: category
func (c *CatalogController) ListStyles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	styles, err := c.repository.ListStyles(r.Context())
	if err != nil {
		zap.S().Errorf("❌ ListStyles: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list styles: %v", err), http.StatusInternalServerError)
		return
	}

	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		filtered := make([]models.StyleOption, 0, len(styles))
		for _, style := range styles {
			if style.Category == category {
				filtered = append(filtered, style)
			}
		}
		styles = filtered
	}
	writeJSON(w, http.StatusOK, styles)
}

// ListSizes handles GET /catalog/sizes
func (c *CatalogController) ListSizes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sizes, err := c.repository.ListSizes(r.Context())
	if err != nil {
		zap.S().Errorf("❌ ListSizes: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list sizes: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sizes)
}

// GetSwatchImage handles GET /catalog/fabrics/{id}/swatch?size=thumb|medium
func (c *CatalogController) GetSwatchImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.imageService == nil {
		http.Error(w, "Swatch images are not configured", http.StatusServiceUnavailable)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/catalog/fabrics/")
	fabricID := strings.TrimSuffix(path, "/swatch")
	if fabricID == "" || fabricID == path || strings.Contains(fabricID, "/") {
		http.Error(w, "fabric id parameter is required", http.StatusBadRequest)
		return
	}

	data, err := c.imageService.GetSwatchImage(r.Context(), fabricID, r.URL.Query().Get("size"))
	if err != nil {
		zap.S().Warnf("❌ GetSwatchImage: fabric=%s: %v", fabricID, err)
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, service.ErrNoSwatch) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to load swatch: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// SyncSwatches handles POST /admin/fabrics/sync
// Optional query parameter folderId overrides the configured swatch folder
func (c *CatalogController) SyncSwatches(w http.ResponseWriter, r *http.Request) {
	zap.S().Infof("📥 SyncSwatches: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.syncService == nil {
		http.Error(w, "Swatch sync is not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := strings.TrimSpace(r.URL.Query().Get("folderId"))
	if folderID == "" {
		folderID = c.swatchFolderID
	}
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	stats, err := c.syncService.SyncSwatches(r.Context(), folderID)
	if err != nil {
		zap.S().Errorf("❌ SyncSwatches: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync swatches: %v", err), http.StatusInternalServerError)
		return
	}

	metrics.SwatchesSyncedTotal.WithLabelValues("inserted").Add(float64(stats.Inserted))
	metrics.SwatchesSyncedTotal.WithLabelValues("updated").Add(float64(stats.Updated))
	metrics.SwatchesSyncedTotal.WithLabelValues("skipped").Add(float64(stats.Skipped))

	writeJSON(w, http.StatusOK, stats)
}

// SaveFabric handles POST /admin/fabrics
func (c *CatalogController) SaveFabric(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var fabric models.FabricOption
	if err := decodeJSON(w, r, &fabric); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(fabric.ID) == "" || strings.TrimSpace(fabric.Name) == "" {
		http.Error(w, "id and name are required", http.StatusBadRequest)
		return
	}
	if fabric.PricePerUnit.IsNegative() {
		http.Error(w, "pricePerUnit cannot be negative", http.StatusBadRequest)
		return
	}

	if err := c.repository.SaveFabric(r.Context(), &fabric); err != nil {
		zap.S().Errorf("❌ SaveFabric: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save fabric: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, fabric)
}

// SaveStyle handles POST /admin/styles
func (c *CatalogController) SaveStyle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var style models.StyleOption
	if err := decodeJSON(w, r, &style); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(style.ID) == "" || strings.TrimSpace(style.Name) == "" {
		http.Error(w, "id and name are required", http.StatusBadRequest)
		return
	}

	// Reuse selection validation so stored categories are always quotable
	probe := models.Selection{
		Styles: map[string]models.StyleOption{style.Category: style},
		Fit:    models.MadeToOrder{},
	}
	if err := probe.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.repository.SaveStyle(r.Context(), &style); err != nil {
		zap.S().Errorf("❌ SaveStyle: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save style: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, style)
}

// SaveSize handles POST /admin/sizes
func (c *CatalogController) SaveSize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var size models.SizeOption
	if err := decodeJSON(w, r, &size); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(size.ID) == "" || strings.TrimSpace(size.Name) == "" {
		http.Error(w, "id and name are required", http.StatusBadRequest)
		return
	}

	if err := c.repository.SaveSize(r.Context(), &size); err != nil {
		zap.S().Errorf("❌ SaveSize: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save size: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, size)
}

// DeleteOption handles DELETE /admin/{fabrics|styles|sizes}/{id}
func (c *CatalogController) DeleteOption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/admin/")
	collection, id, ok := strings.Cut(path, "/")
	if !ok || id == "" || strings.Contains(id, "/") {
		http.Error(w, "path must be /admin/{fabrics|styles|sizes}/{id}", http.StatusBadRequest)
		return
	}

	switch collection {
	case repository.CollectionFabrics, repository.CollectionStyles, repository.CollectionSizes:
	default:
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	if err := c.repository.Delete(r.Context(), collection, id); err != nil {
		zap.S().Warnf("❌ DeleteOption: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
