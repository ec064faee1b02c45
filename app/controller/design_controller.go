package controller

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"tailor-storefront/metrics"
	"tailor-storefront/models"
	"tailor-storefront/repository"
	"tailor-storefront/service"
)

// DesignController handles HTTP requests for saved designs
type DesignController struct {
	quoteService *service.QuoteService
	repository   repository.DesignRepositoryInterface
}

// NewDesignController creates a new DesignController
func NewDesignController(quoteService *service.QuoteService, repo repository.DesignRepositoryInterface) *DesignController {
	return &DesignController{
		quoteService: quoteService,
		repository:   repo,
	}
}

// CreateDesign handles POST /designs
// The selection is priced on save so the stored properties match what checkout would send.
// Example request:
// POST /designs
// {"name": "Wedding suit", "selection": {"mode": "MTO", "fabricId": "f1", "sizeId": "42R"}}
func (c *DesignController) CreateDesign(w http.ResponseWriter, r *http.Request) {
	zap.S().Infof("📥 CreateDesign: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SaveDesignRequest
	if err := decodeJSON(w, r, &req); err != nil {
		zap.S().Warnf("❌ CreateDesign: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	quote, err := c.quoteService.Quote(r.Context(), &req.Selection)
	if err != nil {
		zap.S().Warnf("❌ CreateDesign: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	design := &models.SavedDesign{
		Name:       strings.TrimSpace(req.Name),
		Request:    req.Selection,
		Price:      quote.Price,
		Currency:   quote.Currency,
		Properties: quote.Properties,
	}
	if err := c.repository.Create(r.Context(), design); err != nil {
		zap.S().Errorf("❌ CreateDesign: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save design: %v", err), http.StatusInternalServerError)
		return
	}
	metrics.DesignsSavedTotal.Inc()

	writeJSON(w, http.StatusCreated, design)
}

// DesignByID handles GET and DELETE /designs/{id}
func (c *DesignController) DesignByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/designs/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "design id is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		design, err := c.repository.Get(r.Context(), id)
		if err != nil {
			zap.S().Warnf("❌ GetDesign: id=%s: %v", id, err)
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		writeJSON(w, http.StatusOK, design)

	case http.MethodDelete:
		if err := c.repository.Delete(r.Context(), id); err != nil {
			zap.S().Warnf("❌ DeleteDesign: id=%s: %v", id, err)
			http.Error(w, err.Error(), statusForError(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
