package controller

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tailor-storefront/models"
	"tailor-storefront/service"
)

// QuoteController handles HTTP requests for price quotes
type QuoteController struct {
	quoteService *service.QuoteService
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(quoteService *service.QuoteService) *QuoteController {
	return &QuoteController{
		quoteService: quoteService,
	}
}

// Quote handles POST /quote
// Example request:
// POST /quote
// {
//   "mode": "MTO",
//   "fabricId": "f1",
//   "styles": {"lapel": "s1"},
//   "sizeId": "42R"
// }
// Example response:
// {
//   "mode": "MTO",
//   "price": "225.00",
//   "currency": "USD",
//   "breakdown": {...},
//   "properties": {"Mode": "MTO", "Fabric": "Wool", ..., "Price": "225.00"},
//   "attributes": [{"key": "Fabric", "value": "Wool"}, ...]
// }
func (c *QuoteController) Quote(w http.ResponseWriter, r *http.Request) {
	zap.S().Infof("📥 Quote: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.QuoteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		zap.S().Warnf("❌ Quote: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := c.quoteService.Quote(r.Context(), &req)
	if err != nil {
		zap.S().Warnf("❌ Quote: %v", err)
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
