package controller

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tailor-storefront/garment"
	"tailor-storefront/models"
)

// ModelController handles requests about the 3D garment model
type ModelController struct{}

// NewModelController creates a new ModelController
func NewModelController() *ModelController {
	return &ModelController{}
}

// ClassifyLayers handles POST /model/layers
// Example request: {"nodes": ["Jacket_Lapel_L", "Sleeve_Right", "Button_01"]}
// Example response: {"layers": {"lapel": ["Jacket_Lapel_L"], "sleeve": ["Sleeve_Right"], "button": ["Button_01"]}}
func (c *ModelController) ClassifyLayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LayerClassificationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	grouped := garment.ClassifyLayers(req.Nodes)
	resp := models.LayerClassificationResponse{Layers: make(map[string][]string, len(grouped))}
	for part, names := range grouped {
		resp.Layers[string(part)] = names
	}

	zap.S().Debugf("🧵 ClassifyLayers: %d nodes into %d parts", len(req.Nodes), len(resp.Layers))
	writeJSON(w, http.StatusOK, resp)
}
