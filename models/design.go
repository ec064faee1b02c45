package models

import "time"

// SavedDesign is a customer's customization stored for later checkout
type SavedDesign struct {
	ID         string            `json:"id"`
	Name       string            `json:"name,omitempty"`
	Request    QuoteRequest      `json:"request"`
	Price      string            `json:"price"`
	Currency   string            `json:"currency"`
	Properties map[string]string `json:"properties"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// SaveDesignRequest represents the request body for POST /designs
// Example: {"name": "Wedding suit", "selection": {"mode": "MTO", "fabricId": "f1", "sizeId": "42R"}}
type SaveDesignRequest struct {
	Name      string       `json:"name,omitempty"`
	Selection QuoteRequest `json:"selection"`
}

// LayerClassificationRequest represents the request body for POST /model/layers
type LayerClassificationRequest struct {
	Nodes []string `json:"nodes"`
}

// LayerClassificationResponse groups 3D node names by garment part
type LayerClassificationResponse struct {
	Layers map[string][]string `json:"layers"`
}

// SwatchSyncResponse represents the response for POST /admin/fabrics/sync
type SwatchSyncResponse struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}
