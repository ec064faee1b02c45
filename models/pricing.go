package models

import "github.com/shopspring/decimal"

// PricingBreakdown represents the components a quote total is made of
type PricingBreakdown struct {
	Mode                 Mode            `json:"mode"`
	BasePrice            decimal.Decimal `json:"basePrice"`            // Mode base price
	FabricAdjustment     decimal.Decimal `json:"fabricAdjustment"`     // fabric price minus base price, zero without fabric
	StyleDeltas          decimal.Decimal `json:"styleDeltas"`          // Sum of all style price deltas
	MeasurementSurcharge decimal.Decimal `json:"measurementSurcharge"` // Extra measurements beyond the included ones
	Total                decimal.Decimal `json:"total"`
}

// QuoteRequest represents the request body for POST /quote
// Example:
// {
//   "mode": "MTM",
//   "fabricId": "f1",
//   "styles": {"lapel": "s1", "vents": "s4"},
//   "measurements": {"chest": 101.5, "waist": 88, "shoulder": 46, "sleeve": 64, "neck": 40}
// }
// sizeId is used instead of measurements when mode is "MTO"
type QuoteRequest struct {
	Mode         string            `json:"mode"`
	FabricID     string            `json:"fabricId,omitempty"`
	Styles       map[string]string `json:"styles,omitempty"` // category -> style id
	SizeID       string            `json:"sizeId,omitempty"`
	Measurements MeasurementSet    `json:"measurements,omitempty"`
}

// LineItemAttribute is a single key/value pair attached to a cart line item
type LineItemAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// QuoteResponse represents the response for POST /quote
type QuoteResponse struct {
	Mode       Mode                `json:"mode"`
	Price      string              `json:"price"` // Two decimals, e.g. "123.40"
	Currency   string              `json:"currency"`
	Breakdown  PricingBreakdown    `json:"breakdown"`
	Properties map[string]string   `json:"properties"`
	Attributes []LineItemAttribute `json:"attributes"`
}
