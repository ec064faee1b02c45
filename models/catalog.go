package models

import "github.com/shopspring/decimal"

// FabricOption represents a fabric the customer can pick for a garment
type FabricOption struct {
	ID           string          `json:"id" yaml:"id"`
	Name         string          `json:"name" yaml:"name"`
	Description  string          `json:"description,omitempty" yaml:"description"`
	Category     string          `json:"category,omitempty" yaml:"category"`
	Color        string          `json:"color,omitempty" yaml:"color"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit" yaml:"-"`
	SwatchFileID string          `json:"swatchFileId,omitempty" yaml:"swatchFileId"` // Google Drive file id of the swatch image
}

// StyleOption represents one choice inside a style category (lapel, vents, ...)
type StyleOption struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description,omitempty" yaml:"description"`
	Category    string          `json:"category" yaml:"category"`
	PriceDelta  decimal.Decimal `json:"priceDelta" yaml:"-"` // Signed, added to the total
}

// SizeOption represents a predefined size used in made-to-order mode
type SizeOption struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Measurements MeasurementSet `json:"measurements,omitempty" yaml:"measurements"`
}

// MeasurementSet maps a measurement name (chest, waist, ...) to its value
type MeasurementSet map[string]float64

// CatalogData is the full option catalog returned to the storefront
type CatalogData struct {
	Fabrics []FabricOption `json:"fabrics"`
	Styles  []StyleOption  `json:"styles"`
	Sizes   []SizeOption   `json:"sizes"`
}
