package pricing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"tailor-storefront/models"
)

// PricingConfig represents the pricing configuration structure
type PricingConfig struct {
	Currency             string                          `json:"currency"`
	BasePrices           map[models.Mode]decimal.Decimal `json:"basePrices"`
	MeasurementSurcharge decimal.Decimal                 `json:"measurementSurcharge"`
	IncludedMeasurements int                             `json:"includedMeasurements"`
}

// DefaultConfig returns the storefront's standard price list
func DefaultConfig() PricingConfig {
	return PricingConfig{
		Currency: "USD",
		BasePrices: map[models.Mode]decimal.Decimal{
			models.ModeMTO: decimal.RequireFromString("99.99"),
			models.ModeMTM: decimal.RequireFromString("149.99"),
		},
		MeasurementSurcharge: decimal.RequireFromString("5.00"),
		IncludedMeasurements: 4,
	}
}

// Engine computes garment prices from a selection. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	config PricingConfig
}

// NewEngine creates a pricing engine from a JSON config file.
// An empty path uses DefaultConfig.
func NewEngine(configPath string) (*Engine, error) {
	if configPath == "" {
		zap.S().Infof("💰 PricingEngine: No config path set, using default price list")
		return NewEngineWithConfig(DefaultConfig())
	}

	// Resolve config path
	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse pricing config: %w", err)
	}

	engine, err := NewEngineWithConfig(config)
	if err != nil {
		return nil, err
	}

	zap.S().Infof("✅ PricingEngine: Successfully loaded pricing config from %s", configPath)
	return engine, nil
}

// NewEngineWithConfig creates a pricing engine from an in-memory config
func NewEngineWithConfig(config PricingConfig) (*Engine, error) {
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid pricing config: %w", err)
	}
	return &Engine{config: config}, nil
}

func validateConfig(config *PricingConfig) error {
	if config.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	for _, mode := range []models.Mode{models.ModeMTO, models.ModeMTM} {
		base, ok := config.BasePrices[mode]
		if !ok {
			return fmt.Errorf("base price for %s is required", mode)
		}
		if base.IsNegative() {
			return fmt.Errorf("base price for %s cannot be negative", mode)
		}
	}
	if config.MeasurementSurcharge.IsNegative() {
		return fmt.Errorf("measurementSurcharge cannot be negative")
	}
	if config.IncludedMeasurements < 0 {
		return fmt.Errorf("includedMeasurements cannot be negative")
	}
	return nil
}

// Currency returns the ISO currency code prices are expressed in
func (e *Engine) Currency() string {
	return e.config.Currency
}

// CalculatePrice returns the total price of a selection.
// The result is not rounded; callers format it for display.
func (e *Engine) CalculatePrice(sel models.Selection) decimal.Decimal {
	return e.Breakdown(sel).Total
}

// Breakdown calculates the price of a selection component by component
func (e *Engine) Breakdown(sel models.Selection) models.PricingBreakdown {
	mode := sel.Mode()
	base := e.config.BasePrices[mode]

	breakdown := models.PricingBreakdown{
		Mode:                 mode,
		BasePrice:            base,
		FabricAdjustment:     decimal.Zero,
		StyleDeltas:          decimal.Zero,
		MeasurementSurcharge: decimal.Zero,
	}

	// Fabric price replaces the base price
	if sel.Fabric != nil {
		breakdown.FabricAdjustment = sel.Fabric.PricePerUnit.Sub(base)
	}

	for _, option := range sel.Styles {
		breakdown.StyleDeltas = breakdown.StyleDeltas.Add(option.PriceDelta)
	}

	if mode == models.ModeMTM {
		extra := len(sel.Measurements()) - e.config.IncludedMeasurements
		if extra > 0 {
			breakdown.MeasurementSurcharge = e.config.MeasurementSurcharge.Mul(decimal.NewFromInt(int64(extra)))
		}
	}

	breakdown.Total = base.
		Add(breakdown.FabricAdjustment).
		Add(breakdown.StyleDeltas).
		Add(breakdown.MeasurementSurcharge)

	return breakdown
}
