package repository

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"tailor-storefront/models"
)

// Prices are kept as strings in the seed file so they are parsed exactly
type seedFabric struct {
	models.FabricOption `yaml:",inline"`
	PricePerUnit        string `yaml:"pricePerUnit"`
}

type seedStyle struct {
	models.StyleOption `yaml:",inline"`
	PriceDelta         string `yaml:"priceDelta"`
}

type catalogSeed struct {
	Fabrics []seedFabric        `yaml:"fabrics"`
	Styles  []seedStyle         `yaml:"styles"`
	Sizes   []models.SizeOption `yaml:"sizes"`
}

func parseSeedAmount(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}

// ParseCatalogSeed decodes a YAML catalog seed
func ParseCatalogSeed(data []byte) (*models.CatalogData, error) {
	var seed catalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}

	catalog := &models.CatalogData{}
	for _, f := range seed.Fabrics {
		price, err := parseSeedAmount(f.PricePerUnit)
		if err != nil {
			return nil, fmt.Errorf("fabric %s: invalid pricePerUnit %q: %w", f.ID, f.PricePerUnit, err)
		}
		fabric := f.FabricOption
		fabric.PricePerUnit = price
		catalog.Fabrics = append(catalog.Fabrics, fabric)
	}
	for _, s := range seed.Styles {
		delta, err := parseSeedAmount(s.PriceDelta)
		if err != nil {
			return nil, fmt.Errorf("style %s: invalid priceDelta %q: %w", s.ID, s.PriceDelta, err)
		}
		style := s.StyleOption
		style.PriceDelta = delta
		catalog.Styles = append(catalog.Styles, style)
	}
	catalog.Sizes = seed.Sizes

	return catalog, nil
}

// SeedCatalog loads a YAML catalog file and saves every option in it.
// Existing options with the same id are replaced.
func SeedCatalog(ctx context.Context, repo CatalogRepositoryInterface, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog seed: %w", err)
	}

	catalog, err := ParseCatalogSeed(data)
	if err != nil {
		return err
	}

	for i := range catalog.Fabrics {
		if err := repo.SaveFabric(ctx, &catalog.Fabrics[i]); err != nil {
			return err
		}
	}
	for i := range catalog.Styles {
		if err := repo.SaveStyle(ctx, &catalog.Styles[i]); err != nil {
			return err
		}
	}
	for i := range catalog.Sizes {
		if err := repo.SaveSize(ctx, &catalog.Sizes[i]); err != nil {
			return err
		}
	}

	zap.S().Infof("🌱 SeedCatalog: Loaded %d fabrics, %d styles, %d sizes from %s",
		len(catalog.Fabrics), len(catalog.Styles), len(catalog.Sizes), path)
	return nil
}
