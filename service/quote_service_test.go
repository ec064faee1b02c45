package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailor-storefront/models"
	"tailor-storefront/pricing"
	"tailor-storefront/repository"
)

func newQuoteService(t *testing.T) *QuoteService {
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
	require.NoError(t, repo.SaveSize(ctx, &models.SizeOption{
		ID: "42R", Name: "42R", Measurements: models.MeasurementSet{"chest": 106, "waist": 92, "shoulder": 47, "sleeve": 65},
	}))

	engine, err := pricing.NewEngine("")
	require.NoError(t, err)
	return NewQuoteService(engine, repo)
}

func TestQuoteMTO(t *testing.T) {
	svc := newQuoteService(t)

	resp, err := svc.Quote(context.Background(), &models.QuoteRequest{
		Mode:     "mto",
		FabricID: "f1",
		Styles:   map[string]string{"lapel": "s1"},
		SizeID:   "42R",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ModeMTO, resp.Mode)
	assert.Equal(t, "225.00", resp.Price)
	assert.Equal(t, "USD", resp.Currency)
	assert.Equal(t, map[string]string{
		"Mode":             "MTO",
		"Fabric":           "Wool",
		"Fabric_Code":      "f1",
		"Fabric_Color":     "Navy",
		"Style_lapel":      "Peak",
		"Style_lapel_Code": "s1",
		"Size":             "42R",
		"Price":            "225.00",
	}, resp.Properties)
	require.Len(t, resp.Attributes, 8)
	assert.Equal(t, "Fabric", resp.Attributes[0].Key)
}

func TestQuoteMTM(t *testing.T) {
	svc := newQuoteService(t)

	resp, err := svc.Quote(context.Background(), &models.QuoteRequest{
		Mode:   "MTM",
		Styles: map[string]string{"lapel": "s1", "vents": "s2"},
		Measurements: models.MeasurementSet{
			"chest": 101.5, "waist": 88, "shoulder": 46, "sleeve": 64, "neck": 40, "hip": 100,
		},
	})
	require.NoError(t, err)

	// 149.99 + 25 - 10 + 2 extra measurements * 5
	assert.Equal(t, "174.99", resp.Price)
	assert.Equal(t, "101.5", resp.Properties["Measurement_chest"])
	assert.NotContains(t, resp.Properties, "Size")
}

func TestQuoteErrors(t *testing.T) {
	svc := newQuoteService(t)
	ctx := context.Background()

	_, err := svc.Quote(ctx, &models.QuoteRequest{Mode: "BESPOKE"})
	assert.ErrorIs(t, err, models.ErrInvalidSelection)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", FabricID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", Styles: map[string]string{"lapel": "nope"}})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", SizeID: "nope"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", Measurements: models.MeasurementSet{"chest": 100}})
	assert.ErrorIs(t, err, models.ErrInvalidSelection)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTM", SizeID: "42R"})
	assert.ErrorIs(t, err, models.ErrInvalidSelection)

	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", Styles: map[string]string{"lapel": " "}})
	assert.ErrorIs(t, err, models.ErrInvalidSelection)

	// Style filed under the wrong category
	_, err = svc.Quote(ctx, &models.QuoteRequest{Mode: "MTO", Styles: map[string]string{"vents": "s1"}})
	assert.ErrorIs(t, err, models.ErrInvalidSelection)
}
