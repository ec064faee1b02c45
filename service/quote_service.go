package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tailor-storefront/checkout"
	"tailor-storefront/metrics"
	"tailor-storefront/models"
	"tailor-storefront/pricing"
	"tailor-storefront/repository"
	"tailor-storefront/utils"
)

// QuoteService resolves catalog ids into a selection and prices it
type QuoteService struct {
	engine  *pricing.Engine
	catalog repository.CatalogRepositoryInterface
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(engine *pricing.Engine, catalog repository.CatalogRepositoryInterface) *QuoteService {
	return &QuoteService{
		engine:  engine,
		catalog: catalog,
	}
}

// BuildSelection looks up every option referenced by the request.
// Unknown ids return an error wrapping repository.ErrNotFound; an invalid
// combination returns an error wrapping models.ErrInvalidSelection.
func (s *QuoteService) BuildSelection(ctx context.Context, req *models.QuoteRequest) (models.Selection, error) {
	mode, err := models.ParseMode(strings.ToUpper(strings.TrimSpace(req.Mode)))
	if err != nil {
		return models.Selection{}, err
	}

	var sel models.Selection

	if fabricID := strings.TrimSpace(req.FabricID); fabricID != "" {
		fabric, err := s.catalog.GetFabric(ctx, fabricID)
		if err != nil {
			return models.Selection{}, err
		}
		sel.Fabric = fabric
	}

	if len(req.Styles) > 0 {
		sel.Styles = make(map[string]models.StyleOption, len(req.Styles))
		for category, styleID := range req.Styles {
			if strings.TrimSpace(styleID) == "" {
				return models.Selection{}, fmt.Errorf("%w: style id for category %q is empty", models.ErrInvalidSelection, category)
			}
			style, err := s.catalog.GetStyle(ctx, styleID)
			if err != nil {
				return models.Selection{}, err
			}
			sel.Styles[category] = *style
		}
	}

	switch mode {
	case models.ModeMTO:
		if len(req.Measurements) > 0 {
			return models.Selection{}, fmt.Errorf("%w: measurements are not accepted in MTO mode", models.ErrInvalidSelection)
		}
		fit := models.MadeToOrder{}
		if sizeID := strings.TrimSpace(req.SizeID); sizeID != "" {
			size, err := s.catalog.GetSize(ctx, sizeID)
			if err != nil {
				return models.Selection{}, err
			}
			fit.Size = size
		}
		sel.Fit = fit

	case models.ModeMTM:
		if strings.TrimSpace(req.SizeID) != "" {
			return models.Selection{}, fmt.Errorf("%w: sizeId is not accepted in MTM mode", models.ErrInvalidSelection)
		}
		sel.Fit = models.MadeToMeasure{Measurements: req.Measurements}
	}

	if err := sel.Validate(); err != nil {
		return models.Selection{}, err
	}
	return sel, nil
}

// Quote prices the request and builds its line item properties
func (s *QuoteService) Quote(ctx context.Context, req *models.QuoteRequest) (*models.QuoteResponse, error) {
	sel, err := s.BuildSelection(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			metrics.QuoteErrorsTotal.WithLabelValues("unknown_option").Inc()
		case errors.Is(err, models.ErrInvalidSelection):
			metrics.QuoteErrorsTotal.WithLabelValues("invalid_selection").Inc()
		default:
			metrics.QuoteErrorsTotal.WithLabelValues("internal").Inc()
		}
		return nil, err
	}

	breakdown := s.engine.Breakdown(sel)
	props := checkout.BuildLineItemProperties(sel, breakdown.Total)

	mode := string(sel.Mode())
	metrics.QuotesTotal.WithLabelValues(mode).Inc()
	metrics.QuotePrice.WithLabelValues(mode).Observe(breakdown.Total.InexactFloat64())

	zap.S().Infof("💰 Quote: mode=%s, fabric=%s, styles=%d, total=%s",
		mode, req.FabricID, len(sel.Styles), utils.FormatDisplay(breakdown.Total, utils.CurrencySymbol(s.engine.Currency())))

	return &models.QuoteResponse{
		Mode:       sel.Mode(),
		Price:      props[checkout.KeyPrice],
		Currency:   s.engine.Currency(),
		Breakdown:  breakdown,
		Properties: props,
		Attributes: checkout.ToAttributes(props),
	}, nil
}
