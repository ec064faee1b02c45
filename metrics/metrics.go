// Package metrics holds the storefront's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QuotesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_quotes_total",
		Help: "Quotes computed, by mode.",
	}, []string{"mode"})

	QuoteErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_quote_errors_total",
		Help: "Quote requests rejected, by reason.",
	}, []string{"reason"})

	QuotePrice = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_quote_price",
		Help:    "Quoted garment prices.",
		Buckets: []float64{100, 150, 200, 250, 300, 400, 500, 750, 1000},
	}, []string{"mode"})

	DesignsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_designs_saved_total",
		Help: "Customer designs saved.",
	})

	SwatchesSyncedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_swatches_synced_total",
		Help: "Swatch files processed by Drive sync, by result.",
	}, []string{"result"})
)
