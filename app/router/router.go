package router

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tailor-storefront/app/controller"
)

type Controllers struct {
	Quote   *controller.QuoteController
	Catalog *controller.CatalogController
	Design  *controller.DesignController
	Model   *controller.ModelController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// Price quote with line item properties
	mux.HandleFunc("/quote", controllers.Quote.Quote)

	// Catalog routes
	mux.HandleFunc("/catalog/fabrics", controllers.Catalog.ListFabrics)
	mux.HandleFunc("/catalog/styles", controllers.Catalog.ListStyles)
	mux.HandleFunc("/catalog/sizes", controllers.Catalog.ListSizes)

	// Swatch image for a fabric
	mux.HandleFunc("/catalog/fabrics/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/swatch") {
			controllers.Catalog.GetSwatchImage(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Admin catalog routes
	// Sync fabric swatches from Drive (must be registered before the upsert routes)
	mux.HandleFunc("/admin/fabrics/sync", controllers.Catalog.SyncSwatches)

	mux.HandleFunc("/admin/fabrics", controllers.Catalog.SaveFabric)
	mux.HandleFunc("/admin/styles", controllers.Catalog.SaveStyle)
	mux.HandleFunc("/admin/sizes", controllers.Catalog.SaveSize)

	// DELETE /admin/{fabrics|styles|sizes}/:id
	mux.HandleFunc("/admin/fabrics/", controllers.Catalog.DeleteOption)
	mux.HandleFunc("/admin/styles/", controllers.Catalog.DeleteOption)
	mux.HandleFunc("/admin/sizes/", controllers.Catalog.DeleteOption)

	// Saved designs
	mux.HandleFunc("/designs", controllers.Design.CreateDesign)
	mux.HandleFunc("/designs/", controllers.Design.DesignByID)

	// 3D model layer classification
	mux.HandleFunc("/model/layers", controllers.Model.ClassifyLayers)
}
