package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/ui"
)

// NewRouter assembles the storefront's HTTP surface.
func NewRouter(ctrl *ui.Controller, store *cart.Store, catalog ui.Catalog, requestTimeout time.Duration) *chi.Mux {
	productHandler := NewProductHandler(ctrl, catalog)
	cartHandler := NewCartHandler(store, catalog)
	viewHandler := NewViewHandler(ctrl)
	checkoutHandler := NewCheckoutHandler(ctrl)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", productHandler.List)
		r.Get("/products/{product_id}", productHandler.Get)
		r.Get("/categories", productHandler.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{product_id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{product_id}", cartHandler.RemoveItem)
			r.Delete("/", cartHandler.Clear)
		})

		r.Route("/view", func(r chi.Router) {
			r.Put("/search", viewHandler.Search)
			r.Put("/category", viewHandler.SelectCategory)
			r.Put("/filters", viewHandler.ReplaceFilters)
			r.Post("/filters/reset", viewHandler.ResetFilters)
			r.Delete("/selection", viewHandler.ClearSelection)
			r.Post("/cart-toggle", viewHandler.ToggleCart)
		})

		r.Post("/checkout", checkoutHandler.Checkout)
	})

	return r
}
