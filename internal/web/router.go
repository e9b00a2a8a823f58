package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AbdulRehman2008/E-comerce/internal/auth"
)

// NewRouter wires the storefront API surface.
func NewRouter(verifier *auth.Verifier, catalogH *CatalogHandler, cartH *CartHandler, checkoutH *CheckoutHandler, orderH *OrderHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(verifier.Middleware)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", catalogH.ListProducts)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartH.GetCart)
			r.Delete("/", cartH.ClearCart)
			r.Post("/items", cartH.AddItem)
			r.Put("/items/{productId}", cartH.SetQuantity)
			r.Delete("/items/{productId}", cartH.RemoveItem)
		})

		r.Post("/checkout", checkoutH.Submit)

		r.Get("/orders", orderH.ListMyOrders)
		r.Get("/orders/{orderId}", orderH.GetOrder)

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/orders", orderH.ListAllOrders)
			r.Put("/orders/{orderId}/status", orderH.UpdateStatus)
		})
	})

	return r
}

func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.FromContext(r.Context()).Admin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
