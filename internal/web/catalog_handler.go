package web

import (
	"context"
	"net/http"
	"time"

	"github.com/AbdulRehman2008/E-comerce/internal/catalog"
)

// ProductSource supplies the raw product list, typically the demo catalog
// API client.
type ProductSource interface {
	Products(ctx context.Context) ([]catalog.Product, error)
}

type CatalogHandler struct {
	source ProductSource
}

func NewCatalogHandler(source ProductSource) *CatalogHandler {
	return &CatalogHandler{source: source}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := h.source.Products(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, "failed to load products")
		return
	}

	q := r.URL.Query()
	filtered := catalog.Apply(products, catalog.Filter{
		Category:   q.Get("category"),
		Search:     q.Get("search"),
		PriceRange: q.Get("price"),
		Sort:       q.Get("sort"),
	})

	writeJSON(w, http.StatusOK, filtered)
}
