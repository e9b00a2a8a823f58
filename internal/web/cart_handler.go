package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AbdulRehman2008/E-comerce/internal/cart"
)

type CartHandler struct {
	store *cart.Store
}

func NewCartHandler(store *cart.Store) *CartHandler {
	return &CartHandler{store: store}
}

// cartView is what every cart endpoint responds with, so the UI always has
// fresh derived totals.
type cartView struct {
	Items     []cart.Item `json:"items"`
	CartCount int         `json:"cartCount"`
	Subtotal  float64     `json:"subtotal"`
}

func (h *CartHandler) view() cartView {
	items := h.store.Items()
	if items == nil {
		items = []cart.Item{}
	}
	return cartView{
		Items:     items,
		CartCount: h.store.Count(),
		Subtotal:  h.store.Subtotal(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string  `json:"productId"`
		Title     string  `json:"title"`
		Price     float64 `json:"price"`
		Image     string  `json:"image"`
		Quantity  *int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}
	if body.Price < 0 {
		writeError(w, http.StatusBadRequest, "negative price")
		return
	}

	// Quantity defaults to 1 when omitted; an explicit value is passed
	// through as-is.
	quantity := 1
	if body.Quantity != nil {
		quantity = *body.Quantity
	}

	h.store.Add(cart.Item{
		ProductID: body.ProductID,
		Title:     body.Title,
		Price:     body.Price,
		Image:     body.Image,
	}, quantity)

	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	h.store.SetQuantity(productID, body.Quantity)

	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "missing productId")
		return
	}

	h.store.Remove(productID)

	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	writeJSON(w, http.StatusOK, h.view())
}
