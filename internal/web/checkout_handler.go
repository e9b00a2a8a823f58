package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AbdulRehman2008/E-comerce/internal/checkout"
	"github.com/AbdulRehman2008/E-comerce/internal/order"
)

// Submitter runs the order submission flow.
type Submitter interface {
	Submit(ctx context.Context, customer order.Customer) (checkout.Summary, error)
}

type CheckoutHandler struct {
	svc Submitter
}

func NewCheckoutHandler(svc Submitter) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

// checkoutRequest carries the shipping form. Payment fields are accepted for
// form parity but never stored or forwarded anywhere.
type checkoutRequest struct {
	order.Customer
	CardName   string `json:"cardName"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var body checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if msg := validateCustomer(body.Customer); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	summary, err := h.svc.Submit(r.Context(), body.Customer)
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			writeError(w, http.StatusBadRequest, "cart is empty")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to place order")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// validateCustomer enforces the required shipping fields; phone is optional.
func validateCustomer(c order.Customer) string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", c.FirstName},
		{"lastName", c.LastName},
		{"email", c.Email},
		{"address", c.Address},
		{"city", c.City},
		{"country", c.Country},
		{"zip", c.Zip},
	}
	for _, f := range required {
		if f.value == "" {
			return "missing " + f.name
		}
	}
	return ""
}
