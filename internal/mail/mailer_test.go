package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulRehman2008/E-comerce/internal/order"
)

func sampleOrder() order.Order {
	return order.Order{
		Customer: order.Customer{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "555-0100",
			Address:   "12 Analytical St",
			City:      "London",
			Country:   "UK",
			Zip:       "N1 9GU",
		},
		Items: []order.Item{
			{ProductID: "A", Title: "Shirt", Price: 10.00, Quantity: 2},
			{ProductID: "B", Title: "Jacket", Price: 5.50, Quantity: 1},
		},
		Total:  25.50,
		Status: order.StatusPending,
	}
}

func TestFormatItems(t *testing.T) {
	got := FormatItems(sampleOrder().Items)
	assert.Equal(t, "Shirt x2 - $20.00\nJacket x1 - $5.50", got)
}

func TestFormatAddress(t *testing.T) {
	got := FormatAddress(sampleOrder().Customer)
	assert.Equal(t, "12 Analytical St, London N1 9GU, UK", got)
}

func TestSendOrderConfirmation_PostsTemplateParams(t *testing.T) {
	var captured sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{
		BaseURL:    srv.URL,
		ServiceID:  "svc",
		TemplateID: "tpl",
		PublicKey:  "key",
	}, srv.Client())

	require.NoError(t, c.SendOrderConfirmation(context.Background(), sampleOrder(), "order-9"))

	assert.Equal(t, "svc", captured.ServiceID)
	assert.Equal(t, "tpl", captured.TemplateID)
	assert.Equal(t, "key", captured.UserID)

	p := captured.TemplateParams
	assert.Equal(t, "ada@example.com", p["to_email"])
	assert.Equal(t, "order-9", p["order_id"])
	assert.Equal(t, "Ada Lovelace", p["customer_name"])
	assert.Equal(t, "12 Analytical St, London N1 9GU, UK", p["shipping_address"])
	assert.Equal(t, "25.50", p["order_total"])
	assert.Equal(t, "Shirt x2 - $20.00\nJacket x1 - $5.50", p["order_items"])
	assert.Equal(t, "Pending", p["order_status"])
}

func TestSendOrderConfirmation_UnconfiguredIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, srv.Client())

	require.NoError(t, c.SendOrderConfirmation(context.Background(), sampleOrder(), ""))
	assert.False(t, called)
}

func TestSendOrderConfirmation_NoRecipientIsNoop(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}, srv.Client())

	o := sampleOrder()
	o.Customer.Email = ""
	require.NoError(t, c.SendOrderConfirmation(context.Background(), o, ""))
	assert.False(t, called)
}

func TestSendOrderConfirmation_APIErrorIsReturned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, ServiceID: "svc", TemplateID: "tpl", PublicKey: "key"}, srv.Client())

	err := c.SendOrderConfirmation(context.Background(), sampleOrder(), "order-9")
	require.Error(t, err)
}
