package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/AbdulRehman2008/E-comerce/internal/order"
)

// Mailer sends the customer-facing order confirmation.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, o order.Order, orderID string) error
}

// Config identifies the EmailJS-style template endpoint. With any field
// empty the client is unconfigured and sends nothing.
type Config struct {
	BaseURL    string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

func (c Config) enabled() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// Client posts template parameters to the email API over plain HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.emailjs.com/api/v1.0/email/send"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, http: httpClient}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *Client) SendOrderConfirmation(ctx context.Context, o order.Order, orderID string) error {
	if !c.cfg.enabled() {
		return nil
	}

	toEmail := o.Customer.Email
	if toEmail == "" {
		return nil
	}

	params := map[string]string{
		"to_email":         toEmail,
		"order_id":         orderID,
		"customer_name":    CustomerName(o.Customer),
		"customer_email":   toEmail,
		"customer_phone":   o.Customer.Phone,
		"shipping_address": FormatAddress(o.Customer),
		"order_total":      fmt.Sprintf("%.2f", o.Total),
		"order_items":      FormatItems(o.Items),
		"order_status":     o.Status.String(),
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("email api returned %s", resp.Status)
	}
	return nil
}

// FormatItems renders one "<title> x<quantity> - $<lineTotal>" line per item.
func FormatItems(items []order.Item) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s x%d - $%.2f", it.Title, it.Quantity, it.Price*float64(it.Quantity)))
	}
	return strings.Join(lines, "\n")
}

// FormatAddress renders "<address>, <city> <zip>, <country>".
func FormatAddress(c order.Customer) string {
	return fmt.Sprintf("%s, %s %s, %s", c.Address, c.City, c.Zip, c.Country)
}

func CustomerName(c order.Customer) string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
