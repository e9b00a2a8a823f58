package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Durable order store
	OrderDBDSN string

	// Local cart persistence (sqlite file)
	CartDBPath string

	// Messaging; empty disables the order event publisher
	RabbitURL string

	// How long checkout waits on the durable save before proceeding
	CheckoutSaveTimeout time.Duration

	// Public demo catalog API
	CatalogBaseURL string

	// Session tokens
	JWTSecret string

	// Confirmation email; unset ids disable sending
	EmailBaseURL    string
	EmailServiceID  string
	EmailTemplateID string
	EmailPublicKey  string
}

func Load() Config {
	return Config{
		Port:                getenv("PORT", "8080"),
		OrderDBDSN:          os.Getenv("ORDER_DB_DSN"),
		CartDBPath:          getenv("CART_DB_PATH", "cart.db"),
		RabbitURL:           os.Getenv("RABBITMQ_URL"),
		CheckoutSaveTimeout: parseDuration(getenv("CHECKOUT_SAVE_TIMEOUT", "2.5s"), 2500*time.Millisecond),
		CatalogBaseURL:      getenv("CATALOG_BASE_URL", "https://fakestoreapi.com"),
		JWTSecret:           getenv("JWT_SECRET", "dev-secret"),
		EmailBaseURL:        os.Getenv("EMAIL_BASE_URL"),
		EmailServiceID:      os.Getenv("EMAILJS_SERVICE_ID"),
		EmailTemplateID:     os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailPublicKey:      os.Getenv("EMAILJS_PUBLIC_KEY"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
