package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AbdulRehman2008/E-comerce/internal/auth"
	"github.com/AbdulRehman2008/E-comerce/internal/cart"
	"github.com/AbdulRehman2008/E-comerce/internal/catalog"
	"github.com/AbdulRehman2008/E-comerce/internal/checkout"
	"github.com/AbdulRehman2008/E-comerce/internal/config"
	"github.com/AbdulRehman2008/E-comerce/internal/db"
	"github.com/AbdulRehman2008/E-comerce/internal/events"
	"github.com/AbdulRehman2008/E-comerce/internal/mail"
	"github.com/AbdulRehman2008/E-comerce/internal/order"
	"github.com/AbdulRehman2008/E-comerce/internal/web"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	cfg := config.Load()
	if cfg.OrderDBDSN == "" {
		logger.Fatal("ORDER_DB_DSN not set")
	}

	if err := db.RunMigrations(cfg.OrderDBDSN, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database := db.MustOpen(cfg.OrderDBDSN)
	defer database.Close()
	orderRepo := order.NewRepository(database)

	cartStorage, err := cart.OpenSQLite(cfg.CartDBPath)
	if err != nil {
		logger.Fatalf("open cart storage: %v", err)
	}
	defer cartStorage.Close()
	cartStore := cart.NewStore(cartStorage, logger)

	mailer := mail.NewClient(mail.Config{
		BaseURL:    cfg.EmailBaseURL,
		ServiceID:  cfg.EmailServiceID,
		TemplateID: cfg.EmailTemplateID,
		PublicKey:  cfg.EmailPublicKey,
	}, &http.Client{Timeout: 30 * time.Second})

	var publisher checkout.EventPublisher
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		rabbitPublisher, err := events.NewPublisher(rabbitConn)
		if err != nil {
			logger.Fatalf("create order publisher: %v", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	}

	checkoutSvc := checkout.NewService(cartStore, orderRepo, mailer, publisher, cfg.CheckoutSaveTimeout, logger)

	catalogClient := catalog.NewClient(cfg.CatalogBaseURL, &http.Client{Timeout: 10 * time.Second})
	verifier := auth.NewVerifier(cfg.JWTSecret)

	router := web.NewRouter(
		verifier,
		web.NewCatalogHandler(catalogClient),
		web.NewCartHandler(cartStore),
		web.NewCheckoutHandler(checkoutSvc),
		web.NewOrderHandler(orderRepo),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}
