package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spiceroute/biryani-order/internal/catalog"
	"github.com/spiceroute/biryani-order/internal/checkout"
	"github.com/spiceroute/biryani-order/internal/config"
	"github.com/spiceroute/biryani-order/internal/handlers"
	"github.com/spiceroute/biryani-order/internal/middleware"
	"github.com/spiceroute/biryani-order/internal/offers"
	"github.com/spiceroute/biryani-order/internal/orderlog"
	"github.com/spiceroute/biryani-order/internal/pricing"
	"github.com/spiceroute/biryani-order/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	profile := pricing.ByName(cfg.Pricing.Profile)

	log.Info("starting biryani ordering api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
		"pricing_profile", profile.Name,
	)

	// Static catalogs, compiled in
	menuCatalog := catalog.NewInMemoryMenuCatalog()
	offerTable := offers.NewDefaultTable()

	// Local order log
	orders := orderlog.New(cfg.OrderLog.Dir, cfg.OrderLog.Name)

	// Checkout service owns carts, coupons, pricing and order placement
	checkoutService := checkout.NewService(menuCatalog, offerTable, profile, orders)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	menuHandler := handlers.NewMenuHandler(menuCatalog, log)
	offerHandler := handlers.NewOfferHandler(offerTable, log)
	cartHandler := handlers.NewCartHandler(checkoutService, log)
	orderLogHandler := handlers.NewOrderLogHandler(orders, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Menu endpoints
		r.Get("/menu", menuHandler.ListItems)
		r.Get("/menu/{itemId}", menuHandler.GetItem)

		// Offer catalog
		r.Get("/offers", offerHandler.ListOffers)

		// Delivery slots
		r.Get("/slots", cartHandler.ListSlots)

		// Cart and checkout endpoints
		r.Post("/cart", cartHandler.CreateCart)
		r.Route("/cart/{cartId}", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{itemId}", cartHandler.RemoveOne)
			r.Put("/items/{itemId}", cartHandler.SetQuantity)
			r.Post("/coupon", cartHandler.ApplyCoupon)
			r.Delete("/coupon", cartHandler.RemoveCoupon)
			r.Put("/slot", cartHandler.SelectSlot)
			r.Put("/details", cartHandler.SetDetails)
			r.Post("/checkout", cartHandler.Checkout)
		})

		// Completed order log
		r.Get("/orders", orderLogHandler.ListOrders)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
