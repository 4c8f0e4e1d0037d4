package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/nnrsauki/SaukiDataPro/internal/checkout"
	"github.com/nnrsauki/SaukiDataPro/internal/config"
	"github.com/nnrsauki/SaukiDataPro/internal/handlers"
	"github.com/nnrsauki/SaukiDataPro/internal/models"
	"github.com/nnrsauki/SaukiDataPro/internal/store"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Init storage backend and store
	backend, err := store.NewSQLiteBackend(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to open storage", "error", err)
		os.Exit(1)
	}
	if err := backend.InitSchema(); err != nil {
		slog.Error("Failed to init storage schema", "error", err)
		os.Exit(1)
	}

	db := store.New(backend, models.Theme(cfg.DefaultTheme))
	if err := db.Initialize(); err != nil {
		slog.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	// 3. Session Setup
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 4. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 5. Setup Handlers
	flow := checkout.NewFlow(db)
	adminHandler := &handlers.AdminHandler{
		Store:        db,
		SessionStore: sessionStore,
		Templates:    templates,
	}
	homeHandler := &handlers.HomeHandler{
		Store:        db,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		Store:        db,
		Flow:         flow,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	subscribeHandler := &handlers.SubscribeHandler{
		Templates:    templates,
		SessionStore: sessionStore,
	}
	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate Limiter for outbound handoffs
	rateLimiter := handlers.NewRateLimiter(10 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index)
	mux.HandleFunc("/buy-data", homeHandler.Index) // network picker doubles as the safe fallback screen
	mux.HandleFunc("/plans", homeHandler.NetworkPlans)
	mux.HandleFunc("POST /theme/toggle", homeHandler.ToggleTheme)

	// Checkout flow
	mux.HandleFunc("POST /checkout/select", orderHandler.SelectPlan)
	mux.HandleFunc("/payment", orderHandler.Payment)
	mux.HandleFunc("/order-form", orderHandler.OrderForm)
	mux.HandleFunc("POST /order-form", orderHandler.SubmitDetails)
	mux.HandleFunc("/order-preview", orderHandler.Preview)
	mux.HandleFunc("POST /order/proceed", rateLimiter.Middleware(orderHandler.Proceed))
	mux.HandleFunc("POST /order/cancel", orderHandler.Cancel)

	// Promo alerts
	mux.HandleFunc("/subscribe", subscribeHandler.Form)
	mux.HandleFunc("POST /subscribe", rateLimiter.Middleware(subscribeHandler.Submit))

	mux.HandleFunc("/login", adminHandler.LoginGet)
	mux.HandleFunc("POST /login", adminHandler.LoginPost)
	mux.HandleFunc("/logout", adminHandler.Logout)

	// Protected Routes
	mux.HandleFunc("/admin", adminHandler.AuthMiddleware(adminHandler.Dashboard))
	mux.HandleFunc("/admin/orders", adminHandler.AuthMiddleware(adminHandler.ListOrders))

	mux.HandleFunc("/admin/plans", adminHandler.AuthMiddleware(adminHandler.ListPlans))
	mux.HandleFunc("POST /admin/plans", adminHandler.AuthMiddleware(adminHandler.CreatePlan))
	mux.HandleFunc("POST /admin/plans/update", adminHandler.AuthMiddleware(adminHandler.UpdatePlan))
	mux.HandleFunc("POST /admin/plans/toggle", adminHandler.AuthMiddleware(adminHandler.TogglePlan))
	mux.HandleFunc("POST /admin/plans/delete", adminHandler.AuthMiddleware(adminHandler.DeletePlan))

	mux.HandleFunc("/admin/promos", adminHandler.AuthMiddleware(adminHandler.ListPromos))
	mux.HandleFunc("POST /admin/promos", adminHandler.AuthMiddleware(adminHandler.CreatePromo))
	mux.HandleFunc("POST /admin/promos/update", adminHandler.AuthMiddleware(adminHandler.UpdatePromo))
	mux.HandleFunc("POST /admin/promos/toggle", adminHandler.AuthMiddleware(adminHandler.TogglePromoLive))
	mux.HandleFunc("POST /admin/promos/delete", adminHandler.AuthMiddleware(adminHandler.DeletePromo))

	mux.HandleFunc("/admin/admins", adminHandler.AuthMiddleware(adminHandler.ListAdmins))
	mux.HandleFunc("POST /admin/admins", adminHandler.AuthMiddleware(adminHandler.CreateAdmin))
	mux.HandleFunc("POST /admin/admins/password", adminHandler.AuthMiddleware(adminHandler.UpdateAdminPassword))
	mux.HandleFunc("POST /admin/admins/delete", adminHandler.AuthMiddleware(adminHandler.DeleteAdmin))

	// 6. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		// Trust local development origins
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Wrap the router with middleware chain
	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 7. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	// Create a channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Goroutine to start the server
	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-stop

	slog.Info("Shutting down server gracefully...")

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	if err := backend.Close(); err != nil {
		slog.Error("Storage close failed", "error", err)
	}

	slog.Info("Server exited gracefully.")
}
