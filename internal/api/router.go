package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Finance-Dashboard-Backend/internal/api/middleware"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/feed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
)

// Services bundles the service layer for router construction.
type Services struct {
	System      *service.SystemService
	Auth        *service.AuthService
	Portfolio   *service.PortfolioService
	Trade       *service.TradeService
	Transaction *service.TransactionService
	Budget      *service.BudgetService
	Settings    *service.SettingsService
	Feed        *feed.Service
	Instruments *repository.InstrumentRepository
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	requireAuth := custommiddleware.Auth(svc.Auth)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace, unauthenticated for load balancer probes
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/auth", func(r chi.Router) {
			authHandler := handlers.NewAuthHandler(svc.Auth)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Everything below requires a session token
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			quoteHandler := handlers.NewQuoteHandler(svc.Feed, svc.Instruments)
			r.Get("/quotes", quoteHandler.Quotes)
			r.Post("/quotes/refresh", quoteHandler.RefreshQuotes)
			r.Get("/watchlist", quoteHandler.Watchlist)

			r.Route("/portfolio", func(r chi.Router) {
				portfolioHandler := handlers.NewPortfolioHandler(svc.Portfolio)
				tradeHandler := handlers.NewTradeHandler(svc.Trade, svc.Feed)
				r.Get("/", portfolioHandler.Portfolio)
				r.Get("/wallet", portfolioHandler.Wallet)
				r.Get("/gains", portfolioHandler.RealizedGains)
				r.Post("/trade", tradeHandler.PlaceTrade)
			})

			r.Route("/transactions", func(r chi.Router) {
				transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
				r.Get("/", transactionHandler.ListTransactions)
				r.Post("/", transactionHandler.CreateTransaction)
				r.Get("/summary", transactionHandler.MonthlySummary)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Get("/", transactionHandler.GetTransaction)
					r.Put("/", transactionHandler.UpdateTransaction)
					r.Delete("/", transactionHandler.DeleteTransaction)
				})
			})

			r.Route("/budgets", func(r chi.Router) {
				budgetHandler := handlers.NewBudgetHandler(svc.Budget)
				r.Get("/", budgetHandler.ListBudgets)
				r.Post("/", budgetHandler.CreateBudget)
				r.Get("/summary", budgetHandler.BudgetSummary)
				r.Route("/{uuid}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateUUIDMiddleware)
					r.Put("/", budgetHandler.UpdateBudget)
					r.Delete("/", budgetHandler.DeleteBudget)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				settingsHandler := handlers.NewSettingsHandler(svc.Settings)
				r.Get("/quote-key", settingsHandler.QuoteKey)
				r.Put("/quote-key", settingsHandler.UpdateQuoteKey)
			})
		})
	})

	return r
}
