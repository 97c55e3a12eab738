package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/api"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/config"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/database"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/feed"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/model"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/repository"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/service"
	"github.com/ndewijer/Finance-Dashboard-Backend/internal/twelvedata"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	startingCash, err := decimal.NewFromString(cfg.Auth.StartingCash)
	if err != nil {
		log.Fatalf("Invalid starting cash %q: %v", cfg.Auth.StartingCash, err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	tradeRepo := repository.NewTradeRepository(db)
	instrumentRepo := repository.NewInstrumentRepository(db)
	gainsRepo := repository.NewRealizedGainLossRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, startingCash)
	portfolioService := service.NewPortfolioService(holdingRepo, walletRepo, gainsRepo)
	tradeService := service.NewTradeService(tradeRepo, holdingRepo, walletRepo, instrumentRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	budgetService := service.NewBudgetService(budgetRepo, transactionRepo)
	settingsService, err := service.NewSettingsService(settingRepo, cfg.Auth.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to initialize settings service: %v", err)
	}

	// Seed the instrument universe and demo data
	seedService := service.NewSeedService(instrumentRepo, transactionRepo, budgetRepo, authService)
	if err := seedService.Run(cfg.Auth.DemoUserEmail, cfg.Auth.DemoPassword); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	// Start the quote feed; every published snapshot reprices holdings.
	// The client prefers a key stored through the settings endpoint, so a
	// key update takes effect on the next refresh without a restart.
	quoteClient := twelvedata.NewClient(cfg.Quote.APIKey,
		twelvedata.WithBaseURL(cfg.Quote.BaseURL),
		twelvedata.WithTimeout(cfg.Quote.RequestTimeout),
		twelvedata.WithKeySource(func() string {
			key, ok, err := settingsService.QuoteAPIKey()
			if err != nil {
				log.Printf("Failed to read stored quote API key: %v", err)
				return ""
			}
			if !ok {
				return ""
			}
			return key
		}),
	)
	feedService := feed.NewService(quoteClient, service.WatchUniverse, cfg.Quote.RefreshInterval, cfg.Quote.RequestTimeout)
	feedService.Subscribe(func(snapshot *model.QuoteSnapshot) {
		if err := portfolioService.Reprice(snapshot); err != nil {
			log.Printf("Failed to reprice holdings: %v", err)
		}
	})
	feedService.Start()
	defer feedService.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:      systemService,
		Auth:        authService,
		Portfolio:   portfolioService,
		Trade:       tradeService,
		Transaction: transactionService,
		Budget:      budgetService,
		Settings:    settingsService,
		Feed:        feedService,
		Instruments: instrumentRepo,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
