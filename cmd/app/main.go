package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"goldmarket/configs"
	"goldmarket/internal/database"
	delivery "goldmarket/internal/delivery/http"
	"goldmarket/internal/infra"
	"goldmarket/internal/middleware"
	"goldmarket/internal/repository"
	"goldmarket/internal/service"
	"goldmarket/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	txnRepo := repository.NewTransactionRepository(db)

	// Initialize services
	priceService := service.NewLivePriceService()
	priceService.Refresh() // Initial tick so quotes are live before the first cron fire
	depositService := service.NewDepositService(walletRepo, cfg.Payment.ProcessingDelay)
	advisorService := service.NewAdvisorService()
	tradeService := usecase.NewTradeService(db, walletRepo, txnRepo, priceService)

	// Start the price feed scheduler
	scheduler := infra.NewScheduler(priceService)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Initialize auth + handlers
	auth := middleware.NewAuth(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		Auth:        auth,
		AuthHandler: delivery.NewAuthHandler(userRepo, auth),
		OAuthHandler: delivery.NewOAuthHandler(
			userRepo,
			auth,
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			cfg.Google.RedirectURL,
			cfg.Server.FrontendURL,
		),
		MarketHandler:  delivery.NewMarketHandler(priceService, advisorService),
		TradeHandler:   delivery.NewTradeHandler(tradeService),
		PaymentHandler: delivery.NewPaymentHandler(depositService),
		PublicHandler:  delivery.NewPublicHandler(userRepo),
		FrontendURL:    cfg.Server.FrontendURL,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Gold Market API starting on %s", addr)
	log.Printf("Environment: %s", cfg.Server.Env)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
