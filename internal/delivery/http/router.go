package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "goldmarket/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	Auth           *custommiddleware.Auth
	AuthHandler    *AuthHandler
	OAuthHandler   *OAuthHandler
	MarketHandler  *MarketHandler
	TradeHandler   *TradeHandler
	PaymentHandler *PaymentHandler
	PublicHandler  *PublicHandler
	FrontendURL    string
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// The frontend polls prices every few seconds; keep it out of the log
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/market/prices"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		// Vite dev servers; cookies ride along for the session
		AllowOrigins:     []string{config.FrontendURL, "http://localhost:5173", "http://localhost:5174"},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "goldmarket-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", config.AuthHandler.Signup)
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/logout", config.AuthHandler.Logout)
		auth.GET("/me", config.AuthHandler.Me, config.Auth.Middleware)
		auth.POST("/update", config.AuthHandler.UpdateProfile, config.Auth.Middleware)
		auth.GET("/google/login", config.OAuthHandler.Login)
		auth.GET("/google/callback", config.OAuthHandler.Callback)
	}

	// Market routes (public)
	market := api.Group("/market")
	{
		market.GET("/prices", config.MarketHandler.GetPrices)
	}

	// Advisor recommendation (public)
	api.GET("/chat/recommendation", config.MarketHandler.GetRecommendation)

	// Trade routes (protected)
	trade := api.Group("/trade", config.Auth.Middleware)
	{
		trade.GET("/wallet", config.TradeHandler.GetWallet)
		trade.GET("/history", config.TradeHandler.GetHistory)
		trade.POST("/execute", config.TradeHandler.ExecuteTrade)
	}

	// Payment routes (protected)
	payment := api.Group("/payment", config.Auth.Middleware)
	{
		payment.POST("/mock-deposit", config.PaymentHandler.MockDeposit)
		payment.POST("/confirm", config.PaymentHandler.ConfirmPayment)
	}

	// Public utility routes
	public := api.Group("/public")
	{
		public.GET("/demo-login", config.PublicHandler.DemoLogin)
		public.GET("/ping", config.PublicHandler.Ping)
	}
}
