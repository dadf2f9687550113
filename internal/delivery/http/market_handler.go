package http

import (
	"github.com/labstack/echo/v4"

	"goldmarket/internal/domain"
	"goldmarket/internal/service"
)

// MarketHandler serves the live quotes and the advisor recommendation
type MarketHandler struct {
	priceFeed domain.PriceFeed
	advisor   *service.AdvisorService
}

// NewMarketHandler creates a new MarketHandler
func NewMarketHandler(priceFeed domain.PriceFeed, advisor *service.AdvisorService) *MarketHandler {
	return &MarketHandler{
		priceFeed: priceFeed,
		advisor:   advisor,
	}
}

// GetPrices returns the latest quote for every published symbol
// GET /api/market/prices
func (h *MarketHandler) GetPrices(c echo.Context) error {
	quotes := h.priceFeed.Quotes()

	// Prices go out as plain JSON numbers for display; exact decimal values
	// only matter on the settlement path
	prices := make(map[string]float64, len(quotes))
	for symbol, price := range quotes {
		prices[symbol] = price.InexactFloat64()
	}

	return SuccessResponse(c, prices)
}

// GetRecommendation returns the advisor's current market recommendation
// GET /api/chat/recommendation
func (h *MarketHandler) GetRecommendation(c echo.Context) error {
	return SuccessResponse(c, h.advisor.GetRecommendation())
}
