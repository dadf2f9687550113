package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldmarket/internal/service"
)

// stubPriceFeed serves a fixed quote set
type stubPriceFeed struct {
	quotes map[string]decimal.Decimal
}

func (s *stubPriceFeed) Quotes() map[string]decimal.Decimal {
	return s.quotes
}

func (s *stubPriceFeed) PriceOf(symbol string) decimal.Decimal {
	if price, ok := s.quotes[strings.ToUpper(symbol)]; ok {
		return price
	}
	return decimal.Zero
}

func TestGetPrices(t *testing.T) {
	feed := &stubPriceFeed{quotes: map[string]decimal.Decimal{
		"GOLD":     decimal.RequireFromString("12426.00"),
		"GOLD_24K": decimal.RequireFromString("12426.00"),
		"GOLD_22K": decimal.RequireFromString("11390.91"),
		"GOLD_18K": decimal.RequireFromString("9319.50"),
	}}
	h := NewMarketHandler(feed, service.NewAdvisorService())

	req := httptest.NewRequest(http.MethodGet, "/api/market/prices", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetPrices(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string             `json:"status"`
		Data   map[string]float64 `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Data, 4)
	assert.InDelta(t, 12426.00, resp.Data["GOLD"], 0.001)
	assert.InDelta(t, 11390.91, resp.Data["GOLD_22K"], 0.001)
}

func TestGetRecommendation(t *testing.T) {
	h := NewMarketHandler(&stubPriceFeed{}, service.NewAdvisorService())

	req := httptest.NewRequest(http.MethodGet, "/api/chat/recommendation", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetRecommendation(echo.New().NewContext(req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Action     string `json:"action"`
			Confidence string `json:"confidence"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "BUY", resp.Data.Action)
	assert.Equal(t, "High", resp.Data.Confidence)
}
