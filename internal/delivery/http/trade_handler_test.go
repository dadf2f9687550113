package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldmarket/internal/domain"
)

// stubTradeService scripts the outcomes of the trade operations
type stubTradeService struct {
	txn     *domain.Transaction
	wallet  *domain.Wallet
	history []*domain.Transaction
	err     error
}

func (s *stubTradeService) Execute(_ context.Context, _ uuid.UUID, _, _ string, _ decimal.Decimal) (*domain.Transaction, error) {
	return s.txn, s.err
}

func (s *stubTradeService) WalletOf(_ context.Context, _ uuid.UUID) (*domain.Wallet, error) {
	return s.wallet, s.err
}

func (s *stubTradeService) HistoryOf(_ context.Context, _ uuid.UUID) ([]*domain.Transaction, error) {
	return s.history, s.err
}

func newTradeContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.Set("user_id", uuid.New())
	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestExecuteTrade_Success(t *testing.T) {
	txn := &domain.Transaction{
		ID:        uuid.New(),
		WalletID:  uuid.New(),
		Type:      domain.TradeBuy,
		Symbol:    "GOLD",
		Quantity:  decimal.RequireFromString("0.5"),
		UnitPrice: decimal.RequireFromString("12426.00"),
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	h := NewTradeHandler(&stubTradeService{txn: txn})

	c, rec := newTradeContext(t, http.MethodPost, "/api/trade/execute",
		`{"type":"BUY","symbol":"GOLD","amount":"0.5"}`)
	require.NoError(t, h.ExecuteTrade(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "success", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "BUY", data["type"])
	assert.Equal(t, "0.5", data["quantity"])
	assert.Equal(t, "12426.00", data["unit_price"])
}

func TestExecuteTrade_InsufficientFunds(t *testing.T) {
	h := NewTradeHandler(&stubTradeService{
		err: fmt.Errorf("balance 100 below cost 200: %w", domain.ErrInsufficientFunds),
	})

	c, rec := newTradeContext(t, http.MethodPost, "/api/trade/execute",
		`{"type":"BUY","symbol":"GOLD","amount":"1"}`)
	require.NoError(t, h.ExecuteTrade(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Insufficient funds", resp.Message)
}

func TestExecuteTrade_InvalidType(t *testing.T) {
	h := NewTradeHandler(&stubTradeService{
		err: fmt.Errorf("trade type %q: %w", "HOLD", domain.ErrInvalidArgument),
	})

	c, rec := newTradeContext(t, http.MethodPost, "/api/trade/execute",
		`{"type":"HOLD","symbol":"GOLD","amount":"1"}`)
	require.NoError(t, h.ExecuteTrade(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWallet_NotFound(t *testing.T) {
	h := NewTradeHandler(&stubTradeService{
		err: fmt.Errorf("wallet: %w", domain.ErrNotFound),
	})

	c, rec := newTradeContext(t, http.MethodGet, "/api/trade/wallet", "")
	require.NoError(t, h.GetWallet(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetWallet_Success(t *testing.T) {
	h := NewTradeHandler(&stubTradeService{
		wallet: &domain.Wallet{
			ID:       uuid.New(),
			UserID:   uuid.New(),
			Currency: domain.DefaultCurrency,
			Balance:  decimal.RequireFromString("3787.00"),
		},
	})

	c, rec := newTradeContext(t, http.MethodGet, "/api/trade/wallet", "")
	require.NoError(t, h.GetWallet(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "3787.00", data["balance"])
	assert.Equal(t, "INR", data["currency"])
}

func TestGetHistory_NewestFirstPassthrough(t *testing.T) {
	newer := &domain.Transaction{
		ID: uuid.New(), Type: domain.TradeSell, Symbol: "GOLD_22K",
		Quantity:  decimal.RequireFromString("1"),
		UnitPrice: decimal.RequireFromString("11390.91"),
		Timestamp: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}
	older := &domain.Transaction{
		ID: uuid.New(), Type: domain.TradeBuy, Symbol: "GOLD",
		Quantity:  decimal.RequireFromString("0.5"),
		UnitPrice: decimal.RequireFromString("12426.00"),
		Timestamp: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	h := NewTradeHandler(&stubTradeService{history: []*domain.Transaction{newer, older}})

	c, rec := newTradeContext(t, http.MethodGet, "/api/trade/history", "")
	require.NoError(t, h.GetHistory(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	items, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 2)

	first, ok := items[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "SELL", first["type"])
}

func TestTradeEndpoints_RequireAuth(t *testing.T) {
	h := NewTradeHandler(&stubTradeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/trade/wallet", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec) // no user_id in context

	require.NoError(t, h.GetWallet(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
