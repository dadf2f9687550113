package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"goldmarket/internal/delivery/http/dto"
	"goldmarket/internal/domain"
	"goldmarket/internal/middleware"
)

// TradeHandler handles wallet, history and trade execution requests
type TradeHandler struct {
	tradeService domain.TradeService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeService domain.TradeService) *TradeHandler {
	return &TradeHandler{tradeService: tradeService}
}

// GetWallet returns the authenticated user's wallet
// GET /api/trade/wallet
func (h *TradeHandler) GetWallet(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	wallet, err := h.tradeService.WalletOf(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundResponse(c, "Wallet not found")
		}
		return InternalServerErrorResponse(c, "Failed to load wallet", err)
	}

	return SuccessResponse(c, walletOutput(wallet))
}

// GetHistory returns the authenticated user's trades, newest first
// GET /api/trade/history
func (h *TradeHandler) GetHistory(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	history, err := h.tradeService.HistoryOf(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return NotFoundResponse(c, "Wallet not found")
		}
		return InternalServerErrorResponse(c, "Failed to load history", err)
	}

	outputs := make([]dto.TransactionOutput, 0, len(history))
	for _, txn := range history {
		outputs = append(outputs, transactionOutput(txn))
	}

	return SuccessResponse(c, outputs)
}

// ExecuteTrade settles a BUY or SELL against the live price
// POST /api/trade/execute
func (h *TradeHandler) ExecuteTrade(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.TradeRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	txn, err := h.tradeService.Execute(ctx, userID, req.Type, req.Symbol, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			return BadRequestResponse(c, "Invalid trade type or amount")
		case errors.Is(err, domain.ErrInsufficientFunds):
			return BadRequestResponse(c, "Insufficient funds")
		case errors.Is(err, domain.ErrNotFound):
			return NotFoundResponse(c, "Wallet not found")
		}
		return InternalServerErrorResponse(c, "Trade failed", err)
	}

	return CreatedResponse(c, transactionOutput(txn))
}

func walletOutput(wallet *domain.Wallet) dto.WalletOutput {
	return dto.WalletOutput{
		ID:       wallet.ID.String(),
		Currency: wallet.Currency,
		Balance:  wallet.Balance.StringFixed(2),
	}
}

func transactionOutput(txn *domain.Transaction) dto.TransactionOutput {
	return dto.TransactionOutput{
		ID:        txn.ID.String(),
		Type:      txn.Type,
		Symbol:    txn.Symbol,
		Quantity:  txn.Quantity.String(),
		UnitPrice: txn.UnitPrice.StringFixed(2),
		Timestamp: txn.Timestamp.UTC().Format(time.RFC3339),
	}
}
