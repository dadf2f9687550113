package http

import (
	"errors"
	"fmt"

	"github.com/labstack/echo/v4"

	"goldmarket/internal/delivery/http/dto"
	"goldmarket/internal/domain"
	"goldmarket/internal/middleware"
	"goldmarket/internal/service"
)

// PaymentHandler handles the mock deposit endpoints
type PaymentHandler struct {
	depositService *service.DepositService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(depositService *service.DepositService) *PaymentHandler {
	return &PaymentHandler{depositService: depositService}
}

// MockDeposit credits the wallet after a simulated processing delay
// POST /api/payment/mock-deposit
func (h *PaymentHandler) MockDeposit(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "Not authenticated")
	}

	var req dto.DepositRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	// No extra timeout here: the simulated processing delay is part of the call
	receipt, err := h.depositService.MockDeposit(c.Request().Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidArgument):
			return BadRequestResponse(c, "Amount must be greater than 0")
		case errors.Is(err, domain.ErrNotFound):
			return NotFoundResponse(c, "Wallet not found")
		}
		return InternalServerErrorResponse(c, "Deposit failed", err)
	}

	return SuccessResponse(c, dto.DepositResponse{
		Message:       fmt.Sprintf("Payment successful! ₹%s added to wallet", req.Amount),
		NewBalance:    receipt.NewBalance.StringFixed(2),
		TransactionID: receipt.TransactionID,
	})
}

// ConfirmPayment is a legacy alias for MockDeposit
// POST /api/payment/confirm
func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	return h.MockDeposit(c)
}
