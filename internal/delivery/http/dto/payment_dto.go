package dto

import "github.com/shopspring/decimal"

// DepositRequest represents the mock deposit payload
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// DepositResponse represents a successful mock deposit
type DepositResponse struct {
	Message       string `json:"message"`
	NewBalance    string `json:"new_balance"`
	TransactionID string `json:"transaction_id"`
}
