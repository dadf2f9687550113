package dto

import "github.com/shopspring/decimal"

// TradeRequest represents the trade execution payload.
// decimal.Decimal accepts both quoted and bare JSON numbers, matching
// whatever the frontend sends.
type TradeRequest struct {
	Type   string          `json:"type" validate:"required"`
	Symbol string          `json:"symbol" validate:"required"`
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// WalletOutput represents a wallet in API responses
type WalletOutput struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// TransactionOutput represents a settled trade in API responses
type TransactionOutput struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Symbol    string `json:"symbol"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Timestamp string `json:"timestamp"`
}
