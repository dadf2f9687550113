package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceFeed exposes the latest simulated gold quotes.
// Reads are snapshot reads and never block the refresh tick.
type PriceFeed interface {
	// Quotes returns the current price for every published symbol
	Quotes() map[string]decimal.Decimal

	// PriceOf returns the current price for one symbol.
	// Unknown symbols yield zero, not an error.
	PriceOf(symbol string) decimal.Decimal
}

// TradeService settles trades against wallets and answers wallet queries
type TradeService interface {
	// Execute settles one BUY or SELL and returns the recorded transaction
	Execute(ctx context.Context, userID uuid.UUID, tradeType, symbol string, quantity decimal.Decimal) (*Transaction, error)

	// WalletOf retrieves the user's wallet
	WalletOf(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// HistoryOf retrieves the user's trades, newest first
	HistoryOf(ctx context.Context, userID uuid.UUID) ([]*Transaction, error)
}
