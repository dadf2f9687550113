package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"goldmarket/internal/domain"
)

// TradeService settles trades against user wallets and records them.
//
// Settlement is one database transaction: the wallet row is locked with
// SELECT ... FOR UPDATE, the balance is checked and rewritten, and the
// transaction row is inserted before commit. The row lock serializes
// concurrent trades against the same wallet; trades against different
// wallets never contend.
type TradeService struct {
	db         *pgxpool.Pool
	walletRepo domain.WalletRepository
	txnRepo    domain.TransactionRepository
	priceFeed  domain.PriceFeed
	now        func() time.Time
}

// NewTradeService creates a new TradeService
func NewTradeService(
	db *pgxpool.Pool,
	walletRepo domain.WalletRepository,
	txnRepo domain.TransactionRepository,
	priceFeed domain.PriceFeed,
) *TradeService {
	return &TradeService{
		db:         db,
		walletRepo: walletRepo,
		txnRepo:    txnRepo,
		priceFeed:  priceFeed,
		now:        time.Now,
	}
}

// normalizeTradeType uppercases the trade type and rejects anything that is
// not BUY or SELL
func normalizeTradeType(tradeType string) (string, error) {
	normalized := strings.ToUpper(tradeType)
	if normalized != domain.TradeBuy && normalized != domain.TradeSell {
		return "", fmt.Errorf("trade type %q: %w", tradeType, domain.ErrInvalidArgument)
	}
	return normalized, nil
}

// settle computes the post-trade balance. BUY fails on overdraft; SELL always
// succeeds because the system tracks cash flow only, not asset positions.
func settle(balance, cost decimal.Decimal, tradeType string) (decimal.Decimal, error) {
	if tradeType == domain.TradeBuy {
		if balance.LessThan(cost) {
			return balance, fmt.Errorf("balance %s below cost %s: %w", balance, cost, domain.ErrInsufficientFunds)
		}
		return balance.Sub(cost), nil
	}
	return balance.Add(cost), nil
}

// Execute settles one trade for the user and returns the recorded transaction
func (s *TradeService) Execute(ctx context.Context, userID uuid.UUID, tradeType, symbol string, quantity decimal.Decimal) (*domain.Transaction, error) {
	normalized, err := normalizeTradeType(tradeType)
	if err != nil {
		return nil, err
	}
	if !quantity.IsPositive() {
		return nil, fmt.Errorf("quantity %s must be positive: %w", quantity, domain.ErrInvalidArgument)
	}

	// Unknown symbols price at zero by contract, which settles a zero-cost trade
	price := s.priceFeed.PriceOf(symbol)
	cost := price.Mul(quantity)

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin settlement: %w", err)
	}
	defer tx.Rollback(ctx)

	var walletID uuid.UUID
	var balanceText string
	err = tx.QueryRow(ctx, `
		SELECT id, balance::text
		FROM wallets
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&walletID, &balanceText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to lock wallet: %w", err)
	}

	balance, err := decimal.NewFromString(balanceText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet balance: %w", err)
	}

	newBalance, err := settle(balance, cost, normalized)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		UPDATE wallets SET balance = $1::numeric WHERE id = $2
	`, newBalance.String(), walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to update wallet balance: %w", err)
	}

	txn := &domain.Transaction{
		ID:        uuid.New(),
		WalletID:  walletID,
		Type:      normalized,
		Symbol:    symbol,
		Quantity:  quantity,
		UnitPrice: price,
		Timestamp: s.now(),
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO transactions (id, wallet_id, type, symbol, quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7)
	`,
		txn.ID,
		txn.WalletID,
		txn.Type,
		txn.Symbol,
		txn.Quantity.String(),
		txn.UnitPrice.String(),
		txn.Timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	log.Printf("[OK] Trade settled: %s %s %s @ %s | new balance: %s",
		txn.Type, txn.Quantity, txn.Symbol, txn.UnitPrice, newBalance)

	return txn, nil
}

// WalletOf retrieves the user's wallet
func (s *TradeService) WalletOf(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	return s.walletRepo.GetByUserID(ctx, userID)
}

// HistoryOf retrieves the user's trade history, newest first. Every call
// re-reads the store, so new trades show up on the next query.
func (s *TradeService) HistoryOf(ctx context.Context, userID uuid.UUID) ([]*domain.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.txnRepo.ListByWalletID(ctx, wallet.ID)
}

// SetClock overrides the timestamp source for deterministic tests
func (s *TradeService) SetClock(now func() time.Time) {
	s.now = now
}
