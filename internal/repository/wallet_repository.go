package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"goldmarket/internal/domain"
)

// WalletRepositoryImpl implements the WalletRepository interface.
// Balances are NUMERIC in the database and travel as text on the wire,
// so a value never passes through float64 on its way in or out.
type WalletRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewWalletRepository creates a new WalletRepository
func NewWalletRepository(db *pgxpool.Pool) domain.WalletRepository {
	return &WalletRepositoryImpl{db: db}
}

// GetByUserID retrieves the wallet owned by a user
func (r *WalletRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	query := `
		SELECT id, user_id, currency, balance::text, created_at
		FROM wallets
		WHERE user_id = $1
	`

	wallet := &domain.Wallet{}
	var balance string
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&wallet.ID,
		&wallet.UserID,
		&wallet.Currency,
		&balance,
		&wallet.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("wallet for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get wallet by user ID: %w", err)
	}

	wallet.Balance, err = decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse wallet balance: %w", err)
	}

	return wallet, nil
}

// Credit adds amount to the wallet balance and returns the new balance
func (r *WalletRepositoryImpl) Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $1::numeric
		WHERE id = $2
		RETURNING balance::text
	`

	var balance string
	err := r.db.QueryRow(ctx, query, amount.String(), walletID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("wallet %s: %w", walletID, domain.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to credit wallet: %w", err)
	}

	newBalance, err := decimal.NewFromString(balance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse wallet balance: %w", err)
	}

	return newBalance, nil
}
