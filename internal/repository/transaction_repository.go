package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"goldmarket/internal/domain"
)

// TransactionRepositoryImpl implements the TransactionRepository interface.
// The transactions table is append-only; this repository only reads it.
// Inserts happen inside the trade settlement transaction.
type TransactionRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *pgxpool.Pool) domain.TransactionRepository {
	return &TransactionRepositoryImpl{db: db}
}

// ListByWalletID retrieves all transactions for a wallet, newest first
func (r *TransactionRepositoryImpl) ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*domain.Transaction, error) {
	query := `
		SELECT id, wallet_id, type, symbol, quantity::text, unit_price::text, created_at
		FROM transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		txn := &domain.Transaction{}
		var quantity, unitPrice string
		err := rows.Scan(
			&txn.ID,
			&txn.WalletID,
			&txn.Type,
			&txn.Symbol,
			&quantity,
			&unitPrice,
			&txn.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		if txn.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return nil, fmt.Errorf("failed to parse transaction quantity: %w", err)
		}
		if txn.UnitPrice, err = decimal.NewFromString(unitPrice); err != nil {
			return nil, fmt.Errorf("failed to parse transaction price: %w", err)
		}

		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	return transactions, nil
}
