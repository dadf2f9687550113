package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// CreateWithWallet creates a user and its wallet in one transaction
	CreateWithWallet(ctx context.Context, user *User, wallet *Wallet) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UpdateProfile updates name, phone and bio
	UpdateProfile(ctx context.Context, user *User) error

	// UpdatePassword replaces the stored password hash
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
}

// WalletRepository defines the interface for wallet data operations
type WalletRepository interface {
	// GetByUserID retrieves the wallet owned by a user
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// Credit adds amount to the wallet balance and returns the new balance.
	// Runs as a single UPDATE so concurrent credits never lose an update.
	Credit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
}

// TransactionRepository defines the interface for the trade history
type TransactionRepository interface {
	// ListByWalletID retrieves all transactions for a wallet, newest first
	ListByWalletID(ctx context.Context, walletID uuid.UUID) ([]*Transaction, error)
}
