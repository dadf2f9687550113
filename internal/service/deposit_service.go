package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"goldmarket/internal/domain"
)

// DepositReceipt is the result of a successful mock deposit
type DepositReceipt struct {
	NewBalance    decimal.Decimal
	TransactionID string
}

// DepositService simulates a payment gateway. There is no real payment
// provider behind it; deposits just credit the wallet after a fixed delay.
type DepositService struct {
	walletRepo domain.WalletRepository
	delay      time.Duration
}

// NewDepositService creates a new DepositService
func NewDepositService(walletRepo domain.WalletRepository, delay time.Duration) *DepositService {
	return &DepositService{
		walletRepo: walletRepo,
		delay:      delay,
	}
}

// MockDeposit credits the user's wallet after a simulated processing delay
func (s *DepositService) MockDeposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*DepositReceipt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("deposit amount %s must be greater than 0: %w", amount, domain.ErrInvalidArgument)
	}

	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Simulate payment processing delay
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	newBalance, err := s.walletRepo.Credit(ctx, wallet.ID, amount)
	if err != nil {
		return nil, err
	}

	receipt := &DepositReceipt{
		NewBalance:    newBalance,
		TransactionID: fmt.Sprintf("MOCK_%d", time.Now().UnixMilli()),
	}

	log.Printf("[OK] Mock deposit: %s credited to wallet %s | new balance: %s",
		amount, wallet.ID, newBalance)

	return receipt, nil
}
