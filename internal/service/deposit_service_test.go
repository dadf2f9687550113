package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldmarket/internal/domain"
)

type fakeWalletRepo struct {
	wallet *domain.Wallet
}

func (f *fakeWalletRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*domain.Wallet, error) {
	if f.wallet == nil || f.wallet.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return f.wallet, nil
}

func (f *fakeWalletRepo) Credit(_ context.Context, walletID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	if f.wallet == nil || f.wallet.ID != walletID {
		return decimal.Zero, domain.ErrNotFound
	}
	f.wallet.Balance = f.wallet.Balance.Add(amount)
	return f.wallet.Balance, nil
}

func newFakeWallet(userID uuid.UUID, balance string) *domain.Wallet {
	return &domain.Wallet{
		ID:       uuid.New(),
		UserID:   userID,
		Currency: domain.DefaultCurrency,
		Balance:  decimal.RequireFromString(balance),
	}
}

func TestMockDeposit_CreditsWallet(t *testing.T) {
	userID := uuid.New()
	repo := &fakeWalletRepo{wallet: newFakeWallet(userID, "10000.00")}
	svc := NewDepositService(repo, 0)

	receipt, err := svc.MockDeposit(context.Background(), userID, decimal.RequireFromString("2500.00"))
	require.NoError(t, err)

	assert.True(t, receipt.NewBalance.Equal(decimal.RequireFromString("12500.00")))
	assert.True(t, strings.HasPrefix(receipt.TransactionID, "MOCK_"))
	assert.True(t, repo.wallet.Balance.Equal(receipt.NewBalance))
}

func TestMockDeposit_RejectsNonPositiveAmount(t *testing.T) {
	userID := uuid.New()
	repo := &fakeWalletRepo{wallet: newFakeWallet(userID, "10000.00")}
	svc := NewDepositService(repo, 0)

	for _, amount := range []string{"0", "-5.00"} {
		_, err := svc.MockDeposit(context.Background(), userID, decimal.RequireFromString(amount))
		require.ErrorIs(t, err, domain.ErrInvalidArgument, "amount %s", amount)
	}

	assert.True(t, repo.wallet.Balance.Equal(decimal.RequireFromString("10000.00")))
}

func TestMockDeposit_UnknownUser(t *testing.T) {
	repo := &fakeWalletRepo{}
	svc := NewDepositService(repo, 0)

	_, err := svc.MockDeposit(context.Background(), uuid.New(), decimal.RequireFromString("100.00"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMockDeposit_CanceledContext(t *testing.T) {
	userID := uuid.New()
	repo := &fakeWalletRepo{wallet: newFakeWallet(userID, "100.00")}
	svc := NewDepositService(repo, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.MockDeposit(ctx, userID, decimal.RequireFromString("100.00"))
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, repo.wallet.Balance.Equal(decimal.RequireFromString("100.00")))
}
