package portfolio

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptofolio/internal/wallets"
)

type fakeHoldingRepo struct {
	byWallet map[uint][]HoldingView
}

func (f *fakeHoldingRepo) GetByUser(ctx context.Context, userID uint) ([]HoldingView, error) {
	var out []HoldingView
	for _, views := range f.byWallet {
		out = append(out, views...)
	}
	return out, nil
}

func (f *fakeHoldingRepo) GetByWallet(ctx context.Context, walletID uint) ([]HoldingView, error) {
	return f.byWallet[walletID], nil
}

type singleWalletService struct {
	walletID uint
	ownerID  uint
}

func (s *singleWalletService) ListUserWallets(ctx context.Context, userID uint) ([]wallets.WalletWithValue, error) {
	return nil, nil
}

func (s *singleWalletService) ListAllWallets(ctx context.Context) ([]wallets.WalletWithValue, error) {
	return nil, nil
}

func (s *singleWalletService) CreateWallet(ctx context.Context, userID uint, req *wallets.CreateWalletRequest) (*wallets.Wallet, error) {
	return nil, nil
}

func (s *singleWalletService) VerifyOwnership(ctx context.Context, walletID, userID uint) error {
	if walletID != s.walletID {
		return wallets.ErrWalletNotFound
	}
	if userID != s.ownerID {
		return wallets.ErrNotWalletOwner
	}
	return nil
}

func TestGetWalletPortfolio(t *testing.T) {
	repo := &fakeHoldingRepo{byWallet: map[uint][]HoldingView{
		10: {{WalletID: 10, CryptoSymbol: "BTC", QuantityHeld: 0.5}},
	}}
	svc := NewService(repo, &singleWalletService{walletID: 10, ownerID: 7})

	holdings, err := svc.GetWalletPortfolio(context.Background(), 10, 7)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, "BTC", holdings[0].CryptoSymbol)
}

func TestGetWalletPortfolioDeniesNonOwner(t *testing.T) {
	repo := &fakeHoldingRepo{byWallet: map[uint][]HoldingView{
		10: {{WalletID: 10, CryptoSymbol: "BTC"}},
	}}
	svc := NewService(repo, &singleWalletService{walletID: 10, ownerID: 7})

	_, err := svc.GetWalletPortfolio(context.Background(), 10, 99)
	assert.ErrorIs(t, err, wallets.ErrNotWalletOwner)

	_, err = svc.GetWalletPortfolio(context.Background(), 999, 7)
	assert.ErrorIs(t, err, wallets.ErrWalletNotFound)
}
