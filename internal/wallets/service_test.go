package wallets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWalletRepo struct {
	byID   map[uint]*Wallet
	nextID uint
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{byID: make(map[uint]*Wallet), nextID: 1}
}

func (f *fakeWalletRepo) GetByUser(ctx context.Context, userID uint) ([]WalletWithValue, error) {
	var out []WalletWithValue
	for _, w := range f.byID {
		if w.UserID == userID {
			out = append(out, WalletWithValue{Wallet: *w})
		}
	}
	return out, nil
}

func (f *fakeWalletRepo) GetAll(ctx context.Context) ([]WalletWithValue, error) {
	var out []WalletWithValue
	for _, w := range f.byID {
		out = append(out, WalletWithValue{Wallet: *w})
	}
	return out, nil
}

func (f *fakeWalletRepo) GetByID(ctx context.Context, id uint) (*Wallet, error) {
	w, ok := f.byID[id]
	if !ok {
		return nil, ErrWalletNotFound
	}
	found := *w
	return &found, nil
}

func (f *fakeWalletRepo) Create(ctx context.Context, wallet *Wallet) error {
	wallet.ID = f.nextID
	f.nextID++
	stored := *wallet
	f.byID[wallet.ID] = &stored
	return nil
}

func TestCreateWallet(t *testing.T) {
	svc := NewService(newFakeWalletRepo())

	wallet, err := svc.CreateWallet(context.Background(), 7, &CreateWalletRequest{
		WalletName: "Trading_Wallet",
		Balance:    1000,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(7), wallet.UserID)
	assert.Equal(t, "Trading_Wallet", wallet.WalletName)
	assert.Equal(t, 1000.0, wallet.BalanceUSD)
	assert.NotZero(t, wallet.ID)
}

func TestVerifyOwnership(t *testing.T) {
	svc := NewService(newFakeWalletRepo())
	ctx := context.Background()

	wallet, err := svc.CreateWallet(ctx, 7, &CreateWalletRequest{WalletName: "Alice_Wallet"})
	require.NoError(t, err)

	assert.NoError(t, svc.VerifyOwnership(ctx, wallet.ID, 7))
	assert.ErrorIs(t, svc.VerifyOwnership(ctx, wallet.ID, 99), ErrNotWalletOwner)
	assert.ErrorIs(t, svc.VerifyOwnership(ctx, 999, 7), ErrWalletNotFound)
}

func TestListUserWallets(t *testing.T) {
	svc := NewService(newFakeWalletRepo())
	ctx := context.Background()

	_, err := svc.CreateWallet(ctx, 7, &CreateWalletRequest{WalletName: "Alice_Wallet"})
	require.NoError(t, err)
	_, err = svc.CreateWallet(ctx, 8, &CreateWalletRequest{WalletName: "Bob_Wallet"})
	require.NoError(t, err)

	mine, err := svc.ListUserWallets(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListAllWallets(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
