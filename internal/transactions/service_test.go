package transactions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/wallets"
)

type fakeTxnRepo struct {
	executed []*Transaction
	execErr  error
}

func (f *fakeTxnRepo) GetByUser(ctx context.Context, userID uint) ([]TransactionView, error) {
	return nil, nil
}

func (f *fakeTxnRepo) GetAll(ctx context.Context) ([]TransactionView, error) {
	return nil, nil
}

func (f *fakeTxnRepo) Execute(ctx context.Context, txn *Transaction) error {
	if f.execErr != nil {
		return f.execErr
	}
	txn.ID = uint(len(f.executed) + 1)
	f.executed = append(f.executed, txn)
	return nil
}

// fakeWalletService accepts exactly one wallet/owner pair
type fakeWalletService struct {
	walletID uint
	ownerID  uint
}

func (f *fakeWalletService) ListUserWallets(ctx context.Context, userID uint) ([]wallets.WalletWithValue, error) {
	return nil, nil
}

func (f *fakeWalletService) ListAllWallets(ctx context.Context) ([]wallets.WalletWithValue, error) {
	return nil, nil
}

func (f *fakeWalletService) CreateWallet(ctx context.Context, userID uint, req *wallets.CreateWalletRequest) (*wallets.Wallet, error) {
	return nil, nil
}

func (f *fakeWalletService) VerifyOwnership(ctx context.Context, walletID, userID uint) error {
	if walletID != f.walletID {
		return wallets.ErrWalletNotFound
	}
	if userID != f.ownerID {
		return wallets.ErrNotWalletOwner
	}
	return nil
}

type fakeCryptoService struct {
	crypto *cryptos.Crypto
}

func (f *fakeCryptoService) ListCryptos(ctx context.Context) ([]cryptos.Crypto, error) {
	return nil, nil
}

func (f *fakeCryptoService) TopCryptos(ctx context.Context) ([]cryptos.Crypto, error) {
	return nil, nil
}

func (f *fakeCryptoService) GetCrypto(ctx context.Context, id uint) (*cryptos.Crypto, error) {
	if f.crypto == nil || f.crypto.ID != id {
		return nil, cryptos.ErrCryptoNotFound
	}
	return f.crypto, nil
}

func (f *fakeCryptoService) CreateCrypto(ctx context.Context, req *cryptos.CreateCryptoRequest) (*cryptos.Crypto, error) {
	return nil, nil
}

func (f *fakeCryptoService) UpdateCrypto(ctx context.Context, id uint, req *cryptos.UpdateCryptoRequest) (*cryptos.Crypto, error) {
	return nil, nil
}

func (f *fakeCryptoService) DeleteCrypto(ctx context.Context, id uint) error {
	return nil
}

func newTxnTestService() (Service, *fakeTxnRepo) {
	repo := &fakeTxnRepo{}
	walletSvc := &fakeWalletService{walletID: 10, ownerID: 7}
	cryptoSvc := &fakeCryptoService{crypto: &cryptos.Crypto{
		ID:              3,
		Symbol:          "BTC",
		CurrentPriceUSD: 64250,
	}}
	return NewService(repo, walletSvc, cryptoSvc), repo
}

func TestCreateTransaction(t *testing.T) {
	svc, repo := newTxnTestService()

	txn, err := svc.CreateTransaction(context.Background(), 7, &CreateTransactionRequest{
		WalletID: 10,
		CryptoID: 3,
		Quantity: 0.5,
		Price:    60000,
		Type:     "buy",
	})
	require.NoError(t, err)

	assert.Equal(t, TxnTypeBuy, txn.TxnType)
	assert.Equal(t, 60000.0, txn.PriceAtTxn)
	assert.Len(t, repo.executed, 1)
}

func TestCreateTransactionDefaultsToMarketPrice(t *testing.T) {
	svc, _ := newTxnTestService()

	txn, err := svc.CreateTransaction(context.Background(), 7, &CreateTransactionRequest{
		WalletID: 10,
		CryptoID: 3,
		Quantity: 0.25,
		Type:     "sell",
	})
	require.NoError(t, err)

	assert.Equal(t, 64250.0, txn.PriceAtTxn)
	assert.Equal(t, TxnTypeSell, txn.TxnType)
}

func TestCreateTransactionWalletOwnership(t *testing.T) {
	svc, repo := newTxnTestService()

	_, err := svc.CreateTransaction(context.Background(), 99, &CreateTransactionRequest{
		WalletID: 10,
		CryptoID: 3,
		Quantity: 1,
		Type:     "buy",
	})
	assert.ErrorIs(t, err, wallets.ErrNotWalletOwner)
	assert.Empty(t, repo.executed)
}

func TestCreateTransactionUnknownWallet(t *testing.T) {
	svc, _ := newTxnTestService()

	_, err := svc.CreateTransaction(context.Background(), 7, &CreateTransactionRequest{
		WalletID: 999,
		CryptoID: 3,
		Quantity: 1,
		Type:     "buy",
	})
	assert.ErrorIs(t, err, wallets.ErrWalletNotFound)
}

func TestCreateTransactionUnknownCrypto(t *testing.T) {
	svc, _ := newTxnTestService()

	_, err := svc.CreateTransaction(context.Background(), 7, &CreateTransactionRequest{
		WalletID: 10,
		CryptoID: 999,
		Quantity: 1,
		Type:     "buy",
	})
	assert.ErrorIs(t, err, cryptos.ErrCryptoNotFound)
}

func TestCreateTransactionPropagatesSettlementErrors(t *testing.T) {
	svc, repo := newTxnTestService()
	repo.execErr = ErrInsufficientFunds

	_, err := svc.CreateTransaction(context.Background(), 7, &CreateTransactionRequest{
		WalletID: 10,
		CryptoID: 3,
		Quantity: 100,
		Type:     "buy",
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}
