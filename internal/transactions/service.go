package transactions

import (
	"context"

	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/wallets"
)

type Service interface {
	ListUserTransactions(ctx context.Context, userID uint) ([]TransactionView, error)
	ListAllTransactions(ctx context.Context) ([]TransactionView, error)
	CreateTransaction(ctx context.Context, userID uint, req *CreateTransactionRequest) (*Transaction, error)
}

type service struct {
	repo          Repository
	walletService wallets.Service
	cryptoService cryptos.Service
}

func NewService(repo Repository, walletService wallets.Service, cryptoService cryptos.Service) Service {
	return &service{
		repo:          repo,
		walletService: walletService,
		cryptoService: cryptoService,
	}
}

func (s *service) ListUserTransactions(ctx context.Context, userID uint) ([]TransactionView, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListAllTransactions(ctx context.Context) ([]TransactionView, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) CreateTransaction(ctx context.Context, userID uint, req *CreateTransactionRequest) (*Transaction, error) {
	if err := s.walletService.VerifyOwnership(ctx, req.WalletID, userID); err != nil {
		return nil, err
	}

	crypto, err := s.cryptoService.GetCrypto(ctx, req.CryptoID)
	if err != nil {
		return nil, err
	}

	price := req.Price
	if price == 0 {
		price = crypto.CurrentPriceUSD
	}

	txn := &Transaction{
		WalletID:   req.WalletID,
		CryptoID:   req.CryptoID,
		TxnType:    TxnType(req.Type),
		Quantity:   req.Quantity,
		PriceAtTxn: price,
	}

	if err := s.repo.Execute(ctx, txn); err != nil {
		return nil, err
	}

	return txn, nil
}
