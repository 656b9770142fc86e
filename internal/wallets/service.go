package wallets

import (
	"context"
	"errors"
)

var ErrNotWalletOwner = errors.New("wallet does not belong to user")

type Service interface {
	ListUserWallets(ctx context.Context, userID uint) ([]WalletWithValue, error)
	ListAllWallets(ctx context.Context) ([]WalletWithValue, error)
	CreateWallet(ctx context.Context, userID uint, req *CreateWalletRequest) (*Wallet, error)
	// VerifyOwnership reports whether the wallet exists and belongs to userID
	VerifyOwnership(ctx context.Context, walletID, userID uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUserWallets(ctx context.Context, userID uint) ([]WalletWithValue, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) ListAllWallets(ctx context.Context) ([]WalletWithValue, error) {
	return s.repo.GetAll(ctx)
}

func (s *service) CreateWallet(ctx context.Context, userID uint, req *CreateWalletRequest) (*Wallet, error) {
	wallet := &Wallet{
		UserID:     userID,
		WalletName: req.WalletName,
		BalanceUSD: req.Balance,
	}
	if err := s.repo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

func (s *service) VerifyOwnership(ctx context.Context, walletID, userID uint) error {
	wallet, err := s.repo.GetByID(ctx, walletID)
	if err != nil {
		return err
	}
	if wallet.UserID != userID {
		return ErrNotWalletOwner
	}
	return nil
}
