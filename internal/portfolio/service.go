package portfolio

import (
	"context"

	"cryptofolio/internal/wallets"
)

type Service interface {
	GetUserPortfolio(ctx context.Context, userID uint) ([]HoldingView, error)
	GetWalletPortfolio(ctx context.Context, walletID, userID uint) ([]HoldingView, error)
}

type service struct {
	repo          Repository
	walletService wallets.Service
}

func NewService(repo Repository, walletService wallets.Service) Service {
	return &service{
		repo:          repo,
		walletService: walletService,
	}
}

func (s *service) GetUserPortfolio(ctx context.Context, userID uint) ([]HoldingView, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) GetWalletPortfolio(ctx context.Context, walletID, userID uint) ([]HoldingView, error) {
	if err := s.walletService.VerifyOwnership(ctx, walletID, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByWallet(ctx, walletID)
}
