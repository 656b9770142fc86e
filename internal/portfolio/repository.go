package portfolio

import (
	"context"

	"gorm.io/gorm"
)

const holdingViewSelect = `wallets.id AS wallet_id,
wallets.wallet_name,
cryptos.symbol AS crypto_symbol,
cryptos.name AS crypto_name,
holdings.quantity_held,
holdings.avg_buy_price,
ROUND(CAST(cryptos.current_price_usd * holdings.quantity_held AS numeric), 2) AS current_value`

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]HoldingView, error)
	GetByWallet(ctx context.Context, walletID uint) ([]HoldingView, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]HoldingView, error) {
	var rows []HoldingView
	err := r.db.WithContext(ctx).
		Table("holdings").
		Select(holdingViewSelect).
		Joins("JOIN wallets ON wallets.id = holdings.wallet_id").
		Joins("JOIN cryptos ON cryptos.id = holdings.crypto_id").
		Where("wallets.user_id = ?", userID).
		Order("wallets.wallet_name, cryptos.symbol").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetByWallet(ctx context.Context, walletID uint) ([]HoldingView, error) {
	var rows []HoldingView
	err := r.db.WithContext(ctx).
		Table("holdings").
		Select(holdingViewSelect).
		Joins("JOIN wallets ON wallets.id = holdings.wallet_id").
		Joins("JOIN cryptos ON cryptos.id = holdings.crypto_id").
		Where("holdings.wallet_id = ?", walletID).
		Order("cryptos.symbol").
		Scan(&rows).Error
	return rows, err
}
