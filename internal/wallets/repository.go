package wallets

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrWalletNotFound = errors.New("wallet not found")

// portfolioValueColumn asks the database for the market value of a wallet's
// holdings at current prices.
const portfolioValueColumn = `wallets.*, COALESCE((
	SELECT SUM(h.quantity_held * c.current_price_usd)
	FROM holdings h
	JOIN cryptos c ON c.id = h.crypto_id
	WHERE h.wallet_id = wallets.id
), 0) AS portfolio_value`

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]WalletWithValue, error)
	GetAll(ctx context.Context) ([]WalletWithValue, error)
	GetByID(ctx context.Context, id uint) (*Wallet, error)
	Create(ctx context.Context, wallet *Wallet) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]WalletWithValue, error) {
	var rows []WalletWithValue
	err := r.db.WithContext(ctx).Model(&Wallet{}).
		Select(portfolioValueColumn).
		Where("wallets.user_id = ?", userID).
		Order("wallets.id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetAll(ctx context.Context) ([]WalletWithValue, error) {
	var rows []WalletWithValue
	err := r.db.WithContext(ctx).Model(&Wallet{}).
		Select(portfolioValueColumn).
		Order("wallets.id").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Wallet, error) {
	var wallet Wallet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, err
	}
	return &wallet, nil
}

func (r *repository) Create(ctx context.Context, wallet *Wallet) error {
	return r.db.WithContext(ctx).Create(wallet).Error
}
