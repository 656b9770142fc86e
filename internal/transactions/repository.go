package transactions

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cryptofolio/internal/portfolio"
	"cryptofolio/internal/wallets"
)

var (
	ErrInsufficientHolding = errors.New("insufficient holding to sell")
	ErrInsufficientFunds   = errors.New("insufficient wallet balance")
)

const viewSelect = `transactions.id,
transactions.txn_date,
transactions.txn_type,
transactions.wallet_id,
cryptos.symbol AS crypto_symbol,
transactions.quantity,
transactions.price_at_txn`

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]TransactionView, error)
	GetAll(ctx context.Context) ([]TransactionView, error)
	// Execute records the transaction and settles the wallet balance and the
	// portfolio holding atomically.
	Execute(ctx context.Context, txn *Transaction) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]TransactionView, error) {
	var rows []TransactionView
	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(viewSelect).
		Joins("JOIN cryptos ON cryptos.id = transactions.crypto_id").
		Joins("JOIN wallets ON wallets.id = transactions.wallet_id").
		Where("wallets.user_id = ?", userID).
		Order("transactions.txn_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetAll(ctx context.Context) ([]TransactionView, error) {
	var rows []TransactionView
	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(viewSelect).
		Joins("JOIN cryptos ON cryptos.id = transactions.crypto_id").
		Order("transactions.txn_date DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) Execute(ctx context.Context, txn *Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Wallet row is locked for the duration of the settlement so two
		// concurrent transactions cannot both pass the balance check.
		var wallet wallets.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", txn.WalletID).
			First(&wallet).Error; err != nil {
			return fmt.Errorf("failed to lock wallet: %w", err)
		}

		cost := txn.Quantity * txn.PriceAtTxn

		var holding portfolio.Holding
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("wallet_id = ? AND crypto_id = ?", txn.WalletID, txn.CryptoID).
			First(&holding).Error
		holdingExists := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to read holding: %w", err)
		}

		switch txn.TxnType {
		case TxnTypeBuy:
			if wallet.BalanceUSD < cost {
				return ErrInsufficientFunds
			}

			if holdingExists {
				// average buy price is weighted across the whole position
				totalCost := holding.AvgBuyPrice*holding.QuantityHeld + cost
				holding.QuantityHeld += txn.Quantity
				holding.AvgBuyPrice = totalCost / holding.QuantityHeld
				if err := tx.Save(&holding).Error; err != nil {
					return fmt.Errorf("failed to update holding: %w", err)
				}
			} else {
				holding = portfolio.Holding{
					WalletID:     txn.WalletID,
					CryptoID:     txn.CryptoID,
					QuantityHeld: txn.Quantity,
					AvgBuyPrice:  txn.PriceAtTxn,
				}
				if err := tx.Create(&holding).Error; err != nil {
					return fmt.Errorf("failed to create holding: %w", err)
				}
			}

			wallet.BalanceUSD -= cost

		case TxnTypeSell:
			if !holdingExists || holding.QuantityHeld < txn.Quantity {
				return ErrInsufficientHolding
			}

			holding.QuantityHeld -= txn.Quantity
			if holding.QuantityHeld == 0 {
				if err := tx.Delete(&holding).Error; err != nil {
					return fmt.Errorf("failed to close holding: %w", err)
				}
			} else {
				if err := tx.Save(&holding).Error; err != nil {
					return fmt.Errorf("failed to update holding: %w", err)
				}
			}

			wallet.BalanceUSD += cost

		default:
			return fmt.Errorf("unknown transaction type %q", txn.TxnType)
		}

		if err := tx.Model(&wallets.Wallet{}).
			Where("id = ?", wallet.ID).
			Update("balance_usd", wallet.BalanceUSD).Error; err != nil {
			return fmt.Errorf("failed to settle wallet balance: %w", err)
		}

		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		return nil
	})
}
