package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds indexes AutoMigrate does not cover
func MigrateConstraints(db *gorm.DB) error {
	// Speed up per-wallet transaction history queries
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_transactions_wallet_date
		ON transactions (wallet_id, txn_date DESC);
	`).Error
	if err != nil {
		return err
	}

	// The alert evaluation job only scans active alerts
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_alerts_active
		ON alerts (crypto_id) WHERE status = 'active';
	`).Error
	if err != nil {
		return err
	}

	// Portfolio views join holdings by wallet
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_holdings_wallet_id
		ON holdings (wallet_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
