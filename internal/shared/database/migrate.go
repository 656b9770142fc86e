package database

import (
	"cryptofolio/internal/alerts"
	"cryptofolio/internal/cryptos"
	"cryptofolio/internal/portfolio"
	"cryptofolio/internal/transactions"
	"cryptofolio/internal/users"
	"cryptofolio/internal/wallets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&wallets.Wallet{},
		&cryptos.Crypto{},
		&portfolio.Holding{},
		&transactions.Transaction{},
		&alerts.Alert{},
	)
}
