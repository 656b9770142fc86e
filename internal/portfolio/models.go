package portfolio

import "time"

// Holding is one wallet's position in one cryptocurrency
type Holding struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	WalletID     uint      `json:"wallet_id" gorm:"not null;uniqueIndex:idx_wallet_crypto"`
	CryptoID     uint      `json:"crypto_id" gorm:"not null;uniqueIndex:idx_wallet_crypto"`
	QuantityHeld float64   `json:"quantity_held" gorm:"not null;default:0"`
	AvgBuyPrice  float64   `json:"avg_buy_price" gorm:"not null;default:0"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Holding) TableName() string { return "holdings" }

// HoldingView is a holding joined with its wallet and market data
type HoldingView struct {
	WalletID     uint    `json:"wallet_id"`
	WalletName   string  `json:"wallet_name"`
	CryptoSymbol string  `json:"crypto_symbol"`
	CryptoName   string  `json:"crypto_name"`
	QuantityHeld float64 `json:"quantity_held"`
	AvgBuyPrice  float64 `json:"avg_buy_price"`
	CurrentValue float64 `json:"current_value"`
}
