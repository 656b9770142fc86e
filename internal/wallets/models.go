package wallets

import "time"

type Wallet struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	WalletName  string    `json:"wallet_name" gorm:"not null;size:100"`
	BalanceUSD  float64   `json:"balance_usd" gorm:"not null;default:0"`
	CreatedDate time.Time `json:"created_date" gorm:"autoCreateTime"`
}

func (Wallet) TableName() string { return "wallets" }

// WalletWithValue is a wallet row joined with the current market value of its
// holdings. The valuation itself is computed by the database.
type WalletWithValue struct {
	Wallet
	PortfolioValue float64 `json:"portfolio_value"`
}
