package transactions

import "time"

type TxnType string

const (
	TxnTypeBuy  TxnType = "buy"
	TxnTypeSell TxnType = "sell"
)

type Transaction struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	WalletID   uint      `json:"wallet_id" gorm:"not null;index"`
	CryptoID   uint      `json:"crypto_id" gorm:"not null;index"`
	TxnType    TxnType   `json:"txn_type" gorm:"type:varchar(4);not null"`
	Quantity   float64   `json:"quantity" gorm:"not null"`
	PriceAtTxn float64   `json:"price_at_txn" gorm:"not null"`
	TxnDate    time.Time `json:"txn_date" gorm:"autoCreateTime;index"`
}

func (Transaction) TableName() string { return "transactions" }

// TransactionView is a transaction joined with its crypto symbol
type TransactionView struct {
	ID           uint      `json:"id"`
	TxnDate      time.Time `json:"txn_date"`
	TxnType      TxnType   `json:"txn_type"`
	WalletID     uint      `json:"wallet_id"`
	CryptoSymbol string    `json:"crypto_symbol"`
	Quantity     float64   `json:"quantity"`
	PriceAtTxn   float64   `json:"price_at_txn"`
}
