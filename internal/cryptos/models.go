package cryptos

import "time"

type Crypto struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Symbol          string    `json:"symbol" gorm:"uniqueIndex;not null;size:16"`
	Name            string    `json:"name" gorm:"not null;size:100"`
	Category        string    `json:"category" gorm:"size:50"`
	CurrentPriceUSD float64   `json:"current_price_usd" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Crypto) TableName() string { return "cryptos" }

type CreateCryptoRequest struct {
	Symbol          string  `json:"symbol" binding:"required,min=1,max=16"`
	Name            string  `json:"name" binding:"required,min=1,max=100"`
	Category        string  `json:"category" binding:"omitempty,max=50"`
	CurrentPriceUSD float64 `json:"current_price_usd" binding:"required,min=0"`
}

type UpdateCryptoRequest struct {
	Name            *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Category        *string  `json:"category" binding:"omitempty,max=50"`
	CurrentPriceUSD *float64 `json:"current_price_usd" binding:"omitempty,min=0"`
}
