package alerts

import "time"

type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusTriggered Status = "triggered"
)

type Alert struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       uint       `json:"user_id" gorm:"not null;index"`
	CryptoID     uint       `json:"crypto_id" gorm:"not null;index"`
	Direction    Direction  `json:"direction" gorm:"type:varchar(5);not null"`
	ThresholdUSD float64    `json:"threshold_usd" gorm:"not null"`
	Status       Status     `json:"status" gorm:"type:varchar(10);not null;default:'active';index"`
	DateCreated  time.Time  `json:"date_created" gorm:"autoCreateTime"`
	TriggeredAt  *time.Time `json:"triggered_at,omitempty"`
}

func (Alert) TableName() string { return "alerts" }

// AlertView is an alert joined with its crypto symbol and current price
type AlertView struct {
	ID           uint       `json:"id"`
	CryptoSymbol string     `json:"crypto_symbol"`
	Direction    Direction  `json:"direction"`
	ThresholdUSD float64    `json:"threshold_usd"`
	CurrentPrice float64    `json:"current_price"`
	Status       Status     `json:"status"`
	DateCreated  time.Time  `json:"date_created"`
	TriggeredAt  *time.Time `json:"triggered_at,omitempty"`
}

type CreateAlertRequest struct {
	CryptoID     uint    `json:"crypto_id" validate:"required,min=1"`
	Direction    string  `json:"direction" validate:"required,oneof=above below"`
	ThresholdUSD float64 `json:"threshold_usd" validate:"required,gt=0"`
}
