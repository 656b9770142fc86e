package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "pending"
	NotificationStatusQueued  NotificationStatus = "queued"
	NotificationStatusSent    NotificationStatus = "sent"
	NotificationStatusFailed  NotificationStatus = "failed"
)

// AlertNotification is the event published when a price alert fires
type AlertNotification struct {
	ID             uuid.UUID          `json:"id"`
	AlertID        uint               `json:"alert_id"`
	RecipientEmail string             `json:"recipient_email"`
	CryptoSymbol   string             `json:"crypto_symbol"`
	Direction      string             `json:"direction"`
	ThresholdUSD   float64            `json:"threshold_usd"`
	CurrentPrice   float64            `json:"current_price"`
	Status         NotificationStatus `json:"status"`
	LastError      *string            `json:"last_error,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

func NewAlertNotification(alertID uint, email, symbol, direction string, threshold, price float64) *AlertNotification {
	now := time.Now()
	return &AlertNotification{
		ID:             uuid.New(),
		AlertID:        alertID,
		RecipientEmail: email,
		CryptoSymbol:   symbol,
		Direction:      direction,
		ThresholdUSD:   threshold,
		CurrentPrice:   price,
		Status:         NotificationStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (n *AlertNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func FromJSON(data []byte) (*AlertNotification, error) {
	var n AlertNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// GetPartitionKey routes all notifications for one recipient to the same
// partition, preserving per-user ordering.
func (n *AlertNotification) GetPartitionKey() string {
	return n.RecipientEmail
}
