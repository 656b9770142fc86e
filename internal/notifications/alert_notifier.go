package notifications

import (
	"context"

	"cryptofolio/internal/alerts"
)

// AlertNotifierAdapter implements alerts.Notifier by publishing triggered
// alerts to Kafka for asynchronous delivery.
type AlertNotifierAdapter struct {
	producer Producer
}

func NewAlertNotifierAdapter(producer Producer) *AlertNotifierAdapter {
	return &AlertNotifierAdapter{producer: producer}
}

func (a *AlertNotifierAdapter) NotifyAlertTriggered(ctx context.Context, alert *alerts.TriggeredAlert) error {
	notification := NewAlertNotification(
		alert.ID,
		alert.Email,
		alert.CryptoSymbol,
		string(alert.Direction),
		alert.ThresholdUSD,
		alert.CurrentPrice,
	)
	return a.producer.Publish(ctx, notification)
}
