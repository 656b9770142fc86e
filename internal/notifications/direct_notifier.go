package notifications

import (
	"context"

	"cryptofolio/internal/alerts"
)

// DirectNotifier implements alerts.Notifier by sending email synchronously,
// for deployments running without Kafka.
type DirectNotifier struct {
	sender EmailSender
}

func NewDirectNotifier(sender EmailSender) *DirectNotifier {
	return &DirectNotifier{sender: sender}
}

func (d *DirectNotifier) NotifyAlertTriggered(ctx context.Context, alert *alerts.TriggeredAlert) error {
	notification := NewAlertNotification(
		alert.ID,
		alert.Email,
		alert.CryptoSymbol,
		string(alert.Direction),
		alert.ThresholdUSD,
		alert.CurrentPrice,
	)
	return d.sender.SendAlertEmail(ctx, notification)
}
