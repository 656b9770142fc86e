package notifications

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"cryptofolio/internal/shared/config"
)

// EmailSender delivers a triggered-alert notification to its recipient
type EmailSender interface {
	SendAlertEmail(ctx context.Context, notification *AlertNotification) error
}

type smtpSender struct {
	cfg config.EmailConfig
}

// NewSMTPSender returns a sender backed by net/smtp. With no SMTP host
// configured it logs and drops, so the pipeline works in development.
func NewSMTPSender(cfg config.EmailConfig) EmailSender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) SendAlertEmail(ctx context.Context, notification *AlertNotification) error {
	subject := fmt.Sprintf("Price alert: %s is %s $%.2f",
		notification.CryptoSymbol, notification.Direction, notification.ThresholdUSD)
	body := fmt.Sprintf(
		"Your price alert for %s has triggered.\r\n\r\nThreshold: $%.2f (%s)\r\nCurrent price: $%.2f\r\n",
		notification.CryptoSymbol, notification.ThresholdUSD, notification.Direction, notification.CurrentPrice)

	if s.cfg.SMTPHost == "" {
		log.Printf("SMTP not configured, dropping alert email for %s: %s",
			notification.RecipientEmail, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.FromEmail,
		"To: " + notification.RecipientEmail,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{notification.RecipientEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	return nil
}
