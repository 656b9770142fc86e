package alerts

import (
	"context"
	"errors"
	"time"
)

var ErrNotAlertOwner = errors.New("alert does not belong to user")

// Notifier publishes a triggered alert to the notification pipeline. Defined
// here so the alerts package does not import notifications (avoids import
// cycles); the notifications package provides the adapter.
type Notifier interface {
	NotifyAlertTriggered(ctx context.Context, alert *TriggeredAlert) error
}

type Service interface {
	ListUserAlerts(ctx context.Context, userID uint) ([]AlertView, error)
	CreateAlert(ctx context.Context, userID uint, req *CreateAlertRequest) (*Alert, error)
	DeleteAlert(ctx context.Context, alertID, userID uint) error
	// EvaluateAlerts runs one evaluation pass and returns the number of
	// alerts triggered.
	EvaluateAlerts(ctx context.Context, batchSize int) (int, error)
}

type service struct {
	repo     Repository
	notifier Notifier
}

// NewService wires the repository with an optional notifier; with a nil
// notifier triggered alerts are still marked, just not published.
func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *service) ListUserAlerts(ctx context.Context, userID uint) ([]AlertView, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) CreateAlert(ctx context.Context, userID uint, req *CreateAlertRequest) (*Alert, error) {
	alert := &Alert{
		UserID:       userID,
		CryptoID:     req.CryptoID,
		Direction:    Direction(req.Direction),
		ThresholdUSD: req.ThresholdUSD,
		Status:       StatusActive,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (s *service) DeleteAlert(ctx context.Context, alertID, userID uint) error {
	alert, err := s.repo.GetByID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert.UserID != userID {
		return ErrNotAlertOwner
	}
	return s.repo.Delete(ctx, alertID)
}

func (s *service) EvaluateAlerts(ctx context.Context, batchSize int) (int, error) {
	triggered, err := s.repo.FindTriggered(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(triggered) == 0 {
		return 0, nil
	}

	now := time.Now()
	ids := make([]uint, 0, len(triggered))
	for i := range triggered {
		ids = append(ids, triggered[i].ID)
	}

	// Mark first so a crashed notifier cannot re-trigger the same alerts
	if err := s.repo.MarkTriggered(ctx, ids, now); err != nil {
		return 0, err
	}

	if s.notifier != nil {
		for i := range triggered {
			// best effort; a failed publish does not undo the trigger
			s.notifier.NotifyAlertTriggered(ctx, &triggered[i])
		}
	}

	return len(triggered), nil
}
