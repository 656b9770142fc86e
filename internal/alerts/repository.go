package alerts

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrAlertNotFound = errors.New("alert not found")

// TriggeredAlert pairs an alert with the user and market data needed to build
// a notification.
type TriggeredAlert struct {
	Alert
	Email        string  `json:"email"`
	CryptoSymbol string  `json:"crypto_symbol"`
	CurrentPrice float64 `json:"current_price"`
}

type Repository interface {
	GetByUser(ctx context.Context, userID uint) ([]AlertView, error)
	GetByID(ctx context.Context, id uint) (*Alert, error)
	Create(ctx context.Context, alert *Alert) error
	Delete(ctx context.Context, id uint) error
	// FindTriggered returns active alerts whose threshold the current price
	// has crossed, up to limit rows.
	FindTriggered(ctx context.Context, limit int) ([]TriggeredAlert, error)
	MarkTriggered(ctx context.Context, ids []uint, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUser(ctx context.Context, userID uint) ([]AlertView, error) {
	var rows []AlertView
	err := r.db.WithContext(ctx).
		Table("alerts").
		Select(`alerts.id, cryptos.symbol AS crypto_symbol, alerts.direction,
alerts.threshold_usd, cryptos.current_price_usd AS current_price,
alerts.status, alerts.date_created, alerts.triggered_at`).
		Joins("JOIN cryptos ON cryptos.id = alerts.crypto_id").
		Where("alerts.user_id = ?", userID).
		Order("alerts.date_created DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Alert, error) {
	var alert Alert
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

func (r *repository) Create(ctx context.Context, alert *Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Alert{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}

func (r *repository) FindTriggered(ctx context.Context, limit int) ([]TriggeredAlert, error) {
	var rows []TriggeredAlert
	err := r.db.WithContext(ctx).
		Table("alerts").
		Select(`alerts.*, users.email, cryptos.symbol AS crypto_symbol,
cryptos.current_price_usd AS current_price`).
		Joins("JOIN cryptos ON cryptos.id = alerts.crypto_id").
		Joins("JOIN users ON users.id = alerts.user_id").
		Where("alerts.status = ?", StatusActive).
		Where(`(alerts.direction = ? AND cryptos.current_price_usd >= alerts.threshold_usd)
OR (alerts.direction = ? AND cryptos.current_price_usd <= alerts.threshold_usd)`,
			DirectionAbove, DirectionBelow).
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *repository) MarkTriggered(ctx context.Context, ids []uint, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&Alert{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":       StatusTriggered,
			"triggered_at": at,
		}).Error
}
