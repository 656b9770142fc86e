package cryptos

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrCryptoNotFound = errors.New("crypto not found")

type Repository interface {
	GetAll(ctx context.Context) ([]Crypto, error)
	GetTop(ctx context.Context, limit int) ([]Crypto, error)
	GetByID(ctx context.Context, id uint) (*Crypto, error)
	Create(ctx context.Context, crypto *Crypto) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*Crypto, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]Crypto, error) {
	var list []Crypto
	err := r.db.WithContext(ctx).Order("current_price_usd DESC").Find(&list).Error
	return list, err
}

func (r *repository) GetTop(ctx context.Context, limit int) ([]Crypto, error) {
	var list []Crypto
	err := r.db.WithContext(ctx).Order("current_price_usd DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Crypto, error) {
	var crypto Crypto
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&crypto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCryptoNotFound
		}
		return nil, err
	}
	return &crypto, nil
}

func (r *repository) Create(ctx context.Context, crypto *Crypto) error {
	return r.db.WithContext(ctx).Create(crypto).Error
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*Crypto, error) {
	result := r.db.WithContext(ctx).Model(&Crypto{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCryptoNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Crypto{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCryptoNotFound
	}
	return nil
}
