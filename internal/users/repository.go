package users

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cryptofolio/internal/wallets"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyUsed  = errors.New("email already in use")
	ErrNoFieldsToUpdate  = errors.New("no fields to update")
)

type Repository interface {
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uint) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateWithWallet(ctx context.Context, user *User, openingBalance float64) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (*User, error)
	Delete(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAll(ctx context.Context) ([]User, error) {
	var list []User
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *repository) GetByID(ctx context.Context, id uint) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateWithWallet inserts the user and opens their default wallet in one
// transaction; neither row is left behind if the other insert fails.
func (r *repository) CreateWithWallet(ctx context.Context, user *User, openingBalance float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		wallet := &wallets.Wallet{
			UserID:     user.ID,
			WalletName: user.FirstName + "_Wallet",
			BalanceUSD: openingBalance,
		}
		if err := tx.Create(wallet).Error; err != nil {
			return fmt.Errorf("failed to create default wallet: %w", err)
		}

		return nil
	})
}

func (r *repository) Update(ctx context.Context, id uint, updates map[string]interface{}) (*User, error) {
	result := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
