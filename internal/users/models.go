package users

import (
	"time"
)

// Role is the coarse authorization level attached to every account
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName  string    `json:"first_name" gorm:"not null;size:100"`
	LastName   string    `json:"last_name" gorm:"not null;size:100"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password   string    `json:"-" gorm:"not null"` // bcrypt hash, hidden in json
	Role       Role      `json:"role" gorm:"type:varchar(10);not null;default:'user'"`
	BalanceUSD float64   `json:"balance_usd" gorm:"not null;default:0"`
	JoinDate   time.Time `json:"join_date" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func IsValidRole(role string) bool {
	switch role {
	case string(RoleUser), string(RoleAdmin):
		return true
	default:
		return false
	}
}
