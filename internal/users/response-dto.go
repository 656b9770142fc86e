package users

import "time"

// user data in responses (without sensitive info)
type UserResponse struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	BalanceUSD float64   `json:"balance_usd"`
	JoinDate   time.Time `json:"join_date"`
}

func toResponse(u *User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Role:       string(u.Role),
		BalanceUSD: u.BalanceUSD,
		JoinDate:   u.JoinDate,
	}
}
