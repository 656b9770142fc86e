package auth

import "time"

// authentication response returned by login and register
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Role         string       `json:"role"`
	ExpiresIn    int64        `json:"expires_in"`
}

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
