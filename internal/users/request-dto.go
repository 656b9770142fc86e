package users

// admin user creation payload; a default wallet is opened with the same balance
type CreateUserRequest struct {
	FirstName string  `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string  `json:"last_name" validate:"required,min=2,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	Balance   float64 `json:"balance" validate:"omitempty,min=0"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// administrative update; all fields optional
type UpdateUserRequest struct {
	FirstName *string  `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName  *string  `json:"last_name" validate:"omitempty,min=2,max=100"`
	Email     *string  `json:"email" validate:"omitempty,email"`
	Balance   *float64 `json:"balance" validate:"omitempty,min=0"`
	Role      *string  `json:"role" validate:"omitempty,oneof=user admin"`
}
