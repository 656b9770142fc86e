package users

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	ListUsers(ctx context.Context) ([]UserResponse, error)
	GetUser(ctx context.Context, id uint) (*UserResponse, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error)
	UpdateUser(ctx context.Context, id uint, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListUsers(ctx context.Context) ([]UserResponse, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(list))
	for i := range list {
		responses = append(responses, toResponse(&list[i]))
	}
	return responses, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(user)
	return &resp, nil
}

func (s *service) CreateUser(ctx context.Context, req *CreateUserRequest) (*UserResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyUsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if !IsValidRole(role) {
		role = string(RoleUser)
	}

	user := &User{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       Role(role),
		BalanceUSD: req.Balance,
	}

	if err := s.repo.CreateWithWallet(ctx, user, req.Balance); err != nil {
		return nil, err
	}

	resp := toResponse(user)
	return &resp, nil
}

func (s *service) UpdateUser(ctx context.Context, id uint, req *UpdateUserRequest) (*UserResponse, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		exists, err := s.repo.EmailExists(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailAlreadyUsed
		}
		updates["email"] = *req.Email
	}
	if req.Balance != nil {
		updates["balance_usd"] = *req.Balance
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}

	if len(updates) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	user, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	resp := toResponse(user)
	return &resp, nil
}

func (s *service) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
