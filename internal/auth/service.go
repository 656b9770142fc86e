package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"cryptofolio/internal/shared/config"
	"cryptofolio/internal/users"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("unknown or revoked refresh token")
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error
	ValidateAccessToken(tokenString string) (*JWTClaims, error)
}

type service struct {
	repo       Repository
	tokenStore TokenStore
	config     *config.Config
}

func NewService(repo Repository, tokenStore TokenStore, cfg *config.Config) Service {
	return &service{
		repo:       repo,
		tokenStore: tokenStore,
		config:     cfg,
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      users.RoleUser,
	}

	if err := s.repo.CreateUserWithWallet(ctx, user); err != nil {
		return nil, err
	}

	tokenPair, err := s.generateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user, tokenPair), nil
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrUserNotFound {
			// unknown email and wrong password are indistinguishable to the
			// caller, so accounts cannot be enumerated
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokenPair, err := s.generateTokenPair(ctx, user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user, tokenPair), nil
}

// RefreshToken mints a new access token from a still-valid refresh token.
// The store membership check runs before signature verification: a token that
// was revoked server-side is rejected even though it still verifies.
func (s *service) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	known, err := s.tokenStore.Exists(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrTokenRevoked
	}

	claims, err := s.verifyToken(refreshToken, s.config.JWT.RefreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeRefresh {
		return nil, ErrInvalidToken
	}

	// Verify user still exists
	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	accessToken, err := s.issueToken(user.ID, user.Email, string(user.Role), TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	// The refresh token itself is not rotated; it stays valid until expiry
	// or explicit revocation.
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessExpiresIn.Seconds()),
	}, nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return s.tokenStore.Revoke(ctx, refreshToken)
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req *ChangePasswordRequest) error {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateUserPassword(ctx, userID, string(hashedPassword)); err != nil {
		return err
	}

	// Existing sessions die with their refresh tokens
	return s.tokenStore.RevokeAllForUser(ctx, userID)
}

func (s *service) ValidateAccessToken(tokenString string) (*JWTClaims, error) {
	claims, err := s.verifyToken(tokenString, s.config.JWT.AccessSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != TokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *service) issueToken(userID uint, email, role, tokenType string) (string, error) {
	now := time.Now()

	secret := s.config.JWT.AccessSecret
	ttl := s.config.JWT.AccessExpiresIn
	if tokenType == TokenTypeRefresh {
		secret = s.config.JWT.RefreshSecret
		ttl = s.config.JWT.RefreshExpiresIn
	}

	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Issuer:    "cryptofolio",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *service) generateTokenPair(ctx context.Context, userID uint, email, role string) (*TokenPair, error) {
	accessToken, err := s.issueToken(userID, email, role, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issueToken(userID, email, role, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	if err := s.tokenStore.Save(ctx, refreshToken, userID, s.config.JWT.RefreshExpiresIn); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.config.JWT.AccessExpiresIn.Seconds()),
	}, nil
}

func (s *service) verifyToken(tokenString, secret string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}

func (s *service) buildAuthResponse(user *users.User, tokenPair *TokenPair) *AuthResponse {
	return &AuthResponse{
		User: UserResponse{
			ID:         user.ID,
			FirstName:  user.FirstName,
			LastName:   user.LastName,
			Email:      user.Email,
			Role:       string(user.Role),
			BalanceUSD: user.BalanceUSD,
			JoinDate:   user.JoinDate,
		},
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Role:         string(user.Role),
		ExpiresIn:    tokenPair.ExpiresIn,
	}
}
