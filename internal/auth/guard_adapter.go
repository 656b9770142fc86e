package auth

import (
	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/middleware"
)

// AccessGuard adapts the token service to the middleware's validator contract.
// This keeps the guard itself free of jwt and secret handling, and prevents an
// import cycle between middleware and auth.
func AccessGuard(s Service) gin.HandlerFunc {
	return middleware.JWTAuth(func(token string) (*middleware.AccessClaims, error) {
		claims, err := s.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.AccessClaims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}, nil
	})
}
