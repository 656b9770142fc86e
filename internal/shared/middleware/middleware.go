package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cryptofolio/internal/shared/utils/response"
)

// Context keys set by the access guard for downstream handlers
const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
	ContextUserRole  = "user_role"
)

// AccessClaims is the identity the guard exposes to handlers after a token
// has been verified.
type AccessClaims struct {
	UserID uint
	Email  string
	Role   string
}

// TokenValidator verifies an access token and returns its claims. The token
// service provides the implementation; the guard never touches secrets.
type TokenValidator func(token string) (*AccessClaims, error)

// JWTAuth is the single authentication gate for protected routes. A missing
// credential and a failed verification are both rejected with 401; the guard
// fails closed on any ambiguity.
func JWTAuth(validate TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "Authorization header is required", nil, nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil, nil)
			c.Abort()
			return
		}

		claims, err := validate(parts[1])
		if err != nil {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "invalid or expired token", nil, nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

// RequireRole checks if the authenticated user has the required role.
// Authentication failure is 401 (who are you?); authorization failure is 403
// (you are known but not permitted).
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(ContextUserRole)
		if !exists {
			response.RespondJSON(c, "error", http.StatusUnauthorized, "user role not found in context", nil, nil)
			c.Abort()
			return
		}

		if userRole.(string) != requiredRole {
			response.RespondJSON(c, "error", http.StatusForbidden, "Insufficient permissions", nil, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin requires the admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}

// UserIDFromContext returns the authenticated user's ID set by JWTAuth
func UserIDFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// RoleFromContext returns the authenticated user's role set by JWTAuth
func RoleFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(ContextUserRole)
	if !exists {
		return "", false
	}
	role, ok := val.(string)
	return role, ok
}
