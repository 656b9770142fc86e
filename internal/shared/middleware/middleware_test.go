package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// the validator only accepts the literal token "good"
func testValidator(token string) (*AccessClaims, error) {
	if token == "good" {
		return &AccessClaims{UserID: 42, Email: "alice@example.com", Role: "user"}, nil
	}
	if token == "good-admin" {
		return &AccessClaims{UserID: 1, Email: "admin@example.com", Role: "admin"}, nil
	}
	return nil, errors.New("bad token")
}

func newTestRouter() *gin.Engine {
	engine := gin.New()

	protected := engine.Group("/protected", JWTAuth(testValidator))
	protected.GET("/me", func(c *gin.Context) {
		id, ok := UserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		role, _ := RoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id, "role": role})
	})

	admin := engine.Group("/admin", JWTAuth(testValidator), RequireAdmin())
	admin.GET("/users", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return engine
}

func doRequest(engine *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	w := doRequest(newTestRouter(), "/protected/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	engine := newTestRouter()

	for _, header := range []string{"good", "Basic good", "Bearer"} {
		w := doRequest(engine, "/protected/me", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	w := doRequest(newTestRouter(), "/protected/me", "Bearer forged")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	w := doRequest(newTestRouter(), "/protected/me", "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireAdminForbidsRegularUser(t *testing.T) {
	// authenticated but not authorized: 403, not 401
	w := doRequest(newTestRouter(), "/admin/users", "Bearer good")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	w := doRequest(newTestRouter(), "/admin/users", "Bearer good-admin")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminWithoutGuard(t *testing.T) {
	engine := gin.New()
	engine.GET("/bare", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// no guard ran, so no role is in context
	w := doRequest(engine, "/bare", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
