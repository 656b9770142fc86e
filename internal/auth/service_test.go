package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptofolio/internal/shared/config"
	"cryptofolio/internal/users"
)

type fakeRepository struct {
	mu     sync.Mutex
	byID   map[uint]*users.User
	nextID uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[uint]*users.User), nextID: 1}
}

func (f *fakeRepository) CreateUserWithWallet(ctx context.Context, user *users.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.byID[user.ID] = &stored
	return nil
}

func (f *fakeRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (f *fakeRepository) GetUserByID(ctx context.Context, id uint) (*users.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (f *fakeRepository) UpdateUserPassword(ctx context.Context, userID uint, hashedPassword string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.Password = hashedPassword
	return nil
}

func (f *fakeRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:     "access-secret-for-tests",
			RefreshSecret:    "refresh-secret-for-tests",
			AccessExpiresIn:  time.Hour,
			RefreshExpiresIn: 7 * 24 * time.Hour,
		},
	}
}

func newTestService(t *testing.T) (Service, *fakeRepository) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	repo := newFakeRepository()
	return NewService(repo, NewTokenStore(client), testConfig()), repo
}

func registerTestUser(t *testing.T, svc Service) *AuthResponse {
	t.Helper()

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Alice",
		LastName:  "Trader",
		Email:     "alice@example.com",
		Password:  "secret123",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	svc, repo := newTestService(t)

	resp := registerTestUser(t, svc)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "user", resp.Role)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	// password is stored hashed, never verbatim
	stored, err := repo.GetUserByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), &RegisterRequest{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "alice@example.com",
		Password:  "different1",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	registerTestUser(t, svc)

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "alice@example.com", resp.User.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	registerTestUser(t, svc)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownEmailActsLikeWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	claims, err := svc.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestValidateAccessTokenRejectsRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	// a refresh token is signed with the other secret, so it fails
	// verification before the type check even runs
	_, err := svc.ValidateAccessToken(resp.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ValidateAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	otherCfg := testConfig()
	otherCfg.JWT.AccessSecret = "a-completely-different-secret"
	other := NewService(newFakeRepository(), NewTokenStore(client), otherCfg)

	_, err := other.ValidateAccessToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := testConfig()
	cfg.JWT.AccessExpiresIn = -time.Minute
	svc := NewService(newFakeRepository(), NewTokenStore(client), cfg)

	resp := registerTestUser(t, svc)

	_, err := svc.ValidateAccessToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	pair, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)

	// new access token is valid, refresh token is returned unrotated
	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, resp.RefreshToken, pair.RefreshToken)
}

func TestRefreshTokenUnknown(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.RefreshToken(context.Background(), "never-issued-token")
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	// access tokens are never saved in the store, so membership fails first
	_, err := svc.RefreshToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	require.NoError(t, svc.Logout(context.Background(), resp.RefreshToken))

	_, err := svc.RefreshToken(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// logout is idempotent
	assert.NoError(t, svc.Logout(context.Background(), resp.RefreshToken))
}

func TestChangePassword(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "secret123",
		NewPassword:     "newsecret456",
	})
	require.NoError(t, err)

	// old sessions die with their refresh tokens
	_, err = svc.RefreshToken(context.Background(), resp.RefreshToken)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "alice@example.com",
		Password: "newsecret456",
	})
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	svc, _ := newTestService(t)
	resp := registerTestUser(t, svc)

	err := svc.ChangePassword(context.Background(), resp.User.ID, &ChangePasswordRequest{
		CurrentPassword: "wrong-password",
		NewPassword:     "newsecret456",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
