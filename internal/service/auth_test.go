package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	mockauth "github.com/kwakyosong/platform-ui/internal/mocks/auth"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

func newTestAuthService(store *mockauth.MemorySessionStore) *AuthService {
	return NewAuthService(AuthServiceOptions{
		Provider: mockauth.NewMockAuthProvider(),
		Sessions: store,
		Roles:    mockauth.StaticRoleMapper{SuperAdminGroup: "admins"},
	})
}

func TestLoginAlwaysSucceeds(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemorySessionStore()
	svc := newTestAuthService(store)

	tests := []struct {
		name     string
		input    LoginInput
		wantRole domainauth.Role
	}{
		{"plain user", LoginInput{Email: "user@example.com", Password: "anything"}, domainauth.RoleUser},
		{"super admin", LoginInput{Email: "root@example.com", Role: "super_admin"}, domainauth.RoleSuperAdmin},
		{"company admin", LoginInput{Email: "biz@example.com", Role: "company_admin", Company: "Acme"}, domainauth.RoleCompanyAdmin},
		{"unknown role degrades to user", LoginInput{Email: "odd@example.com", Role: "root"}, domainauth.RoleUser},
		{"no password at all", LoginInput{Email: "nopass@example.com"}, domainauth.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := svc.Login(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, sess.Role)
			assert.NotEmpty(t, sess.ID)
			assert.NotEmpty(t, sess.UserID)
			assert.True(t, sess.ExpiresAt.After(time.Now()))

			// The session must be retrievable right away.
			got, err := svc.GetSession(ctx, sess.ID)
			require.NoError(t, err)
			assert.Equal(t, sess.ID, got.ID)
		})
	}
}

func TestLoginCompanyOnlyForCompanyAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	sess, err := svc.Login(ctx, LoginInput{Email: "biz@example.com", Role: "company_admin", Company: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", sess.Company)

	sess, err = svc.Login(ctx, LoginInput{Email: "user@example.com", Role: "user", Company: "Acme"})
	require.NoError(t, err)
	assert.Empty(t, sess.Company)
}

func TestLoginDerivesNameFromEmail(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	sess, err := svc.Login(context.Background(), LoginInput{Email: "jae.kim@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "jae.kim", sess.Name)
}

func TestLoginBlankEmailUsesPlaceholder(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	sess, err := svc.Login(context.Background(), LoginInput{Email: "   "})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", sess.Email)
	assert.Equal(t, "dev", sess.Name)
	assert.Equal(t, domainauth.RoleUser, sess.Role)
}

func TestLoginSaveFailure(t *testing.T) {
	store := mockauth.NewMemorySessionStore()
	store.SaveErr = errors.New("store down")
	svc := newTestAuthService(store)

	_, err := svc.Login(context.Background(), LoginInput{Email: "user@example.com"})
	assert.ErrorContains(t, err, "save session")
}

func TestBeginLogin(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	result, err := svc.BeginLogin(context.Background(), "https://app/auth/callback")
	require.NoError(t, err)
	assert.Equal(t, "https://mock-idp/auth", result.AuthURL)
	assert.NotEmpty(t, result.State)
	assert.NotEmpty(t, result.Nonce)

	_, err = svc.BeginLogin(context.Background(), "")
	assert.Error(t, err)
}

func TestCompleteLoginMapsRole(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemorySessionStore()
	provider := mockauth.NewMockAuthProvider()
	provider.DefaultUser.Groups = []string{"admins"}

	svc := NewAuthService(AuthServiceOptions{
		Provider: provider,
		Sessions: store,
		Roles:    mockauth.StaticRoleMapper{SuperAdminGroup: "admins"},
	})

	sess, err := svc.CompleteLogin(ctx, CompleteLoginInput{Code: "code", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, domainauth.RoleSuperAdmin, sess.Role)
	assert.Equal(t, "mock.user@example.com", sess.Email)
	assert.Equal(t, 1, store.Len())
}

func TestCompleteLoginValidation(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	tests := []struct {
		name  string
		input CompleteLoginInput
	}{
		{"missing code", CompleteLoginInput{State: "s", Nonce: "n"}},
		{"missing state", CompleteLoginInput{Code: "c", Nonce: "n"}},
		{"missing nonce", CompleteLoginInput{Code: "c", State: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteLogin(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}
}

func TestGetSessionExpiredEvicts(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemorySessionStore()
	svc := newTestAuthService(store)

	require.NoError(t, store.Save(ctx, domainauth.Session{
		ID:        "old",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(-time.Minute),
	}))

	_, err := svc.GetSession(ctx, "old")
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, 0, store.Len())
}

func TestGetSessionUnknown(t *testing.T) {
	svc := newTestAuthService(mockauth.NewMemorySessionStore())

	_, err := svc.GetSession(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLogoutIdempotent(t *testing.T) {
	ctx := context.Background()
	store := mockauth.NewMemorySessionStore()
	svc := newTestAuthService(store)

	sess, err := svc.Login(ctx, LoginInput{Email: "user@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.ID))
	require.NoError(t, svc.Logout(ctx, sess.ID))
	require.NoError(t, svc.Logout(ctx, ""))

	_, err = svc.GetSession(ctx, sess.ID)
	assert.Error(t, err)
}
