package mockauth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

func TestBeginReturnsLocalCallback(t *testing.T) {
	p := NewProvider(Config{})

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=mock&state="))
	assert.Len(t, state, 24)
	assert.Len(t, nonce, 24)
	assert.NotEqual(t, state, nonce)
}

func TestExchangeNeverFails(t *testing.T) {
	p := NewProvider(Config{SessionDuration: time.Hour})

	tests := []struct {
		name      string
		code      string
		wantEmail string
		wantGroup string
	}{
		{"email and role", "admin@example.com:super_admin", "admin@example.com", "super_admin"},
		{"email only", "someone@example.com", "someone@example.com", "user"},
		{"unknown role degrades to user", "x@example.com:root", "x@example.com", "user"},
		{"empty code", "", "dev@example.com", "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: tt.code})
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, id.Email)
			assert.Equal(t, []string{tt.wantGroup}, id.Groups)
			assert.NotEmpty(t, id.UserID)
			assert.True(t, id.ExpiresAt.After(time.Now()))
		})
	}
}

func TestIdentityNameFromEmail(t *testing.T) {
	p := NewProvider(Config{})
	id := p.Identity("jae.kim@example.com", string(domainauth.RoleCompanyAdmin))
	assert.Equal(t, "jae.kim", id.Name)
	assert.Equal(t, []string{"company_admin"}, id.Groups)
}
