package mockauth

// Package mockauth provides an AuthProvider that accepts any login.
// Credentials are never verified; the submitted email and role become the
// identity. This is the default auth mode for local development and demos.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

// Config controls the mock auth provider behavior.
type Config struct {
	SessionDuration time.Duration // default 8h when zero
}

// Provider implements ports.AuthProvider without an identity provider.
// Begin short-circuits the OAuth flow by pointing back at our own callback;
// Exchange synthesizes an identity from whatever was submitted.
type Provider struct {
	sessionDuration time.Duration
}

// NewProvider constructs a mock auth provider from Config.
func NewProvider(cfg Config) *Provider {
	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &Provider{sessionDuration: dur}
}

// Begin returns a local callback URL and cryptographically secure state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	authURL := "/auth/callback?code=mock&state=" + state
	return authURL, state, nonce, nil
}

// Exchange treats the code as "email:role" and returns a matching identity.
// Anything unparseable still logs in as a plain user; login never fails here.
func (p *Provider) Exchange(_ context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	email, role := splitCode(in.Code)
	return p.Identity(email, role), nil
}

// Identity synthesizes an identity for the given email and role string.
func (p *Provider) Identity(email, role string) domainauth.Identity {
	if email == "" {
		email = "dev@example.com"
	}
	return domainauth.Identity{
		UserID:    uuid.NewString(),
		Email:     email,
		Name:      nameFromEmail(email),
		Groups:    []string{string(domainauth.ParseRole(role))},
		ExpiresAt: time.Now().Add(p.sessionDuration),
	}
}

func splitCode(code string) (email, role string) {
	email, role, found := strings.Cut(code, ":")
	if !found {
		return code, ""
	}
	return email, role
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < n {
		s += "0"
	}
	return s[:n], nil
}
