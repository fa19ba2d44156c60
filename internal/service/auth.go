package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/kwakyosong/platform-ui/internal/domain/auth"
	"github.com/kwakyosong/platform-ui/internal/ports"
)

// ErrSessionExpired is returned by GetSession when the stored session has
// passed its expiry.
var ErrSessionExpired = errors.New("session expired")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Roles    ports.RoleMapper

	// SessionDuration bounds sessions created by the direct Login path.
	// Defaults to 8h when zero.
	SessionDuration time.Duration
}

// AuthService orchestrates authentication by coordinating the provider,
// role mapping, and session persistence. It exposes two entry points: the
// direct Login path, which accepts any submitted credentials without
// verification, and the Begin/CompleteLogin pair for the OAuth flow.
type AuthService struct {
	provider        ports.AuthProvider
	sessions        ports.SessionStore
	roles           ports.RoleMapper
	sessionDuration time.Duration
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	dur := opts.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}
	return &AuthService{
		provider:        opts.Provider,
		sessions:        opts.Sessions,
		roles:           opts.Roles,
		sessionDuration: dur,
	}
}

// LoginInput carries the login form fields. Password is accepted but never
// checked; verification is the identity provider's job in a real deployment
// and this path exists so the app is usable without one.
type LoginInput struct {
	Email    string
	Password string
	Role     string
	Company  string
}

// Login creates a session for the submitted identity. It always succeeds:
// a blank email falls back to the dev placeholder identity and unknown role
// values degrade to the plain user role rather than failing. The only error
// path is session persistence.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*domainauth.Session, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = "dev@example.com"
	}

	role := domainauth.ParseRole(input.Role)
	name, _, _ := strings.Cut(email, "@")

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      role,
		ExpiresAt: time.Now().Add(s.sessionDuration),
	}
	if role == domainauth.RoleCompanyAdmin {
		session.Company = strings.TrimSpace(input.Company)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	return &session, nil
}

// BeginLoginResult contains the result of beginning a provider login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates the provider flow and returns the auth URL with
// state and nonce for the caller to stash in cookies.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{AuthURL: authURL, State: state, Nonce: nonce}, nil
}

// CompleteLoginInput groups parameters for completing a provider login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLogin exchanges the code for an identity, maps provider groups
// to a role, and persists a session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*domainauth.Session, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	session := domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		Email:     identity.Email,
		Name:      identity.Name,
		Role:      s.roles.Map(identity.Groups),
		ExpiresAt: identity.ExpiresAt,
	}

	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &session, nil
}

// GetSession retrieves a session by ID, evicting it if expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if session.Expired(time.Now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(ErrSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Logout removes a session. Logging out an unknown or empty session ID is
// a no-op, so repeated logouts are safe.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates a URL-safe random session ID.
func generateSessionID() string {
	return uuid.NewString()
}
