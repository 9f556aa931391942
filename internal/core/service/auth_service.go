package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clinivet/gateway/internal/api/metrics"
	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

const defaultSessionTTL = 12 * time.Hour

// AuthService implements the gateway login/logout flow: authenticate
// against the clinic backend, persist the session, mint the signed session
// cookie and resolve where the browser goes next. The backend bearer token
// is opaque to this layer; only the gateway's own cookie is a JWT.
type AuthService struct {
	api      ports.ClinicAPI
	sessions ports.SessionStore
	secret   string
	ttl      time.Duration
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(api ports.ClinicAPI, sessions ports.SessionStore, secret string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &AuthService{api: api, sessions: sessions, secret: secret, ttl: ttl}
}

func (s *AuthService) Login(ctx context.Context, email, password, remembered string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	token, user, err := s.api.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}

	sess, err := domain.NewSession(token, user)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	if err := s.sessions.Put(ctx, id, sess); err != nil {
		return nil, err
	}

	expires := time.Now().Add(s.ttl)
	cookie, err := s.mintCookie(id, expires)
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.LoginResult{
		User:       user,
		RedirectTo: resolveRedirect(remembered, user.Role),
		Cookie:     cookie,
		ExpiresAt:  expires,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

// mintCookie signs the session ID into the cookie value, so a tampered
// cookie fails verification before the store is ever consulted.
func (s *AuthService) mintCookie(sessionID string, expires time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": expires.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}

// resolveRedirect picks the post-login destination: the path remembered
// through the login redirect when it is a safe local path, otherwise the
// role's home route. The role-to-route mapping lives in exactly one place
// (domain.Role.HomeRoute); this layer only chooses between it and the
// remembered path.
func resolveRedirect(remembered string, role domain.Role) string {
	if safeLocalPath(remembered) {
		return remembered
	}
	return role.HomeRoute()
}

// safeLocalPath rejects anything that could bounce the browser off-site
// ("//evil.com") or back into the login loop.
func safeLocalPath(p string) bool {
	if p == "" || p == "/" || p == domain.LoginRoute {
		return false
	}
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
