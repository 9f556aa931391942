package ports

import (
	"context"
	"time"

	"github.com/clinivet/gateway/internal/core/domain"
)

// LoginResult is what the transport layer needs to complete a login:
// the identity to show, the cookie to set, and where to send the browser.
type LoginResult struct {
	User       *domain.User
	RedirectTo string
	// Cookie is the signed session cookie value; ExpiresAt its expiry.
	Cookie    string
	ExpiresAt time.Time
}

// AuthService drives the login/logout flow against the clinic backend and
// the session store.
type AuthService interface {
	// Login authenticates against the backend, persists the session and
	// resolves the post-login destination. remembered is the path carried
	// through the login redirect; it wins over the role's home route when
	// it is a safe local path.
	Login(ctx context.Context, email, password, remembered string) (*LoginResult, error)
	// Logout clears the stored session: token and user go together.
	Logout(ctx context.Context, sessionID string) error
}
