package ports

import (
	"context"

	"github.com/clinivet/gateway/internal/core/domain"
)

// SessionStore persists the token/user pair for each browser session so a
// gateway restart does not log anyone out. Implementations must return
// domain.ErrSessionNotFound for absent IDs and must treat corrupt records
// as absent rather than failing.
type SessionStore interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Put(ctx context.Context, id string, sess *domain.Session) error
	Delete(ctx context.Context, id string) error
}
