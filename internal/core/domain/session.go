package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncompleteSession  = errors.New("session requires both token and user")
	ErrSessionNotFound    = errors.New("session not found")
)

// Session pairs the backend bearer token with the authenticated identity.
// Both fields are populated together on login and cleared together on
// logout; NewSession is the only constructor, so a half-built session
// cannot exist.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func NewSession(token string, user *User) (*Session, error) {
	if token == "" || user == nil {
		return nil, ErrIncompleteSession
	}
	return &Session{Token: token, User: user}, nil
}

// Role returns the session's role, or the empty role for a nil session.
func (s *Session) Role() Role {
	if s == nil || s.User == nil {
		return ""
	}
	return s.User.Role
}

// Valid reports whether the session satisfies the both-or-neither invariant.
// Persistence adapters use it to discard corrupt records on rehydration.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

type sessionCtxKey struct{}

// WithSession attaches the session to a context. The backend client reads
// it back at send time, so a request keeps the token it captured even if
// the store is mutated while the call is in flight.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFromContext returns the session carried by ctx, or nil.
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*Session)
	return s
}
