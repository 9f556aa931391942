package middleware

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

// CookieName is the gateway's session cookie. Its value is a signed JWT
// carrying the session ID; the backend bearer token never reaches the
// browser.
const CookieName = "vetgate_session"

const (
	ctxSessionKey   = "session"
	ctxSessionIDKey = "session_id"
)

// Session verifies the session cookie and loads the session into the echo
// and request contexts. It never rejects a request: a missing, invalid or
// stale cookie simply means the navigation proceeds anonymously and the
// gate decides what that is allowed to see.
func Session(secret string, store ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				return next(c)
			}

			sid, _ := claims["sid"].(string)
			if sid == "" {
				return next(c)
			}

			// A verified cookie whose session is gone (logout elsewhere,
			// store expiry) degrades to anonymous.
			sess, err := store.Get(c.Request().Context(), sid)
			if err != nil {
				return next(c)
			}

			c.Set(ctxSessionKey, sess)
			c.Set(ctxSessionIDKey, sid)
			c.SetRequest(c.Request().WithContext(
				domain.WithSession(c.Request().Context(), sess)))

			return next(c)
		}
	}
}

// CurrentSession returns the session loaded by the Session middleware,
// or nil for an anonymous request.
func CurrentSession(c echo.Context) *domain.Session {
	sess, _ := c.Get(ctxSessionKey).(*domain.Session)
	return sess
}

// CurrentSessionID returns the verified session ID, or "".
func CurrentSessionID(c echo.Context) string {
	sid, _ := c.Get(ctxSessionIDKey).(string)
	return sid
}
