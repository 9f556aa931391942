// Package gate holds the route-authorization decision table. It is a pure
// function of (current session, requested route): nothing is retained
// between navigations, every decision reads the session fresh.
package gate

import "github.com/clinivet/gateway/internal/core/domain"

// Decision is the outcome of evaluating one navigation.
type Decision struct {
	// Allow means the target route may render. When false, Location is
	// the redirect target.
	Allow    bool
	Location string
	// Remember asks the transport layer to carry the originally requested
	// path through the login redirect for a post-login return.
	Remember bool
}

// Evaluate decides entry to a protected route.
//
//   - No session: redirect to login, remembering the requested path.
//   - Session role in the allowed set: render.
//   - Session role outside the set: redirect to override when given, else
//     to the role's home route (login when the role is unrecognized).
//
// An empty allowed set means the route renders for nobody, which is how
// the root path is evaluated.
func Evaluate(sess *domain.Session, allowed []domain.Role, override string) Decision {
	if !sess.Valid() {
		return Decision{Location: domain.LoginRoute, Remember: true}
	}

	role := sess.Role()
	for _, a := range allowed {
		if role == a {
			return Decision{Allow: true}
		}
	}

	if override != "" {
		return Decision{Location: override}
	}
	return Decision{Location: role.HomeRoute()}
}

// EvaluateLogin decides entry to the login route. An active session never
// sees the login screen again; it bounces straight to its home route. A
// session with an unrecognized role cannot be routed anywhere, so the
// login screen renders for it as if unauthenticated.
func EvaluateLogin(sess *domain.Session) Decision {
	if !sess.Valid() || !sess.Role().Known() {
		return Decision{Allow: true}
	}
	return Decision{Location: sess.Role().HomeRoute()}
}

// EvaluateRoot decides the root path: it always redirects, never renders.
func EvaluateRoot(sess *domain.Session) Decision {
	return Evaluate(sess, nil, "")
}
