package middleware

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/clinivet/gateway/internal/api/metrics"
	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/gate"
	"github.com/clinivet/gateway/internal/infrastructure/audit"
)

// Auditor records navigation decisions off the request path.
type Auditor interface {
	Navigation(e audit.Entry)
}

// Gate adapts the pure routing-gate core to echo. It is the sole arbiter
// of route reachability: handlers behind it never re-check authorization.
type Gate struct {
	audit Auditor
}

func NewGate(a Auditor) *Gate {
	return &Gate{audit: a}
}

// Protect admits only the given roles; everyone else is redirected per the
// gate's decision table. The allowed set must be non-empty for a real
// route. An empty set renders for nobody.
func (g *Gate) Protect(allowed ...domain.Role) echo.MiddlewareFunc {
	return g.ProtectWithRedirect("", allowed...)
}

// ProtectWithRedirect is Protect with an explicit redirect target for
// authenticated-but-disallowed roles, overriding their home route.
func (g *Gate) ProtectWithRedirect(override string, allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := gate.Evaluate(CurrentSession(c), allowed, override)
			g.observe(c, d, override)
			if d.Allow {
				return next(c)
			}
			return c.Redirect(http.StatusFound, redirectTarget(d, c.Request().URL.Path))
		}
	}
}

// Login guards the login route: an active session bounces straight to its
// home route instead of seeing the login screen again.
func (g *Gate) Login() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := gate.EvaluateLogin(CurrentSession(c))
			g.observe(c, d, "")
			if d.Allow {
				return next(c)
			}
			return c.Redirect(http.StatusFound, d.Location)
		}
	}
}

// Root handles the root path: it always redirects, never renders.
func (g *Gate) Root(c echo.Context) error {
	d := gate.EvaluateRoot(CurrentSession(c))
	g.observe(c, d, "")
	return c.Redirect(http.StatusFound, redirectTarget(d, ""))
}

// redirectTarget appends the originally requested path to the login
// redirect so a successful login can return to it.
func redirectTarget(d gate.Decision, requested string) string {
	if d.Remember && requested != "" && requested != "/" {
		return d.Location + "?redirect=" + url.QueryEscape(requested)
	}
	return d.Location
}

func (g *Gate) observe(c echo.Context, d gate.Decision, override string) {
	sess := CurrentSession(c)

	role := "anonymous"
	if sess.Valid() {
		role = string(sess.Role())
	}

	decision := "allow"
	location := ""
	switch {
	case d.Allow:
	case override != "" && d.Location == override:
		decision = "redirect_override"
		location = d.Location
	case d.Location == domain.LoginRoute:
		decision = "redirect_login"
		location = d.Location
	default:
		decision = "redirect_home"
		location = d.Location
	}
	metrics.NavigationsTotal.WithLabelValues(decision, role).Inc()

	if g.audit != nil {
		auditDecision := "allow"
		if !d.Allow {
			auditDecision = "redirect"
		}
		g.audit.Navigation(audit.Entry{
			SessionID: CurrentSessionID(c),
			Role:      role,
			Path:      c.Request().URL.Path,
			Decision:  auditDecision,
			Location:  location,
		})
	}
}
