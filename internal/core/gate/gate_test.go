package gate

import (
	"testing"

	"github.com/clinivet/gateway/internal/core/domain"
)

func sessionWithRole(role domain.Role) *domain.Session {
	return &domain.Session{
		Token: "tok",
		User:  &domain.User{ID: "u1", Role: role},
	}
}

func TestEvaluate_UnauthenticatedRedirectsToLogin(t *testing.T) {
	d := Evaluate(nil, []domain.Role{domain.RoleVeterinarian}, "")
	if d.Allow {
		t.Fatalf("unauthenticated navigation was allowed")
	}
	if d.Location != domain.LoginRoute {
		t.Fatalf("expected redirect to %s, got %s", domain.LoginRoute, d.Location)
	}
	if !d.Remember {
		t.Fatalf("requested path should be remembered for post-login return")
	}
}

func TestEvaluate_AllowedRoleRenders(t *testing.T) {
	d := Evaluate(sessionWithRole(domain.RoleVeterinarian),
		[]domain.Role{domain.RoleVeterinarian, domain.RoleAdmin}, "")
	if !d.Allow {
		t.Fatalf("allowed role was denied: %+v", d)
	}
}

func TestEvaluate_DeniedRoleRedirectsHome(t *testing.T) {
	// SECRETARIO requesting an admin-only route lands on the secretary home.
	d := Evaluate(sessionWithRole(domain.RoleSecretary),
		[]domain.Role{domain.RoleAdmin}, "")
	if d.Allow {
		t.Fatalf("denied role was allowed")
	}
	if d.Location != "/secretario/inicio" {
		t.Fatalf("expected /secretario/inicio, got %s", d.Location)
	}
	if d.Remember {
		t.Fatalf("denied-by-role redirect must not remember the path")
	}
}

func TestEvaluate_DeniedRoleHonorsOverride(t *testing.T) {
	d := Evaluate(sessionWithRole(domain.RoleClient),
		[]domain.Role{domain.RoleAdmin}, "/acceso-denegado")
	if d.Allow || d.Location != "/acceso-denegado" {
		t.Fatalf("override redirect not honored: %+v", d)
	}
}

func TestEvaluate_UnknownRoleRedirectsToLogin(t *testing.T) {
	d := Evaluate(sessionWithRole("GROOMER"), []domain.Role{domain.RoleAdmin}, "")
	if d.Allow || d.Location != domain.LoginRoute {
		t.Fatalf("unknown role should bounce to login: %+v", d)
	}
}

func TestEvaluate_DecisionTable(t *testing.T) {
	// Every known role against every protected area: in-set renders,
	// out-of-set redirects to that role's own home, never the target's.
	areas := map[domain.Role][]domain.Role{
		domain.RoleVeterinarian: {domain.RoleVeterinarian},
		domain.RoleSecretary:    {domain.RoleSecretary},
		domain.RoleAdmin:        {domain.RoleAdmin},
		domain.RoleClient:       {domain.RoleClient},
	}
	roles := []domain.Role{
		domain.RoleVeterinarian, domain.RoleSecretary,
		domain.RoleAdmin, domain.RoleClient,
	}

	for area, allowed := range areas {
		for _, role := range roles {
			d := Evaluate(sessionWithRole(role), allowed, "")
			if role == area {
				if !d.Allow {
					t.Fatalf("role %s denied its own area", role)
				}
				continue
			}
			if d.Allow {
				t.Fatalf("role %s allowed into %s area", role, area)
			}
			if d.Location != role.HomeRoute() {
				t.Fatalf("role %s denied %s area: redirected to %s, want %s",
					role, area, d.Location, role.HomeRoute())
			}
		}
	}
}

func TestEvaluateLogin_AuthenticatedBouncesHome(t *testing.T) {
	for _, role := range []domain.Role{
		domain.RoleVeterinarian, domain.RoleSecretary,
		domain.RoleAdmin, domain.RoleClient,
	} {
		d := EvaluateLogin(sessionWithRole(role))
		if d.Allow {
			t.Fatalf("role %s was allowed to re-enter the login screen", role)
		}
		if d.Location != role.HomeRoute() {
			t.Fatalf("role %s: expected %s, got %s", role, role.HomeRoute(), d.Location)
		}
	}
}

func TestEvaluateLogin_UnauthenticatedRenders(t *testing.T) {
	if d := EvaluateLogin(nil); !d.Allow {
		t.Fatalf("login screen should render without a session: %+v", d)
	}
	// An unrecognized role has no home to bounce to; rendering login avoids
	// a redirect loop.
	if d := EvaluateLogin(sessionWithRole("GROOMER")); !d.Allow {
		t.Fatalf("login screen should render for an unroutable role: %+v", d)
	}
}

func TestEvaluateRoot_AlwaysRedirects(t *testing.T) {
	if d := EvaluateRoot(nil); d.Allow || d.Location != domain.LoginRoute {
		t.Fatalf("root without session: %+v", d)
	}
	for _, role := range []domain.Role{
		domain.RoleVeterinarian, domain.RoleSecretary,
		domain.RoleAdmin, domain.RoleClient,
	} {
		d := EvaluateRoot(sessionWithRole(role))
		if d.Allow {
			t.Fatalf("root rendered content for role %s", role)
		}
		if d.Location != role.HomeRoute() {
			t.Fatalf("root for %s: got %s, want %s", role, d.Location, role.HomeRoute())
		}
	}
}
