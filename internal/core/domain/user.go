package domain

import (
	"encoding/json"
	"strings"
)

// Role is the access level attached to a user account. The backend emits
// the Spanish wire values in uppercase; ParseRole is the single
// normalization point for anything read off the wire.
type Role string

const (
	RoleVeterinarian Role = "VETERINARIO"
	RoleSecretary    Role = "SECRETARIO"
	RoleAdmin        Role = "ADMIN"
	RoleClient       Role = "CLIENTE"
)

// LoginRoute is where every unauthenticated or unresolvable navigation ends up.
const LoginRoute = "/auth/login"

// roleAliases maps normalized spellings to canonical roles. English
// spellings show up in older backend fixtures, so both are accepted.
var roleAliases = map[string]Role{
	"VETERINARIO":   RoleVeterinarian,
	"VETERINARIAN":  RoleVeterinarian,
	"SECRETARIO":    RoleSecretary,
	"SECRETARIA":    RoleSecretary,
	"SECRETARY":     RoleSecretary,
	"ADMIN":         RoleAdmin,
	"ADMINISTRADOR": RoleAdmin,
	"CLIENTE":       RoleClient,
	"CLIENT":        RoleClient,
}

// ParseRole resolves a wire value to a canonical role, case-insensitively.
// The second return value is false for empty or unrecognized input.
func ParseRole(s string) (Role, bool) {
	r, ok := roleAliases[strings.ToUpper(strings.TrimSpace(s))]
	return r, ok
}

// Known reports whether r belongs to the closed role set.
func (r Role) Known() bool {
	switch r {
	case RoleVeterinarian, RoleSecretary, RoleAdmin, RoleClient:
		return true
	}
	return false
}

// HomeRoute returns the landing path a role defaults to after login or
// when denied a route. The mapping is total: unrecognized roles resolve
// to the login path.
func (r Role) HomeRoute() string {
	switch r {
	case RoleVeterinarian:
		return "/veterinario/inicio"
	case RoleSecretary:
		return "/secretario/inicio"
	case RoleAdmin:
		return "/admin/inicio"
	case RoleClient:
		return "/cliente/inicio"
	}
	return LoginRoute
}

// UnmarshalJSON normalizes the role at the decoding boundary so no other
// layer ever compares role spellings. Unrecognized values are kept
// uppercased; Known reports them as outside the closed set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if parsed, ok := ParseRole(raw); ok {
		*r = parsed
		return nil
	}
	*r = Role(strings.ToUpper(strings.TrimSpace(raw)))
	return nil
}

// User models the authenticated identity returned by the backend on login.
// Field tags follow the backend's camelCase JSON contract.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
}
