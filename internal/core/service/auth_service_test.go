package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinivet/gateway/internal/backend"
	"github.com/clinivet/gateway/internal/core/domain"
	"github.com/clinivet/gateway/internal/core/ports"
)

// stubClinicAPI implements only Login; the remaining ClinicAPI operations
// are inherited as nil method values from the embedded interface and are
// never called in these tests.
type stubClinicAPI struct {
	ports.ClinicAPI
	loginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubClinicAPI) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type memSessionStore struct {
	sessions map[string]*domain.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*domain.Session)}
}

func (m *memSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return s, nil
}

func (m *memSessionStore) Put(_ context.Context, id string, s *domain.Session) error {
	if !s.Valid() {
		return domain.ErrIncompleteSession
	}
	m.sessions[id] = s
	return nil
}

func (m *memSessionStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func vetUser() *domain.User {
	return &domain.User{ID: "u1", FirstName: "Laura", Email: "laura@clinivet.com", Role: domain.RoleVeterinarian}
}

func TestAuthService_Login_Success(t *testing.T) {
	store := newMemSessionStore()
	api := &stubClinicAPI{loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
		if email != "laura@clinivet.com" || password != "s3cret" {
			t.Fatalf("unexpected credentials: %s %s", email, password)
		}
		return "backend-token", vetUser(), nil
	}}
	svc := NewAuthService(api, store, "secret", time.Hour)

	res, err := svc.Login(context.Background(), "laura@clinivet.com", "s3cret", "")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.RedirectTo != "/veterinario/inicio" {
		t.Fatalf("expected home route, got %s", res.RedirectTo)
	}
	if res.Cookie == "" {
		t.Fatalf("expected a session cookie")
	}

	// The cookie is a signed JWT whose sid points at the stored session.
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Cookie, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("cookie did not verify: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("cookie missing sid claim")
	}

	sess, err := store.Get(context.Background(), sid)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if sess.Token != "backend-token" || sess.User.Email != "laura@clinivet.com" {
		t.Fatalf("stored session wrong: %+v", sess)
	}
}

func TestAuthService_Login_RememberedPathWins(t *testing.T) {
	api := &stubClinicAPI{loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
		return "tok", vetUser(), nil
	}}
	svc := NewAuthService(api, newMemSessionStore(), "secret", time.Hour)

	res, err := svc.Login(context.Background(), "a@b.com", "pw", "/veterinario/pacientes")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if res.RedirectTo != "/veterinario/pacientes" {
		t.Fatalf("remembered path ignored: %s", res.RedirectTo)
	}
}

func TestAuthService_Login_UnsafeRememberedPathIgnored(t *testing.T) {
	api := &stubClinicAPI{loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
		return "tok", vetUser(), nil
	}}
	svc := NewAuthService(api, newMemSessionStore(), "secret", time.Hour)

	for _, remembered := range []string{"//evil.com/x", "https://evil.com", "/", domain.LoginRoute, ""} {
		res, err := svc.Login(context.Background(), "a@b.com", "pw", remembered)
		if err != nil {
			t.Fatalf("Login(%q) returned error: %v", remembered, err)
		}
		if res.RedirectTo != "/veterinario/inicio" {
			t.Fatalf("remembered %q: expected home route, got %s", remembered, res.RedirectTo)
		}
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := NewAuthService(&stubClinicAPI{}, newMemSessionStore(), "secret", time.Hour)

	if _, err := svc.Login(context.Background(), "", "pw", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.com", "", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_BackendRejectionPropagates(t *testing.T) {
	rejection := &backend.RequestFailedError{Message: "Credenciales inválidas"}
	api := &stubClinicAPI{loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
		return "", nil, rejection
	}}
	store := newMemSessionStore()
	svc := NewAuthService(api, store, "secret", time.Hour)

	_, err := svc.Login(context.Background(), "a@b.com", "bad", "")
	if err != rejection {
		t.Fatalf("expected backend rejection unchanged, got %v", err)
	}
	if len(store.sessions) != 0 {
		t.Fatalf("no session may be stored on a failed login")
	}
}

func TestAuthService_Logout_ClearsSession(t *testing.T) {
	store := newMemSessionStore()
	sess, _ := domain.NewSession("tok", vetUser())
	_ = store.Put(context.Background(), "sid-1", sess)

	svc := NewAuthService(&stubClinicAPI{}, store, "secret", time.Hour)
	if err := svc.Logout(context.Background(), "sid-1"); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := store.Get(context.Background(), "sid-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("session still present after logout: %v", err)
	}
}

func TestAuthService_Logout_NoSessionIsNoop(t *testing.T) {
	svc := NewAuthService(&stubClinicAPI{}, newMemSessionStore(), "secret", time.Hour)
	if err := svc.Logout(context.Background(), ""); err != nil {
		t.Fatalf("Logout without session errored: %v", err)
	}
}
