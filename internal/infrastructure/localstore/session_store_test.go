package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/clinivet/gateway/internal/core/domain"
)

func newSession(t *testing.T, token string) *domain.Session {
	t.Helper()
	sess, err := domain.NewSession(token, &domain.User{
		ID: "u1", FirstName: "Ana", Email: "ana@clinivet.com", Role: domain.RoleSecretary,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return sess
}

func TestSessionStore_PutGet(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "sessions.json"))
	sess := newSession(t, "tok-1")

	if err := store.Put(context.Background(), "sid-1", sess); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := store.Get(context.Background(), "sid-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Token != "tok-1" || got.User.Email != "ana@clinivet.com" {
		t.Fatalf("unexpected session: %+v", got)
	}
}

func TestSessionStore_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	store := New(path)
	if err := store.Put(ctx, "sid-1", newSession(t, "tok-1")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	// A fresh store over the same file simulates a process restart.
	reborn := New(path)
	got, err := reborn.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("Get after restart: %v", err)
	}
	if got.Token != "tok-1" || got.User.Role != domain.RoleSecretary {
		t.Fatalf("session did not round-trip: %+v", got)
	}
}

func TestSessionStore_DeleteClearsBothAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	ctx := context.Background()

	store := New(path)
	if err := store.Put(ctx, "sid-1", newSession(t, "tok-1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := store.Get(ctx, "sid-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := New(path).Get(ctx, "sid-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound after restart, got %v", err)
	}
}

func TestSessionStore_CorruptFileDegradesToLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("seed corrupt file: %v", err)
	}

	store := New(path)
	if _, err := store.Get(context.Background(), "sid-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("corrupt file should mean logged out, got %v", err)
	}
}

func TestSessionStore_DropsInvariantViolatingRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions.json")
	// Token without user: violates the both-or-neither invariant.
	seed := `{"sid-1":{"token":"orphan","user":null}}`
	if err := os.WriteFile(path, []byte(seed), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	store := New(path)
	if _, err := store.Get(context.Background(), "sid-1"); err != domain.ErrSessionNotFound {
		t.Fatalf("orphaned token should be discarded, got %v", err)
	}
}

func TestSessionStore_RejectsIncompleteSession(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "sessions.json"))
	err := store.Put(context.Background(), "sid-1", &domain.Session{Token: "only-token"})
	if err != domain.ErrIncompleteSession {
		t.Fatalf("expected ErrIncompleteSession, got %v", err)
	}
}

func TestSessionStore_MissingFileIsEmpty(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nope", "sessions.json"))
	if _, err := store.Get(context.Background(), "sid"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
