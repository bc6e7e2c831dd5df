package engine

import (
	"context"
	"errors"
	"testing"

	"daymark/internal/storage"
)

func TestRegisterNormalizesAndLogsIn(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)
	ctx := context.Background()

	identity, err := auth.Register(ctx, "  Jo@Example.COM ", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if identity != "jo@example.com" {
		t.Fatalf("identity = %q, want normalized email", identity)
	}

	current, err := auth.CurrentIdentity(ctx)
	if err != nil {
		t.Fatalf("current identity: %v", err)
	}
	if current != "jo@example.com" {
		t.Fatalf("current identity = %q, want %q", current, "jo@example.com")
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "jo@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := auth.Register(ctx, "JO@example.com", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterRejectsBlankFields(t *testing.T) {
	auth := NewAuth(newTestStore(t))
	ctx := context.Background()

	var verr ValidationError
	if _, err := auth.Register(ctx, "   ", "pw"); !errors.As(err, &verr) {
		t.Fatalf("blank email err = %v, want ValidationError", err)
	}
	if _, err := auth.Register(ctx, "jo@example.com", ""); !errors.As(err, &verr) {
		t.Fatalf("blank password err = %v, want ValidationError", err)
	}
}

func TestLoginVerifiesCredentials(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "jo@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := auth.Login(ctx, "jo@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := auth.CurrentIdentity(ctx); !errors.Is(err, ErrSessionMissing) {
		t.Fatalf("failed login must not begin a session")
	}

	identity, err := auth.Login(ctx, "Jo@Example.com", "hunter2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity != "jo@example.com" {
		t.Fatalf("identity = %q, want %q", identity, "jo@example.com")
	}
}

func TestLoginHasNoDefaultAccount(t *testing.T) {
	auth := NewAuth(newTestStore(t))
	ctx := context.Background()

	// An unregistered identity never logs in, regardless of credential.
	if _, err := auth.Login(ctx, "user@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := newTestStore(t)
	auth := NewAuth(store)
	ctx := context.Background()

	if _, err := auth.Register(ctx, "jo@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := auth.CurrentIdentity(ctx); !errors.Is(err, ErrSessionMissing) {
		t.Fatalf("err after logout = %v, want ErrSessionMissing", err)
	}
}

func TestCurrentIdentityWithoutSession(t *testing.T) {
	auth := NewAuth(newTestStore(t))
	if _, err := auth.CurrentIdentity(context.Background()); !errors.Is(err, ErrSessionMissing) {
		t.Fatalf("err = %v, want ErrSessionMissing", err)
	}
}

func TestCorruptAccountListRecovered(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, storage.KeyRegisteredUsers, []byte("not json")); err != nil {
		t.Fatalf("put: %v", err)
	}

	auth := NewAuth(store)
	if _, err := auth.Register(ctx, "jo@example.com", "hunter2"); err != nil {
		t.Fatalf("register over corrupt list: %v", err)
	}
}
