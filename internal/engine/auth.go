package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"daymark/internal/storage"
)

// Auth manages the account list and the stored session flag. Credentials are
// compared in plaintext: the account layer only namespaces data per user.
type Auth struct {
	store *storage.Store
}

func NewAuth(store *storage.Store) *Auth {
	return &Auth{store: store}
}

// NormalizeIdentity canonicalizes an email for use as an account key and
// storage namespace suffix.
func NormalizeIdentity(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register adds a new account and logs it in, mirroring the auto-login after
// sign-up. Duplicate identities are rejected with ErrEmailTaken.
func (a *Auth) Register(ctx context.Context, email, password string) (string, error) {
	identity := NormalizeIdentity(email)
	if identity == "" {
		return "", ValidationError{Field: "email"}
	}
	if password == "" {
		return "", ValidationError{Field: "password"}
	}

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return "", err
	}
	for _, acct := range accounts {
		if acct.Email == identity {
			return "", ErrEmailTaken
		}
	}

	accounts = append(accounts, Account{Email: identity, Password: password})
	if err := a.saveAccounts(ctx, accounts); err != nil {
		return "", err
	}
	if err := a.beginSession(ctx, identity); err != nil {
		return "", err
	}
	return identity, nil
}

// Login verifies credentials against the registered accounts and begins a
// session. There is no fallback account: only registered identities log in.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	identity := NormalizeIdentity(email)

	accounts, err := a.loadAccounts(ctx)
	if err != nil {
		return "", err
	}
	for _, acct := range accounts {
		if acct.Email == identity && acct.Password == password {
			if err := a.beginSession(ctx, identity); err != nil {
				return "", err
			}
			return identity, nil
		}
	}
	return "", ErrInvalidCredentials
}

// Logout clears the session flag and stored identity. Per-user collections
// are left untouched.
func (a *Auth) Logout(ctx context.Context) error {
	if err := a.store.Delete(ctx, storage.KeyLoggedIn); err != nil {
		return err
	}
	return a.store.Delete(ctx, storage.KeyUserEmail)
}

// CurrentIdentity returns the stored identity when the logged-in flag is set,
// else ErrSessionMissing. Callers requiring a session fail fast on the error
// instead of proceeding with partial state.
func (a *Auth) CurrentIdentity(ctx context.Context) (string, error) {
	flag, ok, err := a.store.Get(ctx, storage.KeyLoggedIn)
	if err != nil {
		return "", err
	}
	if !ok || string(flag) != "true" {
		return "", ErrSessionMissing
	}

	identity, ok, err := a.store.Get(ctx, storage.KeyUserEmail)
	if err != nil {
		return "", err
	}
	if !ok || len(identity) == 0 {
		return "", ErrSessionMissing
	}
	return string(identity), nil
}

func (a *Auth) beginSession(ctx context.Context, identity string) error {
	if err := a.store.Put(ctx, storage.KeyLoggedIn, []byte("true")); err != nil {
		return err
	}
	return a.store.Put(ctx, storage.KeyUserEmail, []byte(identity))
}

func (a *Auth) loadAccounts(ctx context.Context) ([]Account, error) {
	raw, ok, err := a.store.Get(ctx, storage.KeyRegisteredUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var accounts []Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		log.Warnf("corrupt account list, starting empty: %v", err)
		return nil, nil
	}
	return accounts, nil
}

func (a *Auth) saveAccounts(ctx context.Context, accounts []Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}
	return a.store.Put(ctx, storage.KeyRegisteredUsers, data)
}
