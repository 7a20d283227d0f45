package auth

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nlonghi/fojas_backend/config"
	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/repo/enttest"
	entusuario "github.com/nlonghi/fojas_backend/internal/repo/usuario"
	"github.com/nlonghi/fojas_backend/pkg/util/password"
)

// The login failure paths never reach Redis or the token layer, so
// these tests run against the database alone.
func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	svc := New(client, nil, nil, &config.Config{})
	return svc, client
}

func createAccount(t *testing.T, client *repo.Client, email, plain string, habilitado bool) *repo.Usuario {
	t.Helper()
	hash, err := password.Hash(plain)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := client.Usuario.Create().
		SetNombre("Cuenta de Prueba").
		SetEmail(email).
		SetRol("Medico").
		SetPasswordHash(hash).
		SetHabilitado(habilitado).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create usuario: %v", err)
	}
	return u
}

func TestLoginFailures(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	createAccount(t, client, "medico@hospital.test", "correcta123", true)
	createAccount(t, client, "baja@hospital.test", "correcta123", false)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "nadie@hospital.test", Password: "x"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("wrong password increments failure counter", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "medico@hospital.test", Password: "incorrecta"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("err = %v, want ErrInvalidCredentials", err)
		}

		row, err := client.Usuario.Query().
			Where(entusuario.Email("medico@hospital.test")).
			Only(ctx)
		if err != nil {
			t.Fatalf("reload usuario: %v", err)
		}
		if row.FailedLoginAttempts != 1 {
			t.Errorf("failed_login_attempts = %d, want 1", row.FailedLoginAttempts)
		}
	})

	t.Run("disabled account", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{Email: "baja@hospital.test", Password: "correcta123"})
		if !errors.Is(err, ErrAccountDisabled) {
			t.Errorf("err = %v, want ErrAccountDisabled", err)
		}
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginRequest{})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestLoginLockout(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u := createAccount(t, client, "lock@hospital.test", "correcta123", true)

	for i := 0; i < maxLoginAttempts; i++ {
		if _, err := svc.Login(ctx, LoginRequest{Email: "lock@hospital.test", Password: "mala"}); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	row, err := client.Usuario.Get(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload usuario: %v", err)
	}
	if row.FailedLoginAttempts != maxLoginAttempts {
		t.Errorf("failed_login_attempts = %d, want %d", row.FailedLoginAttempts, maxLoginAttempts)
	}
	if row.LockedUntil == nil || !row.LockedUntil.After(time.Now()) {
		t.Fatal("account should be locked until a future time")
	}

	// Even the correct password is rejected while locked.
	if _, err := svc.Login(ctx, LoginRequest{Email: "lock@hospital.test", Password: "correcta123"}); !errors.Is(err, ErrAccountLocked) {
		t.Errorf("err = %v, want ErrAccountLocked", err)
	}
}

func TestChangePassword(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	u := createAccount(t, client, "cambio@hospital.test", "temporal123", true)
	if _, err := client.Usuario.UpdateOne(u).SetMustChangePassword(true).Save(ctx); err != nil {
		t.Fatalf("update usuario: %v", err)
	}

	t.Run("too short", func(t *testing.T) {
		err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
			CurrentPassword: "temporal123",
			NewPassword:     "corta",
		})
		if !errors.Is(err, ErrPasswordTooShort) {
			t.Errorf("err = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
			CurrentPassword: "equivocada",
			NewPassword:     "definitiva123",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("success clears the forced change flag", func(t *testing.T) {
		err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{
			CurrentPassword: "temporal123",
			NewPassword:     "definitiva123",
		})
		if err != nil {
			t.Fatalf("ChangePassword failed: %v", err)
		}

		row, err := client.Usuario.Get(ctx, u.ID)
		if err != nil {
			t.Fatalf("reload usuario: %v", err)
		}
		if row.MustChangePassword {
			t.Error("must_change_password should be cleared")
		}
		if err := password.Verify(*row.PasswordHash, "definitiva123"); err != nil {
			t.Errorf("new password does not verify: %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.ChangePassword(ctx, uuid.Must(uuid.NewV7()), ChangePasswordRequest{
			CurrentPassword: "x",
			NewPassword:     "definitiva123",
		})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

// A lockout counter that cannot be persisted must leave a trace in the
// logs, otherwise brute-force protection fails silently.
func TestFailedLoginWriteErrorsAreLogged(t *testing.T) {
	svc, client := newTestService(t)
	u := createAccount(t, client, "contador@hospital.test", "correcta123", true)

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.(*authService).recordFailedLogin(ctx, u)
	if !strings.Contains(buf.String(), "failed to record failed attempt") {
		t.Errorf("log output %q missing failed-attempt write error", buf.String())
	}
}
