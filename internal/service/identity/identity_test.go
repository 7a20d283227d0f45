package identity

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/repo/enttest"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client), client
}

func TestResolve(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	t.Run("resolves enabled account with known role", func(t *testing.T) {
		u, err := client.Usuario.Create().
			SetNombre("Dr. Paz").
			SetEmail("paz@hospital.test").
			SetRol("MedicoJefe").
			Save(ctx)
		if err != nil {
			t.Fatalf("create usuario: %v", err)
		}

		emp, err := svc.Resolve(ctx, u.ID)
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if emp.Rol != authorize.RoleMedicoJefe {
			t.Errorf("rol = %q, want MedicoJefe", emp.Rol)
		}
		if emp.EsAdministrador() {
			t.Error("chief doctor is not an administrator")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Resolve(ctx, uuid.Must(uuid.NewV7()))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("unrecognised role resolves as unprovisioned", func(t *testing.T) {
		u, err := client.Usuario.Create().
			SetNombre("Sin Rol").
			SetEmail("sinrol@hospital.test").
			SetRol("Recepcionista").
			Save(ctx)
		if err != nil {
			t.Fatalf("create usuario: %v", err)
		}
		if _, err := svc.Resolve(ctx, u.ID); !errors.Is(err, ErrNotProvisioned) {
			t.Errorf("err = %v, want ErrNotProvisioned", err)
		}
	})

	t.Run("empty role resolves as unprovisioned", func(t *testing.T) {
		u, err := client.Usuario.Create().
			SetNombre("Nuevo Ingreso").
			SetEmail("ingreso@hospital.test").
			Save(ctx)
		if err != nil {
			t.Fatalf("create usuario: %v", err)
		}
		if _, err := svc.Resolve(ctx, u.ID); !errors.Is(err, ErrNotProvisioned) {
			t.Errorf("err = %v, want ErrNotProvisioned", err)
		}
	})

	t.Run("disabled wins over unprovisioned", func(t *testing.T) {
		u, err := client.Usuario.Create().
			SetNombre("Baja").
			SetEmail("baja@hospital.test").
			SetRol("RolRaro").
			SetHabilitado(false).
			Save(ctx)
		if err != nil {
			t.Fatalf("create usuario: %v", err)
		}
		if _, err := svc.Resolve(ctx, u.ID); !errors.Is(err, ErrDisabled) {
			t.Errorf("err = %v, want ErrDisabled", err)
		}
	})
}

func TestResolveByEmail(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	if _, err := client.Usuario.Create().
		SetNombre("Admin").
		SetEmail("admin@hospital.test").
		SetRol("Administrador").
		Save(ctx); err != nil {
		t.Fatalf("create usuario: %v", err)
	}

	emp, err := svc.ResolveByEmail(ctx, "admin@hospital.test")
	if err != nil {
		t.Fatalf("ResolveByEmail failed: %v", err)
	}
	if !emp.EsAdministrador() {
		t.Error("expected administrator")
	}

	if _, err := svc.ResolveByEmail(ctx, "nadie@hospital.test"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
