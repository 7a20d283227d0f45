package paciente

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/repo/enttest"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client, "AR"), client
}

func strPtr(s string) *string { return &s }

func TestCreatePaciente(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	t.Run("creates with full data", func(t *testing.T) {
		nacimiento := time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC)
		p, err := svc.Create(ctx, CreateRequest{
			Nombre:             "Juan Pérez",
			NumHistoriaClinica: "HC-1001",
			FechaNacimiento:    &nacimiento,
			Genero:             strPtr("M"),
			Dni:                strPtr("22333444"),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if p.Nombre != "Juan Pérez" {
			t.Errorf("nombre = %q, want %q", p.Nombre, "Juan Pérez")
		}
		if p.NumHistoriaClinica != "HC-1001" {
			t.Errorf("num_historia_clinica = %q, want %q", p.NumHistoriaClinica, "HC-1001")
		}
	})

	t.Run("rejects duplicate history number", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			Nombre:             "Otro Paciente",
			NumHistoriaClinica: "HC-1001",
		})
		if !errors.Is(err, ErrHistoriaAlreadyExists) {
			t.Errorf("err = %v, want ErrHistoriaAlreadyExists", err)
		}
	})

	t.Run("rejects missing history number", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{Nombre: "Sin Historia"})
		if !errors.Is(err, ErrHistoriaRequired) {
			t.Errorf("err = %v, want ErrHistoriaRequired", err)
		}
	})

	t.Run("rejects missing nombre", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{NumHistoriaClinica: "HC-1002"})
		if !errors.Is(err, ErrNombreRequired) {
			t.Errorf("err = %v, want ErrNombreRequired", err)
		}
	})

	t.Run("rejects unparseable phone", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			Nombre:             "Con Teléfono",
			NumHistoriaClinica: "HC-1003",
			Telefono:           strPtr("not-a-phone"),
		})
		if !errors.Is(err, ErrInvalidTelefono) {
			t.Errorf("err = %v, want ErrInvalidTelefono", err)
		}
	})
}

func TestGetByHistoria(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateRequest{
		Nombre:             "María López",
		NumHistoriaClinica: "HC-2001",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("finds existing", func(t *testing.T) {
		p, err := svc.GetByHistoria(ctx, "HC-2001")
		if err != nil {
			t.Fatalf("GetByHistoria failed: %v", err)
		}
		if p.Nombre != "María López" {
			t.Errorf("nombre = %q, want %q", p.Nombre, "María López")
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByHistoria(ctx, "HC-9999")
		if !errors.Is(err, ErrPacienteNotFound) {
			t.Errorf("err = %v, want ErrPacienteNotFound", err)
		}
	})
}

func TestEnsure(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	t.Run("creates when history number is new", func(t *testing.T) {
		p, err := svc.Ensure(ctx, EnsureRequest{
			Nombre:             "Carlos Ruiz",
			NumHistoriaClinica: "HC-3001",
		})
		if err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}
		if p.NumHistoriaClinica != "HC-3001" {
			t.Errorf("num_historia_clinica = %q, want HC-3001", p.NumHistoriaClinica)
		}
	})

	t.Run("returns existing row untouched", func(t *testing.T) {
		nacimiento := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
		p, err := svc.Ensure(ctx, EnsureRequest{
			Nombre:             "Nombre Distinto",
			NumHistoriaClinica: "HC-3001",
			FechaNacimiento:    &nacimiento,
			Dni:                strPtr("99888777"),
		})
		if err != nil {
			t.Fatalf("Ensure failed: %v", err)
		}

		// The master record keeps its original demographics.
		if p.Nombre != "Carlos Ruiz" {
			t.Errorf("nombre = %q, want original %q", p.Nombre, "Carlos Ruiz")
		}
		if p.Dni != nil {
			t.Errorf("dni = %v, want nil (not overwritten)", *p.Dni)
		}

		total, err := client.Paciente.Query().Count(ctx)
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if total != 1 {
			t.Errorf("paciente count = %d, want 1", total)
		}
	})
}

func TestUpdatePaciente(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{
		Nombre:             "Ana García",
		NumHistoriaClinica: "HC-4001",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("updates demographics", func(t *testing.T) {
		updated, err := svc.Update(ctx, p.ID, UpdateRequest{
			Direccion: strPtr("Av. Rivadavia 1234"),
			Telefono:  strPtr("+54 9 11 5555-4444"),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Direccion == nil || *updated.Direccion != "Av. Rivadavia 1234" {
			t.Errorf("direccion not updated: %v", updated.Direccion)
		}
		// History number is untouched by updates.
		if updated.NumHistoriaClinica != "HC-4001" {
			t.Errorf("num_historia_clinica changed to %q", updated.NumHistoriaClinica)
		}
	})
}
