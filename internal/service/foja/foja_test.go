package foja

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/repo/enttest"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/internal/service/paciente"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

func newTestService(t *testing.T) (Service, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return New(client, paciente.New(client, "AR")), client
}

// newEmpleado persists a staff account and returns it as the acting identity.
func newEmpleado(t *testing.T, client *repo.Client, nombre string, rol authorize.Role) *identity.Empleado {
	t.Helper()
	u, err := client.Usuario.Create().
		SetNombre(nombre).
		SetEmail(fmt.Sprintf("%s@hospital.test", nombre)).
		SetRol(string(rol)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create usuario: %v", err)
	}
	return &identity.Empleado{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    rol,
	}
}

func validCreateRequest(historia string) CreateRequest {
	return CreateRequest{
		NombrePaciente:            "Juan Pérez",
		NumHistoriaClinica:        historia,
		Fecha:                     time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
		Cirujano:                  "Dr. Gómez",
		Anestesia:                 "general",
		RiesgoQuirurgico:          "mediano",
		DiagnosticoPreoperatorio:  "Apendicitis aguda",
		PlanQuirurgico:            "Apendicectomía laparoscópica",
		DiagnosticoPostoperatorio: "Apendicitis aguda confirmada",
		OperacionRealizada:        "Apendicectomía laparoscópica",
		DescripcionTecnica:        "Abordaje por tres trócares, apéndice extraído en bolsa.",
	}
}

func TestCreateFoja(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	medico := newEmpleado(t, client, "medico1", authorize.RoleMedico)

	t.Run("creates record and patient together", func(t *testing.T) {
		f, err := svc.Create(ctx, medico, validCreateRequest("HC-100"))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if f.Invalida {
			t.Error("new record must start valid")
		}
		if f.MedicoResponsable != medico.ID {
			t.Errorf("medico_responsable = %v, want actor %v", f.MedicoResponsable, medico.ID)
		}
		if f.MedicoResponsableNombre != medico.Nombre {
			t.Errorf("medico_responsable_nombre = %q, want %q", f.MedicoResponsableNombre, medico.Nombre)
		}

		count, err := client.Paciente.Query().Count(ctx)
		if err != nil {
			t.Fatalf("count pacientes: %v", err)
		}
		if count != 1 {
			t.Errorf("paciente count = %d, want 1", count)
		}
	})

	t.Run("reuses existing patient for same history number", func(t *testing.T) {
		if _, err := svc.Create(ctx, medico, validCreateRequest("HC-100")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		pacientes, err := client.Paciente.Query().Count(ctx)
		if err != nil {
			t.Fatalf("count pacientes: %v", err)
		}
		if pacientes != 1 {
			t.Errorf("paciente count = %d, want 1 (no duplicate for same history number)", pacientes)
		}
		fojas, err := client.Foja.Query().Count(ctx)
		if err != nil {
			t.Fatalf("count fojas: %v", err)
		}
		if fojas != 2 {
			t.Errorf("foja count = %d, want 2", fojas)
		}
	})

	t.Run("enfermero cannot create", func(t *testing.T) {
		enfermero := newEmpleado(t, client, "enfermero1", authorize.RoleEnfermero)
		_, err := svc.Create(ctx, enfermero, validCreateRequest("HC-101"))
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("administrador cannot create", func(t *testing.T) {
		admin := newEmpleado(t, client, "admin1", authorize.RoleAdministrador)
		_, err := svc.Create(ctx, admin, validCreateRequest("HC-102"))
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("rejects missing history number", func(t *testing.T) {
		req := validCreateRequest("")
		_, err := svc.Create(ctx, medico, req)
		if !errors.Is(err, ErrHistoriaRequired) {
			t.Errorf("err = %v, want ErrHistoriaRequired", err)
		}
	})

	t.Run("rejects unknown anestesia", func(t *testing.T) {
		req := validCreateRequest("HC-103")
		req.Anestesia = "epidural"
		_, err := svc.Create(ctx, medico, req)
		if !errors.Is(err, ErrInvalidAnestesia) {
			t.Errorf("err = %v, want ErrInvalidAnestesia", err)
		}
	})

	t.Run("rejects unknown riesgo", func(t *testing.T) {
		req := validCreateRequest("HC-104")
		req.RiesgoQuirurgico = "extremo"
		_, err := svc.Create(ctx, medico, req)
		if !errors.Is(err, ErrInvalidRiesgo) {
			t.Errorf("err = %v, want ErrInvalidRiesgo", err)
		}
	})

	t.Run("rejects empty required text field", func(t *testing.T) {
		req := validCreateRequest("HC-105")
		req.DescripcionTecnica = "   "
		_, err := svc.Create(ctx, medico, req)
		if !errors.Is(err, ErrMissingField) {
			t.Errorf("err = %v, want ErrMissingField", err)
		}
	})
}

func TestToggleInvalida(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	jefe := newEmpleado(t, client, "jefe1", authorize.RoleMedicoJefe)
	medico := newEmpleado(t, client, "medico2", authorize.RoleMedico)

	f, err := svc.Create(ctx, medico, validCreateRequest("HC-200"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("only chief doctor may toggle", func(t *testing.T) {
		if _, err := svc.ToggleInvalida(ctx, medico, f.ID); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("medico toggle err = %v, want ErrAccessDenied", err)
		}
		enfermero := newEmpleado(t, client, "enfermero2", authorize.RoleEnfermero)
		if _, err := svc.ToggleInvalida(ctx, enfermero, f.ID); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("enfermero toggle err = %v, want ErrAccessDenied", err)
		}
	})

	t.Run("toggle flips both ways", func(t *testing.T) {
		flagged, err := svc.ToggleInvalida(ctx, jefe, f.ID)
		if err != nil {
			t.Fatalf("ToggleInvalida failed: %v", err)
		}
		if !flagged.Invalida {
			t.Error("record should be flagged after first toggle")
		}

		restored, err := svc.ToggleInvalida(ctx, jefe, f.ID)
		if err != nil {
			t.Fatalf("ToggleInvalida failed: %v", err)
		}
		if restored.Invalida {
			t.Error("record should be valid again after second toggle")
		}
	})

	t.Run("flagged record stays readable and editable", func(t *testing.T) {
		flagged, err := svc.ToggleInvalida(ctx, jefe, f.ID)
		if err != nil {
			t.Fatalf("ToggleInvalida failed: %v", err)
		}
		if !flagged.Invalida {
			t.Fatal("expected record to be flagged")
		}

		got, err := svc.GetByID(ctx, medico, f.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if !got.Invalida {
			t.Error("read after flagging lost the flag")
		}

		nuevo := "Técnica revisada tras auditoría."
		updated, err := svc.Update(ctx, medico, f.ID, UpdateRequest{DescripcionTecnica: &nuevo})
		if err != nil {
			t.Fatalf("Update of flagged record failed: %v", err)
		}
		if updated.DescripcionTecnica != nuevo {
			t.Errorf("descripcion_tecnica = %q, want %q", updated.DescripcionTecnica, nuevo)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := svc.ToggleInvalida(ctx, jefe, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrFojaNotFound) {
			t.Errorf("err = %v, want ErrFojaNotFound", err)
		}
	})
}

func TestUpdateFoja(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	medico := newEmpleado(t, client, "medico3", authorize.RoleMedico)

	f, err := svc.Create(ctx, medico, validCreateRequest("HC-300"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("updates surgery fields", func(t *testing.T) {
		riesgo := "alto"
		updated, err := svc.Update(ctx, medico, f.ID, UpdateRequest{RiesgoQuirurgico: &riesgo})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if string(updated.RiesgoQuirurgico) != "alto" {
			t.Errorf("riesgo_quirurgico = %q, want alto", updated.RiesgoQuirurgico)
		}
	})

	t.Run("rejects invalid enum values", func(t *testing.T) {
		mala := "hipnosis"
		if _, err := svc.Update(ctx, medico, f.ID, UpdateRequest{Anestesia: &mala}); !errors.Is(err, ErrInvalidAnestesia) {
			t.Errorf("err = %v, want ErrInvalidAnestesia", err)
		}
	})

	t.Run("enfermero cannot update", func(t *testing.T) {
		enfermero := newEmpleado(t, client, "enfermero3", authorize.RoleEnfermero)
		nombre := "Otro Nombre"
		if _, err := svc.Update(ctx, enfermero, f.ID, UpdateRequest{NombrePaciente: &nombre}); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})
}

func TestListFojas(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	medico := newEmpleado(t, client, "medico4", authorize.RoleMedico)
	otro := newEmpleado(t, client, "medico5", authorize.RoleMedico)

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, medico, validCreateRequest(fmt.Sprintf("HC-40%d", i))); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if _, err := svc.Create(ctx, otro, validCreateRequest("HC-409")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("lists all", func(t *testing.T) {
		result, err := svc.List(ctx, medico, ListRequest{})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if result.Total != 4 {
			t.Errorf("total = %d, want 4", result.Total)
		}
	})

	t.Run("filters by history number", func(t *testing.T) {
		historia := "HC-409"
		result, err := svc.List(ctx, medico, ListRequest{NumHistoriaClinica: &historia})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
	})

	t.Run("filters by responsible doctor", func(t *testing.T) {
		result, err := svc.List(ctx, medico, ListRequest{MedicoResponsable: &otro.ID})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if result.Total != 1 {
			t.Errorf("total = %d, want 1", result.Total)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		result, err := svc.List(ctx, medico, ListRequest{Page: 1, PerPage: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(result.Data) != 2 {
			t.Errorf("page size = %d, want 2", len(result.Data))
		}
		if result.TotalPages != 2 {
			t.Errorf("total_pages = %d, want 2", result.TotalPages)
		}
	})
}
