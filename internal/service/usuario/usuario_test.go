package usuario

import (
	"context"
	"errors"
	"fmt"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/repo/enttest"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

// fakeAuthz records grouping changes without a real enforcer backend.
type fakeAuthz struct {
	roles map[string][]authorize.Role
}

func newFakeAuthz() *fakeAuthz {
	return &fakeAuthz{roles: map[string][]authorize.Role{}}
}

func (f *fakeAuthz) Enforce(ctx context.Context, subject authorize.GroupSubject, domain authorize.Domain, object authorize.Resource, action authorize.Action) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) MustEnforce(ctx context.Context, subject authorize.GroupSubject, domain authorize.Domain, object authorize.Resource, action authorize.Action) error {
	return nil
}

func (f *fakeAuthz) AddRoleForUserInDomain(ctx context.Context, subject authorize.GroupSubject, role authorize.Role, domain authorize.Domain) (bool, error) {
	f.roles[string(subject)] = append(f.roles[string(subject)], role)
	return true, nil
}

func (f *fakeAuthz) RemoveRoleForUserInDomain(ctx context.Context, subject authorize.GroupSubject, role authorize.Role, domain authorize.Domain) (bool, error) {
	kept := f.roles[string(subject)][:0]
	for _, r := range f.roles[string(subject)] {
		if r != role {
			kept = append(kept, r)
		}
	}
	f.roles[string(subject)] = kept
	return true, nil
}

func (f *fakeAuthz) GetRolesForUserInDomain(ctx context.Context, subject authorize.GroupSubject, domain authorize.Domain) ([]authorize.Role, error) {
	return f.roles[string(subject)], nil
}

func (f *fakeAuthz) AddPermission(ctx context.Context, role authorize.Role, domain authorize.Domain, object authorize.Resource, action authorize.Action, effect authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) RemovePermission(ctx context.Context, role authorize.Role, domain authorize.Domain, object authorize.Resource, action authorize.Action, effect authorize.PolicyEffect) (bool, error) {
	return true, nil
}

func (f *fakeAuthz) Raw() *casbin.DistributedEnforcer { return nil }

func newTestService(t *testing.T) (Service, *repo.Client, *fakeAuthz) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	authz := newFakeAuthz()
	svc := New(client, authz, nil, Config{TempPasswordLength: 12}, nil)
	return svc, client, authz
}

func newAdmin(t *testing.T, client *repo.Client, email string) *identity.Empleado {
	t.Helper()
	u, err := client.Usuario.Create().
		SetNombre("Admin").
		SetEmail(email).
		SetRol(string(authorize.RoleAdministrador)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create admin row: %v", err)
	}
	return &identity.Empleado{ID: u.ID, Nombre: u.Nombre, Email: u.Email, Rol: authorize.RoleAdministrador}
}

func TestCreateUsuario(t *testing.T) {
	svc, client, authz := newTestService(t)
	ctx := context.Background()
	admin := newAdmin(t, client, "admin@hospital.test")

	t.Run("provisions account with temp password", func(t *testing.T) {
		result, err := svc.Create(ctx, admin, CreateRequest{
			Nombre: "Dra. Fernández",
			Email:  "Fernandez@Hospital.Test",
			Rol:    "Medico",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if result.Usuario.Email != "fernandez@hospital.test" {
			t.Errorf("email = %q, want lowercased", result.Usuario.Email)
		}
		if !result.Usuario.MustChangePassword {
			t.Error("new account must be forced to change the temp password")
		}
		if result.TempPassword == "" {
			t.Error("temp password missing from result")
		}
		if result.EmailSent {
			t.Error("email_sent should be false with no mailer configured")
		}
		roles := authz.roles[result.Usuario.ID.String()]
		if len(roles) != 1 || roles[0] != authorize.RoleMedico {
			t.Errorf("enforcer roles = %v, want [Medico]", roles)
		}
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Create(ctx, admin, CreateRequest{
			Nombre: "Otra Persona",
			Email:  "fernandez@hospital.test",
			Rol:    "Enfermero",
		})
		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("err = %v, want ErrEmailAlreadyExists", err)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := svc.Create(ctx, admin, CreateRequest{
			Nombre: "Alguien",
			Email:  "alguien@hospital.test",
			Rol:    "Director",
		})
		if !errors.Is(err, ErrInvalidRol) {
			t.Errorf("err = %v, want ErrInvalidRol", err)
		}
	})

	t.Run("non-administrator cannot create accounts", func(t *testing.T) {
		medico := &identity.Empleado{Rol: authorize.RoleMedico}
		_, err := svc.Create(ctx, medico, CreateRequest{
			Nombre: "Nuevo",
			Email:  "nuevo@hospital.test",
			Rol:    "Medico",
		})
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})
}

func TestUpdateUsuario(t *testing.T) {
	svc, client, authz := newTestService(t)
	ctx := context.Background()
	admin := newAdmin(t, client, "admin@hospital.test")

	created, err := svc.Create(ctx, admin, CreateRequest{
		Nombre: "Dr. Suárez",
		Email:  "suarez@hospital.test",
		Rol:    "Medico",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	target := created.Usuario

	boolPtr := func(b bool) *bool { return &b }
	strPtr := func(s string) *string { return &s }

	t.Run("changes another account's role", func(t *testing.T) {
		updated, err := svc.Update(ctx, admin, target.ID, UpdateRequest{Rol: strPtr("MedicoJefe")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Rol != "MedicoJefe" {
			t.Errorf("rol = %q, want MedicoJefe", updated.Rol)
		}
		roles := authz.roles[target.ID.String()]
		if len(roles) != 1 || roles[0] != authorize.RoleMedicoJefe {
			t.Errorf("enforcer roles = %v, want [MedicoJefe]", roles)
		}
	})

	t.Run("disables another account", func(t *testing.T) {
		updated, err := svc.Update(ctx, admin, target.ID, UpdateRequest{Habilitado: boolPtr(false)})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Habilitado {
			t.Error("account should be disabled")
		}
	})

	t.Run("admin cannot change own role", func(t *testing.T) {
		_, err := svc.Update(ctx, admin, admin.ID, UpdateRequest{Rol: strPtr("Medico")})
		if !errors.Is(err, ErrSelfRoleChange) {
			t.Errorf("err = %v, want ErrSelfRoleChange", err)
		}
	})

	t.Run("admin cannot disable own account", func(t *testing.T) {
		_, err := svc.Update(ctx, admin, admin.ID, UpdateRequest{Habilitado: boolPtr(false)})
		if !errors.Is(err, ErrSelfDisable) {
			t.Errorf("err = %v, want ErrSelfDisable", err)
		}
	})

	t.Run("admin may edit own name", func(t *testing.T) {
		updated, err := svc.Update(ctx, admin, admin.ID, UpdateRequest{Nombre: strPtr("Admin Principal")})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Nombre != "Admin Principal" {
			t.Errorf("nombre = %q, want Admin Principal", updated.Nombre)
		}
	})

	t.Run("non-administrator cannot update", func(t *testing.T) {
		medico := &identity.Empleado{Rol: authorize.RoleMedico}
		_, err := svc.Update(ctx, medico, target.ID, UpdateRequest{Nombre: strPtr("X")})
		if !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})
}

func TestResetPassword(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()
	admin := newAdmin(t, client, "admin@hospital.test")

	created, err := svc.Create(ctx, admin, CreateRequest{
		Nombre: "Enf. Torres",
		Email:  "torres@hospital.test",
		Rol:    "Enfermero",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result, err := svc.ResetPassword(ctx, admin, created.Usuario.ID)
	if err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}
	if result.TempPassword == "" {
		t.Error("temp password missing")
	}
	if result.TempPassword == created.TempPassword {
		t.Error("reset must issue a fresh temp password")
	}
	if !result.Usuario.MustChangePassword {
		t.Error("reset must force a password change")
	}

	t.Run("non-administrator cannot reset", func(t *testing.T) {
		medico := &identity.Empleado{Rol: authorize.RoleMedico}
		if _, err := svc.ResetPassword(ctx, medico, created.Usuario.ID); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("err = %v, want ErrAccessDenied", err)
		}
	})
}

func TestListUsuarios(t *testing.T) {
	svc, client, _ := newTestService(t)
	ctx := context.Background()
	admin := newAdmin(t, client, "admin@hospital.test")

	for i, rol := range []string{"Medico", "Medico", "Enfermero"} {
		if _, err := svc.Create(ctx, admin, CreateRequest{
			Nombre: fmt.Sprintf("Empleado %d", i),
			Email:  fmt.Sprintf("empleado%d@hospital.test", i),
			Rol:    rol,
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	rol := "Medico"
	result, err := svc.List(ctx, admin, ListRequest{Rol: &rol})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Total != 2 {
		t.Errorf("total = %d, want 2", result.Total)
	}

	all, err := svc.List(ctx, admin, ListRequest{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	// three created here plus the admin row
	if all.Total != 4 {
		t.Errorf("total = %d, want 4", all.Total)
	}
}
