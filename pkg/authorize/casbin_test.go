package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config, mirroring casbin_model.conf at the repo root
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (r.sub == p.sub || g(r.sub, p.sub, r.dom)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func createSeededAuthorization(t *testing.T) IAuthorization {
	t.Helper()

	e := createTestEnforcer(t)
	auth, err := NewAuthorization(e)
	if err != nil {
		t.Fatalf("failed to create authorization: %v", err)
	}
	if err := SeedMatrix(context.Background(), auth); err != nil {
		t.Fatalf("failed to seed matrix: %v", err)
	}
	return auth
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	auth := createSeededAuthorization(t)
	ctx := context.Background()

	// Link a user to a role
	userID := "user-123"
	if _, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleMedico, DomainHospital); err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "user inherits role permission",
			subject:  GroupSubject(userID),
			domain:   DomainHospital,
			resource: ResourceFoja,
			action:   ActionUpdate,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "user denied beyond role",
			subject:  GroupSubject(userID),
			domain:   DomainHospital,
			resource: ResourceFoja,
			action:   ActionInvalidate,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "role string works as subject directly",
			subject:  GroupSubject(RoleMedicoJefe),
			domain:   DomainHospital,
			resource: ResourceFoja,
			action:   ActionInvalidate,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   DomainHospital,
			resource: ResourceFoja,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  GroupSubject(userID),
			domain:   Domain("invalid"),
			resource: ResourceFoja,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			domain:   DomainHospital,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			domain:   DomainHospital,
			resource: ResourceFoja,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// TestEnforcerMatchesMatrix verifies the seeded enforcer is semantically
// identical to CanPerform over the full role/resource/action space.
func TestEnforcerMatchesMatrix(t *testing.T) {
	auth := createSeededAuthorization(t)
	ctx := context.Background()

	for _, role := range AllRoles() {
		for _, resource := range AllResources() {
			for _, action := range AllActions() {
				got, err := auth.Enforce(ctx, GroupSubject(role), DomainHospital, resource, action)
				if err != nil {
					t.Fatalf("Enforce(%s, %s, %s): %v", role, resource, action, err)
				}
				want := CanPerform(role, resource, action)
				if got != want {
					t.Errorf("enforcer and matrix disagree on %s/%s/%s: enforcer=%v matrix=%v",
						role, resource, action, got, want)
				}
			}
		}
	}
}

func TestMustEnforce(t *testing.T) {
	auth := createSeededAuthorization(t)
	ctx := context.Background()

	userID := "user-456"
	auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleAdministrador, DomainHospital)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainHospital, ResourceUsuario, ActionManage)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainHospital, ResourceFoja, ActionRead)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-789"

	t.Run("add and get roles", func(t *testing.T) {
		// Add role
		added, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleEnfermero, DomainHospital)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		// Get roles
		roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainHospital)
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleEnfermero {
			t.Errorf("Expected role %q, got %q", RoleEnfermero, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		// Remove role
		removed, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), RoleEnfermero, DomainHospital)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		// Verify removal
		roles, _ := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), DomainHospital)
		if len(roles) != 0 {
			t.Errorf("Expected 0 roles after removal, got %d", len(roles))
		}
	})

	t.Run("error for invalid role", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), Role("invalid-role"), DomainHospital)
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestReplaceRole(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "user-promotion"

	if err := AssignRole(ctx, auth, userID, RoleMedico); err != nil {
		t.Fatalf("Failed to assign role: %v", err)
	}

	if err := ReplaceRole(ctx, auth, userID, RoleMedico, RoleMedicoJefe); err != nil {
		t.Fatalf("Failed to replace role: %v", err)
	}

	roles, err := RolesForUser(ctx, auth, userID)
	if err != nil {
		t.Fatalf("Failed to get roles: %v", err)
	}
	if len(roles) != 1 || roles[0] != RoleMedicoJefe {
		t.Errorf("Expected exactly [MedicoJefe], got %v", roles)
	}
}

func TestPermissionManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		// Add permission
		added, err := auth.AddPermission(ctx, RoleEnfermero, DomainHospital, ResourcePaciente, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		// Remove permission
		removed, err := auth.RemovePermission(ctx, RoleEnfermero, DomainHospital, ResourcePaciente, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RoleAdministrador, DomainHospital, ResourceUsuario, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})
}
