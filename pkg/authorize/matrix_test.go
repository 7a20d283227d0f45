package authorize

import (
	"testing"
)

// TestCanPerformMatrix checks every role/resource/action combination
// against the expected outcome, so a matrix edit cannot silently widen
// or narrow access.
func TestCanPerformMatrix(t *testing.T) {
	type grant struct {
		role     Role
		resource Resource
		action   Action
	}

	allowed := map[grant]bool{
		{RoleMedicoJefe, ResourceFoja, ActionRead}:       true,
		{RoleMedicoJefe, ResourceFoja, ActionCreate}:     true,
		{RoleMedicoJefe, ResourceFoja, ActionUpdate}:     true,
		{RoleMedicoJefe, ResourceFoja, ActionInvalidate}: true,
		{RoleMedicoJefe, ResourcePaciente, ActionRead}:   true,
		{RoleMedicoJefe, ResourcePaciente, ActionCreate}: true,
		{RoleMedicoJefe, ResourcePaciente, ActionUpdate}: true,

		{RoleMedico, ResourceFoja, ActionRead}:       true,
		{RoleMedico, ResourceFoja, ActionCreate}:     true,
		{RoleMedico, ResourceFoja, ActionUpdate}:     true,
		{RoleMedico, ResourcePaciente, ActionRead}:   true,
		{RoleMedico, ResourcePaciente, ActionCreate}: true,
		{RoleMedico, ResourcePaciente, ActionUpdate}: true,

		{RoleEnfermero, ResourceFoja, ActionRead}:       true,
		{RoleEnfermero, ResourcePaciente, ActionRead}:   true,
		{RoleEnfermero, ResourcePaciente, ActionCreate}: true,
		{RoleEnfermero, ResourcePaciente, ActionUpdate}: true,

		{RoleAdministrador, ResourceUsuario, ActionRead}:   true,
		{RoleAdministrador, ResourceUsuario, ActionCreate}: true,
		{RoleAdministrador, ResourceUsuario, ActionUpdate}: true,
		{RoleAdministrador, ResourceUsuario, ActionManage}: true,
	}

	for _, role := range AllRoles() {
		for _, resource := range AllResources() {
			for _, action := range AllActions() {
				got := CanPerform(role, resource, action)
				want := allowed[grant{role, resource, action}]
				if got != want {
					t.Errorf("CanPerform(%s, %s, %s) = %v, want %v", role, resource, action, got, want)
				}
			}
		}
	}
}

func TestCanPerformUnknownInputs(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		resource Resource
		action   Action
	}{
		{"unknown role", Role("Becario"), ResourceFoja, ActionRead},
		{"empty role", Role(""), ResourceFoja, ActionRead},
		{"unknown resource", RoleMedicoJefe, Resource("informe"), ActionRead},
		{"unknown action", RoleMedicoJefe, ResourceFoja, Action("export")},
		{"wildcard role is not a grant", WildcardRole, ResourceFoja, ActionRead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if CanPerform(tt.role, tt.resource, tt.action) {
				t.Errorf("CanPerform(%s, %s, %s) = true, want false", tt.role, tt.resource, tt.action)
			}
		})
	}
}

// Nobody may both invalidate fojas and manage accounts. The clinical
// and administrative halves of the matrix must stay disjoint.
func TestClinicalAdministrativeSeparation(t *testing.T) {
	for _, role := range AllRoles() {
		clinical := CanPerform(role, ResourceFoja, ActionRead) ||
			CanPerform(role, ResourcePaciente, ActionRead)
		administrative := CanPerform(role, ResourceUsuario, ActionManage)

		if clinical && administrative {
			t.Errorf("role %q has both clinical and administrative access", role)
		}
	}
}

func TestOnlyChiefInvalidates(t *testing.T) {
	for _, role := range AllRoles() {
		got := CanPerform(role, ResourceFoja, ActionInvalidate)
		want := role == RoleMedicoJefe
		if got != want {
			t.Errorf("invalidate for %q = %v, want %v", role, got, want)
		}
	}
}

// Every clinical role may register and correct patient demographics.
// Only physicians write fojas.
func TestEnfermeroWritesPacientesNotFojas(t *testing.T) {
	for _, action := range []Action{ActionCreate, ActionUpdate} {
		if !CanPerform(RoleEnfermero, ResourcePaciente, action) {
			t.Errorf("CanPerform(Enfermero, paciente, %s) = false, want true", action)
		}
		if CanPerform(RoleEnfermero, ResourceFoja, action) {
			t.Errorf("CanPerform(Enfermero, foja, %s) = true, want false", action)
		}
	}
}

func TestCanEditAccount(t *testing.T) {
	tests := []struct {
		name  string
		actor Role
		edit  AccountEdit
		want  bool
	}{
		{"admin edits another account", RoleAdministrador, AccountEdit{}, true},
		{"admin changes another role", RoleAdministrador, AccountEdit{ChangesRole: true}, true},
		{"admin disables another account", RoleAdministrador, AccountEdit{Disables: true}, true},
		{"admin edits own profile fields", RoleAdministrador, AccountEdit{TargetIsSelf: true}, true},

		{"admin changes own role", RoleAdministrador, AccountEdit{TargetIsSelf: true, ChangesRole: true}, false},
		{"admin disables self", RoleAdministrador, AccountEdit{TargetIsSelf: true, Disables: true}, false},
		{"admin disables self while changing role", RoleAdministrador, AccountEdit{TargetIsSelf: true, ChangesRole: true, Disables: true}, false},

		{"medico jefe cannot edit accounts", RoleMedicoJefe, AccountEdit{}, false},
		{"medico cannot edit accounts", RoleMedico, AccountEdit{}, false},
		{"enfermero cannot edit accounts", RoleEnfermero, AccountEdit{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanEditAccount(tt.actor, tt.edit)
			if got != tt.want {
				t.Errorf("CanEditAccount(%s, %+v) = %v, want %v", tt.actor, tt.edit, got, tt.want)
			}
		})
	}
}

func TestMatrixPoliciesMirrorCanPerform(t *testing.T) {
	policies := MatrixPolicies()

	seen := map[PermissionPolicy]struct{}{}
	for _, p := range policies {
		if p.Effect != EffectAllow {
			t.Errorf("unexpected effect %q in matrix policy %+v", p.Effect, p)
		}
		if p.Domain != DomainHospital {
			t.Errorf("unexpected domain %q in matrix policy %+v", p.Domain, p)
		}
		if !CanPerform(p.Subject, p.Object, p.Action) {
			t.Errorf("policy %+v not reflected in CanPerform", p)
		}
		seen[p] = struct{}{}
	}

	// And the reverse: every true cell of the matrix has a policy row.
	for _, role := range AllRoles() {
		for _, resource := range AllResources() {
			for _, action := range AllActions() {
				if !CanPerform(role, resource, action) {
					continue
				}
				p := PermissionPolicy{role, DomainHospital, resource, action, EffectAllow}
				if _, ok := seen[p]; !ok {
					t.Errorf("CanPerform allows %s/%s/%s but no policy row exists", role, resource, action)
				}
			}
		}
	}
}
