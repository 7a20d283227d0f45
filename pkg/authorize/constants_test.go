package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"hospital domain", DomainHospital, true},
		{"wildcard domain", WildcardDomain, true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"uppercase variant", Domain("Hospital"), false},
		{"prefixed variant", Domain("hospital:1"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantRole Role
		wantOK   bool
	}{
		{"medico jefe", "MedicoJefe", RoleMedicoJefe, true},
		{"medico", "Medico", RoleMedico, true},
		{"enfermero", "Enfermero", RoleEnfermero, true},
		{"administrador", "Administrador", RoleAdministrador, true},

		{"empty", "", "", false},
		{"lowercase", "medico", "", false},
		{"accented variant", "Médico", "", false},
		{"unrelated value", "Becario", "", false},
		{"wildcard is not assignable", "*", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := ParseRole(tt.input)
			if ok != tt.wantOK {
				t.Errorf("ParseRole(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if role != tt.wantRole {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, role, tt.wantRole)
			}
		})
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionInvalidate, ActionManage,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}

	if len(KnownActions) != len(expectedActions) {
		t.Errorf("KnownActions has %d entries, want %d", len(KnownActions), len(expectedActions))
	}
}

func TestKnownResources(t *testing.T) {
	expectedResources := []Resource{
		ResourceFoja, ResourcePaciente, ResourceUsuario,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestRoleDisplayNamesCoverAllRoles(t *testing.T) {
	for _, role := range AllRoles() {
		if _, ok := RoleDisplayNames[role]; !ok {
			t.Errorf("Role %q has no display name", role)
		}
	}
}
