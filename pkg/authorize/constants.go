package authorize

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"

	// Invalidate flips the validity flag of a surgical record.
	// It is deliberately separate from update: editing a record and
	// disputing its validity are different privileges.
	ActionInvalidate Action = "invalidate"

	// Manage covers account administration (create, update, disable).
	ActionManage Action = "manage"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {},
	ActionInvalidate: {}, ActionManage: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Clinical records
	ResourceFoja     Resource = "foja"
	ResourcePaciente Resource = "paciente"

	// Staff accounts
	ResourceUsuario Resource = "usuario"
)

var KnownResources = map[Resource]struct{}{
	ResourceFoja: {}, ResourcePaciente: {}, ResourceUsuario: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// Role strings match the values stored in usuarios.rol. They are exactly
// the four staff positions the hospital recognises; anything else is
// treated as unprovisioned.

const (
	WildcardRole Role = "*"

	RoleMedicoJefe    Role = "MedicoJefe"
	RoleMedico        Role = "Medico"
	RoleEnfermero     Role = "Enfermero"
	RoleAdministrador Role = "Administrador"
)

var KnownRoles = map[Role]struct{}{
	RoleMedicoJefe:    {},
	RoleMedico:        {},
	RoleEnfermero:     {},
	RoleAdministrador: {},
}

// Spanish display names, as shown in the frontend.
var RoleDisplayNames = map[Role]string{
	RoleMedicoJefe:    "Médico Jefe",
	RoleMedico:        "Médico",
	RoleEnfermero:     "Enfermero/a",
	RoleAdministrador: "Administrador/a",
}

// ParseRole maps a stored role string to a typed Role.
// Returns false for empty, unknown, or misspelled values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if _, ok := KnownRoles[r]; !ok {
		return "", false
	}
	return r, true
}

// AllRoles returns every recognised role, in a stable order.
func AllRoles() []Role {
	return []Role{RoleMedicoJefe, RoleMedico, RoleEnfermero, RoleAdministrador}
}

// AllResources returns every recognised resource, in a stable order.
func AllResources() []Resource {
	return []Resource{ResourceFoja, ResourcePaciente, ResourceUsuario}
}

// AllActions returns every recognised action, in a stable order.
func AllActions() []Action {
	return []Action{ActionRead, ActionCreate, ActionUpdate, ActionInvalidate, ActionManage}
}

// ----------------------------
// Domains
// ----------------------------
//
// The system serves a single hospital, so there is one fixed domain.
// The domain column is kept in the casbin model so a future multi-site
// deployment needs policy rows, not a schema change.

const (
	DomainHospital Domain = "hospital"
)

const (
	WildcardDomain Domain = "*"
)

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	return d == DomainHospital || d == WildcardDomain
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// GroupSubject is the g.sub in Casbin: a concrete principal id (user id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
