package authorize

// The access matrix is the canonical statement of who may do what.
// Services consult it directly through CanPerform, and the casbin
// enforcer is seeded from the same rows (see seed.go), so both views
// cannot drift apart.
//
// Clinical staff never touch accounts, and the Administrador never
// touches clinical data.

// matrix maps role -> resource -> allowed actions.
var matrix = map[Role]map[Resource][]Action{
	RoleMedicoJefe: {
		ResourceFoja:     {ActionRead, ActionCreate, ActionUpdate, ActionInvalidate},
		ResourcePaciente: {ActionRead, ActionCreate, ActionUpdate},
	},
	RoleMedico: {
		ResourceFoja:     {ActionRead, ActionCreate, ActionUpdate},
		ResourcePaciente: {ActionRead, ActionCreate, ActionUpdate},
	},
	RoleEnfermero: {
		ResourceFoja:     {ActionRead},
		ResourcePaciente: {ActionRead, ActionCreate, ActionUpdate},
	},
	RoleAdministrador: {
		ResourceUsuario: {ActionRead, ActionCreate, ActionUpdate, ActionManage},
	},
}

// CanPerform reports whether a role may perform an action on a resource.
// Unknown roles, resources, and actions are always denied.
func CanPerform(role Role, resource Resource, action Action) bool {
	perResource, ok := matrix[role]
	if !ok {
		return false
	}
	actions, ok := perResource[resource]
	if !ok {
		return false
	}
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// AllowedActions returns the actions a role may perform on a resource.
// The returned slice is a copy.
func AllowedActions(role Role, resource Resource) []Action {
	actions := matrix[role][resource]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// MatrixPolicies flattens the matrix into casbin permission rows.
func MatrixPolicies() []PermissionPolicy {
	var out []PermissionPolicy
	for _, role := range AllRoles() {
		for _, resource := range AllResources() {
			for _, action := range matrix[role][resource] {
				out = append(out, PermissionPolicy{
					Subject: role,
					Domain:  DomainHospital,
					Object:  resource,
					Action:  action,
					Effect:  EffectAllow,
				})
			}
		}
	}
	return out
}

// AccountEdit describes an attempted change to a staff account,
// reduced to the facts the guardrails care about.
type AccountEdit struct {
	// TargetIsSelf is true when the actor edits their own account.
	TargetIsSelf bool

	// ChangesRole is true when the edit assigns a different role.
	ChangesRole bool

	// Disables is true when the edit sets the account inactive.
	Disables bool
}

// CanEditAccount applies the lockout guardrails on top of the matrix.
// An Administrador may manage any account except in two cases: changing
// their own role and disabling themselves.
func CanEditAccount(actor Role, edit AccountEdit) bool {
	if !CanPerform(actor, ResourceUsuario, ActionUpdate) {
		return false
	}
	if edit.TargetIsSelf && edit.ChangesRole {
		return false
	}
	if edit.TargetIsSelf && edit.Disables {
		return false
	}
	return true
}
