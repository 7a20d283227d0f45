// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Foja is the predicate function for foja builders.
type Foja func(*sql.Selector)

// Paciente is the predicate function for paciente builders.
type Paciente func(*sql.Selector)

// Usuario is the predicate function for usuario builders.
type Usuario func(*sql.Selector)
