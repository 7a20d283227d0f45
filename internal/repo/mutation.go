// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeFoja     = "Foja"
	TypePaciente = "Paciente"
	TypeUsuario  = "Usuario"
)

// FojaMutation represents an operation that mutates the Foja nodes in the graph.
type FojaMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	created_at                 *time.Time
	updated_at                 *time.Time
	nombre_paciente            *string
	num_historia_clinica       *string
	fecha_nacimiento           *time.Time
	dni                        *string
	fecha                      *time.Time
	cirujano                   *string
	ayudante1                  *string
	ayudante2                  *string
	ayudante3                  *string
	anestesiologo              *string
	anestesia                  *foja.Anestesia
	instrumentador             *string
	riesgo_quirurgico          *foja.RiesgoQuirurgico
	diagnostico_preoperatorio  *string
	plan_quirurgico            *string
	diagnostico_postoperatorio *string
	operacion_realizada        *string
	anatomia_patologica        *string
	descripcion_tecnica        *string
	medico_responsable_nombre  *string
	invalida                   *bool
	clearedFields              map[string]struct{}
	responsable                *uuid.UUID
	clearedresponsable         bool
	done                       bool
	oldValue                   func(context.Context) (*Foja, error)
	predicates                 []predicate.Foja
}

var _ ent.Mutation = (*FojaMutation)(nil)

// fojaOption allows management of the mutation configuration using functional options.
type fojaOption func(*FojaMutation)

// newFojaMutation creates new mutation for the Foja entity.
func newFojaMutation(c config, op Op, opts ...fojaOption) *FojaMutation {
	m := &FojaMutation{
		config:        c,
		op:            op,
		typ:           TypeFoja,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFojaID sets the ID field of the mutation.
func withFojaID(id uuid.UUID) fojaOption {
	return func(m *FojaMutation) {
		var (
			err   error
			once  sync.Once
			value *Foja
		)
		m.oldValue = func(ctx context.Context) (*Foja, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Foja.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFoja sets the old Foja of the mutation.
func withFoja(node *Foja) fojaOption {
	return func(m *FojaMutation) {
		m.oldValue = func(context.Context) (*Foja, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FojaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FojaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Foja entities.
func (m *FojaMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FojaMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FojaMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Foja.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FojaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FojaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FojaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FojaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FojaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FojaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombrePaciente sets the "nombre_paciente" field.
func (m *FojaMutation) SetNombrePaciente(s string) {
	m.nombre_paciente = &s
}

// NombrePaciente returns the value of the "nombre_paciente" field in the mutation.
func (m *FojaMutation) NombrePaciente() (r string, exists bool) {
	v := m.nombre_paciente
	if v == nil {
		return
	}
	return *v, true
}

// OldNombrePaciente returns the old "nombre_paciente" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldNombrePaciente(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombrePaciente is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombrePaciente requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombrePaciente: %w", err)
	}
	return oldValue.NombrePaciente, nil
}

// ResetNombrePaciente resets all changes to the "nombre_paciente" field.
func (m *FojaMutation) ResetNombrePaciente() {
	m.nombre_paciente = nil
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (m *FojaMutation) SetNumHistoriaClinica(s string) {
	m.num_historia_clinica = &s
}

// NumHistoriaClinica returns the value of the "num_historia_clinica" field in the mutation.
func (m *FojaMutation) NumHistoriaClinica() (r string, exists bool) {
	v := m.num_historia_clinica
	if v == nil {
		return
	}
	return *v, true
}

// OldNumHistoriaClinica returns the old "num_historia_clinica" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldNumHistoriaClinica(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumHistoriaClinica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumHistoriaClinica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumHistoriaClinica: %w", err)
	}
	return oldValue.NumHistoriaClinica, nil
}

// ResetNumHistoriaClinica resets all changes to the "num_historia_clinica" field.
func (m *FojaMutation) ResetNumHistoriaClinica() {
	m.num_historia_clinica = nil
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (m *FojaMutation) SetFechaNacimiento(t time.Time) {
	m.fecha_nacimiento = &t
}

// FechaNacimiento returns the value of the "fecha_nacimiento" field in the mutation.
func (m *FojaMutation) FechaNacimiento() (r time.Time, exists bool) {
	v := m.fecha_nacimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaNacimiento returns the old "fecha_nacimiento" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldFechaNacimiento(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaNacimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaNacimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaNacimiento: %w", err)
	}
	return oldValue.FechaNacimiento, nil
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (m *FojaMutation) ClearFechaNacimiento() {
	m.fecha_nacimiento = nil
	m.clearedFields[foja.FieldFechaNacimiento] = struct{}{}
}

// FechaNacimientoCleared returns if the "fecha_nacimiento" field was cleared in this mutation.
func (m *FojaMutation) FechaNacimientoCleared() bool {
	_, ok := m.clearedFields[foja.FieldFechaNacimiento]
	return ok
}

// ResetFechaNacimiento resets all changes to the "fecha_nacimiento" field.
func (m *FojaMutation) ResetFechaNacimiento() {
	m.fecha_nacimiento = nil
	delete(m.clearedFields, foja.FieldFechaNacimiento)
}

// SetDni sets the "dni" field.
func (m *FojaMutation) SetDni(s string) {
	m.dni = &s
}

// Dni returns the value of the "dni" field in the mutation.
func (m *FojaMutation) Dni() (r string, exists bool) {
	v := m.dni
	if v == nil {
		return
	}
	return *v, true
}

// OldDni returns the old "dni" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldDni(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDni: %w", err)
	}
	return oldValue.Dni, nil
}

// ClearDni clears the value of the "dni" field.
func (m *FojaMutation) ClearDni() {
	m.dni = nil
	m.clearedFields[foja.FieldDni] = struct{}{}
}

// DniCleared returns if the "dni" field was cleared in this mutation.
func (m *FojaMutation) DniCleared() bool {
	_, ok := m.clearedFields[foja.FieldDni]
	return ok
}

// ResetDni resets all changes to the "dni" field.
func (m *FojaMutation) ResetDni() {
	m.dni = nil
	delete(m.clearedFields, foja.FieldDni)
}

// SetFecha sets the "fecha" field.
func (m *FojaMutation) SetFecha(t time.Time) {
	m.fecha = &t
}

// Fecha returns the value of the "fecha" field in the mutation.
func (m *FojaMutation) Fecha() (r time.Time, exists bool) {
	v := m.fecha
	if v == nil {
		return
	}
	return *v, true
}

// OldFecha returns the old "fecha" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldFecha(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFecha is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFecha requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFecha: %w", err)
	}
	return oldValue.Fecha, nil
}

// ResetFecha resets all changes to the "fecha" field.
func (m *FojaMutation) ResetFecha() {
	m.fecha = nil
}

// SetCirujano sets the "cirujano" field.
func (m *FojaMutation) SetCirujano(s string) {
	m.cirujano = &s
}

// Cirujano returns the value of the "cirujano" field in the mutation.
func (m *FojaMutation) Cirujano() (r string, exists bool) {
	v := m.cirujano
	if v == nil {
		return
	}
	return *v, true
}

// OldCirujano returns the old "cirujano" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldCirujano(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCirujano is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCirujano requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCirujano: %w", err)
	}
	return oldValue.Cirujano, nil
}

// ResetCirujano resets all changes to the "cirujano" field.
func (m *FojaMutation) ResetCirujano() {
	m.cirujano = nil
}

// SetAyudante1 sets the "ayudante1" field.
func (m *FojaMutation) SetAyudante1(s string) {
	m.ayudante1 = &s
}

// Ayudante1 returns the value of the "ayudante1" field in the mutation.
func (m *FojaMutation) Ayudante1() (r string, exists bool) {
	v := m.ayudante1
	if v == nil {
		return
	}
	return *v, true
}

// OldAyudante1 returns the old "ayudante1" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAyudante1(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAyudante1 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAyudante1 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAyudante1: %w", err)
	}
	return oldValue.Ayudante1, nil
}

// ClearAyudante1 clears the value of the "ayudante1" field.
func (m *FojaMutation) ClearAyudante1() {
	m.ayudante1 = nil
	m.clearedFields[foja.FieldAyudante1] = struct{}{}
}

// Ayudante1Cleared returns if the "ayudante1" field was cleared in this mutation.
func (m *FojaMutation) Ayudante1Cleared() bool {
	_, ok := m.clearedFields[foja.FieldAyudante1]
	return ok
}

// ResetAyudante1 resets all changes to the "ayudante1" field.
func (m *FojaMutation) ResetAyudante1() {
	m.ayudante1 = nil
	delete(m.clearedFields, foja.FieldAyudante1)
}

// SetAyudante2 sets the "ayudante2" field.
func (m *FojaMutation) SetAyudante2(s string) {
	m.ayudante2 = &s
}

// Ayudante2 returns the value of the "ayudante2" field in the mutation.
func (m *FojaMutation) Ayudante2() (r string, exists bool) {
	v := m.ayudante2
	if v == nil {
		return
	}
	return *v, true
}

// OldAyudante2 returns the old "ayudante2" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAyudante2(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAyudante2 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAyudante2 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAyudante2: %w", err)
	}
	return oldValue.Ayudante2, nil
}

// ClearAyudante2 clears the value of the "ayudante2" field.
func (m *FojaMutation) ClearAyudante2() {
	m.ayudante2 = nil
	m.clearedFields[foja.FieldAyudante2] = struct{}{}
}

// Ayudante2Cleared returns if the "ayudante2" field was cleared in this mutation.
func (m *FojaMutation) Ayudante2Cleared() bool {
	_, ok := m.clearedFields[foja.FieldAyudante2]
	return ok
}

// ResetAyudante2 resets all changes to the "ayudante2" field.
func (m *FojaMutation) ResetAyudante2() {
	m.ayudante2 = nil
	delete(m.clearedFields, foja.FieldAyudante2)
}

// SetAyudante3 sets the "ayudante3" field.
func (m *FojaMutation) SetAyudante3(s string) {
	m.ayudante3 = &s
}

// Ayudante3 returns the value of the "ayudante3" field in the mutation.
func (m *FojaMutation) Ayudante3() (r string, exists bool) {
	v := m.ayudante3
	if v == nil {
		return
	}
	return *v, true
}

// OldAyudante3 returns the old "ayudante3" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAyudante3(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAyudante3 is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAyudante3 requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAyudante3: %w", err)
	}
	return oldValue.Ayudante3, nil
}

// ClearAyudante3 clears the value of the "ayudante3" field.
func (m *FojaMutation) ClearAyudante3() {
	m.ayudante3 = nil
	m.clearedFields[foja.FieldAyudante3] = struct{}{}
}

// Ayudante3Cleared returns if the "ayudante3" field was cleared in this mutation.
func (m *FojaMutation) Ayudante3Cleared() bool {
	_, ok := m.clearedFields[foja.FieldAyudante3]
	return ok
}

// ResetAyudante3 resets all changes to the "ayudante3" field.
func (m *FojaMutation) ResetAyudante3() {
	m.ayudante3 = nil
	delete(m.clearedFields, foja.FieldAyudante3)
}

// SetAnestesiologo sets the "anestesiologo" field.
func (m *FojaMutation) SetAnestesiologo(s string) {
	m.anestesiologo = &s
}

// Anestesiologo returns the value of the "anestesiologo" field in the mutation.
func (m *FojaMutation) Anestesiologo() (r string, exists bool) {
	v := m.anestesiologo
	if v == nil {
		return
	}
	return *v, true
}

// OldAnestesiologo returns the old "anestesiologo" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAnestesiologo(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnestesiologo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnestesiologo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnestesiologo: %w", err)
	}
	return oldValue.Anestesiologo, nil
}

// ClearAnestesiologo clears the value of the "anestesiologo" field.
func (m *FojaMutation) ClearAnestesiologo() {
	m.anestesiologo = nil
	m.clearedFields[foja.FieldAnestesiologo] = struct{}{}
}

// AnestesiologoCleared returns if the "anestesiologo" field was cleared in this mutation.
func (m *FojaMutation) AnestesiologoCleared() bool {
	_, ok := m.clearedFields[foja.FieldAnestesiologo]
	return ok
}

// ResetAnestesiologo resets all changes to the "anestesiologo" field.
func (m *FojaMutation) ResetAnestesiologo() {
	m.anestesiologo = nil
	delete(m.clearedFields, foja.FieldAnestesiologo)
}

// SetAnestesia sets the "anestesia" field.
func (m *FojaMutation) SetAnestesia(f foja.Anestesia) {
	m.anestesia = &f
}

// Anestesia returns the value of the "anestesia" field in the mutation.
func (m *FojaMutation) Anestesia() (r foja.Anestesia, exists bool) {
	v := m.anestesia
	if v == nil {
		return
	}
	return *v, true
}

// OldAnestesia returns the old "anestesia" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAnestesia(ctx context.Context) (v foja.Anestesia, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnestesia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnestesia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnestesia: %w", err)
	}
	return oldValue.Anestesia, nil
}

// ResetAnestesia resets all changes to the "anestesia" field.
func (m *FojaMutation) ResetAnestesia() {
	m.anestesia = nil
}

// SetInstrumentador sets the "instrumentador" field.
func (m *FojaMutation) SetInstrumentador(s string) {
	m.instrumentador = &s
}

// Instrumentador returns the value of the "instrumentador" field in the mutation.
func (m *FojaMutation) Instrumentador() (r string, exists bool) {
	v := m.instrumentador
	if v == nil {
		return
	}
	return *v, true
}

// OldInstrumentador returns the old "instrumentador" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldInstrumentador(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstrumentador is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstrumentador requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstrumentador: %w", err)
	}
	return oldValue.Instrumentador, nil
}

// ClearInstrumentador clears the value of the "instrumentador" field.
func (m *FojaMutation) ClearInstrumentador() {
	m.instrumentador = nil
	m.clearedFields[foja.FieldInstrumentador] = struct{}{}
}

// InstrumentadorCleared returns if the "instrumentador" field was cleared in this mutation.
func (m *FojaMutation) InstrumentadorCleared() bool {
	_, ok := m.clearedFields[foja.FieldInstrumentador]
	return ok
}

// ResetInstrumentador resets all changes to the "instrumentador" field.
func (m *FojaMutation) ResetInstrumentador() {
	m.instrumentador = nil
	delete(m.clearedFields, foja.FieldInstrumentador)
}

// SetRiesgoQuirurgico sets the "riesgo_quirurgico" field.
func (m *FojaMutation) SetRiesgoQuirurgico(fq foja.RiesgoQuirurgico) {
	m.riesgo_quirurgico = &fq
}

// RiesgoQuirurgico returns the value of the "riesgo_quirurgico" field in the mutation.
func (m *FojaMutation) RiesgoQuirurgico() (r foja.RiesgoQuirurgico, exists bool) {
	v := m.riesgo_quirurgico
	if v == nil {
		return
	}
	return *v, true
}

// OldRiesgoQuirurgico returns the old "riesgo_quirurgico" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldRiesgoQuirurgico(ctx context.Context) (v foja.RiesgoQuirurgico, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRiesgoQuirurgico is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRiesgoQuirurgico requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRiesgoQuirurgico: %w", err)
	}
	return oldValue.RiesgoQuirurgico, nil
}

// ResetRiesgoQuirurgico resets all changes to the "riesgo_quirurgico" field.
func (m *FojaMutation) ResetRiesgoQuirurgico() {
	m.riesgo_quirurgico = nil
}

// SetDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field.
func (m *FojaMutation) SetDiagnosticoPreoperatorio(s string) {
	m.diagnostico_preoperatorio = &s
}

// DiagnosticoPreoperatorio returns the value of the "diagnostico_preoperatorio" field in the mutation.
func (m *FojaMutation) DiagnosticoPreoperatorio() (r string, exists bool) {
	v := m.diagnostico_preoperatorio
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosticoPreoperatorio returns the old "diagnostico_preoperatorio" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldDiagnosticoPreoperatorio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosticoPreoperatorio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosticoPreoperatorio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosticoPreoperatorio: %w", err)
	}
	return oldValue.DiagnosticoPreoperatorio, nil
}

// ResetDiagnosticoPreoperatorio resets all changes to the "diagnostico_preoperatorio" field.
func (m *FojaMutation) ResetDiagnosticoPreoperatorio() {
	m.diagnostico_preoperatorio = nil
}

// SetPlanQuirurgico sets the "plan_quirurgico" field.
func (m *FojaMutation) SetPlanQuirurgico(s string) {
	m.plan_quirurgico = &s
}

// PlanQuirurgico returns the value of the "plan_quirurgico" field in the mutation.
func (m *FojaMutation) PlanQuirurgico() (r string, exists bool) {
	v := m.plan_quirurgico
	if v == nil {
		return
	}
	return *v, true
}

// OldPlanQuirurgico returns the old "plan_quirurgico" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldPlanQuirurgico(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlanQuirurgico is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlanQuirurgico requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlanQuirurgico: %w", err)
	}
	return oldValue.PlanQuirurgico, nil
}

// ResetPlanQuirurgico resets all changes to the "plan_quirurgico" field.
func (m *FojaMutation) ResetPlanQuirurgico() {
	m.plan_quirurgico = nil
}

// SetDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field.
func (m *FojaMutation) SetDiagnosticoPostoperatorio(s string) {
	m.diagnostico_postoperatorio = &s
}

// DiagnosticoPostoperatorio returns the value of the "diagnostico_postoperatorio" field in the mutation.
func (m *FojaMutation) DiagnosticoPostoperatorio() (r string, exists bool) {
	v := m.diagnostico_postoperatorio
	if v == nil {
		return
	}
	return *v, true
}

// OldDiagnosticoPostoperatorio returns the old "diagnostico_postoperatorio" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldDiagnosticoPostoperatorio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiagnosticoPostoperatorio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiagnosticoPostoperatorio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiagnosticoPostoperatorio: %w", err)
	}
	return oldValue.DiagnosticoPostoperatorio, nil
}

// ResetDiagnosticoPostoperatorio resets all changes to the "diagnostico_postoperatorio" field.
func (m *FojaMutation) ResetDiagnosticoPostoperatorio() {
	m.diagnostico_postoperatorio = nil
}

// SetOperacionRealizada sets the "operacion_realizada" field.
func (m *FojaMutation) SetOperacionRealizada(s string) {
	m.operacion_realizada = &s
}

// OperacionRealizada returns the value of the "operacion_realizada" field in the mutation.
func (m *FojaMutation) OperacionRealizada() (r string, exists bool) {
	v := m.operacion_realizada
	if v == nil {
		return
	}
	return *v, true
}

// OldOperacionRealizada returns the old "operacion_realizada" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldOperacionRealizada(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOperacionRealizada is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOperacionRealizada requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOperacionRealizada: %w", err)
	}
	return oldValue.OperacionRealizada, nil
}

// ResetOperacionRealizada resets all changes to the "operacion_realizada" field.
func (m *FojaMutation) ResetOperacionRealizada() {
	m.operacion_realizada = nil
}

// SetAnatomiaPatologica sets the "anatomia_patologica" field.
func (m *FojaMutation) SetAnatomiaPatologica(s string) {
	m.anatomia_patologica = &s
}

// AnatomiaPatologica returns the value of the "anatomia_patologica" field in the mutation.
func (m *FojaMutation) AnatomiaPatologica() (r string, exists bool) {
	v := m.anatomia_patologica
	if v == nil {
		return
	}
	return *v, true
}

// OldAnatomiaPatologica returns the old "anatomia_patologica" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldAnatomiaPatologica(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnatomiaPatologica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnatomiaPatologica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnatomiaPatologica: %w", err)
	}
	return oldValue.AnatomiaPatologica, nil
}

// ClearAnatomiaPatologica clears the value of the "anatomia_patologica" field.
func (m *FojaMutation) ClearAnatomiaPatologica() {
	m.anatomia_patologica = nil
	m.clearedFields[foja.FieldAnatomiaPatologica] = struct{}{}
}

// AnatomiaPatologicaCleared returns if the "anatomia_patologica" field was cleared in this mutation.
func (m *FojaMutation) AnatomiaPatologicaCleared() bool {
	_, ok := m.clearedFields[foja.FieldAnatomiaPatologica]
	return ok
}

// ResetAnatomiaPatologica resets all changes to the "anatomia_patologica" field.
func (m *FojaMutation) ResetAnatomiaPatologica() {
	m.anatomia_patologica = nil
	delete(m.clearedFields, foja.FieldAnatomiaPatologica)
}

// SetDescripcionTecnica sets the "descripcion_tecnica" field.
func (m *FojaMutation) SetDescripcionTecnica(s string) {
	m.descripcion_tecnica = &s
}

// DescripcionTecnica returns the value of the "descripcion_tecnica" field in the mutation.
func (m *FojaMutation) DescripcionTecnica() (r string, exists bool) {
	v := m.descripcion_tecnica
	if v == nil {
		return
	}
	return *v, true
}

// OldDescripcionTecnica returns the old "descripcion_tecnica" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldDescripcionTecnica(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescripcionTecnica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescripcionTecnica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescripcionTecnica: %w", err)
	}
	return oldValue.DescripcionTecnica, nil
}

// ResetDescripcionTecnica resets all changes to the "descripcion_tecnica" field.
func (m *FojaMutation) ResetDescripcionTecnica() {
	m.descripcion_tecnica = nil
}

// SetMedicoResponsable sets the "medico_responsable" field.
func (m *FojaMutation) SetMedicoResponsable(u uuid.UUID) {
	m.responsable = &u
}

// MedicoResponsable returns the value of the "medico_responsable" field in the mutation.
func (m *FojaMutation) MedicoResponsable() (r uuid.UUID, exists bool) {
	v := m.responsable
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicoResponsable returns the old "medico_responsable" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldMedicoResponsable(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicoResponsable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicoResponsable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicoResponsable: %w", err)
	}
	return oldValue.MedicoResponsable, nil
}

// ResetMedicoResponsable resets all changes to the "medico_responsable" field.
func (m *FojaMutation) ResetMedicoResponsable() {
	m.responsable = nil
}

// SetMedicoResponsableNombre sets the "medico_responsable_nombre" field.
func (m *FojaMutation) SetMedicoResponsableNombre(s string) {
	m.medico_responsable_nombre = &s
}

// MedicoResponsableNombre returns the value of the "medico_responsable_nombre" field in the mutation.
func (m *FojaMutation) MedicoResponsableNombre() (r string, exists bool) {
	v := m.medico_responsable_nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldMedicoResponsableNombre returns the old "medico_responsable_nombre" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldMedicoResponsableNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedicoResponsableNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedicoResponsableNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedicoResponsableNombre: %w", err)
	}
	return oldValue.MedicoResponsableNombre, nil
}

// ResetMedicoResponsableNombre resets all changes to the "medico_responsable_nombre" field.
func (m *FojaMutation) ResetMedicoResponsableNombre() {
	m.medico_responsable_nombre = nil
}

// SetInvalida sets the "invalida" field.
func (m *FojaMutation) SetInvalida(b bool) {
	m.invalida = &b
}

// Invalida returns the value of the "invalida" field in the mutation.
func (m *FojaMutation) Invalida() (r bool, exists bool) {
	v := m.invalida
	if v == nil {
		return
	}
	return *v, true
}

// OldInvalida returns the old "invalida" field's value of the Foja entity.
// If the Foja object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FojaMutation) OldInvalida(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvalida is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvalida requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvalida: %w", err)
	}
	return oldValue.Invalida, nil
}

// ResetInvalida resets all changes to the "invalida" field.
func (m *FojaMutation) ResetInvalida() {
	m.invalida = nil
}

// SetResponsableID sets the "responsable" edge to the Usuario entity by id.
func (m *FojaMutation) SetResponsableID(id uuid.UUID) {
	m.responsable = &id
}

// ClearResponsable clears the "responsable" edge to the Usuario entity.
func (m *FojaMutation) ClearResponsable() {
	m.clearedresponsable = true
	m.clearedFields[foja.FieldMedicoResponsable] = struct{}{}
}

// ResponsableCleared reports if the "responsable" edge to the Usuario entity was cleared.
func (m *FojaMutation) ResponsableCleared() bool {
	return m.clearedresponsable
}

// ResponsableID returns the "responsable" edge ID in the mutation.
func (m *FojaMutation) ResponsableID() (id uuid.UUID, exists bool) {
	if m.responsable != nil {
		return *m.responsable, true
	}
	return
}

// ResponsableIDs returns the "responsable" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResponsableID instead. It exists only for internal usage by the builders.
func (m *FojaMutation) ResponsableIDs() (ids []uuid.UUID) {
	if id := m.responsable; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResponsable resets all changes to the "responsable" edge.
func (m *FojaMutation) ResetResponsable() {
	m.responsable = nil
	m.clearedresponsable = false
}

// Where appends a list predicates to the FojaMutation builder.
func (m *FojaMutation) Where(ps ...predicate.Foja) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FojaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FojaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Foja, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FojaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FojaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Foja).
func (m *FojaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FojaMutation) Fields() []string {
	fields := make([]string, 0, 24)
	if m.created_at != nil {
		fields = append(fields, foja.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, foja.FieldUpdatedAt)
	}
	if m.nombre_paciente != nil {
		fields = append(fields, foja.FieldNombrePaciente)
	}
	if m.num_historia_clinica != nil {
		fields = append(fields, foja.FieldNumHistoriaClinica)
	}
	if m.fecha_nacimiento != nil {
		fields = append(fields, foja.FieldFechaNacimiento)
	}
	if m.dni != nil {
		fields = append(fields, foja.FieldDni)
	}
	if m.fecha != nil {
		fields = append(fields, foja.FieldFecha)
	}
	if m.cirujano != nil {
		fields = append(fields, foja.FieldCirujano)
	}
	if m.ayudante1 != nil {
		fields = append(fields, foja.FieldAyudante1)
	}
	if m.ayudante2 != nil {
		fields = append(fields, foja.FieldAyudante2)
	}
	if m.ayudante3 != nil {
		fields = append(fields, foja.FieldAyudante3)
	}
	if m.anestesiologo != nil {
		fields = append(fields, foja.FieldAnestesiologo)
	}
	if m.anestesia != nil {
		fields = append(fields, foja.FieldAnestesia)
	}
	if m.instrumentador != nil {
		fields = append(fields, foja.FieldInstrumentador)
	}
	if m.riesgo_quirurgico != nil {
		fields = append(fields, foja.FieldRiesgoQuirurgico)
	}
	if m.diagnostico_preoperatorio != nil {
		fields = append(fields, foja.FieldDiagnosticoPreoperatorio)
	}
	if m.plan_quirurgico != nil {
		fields = append(fields, foja.FieldPlanQuirurgico)
	}
	if m.diagnostico_postoperatorio != nil {
		fields = append(fields, foja.FieldDiagnosticoPostoperatorio)
	}
	if m.operacion_realizada != nil {
		fields = append(fields, foja.FieldOperacionRealizada)
	}
	if m.anatomia_patologica != nil {
		fields = append(fields, foja.FieldAnatomiaPatologica)
	}
	if m.descripcion_tecnica != nil {
		fields = append(fields, foja.FieldDescripcionTecnica)
	}
	if m.responsable != nil {
		fields = append(fields, foja.FieldMedicoResponsable)
	}
	if m.medico_responsable_nombre != nil {
		fields = append(fields, foja.FieldMedicoResponsableNombre)
	}
	if m.invalida != nil {
		fields = append(fields, foja.FieldInvalida)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FojaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case foja.FieldCreatedAt:
		return m.CreatedAt()
	case foja.FieldUpdatedAt:
		return m.UpdatedAt()
	case foja.FieldNombrePaciente:
		return m.NombrePaciente()
	case foja.FieldNumHistoriaClinica:
		return m.NumHistoriaClinica()
	case foja.FieldFechaNacimiento:
		return m.FechaNacimiento()
	case foja.FieldDni:
		return m.Dni()
	case foja.FieldFecha:
		return m.Fecha()
	case foja.FieldCirujano:
		return m.Cirujano()
	case foja.FieldAyudante1:
		return m.Ayudante1()
	case foja.FieldAyudante2:
		return m.Ayudante2()
	case foja.FieldAyudante3:
		return m.Ayudante3()
	case foja.FieldAnestesiologo:
		return m.Anestesiologo()
	case foja.FieldAnestesia:
		return m.Anestesia()
	case foja.FieldInstrumentador:
		return m.Instrumentador()
	case foja.FieldRiesgoQuirurgico:
		return m.RiesgoQuirurgico()
	case foja.FieldDiagnosticoPreoperatorio:
		return m.DiagnosticoPreoperatorio()
	case foja.FieldPlanQuirurgico:
		return m.PlanQuirurgico()
	case foja.FieldDiagnosticoPostoperatorio:
		return m.DiagnosticoPostoperatorio()
	case foja.FieldOperacionRealizada:
		return m.OperacionRealizada()
	case foja.FieldAnatomiaPatologica:
		return m.AnatomiaPatologica()
	case foja.FieldDescripcionTecnica:
		return m.DescripcionTecnica()
	case foja.FieldMedicoResponsable:
		return m.MedicoResponsable()
	case foja.FieldMedicoResponsableNombre:
		return m.MedicoResponsableNombre()
	case foja.FieldInvalida:
		return m.Invalida()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FojaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case foja.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case foja.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case foja.FieldNombrePaciente:
		return m.OldNombrePaciente(ctx)
	case foja.FieldNumHistoriaClinica:
		return m.OldNumHistoriaClinica(ctx)
	case foja.FieldFechaNacimiento:
		return m.OldFechaNacimiento(ctx)
	case foja.FieldDni:
		return m.OldDni(ctx)
	case foja.FieldFecha:
		return m.OldFecha(ctx)
	case foja.FieldCirujano:
		return m.OldCirujano(ctx)
	case foja.FieldAyudante1:
		return m.OldAyudante1(ctx)
	case foja.FieldAyudante2:
		return m.OldAyudante2(ctx)
	case foja.FieldAyudante3:
		return m.OldAyudante3(ctx)
	case foja.FieldAnestesiologo:
		return m.OldAnestesiologo(ctx)
	case foja.FieldAnestesia:
		return m.OldAnestesia(ctx)
	case foja.FieldInstrumentador:
		return m.OldInstrumentador(ctx)
	case foja.FieldRiesgoQuirurgico:
		return m.OldRiesgoQuirurgico(ctx)
	case foja.FieldDiagnosticoPreoperatorio:
		return m.OldDiagnosticoPreoperatorio(ctx)
	case foja.FieldPlanQuirurgico:
		return m.OldPlanQuirurgico(ctx)
	case foja.FieldDiagnosticoPostoperatorio:
		return m.OldDiagnosticoPostoperatorio(ctx)
	case foja.FieldOperacionRealizada:
		return m.OldOperacionRealizada(ctx)
	case foja.FieldAnatomiaPatologica:
		return m.OldAnatomiaPatologica(ctx)
	case foja.FieldDescripcionTecnica:
		return m.OldDescripcionTecnica(ctx)
	case foja.FieldMedicoResponsable:
		return m.OldMedicoResponsable(ctx)
	case foja.FieldMedicoResponsableNombre:
		return m.OldMedicoResponsableNombre(ctx)
	case foja.FieldInvalida:
		return m.OldInvalida(ctx)
	}
	return nil, fmt.Errorf("unknown Foja field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FojaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case foja.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case foja.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case foja.FieldNombrePaciente:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombrePaciente(v)
		return nil
	case foja.FieldNumHistoriaClinica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumHistoriaClinica(v)
		return nil
	case foja.FieldFechaNacimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaNacimiento(v)
		return nil
	case foja.FieldDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDni(v)
		return nil
	case foja.FieldFecha:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFecha(v)
		return nil
	case foja.FieldCirujano:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCirujano(v)
		return nil
	case foja.FieldAyudante1:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAyudante1(v)
		return nil
	case foja.FieldAyudante2:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAyudante2(v)
		return nil
	case foja.FieldAyudante3:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAyudante3(v)
		return nil
	case foja.FieldAnestesiologo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnestesiologo(v)
		return nil
	case foja.FieldAnestesia:
		v, ok := value.(foja.Anestesia)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnestesia(v)
		return nil
	case foja.FieldInstrumentador:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstrumentador(v)
		return nil
	case foja.FieldRiesgoQuirurgico:
		v, ok := value.(foja.RiesgoQuirurgico)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRiesgoQuirurgico(v)
		return nil
	case foja.FieldDiagnosticoPreoperatorio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosticoPreoperatorio(v)
		return nil
	case foja.FieldPlanQuirurgico:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlanQuirurgico(v)
		return nil
	case foja.FieldDiagnosticoPostoperatorio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiagnosticoPostoperatorio(v)
		return nil
	case foja.FieldOperacionRealizada:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOperacionRealizada(v)
		return nil
	case foja.FieldAnatomiaPatologica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnatomiaPatologica(v)
		return nil
	case foja.FieldDescripcionTecnica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescripcionTecnica(v)
		return nil
	case foja.FieldMedicoResponsable:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicoResponsable(v)
		return nil
	case foja.FieldMedicoResponsableNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedicoResponsableNombre(v)
		return nil
	case foja.FieldInvalida:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvalida(v)
		return nil
	}
	return fmt.Errorf("unknown Foja field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FojaMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FojaMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FojaMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Foja numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FojaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(foja.FieldFechaNacimiento) {
		fields = append(fields, foja.FieldFechaNacimiento)
	}
	if m.FieldCleared(foja.FieldDni) {
		fields = append(fields, foja.FieldDni)
	}
	if m.FieldCleared(foja.FieldAyudante1) {
		fields = append(fields, foja.FieldAyudante1)
	}
	if m.FieldCleared(foja.FieldAyudante2) {
		fields = append(fields, foja.FieldAyudante2)
	}
	if m.FieldCleared(foja.FieldAyudante3) {
		fields = append(fields, foja.FieldAyudante3)
	}
	if m.FieldCleared(foja.FieldAnestesiologo) {
		fields = append(fields, foja.FieldAnestesiologo)
	}
	if m.FieldCleared(foja.FieldInstrumentador) {
		fields = append(fields, foja.FieldInstrumentador)
	}
	if m.FieldCleared(foja.FieldAnatomiaPatologica) {
		fields = append(fields, foja.FieldAnatomiaPatologica)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FojaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FojaMutation) ClearField(name string) error {
	switch name {
	case foja.FieldFechaNacimiento:
		m.ClearFechaNacimiento()
		return nil
	case foja.FieldDni:
		m.ClearDni()
		return nil
	case foja.FieldAyudante1:
		m.ClearAyudante1()
		return nil
	case foja.FieldAyudante2:
		m.ClearAyudante2()
		return nil
	case foja.FieldAyudante3:
		m.ClearAyudante3()
		return nil
	case foja.FieldAnestesiologo:
		m.ClearAnestesiologo()
		return nil
	case foja.FieldInstrumentador:
		m.ClearInstrumentador()
		return nil
	case foja.FieldAnatomiaPatologica:
		m.ClearAnatomiaPatologica()
		return nil
	}
	return fmt.Errorf("unknown Foja nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FojaMutation) ResetField(name string) error {
	switch name {
	case foja.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case foja.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case foja.FieldNombrePaciente:
		m.ResetNombrePaciente()
		return nil
	case foja.FieldNumHistoriaClinica:
		m.ResetNumHistoriaClinica()
		return nil
	case foja.FieldFechaNacimiento:
		m.ResetFechaNacimiento()
		return nil
	case foja.FieldDni:
		m.ResetDni()
		return nil
	case foja.FieldFecha:
		m.ResetFecha()
		return nil
	case foja.FieldCirujano:
		m.ResetCirujano()
		return nil
	case foja.FieldAyudante1:
		m.ResetAyudante1()
		return nil
	case foja.FieldAyudante2:
		m.ResetAyudante2()
		return nil
	case foja.FieldAyudante3:
		m.ResetAyudante3()
		return nil
	case foja.FieldAnestesiologo:
		m.ResetAnestesiologo()
		return nil
	case foja.FieldAnestesia:
		m.ResetAnestesia()
		return nil
	case foja.FieldInstrumentador:
		m.ResetInstrumentador()
		return nil
	case foja.FieldRiesgoQuirurgico:
		m.ResetRiesgoQuirurgico()
		return nil
	case foja.FieldDiagnosticoPreoperatorio:
		m.ResetDiagnosticoPreoperatorio()
		return nil
	case foja.FieldPlanQuirurgico:
		m.ResetPlanQuirurgico()
		return nil
	case foja.FieldDiagnosticoPostoperatorio:
		m.ResetDiagnosticoPostoperatorio()
		return nil
	case foja.FieldOperacionRealizada:
		m.ResetOperacionRealizada()
		return nil
	case foja.FieldAnatomiaPatologica:
		m.ResetAnatomiaPatologica()
		return nil
	case foja.FieldDescripcionTecnica:
		m.ResetDescripcionTecnica()
		return nil
	case foja.FieldMedicoResponsable:
		m.ResetMedicoResponsable()
		return nil
	case foja.FieldMedicoResponsableNombre:
		m.ResetMedicoResponsableNombre()
		return nil
	case foja.FieldInvalida:
		m.ResetInvalida()
		return nil
	}
	return fmt.Errorf("unknown Foja field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FojaMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.responsable != nil {
		edges = append(edges, foja.EdgeResponsable)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FojaMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case foja.EdgeResponsable:
		if id := m.responsable; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FojaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FojaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FojaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedresponsable {
		edges = append(edges, foja.EdgeResponsable)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FojaMutation) EdgeCleared(name string) bool {
	switch name {
	case foja.EdgeResponsable:
		return m.clearedresponsable
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FojaMutation) ClearEdge(name string) error {
	switch name {
	case foja.EdgeResponsable:
		m.ClearResponsable()
		return nil
	}
	return fmt.Errorf("unknown Foja unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FojaMutation) ResetEdge(name string) error {
	switch name {
	case foja.EdgeResponsable:
		m.ResetResponsable()
		return nil
	}
	return fmt.Errorf("unknown Foja edge %s", name)
}

// PacienteMutation represents an operation that mutates the Paciente nodes in the graph.
type PacienteMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	created_at           *time.Time
	updated_at           *time.Time
	nombre               *string
	num_historia_clinica *string
	fecha_nacimiento     *time.Time
	genero               *string
	direccion            *string
	telefono             *string
	dni                  *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Paciente, error)
	predicates           []predicate.Paciente
}

var _ ent.Mutation = (*PacienteMutation)(nil)

// pacienteOption allows management of the mutation configuration using functional options.
type pacienteOption func(*PacienteMutation)

// newPacienteMutation creates new mutation for the Paciente entity.
func newPacienteMutation(c config, op Op, opts ...pacienteOption) *PacienteMutation {
	m := &PacienteMutation{
		config:        c,
		op:            op,
		typ:           TypePaciente,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPacienteID sets the ID field of the mutation.
func withPacienteID(id uuid.UUID) pacienteOption {
	return func(m *PacienteMutation) {
		var (
			err   error
			once  sync.Once
			value *Paciente
		)
		m.oldValue = func(ctx context.Context) (*Paciente, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paciente.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaciente sets the old Paciente of the mutation.
func withPaciente(node *Paciente) pacienteOption {
	return func(m *PacienteMutation) {
		m.oldValue = func(context.Context) (*Paciente, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PacienteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PacienteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paciente entities.
func (m *PacienteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PacienteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PacienteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paciente.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PacienteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PacienteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PacienteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PacienteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PacienteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PacienteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombre sets the "nombre" field.
func (m *PacienteMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *PacienteMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *PacienteMutation) ResetNombre() {
	m.nombre = nil
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (m *PacienteMutation) SetNumHistoriaClinica(s string) {
	m.num_historia_clinica = &s
}

// NumHistoriaClinica returns the value of the "num_historia_clinica" field in the mutation.
func (m *PacienteMutation) NumHistoriaClinica() (r string, exists bool) {
	v := m.num_historia_clinica
	if v == nil {
		return
	}
	return *v, true
}

// OldNumHistoriaClinica returns the old "num_historia_clinica" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldNumHistoriaClinica(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumHistoriaClinica is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumHistoriaClinica requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumHistoriaClinica: %w", err)
	}
	return oldValue.NumHistoriaClinica, nil
}

// ResetNumHistoriaClinica resets all changes to the "num_historia_clinica" field.
func (m *PacienteMutation) ResetNumHistoriaClinica() {
	m.num_historia_clinica = nil
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (m *PacienteMutation) SetFechaNacimiento(t time.Time) {
	m.fecha_nacimiento = &t
}

// FechaNacimiento returns the value of the "fecha_nacimiento" field in the mutation.
func (m *PacienteMutation) FechaNacimiento() (r time.Time, exists bool) {
	v := m.fecha_nacimiento
	if v == nil {
		return
	}
	return *v, true
}

// OldFechaNacimiento returns the old "fecha_nacimiento" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldFechaNacimiento(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFechaNacimiento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFechaNacimiento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFechaNacimiento: %w", err)
	}
	return oldValue.FechaNacimiento, nil
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (m *PacienteMutation) ClearFechaNacimiento() {
	m.fecha_nacimiento = nil
	m.clearedFields[paciente.FieldFechaNacimiento] = struct{}{}
}

// FechaNacimientoCleared returns if the "fecha_nacimiento" field was cleared in this mutation.
func (m *PacienteMutation) FechaNacimientoCleared() bool {
	_, ok := m.clearedFields[paciente.FieldFechaNacimiento]
	return ok
}

// ResetFechaNacimiento resets all changes to the "fecha_nacimiento" field.
func (m *PacienteMutation) ResetFechaNacimiento() {
	m.fecha_nacimiento = nil
	delete(m.clearedFields, paciente.FieldFechaNacimiento)
}

// SetGenero sets the "genero" field.
func (m *PacienteMutation) SetGenero(s string) {
	m.genero = &s
}

// Genero returns the value of the "genero" field in the mutation.
func (m *PacienteMutation) Genero() (r string, exists bool) {
	v := m.genero
	if v == nil {
		return
	}
	return *v, true
}

// OldGenero returns the old "genero" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldGenero(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenero is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenero requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenero: %w", err)
	}
	return oldValue.Genero, nil
}

// ClearGenero clears the value of the "genero" field.
func (m *PacienteMutation) ClearGenero() {
	m.genero = nil
	m.clearedFields[paciente.FieldGenero] = struct{}{}
}

// GeneroCleared returns if the "genero" field was cleared in this mutation.
func (m *PacienteMutation) GeneroCleared() bool {
	_, ok := m.clearedFields[paciente.FieldGenero]
	return ok
}

// ResetGenero resets all changes to the "genero" field.
func (m *PacienteMutation) ResetGenero() {
	m.genero = nil
	delete(m.clearedFields, paciente.FieldGenero)
}

// SetDireccion sets the "direccion" field.
func (m *PacienteMutation) SetDireccion(s string) {
	m.direccion = &s
}

// Direccion returns the value of the "direccion" field in the mutation.
func (m *PacienteMutation) Direccion() (r string, exists bool) {
	v := m.direccion
	if v == nil {
		return
	}
	return *v, true
}

// OldDireccion returns the old "direccion" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldDireccion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDireccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDireccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDireccion: %w", err)
	}
	return oldValue.Direccion, nil
}

// ClearDireccion clears the value of the "direccion" field.
func (m *PacienteMutation) ClearDireccion() {
	m.direccion = nil
	m.clearedFields[paciente.FieldDireccion] = struct{}{}
}

// DireccionCleared returns if the "direccion" field was cleared in this mutation.
func (m *PacienteMutation) DireccionCleared() bool {
	_, ok := m.clearedFields[paciente.FieldDireccion]
	return ok
}

// ResetDireccion resets all changes to the "direccion" field.
func (m *PacienteMutation) ResetDireccion() {
	m.direccion = nil
	delete(m.clearedFields, paciente.FieldDireccion)
}

// SetTelefono sets the "telefono" field.
func (m *PacienteMutation) SetTelefono(s string) {
	m.telefono = &s
}

// Telefono returns the value of the "telefono" field in the mutation.
func (m *PacienteMutation) Telefono() (r string, exists bool) {
	v := m.telefono
	if v == nil {
		return
	}
	return *v, true
}

// OldTelefono returns the old "telefono" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldTelefono(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTelefono is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTelefono requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTelefono: %w", err)
	}
	return oldValue.Telefono, nil
}

// ClearTelefono clears the value of the "telefono" field.
func (m *PacienteMutation) ClearTelefono() {
	m.telefono = nil
	m.clearedFields[paciente.FieldTelefono] = struct{}{}
}

// TelefonoCleared returns if the "telefono" field was cleared in this mutation.
func (m *PacienteMutation) TelefonoCleared() bool {
	_, ok := m.clearedFields[paciente.FieldTelefono]
	return ok
}

// ResetTelefono resets all changes to the "telefono" field.
func (m *PacienteMutation) ResetTelefono() {
	m.telefono = nil
	delete(m.clearedFields, paciente.FieldTelefono)
}

// SetDni sets the "dni" field.
func (m *PacienteMutation) SetDni(s string) {
	m.dni = &s
}

// Dni returns the value of the "dni" field in the mutation.
func (m *PacienteMutation) Dni() (r string, exists bool) {
	v := m.dni
	if v == nil {
		return
	}
	return *v, true
}

// OldDni returns the old "dni" field's value of the Paciente entity.
// If the Paciente object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PacienteMutation) OldDni(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDni: %w", err)
	}
	return oldValue.Dni, nil
}

// ClearDni clears the value of the "dni" field.
func (m *PacienteMutation) ClearDni() {
	m.dni = nil
	m.clearedFields[paciente.FieldDni] = struct{}{}
}

// DniCleared returns if the "dni" field was cleared in this mutation.
func (m *PacienteMutation) DniCleared() bool {
	_, ok := m.clearedFields[paciente.FieldDni]
	return ok
}

// ResetDni resets all changes to the "dni" field.
func (m *PacienteMutation) ResetDni() {
	m.dni = nil
	delete(m.clearedFields, paciente.FieldDni)
}

// Where appends a list predicates to the PacienteMutation builder.
func (m *PacienteMutation) Where(ps ...predicate.Paciente) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PacienteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PacienteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paciente, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PacienteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PacienteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paciente).
func (m *PacienteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PacienteMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, paciente.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, paciente.FieldUpdatedAt)
	}
	if m.nombre != nil {
		fields = append(fields, paciente.FieldNombre)
	}
	if m.num_historia_clinica != nil {
		fields = append(fields, paciente.FieldNumHistoriaClinica)
	}
	if m.fecha_nacimiento != nil {
		fields = append(fields, paciente.FieldFechaNacimiento)
	}
	if m.genero != nil {
		fields = append(fields, paciente.FieldGenero)
	}
	if m.direccion != nil {
		fields = append(fields, paciente.FieldDireccion)
	}
	if m.telefono != nil {
		fields = append(fields, paciente.FieldTelefono)
	}
	if m.dni != nil {
		fields = append(fields, paciente.FieldDni)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PacienteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paciente.FieldCreatedAt:
		return m.CreatedAt()
	case paciente.FieldUpdatedAt:
		return m.UpdatedAt()
	case paciente.FieldNombre:
		return m.Nombre()
	case paciente.FieldNumHistoriaClinica:
		return m.NumHistoriaClinica()
	case paciente.FieldFechaNacimiento:
		return m.FechaNacimiento()
	case paciente.FieldGenero:
		return m.Genero()
	case paciente.FieldDireccion:
		return m.Direccion()
	case paciente.FieldTelefono:
		return m.Telefono()
	case paciente.FieldDni:
		return m.Dni()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PacienteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paciente.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case paciente.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case paciente.FieldNombre:
		return m.OldNombre(ctx)
	case paciente.FieldNumHistoriaClinica:
		return m.OldNumHistoriaClinica(ctx)
	case paciente.FieldFechaNacimiento:
		return m.OldFechaNacimiento(ctx)
	case paciente.FieldGenero:
		return m.OldGenero(ctx)
	case paciente.FieldDireccion:
		return m.OldDireccion(ctx)
	case paciente.FieldTelefono:
		return m.OldTelefono(ctx)
	case paciente.FieldDni:
		return m.OldDni(ctx)
	}
	return nil, fmt.Errorf("unknown Paciente field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PacienteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paciente.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case paciente.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case paciente.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case paciente.FieldNumHistoriaClinica:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumHistoriaClinica(v)
		return nil
	case paciente.FieldFechaNacimiento:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFechaNacimiento(v)
		return nil
	case paciente.FieldGenero:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenero(v)
		return nil
	case paciente.FieldDireccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDireccion(v)
		return nil
	case paciente.FieldTelefono:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTelefono(v)
		return nil
	case paciente.FieldDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDni(v)
		return nil
	}
	return fmt.Errorf("unknown Paciente field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PacienteMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PacienteMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PacienteMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Paciente numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PacienteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paciente.FieldFechaNacimiento) {
		fields = append(fields, paciente.FieldFechaNacimiento)
	}
	if m.FieldCleared(paciente.FieldGenero) {
		fields = append(fields, paciente.FieldGenero)
	}
	if m.FieldCleared(paciente.FieldDireccion) {
		fields = append(fields, paciente.FieldDireccion)
	}
	if m.FieldCleared(paciente.FieldTelefono) {
		fields = append(fields, paciente.FieldTelefono)
	}
	if m.FieldCleared(paciente.FieldDni) {
		fields = append(fields, paciente.FieldDni)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PacienteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PacienteMutation) ClearField(name string) error {
	switch name {
	case paciente.FieldFechaNacimiento:
		m.ClearFechaNacimiento()
		return nil
	case paciente.FieldGenero:
		m.ClearGenero()
		return nil
	case paciente.FieldDireccion:
		m.ClearDireccion()
		return nil
	case paciente.FieldTelefono:
		m.ClearTelefono()
		return nil
	case paciente.FieldDni:
		m.ClearDni()
		return nil
	}
	return fmt.Errorf("unknown Paciente nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PacienteMutation) ResetField(name string) error {
	switch name {
	case paciente.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case paciente.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case paciente.FieldNombre:
		m.ResetNombre()
		return nil
	case paciente.FieldNumHistoriaClinica:
		m.ResetNumHistoriaClinica()
		return nil
	case paciente.FieldFechaNacimiento:
		m.ResetFechaNacimiento()
		return nil
	case paciente.FieldGenero:
		m.ResetGenero()
		return nil
	case paciente.FieldDireccion:
		m.ResetDireccion()
		return nil
	case paciente.FieldTelefono:
		m.ResetTelefono()
		return nil
	case paciente.FieldDni:
		m.ResetDni()
		return nil
	}
	return fmt.Errorf("unknown Paciente field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PacienteMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PacienteMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PacienteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PacienteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PacienteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PacienteMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PacienteMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Paciente unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PacienteMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Paciente edge %s", name)
}

// UsuarioMutation represents an operation that mutates the Usuario nodes in the graph.
type UsuarioMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	nombre                   *string
	email                    *string
	dni                      *string
	rol                      *string
	habilitado               *bool
	password_hash            *string
	must_change_password     *bool
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*Usuario, error)
	predicates               []predicate.Usuario
}

var _ ent.Mutation = (*UsuarioMutation)(nil)

// usuarioOption allows management of the mutation configuration using functional options.
type usuarioOption func(*UsuarioMutation)

// newUsuarioMutation creates new mutation for the Usuario entity.
func newUsuarioMutation(c config, op Op, opts ...usuarioOption) *UsuarioMutation {
	m := &UsuarioMutation{
		config:        c,
		op:            op,
		typ:           TypeUsuario,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUsuarioID sets the ID field of the mutation.
func withUsuarioID(id uuid.UUID) usuarioOption {
	return func(m *UsuarioMutation) {
		var (
			err   error
			once  sync.Once
			value *Usuario
		)
		m.oldValue = func(ctx context.Context) (*Usuario, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Usuario.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUsuario sets the old Usuario of the mutation.
func withUsuario(node *Usuario) usuarioOption {
	return func(m *UsuarioMutation) {
		m.oldValue = func(context.Context) (*Usuario, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UsuarioMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UsuarioMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Usuario entities.
func (m *UsuarioMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UsuarioMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UsuarioMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Usuario.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UsuarioMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UsuarioMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UsuarioMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UsuarioMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UsuarioMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UsuarioMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetNombre sets the "nombre" field.
func (m *UsuarioMutation) SetNombre(s string) {
	m.nombre = &s
}

// Nombre returns the value of the "nombre" field in the mutation.
func (m *UsuarioMutation) Nombre() (r string, exists bool) {
	v := m.nombre
	if v == nil {
		return
	}
	return *v, true
}

// OldNombre returns the old "nombre" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldNombre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombre: %w", err)
	}
	return oldValue.Nombre, nil
}

// ResetNombre resets all changes to the "nombre" field.
func (m *UsuarioMutation) ResetNombre() {
	m.nombre = nil
}

// SetEmail sets the "email" field.
func (m *UsuarioMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UsuarioMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UsuarioMutation) ResetEmail() {
	m.email = nil
}

// SetDni sets the "dni" field.
func (m *UsuarioMutation) SetDni(s string) {
	m.dni = &s
}

// Dni returns the value of the "dni" field in the mutation.
func (m *UsuarioMutation) Dni() (r string, exists bool) {
	v := m.dni
	if v == nil {
		return
	}
	return *v, true
}

// OldDni returns the old "dni" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldDni(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDni: %w", err)
	}
	return oldValue.Dni, nil
}

// ClearDni clears the value of the "dni" field.
func (m *UsuarioMutation) ClearDni() {
	m.dni = nil
	m.clearedFields[usuario.FieldDni] = struct{}{}
}

// DniCleared returns if the "dni" field was cleared in this mutation.
func (m *UsuarioMutation) DniCleared() bool {
	_, ok := m.clearedFields[usuario.FieldDni]
	return ok
}

// ResetDni resets all changes to the "dni" field.
func (m *UsuarioMutation) ResetDni() {
	m.dni = nil
	delete(m.clearedFields, usuario.FieldDni)
}

// SetRol sets the "rol" field.
func (m *UsuarioMutation) SetRol(s string) {
	m.rol = &s
}

// Rol returns the value of the "rol" field in the mutation.
func (m *UsuarioMutation) Rol() (r string, exists bool) {
	v := m.rol
	if v == nil {
		return
	}
	return *v, true
}

// OldRol returns the old "rol" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldRol(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRol is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRol requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRol: %w", err)
	}
	return oldValue.Rol, nil
}

// ClearRol clears the value of the "rol" field.
func (m *UsuarioMutation) ClearRol() {
	m.rol = nil
	m.clearedFields[usuario.FieldRol] = struct{}{}
}

// RolCleared returns if the "rol" field was cleared in this mutation.
func (m *UsuarioMutation) RolCleared() bool {
	_, ok := m.clearedFields[usuario.FieldRol]
	return ok
}

// ResetRol resets all changes to the "rol" field.
func (m *UsuarioMutation) ResetRol() {
	m.rol = nil
	delete(m.clearedFields, usuario.FieldRol)
}

// SetHabilitado sets the "habilitado" field.
func (m *UsuarioMutation) SetHabilitado(b bool) {
	m.habilitado = &b
}

// Habilitado returns the value of the "habilitado" field in the mutation.
func (m *UsuarioMutation) Habilitado() (r bool, exists bool) {
	v := m.habilitado
	if v == nil {
		return
	}
	return *v, true
}

// OldHabilitado returns the old "habilitado" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldHabilitado(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHabilitado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHabilitado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHabilitado: %w", err)
	}
	return oldValue.Habilitado, nil
}

// ResetHabilitado resets all changes to the "habilitado" field.
func (m *UsuarioMutation) ResetHabilitado() {
	m.habilitado = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UsuarioMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UsuarioMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldPasswordHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UsuarioMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[usuario.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UsuarioMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[usuario.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UsuarioMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, usuario.FieldPasswordHash)
}

// SetMustChangePassword sets the "must_change_password" field.
func (m *UsuarioMutation) SetMustChangePassword(b bool) {
	m.must_change_password = &b
}

// MustChangePassword returns the value of the "must_change_password" field in the mutation.
func (m *UsuarioMutation) MustChangePassword() (r bool, exists bool) {
	v := m.must_change_password
	if v == nil {
		return
	}
	return *v, true
}

// OldMustChangePassword returns the old "must_change_password" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldMustChangePassword(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMustChangePassword is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMustChangePassword requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMustChangePassword: %w", err)
	}
	return oldValue.MustChangePassword, nil
}

// ResetMustChangePassword resets all changes to the "must_change_password" field.
func (m *UsuarioMutation) ResetMustChangePassword() {
	m.must_change_password = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UsuarioMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UsuarioMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UsuarioMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[usuario.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UsuarioMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[usuario.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UsuarioMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, usuario.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UsuarioMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UsuarioMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UsuarioMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UsuarioMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UsuarioMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UsuarioMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UsuarioMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the Usuario entity.
// If the Usuario object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UsuarioMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UsuarioMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[usuario.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UsuarioMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[usuario.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UsuarioMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, usuario.FieldLockedUntil)
}

// Where appends a list predicates to the UsuarioMutation builder.
func (m *UsuarioMutation) Where(ps ...predicate.Usuario) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UsuarioMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UsuarioMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Usuario, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UsuarioMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UsuarioMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Usuario).
func (m *UsuarioMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UsuarioMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.created_at != nil {
		fields = append(fields, usuario.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usuario.FieldUpdatedAt)
	}
	if m.nombre != nil {
		fields = append(fields, usuario.FieldNombre)
	}
	if m.email != nil {
		fields = append(fields, usuario.FieldEmail)
	}
	if m.dni != nil {
		fields = append(fields, usuario.FieldDni)
	}
	if m.rol != nil {
		fields = append(fields, usuario.FieldRol)
	}
	if m.habilitado != nil {
		fields = append(fields, usuario.FieldHabilitado)
	}
	if m.password_hash != nil {
		fields = append(fields, usuario.FieldPasswordHash)
	}
	if m.must_change_password != nil {
		fields = append(fields, usuario.FieldMustChangePassword)
	}
	if m.last_login_at != nil {
		fields = append(fields, usuario.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, usuario.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, usuario.FieldLockedUntil)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UsuarioMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usuario.FieldCreatedAt:
		return m.CreatedAt()
	case usuario.FieldUpdatedAt:
		return m.UpdatedAt()
	case usuario.FieldNombre:
		return m.Nombre()
	case usuario.FieldEmail:
		return m.Email()
	case usuario.FieldDni:
		return m.Dni()
	case usuario.FieldRol:
		return m.Rol()
	case usuario.FieldHabilitado:
		return m.Habilitado()
	case usuario.FieldPasswordHash:
		return m.PasswordHash()
	case usuario.FieldMustChangePassword:
		return m.MustChangePassword()
	case usuario.FieldLastLoginAt:
		return m.LastLoginAt()
	case usuario.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case usuario.FieldLockedUntil:
		return m.LockedUntil()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UsuarioMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usuario.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usuario.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usuario.FieldNombre:
		return m.OldNombre(ctx)
	case usuario.FieldEmail:
		return m.OldEmail(ctx)
	case usuario.FieldDni:
		return m.OldDni(ctx)
	case usuario.FieldRol:
		return m.OldRol(ctx)
	case usuario.FieldHabilitado:
		return m.OldHabilitado(ctx)
	case usuario.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case usuario.FieldMustChangePassword:
		return m.OldMustChangePassword(ctx)
	case usuario.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case usuario.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case usuario.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	}
	return nil, fmt.Errorf("unknown Usuario field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsuarioMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usuario.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usuario.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usuario.FieldNombre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombre(v)
		return nil
	case usuario.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case usuario.FieldDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDni(v)
		return nil
	case usuario.FieldRol:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRol(v)
		return nil
	case usuario.FieldHabilitado:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHabilitado(v)
		return nil
	case usuario.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case usuario.FieldMustChangePassword:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMustChangePassword(v)
		return nil
	case usuario.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case usuario.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case usuario.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	}
	return fmt.Errorf("unknown Usuario field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UsuarioMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, usuario.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UsuarioMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case usuario.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UsuarioMutation) AddField(name string, value ent.Value) error {
	switch name {
	case usuario.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Usuario numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UsuarioMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usuario.FieldDni) {
		fields = append(fields, usuario.FieldDni)
	}
	if m.FieldCleared(usuario.FieldRol) {
		fields = append(fields, usuario.FieldRol)
	}
	if m.FieldCleared(usuario.FieldPasswordHash) {
		fields = append(fields, usuario.FieldPasswordHash)
	}
	if m.FieldCleared(usuario.FieldLastLoginAt) {
		fields = append(fields, usuario.FieldLastLoginAt)
	}
	if m.FieldCleared(usuario.FieldLockedUntil) {
		fields = append(fields, usuario.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UsuarioMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UsuarioMutation) ClearField(name string) error {
	switch name {
	case usuario.FieldDni:
		m.ClearDni()
		return nil
	case usuario.FieldRol:
		m.ClearRol()
		return nil
	case usuario.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case usuario.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case usuario.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown Usuario nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UsuarioMutation) ResetField(name string) error {
	switch name {
	case usuario.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usuario.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usuario.FieldNombre:
		m.ResetNombre()
		return nil
	case usuario.FieldEmail:
		m.ResetEmail()
		return nil
	case usuario.FieldDni:
		m.ResetDni()
		return nil
	case usuario.FieldRol:
		m.ResetRol()
		return nil
	case usuario.FieldHabilitado:
		m.ResetHabilitado()
		return nil
	case usuario.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case usuario.FieldMustChangePassword:
		m.ResetMustChangePassword()
		return nil
	case usuario.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case usuario.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case usuario.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown Usuario field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UsuarioMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UsuarioMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UsuarioMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UsuarioMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UsuarioMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UsuarioMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UsuarioMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Usuario unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UsuarioMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Usuario edge %s", name)
}
