// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// FojaCreate is the builder for creating a Foja entity.
type FojaCreate struct {
	config
	mutation *FojaMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FojaCreate) SetCreatedAt(v time.Time) *FojaCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FojaCreate) SetNillableCreatedAt(v *time.Time) *FojaCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FojaCreate) SetUpdatedAt(v time.Time) *FojaCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FojaCreate) SetNillableUpdatedAt(v *time.Time) *FojaCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombrePaciente sets the "nombre_paciente" field.
func (_c *FojaCreate) SetNombrePaciente(v string) *FojaCreate {
	_c.mutation.SetNombrePaciente(v)
	return _c
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_c *FojaCreate) SetNumHistoriaClinica(v string) *FojaCreate {
	_c.mutation.SetNumHistoriaClinica(v)
	return _c
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_c *FojaCreate) SetFechaNacimiento(v time.Time) *FojaCreate {
	_c.mutation.SetFechaNacimiento(v)
	return _c
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_c *FojaCreate) SetNillableFechaNacimiento(v *time.Time) *FojaCreate {
	if v != nil {
		_c.SetFechaNacimiento(*v)
	}
	return _c
}

// SetDni sets the "dni" field.
func (_c *FojaCreate) SetDni(v string) *FojaCreate {
	_c.mutation.SetDni(v)
	return _c
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_c *FojaCreate) SetNillableDni(v *string) *FojaCreate {
	if v != nil {
		_c.SetDni(*v)
	}
	return _c
}

// SetFecha sets the "fecha" field.
func (_c *FojaCreate) SetFecha(v time.Time) *FojaCreate {
	_c.mutation.SetFecha(v)
	return _c
}

// SetCirujano sets the "cirujano" field.
func (_c *FojaCreate) SetCirujano(v string) *FojaCreate {
	_c.mutation.SetCirujano(v)
	return _c
}

// SetAyudante1 sets the "ayudante1" field.
func (_c *FojaCreate) SetAyudante1(v string) *FojaCreate {
	_c.mutation.SetAyudante1(v)
	return _c
}

// SetNillableAyudante1 sets the "ayudante1" field if the given value is not nil.
func (_c *FojaCreate) SetNillableAyudante1(v *string) *FojaCreate {
	if v != nil {
		_c.SetAyudante1(*v)
	}
	return _c
}

// SetAyudante2 sets the "ayudante2" field.
func (_c *FojaCreate) SetAyudante2(v string) *FojaCreate {
	_c.mutation.SetAyudante2(v)
	return _c
}

// SetNillableAyudante2 sets the "ayudante2" field if the given value is not nil.
func (_c *FojaCreate) SetNillableAyudante2(v *string) *FojaCreate {
	if v != nil {
		_c.SetAyudante2(*v)
	}
	return _c
}

// SetAyudante3 sets the "ayudante3" field.
func (_c *FojaCreate) SetAyudante3(v string) *FojaCreate {
	_c.mutation.SetAyudante3(v)
	return _c
}

// SetNillableAyudante3 sets the "ayudante3" field if the given value is not nil.
func (_c *FojaCreate) SetNillableAyudante3(v *string) *FojaCreate {
	if v != nil {
		_c.SetAyudante3(*v)
	}
	return _c
}

// SetAnestesiologo sets the "anestesiologo" field.
func (_c *FojaCreate) SetAnestesiologo(v string) *FojaCreate {
	_c.mutation.SetAnestesiologo(v)
	return _c
}

// SetNillableAnestesiologo sets the "anestesiologo" field if the given value is not nil.
func (_c *FojaCreate) SetNillableAnestesiologo(v *string) *FojaCreate {
	if v != nil {
		_c.SetAnestesiologo(*v)
	}
	return _c
}

// SetAnestesia sets the "anestesia" field.
func (_c *FojaCreate) SetAnestesia(v foja.Anestesia) *FojaCreate {
	_c.mutation.SetAnestesia(v)
	return _c
}

// SetInstrumentador sets the "instrumentador" field.
func (_c *FojaCreate) SetInstrumentador(v string) *FojaCreate {
	_c.mutation.SetInstrumentador(v)
	return _c
}

// SetNillableInstrumentador sets the "instrumentador" field if the given value is not nil.
func (_c *FojaCreate) SetNillableInstrumentador(v *string) *FojaCreate {
	if v != nil {
		_c.SetInstrumentador(*v)
	}
	return _c
}

// SetRiesgoQuirurgico sets the "riesgo_quirurgico" field.
func (_c *FojaCreate) SetRiesgoQuirurgico(v foja.RiesgoQuirurgico) *FojaCreate {
	_c.mutation.SetRiesgoQuirurgico(v)
	return _c
}

// SetDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field.
func (_c *FojaCreate) SetDiagnosticoPreoperatorio(v string) *FojaCreate {
	_c.mutation.SetDiagnosticoPreoperatorio(v)
	return _c
}

// SetPlanQuirurgico sets the "plan_quirurgico" field.
func (_c *FojaCreate) SetPlanQuirurgico(v string) *FojaCreate {
	_c.mutation.SetPlanQuirurgico(v)
	return _c
}

// SetDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field.
func (_c *FojaCreate) SetDiagnosticoPostoperatorio(v string) *FojaCreate {
	_c.mutation.SetDiagnosticoPostoperatorio(v)
	return _c
}

// SetOperacionRealizada sets the "operacion_realizada" field.
func (_c *FojaCreate) SetOperacionRealizada(v string) *FojaCreate {
	_c.mutation.SetOperacionRealizada(v)
	return _c
}

// SetAnatomiaPatologica sets the "anatomia_patologica" field.
func (_c *FojaCreate) SetAnatomiaPatologica(v string) *FojaCreate {
	_c.mutation.SetAnatomiaPatologica(v)
	return _c
}

// SetNillableAnatomiaPatologica sets the "anatomia_patologica" field if the given value is not nil.
func (_c *FojaCreate) SetNillableAnatomiaPatologica(v *string) *FojaCreate {
	if v != nil {
		_c.SetAnatomiaPatologica(*v)
	}
	return _c
}

// SetDescripcionTecnica sets the "descripcion_tecnica" field.
func (_c *FojaCreate) SetDescripcionTecnica(v string) *FojaCreate {
	_c.mutation.SetDescripcionTecnica(v)
	return _c
}

// SetMedicoResponsable sets the "medico_responsable" field.
func (_c *FojaCreate) SetMedicoResponsable(v uuid.UUID) *FojaCreate {
	_c.mutation.SetMedicoResponsable(v)
	return _c
}

// SetMedicoResponsableNombre sets the "medico_responsable_nombre" field.
func (_c *FojaCreate) SetMedicoResponsableNombre(v string) *FojaCreate {
	_c.mutation.SetMedicoResponsableNombre(v)
	return _c
}

// SetInvalida sets the "invalida" field.
func (_c *FojaCreate) SetInvalida(v bool) *FojaCreate {
	_c.mutation.SetInvalida(v)
	return _c
}

// SetNillableInvalida sets the "invalida" field if the given value is not nil.
func (_c *FojaCreate) SetNillableInvalida(v *bool) *FojaCreate {
	if v != nil {
		_c.SetInvalida(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FojaCreate) SetID(v uuid.UUID) *FojaCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FojaCreate) SetNillableID(v *uuid.UUID) *FojaCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetResponsableID sets the "responsable" edge to the Usuario entity by ID.
func (_c *FojaCreate) SetResponsableID(id uuid.UUID) *FojaCreate {
	_c.mutation.SetResponsableID(id)
	return _c
}

// SetResponsable sets the "responsable" edge to the Usuario entity.
func (_c *FojaCreate) SetResponsable(v *Usuario) *FojaCreate {
	return _c.SetResponsableID(v.ID)
}

// Mutation returns the FojaMutation object of the builder.
func (_c *FojaCreate) Mutation() *FojaMutation {
	return _c.mutation
}

// Save creates the Foja in the database.
func (_c *FojaCreate) Save(ctx context.Context) (*Foja, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FojaCreate) SaveX(ctx context.Context) *Foja {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FojaCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FojaCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FojaCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := foja.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := foja.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Invalida(); !ok {
		v := foja.DefaultInvalida
		_c.mutation.SetInvalida(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := foja.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FojaCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Foja.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Foja.updated_at"`)}
	}
	if _, ok := _c.mutation.NombrePaciente(); !ok {
		return &ValidationError{Name: "nombre_paciente", err: errors.New(`repo: missing required field "Foja.nombre_paciente"`)}
	}
	if v, ok := _c.mutation.NombrePaciente(); ok {
		if err := foja.NombrePacienteValidator(v); err != nil {
			return &ValidationError{Name: "nombre_paciente", err: fmt.Errorf(`repo: validator failed for field "Foja.nombre_paciente": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumHistoriaClinica(); !ok {
		return &ValidationError{Name: "num_historia_clinica", err: errors.New(`repo: missing required field "Foja.num_historia_clinica"`)}
	}
	if v, ok := _c.mutation.NumHistoriaClinica(); ok {
		if err := foja.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Foja.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dni(); ok {
		if err := foja.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Foja.dni": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Fecha(); !ok {
		return &ValidationError{Name: "fecha", err: errors.New(`repo: missing required field "Foja.fecha"`)}
	}
	if _, ok := _c.mutation.Cirujano(); !ok {
		return &ValidationError{Name: "cirujano", err: errors.New(`repo: missing required field "Foja.cirujano"`)}
	}
	if v, ok := _c.mutation.Cirujano(); ok {
		if err := foja.CirujanoValidator(v); err != nil {
			return &ValidationError{Name: "cirujano", err: fmt.Errorf(`repo: validator failed for field "Foja.cirujano": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ayudante1(); ok {
		if err := foja.Ayudante1Validator(v); err != nil {
			return &ValidationError{Name: "ayudante1", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante1": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ayudante2(); ok {
		if err := foja.Ayudante2Validator(v); err != nil {
			return &ValidationError{Name: "ayudante2", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante2": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Ayudante3(); ok {
		if err := foja.Ayudante3Validator(v); err != nil {
			return &ValidationError{Name: "ayudante3", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante3": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Anestesiologo(); ok {
		if err := foja.AnestesiologoValidator(v); err != nil {
			return &ValidationError{Name: "anestesiologo", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesiologo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Anestesia(); !ok {
		return &ValidationError{Name: "anestesia", err: errors.New(`repo: missing required field "Foja.anestesia"`)}
	}
	if v, ok := _c.mutation.Anestesia(); ok {
		if err := foja.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesia": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Instrumentador(); ok {
		if err := foja.InstrumentadorValidator(v); err != nil {
			return &ValidationError{Name: "instrumentador", err: fmt.Errorf(`repo: validator failed for field "Foja.instrumentador": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RiesgoQuirurgico(); !ok {
		return &ValidationError{Name: "riesgo_quirurgico", err: errors.New(`repo: missing required field "Foja.riesgo_quirurgico"`)}
	}
	if v, ok := _c.mutation.RiesgoQuirurgico(); ok {
		if err := foja.RiesgoQuirurgicoValidator(v); err != nil {
			return &ValidationError{Name: "riesgo_quirurgico", err: fmt.Errorf(`repo: validator failed for field "Foja.riesgo_quirurgico": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiagnosticoPreoperatorio(); !ok {
		return &ValidationError{Name: "diagnostico_preoperatorio", err: errors.New(`repo: missing required field "Foja.diagnostico_preoperatorio"`)}
	}
	if _, ok := _c.mutation.PlanQuirurgico(); !ok {
		return &ValidationError{Name: "plan_quirurgico", err: errors.New(`repo: missing required field "Foja.plan_quirurgico"`)}
	}
	if _, ok := _c.mutation.DiagnosticoPostoperatorio(); !ok {
		return &ValidationError{Name: "diagnostico_postoperatorio", err: errors.New(`repo: missing required field "Foja.diagnostico_postoperatorio"`)}
	}
	if _, ok := _c.mutation.OperacionRealizada(); !ok {
		return &ValidationError{Name: "operacion_realizada", err: errors.New(`repo: missing required field "Foja.operacion_realizada"`)}
	}
	if _, ok := _c.mutation.DescripcionTecnica(); !ok {
		return &ValidationError{Name: "descripcion_tecnica", err: errors.New(`repo: missing required field "Foja.descripcion_tecnica"`)}
	}
	if _, ok := _c.mutation.MedicoResponsable(); !ok {
		return &ValidationError{Name: "medico_responsable", err: errors.New(`repo: missing required field "Foja.medico_responsable"`)}
	}
	if _, ok := _c.mutation.MedicoResponsableNombre(); !ok {
		return &ValidationError{Name: "medico_responsable_nombre", err: errors.New(`repo: missing required field "Foja.medico_responsable_nombre"`)}
	}
	if v, ok := _c.mutation.MedicoResponsableNombre(); ok {
		if err := foja.MedicoResponsableNombreValidator(v); err != nil {
			return &ValidationError{Name: "medico_responsable_nombre", err: fmt.Errorf(`repo: validator failed for field "Foja.medico_responsable_nombre": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Invalida(); !ok {
		return &ValidationError{Name: "invalida", err: errors.New(`repo: missing required field "Foja.invalida"`)}
	}
	if len(_c.mutation.ResponsableIDs()) == 0 {
		return &ValidationError{Name: "responsable", err: errors.New(`repo: missing required edge "Foja.responsable"`)}
	}
	return nil
}

func (_c *FojaCreate) sqlSave(ctx context.Context) (*Foja, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FojaCreate) createSpec() (*Foja, *sqlgraph.CreateSpec) {
	var (
		_node = &Foja{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(foja.Table, sqlgraph.NewFieldSpec(foja.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(foja.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(foja.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.NombrePaciente(); ok {
		_spec.SetField(foja.FieldNombrePaciente, field.TypeString, value)
		_node.NombrePaciente = value
	}
	if value, ok := _c.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(foja.FieldNumHistoriaClinica, field.TypeString, value)
		_node.NumHistoriaClinica = value
	}
	if value, ok := _c.mutation.FechaNacimiento(); ok {
		_spec.SetField(foja.FieldFechaNacimiento, field.TypeTime, value)
		_node.FechaNacimiento = &value
	}
	if value, ok := _c.mutation.Dni(); ok {
		_spec.SetField(foja.FieldDni, field.TypeString, value)
		_node.Dni = &value
	}
	if value, ok := _c.mutation.Fecha(); ok {
		_spec.SetField(foja.FieldFecha, field.TypeTime, value)
		_node.Fecha = value
	}
	if value, ok := _c.mutation.Cirujano(); ok {
		_spec.SetField(foja.FieldCirujano, field.TypeString, value)
		_node.Cirujano = value
	}
	if value, ok := _c.mutation.Ayudante1(); ok {
		_spec.SetField(foja.FieldAyudante1, field.TypeString, value)
		_node.Ayudante1 = &value
	}
	if value, ok := _c.mutation.Ayudante2(); ok {
		_spec.SetField(foja.FieldAyudante2, field.TypeString, value)
		_node.Ayudante2 = &value
	}
	if value, ok := _c.mutation.Ayudante3(); ok {
		_spec.SetField(foja.FieldAyudante3, field.TypeString, value)
		_node.Ayudante3 = &value
	}
	if value, ok := _c.mutation.Anestesiologo(); ok {
		_spec.SetField(foja.FieldAnestesiologo, field.TypeString, value)
		_node.Anestesiologo = &value
	}
	if value, ok := _c.mutation.Anestesia(); ok {
		_spec.SetField(foja.FieldAnestesia, field.TypeEnum, value)
		_node.Anestesia = value
	}
	if value, ok := _c.mutation.Instrumentador(); ok {
		_spec.SetField(foja.FieldInstrumentador, field.TypeString, value)
		_node.Instrumentador = &value
	}
	if value, ok := _c.mutation.RiesgoQuirurgico(); ok {
		_spec.SetField(foja.FieldRiesgoQuirurgico, field.TypeEnum, value)
		_node.RiesgoQuirurgico = value
	}
	if value, ok := _c.mutation.DiagnosticoPreoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPreoperatorio, field.TypeString, value)
		_node.DiagnosticoPreoperatorio = value
	}
	if value, ok := _c.mutation.PlanQuirurgico(); ok {
		_spec.SetField(foja.FieldPlanQuirurgico, field.TypeString, value)
		_node.PlanQuirurgico = value
	}
	if value, ok := _c.mutation.DiagnosticoPostoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPostoperatorio, field.TypeString, value)
		_node.DiagnosticoPostoperatorio = value
	}
	if value, ok := _c.mutation.OperacionRealizada(); ok {
		_spec.SetField(foja.FieldOperacionRealizada, field.TypeString, value)
		_node.OperacionRealizada = value
	}
	if value, ok := _c.mutation.AnatomiaPatologica(); ok {
		_spec.SetField(foja.FieldAnatomiaPatologica, field.TypeString, value)
		_node.AnatomiaPatologica = &value
	}
	if value, ok := _c.mutation.DescripcionTecnica(); ok {
		_spec.SetField(foja.FieldDescripcionTecnica, field.TypeString, value)
		_node.DescripcionTecnica = value
	}
	if value, ok := _c.mutation.MedicoResponsableNombre(); ok {
		_spec.SetField(foja.FieldMedicoResponsableNombre, field.TypeString, value)
		_node.MedicoResponsableNombre = value
	}
	if value, ok := _c.mutation.Invalida(); ok {
		_spec.SetField(foja.FieldInvalida, field.TypeBool, value)
		_node.Invalida = value
	}
	if nodes := _c.mutation.ResponsableIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   foja.ResponsableTable,
			Columns: []string{foja.ResponsableColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MedicoResponsable = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FojaCreateBulk is the builder for creating many Foja entities in bulk.
type FojaCreateBulk struct {
	config
	err      error
	builders []*FojaCreate
}

// Save creates the Foja entities in the database.
func (_c *FojaCreateBulk) Save(ctx context.Context) ([]*Foja, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Foja, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FojaMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *FojaCreateBulk) SaveX(ctx context.Context) []*Foja {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FojaCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FojaCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
