// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
	"github.com/nlonghi/fojas_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	fojaMixin := schema.Foja{}.Mixin()
	fojaMixinFields0 := fojaMixin[0].Fields()
	_ = fojaMixinFields0
	fojaMixinFields1 := fojaMixin[1].Fields()
	_ = fojaMixinFields1
	fojaFields := schema.Foja{}.Fields()
	_ = fojaFields
	// fojaDescCreatedAt is the schema descriptor for created_at field.
	fojaDescCreatedAt := fojaMixinFields1[0].Descriptor()
	// foja.DefaultCreatedAt holds the default value on creation for the created_at field.
	foja.DefaultCreatedAt = fojaDescCreatedAt.Default.(func() time.Time)
	// fojaDescUpdatedAt is the schema descriptor for updated_at field.
	fojaDescUpdatedAt := fojaMixinFields1[1].Descriptor()
	// foja.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	foja.DefaultUpdatedAt = fojaDescUpdatedAt.Default.(func() time.Time)
	// foja.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	foja.UpdateDefaultUpdatedAt = fojaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// fojaDescNombrePaciente is the schema descriptor for nombre_paciente field.
	fojaDescNombrePaciente := fojaFields[0].Descriptor()
	// foja.NombrePacienteValidator is a validator for the "nombre_paciente" field. It is called by the builders before save.
	foja.NombrePacienteValidator = fojaDescNombrePaciente.Validators[0].(func(string) error)
	// fojaDescNumHistoriaClinica is the schema descriptor for num_historia_clinica field.
	fojaDescNumHistoriaClinica := fojaFields[1].Descriptor()
	// foja.NumHistoriaClinicaValidator is a validator for the "num_historia_clinica" field. It is called by the builders before save.
	foja.NumHistoriaClinicaValidator = fojaDescNumHistoriaClinica.Validators[0].(func(string) error)
	// fojaDescDni is the schema descriptor for dni field.
	fojaDescDni := fojaFields[3].Descriptor()
	// foja.DniValidator is a validator for the "dni" field. It is called by the builders before save.
	foja.DniValidator = fojaDescDni.Validators[0].(func(string) error)
	// fojaDescCirujano is the schema descriptor for cirujano field.
	fojaDescCirujano := fojaFields[5].Descriptor()
	// foja.CirujanoValidator is a validator for the "cirujano" field. It is called by the builders before save.
	foja.CirujanoValidator = fojaDescCirujano.Validators[0].(func(string) error)
	// fojaDescAyudante1 is the schema descriptor for ayudante1 field.
	fojaDescAyudante1 := fojaFields[6].Descriptor()
	// foja.Ayudante1Validator is a validator for the "ayudante1" field. It is called by the builders before save.
	foja.Ayudante1Validator = fojaDescAyudante1.Validators[0].(func(string) error)
	// fojaDescAyudante2 is the schema descriptor for ayudante2 field.
	fojaDescAyudante2 := fojaFields[7].Descriptor()
	// foja.Ayudante2Validator is a validator for the "ayudante2" field. It is called by the builders before save.
	foja.Ayudante2Validator = fojaDescAyudante2.Validators[0].(func(string) error)
	// fojaDescAyudante3 is the schema descriptor for ayudante3 field.
	fojaDescAyudante3 := fojaFields[8].Descriptor()
	// foja.Ayudante3Validator is a validator for the "ayudante3" field. It is called by the builders before save.
	foja.Ayudante3Validator = fojaDescAyudante3.Validators[0].(func(string) error)
	// fojaDescAnestesiologo is the schema descriptor for anestesiologo field.
	fojaDescAnestesiologo := fojaFields[9].Descriptor()
	// foja.AnestesiologoValidator is a validator for the "anestesiologo" field. It is called by the builders before save.
	foja.AnestesiologoValidator = fojaDescAnestesiologo.Validators[0].(func(string) error)
	// fojaDescInstrumentador is the schema descriptor for instrumentador field.
	fojaDescInstrumentador := fojaFields[11].Descriptor()
	// foja.InstrumentadorValidator is a validator for the "instrumentador" field. It is called by the builders before save.
	foja.InstrumentadorValidator = fojaDescInstrumentador.Validators[0].(func(string) error)
	// fojaDescMedicoResponsableNombre is the schema descriptor for medico_responsable_nombre field.
	fojaDescMedicoResponsableNombre := fojaFields[20].Descriptor()
	// foja.MedicoResponsableNombreValidator is a validator for the "medico_responsable_nombre" field. It is called by the builders before save.
	foja.MedicoResponsableNombreValidator = fojaDescMedicoResponsableNombre.Validators[0].(func(string) error)
	// fojaDescInvalida is the schema descriptor for invalida field.
	fojaDescInvalida := fojaFields[21].Descriptor()
	// foja.DefaultInvalida holds the default value on creation for the invalida field.
	foja.DefaultInvalida = fojaDescInvalida.Default.(bool)
	// fojaDescID is the schema descriptor for id field.
	fojaDescID := fojaMixinFields0[0].Descriptor()
	// foja.DefaultID holds the default value on creation for the id field.
	foja.DefaultID = fojaDescID.Default.(func() uuid.UUID)
	pacienteMixin := schema.Paciente{}.Mixin()
	pacienteMixinFields0 := pacienteMixin[0].Fields()
	_ = pacienteMixinFields0
	pacienteMixinFields1 := pacienteMixin[1].Fields()
	_ = pacienteMixinFields1
	pacienteFields := schema.Paciente{}.Fields()
	_ = pacienteFields
	// pacienteDescCreatedAt is the schema descriptor for created_at field.
	pacienteDescCreatedAt := pacienteMixinFields1[0].Descriptor()
	// paciente.DefaultCreatedAt holds the default value on creation for the created_at field.
	paciente.DefaultCreatedAt = pacienteDescCreatedAt.Default.(func() time.Time)
	// pacienteDescUpdatedAt is the schema descriptor for updated_at field.
	pacienteDescUpdatedAt := pacienteMixinFields1[1].Descriptor()
	// paciente.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	paciente.DefaultUpdatedAt = pacienteDescUpdatedAt.Default.(func() time.Time)
	// paciente.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	paciente.UpdateDefaultUpdatedAt = pacienteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// pacienteDescNombre is the schema descriptor for nombre field.
	pacienteDescNombre := pacienteFields[0].Descriptor()
	// paciente.NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	paciente.NombreValidator = pacienteDescNombre.Validators[0].(func(string) error)
	// pacienteDescNumHistoriaClinica is the schema descriptor for num_historia_clinica field.
	pacienteDescNumHistoriaClinica := pacienteFields[1].Descriptor()
	// paciente.NumHistoriaClinicaValidator is a validator for the "num_historia_clinica" field. It is called by the builders before save.
	paciente.NumHistoriaClinicaValidator = pacienteDescNumHistoriaClinica.Validators[0].(func(string) error)
	// pacienteDescGenero is the schema descriptor for genero field.
	pacienteDescGenero := pacienteFields[3].Descriptor()
	// paciente.GeneroValidator is a validator for the "genero" field. It is called by the builders before save.
	paciente.GeneroValidator = pacienteDescGenero.Validators[0].(func(string) error)
	// pacienteDescDireccion is the schema descriptor for direccion field.
	pacienteDescDireccion := pacienteFields[4].Descriptor()
	// paciente.DireccionValidator is a validator for the "direccion" field. It is called by the builders before save.
	paciente.DireccionValidator = pacienteDescDireccion.Validators[0].(func(string) error)
	// pacienteDescTelefono is the schema descriptor for telefono field.
	pacienteDescTelefono := pacienteFields[5].Descriptor()
	// paciente.TelefonoValidator is a validator for the "telefono" field. It is called by the builders before save.
	paciente.TelefonoValidator = pacienteDescTelefono.Validators[0].(func(string) error)
	// pacienteDescDni is the schema descriptor for dni field.
	pacienteDescDni := pacienteFields[6].Descriptor()
	// paciente.DniValidator is a validator for the "dni" field. It is called by the builders before save.
	paciente.DniValidator = pacienteDescDni.Validators[0].(func(string) error)
	// pacienteDescID is the schema descriptor for id field.
	pacienteDescID := pacienteMixinFields0[0].Descriptor()
	// paciente.DefaultID holds the default value on creation for the id field.
	paciente.DefaultID = pacienteDescID.Default.(func() uuid.UUID)
	usuarioMixin := schema.Usuario{}.Mixin()
	usuarioMixinFields0 := usuarioMixin[0].Fields()
	_ = usuarioMixinFields0
	usuarioMixinFields1 := usuarioMixin[1].Fields()
	_ = usuarioMixinFields1
	usuarioFields := schema.Usuario{}.Fields()
	_ = usuarioFields
	// usuarioDescCreatedAt is the schema descriptor for created_at field.
	usuarioDescCreatedAt := usuarioMixinFields1[0].Descriptor()
	// usuario.DefaultCreatedAt holds the default value on creation for the created_at field.
	usuario.DefaultCreatedAt = usuarioDescCreatedAt.Default.(func() time.Time)
	// usuarioDescUpdatedAt is the schema descriptor for updated_at field.
	usuarioDescUpdatedAt := usuarioMixinFields1[1].Descriptor()
	// usuario.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	usuario.DefaultUpdatedAt = usuarioDescUpdatedAt.Default.(func() time.Time)
	// usuario.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	usuario.UpdateDefaultUpdatedAt = usuarioDescUpdatedAt.UpdateDefault.(func() time.Time)
	// usuarioDescNombre is the schema descriptor for nombre field.
	usuarioDescNombre := usuarioFields[0].Descriptor()
	// usuario.NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	usuario.NombreValidator = usuarioDescNombre.Validators[0].(func(string) error)
	// usuarioDescEmail is the schema descriptor for email field.
	usuarioDescEmail := usuarioFields[1].Descriptor()
	// usuario.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	usuario.EmailValidator = usuarioDescEmail.Validators[0].(func(string) error)
	// usuarioDescDni is the schema descriptor for dni field.
	usuarioDescDni := usuarioFields[2].Descriptor()
	// usuario.DniValidator is a validator for the "dni" field. It is called by the builders before save.
	usuario.DniValidator = usuarioDescDni.Validators[0].(func(string) error)
	// usuarioDescRol is the schema descriptor for rol field.
	usuarioDescRol := usuarioFields[3].Descriptor()
	// usuario.RolValidator is a validator for the "rol" field. It is called by the builders before save.
	usuario.RolValidator = usuarioDescRol.Validators[0].(func(string) error)
	// usuarioDescHabilitado is the schema descriptor for habilitado field.
	usuarioDescHabilitado := usuarioFields[4].Descriptor()
	// usuario.DefaultHabilitado holds the default value on creation for the habilitado field.
	usuario.DefaultHabilitado = usuarioDescHabilitado.Default.(bool)
	// usuarioDescMustChangePassword is the schema descriptor for must_change_password field.
	usuarioDescMustChangePassword := usuarioFields[6].Descriptor()
	// usuario.DefaultMustChangePassword holds the default value on creation for the must_change_password field.
	usuario.DefaultMustChangePassword = usuarioDescMustChangePassword.Default.(bool)
	// usuarioDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	usuarioDescFailedLoginAttempts := usuarioFields[8].Descriptor()
	// usuario.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	usuario.DefaultFailedLoginAttempts = usuarioDescFailedLoginAttempts.Default.(int)
	// usuario.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	usuario.FailedLoginAttemptsValidator = usuarioDescFailedLoginAttempts.Validators[0].(func(int) error)
	// usuarioDescID is the schema descriptor for id field.
	usuarioDescID := usuarioMixinFields0[0].Descriptor()
	// usuario.DefaultID holds the default value on creation for the id field.
	usuario.DefaultID = usuarioDescID.Default.(func() uuid.UUID)
}
