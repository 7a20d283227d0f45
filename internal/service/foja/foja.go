// Package foja implements the surgical record workflow: creation with
// automatic patient linkage, editing, and the validity flag only a
// chief doctor may touch.
package foja

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/repo"
	entfoja "github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/internal/service/paciente"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int

	NumHistoriaClinica *string
	MedicoResponsable  *uuid.UUID
	SoloValidas        bool // filter out records flagged invalida

	Order string // asc | desc, by fecha
}

type CreateRequest struct {
	NombrePaciente     string
	NumHistoriaClinica string
	FechaNacimiento    *time.Time
	Dni                *string

	Fecha            time.Time
	Cirujano         string
	Ayudante1        *string
	Ayudante2        *string
	Ayudante3        *string
	Anestesiologo    *string
	Anestesia        string
	Instrumentador   *string
	RiesgoQuirurgico string

	DiagnosticoPreoperatorio  string
	PlanQuirurgico            string
	DiagnosticoPostoperatorio string
	OperacionRealizada        string
	AnatomiaPatologica        *string
	DescripcionTecnica        string
}

type UpdateRequest struct {
	NombrePaciente  *string
	FechaNacimiento *time.Time
	Dni             *string

	Fecha            *time.Time
	Cirujano         *string
	Ayudante1        *string
	Ayudante2        *string
	Ayudante3        *string
	Anestesiologo    *string
	Anestesia        *string
	Instrumentador   *string
	RiesgoQuirurgico *string

	DiagnosticoPreoperatorio  *string
	PlanQuirurgico            *string
	DiagnosticoPostoperatorio *string
	OperacionRealizada        *string
	AnatomiaPatologica        *string
	DescripcionTecnica        *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// Create writes a new record on behalf of actor. The paciente row
	// for the history number is ensured first, in its own transaction;
	// authorship fields are taken from the actor, never the request.
	Create(ctx context.Context, actor *identity.Empleado, req CreateRequest) (*repo.Foja, error)

	GetByID(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Foja, error)
	List(ctx context.Context, actor *identity.Empleado, req ListRequest) (*PaginatedResult[*repo.Foja], error)
	Update(ctx context.Context, actor *identity.Empleado, id uuid.UUID, req UpdateRequest) (*repo.Foja, error)

	// ToggleInvalida flips the validity flag. Flagging and unflagging
	// are the same privileged operation; the record stays readable and
	// editable either way.
	ToggleInvalida(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Foja, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type fojaService struct {
	db        *repo.Client
	pacientes paciente.Service
}

func New(db *repo.Client, pacientes paciente.Service) Service {
	return &fojaService{db: db, pacientes: pacientes}
}

func (s *fojaService) Create(ctx context.Context, actor *identity.Empleado, req CreateRequest) (*repo.Foja, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceFoja, authorize.ActionCreate) {
		return nil, ErrAccessDenied
	}

	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	// Ensure the paciente first and commit it on its own. If the foja
	// write below fails, the patient row survives; the next attempt
	// finds it instead of recreating it.
	if _, err := s.pacientes.Ensure(ctx, paciente.EnsureRequest{
		Nombre:             req.NombrePaciente,
		NumHistoriaClinica: req.NumHistoriaClinica,
		FechaNacimiento:    req.FechaNacimiento,
		Dni:                req.Dni,
	}); err != nil {
		return nil, fmt.Errorf("ensure paciente: %w", err)
	}

	c := s.db.Foja.Create().
		SetNombrePaciente(req.NombrePaciente).
		SetNumHistoriaClinica(req.NumHistoriaClinica).
		SetNillableFechaNacimiento(req.FechaNacimiento).
		SetNillableDni(req.Dni).
		SetFecha(req.Fecha).
		SetCirujano(req.Cirujano).
		SetNillableAyudante1(req.Ayudante1).
		SetNillableAyudante2(req.Ayudante2).
		SetNillableAyudante3(req.Ayudante3).
		SetNillableAnestesiologo(req.Anestesiologo).
		SetAnestesia(entfoja.Anestesia(req.Anestesia)).
		SetNillableInstrumentador(req.Instrumentador).
		SetRiesgoQuirurgico(entfoja.RiesgoQuirurgico(req.RiesgoQuirurgico)).
		SetDiagnosticoPreoperatorio(req.DiagnosticoPreoperatorio).
		SetPlanQuirurgico(req.PlanQuirurgico).
		SetDiagnosticoPostoperatorio(req.DiagnosticoPostoperatorio).
		SetOperacionRealizada(req.OperacionRealizada).
		SetNillableAnatomiaPatologica(req.AnatomiaPatologica).
		SetDescripcionTecnica(req.DescripcionTecnica).
		SetMedicoResponsable(actor.ID).
		SetMedicoResponsableNombre(actor.Nombre)

	f, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create foja: %w", err)
	}
	return f, nil
}

func (s *fojaService) GetByID(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Foja, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceFoja, authorize.ActionRead) {
		return nil, ErrAccessDenied
	}

	f, err := s.db.Foja.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFojaNotFound
		}
		return nil, fmt.Errorf("get foja: %w", err)
	}
	return f, nil
}

func (s *fojaService) List(ctx context.Context, actor *identity.Empleado, req ListRequest) (*PaginatedResult[*repo.Foja], error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceFoja, authorize.ActionRead) {
		return nil, ErrAccessDenied
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Foja.Query()

	if req.NumHistoriaClinica != nil {
		q = q.Where(entfoja.NumHistoriaClinica(strings.TrimSpace(*req.NumHistoriaClinica)))
	}
	if req.MedicoResponsable != nil {
		q = q.Where(entfoja.MedicoResponsable(*req.MedicoResponsable))
	}
	if req.SoloValidas {
		q = q.Where(entfoja.Invalida(false))
	}

	if req.Order == "asc" {
		q = q.Order(entfoja.ByFecha(sql.OrderAsc()))
	} else {
		q = q.Order(entfoja.ByFecha(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count fojas: %w", err)
	}

	fojas, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fojas: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Foja]{
		Data:       fojas,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *fojaService) Update(ctx context.Context, actor *identity.Empleado, id uuid.UUID, req UpdateRequest) (*repo.Foja, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceFoja, authorize.ActionUpdate) {
		return nil, ErrAccessDenied
	}

	f, err := s.db.Foja.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFojaNotFound
		}
		return nil, fmt.Errorf("get foja: %w", err)
	}

	if req.Anestesia != nil && !validAnestesia(*req.Anestesia) {
		return nil, ErrInvalidAnestesia
	}
	if req.RiesgoQuirurgico != nil && !validRiesgo(*req.RiesgoQuirurgico) {
		return nil, ErrInvalidRiesgo
	}

	u := s.db.Foja.UpdateOne(f)

	if req.NombrePaciente != nil {
		u = u.SetNombrePaciente(*req.NombrePaciente)
	}
	if req.FechaNacimiento != nil {
		u = u.SetNillableFechaNacimiento(req.FechaNacimiento)
	}
	if req.Dni != nil {
		u = u.SetNillableDni(req.Dni)
	}
	if req.Fecha != nil {
		u = u.SetFecha(*req.Fecha)
	}
	if req.Cirujano != nil {
		u = u.SetCirujano(*req.Cirujano)
	}
	if req.Ayudante1 != nil {
		u = u.SetNillableAyudante1(req.Ayudante1)
	}
	if req.Ayudante2 != nil {
		u = u.SetNillableAyudante2(req.Ayudante2)
	}
	if req.Ayudante3 != nil {
		u = u.SetNillableAyudante3(req.Ayudante3)
	}
	if req.Anestesiologo != nil {
		u = u.SetNillableAnestesiologo(req.Anestesiologo)
	}
	if req.Anestesia != nil {
		u = u.SetAnestesia(entfoja.Anestesia(*req.Anestesia))
	}
	if req.Instrumentador != nil {
		u = u.SetNillableInstrumentador(req.Instrumentador)
	}
	if req.RiesgoQuirurgico != nil {
		u = u.SetRiesgoQuirurgico(entfoja.RiesgoQuirurgico(*req.RiesgoQuirurgico))
	}
	if req.DiagnosticoPreoperatorio != nil {
		u = u.SetDiagnosticoPreoperatorio(*req.DiagnosticoPreoperatorio)
	}
	if req.PlanQuirurgico != nil {
		u = u.SetPlanQuirurgico(*req.PlanQuirurgico)
	}
	if req.DiagnosticoPostoperatorio != nil {
		u = u.SetDiagnosticoPostoperatorio(*req.DiagnosticoPostoperatorio)
	}
	if req.OperacionRealizada != nil {
		u = u.SetOperacionRealizada(*req.OperacionRealizada)
	}
	if req.AnatomiaPatologica != nil {
		u = u.SetNillableAnatomiaPatologica(req.AnatomiaPatologica)
	}
	if req.DescripcionTecnica != nil {
		u = u.SetDescripcionTecnica(*req.DescripcionTecnica)
	}

	return u.Save(ctx)
}

func (s *fojaService) ToggleInvalida(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Foja, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceFoja, authorize.ActionInvalidate) {
		return nil, ErrAccessDenied
	}

	f, err := s.db.Foja.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFojaNotFound
		}
		return nil, fmt.Errorf("get foja: %w", err)
	}

	return s.db.Foja.UpdateOne(f).
		SetInvalida(!f.Invalida).
		Save(ctx)
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func validAnestesia(v string) bool {
	return v == "general" || v == "local"
}

func validRiesgo(v string) bool {
	return v == "bajo" || v == "mediano" || v == "alto"
}

func validateCreate(req *CreateRequest) error {
	req.NombrePaciente = strings.TrimSpace(req.NombrePaciente)
	req.NumHistoriaClinica = strings.TrimSpace(req.NumHistoriaClinica)
	req.Cirujano = strings.TrimSpace(req.Cirujano)

	if req.NumHistoriaClinica == "" {
		return ErrHistoriaRequired
	}

	required := []string{
		req.NombrePaciente,
		req.Cirujano,
		req.DiagnosticoPreoperatorio,
		req.PlanQuirurgico,
		req.DiagnosticoPostoperatorio,
		req.OperacionRealizada,
		req.DescripcionTecnica,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrMissingField
		}
	}
	if req.Fecha.IsZero() {
		return ErrMissingField
	}

	if !validAnestesia(req.Anestesia) {
		return ErrInvalidAnestesia
	}
	if !validRiesgo(req.RiesgoQuirurgico) {
		return ErrInvalidRiesgo
	}
	return nil
}
