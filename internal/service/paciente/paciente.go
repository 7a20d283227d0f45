package paciente

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/nlonghi/fojas_backend/internal/repo"
	entpaciente "github.com/nlonghi/fojas_backend/internal/repo/paciente"
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
	Search  string // matches nombre or num_historia_clinica
	Order   string // asc | desc, by created_at
}

type CreateRequest struct {
	Nombre             string
	NumHistoriaClinica string
	FechaNacimiento    *time.Time
	Genero             *string
	Direccion          *string
	Telefono           *string
	Dni                *string
}

type UpdateRequest struct {
	Nombre          *string
	FechaNacimiento *time.Time
	Genero          *string
	Direccion       *string
	Telefono        *string
	Dni             *string
}

// EnsureRequest is the minimal patient data captured on a surgical
// record form. It is only used when the history number is new.
type EnsureRequest struct {
	Nombre             string
	NumHistoriaClinica string
	FechaNacimiento    *time.Time
	Dni                *string
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*repo.Paciente, error)
	GetByID(ctx context.Context, id uuid.UUID) (*repo.Paciente, error)
	GetByHistoria(ctx context.Context, numHistoriaClinica string) (*repo.Paciente, error)
	List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Paciente], error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Paciente, error)

	// Ensure returns the paciente for a history number, creating it
	// when absent. An existing row is returned untouched: demographic
	// data typed on a record form never overwrites the master record.
	Ensure(ctx context.Context, req EnsureRequest) (*repo.Paciente, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type pacienteService struct {
	db          *repo.Client
	phoneRegion string
}

func New(db *repo.Client, phoneRegion string) Service {
	if phoneRegion == "" {
		phoneRegion = "AR"
	}
	return &pacienteService{db: db, phoneRegion: phoneRegion}
}

func (s *pacienteService) Create(ctx context.Context, req CreateRequest) (*repo.Paciente, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.NumHistoriaClinica = strings.TrimSpace(req.NumHistoriaClinica)

	if req.NumHistoriaClinica == "" {
		return nil, ErrHistoriaRequired
	}
	if req.Nombre == "" {
		return nil, ErrNombreRequired
	}
	if err := s.validateTelefono(req.Telefono); err != nil {
		return nil, err
	}

	exists, err := s.db.Paciente.Query().
		Where(entpaciente.NumHistoriaClinica(req.NumHistoriaClinica)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check historia: %w", err)
	}
	if exists {
		return nil, ErrHistoriaAlreadyExists
	}

	c := s.db.Paciente.Create().
		SetNombre(req.Nombre).
		SetNumHistoriaClinica(req.NumHistoriaClinica).
		SetNillableFechaNacimiento(req.FechaNacimiento).
		SetNillableGenero(req.Genero).
		SetNillableDireccion(req.Direccion).
		SetNillableTelefono(req.Telefono).
		SetNillableDni(req.Dni)

	p, err := c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrHistoriaAlreadyExists
		}
		return nil, fmt.Errorf("create paciente: %w", err)
	}
	return p, nil
}

func (s *pacienteService) GetByID(ctx context.Context, id uuid.UUID) (*repo.Paciente, error) {
	p, err := s.db.Paciente.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPacienteNotFound
		}
		return nil, fmt.Errorf("get paciente: %w", err)
	}
	return p, nil
}

func (s *pacienteService) GetByHistoria(ctx context.Context, numHistoriaClinica string) (*repo.Paciente, error) {
	numHistoriaClinica = strings.TrimSpace(numHistoriaClinica)
	if numHistoriaClinica == "" {
		return nil, ErrHistoriaRequired
	}

	p, err := s.db.Paciente.Query().
		Where(entpaciente.NumHistoriaClinica(numHistoriaClinica)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrPacienteNotFound
		}
		return nil, fmt.Errorf("get paciente by historia: %w", err)
	}
	return p, nil
}

func (s *pacienteService) List(ctx context.Context, req ListRequest) (*PaginatedResult[*repo.Paciente], error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Paciente.Query()

	if search := strings.TrimSpace(req.Search); search != "" {
		q = q.Where(entpaciente.Or(
			entpaciente.NombreContainsFold(search),
			entpaciente.NumHistoriaClinicaContainsFold(search),
		))
	}

	if req.Order == "asc" {
		q = q.Order(entpaciente.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entpaciente.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count pacientes: %w", err)
	}

	pacientes, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pacientes: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Paciente]{
		Data:       pacientes,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *pacienteService) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (*repo.Paciente, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nombre != nil && strings.TrimSpace(*req.Nombre) == "" {
		return nil, ErrNombreRequired
	}
	if err := s.validateTelefono(req.Telefono); err != nil {
		return nil, err
	}

	u := s.db.Paciente.UpdateOne(p)

	if req.Nombre != nil {
		u = u.SetNombre(strings.TrimSpace(*req.Nombre))
	}
	if req.FechaNacimiento != nil {
		u = u.SetNillableFechaNacimiento(req.FechaNacimiento)
	}
	if req.Genero != nil {
		u = u.SetNillableGenero(req.Genero)
	}
	if req.Direccion != nil {
		u = u.SetNillableDireccion(req.Direccion)
	}
	if req.Telefono != nil {
		u = u.SetNillableTelefono(req.Telefono)
	}
	if req.Dni != nil {
		u = u.SetNillableDni(req.Dni)
	}

	return u.Save(ctx)
}

func (s *pacienteService) Ensure(ctx context.Context, req EnsureRequest) (*repo.Paciente, error) {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.NumHistoriaClinica = strings.TrimSpace(req.NumHistoriaClinica)

	if req.NumHistoriaClinica == "" {
		return nil, ErrHistoriaRequired
	}

	p, err := s.GetByHistoria(ctx, req.NumHistoriaClinica)
	if err == nil {
		return p, nil
	}
	if err != ErrPacienteNotFound {
		return nil, err
	}

	if req.Nombre == "" {
		return nil, ErrNombreRequired
	}

	p, err = s.db.Paciente.Create().
		SetNombre(req.Nombre).
		SetNumHistoriaClinica(req.NumHistoriaClinica).
		SetNillableFechaNacimiento(req.FechaNacimiento).
		SetNillableDni(req.Dni).
		Save(ctx)
	if err != nil {
		// A concurrent Ensure won the race on the unique history
		// number. Their row is as good as ours; use it.
		if repo.IsConstraintError(err) {
			return s.GetByHistoria(ctx, req.NumHistoriaClinica)
		}
		return nil, fmt.Errorf("create paciente: %w", err)
	}
	return p, nil
}

func (s *pacienteService) validateTelefono(telefono *string) error {
	if telefono == nil || strings.TrimSpace(*telefono) == "" {
		return nil
	}

	num, err := phonenumbers.Parse(*telefono, s.phoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return ErrInvalidTelefono
	}
	return nil
}
