package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/api/http/middleware"
	"github.com/nlonghi/fojas_backend/internal/service/foja"
)

type FojaHandler struct {
	svc foja.Service
}

func NewFojaHandler(svc foja.Service) *FojaHandler {
	return &FojaHandler{svc: svc}
}

func mapFojaError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, foja.ErrFojaNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, foja.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, foja.ErrHistoriaRequired),
		errors.Is(err, foja.ErrMissingField),
		errors.Is(err, foja.ErrInvalidAnestesia),
		errors.Is(err, foja.ErrInvalidRiesgo):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /fojas
func (h *FojaHandler) List(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page               int    `query:"page"`
		PerPage            int    `query:"per_page"`
		NumHistoriaClinica string `query:"num_historia_clinica"`
		MedicoResponsable  string `query:"medico_responsable"`
		SoloValidas        bool   `query:"solo_validas"`
		Order              string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	req := foja.ListRequest{
		Page:        q.Page,
		PerPage:     q.PerPage,
		SoloValidas: q.SoloValidas,
		Order:       q.Order,
	}
	if q.NumHistoriaClinica != "" {
		req.NumHistoriaClinica = &q.NumHistoriaClinica
	}
	if q.MedicoResponsable != "" {
		id, err := uuid.Parse(q.MedicoResponsable)
		if err != nil {
			return badRequest(c, "invalid medico_responsable")
		}
		req.MedicoResponsable = &id
	}

	result, err := h.svc.List(c.Context(), emp, req)
	if err != nil {
		return mapFojaError(c, err)
	}

	return ok(c, fiber.Map{
		"fojas":       result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

type fojaBody struct {
	NombrePaciente     string     `json:"nombre_paciente"`
	NumHistoriaClinica string     `json:"num_historia_clinica"`
	FechaNacimiento    *time.Time `json:"fecha_nacimiento"`
	Dni                *string    `json:"dni"`

	Fecha            time.Time `json:"fecha"`
	Cirujano         string    `json:"cirujano"`
	Ayudante1        *string   `json:"ayudante1"`
	Ayudante2        *string   `json:"ayudante2"`
	Ayudante3        *string   `json:"ayudante3"`
	Anestesiologo    *string   `json:"anestesiologo"`
	Anestesia        string    `json:"anestesia"`
	Instrumentador   *string   `json:"instrumentador"`
	RiesgoQuirurgico string    `json:"riesgo_quirurgico"`

	DiagnosticoPreoperatorio  string  `json:"diagnostico_preoperatorio"`
	PlanQuirurgico            string  `json:"plan_quirurgico"`
	DiagnosticoPostoperatorio string  `json:"diagnostico_postoperatorio"`
	OperacionRealizada        string  `json:"operacion_realizada"`
	AnatomiaPatologica        *string `json:"anatomia_patologica"`
	DescripcionTecnica        string  `json:"descripcion_tecnica"`
}

// POST /fojas
func (h *FojaHandler) Create(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body fojaBody
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	f, err := h.svc.Create(c.Context(), emp, foja.CreateRequest{
		NombrePaciente:            body.NombrePaciente,
		NumHistoriaClinica:        body.NumHistoriaClinica,
		FechaNacimiento:           body.FechaNacimiento,
		Dni:                       body.Dni,
		Fecha:                     body.Fecha,
		Cirujano:                  body.Cirujano,
		Ayudante1:                 body.Ayudante1,
		Ayudante2:                 body.Ayudante2,
		Ayudante3:                 body.Ayudante3,
		Anestesiologo:             body.Anestesiologo,
		Anestesia:                 body.Anestesia,
		Instrumentador:            body.Instrumentador,
		RiesgoQuirurgico:          body.RiesgoQuirurgico,
		DiagnosticoPreoperatorio:  body.DiagnosticoPreoperatorio,
		PlanQuirurgico:            body.PlanQuirurgico,
		DiagnosticoPostoperatorio: body.DiagnosticoPostoperatorio,
		OperacionRealizada:        body.OperacionRealizada,
		AnatomiaPatologica:        body.AnatomiaPatologica,
		DescripcionTecnica:        body.DescripcionTecnica,
	})
	if err != nil {
		return mapFojaError(c, err)
	}

	return created(c, f)
}

// GET /fojas/:id
func (h *FojaHandler) Get(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	f, err := h.svc.GetByID(c.Context(), emp, id)
	if err != nil {
		return mapFojaError(c, err)
	}
	return ok(c, f)
}

// PATCH /fojas/:id
func (h *FojaHandler) Update(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var body struct {
		NombrePaciente  *string    `json:"nombre_paciente"`
		FechaNacimiento *time.Time `json:"fecha_nacimiento"`
		Dni             *string    `json:"dni"`

		Fecha            *time.Time `json:"fecha"`
		Cirujano         *string    `json:"cirujano"`
		Ayudante1        *string    `json:"ayudante1"`
		Ayudante2        *string    `json:"ayudante2"`
		Ayudante3        *string    `json:"ayudante3"`
		Anestesiologo    *string    `json:"anestesiologo"`
		Anestesia        *string    `json:"anestesia"`
		Instrumentador   *string    `json:"instrumentador"`
		RiesgoQuirurgico *string    `json:"riesgo_quirurgico"`

		DiagnosticoPreoperatorio  *string `json:"diagnostico_preoperatorio"`
		PlanQuirurgico            *string `json:"plan_quirurgico"`
		DiagnosticoPostoperatorio *string `json:"diagnostico_postoperatorio"`
		OperacionRealizada        *string `json:"operacion_realizada"`
		AnatomiaPatologica        *string `json:"anatomia_patologica"`
		DescripcionTecnica        *string `json:"descripcion_tecnica"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	f, err := h.svc.Update(c.Context(), emp, id, foja.UpdateRequest{
		NombrePaciente:            body.NombrePaciente,
		FechaNacimiento:           body.FechaNacimiento,
		Dni:                       body.Dni,
		Fecha:                     body.Fecha,
		Cirujano:                  body.Cirujano,
		Ayudante1:                 body.Ayudante1,
		Ayudante2:                 body.Ayudante2,
		Ayudante3:                 body.Ayudante3,
		Anestesiologo:             body.Anestesiologo,
		Anestesia:                 body.Anestesia,
		Instrumentador:            body.Instrumentador,
		RiesgoQuirurgico:          body.RiesgoQuirurgico,
		DiagnosticoPreoperatorio:  body.DiagnosticoPreoperatorio,
		PlanQuirurgico:            body.PlanQuirurgico,
		DiagnosticoPostoperatorio: body.DiagnosticoPostoperatorio,
		OperacionRealizada:        body.OperacionRealizada,
		AnatomiaPatologica:        body.AnatomiaPatologica,
		DescripcionTecnica:        body.DescripcionTecnica,
	})
	if err != nil {
		return mapFojaError(c, err)
	}
	return ok(c, f)
}

// POST /fojas/:id/invalidar
func (h *FojaHandler) ToggleInvalida(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	f, err := h.svc.ToggleInvalida(c.Context(), emp, id)
	if err != nil {
		return mapFojaError(c, err)
	}
	return ok(c, f)
}
