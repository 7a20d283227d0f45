package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/internal/service/foja"
	"github.com/nlonghi/fojas_backend/internal/service/paciente"
	"github.com/nlonghi/fojas_backend/internal/service/usuario"
)

func performMapped(t *testing.T, mapErr func(fiber.Ctx, error) error, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return mapErr(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if testErr != nil {
		t.Fatalf("request failed: %v", testErr)
	}
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		t.Fatalf("reading body: %v", readErr)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decoding %q: %v", raw, err)
	}
	return resp.StatusCode, body.Error
}

// Unrecognized errors are storage or infrastructure failures. Staff on
// internal tooling get the wrapped message back, not a blank 500.
func TestUpstreamFailuresSurfaceRawMessage(t *testing.T) {
	upstream := fmt.Errorf("saving foja: %w", errors.New("pq: connection refused"))

	mappers := map[string]func(fiber.Ctx, error) error{
		"foja":     mapFojaError,
		"paciente": mapPacienteError,
		"usuario":  mapUsuarioError,
	}

	for name, mapErr := range mappers {
		t.Run(name, func(t *testing.T) {
			status, msg := performMapped(t, mapErr, upstream)
			if status != http.StatusInternalServerError {
				t.Fatalf("status = %d, want %d", status, http.StatusInternalServerError)
			}
			if msg != upstream.Error() {
				t.Errorf("error body = %q, want %q", msg, upstream.Error())
			}
		})
	}
}

func TestSentinelErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		mapErr     func(fiber.Ctx, error) error
		err        error
		wantStatus int
	}{
		{"foja not found", mapFojaError, foja.ErrFojaNotFound, http.StatusNotFound},
		{"foja denied", mapFojaError, foja.ErrAccessDenied, http.StatusForbidden},
		{"foja validation", mapFojaError, foja.ErrHistoriaRequired, http.StatusBadRequest},
		{"paciente duplicate", mapPacienteError, paciente.ErrHistoriaAlreadyExists, http.StatusConflict},
		{"usuario self disable", mapUsuarioError, usuario.ErrSelfDisable, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := performMapped(t, tt.mapErr, tt.err)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if msg == "" {
				t.Error("error body is empty")
			}
		})
	}
}
