package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/pkg/reqctx"
)

// mockClaims implements reqctx.AuthClaims for testing
type mockClaims struct {
	userID uuid.UUID
}

func (m *mockClaims) GetUserID() uuid.UUID     { return m.userID }
func (m *mockClaims) GetSessionID() *uuid.UUID { return nil }
func (m *mockClaims) GetTokenType() string     { return "access" }
func (m *mockClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: uuid.Nil})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if subject != tt.wantSubject {
				t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
			}
		})
	}
}

func TestRoleFromContext(t *testing.T) {
	tests := []struct {
		name     string
		setupCtx func() context.Context
		wantRole Role
		wantErr  bool
	}{
		{
			name: "resolved identity with valid role",
			setupCtx: func() context.Context {
				ident := &reqctx.Identity{
					UserID:  uuid.New(),
					Email:   "jefe@hospital.test",
					Role:    "MedicoJefe",
					Enabled: true,
				}
				return reqctx.WithIdentity(context.Background(), ident)
			},
			wantRole: RoleMedicoJefe,
			wantErr:  false,
		},
		{
			name: "identity with empty role",
			setupCtx: func() context.Context {
				ident := &reqctx.Identity{UserID: uuid.New(), Enabled: true}
				return reqctx.WithIdentity(context.Background(), ident)
			},
			wantRole: "",
			wantErr:  true,
		},
		{
			name: "identity with unrecognised role",
			setupCtx: func() context.Context {
				ident := &reqctx.Identity{UserID: uuid.New(), Role: "Becario", Enabled: true}
				return reqctx.WithIdentity(context.Background(), ident)
			},
			wantRole: "",
			wantErr:  true,
		},
		{
			name: "no identity in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantRole: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, err := RoleFromContext(tt.setupCtx())
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if role != tt.wantRole {
				t.Errorf("RoleFromContext() = %q, want %q", role, tt.wantRole)
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics without claims", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Expected panic")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject with claims", func(t *testing.T) {
		id := uuid.New()
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: id})
		subject := MustSubjectFromContext(ctx)
		if subject != GroupSubject(id.String()) {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, id.String())
		}
	})
}
