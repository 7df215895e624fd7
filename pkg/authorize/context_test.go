package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "user id present",
			setupCtx: func() context.Context {
				return WithUserID(context.Background(), validUUID)
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no subject in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in context",
			setupCtx: func() context.Context {
				return WithUserID(context.Background(), uuid.Nil)
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SubjectFromContext(tt.setupCtx())
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.wantSubject {
				t.Errorf("SubjectFromContext() = %q, want %q", got, tt.wantSubject)
			}
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	validUUID := uuid.New()

	ctx := WithUserID(context.Background(), validUUID)
	got, err := UserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != validUUID {
		t.Errorf("UserIDFromContext() = %v, want %v", got, validUUID)
	}

	if _, err := UserIDFromContext(context.Background()); err != ErrNoSubjectInContext {
		t.Errorf("Expected ErrNoSubjectInContext, got %v", err)
	}
}

func TestDomainFromResource(t *testing.T) {
	clinicID := "550e8400-e29b-41d4-a716-446655440000"
	empty := ""

	tests := []struct {
		name     string
		clinicID *string
		want     Domain
	}{
		{"clinic scoped", &clinicID, ClinicDomain(clinicID)},
		{"empty clinic id", &empty, DomainSys},
		{"nil clinic id", nil, DomainSys},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DomainFromResource(tt.clinicID); got != tt.want {
				t.Errorf("DomainFromResource() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustSubjectFromContext_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for empty context")
		}
	}()
	MustSubjectFromContext(context.Background())
}
