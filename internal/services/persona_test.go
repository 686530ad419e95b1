package services

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/consultdesk/backend/internal/models"
	"github.com/consultdesk/backend/pkg/response"
)

func TestValidatePersonaInput(t *testing.T) {
	tests := []struct {
		name    string
		req     UpsertPersonaRequest
		wantErr string // substring of the validation message, "" for valid
	}{
		{
			name: "empty request valid",
			req:  UpsertPersonaRequest{},
		},
		{
			name: "valid full",
			req: UpsertPersonaRequest{
				Formality:   "high",
				DataDensity: "low",
				Urgency:     "high",
				Length:      "short",
				CtaStyle:    "proposal",
				Notes:       "Prefers bullet points, no fluff.",
			},
		},
		{
			name:    "bad formality",
			req:     UpsertPersonaRequest{Formality: "casual"},
			wantErr: "formality must be one of",
		},
		{
			name:    "bad data density",
			req:     UpsertPersonaRequest{DataDensity: "dense"},
			wantErr: "data_density must be one of",
		},
		{
			name:    "bad urgency",
			req:     UpsertPersonaRequest{Urgency: "low"},
			wantErr: "urgency must be one of",
		},
		{
			name:    "bad length",
			req:     UpsertPersonaRequest{Length: "verbose"},
			wantErr: "length must be one of",
		},
		{
			name:    "bad cta style",
			req:     UpsertPersonaRequest{CtaStyle: "call"},
			wantErr: "cta_style must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePersonaInput(&tt.req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if err.HTTPStatus != http.StatusBadRequest {
				t.Errorf("HTTPStatus = %d, want 400", err.HTTPStatus)
			}
			if !strings.Contains(err.Message, tt.wantErr) {
				t.Errorf("Message = %q, want substring %q", err.Message, tt.wantErr)
			}
		})
	}
}

func TestUpsertPersona_OneRowPerClient(t *testing.T) {
	db := testDB(t)
	svc := NewPersonaService(db)

	client := &models.Client{Company: "Northwind", ContactPerson: "Riley", Email: "riley@northwind.example"}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	created, err := svc.UpsertByClient(client.ID, &UpsertPersonaRequest{
		Formality: "high",
		Urgency:   "high",
		Notes:     "Board-level audience.",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if created.Formality != "high" || created.Urgency != "high" {
		t.Errorf("persona not applied: %+v", created)
	}
	// Unset traits fall back to their defaults.
	if created.DataDensity != "medium" || created.Length != "medium" || created.CtaStyle != "meeting" {
		t.Errorf("defaults not applied: %+v", created)
	}

	updated, err := svc.UpsertByClient(client.ID, &UpsertPersonaRequest{
		Formality: "low",
		CtaStyle:  "decision",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("second upsert changed id: %q -> %q", created.ID, updated.ID)
	}
	if updated.Formality != "low" || updated.CtaStyle != "decision" {
		t.Errorf("second upsert did not apply: %+v", updated)
	}

	var count int64
	db.Model(&models.ClientPersona{}).Where("client_id = ?", client.ID).Count(&count)
	if count != 1 {
		t.Errorf("persona rows for client = %d, want 1", count)
	}

	got, err := svc.GetByClient(client.ID)
	if err != nil {
		t.Fatalf("get after upsert: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("get returned id %q, want %q", got.ID, created.ID)
	}
}

func TestUpsertPersona_UnknownClient(t *testing.T) {
	db := testDB(t)
	svc := NewPersonaService(db)

	_, err := svc.UpsertByClient("no-such-client", &UpsertPersonaRequest{})
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %v", err)
	}
}

func TestGetPersona_Absent(t *testing.T) {
	db := testDB(t)
	svc := NewPersonaService(db)

	client := &models.Client{Company: "Northwind", ContactPerson: "Riley", Email: "riley@northwind.example"}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}

	_, err := svc.GetByClient(client.ID)
	var appErr *response.AppError
	if !errors.As(err, &appErr) || appErr.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404 for absent persona, got %v", err)
	}
}
