package services

import (
	"net/http"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateReadmeInput(t *testing.T) {
	tests := []struct {
		name    string
		req     UpsertReadmeRequest
		wantErr string // substring of the validation message, "" for valid
	}{
		{
			name: "valid minimal",
			req:  UpsertReadmeRequest{Title: "Project Atlas"},
		},
		{
			name: "valid full",
			req: UpsertReadmeRequest{
				Title:       "Project Atlas",
				Description: "Quarterly engagement",
				Status:      "In Progress",
				StartDate:   strPtr("2026-01-01"),
				EndDate:     strPtr("2026-06-30"),
			},
		},
		{
			name:    "missing title",
			req:     UpsertReadmeRequest{},
			wantErr: "title is required",
		},
		{
			name:    "title too long",
			req:     UpsertReadmeRequest{Title: strings.Repeat("x", 81)},
			wantErr: "80 characters",
		},
		{
			name: "title at limit",
			req:  UpsertReadmeRequest{Title: strings.Repeat("x", 80)},
		},
		{
			name: "multibyte title at limit",
			req:  UpsertReadmeRequest{Title: strings.Repeat("ä", 80)}, // 160 bytes, 80 chars
		},
		{
			name:    "multibyte title over limit",
			req:     UpsertReadmeRequest{Title: strings.Repeat("ä", 81)},
			wantErr: "80 characters",
		},
		{
			name: "description too long",
			req: UpsertReadmeRequest{
				Title:       "ok",
				Description: strings.Repeat("y", 2001),
			},
			wantErr: "2000 characters",
		},
		{
			name: "description at limit",
			req: UpsertReadmeRequest{
				Title:       "ok",
				Description: strings.Repeat("y", 2000),
			},
		},
		{
			name:    "unknown status",
			req:     UpsertReadmeRequest{Title: "ok", Status: "Cancelled"},
			wantErr: "status must be one of",
		},
		{
			name: "empty status allowed",
			req:  UpsertReadmeRequest{Title: "ok", Status: ""},
		},
		{
			name:    "bad start date format",
			req:     UpsertReadmeRequest{Title: "ok", StartDate: strPtr("01/02/2026")},
			wantErr: "start_date",
		},
		{
			name:    "bad end date format",
			req:     UpsertReadmeRequest{Title: "ok", EndDate: strPtr("soon")},
			wantErr: "end_date",
		},
		{
			name: "start after end",
			req: UpsertReadmeRequest{
				Title:     "ok",
				StartDate: strPtr("2026-07-01"),
				EndDate:   strPtr("2026-06-30"),
			},
			wantErr: "before or equal",
		},
		{
			name: "start equals end",
			req: UpsertReadmeRequest{
				Title:     "ok",
				StartDate: strPtr("2026-06-30"),
				EndDate:   strPtr("2026-06-30"),
			},
		},
		{
			name: "start only",
			req:  UpsertReadmeRequest{Title: "ok", StartDate: strPtr("2026-01-01")},
		},
		{
			name: "end only",
			req:  UpsertReadmeRequest{Title: "ok", EndDate: strPtr("2026-01-01")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateReadmeInput(&tt.req)
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
