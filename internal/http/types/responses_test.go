// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/storage"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: NewValidationError("fund", "is required"), want: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("submit: %w", NewValidationError("fund", "is required")), want: http.StatusBadRequest},
		{name: "unauthenticated", err: ErrUnauthenticated, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "not found", err: fmt.Errorf("get donation: %w", storage.ErrNotFound), want: http.StatusNotFound},
		{name: "conflict", err: storage.ErrConflict, want: http.StatusConflict},
		{name: "export too large", err: fmt.Errorf("%w: 12000 rows match", storage.ErrExportTooLarge), want: http.StatusBadRequest},
		{name: "upstream", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestValidationErrorKeepsFirstMessagePerField(t *testing.T) {
	v := new(ValidationError)
	if v.Err() != nil {
		t.Fatal("empty validation error must be nil")
	}

	v.Add("transactionId", "must be at least 4 characters")
	v.Add("transactionId", "is required")
	v.Add("amountCents", "must be at least 100")

	if got := v.Error(); got != "amountCents: must be at least 100; transactionId: must be at least 4 characters" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestFromValidator(t *testing.T) {
	type req struct {
		Email string `validate:"required,email"`
	}

	err := FromValidator(validator.New().Struct(req{Email: "nope"}))

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["Email"] != "must be a valid email address" {
		t.Fatalf("unexpected fields %v", verr.Fields)
	}
}

func TestWriteServiceErrorHidesUpstreamDetails(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    string
	}{
		{name: "public", verbose: false, want: genericServerError},
		{name: "admin", verbose: true, want: "pq: connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteServiceError(w, logging.NewNoopLogger(), http.StatusInternalServerError, errors.New("pq: connection refused"), tt.verbose)

			var body ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if w.Code != http.StatusInternalServerError || body.Error != tt.want {
				t.Fatalf("unexpected response %d %q", w.Code, body.Error)
			}
		})
	}
}

func TestWriteServiceErrorIncludesFields(t *testing.T) {
	w := httptest.NewRecorder()
	WriteServiceError(w, logging.NewNoopLogger(), http.StatusBadRequest, NewValidationError("fund", "is required"), false)

	var body ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Fields["fund"] != "is required" || body.Error != "fund: is required" {
		t.Fatalf("unexpected body %+v", body)
	}
}

type decodeTarget struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{name: "valid", body: `{"name":"Amina","email":"amina@example.com"}`},
		{name: "empty body", body: ``, wantFields: []string{"body"}},
		{name: "malformed", body: `{"name":`, wantFields: []string{"body"}},
		{name: "missing fields use json names", body: `{"email":"nope"}`, wantFields: []string{"name", "email"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			var v decodeTarget
			err := DecodeJSON(w, r, &v)

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			for _, f := range tt.wantFields {
				if _, ok := verr.Fields[f]; !ok {
					t.Errorf("expected field %q in %v", f, verr.Fields)
				}
			}
		})
	}
}
