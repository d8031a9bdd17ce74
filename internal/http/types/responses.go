// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/storage"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
)

const genericServerError = "something went wrong, please try again later"

// ErrorResponse is the body of every 4xx and 5xx response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// OKResponse acknowledges a public submission.
type OKResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// ValidationError collects field level messages. It is returned before any
// write happens.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, message string) *ValidationError {
	v := new(ValidationError)
	v.Add(field, message)
	return v
}

func (v *ValidationError) Add(field, message string) {
	if v.Fields == nil {
		v.Fields = make(map[string]string)
	}
	if _, ok := v.Fields[field]; !ok {
		v.Fields[field] = message
	}
}

// Err returns nil when no field failed.
func (v *ValidationError) Err() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	keys := make([]string, 0, len(v.Fields))
	for k := range v.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + v.Fields[k]
	}
	return strings.Join(parts, "; ")
}

// FromValidator converts go-playground/validator failures, keyed by the JSON
// field name when the validator was set up with a tag name func.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	v := new(ValidationError)
	for _, fe := range verrs {
		v.Add(fe.Field(), describe(fe))
	}
	return v
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be at least " + fe.Param()
	case "max", "lte":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	}
	return "is invalid"
}

// StatusFor maps service errors to HTTP status codes.
func StatusFor(err error) int {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr), errors.Is(err, storage.ErrInvalidValue), errors.Is(err, storage.ErrExportTooLarge):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, storage.ErrConflict), errors.Is(err, storage.ErrDuplicateKey):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// WriteServiceError writes err with the given status. Server errors are
// logged and replaced with a generic message unless verbose is set, admin
// screens pass verbose to see upstream error text.
func WriteServiceError(w http.ResponseWriter, logger logging.LoggerInterface, status int, err error, verbose bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		WriteJSON(w, status, ErrorResponse{Error: verr.Error(), Fields: verr.Fields})
		return
	}

	if status < http.StatusInternalServerError {
		WriteError(w, status, err.Error())
		return
	}

	logger.Errorf("request failed: %v", err)

	if verbose {
		WriteError(w, status, err.Error())
		return
	}
	WriteError(w, status, genericServerError)
}
