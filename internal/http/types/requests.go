// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxJSONBody bounds every JSON request body.
const MaxJSONBody int64 = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON reads a bounded JSON body into v and validates it. Errors are
// ValidationErrors and map to 400.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBody))

	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return NewValidationError("body", fmt.Sprintf("must be at most %d bytes", maxErr.Limit))
		case errors.Is(err, io.EOF):
			return NewValidationError("body", "is required")
		}
		return NewValidationError("body", "is not valid JSON")
	}

	return Validate(v)
}

// Validate runs the struct's validate tags.
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return FromValidator(err)
	}
	return nil
}
