// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrInvalidValue is a CHECK constraint failure, an enum value that got
	// past request validation.
	ErrInvalidValue = errors.New("value rejected by the schema")
	// ErrConflict means a conditional update found the row in another state.
	ErrConflict = errors.New("resource was modified concurrently")
	// ErrExportTooLarge means an export filter matches more rows than
	// ExportLimit, the caller has to narrow it.
	ErrExportTooLarge = errors.New("too many rows to export, narrow the filters")
)

// constraintErrors maps PostgreSQL error codes to the sentinels above.
var constraintErrors = map[string]error{
	"23505": ErrDuplicateKey,
	"23503": ErrForeignKeyViolation,
	"23514": ErrInvalidValue,
}

func constraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	return constraintErrors[pgErr.Code]
}

// IsDuplicateKeyError reports a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return errors.Is(err, ErrDuplicateKey) || constraintError(err) == ErrDuplicateKey
}

// mapWriteError converts constraint violations into the package sentinels,
// naming the constraint so the log line points at the offending column.
func mapWriteError(err error, op string) error {
	sentinel := constraintError(err)
	if sentinel == nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}

	var pgErr *pgconn.PgError
	errors.As(err, &pgErr)
	if pgErr.ConstraintName != "" {
		return fmt.Errorf("%s (%s): %w", op, pgErr.ConstraintName, sentinel)
	}
	return fmt.Errorf("%s: %w", op, sentinel)
}
