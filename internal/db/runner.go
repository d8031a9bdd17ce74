// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
)

// failedRunner answers every statement with err. Statement hands it out when
// the transaction of the context could not begin.
type failedRunner struct {
	err error
}

func (r failedRunner) Exec(string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedRunner) Query(string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedRunner) QueryRow(string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}

func (r failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return failedRow(r)
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...interface{}) error {
	return r.err
}
