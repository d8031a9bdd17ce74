// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/communityhub/portal/internal/db"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// WithTx runs fn inside a single transaction, every Storage call made with the
// context passed to fn joins it.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "storage.WithTx")
	defer span.End()

	return s.db.WithTx(ctx, fn)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

type scanFunc[T any] func(sq.RowScanner) (T, error)

func listPage[T any](ctx context.Context, s *Storage, spec listSpec, f ListFilter, scan scanFunc[T]) (*types.Page[T], error) {
	where := f.where(spec)

	total, err := countRows(ctx, s, spec, where)
	if err != nil {
		return nil, err
	}

	p := db.Paginate(f.Page, f.PageSize)

	items, err := selectRows(ctx, s, spec, where, f.orderBy(spec), p.Size, p.Offset, scan)
	if err != nil {
		return nil, err
	}

	return &types.Page[T]{Items: items, Total: total, Page: p.Page, PageSize: p.Size}, nil
}

func countRows(ctx context.Context, s *Storage, spec listSpec, where sq.And) (uint64, error) {
	var total uint64
	err := applyWhere(s.db.Statement(ctx).Select("COUNT(*)").From(spec.table), where).
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", spec.table, err)
	}
	return total, nil
}

// exportRows returns every row matching f. Filters matching more than
// ExportLimit rows fail with ErrExportTooLarge instead of a truncated export.
func exportRows[T any](ctx context.Context, s *Storage, spec listSpec, f ListFilter, scan scanFunc[T]) ([]T, error) {
	where := f.where(spec)

	total, err := countRows(ctx, s, spec, where)
	if err != nil {
		return nil, err
	}
	if total > ExportLimit {
		return nil, fmt.Errorf("%w: %d rows match, at most %d can be exported", ErrExportTooLarge, total, ExportLimit)
	}

	return selectRows(ctx, s, spec, where, f.orderBy(spec), ExportLimit, 0, scan)
}

func selectRows[T any](ctx context.Context, s *Storage, spec listSpec, where sq.And, orderBy string, limit, offset uint64, scan scanFunc[T]) ([]T, error) {
	q := applyWhere(s.db.Statement(ctx).Select(spec.columns...).From(spec.table), where).
		OrderBy(orderBy).
		Limit(limit)
	if offset > 0 {
		q = q.Offset(offset)
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", spec.table, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", spec.table, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", spec.table, err)
	}

	return items, nil
}

func getOne[T any](ctx context.Context, s *Storage, spec listSpec, where sq.Sqlizer, scan scanFunc[T]) (T, error) {
	item, err := scan(s.db.Statement(ctx).Select(spec.columns...).From(spec.table).Where(where).QueryRowContext(ctx))
	if err != nil {
		var zero T
		if isNoRows(err) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("failed to get from %s: %w", spec.table, err)
	}
	return item, nil
}

// updateWhere applies set to the row matching where and reports ErrNotFound,
// or ErrConflict when guarded, if nothing matched.
func (s *Storage) updateWhere(ctx context.Context, table string, set map[string]interface{}, where sq.Sqlizer, guarded bool) error {
	set["updated_at"] = sq.Expr("now()")

	res, err := s.db.Statement(ctx).Update(table).SetMap(set).Where(where).ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "update "+table)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		if guarded {
			return ErrConflict
		}
		return ErrNotFound
	}

	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
