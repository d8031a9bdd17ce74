// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000

	// txTimeout bounds a transaction detached from the request context.
	txTimeout = time.Minute
)

type txContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// Pagination is a normalized page request, pages start at 1.
type Pagination struct {
	Page   uint64
	Size   uint64
	Offset uint64
}

// Paginate clamps the requested page and size: zero falls back to the
// first page of 50 rows, sizes above 1000 are capped.
func Paginate(page, size uint64) Pagination {
	p := Pagination{Page: 1, Size: defaultPageSize}

	if page > 0 {
		p.Page = page
	}
	switch {
	case size > maxPageSize:
		p.Size = maxPageSize
	case size > 0:
		p.Size = size
	}

	p.Offset = (p.Page - 1) * p.Size
	return p
}

// pendingTx begins the transaction on the first statement, so a WithTx
// block that only validates input never touches the database.
// A failed begin sticks: every later statement and the final outcome of
// WithTx report it.
type pendingTx struct {
	db     *sql.DB
	tx     *sql.Tx
	cancel context.CancelFunc
	done   bool
	err    error
}

func (p *pendingTx) runner() (TxInterface, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.tx != nil {
		return p.tx, nil
	}

	// Detached from the request context, WithTx decides commit or rollback.
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	tx, err := p.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		p.err = fmt.Errorf("failed to begin transaction: %w", err)
		return nil, p.err
	}

	p.tx = tx
	p.cancel = cancel
	return tx, nil
}

func (p *pendingTx) finish(commit bool) error {
	if p.cancel != nil {
		defer p.cancel()
	}
	if p.tx == nil || p.done {
		return nil
	}
	p.done = true

	if commit {
		return p.tx.Commit()
	}
	if err := p.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

type DBClient struct {
	// pool is kept to close it, db runs statements on top of it
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a builder with dollar placeholders running on the
// transaction carried by ctx, or on the pool outside of one. Inside WithTx a
// statement never falls back to the pool: when the transaction cannot begin
// it fails with the begin error.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	p, ok := ctx.Value(txContextKey{}).(*pendingTx)
	if !ok {
		return builder.RunWith(d.db)
	}

	tx, err := p.runner()
	if err != nil {
		d.logger.Errorf("%v", err)
		return builder.RunWith(failedRunner{err: err})
	}
	return builder.RunWith(tx)
}

// WithTx runs fn in a transaction committed when fn returns nil. Nested
// calls join the outer transaction, whose caller decides the outcome.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if _, ok := ctx.Value(txContextKey{}).(*pendingTx); ok {
		return fn(ctx)
	}

	ctx, span := d.tracer.Start(ctx, "db.DBClient.WithTx")
	defer span.End()

	p := &pendingTx{db: d.db}

	if err := fn(context.WithValue(ctx, txContextKey{}, p)); err != nil {
		if rerr := p.finish(false); rerr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rerr)
		}
		return err
	}

	if p.err != nil {
		return p.err
	}

	if err := p.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping checks the connection for the readiness probe and records the
// database availability gauge.
func (d *DBClient) Ping(ctx context.Context) error {
	err := d.db.PingContext(ctx)

	available := 1.0
	if err != nil {
		available = 0
	}
	if merr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); merr != nil {
		d.logger.Debugf("failed to record database availability: %v", merr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient opens a pgx pool for cfg and checks it answers.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %v", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	d := NewDBClientFromDB(stdlib.OpenDBFromPool(pool), tracer, monitor, logger)
	d.pool = pool

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	return d, nil
}

// NewDBClientFromDB wraps an already opened database, tests use it with sqlmock.
func NewDBClientFromDB(db *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
