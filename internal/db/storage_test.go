// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

func newMockClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(conn, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestPaginate(t *testing.T) {
	assert.Equal(t, Pagination{Page: 1, Size: 50, Offset: 0}, Paginate(0, 0))
	assert.Equal(t, Pagination{Page: 1, Size: 20, Offset: 0}, Paginate(0, 20))
	assert.Equal(t, Pagination{Page: 3, Size: 50, Offset: 100}, Paginate(3, 50))
	assert.Equal(t, Pagination{Page: 2, Size: 1000, Offset: 1000}, Paginate(2, 5000))
}

func TestWithTxCommits(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE donations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := c.Statement(ctx).Update("donations").Set("status", "failed").ExecContext(ctx)
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBack(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO donations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	boom := errors.New("proof insert failed")
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Insert("donations").Columns("id").Values("d1").ExecContext(ctx); err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxWithoutQueriesDoesNotBegin(t *testing.T) {
	c, mock := newMockClient(t)

	err := c.WithTx(context.Background(), func(context.Context) error { return nil })

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxFailsWhenBeginFails(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Insert("donations").Columns("id").Values("d1").ExecContext(ctx); err != nil {
			return err
		}
		_, err := c.Statement(ctx).Insert("donation_proofs").Columns("donation_id").Values("d1").ExecContext(ctx)
		return err
	})

	assert.ErrorContains(t, err, "too many connections")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxReportsBeginFailureSwallowedByFn(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		var id string
		_ = c.Statement(ctx).Select("id").From("donations").QueryRowContext(ctx).Scan(&id)
		return nil
	})

	assert.ErrorContains(t, err, "failed to begin transaction")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxJoinsOuterTransaction(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO membership_households").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO role_assignments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Insert("membership_households").Columns("id").Values("h1").ExecContext(ctx); err != nil {
			return err
		}
		return c.WithTx(ctx, func(ctx context.Context) error {
			_, err := c.Statement(ctx).Insert("role_assignments").Columns("identity_id").Values("u1").ExecContext(ctx)
			return err
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		status int
		expect func(sqlmock.Sqlmock)
	}{
		{
			name:   "commit on success",
			status: http.StatusOK,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE contact_messages").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
		},
		{
			name:   "rollback on client error",
			status: http.StatusConflict,
			expect: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("UPDATE contact_messages").WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectRollback()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, mock := newMockClient(t)
			tt.expect(mock)

			h := TransactionMiddleware(c, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := r.Context()
				if _, err := c.Statement(ctx).Update("contact_messages").Set("status", "seen").ExecContext(ctx); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				w.WriteHeader(tt.status)
			}))

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/v0/admin/messages/m1", nil))

			assert.Equal(t, tt.status, rr.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionMiddlewareHoldsResponseUntilCommit(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE donations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("connection reset"))

	h := TransactionMiddleware(c, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, err := c.Statement(ctx).Update("donations").Set("status", "succeeded").ExecContext(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"succeeded"}`))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/v0/admin/donations/d1", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "succeeded")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddlewareForwardsCommittedResponse(t *testing.T) {
	c, mock := newMockClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE donations").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	h := TransactionMiddleware(c, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, err := c.Statement(ctx).Update("donations").Set("status", "succeeded").ExecContext(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"status":"succeeded"}`))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/v0/admin/donations/d1", nil))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"succeeded"}`, rr.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
