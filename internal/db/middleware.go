// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/communityhub/portal/internal/logging"
)

// statusError rolls the request transaction back for a handler that
// answered with an error status.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("handler answered %d", e.status)
}

// bufferedWriter holds the handler response until the transaction outcome
// is known.
type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	_, _ = w.Write(b.body.Bytes())
}

// TransactionMiddleware runs every mutating request in one transaction,
// rolled back when the handler answers with a status of 400 or more. The
// response is held until the commit succeeds, a failed commit answers 500.
// Reads go straight to the pool.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			bw := &bufferedWriter{header: make(http.Header)}

			err := db.WithTx(r.Context(), func(ctx context.Context) error {
				next.ServeHTTP(bw, r.WithContext(ctx))

				if bw.status >= http.StatusBadRequest {
					return &statusError{status: bw.status}
				}
				return nil
			})

			var serr *statusError
			switch {
			case err == nil:
			case errors.As(err, &serr):
				logger.Debugf("%s %s rolled back: %v", r.Method, r.URL.Path, err)
			default:
				logger.Errorf("%s %s transaction failed: %v", r.Method, r.URL.Path, err)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "something went wrong, please try again later"})
				return
			}

			bw.flush(w)
		})
	}
}
