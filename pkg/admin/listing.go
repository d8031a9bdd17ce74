// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"net/http"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/types"
)

// Listing serves one back office collection as a JSON page or, with
// format=csv, as a CSV export built from the same filter.
type Listing[T any] struct {
	Name   string
	Equals []string

	List   func(context.Context, storage.ListFilter) (*types.Page[T], error)
	Export func(context.Context, storage.ListFilter) ([]T, error)

	Header []string
	Rows   func([]T) [][]string
}

func (l Listing[T]) Handler(logger logging.LoggerInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := ParseFilter(r.URL.Query(), l.Equals...)
		if err != nil {
			httptypes.WriteServiceError(w, logger, http.StatusBadRequest, err, true)
			return
		}

		if l.Export != nil && WantsCSV(r.URL.Query()) {
			items, err := l.Export(r.Context(), f)
			if err != nil {
				httptypes.WriteServiceError(w, logger, httptypes.StatusFor(err), err, true)
				return
			}

			if err := WriteCSV(w, l.Name, l.Header, l.Rows(items)); err != nil {
				logger.Errorf("failed to write %s export: %v", l.Name, err)
			}
			return
		}

		page, err := l.List(r.Context(), f)
		if err != nil {
			httptypes.WriteServiceError(w, logger, httptypes.StatusFor(err), err, true)
			return
		}

		httptypes.WriteJSON(w, http.StatusOK, page)
	}
}
