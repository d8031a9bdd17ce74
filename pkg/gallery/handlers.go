// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gallery

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/communityhub/portal/internal/authorization"
	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

const multipartOverhead = 1 << 20

type API struct {
	service        ServiceInterface
	guard          authorization.MiddlewareInterface
	maxUploadBytes int64

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	admins := a.guard.RequireRole(types.RoleAdmin)

	mux.Get("/api/v0/gallery", a.list)
	mux.With(admins).Post("/api/v0/admin/gallery", a.upload)
	mux.With(admins).Delete("/api/v0/admin/gallery", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	photos, err := a.service.List(r.Context(), r.URL.Query().Get("album"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, photos)
}

func (a *API) upload(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest,
			httptypes.NewValidationError("body", "must be a form of at most "+strconv.FormatInt(a.maxUploadBytes, 10)+" bytes"), true)
		return
	}

	image, err := a.readImage(r)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	key, err := a.service.Upload(r.Context(), actorID, r.FormValue("album"), image)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.OKResponse{OK: true, ID: key})
}

func (a *API) readImage(r *http.Request) (*Image, error) {
	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, httptypes.NewValidationError("image", "could not be read")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, a.maxUploadBytes+1))
	if err != nil {
		return nil, httptypes.NewValidationError("image", "could not be read")
	}

	return &Image{Name: header.Filename, Data: data}, nil
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())

	if err := a.service.Delete(r.Context(), actorID, r.URL.Query().Get("key")); err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true})
}

func NewAPI(service ServiceInterface, guard authorization.MiddlewareInterface, maxUploadBytes int64, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.maxUploadBytes = maxUploadBytes

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
