// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communityhub/portal/internal/authorization"
	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

type API struct {
	service ServiceInterface
	guard   authorization.MiddlewareInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	admins := a.guard.RequireRole(types.RoleAdmin)
	volunteers := a.guard.RequireRole(types.RoleVolunteer)

	messages := Listing[types.ContactMessage]{
		Name:   "messages",
		Equals: []string{"status"},
		List:   a.service.ListMessages,
		Export: a.service.ExportMessages,
		Header: MessageHeader,
		Rows:   MessageRows,
	}
	signups := Listing[types.VolunteerSignup]{
		Name:   "volunteers",
		Equals: []string{"status"},
		List:   a.service.ListSignups,
		Export: a.service.ExportSignups,
		Header: SignupHeader,
		Rows:   SignupRows,
	}
	requests := Listing[types.SocialServiceRequest]{
		Name:   "social-requests",
		Equals: []string{"status", "reason", "assignedTo"},
		List:   a.service.ListRequests,
		Export: a.service.ExportRequests,
		Header: RequestHeader,
		Rows:   RequestRows,
	}

	mux.With(admins).Get("/api/v0/admin/messages", messages.Handler(a.logger))
	mux.With(admins).Patch("/api/v0/admin/messages/{id}", a.updateMessage)

	mux.With(admins).Get("/api/v0/admin/volunteers", signups.Handler(a.logger))
	mux.With(admins).Patch("/api/v0/admin/volunteers/{id}", a.updateSignup)

	mux.With(volunteers).Get("/api/v0/admin/social-requests", requests.Handler(a.logger))
	mux.With(volunteers).Patch("/api/v0/admin/social-requests/{id}", a.updateRequest)
}

func actorFrom(r *http.Request) Actor {
	id, _ := identity.IdentityID(r.Context())
	role, _ := identity.Role(r.Context())
	return Actor{ID: id, Role: role}
}

func (a *API) updateMessage(w http.ResponseWriter, r *http.Request) {
	var p MessagePatch
	if err := httptypes.DecodeJSON(w, r, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.UpdateMessage(r.Context(), actorFrom(r), id, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true, ID: id})
}

func (a *API) updateSignup(w http.ResponseWriter, r *http.Request) {
	var p SignupPatch
	if err := httptypes.DecodeJSON(w, r, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.UpdateSignup(r.Context(), actorFrom(r), id, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true, ID: id})
}

func (a *API) updateRequest(w http.ResponseWriter, r *http.Request) {
	var p RequestPatch
	if err := httptypes.DecodeJSON(w, r, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.UpdateRequest(r.Context(), actorFrom(r), id, &p); err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true, ID: id})
}

func NewAPI(service ServiceInterface, guard authorization.MiddlewareInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.guard = guard

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
