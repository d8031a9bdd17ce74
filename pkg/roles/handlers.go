// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

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
	mux.With(a.guard.RequireRole(types.RoleUser)).Get("/api/v0/me", a.me)
	mux.With(a.guard.RequireRole(types.RoleUser)).Put("/api/v0/me/profile", a.saveProfile)

	mux.With(a.guard.RequireRole(types.RoleAdmin)).Get("/api/v0/admin/roles/{identityId}", a.getRoles)
	mux.With(a.guard.RequireRole(types.RoleAdmin)).Put("/api/v0/admin/roles/{identityId}", a.setRole)
	mux.With(a.guard.RequireRole(types.RoleSuperAdmin)).Post("/api/v0/admin/roles/by-email", a.setRoleByEmail)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	me, err := a.service.Me(r.Context(), identityID)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, me)
}

func (a *API) saveProfile(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	var req ProfileRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	p, err := a.service.SaveProfile(r.Context(), &types.Profile{
		IdentityID: identityID,
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, p)
}

func (a *API) getRoles(w http.ResponseWriter, r *http.Request) {
	as, err := a.service.GetRoles(r.Context(), chi.URLParam(r, "identityId"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, as)
}

func (a *API) setRole(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())
	actor, _ := identity.Role(r.Context())

	var req RoleRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, httptypes.NewValidationError("role", "is not a known role"), true)
		return
	}

	identityID := chi.URLParam(r, "identityId")
	if err := a.service.SetRole(r.Context(), actor, actorID, identityID, role); err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true, ID: identityID})
}

func (a *API) setRoleByEmail(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())
	actor, _ := identity.Role(r.Context())

	var req RoleByEmailRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	role, err := types.ParseRole(req.Role)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, httptypes.NewValidationError("role", "is not a known role"), true)
		return
	}

	identityID, err := a.service.SetRoleByEmail(r.Context(), actor, actorID, req.Email, role)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.OKResponse{OK: true, ID: identityID})
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
