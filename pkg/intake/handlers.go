// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/ratelimit"
	"github.com/communityhub/portal/internal/tracing"
)

type API struct {
	service ServiceInterface
	limiter ratelimit.MiddlewareInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.With(a.limiter.PerIP("contact")).Post("/api/v0/contact", a.contact)
	mux.With(a.limiter.PerIP("volunteers")).Post("/api/v0/volunteers", a.volunteer)
	mux.With(a.limiter.PerIP("social-services")).Post("/api/v0/social-services", a.socialRequest)
}

func (a *API) contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	id, err := a.service.SubmitContact(r.Context(), &req)
	a.respond(w, id, err)
}

func (a *API) volunteer(w http.ResponseWriter, r *http.Request) {
	var req VolunteerRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	id, err := a.service.SubmitVolunteer(r.Context(), &req)
	a.respond(w, id, err)
}

func (a *API) socialRequest(w http.ResponseWriter, r *http.Request) {
	var req SocialRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	id, err := a.service.SubmitSocialRequest(r.Context(), &req)
	a.respond(w, id, err)
}

func (a *API) respond(w http.ResponseWriter, id string, err error) {
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, httptypes.StatusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.OKResponse{OK: true, ID: id})
}

func NewAPI(service ServiceInterface, limiter ratelimit.MiddlewareInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.limiter = limiter

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
