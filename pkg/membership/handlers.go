// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/communityhub/portal/internal/authorization"
	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
	"github.com/communityhub/portal/pkg/admin"
)

type API struct {
	service ServiceInterface
	guard   authorization.MiddlewareInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	users := a.guard.RequireRole(types.RoleUser)
	admins := a.guard.RequireRole(types.RoleAdmin)

	households := admin.Listing[types.Household]{
		Name:   "memberships",
		Equals: []string{"status", "recurrence"},
		List:   a.service.ListHouseholds,
	}

	mux.Get("/api/v0/pricing", a.pricing)
	mux.With(admins).Put("/api/v0/admin/pricing/{type}", a.setPricing)

	mux.Post("/api/v0/memberships/quote", a.quote)
	mux.With(users).Post("/api/v0/memberships/checkout", a.checkout)
	mux.With(users).Post("/api/v0/memberships/renew", a.renew)

	mux.With(users).Get("/api/v0/checkout/sessions/{id}", a.lookup)
	mux.With(users).Post("/api/v0/checkout/sessions/{id}/finalize", a.finalize)

	mux.With(users).Get("/api/v0/me/membership", a.myMembership)

	mux.With(admins).Get("/api/v0/admin/memberships", households.Handler(a.logger))
	mux.With(admins).Post("/api/v0/admin/memberships/{id}/revoke", a.revoke)
}

// statusFor extends the shared mapping with the checkout session errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingIdentity), errors.Is(err, ErrWrongKind):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotPaid):
		return http.StatusConflict
	}
	return httptypes.StatusFor(err)
}

func (a *API) pricing(w http.ResponseWriter, r *http.Request) {
	rules, err := a.service.Pricing(r.Context())
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rules)
}

func (a *API) setPricing(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())

	category, err := types.ParseMemberCategory(chi.URLParam(r, "type"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, httptypes.NewValidationError("type", "must be one of: student senior regular youth"), true)
		return
	}

	var req PricingRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	rule := &types.PricingRule{MemberType: category, AmountCents: req.AmountCents, MinAge: req.MinAge, MaxAge: req.MaxAge}
	if err := a.service.SetPricing(r.Context(), actorID, rule); err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, true)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, rule)
}

func (a *API) quote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	q, err := a.service.Quote(r.Context(), req.Members)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, q)
}

func (a *API) checkout(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	var req CheckoutRequest
	if err := httptypes.DecodeJSON(w, r, &req); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, false)
		return
	}

	sess, err := a.service.CreateCheckout(r.Context(), identityID, &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, sess)
}

func (a *API) renew(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	sess, err := a.service.Renew(r.Context(), identityID)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, sess)
}

func (a *API) lookup(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	res, err := a.service.Lookup(r.Context(), identityID, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, res)
}

func (a *API) finalize(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	h, err := a.service.Finalize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	// the household is only shown to its owner, finalization itself is
	// harmless for anyone holding the session id
	if h.IdentityID != identityID {
		httptypes.WriteServiceError(w, a.logger, http.StatusNotFound, storage.ErrNotFound, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, LookupResult{Status: StatusReady, Membership: h})
}

func (a *API) myMembership(w http.ResponseWriter, r *http.Request) {
	identityID, _ := identity.IdentityID(r.Context())

	h, err := a.service.MyMembership(r.Context(), identityID)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, false)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, h)
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	actorID, _ := identity.IdentityID(r.Context())
	id := chi.URLParam(r, "id")

	if err := a.service.Revoke(r.Context(), actorID, id); err != nil {
		httptypes.WriteServiceError(w, a.logger, statusFor(err), err, true)
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
