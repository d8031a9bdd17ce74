// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/tracing"
)

// maxEventBytes bounds provider event payloads.
const maxEventBytes = 1 << 16

type API struct {
	service       ServiceInterface
	provider      ProviderInterface
	registerToken string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/registration", a.registration)
	mux.Post("/api/v0/webhooks/stripe", a.stripe)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if a.registerToken != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get("Authorization")), []byte(a.registerToken)) != 1 {
		a.logger.Security().AuthnFailure("registration webhook token mismatch")
		httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var identity KratosIdentity
	if err := httptypes.DecodeJSON(w, r, &identity); err != nil {
		httptypes.WriteServiceError(w, a.logger, http.StatusBadRequest, err, true)
		return
	}

	err := a.service.HandleRegistration(r.Context(), &identity)
	switch {
	case errors.Is(err, ErrInvalidIdentity):
		httptypes.WriteError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		httptypes.WriteServiceError(w, a.logger, http.StatusInternalServerError, err, false)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) stripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err != nil {
		httptypes.WriteError(w, http.StatusBadRequest, "payload could not be read")
		return
	}

	event, err := a.provider.ParseWebhook(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, payments.ErrInvalidSignature) {
			httptypes.WriteError(w, http.StatusBadRequest, "invalid signature")
		} else {
			httptypes.WriteError(w, http.StatusBadRequest, "invalid event")
		}
		return
	}

	if err := a.service.HandlePaymentEvent(r.Context(), event); err != nil {
		a.logger.Errorf("payment event %s failed: %v", event.ID, err)
		httptypes.WriteError(w, http.StatusInternalServerError, "event not processed")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]bool{"received": true})
}

func NewAPI(service ServiceInterface, provider ProviderInterface, registerToken string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.provider = provider
	a.registerToken = registerToken

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
