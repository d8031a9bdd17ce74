// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/version"
)

const readyTimeout = 2 * time.Second

type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

// ready reports whether the database answers.
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	available := 1.0
	err := a.db.Ping(ctx)
	if err != nil {
		available = 0
	}
	if merr := a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, available); merr != nil {
		a.logger.Debugf("failed to record database availability: %v", merr)
	}

	if err != nil {
		a.logger.Errorf("database ping failed: %v", err)
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable", Version: version.Version})
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok", Version: version.Version})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, map[string]string{"version": version.Version})
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
