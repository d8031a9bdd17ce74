// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
)

func TestNewNoopTracer(t *testing.T) {
	tracer := NewNoopTracer()

	ctx, span := tracer.Start(context.Background(), "tracing.TestNewNoopTracer")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
	if span.SpanContext().IsValid() {
		t.Fatal("noop spans must not carry a valid span context")
	}
}

func TestNewTracerWithoutExporter(t *testing.T) {
	tracer := NewTracer(NewConfig(true, false, "portal-test", "", "", logging.NewNoopLogger()))

	_, span := tracer.Start(context.Background(), "tracing.TestNewTracerWithoutExporter")
	span.End()
}

func TestOpenTelemetryMiddleware(t *testing.T) {
	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(monitoring.NewNoopMonitor("portal-test", logger), logger)

	called := false
	h := mdw.OpenTelemetry(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v0/pricing", nil))

	if !called || rr.Code != http.StatusTeapot {
		t.Fatalf("expected wrapped handler to run, got status %d", rr.Code)
	}
}
