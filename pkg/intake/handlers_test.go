// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/ratelimit"
	"github.com/communityhub/portal/internal/tracing"
)

func newTestMux(svc ServiceInterface, burst int) *chi.Mux {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	limiter := ratelimit.NewMiddleware(ratelimit.NewMemoryLimiter(ratelimit.Policy{PerMinute: 1, Burst: burst}), tracer, monitor, logger)

	mux := chi.NewMux()
	NewAPI(svc, limiter, tracer, monitor, logger).RegisterEndpoints(mux)
	return mux
}

func post(mux http.Handler, path, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.RemoteAddr = "203.0.113.7:5000"

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)
	return w
}

func TestAPI_Submissions(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		body   string
		setup  func(*MockServiceInterface)
		status int
	}{
		{
			name:   "contact",
			path:   "/api/v0/contact",
			body:   `{"name":"Jane","email":"jane@example.org","message":"hello"}`,
			setup:  func(s *MockServiceInterface) { s.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return("msg-1", nil) },
			status: http.StatusCreated,
		},
		{
			name:   "contact without email",
			path:   "/api/v0/contact",
			body:   `{"name":"Jane","message":"hello"}`,
			setup:  func(*MockServiceInterface) {},
			status: http.StatusBadRequest,
		},
		{
			name:   "volunteer",
			path:   "/api/v0/volunteers",
			body:   `{"name":"Omar","email":"omar@example.org"}`,
			setup:  func(s *MockServiceInterface) { s.EXPECT().SubmitVolunteer(gomock.Any(), gomock.Any()).Return("vol-1", nil) },
			status: http.StatusCreated,
		},
		{
			name:   "social request with negative amount",
			path:   "/api/v0/social-services",
			body:   `{"name":"Amina","email":"amina@example.org","reason":"rent","description":"late","amountRequestedCents":-1}`,
			setup:  func(*MockServiceInterface) {},
			status: http.StatusBadRequest,
		},
		{
			name: "social request rejected by service",
			path: "/api/v0/social-services",
			body: `{"name":"Amina","email":"amina@example.org","reason":"rent","description":"late"}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().SubmitSocialRequest(gomock.Any(), gomock.Any()).Return("", httptypes.NewValidationError("description", "is required"))
			},
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed body",
			path:   "/api/v0/volunteers",
			body:   `{"name":`,
			setup:  func(*MockServiceInterface) {},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			tc.setup(svc)

			w := post(newTestMux(svc, 5), tc.path, tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}

			var resp map[string]interface{}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if tc.status == http.StatusCreated && resp["ok"] != true {
				t.Errorf("expected ok response, got %v", resp)
			}
			if tc.status != http.StatusCreated && resp["error"] == nil {
				t.Errorf("expected error field, got %v", resp)
			}
		})
	}
}

func TestAPI_ContactRateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).Return("msg-1", nil).Times(2)

	mux := newTestMux(svc, 2)
	body := `{"name":"Jane","email":"jane@example.org","message":"hello"}`

	for i := 0; i < 2; i++ {
		if w := post(mux, "/api/v0/contact", body); w.Code != http.StatusCreated {
			t.Fatalf("request %d: expected status 201, got %d", i, w.Code)
		}
	}

	if w := post(mux, "/api/v0/contact", body); w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", w.Code)
	}
}
