// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/tracing"
)

func newTestMux(svc ServiceInterface, provider ProviderInterface, token string) *chi.Mux {
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	NewAPI(svc, provider, token, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(mux)
	return mux
}

func TestAPI_Stripe(t *testing.T) {
	testCases := []struct {
		name           string
		setup          func(*MockServiceInterface, *MockProviderInterface)
		expectedStatus int
	}{
		{
			name: "verified event is handled",
			setup: func(svc *MockServiceInterface, p *MockProviderInterface) {
				event := &payments.Event{ID: "evt_1", Type: payments.EventCheckoutCompleted}
				p.EXPECT().ParseWebhook([]byte(`{"id":"evt_1"}`), "t=1,v1=abc").Return(event, nil)
				svc.EXPECT().HandlePaymentEvent(gomock.Any(), event).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "bad signature is rejected before dispatch",
			setup: func(_ *MockServiceInterface, p *MockProviderInterface) {
				p.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: mismatch", payments.ErrInvalidSignature))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "undecodable event",
			setup: func(_ *MockServiceInterface, p *MockProviderInterface) {
				p.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(nil, errors.New("failed to decode"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "transient failure asks for redelivery",
			setup: func(svc *MockServiceInterface, p *MockProviderInterface) {
				p.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(&payments.Event{ID: "evt_1"}, nil)
				svc.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			provider := NewMockProviderInterface(ctrl)
			tc.setup(svc, provider)

			r := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/stripe", strings.NewReader(`{"id":"evt_1"}`))
			r.Header.Set("Stripe-Signature", "t=1,v1=abc")

			w := httptest.NewRecorder()
			newTestMux(svc, provider, "").ServeHTTP(w, r)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_StripePayloadTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)

	r := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/stripe", strings.NewReader(strings.Repeat("x", maxEventBytes+1)))

	w := httptest.NewRecorder()
	newTestMux(NewMockServiceInterface(ctrl), NewMockProviderInterface(ctrl), "").ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestAPI_Registration(t *testing.T) {
	testCases := []struct {
		name           string
		token          string
		header         string
		body           string
		setup          func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"id":"id-1","traits":{"email":"jane@example.org"}}`,
			setup: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), &KratosIdentity{ID: "id-1", Traits: KratosTraits{Email: "jane@example.org"}}).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid body",
			body:           `not-json`,
			setup:          func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing email",
			body: `{"id":"id-1"}`,
			setup: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(ErrInvalidIdentity)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"id":"id-1","traits":{"email":"jane@example.org"}}`,
			setup: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "wrong token",
			token:          "s3cret",
			header:         "nope",
			body:           `{"id":"id-1","traits":{"email":"jane@example.org"}}`,
			setup:          func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "matching token",
			token:  "s3cret",
			header: "s3cret",
			body:   `{"id":"id-1","traits":{"email":"jane@example.org"}}`,
			setup: func(svc *MockServiceInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			tc.setup(svc)

			r := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/registration", strings.NewReader(tc.body))
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			newTestMux(svc, NewMockProviderInterface(ctrl), tc.token).ServeHTTP(w, r)

			if w.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
