// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/communityhub/portal/internal/authorization"
	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/payments"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

func newTestMux(ctrl *gomock.Controller, svc ServiceInterface, role types.Role) *chi.Mux {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	authz := authorization.NewMockAuthorizerInterface(ctrl)
	authz.EXPECT().ResolveRole(gomock.Any(), gomock.Any()).Return(role).AnyTimes()

	mux := chi.NewMux()
	NewAPI(svc, authorization.NewMiddleware(authz, tracer, monitor, logger), tracer, monitor, logger).RegisterEndpoints(mux)
	return mux
}

func signedIn(r *http.Request) *http.Request {
	return r.WithContext(identity.WithIdentityID(r.Context(), "id-1"))
}

func TestAPI_Quote(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Quote(gomock.Any(), []MemberInput{{FullName: "A", Age: 30, Category: "regular"}}).Return(&Quote{TotalCents: 5000}, nil)

	w := httptest.NewRecorder()
	newTestMux(ctrl, svc, types.RoleUser).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/memberships/quote", strings.NewReader(`{"members":[{"fullName":"A","age":30,"category":"regular"}]}`)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAPI_QuoteRejectsBadBody(t *testing.T) {
	tests := []string{
		`{"members":[]}`,
		`{"members":[{"fullName":"A","age":30,"category":"vip"}]}`,
		`{"members":`,
	}

	for _, body := range tests {
		ctrl := gomock.NewController(t)

		w := httptest.NewRecorder()
		newTestMux(ctrl, NewMockServiceInterface(ctrl), types.RoleUser).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/memberships/quote", strings.NewReader(body)))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected status 400, got %d", body, w.Code)
		}
	}
}

func TestAPI_CheckoutNeedsSignIn(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := httptest.NewRecorder()
	newTestMux(ctrl, NewMockServiceInterface(ctrl), types.RoleUser).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v0/memberships/checkout", strings.NewReader(`{}`)))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAPI_Checkout(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().CreateCheckout(gomock.Any(), "id-1", gomock.Any()).Return(&payments.CheckoutSession{ID: "cs_1", URL: "https://checkout.example/cs_1"}, nil)

	w := httptest.NewRecorder()
	req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v0/memberships/checkout", strings.NewReader(`{"recurrence":"yearly","members":[{"fullName":"A","age":30,"category":"regular"}]}`)))
	newTestMux(ctrl, svc, types.RoleUser).ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	var sess payments.CheckoutSession
	if err := json.NewDecoder(w.Body).Decode(&sess); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if sess.ID != "cs_1" || sess.URL == "" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestAPI_FinalizeStatusCodes(t *testing.T) {
	tests := []struct {
		name           string
		household      *types.Household
		err            error
		expectedStatus int
	}{
		{name: "finalized", household: &types.Household{ID: "hh-1", IdentityID: "id-1"}, expectedStatus: http.StatusOK},
		{name: "someone else's household", household: &types.Household{ID: "hh-2", IdentityID: "id-2"}, expectedStatus: http.StatusNotFound},
		{name: "missing identity", err: ErrMissingIdentity, expectedStatus: http.StatusBadRequest},
		{name: "not paid", err: ErrNotPaid, expectedStatus: http.StatusConflict},
		{name: "provider down", err: errors.New("stripe unavailable"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			svc.EXPECT().Finalize(gomock.Any(), "cs_1").Return(tt.household, tt.err)

			w := httptest.NewRecorder()
			newTestMux(ctrl, svc, types.RoleUser).ServeHTTP(w, signedIn(httptest.NewRequest(http.MethodPost, "/api/v0/checkout/sessions/cs_1/finalize", nil)))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAPI_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Lookup(gomock.Any(), "id-1", "cs_1").Return(&LookupResult{Status: StatusPreview, Provisional: true, Membership: &types.Household{}}, nil)

	w := httptest.NewRecorder()
	newTestMux(ctrl, svc, types.RoleUser).ServeHTTP(w, signedIn(httptest.NewRequest(http.MethodGet, "/api/v0/checkout/sessions/cs_1", nil)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body["status"] != "preview" || body["provisional"] != true {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestAPI_Revoke(t *testing.T) {
	tests := []struct {
		name           string
		role           types.Role
		err            error
		expectCall     bool
		expectedStatus int
	}{
		{name: "admin revokes", role: types.RoleAdmin, expectCall: true, expectedStatus: http.StatusOK},
		{name: "unknown household", role: types.RoleAdmin, expectCall: true, err: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "member cannot revoke", role: types.RoleMember, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			if tt.expectCall {
				svc.EXPECT().Revoke(gomock.Any(), "id-1", "hh-1").Return(tt.err)
			}

			w := httptest.NewRecorder()
			newTestMux(ctrl, svc, tt.role).ServeHTTP(w, signedIn(httptest.NewRequest(http.MethodPost, "/api/v0/admin/memberships/hh-1/revoke", nil)))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAPI_SetPricingRejectsUnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := httptest.NewRecorder()
	newTestMux(ctrl, NewMockServiceInterface(ctrl), types.RoleAdmin).ServeHTTP(w, signedIn(httptest.NewRequest(http.MethodPut, "/api/v0/admin/pricing/vip", strings.NewReader(`{"amountCents":100}`))))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body httptypes.ErrorResponse
	_ = json.NewDecoder(w.Body).Decode(&body)
	if _, ok := body.Fields["type"]; !ok {
		t.Fatalf("expected type field error, got %+v", body)
	}
}
