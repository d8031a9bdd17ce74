// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/communityhub/portal/internal/authorization"
	"github.com/communityhub/portal/internal/identity"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
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

func TestAPI_Me(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewMockServiceInterface(ctrl)
	svc.EXPECT().Me(gomock.Any(), "id-1").Return(&Me{IdentityID: "id-1", Role: types.RoleMember, Landing: "/member", ProfileComplete: true}, nil)

	w := httptest.NewRecorder()
	newTestMux(ctrl, svc, types.RoleMember).ServeHTTP(w, signedIn(httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var me Me
	if err := json.NewDecoder(w.Body).Decode(&me); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if me.Landing != "/member" || !me.ProfileComplete {
		t.Fatalf("unexpected body %+v", me)
	}
}

func TestAPI_MeAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := httptest.NewRecorder()
	newTestMux(ctrl, NewMockServiceInterface(ctrl), types.RoleUser).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAPI_SetRole(t *testing.T) {
	tests := []struct {
		name           string
		callerRole     types.Role
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:       "admin assigns volunteer",
			callerRole: types.RoleAdmin,
			body:       `{"role":"volunteer"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().SetRole(gomock.Any(), types.RoleAdmin, "id-1", "id-9", types.RoleVolunteer).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown role",
			callerRole:     types.RoleAdmin,
			body:           `{"role":"owner"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:       "escalation refused",
			callerRole: types.RoleAdmin,
			body:       `{"role":"super_admin"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().SetRole(gomock.Any(), types.RoleAdmin, "id-1", "id-9", types.RoleSuperAdmin).Return(ErrEscalation)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "member is forbidden",
			callerRole:     types.RoleMember,
			body:           `{"role":"volunteer"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			svc := NewMockServiceInterface(ctrl)
			tt.setupMocks(svc)

			req := signedIn(httptest.NewRequest(http.MethodPut, "/api/v0/admin/roles/id-9", strings.NewReader(tt.body)))
			w := httptest.NewRecorder()
			newTestMux(ctrl, svc, tt.callerRole).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestAPI_SetRoleByEmailNeedsSuperAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)

	req := signedIn(httptest.NewRequest(http.MethodPost, "/api/v0/admin/roles/by-email", strings.NewReader(`{"email":"a@example.com","role":"admin"}`)))
	w := httptest.NewRecorder()
	newTestMux(ctrl, NewMockServiceInterface(ctrl), types.RoleAdmin).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
}
