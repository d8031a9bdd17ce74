// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	store := NewMockStorageInterface(ctrl)
	logger := logging.NewNoopLogger()
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), store
}

func strPtr(s string) *string { return &s }

func TestCanMoveRequest(t *testing.T) {
	allowed := [][2]types.RequestStatus{
		{types.RequestNew, types.RequestInReview},
		{types.RequestInReview, types.RequestApproved},
		{types.RequestInReview, types.RequestDeclined},
		{types.RequestApproved, types.RequestComplete},
		{types.RequestApproved, types.RequestArchived},
		{types.RequestDeclined, types.RequestArchived},
		{types.RequestComplete, types.RequestArchived},
	}
	for _, pair := range allowed {
		if !CanMoveRequest(pair[0], pair[1]) {
			t.Errorf("%s -> %s should be allowed", pair[0], pair[1])
		}
	}

	refused := [][2]types.RequestStatus{
		{types.RequestNew, types.RequestApproved},
		{types.RequestArchived, types.RequestNew},
		{types.RequestDeclined, types.RequestApproved},
		{types.RequestComplete, types.RequestInReview},
	}
	for _, pair := range refused {
		if CanMoveRequest(pair[0], pair[1]) {
			t.Errorf("%s -> %s should be refused", pair[0], pair[1])
		}
	}
}

func TestService_UpdateRequest(t *testing.T) {
	volunteer := Actor{ID: "vol-1", Role: types.RoleVolunteer}
	admin := Actor{ID: "adm-1", Role: types.RoleAdmin}

	testCases := []struct {
		name        string
		actor       Actor
		current     types.RequestStatus
		patch       RequestPatch
		expectWrite bool
		writeErr    error
		expectedErr error
	}{
		{name: "volunteer starts review", actor: volunteer, current: types.RequestNew, patch: RequestPatch{Status: strPtr("in_review")}, expectWrite: true},
		{name: "volunteer cannot approve", actor: volunteer, current: types.RequestInReview, patch: RequestPatch{Status: strPtr("approved")}, expectedErr: httptypes.ErrForbidden},
		{name: "volunteer assigns self", actor: volunteer, patch: RequestPatch{AssignedTo: strPtr("vol-1")}, expectWrite: true},
		{name: "volunteer cannot assign others", actor: volunteer, patch: RequestPatch{AssignedTo: strPtr("vol-2")}, expectedErr: httptypes.ErrForbidden},
		{name: "volunteer writes notes", actor: volunteer, patch: RequestPatch{AdminNotes: strPtr("called back")}, expectWrite: true},
		{name: "admin approves", actor: admin, current: types.RequestInReview, patch: RequestPatch{Status: strPtr("approved")}, expectWrite: true},
		{name: "admin cannot skip review", actor: admin, current: types.RequestNew, patch: RequestPatch{Status: strPtr("approved")}, expectedErr: storage.ErrConflict},
		{name: "concurrent change", actor: admin, current: types.RequestInReview, patch: RequestPatch{Status: strPtr("declined")}, expectWrite: true, writeErr: storage.ErrConflict, expectedErr: storage.ErrConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			s, store := newTestService(ctrl)

			if tc.patch.Status != nil {
				store.EXPECT().GetSocialRequest(gomock.Any(), "req-1").Return(&types.SocialServiceRequest{ID: "req-1", Status: tc.current}, nil)
			}
			if tc.expectWrite {
				store.EXPECT().UpdateSocialRequest(gomock.Any(), "req-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, u storage.RequestUpdate) error {
						if tc.patch.Status != nil && (u.Status == nil || string(*u.Status) != *tc.patch.Status || u.From != tc.current) {
							t.Errorf("unexpected update %+v", u)
						}
						return tc.writeErr
					},
				)
			}

			err := s.UpdateRequest(context.Background(), tc.actor, "req-1", &tc.patch)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateRequestRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, _ := newTestService(ctrl)

	err := s.UpdateRequest(context.Background(), Actor{ID: "a", Role: types.RoleAdmin}, "req-1", &RequestPatch{Status: strPtr("done")})

	var verr *httptypes.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_UpdateMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, store := newTestService(ctrl)

	store.EXPECT().UpdateContactMessage(gomock.Any(), "m1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u storage.MessageUpdate) error {
			if u.Status == nil || *u.Status != types.MessageSeen {
				t.Errorf("unexpected status %v", u.Status)
			}
			if u.Notes == nil || *u.Notes != "replied" {
				t.Errorf("notes should be sanitized, got %v", u.Notes)
			}
			return nil
		},
	)

	err := s.UpdateMessage(context.Background(), Actor{ID: "a"}, "m1", &MessagePatch{Status: strPtr("seen"), Notes: strPtr("<b>replied</b>")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var verr *httptypes.ValidationError
	if err := s.UpdateMessage(context.Background(), Actor{ID: "a"}, "m1", &MessagePatch{Status: strPtr("archived")}); !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err := s.UpdateSignup(context.Background(), Actor{ID: "a"}, "v1", &SignupPatch{}); !errors.As(err, &verr) {
		t.Fatalf("expected validation error for empty patch, got %v", err)
	}
}
