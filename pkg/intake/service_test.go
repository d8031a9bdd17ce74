// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package intake -destination ./mock_interfaces.go -source=./interfaces.go

func newTestService(store StorageInterface) *Service {
	logger := logging.NewNoopLogger()
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func TestService_SubmitContact(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	store.EXPECT().CreateContactMessage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m *types.ContactMessage) (string, error) {
			assert.Equal(t, "Jane", m.Name)
			assert.Equal(t, "jane@example.org", m.Email)
			assert.Equal(t, "Hello there", m.Body)
			return "msg-1", nil
		},
	)

	id, err := newTestService(store).SubmitContact(context.Background(), &ContactRequest{
		Name:    " <b>Jane</b> ",
		Email:   " jane@example.org ",
		Message: "Hello <script>alert(1)</script>there",
	})

	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)
}

func TestService_SubmitContactRejectsMarkupOnly(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)

	_, err := newTestService(store).SubmitContact(context.Background(), &ContactRequest{
		Name:    "<i></i>",
		Email:   "jane@example.org",
		Message: "hi",
	})

	var verr *httptypes.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestService_SubmitVolunteer(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	store.EXPECT().CreateVolunteerSignup(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v *types.VolunteerSignup) (string, error) {
			assert.Equal(t, "Omar", v.Name)
			assert.Equal(t, "weekends", v.Availability)
			return "vol-1", nil
		},
	)

	id, err := newTestService(store).SubmitVolunteer(context.Background(), &VolunteerRequest{
		Name:         "Omar",
		Email:        "omar@example.org",
		Availability: "weekends",
	})

	require.NoError(t, err)
	assert.Equal(t, "vol-1", id)
}

func TestService_SubmitSocialRequest(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	store.EXPECT().CreateSocialRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *types.SocialServiceRequest) (string, error) {
			assert.Equal(t, "Amina", r.RequesterName)
			assert.Equal(t, "rent", r.Reason)
			assert.EqualValues(t, 50000, r.AmountRequestedCents)
			return "req-1", nil
		},
	)

	id, err := newTestService(store).SubmitSocialRequest(context.Background(), &SocialRequest{
		Name:                 "Amina",
		Email:                "amina@example.org",
		Reason:               "Rent",
		Description:          "Behind on rent this month",
		AmountRequestedCents: 50000,
	})

	require.NoError(t, err)
	assert.Equal(t, "req-1", id)
}

func TestService_SubmitSocialRequestStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := NewMockStorageInterface(ctrl)
	store.EXPECT().CreateSocialRequest(gomock.Any(), gomock.Any()).Return("", errors.New("connection reset"))

	_, err := newTestService(store).SubmitSocialRequest(context.Background(), &SocialRequest{
		Name:        "Amina",
		Email:       "amina@example.org",
		Reason:      "food",
		Description: "groceries",
	})

	assert.EqualError(t, err, "connection reset")
}
