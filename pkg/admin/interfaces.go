// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/types"
)

// StorageInterface is the intake subset of internal/storage reviewed from the
// back office.
type StorageInterface interface {
	ListContactMessages(ctx context.Context, f storage.ListFilter) (*types.Page[types.ContactMessage], error)
	ExportContactMessages(ctx context.Context, f storage.ListFilter) ([]types.ContactMessage, error)
	UpdateContactMessage(ctx context.Context, id string, u storage.MessageUpdate) error

	ListVolunteerSignups(ctx context.Context, f storage.ListFilter) (*types.Page[types.VolunteerSignup], error)
	ExportVolunteerSignups(ctx context.Context, f storage.ListFilter) ([]types.VolunteerSignup, error)
	UpdateVolunteerSignup(ctx context.Context, id string, u storage.SignupUpdate) error

	GetSocialRequest(ctx context.Context, id string) (*types.SocialServiceRequest, error)
	ListSocialRequests(ctx context.Context, f storage.ListFilter) (*types.Page[types.SocialServiceRequest], error)
	ExportSocialRequests(ctx context.Context, f storage.ListFilter) ([]types.SocialServiceRequest, error)
	UpdateSocialRequest(ctx context.Context, id string, u storage.RequestUpdate) error
}

type ServiceInterface interface {
	ListMessages(ctx context.Context, f storage.ListFilter) (*types.Page[types.ContactMessage], error)
	ExportMessages(ctx context.Context, f storage.ListFilter) ([]types.ContactMessage, error)
	UpdateMessage(ctx context.Context, actor Actor, id string, p *MessagePatch) error

	ListSignups(ctx context.Context, f storage.ListFilter) (*types.Page[types.VolunteerSignup], error)
	ExportSignups(ctx context.Context, f storage.ListFilter) ([]types.VolunteerSignup, error)
	UpdateSignup(ctx context.Context, actor Actor, id string, p *SignupPatch) error

	ListRequests(ctx context.Context, f storage.ListFilter) (*types.Page[types.SocialServiceRequest], error)
	ExportRequests(ctx context.Context, f storage.ListFilter) ([]types.SocialServiceRequest, error)
	UpdateRequest(ctx context.Context, actor Actor, id string, p *RequestPatch) error
}
