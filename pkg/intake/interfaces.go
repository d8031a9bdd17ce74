// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

import (
	"context"

	"github.com/communityhub/portal/internal/types"
)

// StorageInterface is the subset of internal/storage used by the intake package.
type StorageInterface interface {
	CreateContactMessage(ctx context.Context, m *types.ContactMessage) (string, error)
	CreateVolunteerSignup(ctx context.Context, v *types.VolunteerSignup) (string, error)
	CreateSocialRequest(ctx context.Context, r *types.SocialServiceRequest) (string, error)
}

type ServiceInterface interface {
	SubmitContact(ctx context.Context, req *ContactRequest) (string, error)
	SubmitVolunteer(ctx context.Context, req *VolunteerRequest) (string, error)
	SubmitSocialRequest(ctx context.Context, req *SocialRequest) (string, error)
}
