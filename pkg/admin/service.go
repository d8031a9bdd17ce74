// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"errors"
	"fmt"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/sanitize"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

var (
	ErrInvalidTransition = fmt.Errorf("status change not allowed: %w", storage.ErrConflict)
	ErrVolunteerLimited  = fmt.Errorf("volunteers may only start a review, claim a request or add notes: %w", httptypes.ErrForbidden)
	errEmptyPatch        = httptypes.NewValidationError("body", "must change at least one field")
)

// requestTransitions is the social service request lifecycle.
var requestTransitions = map[types.RequestStatus][]types.RequestStatus{
	types.RequestNew:      {types.RequestInReview},
	types.RequestInReview: {types.RequestApproved, types.RequestDeclined},
	types.RequestApproved: {types.RequestComplete, types.RequestArchived},
	types.RequestDeclined: {types.RequestArchived},
	types.RequestComplete: {types.RequestArchived},
}

func CanMoveRequest(from, to types.RequestStatus) bool {
	for _, s := range requestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func parseRequestStatus(s string) (types.RequestStatus, bool) {
	switch st := types.RequestStatus(s); st {
	case types.RequestNew, types.RequestInReview, types.RequestApproved, types.RequestDeclined, types.RequestComplete, types.RequestArchived:
		return st, true
	}
	return "", false
}

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListMessages(ctx context.Context, f storage.ListFilter) (*types.Page[types.ContactMessage], error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListMessages")
	defer span.End()

	return s.storage.ListContactMessages(ctx, f)
}

func (s *Service) ExportMessages(ctx context.Context, f storage.ListFilter) ([]types.ContactMessage, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ExportMessages")
	defer span.End()

	return s.storage.ExportContactMessages(ctx, f)
}

func (s *Service) UpdateMessage(ctx context.Context, actor Actor, id string, p *MessagePatch) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateMessage")
	defer span.End()

	if p.Status == nil && p.Notes == nil {
		return errEmptyPatch
	}

	var u storage.MessageUpdate
	if p.Status != nil {
		st := types.MessageStatus(*p.Status)
		switch st {
		case types.MessageNew, types.MessageSeen, types.MessageClosed:
		default:
			return httptypes.NewValidationError("status", "must be one of: new seen closed")
		}
		u.Status = &st
	}
	if p.Notes != nil {
		notes := sanitize.Text(*p.Notes)
		u.Notes = &notes
	}

	if err := s.storage.UpdateContactMessage(ctx, id, u); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actor.ID, "update_message", id, "status", optional(p.Status))
	return nil
}

func (s *Service) ListSignups(ctx context.Context, f storage.ListFilter) (*types.Page[types.VolunteerSignup], error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListSignups")
	defer span.End()

	return s.storage.ListVolunteerSignups(ctx, f)
}

func (s *Service) ExportSignups(ctx context.Context, f storage.ListFilter) ([]types.VolunteerSignup, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ExportSignups")
	defer span.End()

	return s.storage.ExportVolunteerSignups(ctx, f)
}

func (s *Service) UpdateSignup(ctx context.Context, actor Actor, id string, p *SignupPatch) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateSignup")
	defer span.End()

	if p.Status == nil && p.Notes == nil {
		return errEmptyPatch
	}

	var u storage.SignupUpdate
	if p.Status != nil {
		st := types.SignupStatus(*p.Status)
		switch st {
		case types.SignupPending, types.SignupConfirmed, types.SignupDeclined:
		default:
			return httptypes.NewValidationError("status", "must be one of: pending confirmed declined")
		}
		u.Status = &st
	}
	if p.Notes != nil {
		notes := sanitize.Text(*p.Notes)
		u.Notes = &notes
	}

	if err := s.storage.UpdateVolunteerSignup(ctx, id, u); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actor.ID, "update_volunteer_signup", id, "status", optional(p.Status))
	return nil
}

func (s *Service) ListRequests(ctx context.Context, f storage.ListFilter) (*types.Page[types.SocialServiceRequest], error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ListRequests")
	defer span.End()

	return s.storage.ListSocialRequests(ctx, f)
}

func (s *Service) ExportRequests(ctx context.Context, f storage.ListFilter) ([]types.SocialServiceRequest, error) {
	ctx, span := s.tracer.Start(ctx, "admin.Service.ExportRequests")
	defer span.End()

	return s.storage.ExportSocialRequests(ctx, f)
}

// UpdateRequest applies a reviewer change to a social service request.
// Volunteers may only move a new request into review, assign it to
// themselves and edit notes. Status changes follow the request lifecycle and
// fail with ErrInvalidTransition when another reviewer moved it first.
func (s *Service) UpdateRequest(ctx context.Context, actor Actor, id string, p *RequestPatch) error {
	ctx, span := s.tracer.Start(ctx, "admin.Service.UpdateRequest")
	defer span.End()

	if p.Status == nil && p.AssignedTo == nil && p.AdminNotes == nil {
		return errEmptyPatch
	}

	admin := actor.Role.IsAdmin()

	var u storage.RequestUpdate

	if p.Status != nil {
		to, ok := parseRequestStatus(*p.Status)
		if !ok {
			return httptypes.NewValidationError("status", "must be one of: new in_review approved declined completed archived")
		}

		current, err := s.storage.GetSocialRequest(ctx, id)
		if err != nil {
			return err
		}

		if !CanMoveRequest(current.Status, to) {
			return fmt.Errorf("%s to %s: %w", current.Status, to, ErrInvalidTransition)
		}
		if !admin && !(current.Status == types.RequestNew && to == types.RequestInReview) {
			s.logger.Security().AuthzFailure(actor.ID, "social-requests/"+id)
			return ErrVolunteerLimited
		}

		u.Status, u.From = &to, current.Status
	}

	if p.AssignedTo != nil {
		if !admin && *p.AssignedTo != actor.ID {
			s.logger.Security().AuthzFailure(actor.ID, "social-requests/"+id)
			return ErrVolunteerLimited
		}
		u.AssignedTo = p.AssignedTo
	}

	if p.AdminNotes != nil {
		notes := sanitize.Text(*p.AdminNotes)
		u.AdminNotes = &notes
	}

	err := s.storage.UpdateSocialRequest(ctx, id, u)
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("request changed while updating: %w", ErrInvalidTransition)
	}
	if err != nil {
		return err
	}

	s.logger.Security().AdminAction(actor.ID, "update_social_request", id, "status", optional(p.Status), "assignedTo", optional(p.AssignedTo))
	return nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
