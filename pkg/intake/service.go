// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package intake

import (
	"context"
	"strings"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/sanitize"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// required flags every named value left empty once markup is stripped.
func required(fields map[string]string) error {
	verr := new(httptypes.ValidationError)
	for name, v := range fields {
		if v == "" {
			verr.Add(name, "is required")
		}
	}
	return verr.Err()
}

func (s *Service) SubmitContact(ctx context.Context, req *ContactRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "intake.Service.SubmitContact")
	defer span.End()

	m := &types.ContactMessage{
		Name:    sanitize.Text(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: sanitize.Text(req.Subject),
		Body:    sanitize.Text(req.Message),
	}
	if err := required(map[string]string{"name": m.Name, "message": m.Body}); err != nil {
		return "", err
	}

	id, err := s.storage.CreateContactMessage(ctx, m)
	if err != nil {
		return "", err
	}

	s.logger.Debugf("contact message %s received", id)
	return id, nil
}

func (s *Service) SubmitVolunteer(ctx context.Context, req *VolunteerRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "intake.Service.SubmitVolunteer")
	defer span.End()

	v := &types.VolunteerSignup{
		Name:         sanitize.Text(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Phone:        sanitize.Text(req.Phone),
		Interests:    sanitize.Text(req.Interests),
		Availability: sanitize.Text(req.Availability),
	}
	if err := required(map[string]string{"name": v.Name}); err != nil {
		return "", err
	}

	id, err := s.storage.CreateVolunteerSignup(ctx, v)
	if err != nil {
		return "", err
	}

	s.logger.Debugf("volunteer signup %s received", id)
	return id, nil
}

func (s *Service) SubmitSocialRequest(ctx context.Context, req *SocialRequest) (string, error) {
	ctx, span := s.tracer.Start(ctx, "intake.Service.SubmitSocialRequest")
	defer span.End()

	r := &types.SocialServiceRequest{
		RequesterName:        sanitize.Text(req.Name),
		Email:                strings.TrimSpace(req.Email),
		Phone:                sanitize.Text(req.Phone),
		Reason:               strings.ToLower(sanitize.Text(req.Reason)),
		Description:          sanitize.Text(req.Description),
		AmountRequestedCents: req.AmountRequestedCents,
	}
	if err := required(map[string]string{"name": r.RequesterName, "reason": r.Reason, "description": r.Description}); err != nil {
		return "", err
	}

	id, err := s.storage.CreateSocialRequest(ctx, r)
	if err != nil {
		return "", err
	}

	s.logger.Debugf("social service request %s received", id)
	return id, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
