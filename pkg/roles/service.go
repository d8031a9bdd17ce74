// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"errors"
	"fmt"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/kratos"
	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/storage"
	"github.com/communityhub/portal/internal/tracing"
	"github.com/communityhub/portal/internal/types"
)

var ErrEscalation = fmt.Errorf("only a super admin can grant or change admin roles: %w", httptypes.ErrForbidden)

type Service struct {
	storage StorageInterface
	authz   AuthorizerInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Me(ctx context.Context, identityID string) (*Me, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Me")
	defer span.End()

	landing, role, complete := s.authz.Landing(ctx, identityID)

	return &Me{
		IdentityID:      identityID,
		Role:            role,
		Landing:         landing,
		ProfileComplete: complete,
	}, nil
}

func (s *Service) SaveProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.SaveProfile")
	defer span.End()

	return s.storage.UpsertProfile(ctx, p)
}

func (s *Service) GetRoles(ctx context.Context, identityID string) (*Assignments, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.GetRoles")
	defer span.End()

	rows, err := s.storage.ListRoleAssignments(ctx, identityID)
	if err != nil {
		return nil, err
	}

	roles := make([]types.Role, len(rows))
	for i, r := range rows {
		roles[i] = r.Role
	}

	as := &Assignments{
		IdentityID: identityID,
		Effective:  types.HighestRole(roles),
		Rows:       rows,
	}

	// best effort, the assignments stand without it
	if as.Email, err = s.kratos.GetIdentityEmail(ctx, identityID); err != nil {
		s.logger.Warnf("failed to look up the email of %s: %v", identityID, err)
	}

	return as, nil
}

// SetRole replaces every assignment of identityID with role. Admin level
// roles, granted or taken away, are reserved to super admins.
func (s *Service) SetRole(ctx context.Context, actor types.Role, actorID, identityID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.SetRole")
	defer span.End()

	if !role.Valid() {
		return httptypes.NewValidationError("role", "is not a known role")
	}

	if !actor.AtLeast(types.RoleSuperAdmin) {
		if role.IsAdmin() || s.authz.ResolveRole(ctx, identityID).IsAdmin() {
			s.logger.Security().AuthzFailure(actorID, "roles/"+identityID)
			return ErrEscalation
		}
	}

	if err := s.storage.ReplaceRoles(ctx, identityID, role); err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "set_role", identityID, "role", role)

	return nil
}

func (s *Service) SetRoleByEmail(ctx context.Context, actor types.Role, actorID, email string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.SetRoleByEmail")
	defer span.End()

	identityID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if errors.Is(err, kratos.ErrIdentityNotFound) {
		return "", fmt.Errorf("no account uses %s: %w", email, storage.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up identity: %w", err)
	}

	if err := s.SetRole(ctx, actor, actorID, identityID, role); err != nil {
		return "", err
	}

	return identityID, nil
}

func NewService(storage StorageInterface, authz AuthorizerInterface, kratos KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.authz = authz
	s.kratos = kratos

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
