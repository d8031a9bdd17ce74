// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/communityhub/portal/internal/types"
)

func (s *Storage) ListRoleAssignments(ctx context.Context, identityID string) ([]types.RoleAssignment, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListRoleAssignments")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("identity_id", "role", "created_at").
		From("role_assignments").
		Where(sq.Eq{"identity_id": identityID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]types.RoleAssignment, 0)
	for rows.Next() {
		var a types.RoleAssignment
		if err := rows.Scan(&a.IdentityID, &a.Role, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assignments, nil
}

func (s *Storage) ListRoles(ctx context.Context, identityID string) ([]types.Role, error) {
	assignments, err := s.ListRoleAssignments(ctx, identityID)
	if err != nil {
		return nil, err
	}

	roles := make([]types.Role, len(assignments))
	for i, a := range assignments {
		roles[i] = a.Role
	}

	return roles, nil
}

// AddRole is idempotent, assigning a role twice leaves a single row.
func (s *Storage) AddRole(ctx context.Context, identityID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("role_assignments").
		Columns("identity_id", "role").
		Values(identityID, role).
		Suffix("ON CONFLICT (identity_id, role) DO NOTHING").
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "add role")
	}

	return nil
}

func (s *Storage) RemoveRole(ctx context.Context, identityID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("role_assignments").
		Where(sq.Eq{"identity_id": identityID, "role": role}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove role: %w", err)
	}

	return nil
}

// ReplaceRoles leaves role as the only assignment of the identity. Callers
// run it inside WithTx.
func (s *Storage) ReplaceRoles(ctx context.Context, identityID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceRoles")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("role_assignments").
		Where(sq.And{sq.Eq{"identity_id": identityID}, sq.NotEq{"role": role}}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear roles: %w", err)
	}

	return s.AddRole(ctx, identityID, role)
}

func (s *Storage) GetProfile(ctx context.Context, identityID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select("identity_id", "full_name", "email", "phone", "created_at", "updated_at").
		From("profiles").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&p.IdentityID, &p.FullName, &p.Email, &p.Phone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (s *Storage) UpsertProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertProfile")
	defer span.End()

	out := *p
	err := s.db.Statement(ctx).
		Insert("profiles").
		Columns("identity_id", "full_name", "email", "phone").
		Values(p.IdentityID, p.FullName, p.Email, p.Phone).
		Suffix(`ON CONFLICT (identity_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			updated_at = now()
		RETURNING created_at, updated_at`).
		QueryRowContext(ctx).
		Scan(&out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, "upsert profile")
	}

	return &out, nil
}
