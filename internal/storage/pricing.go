// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/communityhub/portal/internal/types"
)

func (s *Storage) ListPricing(ctx context.Context) ([]types.PricingRule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPricing")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("member_type", "amount_cents", "min_age", "max_age", "updated_at").
		From("pricing_tables").
		Where(sq.Eq{"active": true}).
		OrderBy("member_type").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}
	defer rows.Close()

	rules := make([]types.PricingRule, 0)
	for rows.Next() {
		var (
			r              types.PricingRule
			minAge, maxAge sql.NullInt32
		)
		if err := rows.Scan(&r.MemberType, &r.AmountCents, &minAge, &maxAge, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan pricing rule: %w", err)
		}
		r.MinAge = intPtr(minAge)
		r.MaxAge = intPtr(maxAge)
		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rules, nil
}

func (s *Storage) UpsertPricing(ctx context.Context, r *types.PricingRule) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertPricing")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("pricing_tables").
		Columns("member_type", "amount_cents", "min_age", "max_age", "active").
		Values(r.MemberType, r.AmountCents, r.MinAge, r.MaxAge, true).
		Suffix(`ON CONFLICT (member_type) DO UPDATE SET
			amount_cents = EXCLUDED.amount_cents,
			min_age = EXCLUDED.min_age,
			max_age = EXCLUDED.max_age,
			active = true,
			updated_at = now()`).
		ExecContext(ctx)
	if err != nil {
		return mapWriteError(err, "upsert pricing")
	}

	return nil
}

func intPtr(v sql.NullInt32) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int32)
	return &i
}
