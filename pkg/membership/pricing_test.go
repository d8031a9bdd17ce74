// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"errors"
	"testing"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/types"
)

func intPtr(i int) *int { return &i }

func testRules() []types.PricingRule {
	return []types.PricingRule{
		{MemberType: types.CategoryRegular, AmountCents: 5000},
		{MemberType: types.CategoryStudent, AmountCents: 2500},
		{MemberType: types.CategoryYouth, AmountCents: 1000, MaxAge: intPtr(17)},
	}
}

func TestPriceMembers(t *testing.T) {
	tests := []struct {
		name             string
		rules            []types.PricingRule
		member           MemberInput
		expectedCategory types.MemberCategory
		expectedPrice    int64
	}{
		{name: "regular", rules: testRules(), member: MemberInput{FullName: "A", Age: 40, Category: "regular"}, expectedCategory: types.CategoryRegular, expectedPrice: 5000},
		{name: "youth within age", rules: testRules(), member: MemberInput{FullName: "B", Age: 17, Category: "youth"}, expectedCategory: types.CategoryYouth, expectedPrice: 1000},
		{name: "youth over age is billed as regular", rules: testRules(), member: MemberInput{FullName: "C", Age: 19, Category: "youth"}, expectedCategory: types.CategoryRegular, expectedPrice: 5000},
		{
			name:             "youth over age without regular price is free",
			rules:            []types.PricingRule{{MemberType: types.CategoryYouth, AmountCents: 1000, MaxAge: intPtr(17)}},
			member:           MemberInput{FullName: "D", Age: 25, Category: "Youth"},
			expectedCategory: types.CategoryRegular,
			expectedPrice:    0,
		},
		{name: "category is case insensitive", rules: testRules(), member: MemberInput{FullName: "E", Age: 20, Category: " STUDENT "}, expectedCategory: types.CategoryStudent, expectedPrice: 2500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := PriceMembers(tt.rules, []MemberInput{tt.member})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if q.Members[0].Category != tt.expectedCategory || q.Members[0].PriceCents != tt.expectedPrice {
				t.Fatalf("expected %s at %d, got %+v", tt.expectedCategory, tt.expectedPrice, q.Members[0])
			}
			if q.TotalCents != tt.expectedPrice {
				t.Fatalf("expected total %d, got %d", tt.expectedPrice, q.TotalCents)
			}
		})
	}
}

func TestPriceMembersTotalsAndPositions(t *testing.T) {
	q, err := PriceMembers(testRules(), []MemberInput{
		{FullName: "Parent", Age: 45, Category: "regular"},
		{FullName: "<b>Kid</b>", Age: 10, Category: "youth"},
		{FullName: "Older kid", Age: 21, Category: "student"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.TotalCents != 8500 {
		t.Fatalf("expected total 8500, got %d", q.TotalCents)
	}
	for i, m := range q.Members {
		if m.Position != i {
			t.Errorf("member %d has position %d", i, m.Position)
		}
	}
	if q.Members[1].FullName != "Kid" {
		t.Errorf("expected sanitized name, got %q", q.Members[1].FullName)
	}
}

func TestPriceMembersRejects(t *testing.T) {
	tests := []struct {
		name    string
		members []MemberInput
		field   string
	}{
		{name: "no members", members: nil, field: "members"},
		{name: "too many members", members: make([]MemberInput, 21), field: "members"},
		{name: "unknown category", members: []MemberInput{{FullName: "A", Age: 30, Category: "vip"}}, field: "members[0].category"},
		{name: "unpriced category", members: []MemberInput{{FullName: "A", Age: 70, Category: "senior"}}, field: "members[0].category"},
		{name: "blank name", members: []MemberInput{{FullName: "  ", Age: 30, Category: "regular"}}, field: "members[0].fullName"},
		{name: "negative age", members: []MemberInput{{FullName: "A", Age: -1, Category: "regular"}}, field: "members[0].age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PriceMembers(testRules(), tt.members)

			var verr *httptypes.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if _, ok := verr.Fields[tt.field]; !ok {
				t.Fatalf("expected field %s in %v", tt.field, verr.Fields)
			}
		})
	}
}
