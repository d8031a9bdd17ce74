// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

import (
	"fmt"
	"strings"

	httptypes "github.com/communityhub/portal/internal/http/types"
	"github.com/communityhub/portal/internal/sanitize"
	"github.com/communityhub/portal/internal/types"
)

const maxMembers = 20

// PriceMembers prices members against the active pricing rules. A youth
// member older than the youth maximum age is billed as regular, at the
// regular amount or nothing when regular has no price.
func PriceMembers(rules []types.PricingRule, members []MemberInput) (*Quote, error) {
	verr := new(httptypes.ValidationError)

	if len(members) == 0 || len(members) > maxMembers {
		verr.Add("members", fmt.Sprintf("must list between 1 and %d members", maxMembers))
		return nil, verr
	}

	byType := make(map[types.MemberCategory]types.PricingRule, len(rules))
	for _, r := range rules {
		byType[r.MemberType] = r
	}

	q := &Quote{Members: make([]types.Member, 0, len(members))}

	for i, in := range members {
		field := fmt.Sprintf("members[%d]", i)

		name := sanitize.Text(in.FullName)
		if name == "" {
			verr.Add(field+".fullName", "is required")
		}
		if in.Age < 0 || in.Age > 130 {
			verr.Add(field+".age", "must be between 0 and 130")
		}

		category, err := types.ParseMemberCategory(strings.ToLower(strings.TrimSpace(in.Category)))
		if err != nil {
			verr.Add(field+".category", "must be one of: student senior regular youth")
			continue
		}

		m := types.Member{Position: i, FullName: name, Age: in.Age, Category: category}

		rule, ok := byType[category]
		switch {
		case category == types.CategoryYouth && ok && rule.MaxAge != nil && in.Age > *rule.MaxAge:
			m.Category = types.CategoryRegular
			if regular, ok := byType[types.CategoryRegular]; ok {
				m.PriceCents = regular.AmountCents
			}
		case !ok:
			verr.Add(field+".category", "has no active price")
			continue
		default:
			m.PriceCents = rule.AmountCents
		}

		q.Members = append(q.Members, m)
		q.TotalCents += m.PriceCents
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	return q, nil
}

func toInputs(members []types.Member) []MemberInput {
	out := make([]MemberInput, len(members))
	for i, m := range members {
		out[i] = MemberInput{FullName: m.FullName, Age: m.Age, Category: string(m.Category)}
	}
	return out
}
