// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "github.com/communityhub/portal/internal/types"

const (
	ADMIN_ROUTE            = "/admin"
	VOLUNTEER_ROUTE        = "/volunteer"
	TEACHER_ROUTE          = "/teacher"
	STUDENT_ROUTE          = "/student"
	MEMBER_ROUTE           = "/member"
	ACCOUNT_ROUTE          = "/account"
	PROFILE_COMPLETE_ROUTE = "/profile/complete"
)

// LandingRoute maps a role to its dashboard.
func LandingRoute(role types.Role) string {
	switch role {
	case types.RoleSuperAdmin, types.RoleAdmin:
		return ADMIN_ROUTE
	case types.RoleVolunteer:
		return VOLUNTEER_ROUTE
	case types.RoleTeacher:
		return TEACHER_ROUTE
	case types.RoleStudent:
		return STUDENT_ROUTE
	case types.RoleMember:
		return MEMBER_ROUTE
	}
	return ACCOUNT_ROUTE
}
