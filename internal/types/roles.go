// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"strings"
)

// Role is a back office role. Roles form a total order of privilege.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleVolunteer  Role = "volunteer"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
	RoleMember     Role = "member"
	RoleUser       Role = "user"
)

// rolePriority lists roles from most to least privileged. It is the only
// place the order is defined.
var rolePriority = []Role{
	RoleSuperAdmin,
	RoleAdmin,
	RoleVolunteer,
	RoleTeacher,
	RoleStudent,
	RoleMember,
	RoleUser,
}

// Roles returns every role from most to least privileged.
func Roles() []Role {
	r := make([]Role, len(rolePriority))
	copy(r, rolePriority)
	return r
}

// Rank is higher for more privileged roles. Unknown roles rank below user.
func (r Role) Rank() int {
	for i, p := range rolePriority {
		if p == r {
			return len(rolePriority) - i
		}
	}
	return 0
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

// AtLeast reports whether r is as privileged as min or more.
func (r Role) AtLeast(min Role) bool {
	return r.Valid() && r.Rank() >= min.Rank()
}

func (r Role) Outranks(o Role) bool {
	return r.Rank() > o.Rank()
}

func (r Role) IsAdmin() bool {
	return r.AtLeast(RoleAdmin)
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// HighestRole picks the most privileged role present, ignoring unknown
// values. An empty set resolves to user.
func HighestRole(roles []Role) Role {
	best := RoleUser
	for _, r := range roles {
		if r.Valid() && r.Outranks(best) {
			best = r
		}
	}
	return best
}
