// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

type KratosIdentity struct {
	ID     string       `json:"id"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string     `json:"email"`
	Name  KratosName `json:"name"`
	Phone string     `json:"phone"`
}

type KratosName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

func (n KratosName) Full() string {
	switch {
	case n.First == "":
		return n.Last
	case n.Last == "":
		return n.First
	}
	return n.First + " " + n.Last
}
