// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package sanitize strips markup from free text submitted by the public.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes every tag and trims surrounding space. Entities produced by
// the policy are decoded again, the result is plain text and is escaped when
// rendered.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Fields applies Text to each pointer in place.
func Fields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = Text(*f)
		}
	}
}
