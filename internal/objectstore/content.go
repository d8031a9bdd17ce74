// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Sniff detects the content type of data from its leading bytes. ok is false
// unless the type matches one of accepted, where a trailing slash accepts a
// whole family such as "image/".
func Sniff(data []byte, accepted ...string) (contentType, extension string, ok bool) {
	m := mimetype.Detect(data)

	for _, a := range accepted {
		if strings.HasSuffix(a, "/") {
			for p := m; p != nil; p = p.Parent() {
				if strings.HasPrefix(p.String(), a) {
					return m.String(), m.Extension(), true
				}
			}
			continue
		}
		if m.Is(a) {
			return m.String(), m.Extension(), true
		}
	}

	return m.String(), m.Extension(), false
}
