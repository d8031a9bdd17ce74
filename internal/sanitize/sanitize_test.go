// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sanitize

import (
	"testing"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain text", input: "Hello, World!", want: "Hello, World!"},
		{name: "script removed", input: "Hi<script>alert('x')</script>", want: "Hi"},
		{name: "tags stripped", input: "<b>Need</b> <i>help</i>", want: "Need help"},
		{name: "ampersand kept readable", input: "Rent & utilities", want: "Rent & utilities"},
		{name: "whitespace trimmed", input: "  note  ", want: "note"},
		{name: "event handler dropped", input: `<img src=x onerror="alert(1)">text`, want: "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.input); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFields(t *testing.T) {
	a, b := "<p>one</p>", " two "
	Fields(&a, nil, &b)

	if a != "one" || b != "two" {
		t.Fatalf("unexpected result %q %q", a, b)
	}
}
