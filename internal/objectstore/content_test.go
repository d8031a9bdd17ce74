// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package objectstore

import (
	"testing"
)

var (
	pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")
	pdfHeader = []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
)

func TestSniff(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		accepted []string
		expected string
		ok       bool
	}{
		{name: "png as image", data: pngHeader, accepted: []string{"image/"}, expected: "image/png", ok: true},
		{name: "pdf as proof", data: pdfHeader, accepted: []string{"image/", "application/pdf"}, expected: "application/pdf", ok: true},
		{name: "pdf is not an image", data: pdfHeader, accepted: []string{"image/"}, expected: "application/pdf", ok: false},
		{name: "text is refused", data: []byte("hello there"), accepted: []string{"image/", "application/pdf"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct, _, ok := Sniff(tt.data, tt.accepted...)

			if ok != tt.ok {
				t.Fatalf("expected ok %v, got %v for %s", tt.ok, ok, ct)
			}
			if tt.expected != "" && ct != tt.expected {
				t.Fatalf("expected %s, got %s", tt.expected, ct)
			}
		})
	}
}
