// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"strings"
	"testing"

	"github.com/kelseyhightower/envconfig"
)

func TestProcessRequiredFields(t *testing.T) {
	for _, k := range []string{"DSN", "PUBLIC_BASE_URL", "KRATOS_ADMIN_URL", "STRIPE_SECRET_KEY", "STRIPE_WEBHOOK_SECRET"} {
		// Setenv registers the restore, Unsetenv makes the variable absent
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err == nil {
		t.Fatal("expected missing required variables to fail")
	}
}

func TestProcessDefaults(t *testing.T) {
	t.Setenv("DSN", "postgres://portal@localhost/portal")
	t.Setenv("PUBLIC_BASE_URL", "https://example.org")
	t.Setenv("KRATOS_ADMIN_URL", "http://kratos:4434")
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
	t.Setenv("STRIPE_WEBHOOK_SECRET", "whsec_123")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.AuthenticationMode != AuthenticationModeHeader {
		t.Fatalf("expected header authentication by default, got %q", specs.AuthenticationMode)
	}
	if specs.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected 10MiB upload limit, got %d", specs.MaxUploadBytes)
	}
	if err := specs.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *EnvSpec {
		return &EnvSpec{
			PublicBaseURL:        "https://example.org",
			AuthenticationMode:   AuthenticationModeHeader,
			MaxUploadBytes:       1024,
			PublicRateLimitRPM:   10,
			PublicRateLimitBurst: 5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*EnvSpec)
		wantErr bool
	}{
		{name: "valid", mutate: func(*EnvSpec) {}},
		{name: "bad base url", mutate: func(s *EnvSpec) { s.PublicBaseURL = "not a url" }, wantErr: true},
		{name: "jwt without issuer", mutate: func(s *EnvSpec) { s.AuthenticationMode = AuthenticationModeJWT }, wantErr: true},
		{
			name: "jwt with issuer",
			mutate: func(s *EnvSpec) {
				s.AuthenticationMode = AuthenticationModeJWT
				s.AuthenticationIssuer = "https://issuer.example.org"
			},
		},
		{name: "unknown mode", mutate: func(s *EnvSpec) { s.AuthenticationMode = "cookie" }, wantErr: true},
		{name: "endpoint without bucket", mutate: func(s *EnvSpec) { s.S3Endpoint = "http://minio:9000" }, wantErr: true},
		{name: "zero upload limit", mutate: func(s *EnvSpec) { s.MaxUploadBytes = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid()
			tt.mutate(s)

			err := s.Validate()
			if tt.wantErr != (err != nil) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{mode: AuthenticationModeHeader, want: "identity-aware proxy"},
		{mode: AuthenticationModeNoop, want: "never use this outside development"},
		{mode: AuthenticationModeJWT},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			s := &EnvSpec{AuthenticationMode: tt.mode}

			w := s.Warnings()
			if tt.want == "" {
				if len(w) != 0 {
					t.Fatalf("expected no warnings, got %v", w)
				}
				return
			}
			if len(w) != 1 || !strings.Contains(w[0], tt.want) {
				t.Fatalf("expected a warning containing %q, got %v", tt.want, w)
			}
		})
	}
}
