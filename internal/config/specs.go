// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"fmt"
	"net/url"
	"time"
)

const (
	AuthenticationModeHeader = "header"
	AuthenticationModeJWT    = "jwt"
	AuthenticationModeNoop   = "noop"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	// PublicBaseURL is where the website is reachable, checkout redirects point back to it.
	PublicBaseURL      string   `envconfig:"public_base_url" required:"true"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosAdminURL     string `envconfig:"kratos_admin_url" required:"true"`
	KratosWebhookToken string `envconfig:"kratos_webhook_token"`

	AuthenticationMode     string   `envconfig:"authentication_mode" default:"header"`
	AuthenticationIssuer   string   `envconfig:"authentication_issuer"`
	AuthenticationJWKSURL  string   `envconfig:"authentication_jwks_url"`
	AuthenticationSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationScope    string   `envconfig:"authentication_required_scope"`

	StripeSecretKey     string `envconfig:"stripe_secret_key" required:"true"`
	StripeWebhookSecret string `envconfig:"stripe_webhook_secret" required:"true"`
	Currency            string `envconfig:"currency" default:"usd"`

	S3Bucket        string `envconfig:"s3_bucket"`
	S3Region        string `envconfig:"s3_region" default:"us-east-1"`
	S3Endpoint      string `envconfig:"s3_endpoint"`
	S3ProofPrefix   string `envconfig:"s3_proof_prefix" default:"proofs/"`
	S3GalleryPrefix string `envconfig:"s3_gallery_prefix" default:"gallery/"`
	MaxUploadBytes  int64  `envconfig:"max_upload_bytes" default:"10485760"`

	RedisAddr     string `envconfig:"redis_addr"`
	RedisPassword string `envconfig:"redis_password"`
	RedisDB       int    `envconfig:"redis_db" default:"0"`

	PublicRateLimitRPM   int `envconfig:"public_rate_limit_rpm" default:"10"`
	PublicRateLimitBurst int `envconfig:"public_rate_limit_burst" default:"5"`
}

// Validate performs the cross field checks envconfig cannot express.
func (s *EnvSpec) Validate() error {
	if _, err := url.ParseRequestURI(s.PublicBaseURL); err != nil {
		return fmt.Errorf("public_base_url is not a valid url: %w", err)
	}

	switch s.AuthenticationMode {
	case AuthenticationModeHeader, AuthenticationModeNoop:
	case AuthenticationModeJWT:
		if s.AuthenticationIssuer == "" {
			return fmt.Errorf("authentication_issuer is required when authentication_mode is %q", AuthenticationModeJWT)
		}
	default:
		return fmt.Errorf("unknown authentication_mode %q", s.AuthenticationMode)
	}

	if s.S3Endpoint != "" && s.S3Bucket == "" {
		return fmt.Errorf("s3_bucket is required when s3_endpoint is set")
	}

	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive")
	}

	if s.PublicRateLimitRPM <= 0 || s.PublicRateLimitBurst <= 0 {
		return fmt.Errorf("public rate limit must be positive")
	}

	return nil
}

// Warnings lists settings that validate but are unsafe unless the
// deployment provides the missing guarantee.
func (s *EnvSpec) Warnings() []string {
	var w []string

	switch s.AuthenticationMode {
	case AuthenticationModeHeader:
		w = append(w, fmt.Sprintf("authentication_mode is %q: the identity header is trusted as sent, the service must only be reachable through the identity-aware proxy", AuthenticationModeHeader))
	case AuthenticationModeNoop:
		w = append(w, fmt.Sprintf("authentication_mode is %q: bearer tokens are trusted as identity IDs, never use this outside development", AuthenticationModeNoop))
	}

	return w
}
