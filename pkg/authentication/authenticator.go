// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

var otelHTTPClient = http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// JWTConfig describes where signing keys come from and which verified
// tokens are let in.
type JWTConfig struct {
	Issuer string
	// JWKSURL skips OIDC discovery when the issuer does not publish it.
	JWKSURL string

	Policy Policy
}

// NewJWTAuthenticator builds a verifier for access tokens minted by the
// identity provider. Subjects of accepted tokens are identity IDs.
func NewJWTAuthenticator(ctx context.Context, cfg JWTConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	ctx = oidc.ClientContext(ctx, &otelHTTPClient)
	config := &oidc.Config{SkipClientIDCheck: true}

	if cfg.JWKSURL != "" {
		logger.Infof("verifying tokens from %s with keys at %s", cfg.Issuer, cfg.JWKSURL)
		keys := oidc.NewRemoteKeySet(ctx, cfg.JWKSURL)
		return NewJWTVerifier(oidc.NewVerifier(cfg.Issuer, keys, config), cfg.Policy, tracer, monitor, logger), nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issuer %s: %v", cfg.Issuer, err)
	}
	logger.Infof("verifying tokens from %s using discovery", cfg.Issuer)

	return NewJWTVerifier(provider.Verifier(config), cfg.Policy, tracer, monitor, logger), nil
}
