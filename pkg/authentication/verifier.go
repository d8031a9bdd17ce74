// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

// Policy restricts which verified tokens may call the API. An empty policy
// lets every subject of the issuer in.
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
}

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

func (p Policy) allows(c claims) bool {
	if len(p.AllowedSubjects) == 0 && p.RequiredScope == "" {
		return true
	}

	if slices.Contains(p.AllowedSubjects, c.Subject) {
		return true
	}

	if p.RequiredScope == "" {
		return false
	}

	return slices.Contains(strings.Fields(c.Scope), p.RequiredScope) || slices.Contains(c.Scopes, p.RequiredScope)
}

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return "", err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return "", err
	}

	if c.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	if !v.policy.allows(c) {
		v.logger.Security().AuthzFailure(c.Subject, "jwt_api_access")
		return "", fmt.Errorf("unauthorized: missing required scope or subject not allowed")
	}

	return c.Subject, nil
}

func NewJWTVerifier(verifier *oidc.IDTokenVerifier, policy Policy, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.policy = policy

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
