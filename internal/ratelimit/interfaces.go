// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"net/http"
)

type LimiterInterface interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

type MiddlewareInterface interface {
	PerIP(scope string) func(http.Handler) http.Handler
}
