// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT and returns the identity ID in its subject.
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}
