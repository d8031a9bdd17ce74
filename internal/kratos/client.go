// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/monitoring"
	"github.com/communityhub/portal/internal/tracing"
)

var ErrIdentityNotFound = errors.New("identity not found")

// Client reads identities from the Kratos admin API. Role grants by email
// go through it, nothing is written back to Kratos.
type Client struct {
	identities ory.IdentityAPI

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetIdentityIDByEmail looks the identity up by its login identifier.
func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", ErrIdentityNotFound
	}

	// an explicit empty page token, see https://github.com/ory/sdk/issues/461
	ids, r, err := c.identities.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err := c.check(r, err); err != nil {
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", ErrIdentityNotFound
	}
	if len(ids) > 1 {
		c.logger.Warnf("%d identities share the identifier %s, using the first", len(ids), email)
	}

	return ids[0].Id, nil
}

// GetIdentityEmail returns the email trait of the identity.
func (c *Client) GetIdentityEmail(ctx context.Context, id string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityEmail")
	defer span.End()

	identity, r, err := c.identities.GetIdentity(ctx, id).Execute()
	if err := c.check(r, err); err != nil {
		return "", fmt.Errorf("failed to get identity: %w", err)
	}

	traits, _ := identity.Traits.(map[string]interface{})
	email, _ := traits["email"].(string)

	return email, nil
}

// check records Kratos availability and turns a 404 into ErrIdentityNotFound.
func (c *Client) check(r *http.Response, err error) error {
	available := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		available = 0
	}
	if merr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available); merr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", merr)
	}

	if err != nil && r != nil && r.StatusCode == http.StatusNotFound {
		return ErrIdentityNotFound
	}
	return err
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

	c := new(Client)

	c.identities = ory.NewAPIClient(conf).IdentityAPI

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
