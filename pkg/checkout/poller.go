// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package checkout

import (
	"context"
	"time"

	"github.com/communityhub/portal/internal/logging"
	"github.com/communityhub/portal/internal/tracing"
)

type LookupFunc func(ctx context.Context) Result

type Poller struct {
	policy Policy
	// OnChange is called whenever the status changes, including the final one.
	OnChange func(State)

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Wait runs lookup until the state is finished. A cancelled context stops
// the wait and returns the last state with the context error.
func (p *Poller) Wait(ctx context.Context, lookup LookupFunc) (State, error) {
	ctx, span := p.tracer.Start(ctx, "checkout.Poller.Wait")
	defer span.End()

	state := State{Status: StatusPending}

	for {
		prev := state.Status
		state = p.policy.Next(state, lookup(ctx))

		if state.Status != prev && p.OnChange != nil {
			p.OnChange(state)
		}
		if state.Done() {
			p.logger.Debugf("checkout wait finished as %s after %d attempts", state.Status, state.Attempt)
			return state, nil
		}

		timer := time.NewTimer(p.policy.Delay(state.Attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return state, ctx.Err()
		case <-timer.C:
		}
	}
}

func NewPoller(policy Policy, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Poller {
	p := new(Poller)

	p.policy = policy

	p.tracer = tracer
	p.logger = logger

	return p
}
