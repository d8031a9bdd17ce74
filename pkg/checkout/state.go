// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package checkout drives the bounded wait for a paid checkout session to be
// recorded.
package checkout

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusPreview  Status = "preview"
	StatusReady    Status = "ready"
	StatusError    Status = "error"
	StatusTimedOut Status = "timed_out"
)

// StillProcessing is shown once the attempts are used up without a ready result.
const StillProcessing = "Your payment is still processing. It can take a few minutes to appear, please check back shortly."

// Policy is the polling schedule.
type Policy struct {
	FastDelay    time.Duration
	FastAttempts int
	SlowDelay    time.Duration
	MaxAttempts  int
}

var DefaultPolicy = Policy{
	FastDelay:    800 * time.Millisecond,
	FastAttempts: 6,
	SlowDelay:    1500 * time.Millisecond,
	MaxAttempts:  20,
}

// Result is the outcome of one lookup.
type Result struct {
	Status Status
	Data   interface{}
	Err    error
}

type State struct {
	Status  Status
	Attempt int
	// Data is the payload of the latest preview or ready result. Preview
	// data is provisional.
	Data interface{}
	Err  error
}

func (s State) Done() bool {
	switch s.Status {
	case StatusReady, StatusError, StatusTimedOut:
		return true
	}
	return false
}

func (s State) Provisional() bool {
	return s.Status == StatusPreview || (s.Status == StatusTimedOut && s.Data != nil)
}

// Message is the text to surface for a finished state.
func (s State) Message() string {
	switch s.Status {
	case StatusTimedOut:
		return StillProcessing
	case StatusError:
		if s.Err != nil {
			return s.Err.Error()
		}
		return "lookup failed"
	}
	return ""
}

// Delay returns the wait before the lookup following attempt.
func (p Policy) Delay(attempt int) time.Duration {
	if attempt <= p.FastAttempts {
		return p.FastDelay
	}
	return p.SlowDelay
}

// Next applies one lookup result. Finished states never change, a preview
// is never downgraded back to pending, and running out of attempts without
// a ready result times out.
func (p Policy) Next(s State, r Result) State {
	if s.Done() {
		return s
	}

	next := State{Status: s.Status, Attempt: s.Attempt + 1, Data: s.Data}

	switch {
	case r.Err != nil:
		next.Status = StatusError
		next.Err = r.Err
		return next
	case r.Status == StatusReady:
		next.Status = StatusReady
		next.Data = r.Data
		return next
	case r.Status == StatusPreview:
		next.Status = StatusPreview
		next.Data = r.Data
	case r.Status == StatusPending:
	default:
		next.Status = StatusError
		next.Err = &UnknownStatusError{Status: r.Status}
		return next
	}

	if next.Attempt >= p.MaxAttempts {
		next.Status = StatusTimedOut
	}
	return next
}

// Next applies DefaultPolicy.
func Next(s State, r Result) State {
	return DefaultPolicy.Next(s, r)
}

type UnknownStatusError struct {
	Status Status
}

func (e *UnknownStatusError) Error() string {
	return "unknown lookup status " + string(e.Status)
}
