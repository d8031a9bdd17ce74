// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Errorw(string, ...interface{})
	Infow(string, ...interface{})
	Sync() error

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface records audit events: authentication and authorization
// outcomes, privileged back office mutations and process lifecycle.
type SecurityLoggerInterface interface {
	AuthnFailure(reason string)
	AuthzFailure(subject, resource string)
	AdminAction(actor, action, target string, fields ...interface{})
	SystemStartup()
	SystemShutdown()
}
