// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventAuthnFailure   = "authn_failure"
	eventAuthzFailure   = "authz_failure"
	eventAdminAction    = "admin_action"
	eventSysStartup     = "sys_startup"
	eventSysShutdown    = "sys_shutdown"
	securityEventFields = "event"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.l.Warn("authentication failed", zap.String(securityEventFields, eventAuthnFailure), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, resource string) {
	s.l.Warn(
		"authorization denied",
		zap.String(securityEventFields, eventAuthzFailure),
		zap.String("subject", subject),
		zap.String("resource", resource),
	)
}

// AdminAction records a mutation performed from the back office. Extra fields
// are key/value pairs in the zap sugared style.
func (s *SecurityLogger) AdminAction(actor, action, target string, fields ...interface{}) {
	s.l.Sugar().Infow(
		"admin action",
		append([]interface{}{securityEventFields, eventAdminAction, "actor", actor, "action", action, "target", target}, fields...)...,
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String(securityEventFields, eventSysStartup))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String(securityEventFields, eventSysShutdown))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
