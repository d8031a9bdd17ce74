// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is the application logger, a sugared zap logger plus a dedicated
// channel for security events.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production JSON logger at the given level.
// An unknown level falls back to error.
func NewLogger(l string) *Logger {
	var level zapcore.Level

	switch strings.ToLower(l) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	default:
		level = zapcore.ErrorLevel
	}

	logger := new(Logger)
	logger.SugaredLogger = build(level).Sugar()
	// security events are emitted at info regardless of the configured level
	logger.security = newSecurityLogger(build(zapcore.InfoLevel).Named("security"))

	return logger
}

func build(level zapcore.Level) *zap.Logger {
	c := zap.NewProductionConfig()
	c.Level = zap.NewAtomicLevelAt(level)
	c.EncoderConfig.TimeKey = "@timestamp"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := c.Build()
	if err != nil {
		panic(err)
	}

	return z
}
