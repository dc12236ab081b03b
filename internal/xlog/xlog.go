// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package xlog provides the ambient structured-logging adapter shared
// by every datafixer package that needs to emit diagnostics without
// depending on zap directly. It wraps a *zap.Logger behind a narrow
// interface, the way 2lar-b2's infrastructure/di package wraps one
// behind its own handlers.Logger adapter.
package xlog

import (
	"go.uber.org/zap"
)

// Logger is the narrow logging surface datafixer code depends on.
// fixer.Context implementations wrap a Logger to satisfy
// datafix.Context's Info/Warn methods.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field is a lazily-materialized key/value pair; String/Int/Err build
// one without importing zap at the call site.
type Field struct {
	key string
	val any
}

func String(key, value string) Field { return Field{key: key, val: value} }
func Int(key string, value int) Field { return Field{key: key, val: value} }
func Err(err error) Field             { return Field{key: "error", val: err} }
func Any(key string, value any) Field { return Field{key: key, val: value} }

func (f Field) toZap() zap.Field { return zap.Any(f.key, f.val) }

// zapLogger adapts a *zap.Logger to Logger.
type zapLogger struct {
	logger *zap.Logger
}

// NewZap wraps an existing *zap.Logger.
func NewZap(logger *zap.Logger) Logger {
	return &zapLogger{logger: logger}
}

// NewProduction builds a Logger using zap's production defaults
// (JSON encoding, info level and above).
func NewProduction() (Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &zapLogger{logger: logger}, nil
}

// NewDevelopment builds a Logger using zap's development defaults
// (console encoding, debug level and above, stack traces on warn+).
func NewDevelopment() (Logger, error) {
	logger, err := zap.NewDevelopment()
	if err != nil {
		return nil, err
	}
	return &zapLogger{logger: logger}, nil
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.logger.Debug(msg, toZapFields(fields)...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.logger.Info(msg, toZapFields(fields)...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.logger.Warn(msg, toZapFields(fields)...) }

func toZapFields(fields []Field) []zap.Field {
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = f.toZap()
	}
	return out
}

// noopLogger is a Logger that discards everything.
type noopLogger struct{}

// Noop returns the shared no-op Logger.
func Noop() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
