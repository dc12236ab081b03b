// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package fixer

import (
	"fmt"

	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/internal/xlog"
)

// zapContext forwards datafix.Context's Info/Warn to an xlog.Logger,
// the default logging context.
type zapContext struct {
	logger xlog.Logger
}

// NewZapContext builds a datafix.Context that forwards every Info/Warn
// call to logger.
func NewZapContext(logger xlog.Logger) datafix.Context {
	return &zapContext{logger: logger}
}

func (c *zapContext) Info(format string, args ...any) {
	c.logger.Info(fmt.Sprintf(format, args...))
}

func (c *zapContext) Warn(format string, args ...any) {
	c.logger.Warn(fmt.Sprintf(format, args...))
}

// noopContext discards every Info/Warn call at zero cost; the default
// when a caller supplies no context factory of its own.
type noopContext struct{}

// NewNoopContext builds a datafix.Context that discards everything.
func NewNoopContext() datafix.Context { return noopContext{} }

func (noopContext) Info(string, ...any) {}
func (noopContext) Warn(string, ...any) {}
