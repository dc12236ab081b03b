// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package diagnostic

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/rewrite"
)

// failOnWarn is panicked by Context.Warn when Options.FailOnWarn is
// set; fixer.Update recovers it and surfaces a FixExecutionError, so
// the escalation from "recorded" to "fatal" happens through the same
// panic-recovery path user fix code panics go through.
type failOnWarn struct{ msg string }

func (e *failOnWarn) Error() string { return e.msg }

// Context is the diagnostic-capturing DataFixerContext: it implements
// datafix.Context (Info/Warn) directly, and fixer.Observer structurally
// (BeginFix/EndFix) so fixer.DataFixer records a FixExecution per fix
// without importing this package.
//
// Not safe for concurrent use: diagnostic capture is per-context and
// must not be shared across update calls.
type Context[T any] struct {
	opts     Options
	snapshot func(dynamic.Dynamic[T]) string

	id         string
	executions []FixExecution
	current    *FixExecution
	finalized  bool
	report     Report
}

// NewContext builds a diagnostic Context under opts. snapshot renders
// a Dynamic to its captured string form; if nil, it defaults to
// fmt.Sprintf("%v", value).
func NewContext[T any](opts Options, snapshot func(dynamic.Dynamic[T]) string) *Context[T] {
	if snapshot == nil {
		snapshot = func(d dynamic.Dynamic[T]) string { return fmt.Sprintf("%v", d.Value) }
	}
	return &Context[T]{opts: opts, snapshot: snapshot, id: uuid.NewString()}
}

// Info is a no-op: the diagnostic capture surface is fix/rule
// lifecycle and warnings, not free-form info messages.
func (c *Context[T]) Info(string, ...any) {}

// Warn records the message against the in-flight FixExecution (if
// any) and, when Options.FailOnWarn is set, escalates it to fatal by
// panicking; fixer.Update recovers that panic into a FixExecutionError.
func (c *Context[T]) Warn(format string, args ...any) {
	if c.finalized {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if c.current != nil {
		c.current.Warnings = append(c.current.Warnings, msg)
	}
	if c.opts.FailOnWarn {
		panic(&failOnWarn{msg: msg})
	}
}

// BeginFix starts recording fix's execution, capturing a before
// snapshot when Options.CaptureSnapshots is set.
func (c *Context[T]) BeginFix(fix datafix.Fix[T], before dynamic.Dynamic[T]) {
	if c.finalized {
		return
	}
	m := datafix.MetaOf(fix)
	fe := FixExecution{
		FixName:     m.Name,
		FromVersion: m.FromVersion,
		ToVersion:   m.ToVersion,
		TargetType:  m.TargetType.String(),
	}
	if c.opts.CaptureSnapshots {
		fe.Before = c.truncate(c.snapshot(before))
	}
	if c.opts.CaptureRuleDetails {
		fe.Rules = ruleApplications(fix, m.TargetType.String())
	}
	c.current = &fe
}

// EndFix finishes recording the in-flight FixExecution, capturing an
// after snapshot and the measured duration per Options.
func (c *Context[T]) EndFix(_ datafix.Fix[T], after dynamic.Dynamic[T], duration time.Duration) {
	if c.finalized || c.current == nil {
		return
	}
	fe := *c.current
	if c.opts.CaptureSnapshots {
		fe.After = c.truncate(c.snapshot(after))
	}
	if c.opts.CaptureTiming {
		fe.Duration = duration
	}
	c.executions = append(c.executions, fe)
	c.current = nil
}

func ruleApplications[T any](fix datafix.Fix[T], target string) []RuleApplication {
	sdf, ok := fix.(datafix.SchemaDataFix[T])
	if !ok {
		return nil
	}
	rule := sdf.MakeRule(sdf.Input, sdf.Output)
	flat := rewrite.Flatten(rule)
	out := make([]RuleApplication, len(flat))
	for i, r := range flat {
		out[i] = RuleApplication{RuleKind: rewrite.KindOf(r), TargetType: target}
	}
	return out
}

func (c *Context[T]) truncate(s string) string {
	if c.opts.MaxSnapshotBytes <= 0 || len(s) <= c.opts.MaxSnapshotBytes {
		return s
	}
	return s[:c.opts.MaxSnapshotBytes]
}

// GetReport finalizes and returns the immutable Report. The first
// call computes TotalDuration as the sum of every recorded
// FixExecution's duration, flattens every execution's Warnings into
// Report.Warnings, and freezes the context against further recording;
// subsequent calls return the same Report.
func (c *Context[T]) GetReport() Report {
	if c.finalized {
		return c.report
	}
	var total time.Duration
	var warnings []string
	for _, e := range c.executions {
		total += e.Duration
		warnings = append(warnings, e.Warnings...)
	}
	c.report = Report{
		ID:            c.id,
		Executions:    c.executions,
		TotalDuration: total,
		Warnings:      warnings,
		Options:       c.opts,
	}
	c.finalized = true
	return c.report
}
