// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package diagnostic

import (
	"fmt"
	"time"

	"github.com/go-openapi/inflect"

	"github.com/fixerlab/datafixer/registry"
)

// RuleApplication records one rewrite rule's application within a
// SchemaDataFix's materialized rule tree, captured only when
// Options.CaptureRuleDetails is set.
type RuleApplication struct {
	RuleKind   string
	TargetType string
}

// FixExecution records one applied fix in full, gated field-by-field
// by Options: Before/After are empty unless CaptureSnapshots is set,
// Duration is zero unless CaptureTiming is set, Rules is empty unless
// CaptureRuleDetails is set.
type FixExecution struct {
	FixName                string
	FromVersion, ToVersion registry.DataVersion
	TargetType             string
	Before, After          string
	Duration               time.Duration
	Rules                  []RuleApplication
	Warnings               []string
}

// Report is the immutable result of a diagnostic-capturing Context,
// safe to publish once returned by GetReport.
type Report struct {
	ID            string
	Executions    []FixExecution
	TotalDuration time.Duration
	// Warnings collects every FixExecution's Warnings into a single
	// top-level, flattened list, in the order they occurred.
	Warnings []string
	// Options is the capture configuration the Context was built with,
	// so a report carries how it was produced alongside what it found.
	Options Options
}

// Summary renders a one-line human-readable count of this report's
// executions, e.g. "3 fixes applied, 1 warning".
func (r Report) Summary() string {
	fixNoun := "fix"
	if len(r.Executions) != 1 {
		fixNoun = inflect.Pluralize(fixNoun)
	}
	warnCount := 0
	for _, e := range r.Executions {
		warnCount += len(e.Warnings)
	}
	if warnCount == 0 {
		return fmt.Sprintf("%d %s applied", len(r.Executions), fixNoun)
	}
	warnNoun := "warning"
	if warnCount != 1 {
		warnNoun = inflect.Pluralize(warnNoun)
	}
	return fmt.Sprintf("%d %s applied, %d %s", len(r.Executions), fixNoun, warnCount, warnNoun)
}
