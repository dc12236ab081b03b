// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package diagnostic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/diagnostic"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/dynamic/nativedyn"
	"github.com/fixerlab/datafixer/registry"
	"github.com/fixerlab/datafixer/rewrite"
)

func snapshotFn(d dynamic.Dynamic[any]) string { return d.String() }

func TestContext_CapturesFixExecutionsInOrder(t *testing.T) {
	player := codec.Ref("player")
	ops := nativedyn.Ops{}
	before := dynamic.Empty[any](ops)
	after := dynamic.Empty[any](ops)

	ctx := diagnostic.NewContext[any](diagnostic.Defaults(), snapshotFn)

	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v2 := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), nil)
	f1 := datafix.SchemaDataFix[any]{
		Name: "rename", FromVersion: 1, ToVersion: 2, TargetType: player,
		Input: v1, Output: v2,
		MakeRule: func(_, _ *registry.Schema[any]) rewrite.Rule[any] {
			return rewrite.RenameField[any]{Type: player, From: "hp", To: "health"}
		},
	}
	f2 := datafix.DataFix[any]{Name: "add-default", FromVersion: 2, ToVersion: 3, TargetType: player}

	ctx.BeginFix(f1, before)
	ctx.EndFix(f1, after, 5*time.Millisecond)
	ctx.BeginFix(f2, before)
	ctx.EndFix(f2, after, 7*time.Millisecond)

	report := ctx.GetReport()
	require.Len(t, report.Executions, 2)
	require.Equal(t, "rename", report.Executions[0].FixName)
	require.Equal(t, "add-default", report.Executions[1].FixName)
	require.Equal(t, 12*time.Millisecond, report.TotalDuration)
	require.NotEmpty(t, report.Executions[0].Before)
	require.NotEmpty(t, report.Executions[0].After)
	require.Equal(t, []diagnostic.RuleApplication{{RuleKind: "rename_field", TargetType: "player"}}, report.Executions[0].Rules)
	require.Empty(t, report.Executions[1].Rules)
}

func TestContext_GetReportIsIdempotent(t *testing.T) {
	ctx := diagnostic.NewContext[any](diagnostic.Defaults(), snapshotFn)
	first := ctx.GetReport()
	second := ctx.GetReport()
	require.Equal(t, first, second)
}

func TestContext_WarnRecordsAgainstInFlightExecution(t *testing.T) {
	player := codec.Ref("player")
	ops := nativedyn.Ops{}
	d := dynamic.Empty[any](ops)

	ctx := diagnostic.NewContext[any](diagnostic.Defaults(), snapshotFn)
	f := datafix.DataFix[any]{Name: "f", FromVersion: 1, ToVersion: 2, TargetType: player}
	ctx.BeginFix(f, d)
	ctx.Warn("field %q already exists", "name")
	ctx.EndFix(f, d, time.Millisecond)

	report := ctx.GetReport()
	require.Equal(t, []string{`field "name" already exists`}, report.Executions[0].Warnings)
	require.Equal(t, []string{`field "name" already exists`}, report.Warnings)
}

func TestContext_ReportCarriesOptionsSnapshot(t *testing.T) {
	opts := diagnostic.Options{CaptureSnapshots: true, MaxSnapshotBytes: 64}
	ctx := diagnostic.NewContext[any](opts, snapshotFn)
	report := ctx.GetReport()
	require.Equal(t, opts, report.Options)
}

func TestContext_ReportFlattensWarningsAcrossExecutions(t *testing.T) {
	player := codec.Ref("player")
	ops := nativedyn.Ops{}
	d := dynamic.Empty[any](ops)

	ctx := diagnostic.NewContext[any](diagnostic.Defaults(), snapshotFn)
	f1 := datafix.DataFix[any]{Name: "f1", FromVersion: 1, ToVersion: 2, TargetType: player}
	f2 := datafix.DataFix[any]{Name: "f2", FromVersion: 2, ToVersion: 3, TargetType: player}

	ctx.BeginFix(f1, d)
	ctx.Warn("first warning")
	ctx.EndFix(f1, d, time.Millisecond)

	ctx.BeginFix(f2, d)
	ctx.Warn("second warning")
	ctx.EndFix(f2, d, time.Millisecond)

	report := ctx.GetReport()
	require.Equal(t, []string{"first warning", "second warning"}, report.Warnings)
}

func TestContext_FailOnWarnPanics(t *testing.T) {
	ctx := diagnostic.NewContext[any](diagnostic.Options{FailOnWarn: true}, snapshotFn)
	require.Panics(t, func() { ctx.Warn("uh oh") })
}

func TestContext_DisabledCapturesOmitFields(t *testing.T) {
	player := codec.Ref("player")
	ops := nativedyn.Ops{}
	d := dynamic.Empty[any](ops)

	ctx := diagnostic.NewContext[any](diagnostic.Options{}, snapshotFn)
	f := datafix.DataFix[any]{Name: "f", FromVersion: 1, ToVersion: 2, TargetType: player}
	ctx.BeginFix(f, d)
	ctx.EndFix(f, d, 5*time.Millisecond)

	report := ctx.GetReport()
	require.Empty(t, report.Executions[0].Before)
	require.Empty(t, report.Executions[0].After)
	require.Zero(t, report.Executions[0].Duration)
	require.Empty(t, report.Executions[0].Rules)
}

func TestReport_Summary(t *testing.T) {
	r := diagnostic.Report{Executions: []diagnostic.FixExecution{{FixName: "a"}, {FixName: "b"}}}
	require.Equal(t, "2 fixes applied", r.Summary())

	r.Executions[0].Warnings = []string{"w1", "w2"}
	require.Equal(t, "2 fixes applied, 2 warnings", r.Summary())
}
