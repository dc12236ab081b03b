// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package fixer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/diagnostic"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/dynamic/nativedyn"
	"github.com/fixerlab/datafixer/fixer"
	"github.com/fixerlab/datafixer/internal/errs"
	"github.com/fixerlab/datafixer/registry"
	"github.com/fixerlab/datafixer/rewrite"
)

// Scenario S1: a single rename fix carries a value across one hop,
// leaving unrelated fields untouched.
func TestScenario_S1Rename(t *testing.T) {
	schemas := registry.NewSchemaRegistry[any]()
	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v2 := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), nil)
	require.NoError(t, schemas.Register(1, v1))
	require.NoError(t, schemas.Register(2, v2))
	require.NoError(t, schemas.Freeze())

	fixes := datafix.NewFixRegistry[any]()
	require.NoError(t, fixes.Register(datafix.SchemaDataFix[any]{
		Name: "rename-playerName", FromVersion: 1, ToVersion: 2, TargetType: player,
		Input: v1, Output: v2,
		MakeRule: func(_, _ *registry.Schema[any]) rewrite.Rule[any] {
			return rewrite.RenameField[any]{Type: player, From: "playerName", To: "name"}
		},
	}))
	fixes.Freeze()

	f, err := fixer.New[any](schemas, fixes)
	require.NoError(t, err)

	ops := nativedyn.Ops{}
	in := playerValue(ops, map[string]any{"playerName": "Alice", "level": int32(10)})

	out, err := f.Update(player, in, 1, 2)
	require.NoError(t, err)

	name, ok := out.Get("name").Get().AsString().Value()
	require.True(t, ok)
	require.Equal(t, "Alice", name)
	level, ok := out.Get("level").Get().AsInt().Value()
	require.True(t, ok)
	require.Equal(t, int32(10), level)
	require.Equal(t, dynamic.TypeNull, out.Get("playerName").Get().Type())
}

// Scenario S2: a fix adds a field with a default when absent from the
// input, leaving existing fields untouched.
func TestScenario_S2AddWithDefault(t *testing.T) {
	schemas := registry.NewSchemaRegistry[any]()
	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v2 := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), nil)
	require.NoError(t, schemas.Register(1, v1))
	require.NoError(t, schemas.Register(2, v2))
	require.NoError(t, schemas.Freeze())

	fixes := datafix.NewFixRegistry[any]()
	require.NoError(t, fixes.Register(datafix.DataFix[any]{
		Name: "add-health", FromVersion: 1, ToVersion: 2, TargetType: player,
		Fn: func(_ codec.TypeReference, d dynamic.Dynamic[any], _ datafix.Context) dynamic.Dynamic[any] {
			return d.Set("health", d.CreateInt(100))
		},
	}))
	fixes.Freeze()

	f, err := fixer.New[any](schemas, fixes)
	require.NoError(t, err)

	ops := nativedyn.Ops{}
	in := playerValue(ops, map[string]any{"name": "Bob"})

	out, err := f.Update(player, in, 1, 2)
	require.NoError(t, err)

	name, ok := out.Get("name").Get().AsString().Value()
	require.True(t, ok)
	require.Equal(t, "Bob", name)
	health, ok := out.Get("health").Get().AsInt().Value()
	require.True(t, ok)
	require.Equal(t, int32(100), health)
}

// Scenario S3: a rename then an add-with-default chain across two
// hops in a single Update call.
func TestScenario_S3MultiHop(t *testing.T) {
	schemas := registry.NewSchemaRegistry[any]()
	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v2 := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), nil)
	v3 := registry.NewSchema[any](3, registry.NewTypeRegistry[any](), nil)
	require.NoError(t, schemas.Register(1, v1))
	require.NoError(t, schemas.Register(2, v2))
	require.NoError(t, schemas.Register(3, v3))
	require.NoError(t, schemas.Freeze())

	fixes := datafix.NewFixRegistry[any]()
	require.NoError(t, fixes.Register(datafix.SchemaDataFix[any]{
		Name: "rename-playerName", FromVersion: 1, ToVersion: 2, TargetType: player,
		Input: v1, Output: v2,
		MakeRule: func(_, _ *registry.Schema[any]) rewrite.Rule[any] {
			return rewrite.RenameField[any]{Type: player, From: "playerName", To: "name"}
		},
	}))
	require.NoError(t, fixes.Register(datafix.DataFix[any]{
		Name: "add-health", FromVersion: 2, ToVersion: 3, TargetType: player,
		Fn: func(_ codec.TypeReference, d dynamic.Dynamic[any], _ datafix.Context) dynamic.Dynamic[any] {
			return d.Set("health", d.CreateInt(100))
		},
	}))
	fixes.Freeze()

	f, err := fixer.New[any](schemas, fixes)
	require.NoError(t, err)

	ops := nativedyn.Ops{}
	in := playerValue(ops, map[string]any{"playerName": "Carol"})

	out, err := f.Update(player, in, 1, 3)
	require.NoError(t, err)

	name, ok := out.Get("name").Get().AsString().Value()
	require.True(t, ok)
	require.Equal(t, "Carol", name)
	health, ok := out.Get("health").Get().AsInt().Value()
	require.True(t, ok)
	require.Equal(t, int32(100), health)
}

// Scenario S4: updating a version to itself is a same-reference no-op.
func TestScenario_S4Noop(t *testing.T) {
	f := buildFixer(t)
	ops := nativedyn.Ops{}
	d := playerValue(ops, map[string]any{"hp": int32(5)})

	out, err := f.Update(player, d, 2, 2)
	require.NoError(t, err)
	require.Equal(t, d, out)
}

// Scenario S5: updating to an earlier version fails with a planning
// error rather than silently no-op-ing or reversing fixes.
func TestScenario_S5Downgrade(t *testing.T) {
	f := buildFixer(t)
	ops := nativedyn.Ops{}
	d := playerValue(ops, map[string]any{"hp": int32(5)})

	_, err := f.Update(player, d, 3, 1)
	require.Error(t, err)
	require.True(t, errs.Of(err, errs.KindPlanning))
}

// Scenario S6: floor lookup returns the greatest registered version at
// or below the query, or a miss below the earliest registration.
func TestScenario_S6FloorLookup(t *testing.T) {
	schemas := registry.NewSchemaRegistry[any]()
	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v5 := registry.NewSchema[any](5, registry.NewTypeRegistry[any](), nil)
	require.NoError(t, schemas.Register(1, v1))
	require.NoError(t, schemas.Register(5, v5))
	require.NoError(t, schemas.Freeze())

	got, ok := schemas.Get(3)
	require.True(t, ok)
	require.Same(t, v1, got)

	got, ok = schemas.Get(7)
	require.True(t, ok)
	require.Same(t, v5, got)

	_, ok = schemas.Get(0)
	require.False(t, ok)
}

// Scenario S7: with snapshots and rule details enabled, a two-hop
// migration yields a report with exactly two FixExecutions in order,
// each carrying non-empty before/after snapshots, and a total duration
// at least the sum of the individual durations.
func TestScenario_S7DiagnosticCapture(t *testing.T) {
	schemas := registry.NewSchemaRegistry[any]()
	v1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	v2 := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), nil)
	v3 := registry.NewSchema[any](3, registry.NewTypeRegistry[any](), nil)
	require.NoError(t, schemas.Register(1, v1))
	require.NoError(t, schemas.Register(2, v2))
	require.NoError(t, schemas.Register(3, v3))
	require.NoError(t, schemas.Freeze())

	fixes := datafix.NewFixRegistry[any]()
	require.NoError(t, fixes.Register(datafix.SchemaDataFix[any]{
		Name: "rename-playerName", FromVersion: 1, ToVersion: 2, TargetType: player,
		Input: v1, Output: v2,
		MakeRule: func(_, _ *registry.Schema[any]) rewrite.Rule[any] {
			return rewrite.RenameField[any]{Type: player, From: "playerName", To: "name"}
		},
	}))
	require.NoError(t, fixes.Register(datafix.DataFix[any]{
		Name: "add-health", FromVersion: 2, ToVersion: 3, TargetType: player,
		Fn: func(_ codec.TypeReference, d dynamic.Dynamic[any], _ datafix.Context) dynamic.Dynamic[any] {
			return d.Set("health", d.CreateInt(100))
		},
	}))
	fixes.Freeze()

	dctx := diagnostic.NewContext[any](diagnostic.Defaults(), func(d dynamic.Dynamic[any]) string { return d.String() })
	f, err := fixer.New[any](schemas, fixes, fixer.WithContext[any](func() datafix.Context { return dctx }))
	require.NoError(t, err)

	ops := nativedyn.Ops{}
	in := playerValue(ops, map[string]any{"playerName": "Carol"})

	_, err = f.Update(player, in, 1, 3)
	require.NoError(t, err)

	report := dctx.GetReport()
	require.Len(t, report.Executions, 2)
	require.Equal(t, "rename-playerName", report.Executions[0].FixName)
	require.Equal(t, "add-health", report.Executions[1].FixName)
	for _, e := range report.Executions {
		require.NotEmpty(t, e.Before)
		require.NotEmpty(t, e.After)
	}
	require.GreaterOrEqual(t, report.TotalDuration, report.Executions[0].Duration+report.Executions[1].Duration)
}
