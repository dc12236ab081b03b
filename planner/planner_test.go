// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package planner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/internal/errs"
	"github.com/fixerlab/datafixer/planner"
	"github.com/fixerlab/datafixer/registry"
)

func fix(name string, from, to registry.DataVersion, target codec.TypeReference) datafix.Fix[any] {
	return datafix.DataFix[any]{Name: name, FromVersion: from, ToVersion: to, TargetType: target}
}

func TestPlan_NoOpWhenFromEqualsTo(t *testing.T) {
	r := datafix.NewFixRegistry[any]()
	path, err := planner.Plan[any](r, codec.Ref("player"), 3, 3)
	require.NoError(t, err)
	require.Empty(t, path)
}

func TestPlan_DirectPath(t *testing.T) {
	player := codec.Ref("player")
	r := datafix.NewFixRegistry[any]()
	require.NoError(t, r.Register(fix("v1-v2", 1, 2, player)))

	path, err := planner.Plan[any](r, player, 1, 2)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, "v1-v2", datafix.MetaOf(path[0]).Name)
}

func TestPlan_MultiHopChoosesFewestHops(t *testing.T) {
	player := codec.Ref("player")
	r := datafix.NewFixRegistry[any]()
	// direct 1->3 should beat 1->2->3 (fewer hops)
	require.NoError(t, r.Register(fix("1-2", 1, 2, player)))
	require.NoError(t, r.Register(fix("2-3", 2, 3, player)))
	require.NoError(t, r.Register(fix("1-3", 1, 3, player)))

	path, err := planner.Plan[any](r, player, 1, 3)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, "1-3", datafix.MetaOf(path[0]).Name)
}

func TestPlan_CoverageGapFails(t *testing.T) {
	player := codec.Ref("player")
	r := datafix.NewFixRegistry[any]()
	require.NoError(t, r.Register(fix("1-2", 1, 2, player)))

	_, err := planner.Plan[any](r, player, 1, 5)
	require.Error(t, err)
	require.True(t, errs.Of(err, errs.KindPlanning))
}

func TestPlan_FewestHopsBeatsLowerToVersionAtDivergence(t *testing.T) {
	player := codec.Ref("player")
	r := datafix.NewFixRegistry[any]()
	// The direct 1->4 fix (1 hop) beats 1->2->4 (2 hops), even though
	// the two-hop path leaves version 1 through the lower toVersion.
	require.NoError(t, r.Register(fix("1-4a", 1, 4, player)))
	require.NoError(t, r.Register(fix("1-2", 1, 2, player)))
	require.NoError(t, r.Register(fix("2-4", 2, 4, player)))

	path, err := planner.Plan[any](r, player, 1, 4)
	require.NoError(t, err)
	require.Len(t, path, 1)
	require.Equal(t, "1-4a", datafix.MetaOf(path[0]).Name)
}

func TestPlan_PerDomainIsolation(t *testing.T) {
	player := codec.Ref("player")
	npc := codec.Ref("npc")
	r := datafix.NewFixRegistry[any]()
	require.NoError(t, r.Register(fix("player-1-2", 1, 2, player)))

	_, err := planner.Plan[any](r, npc, 1, 2)
	require.Error(t, err, "a fix for a different domain must not satisfy this domain's plan")
}
