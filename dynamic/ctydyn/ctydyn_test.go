// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package ctydyn_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/dynamic/ctydyn"
)

func TestCtyOps_SetGetRemove(t *testing.T) {
	d := dynamic.Empty[cty.Value](ctydyn.Ops{})
	d2 := d.Set("name", d.CreateString("Alice")).Set("level", d.CreateInt(10))

	name, ok := d2.Get("name").Value()
	require.True(t, ok)
	s, ok := name.AsString().Value()
	require.True(t, ok)
	require.Equal(t, "Alice", s)

	level, ok := d2.Get("level").Value()
	require.True(t, ok)
	n, ok := level.AsInt().Value()
	require.True(t, ok)
	require.EqualValues(t, 10, n)

	d3 := d2.Remove("level")
	_, present := d3.Ops.Get("level", d3.Value).Value()
	require.False(t, present)
}

func TestCtyOps_ListRoundTrip(t *testing.T) {
	d := dynamic.Empty[cty.Value](ctydyn.Ops{})
	list := d.CreateList([]dynamic.Dynamic[cty.Value]{d.CreateInt(1), d.CreateString("x")})
	items, ok := list.AsList().Value()
	require.True(t, ok)
	require.Len(t, items, 2)
}

func TestCtyOps_NumericCanonicalization(t *testing.T) {
	d := dynamic.Empty[cty.Value](ctydyn.Ops{})
	require.Equal(t, dynamic.TypeI64, d.CreateByte(5).Type())
	require.Equal(t, dynamic.TypeF64, d.CreateDouble(5.5).Type())
}
