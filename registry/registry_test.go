// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/internal/errs"
	"github.com/fixerlab/datafixer/registry"
)

func TestTypeRegistry_RegisterLookupFreeze(t *testing.T) {
	r := registry.NewTypeRegistry[any]()
	ty := codec.NewType(codec.Ref("hp"), codec.Int[any]())

	require.NoError(t, registry.Register(r, ty))
	got, ok := registry.Lookup[any, int32](r, codec.Ref("hp"))
	require.True(t, ok)
	require.Equal(t, ty.Ref, got.Ref)

	_, ok = registry.Lookup[any, int32](r, codec.Ref("missing"))
	require.False(t, ok)

	r.Freeze()
	require.True(t, r.Frozen())
	err := registry.Register(r, ty)
	require.Error(t, err)
	require.True(t, errs.Of(err, errs.KindFrozen))
}

func TestTypeRegistry_WrongTypeParamMisses(t *testing.T) {
	r := registry.NewTypeRegistry[any]()
	require.NoError(t, registry.Register(r, codec.NewType(codec.Ref("name"), codec.String[any]())))

	_, ok := registry.Lookup[any, int32](r, codec.Ref("name"))
	require.False(t, ok, "looking up a string-typed entry as int32 should miss, not panic")
}

func TestSchema_InheritsFromParent(t *testing.T) {
	parentReg := registry.NewTypeRegistry[any]()
	require.NoError(t, registry.Register(parentReg, codec.NewType(codec.Ref("name"), codec.String[any]())))
	parent := registry.NewSchema[any](1, parentReg, nil)

	childReg := registry.NewTypeRegistry[any]()
	require.NoError(t, registry.Register(childReg, codec.NewType(codec.Ref("hp"), codec.Int[any]())))
	child := registry.NewSchema[any](2, childReg, parent)

	_, ok := registry.SchemaLookup[any, string](child, codec.Ref("name"))
	require.True(t, ok, "child should inherit parent's type on miss")

	_, ok = registry.SchemaLookup[any, int32](child, codec.Ref("hp"))
	require.True(t, ok)
}

func TestSchemaRegistry_FloorLookup(t *testing.T) {
	sr := registry.NewSchemaRegistry[any]()
	s1 := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	s5 := registry.NewSchema[any](5, registry.NewTypeRegistry[any](), s1)
	require.NoError(t, sr.Register(1, s1))
	require.NoError(t, sr.Register(5, s5))

	got, ok := sr.Get(3)
	require.True(t, ok)
	require.Equal(t, registry.DataVersion(1), got.Version())

	got, ok = sr.Get(7)
	require.True(t, ok)
	require.Equal(t, registry.DataVersion(5), got.Version())

	_, ok = sr.Get(0)
	require.False(t, ok)
}

func TestSchemaRegistry_RegisterVersionMismatch(t *testing.T) {
	sr := registry.NewSchemaRegistry[any]()
	s := registry.NewSchema[any](3, registry.NewTypeRegistry[any](), nil)
	err := sr.Register(4, s)
	require.Error(t, err)
}

func TestSchemaRegistry_FreezeDetectsCycle(t *testing.T) {
	sr := registry.NewSchemaRegistry[any]()
	a := registry.NewSchema[any](1, registry.NewTypeRegistry[any](), nil)
	b := registry.NewSchema[any](2, registry.NewTypeRegistry[any](), a)
	a.SetParent(b)
	require.NoError(t, sr.Register(1, a))
	require.NoError(t, sr.Register(2, b))

	err := sr.Freeze()
	require.Error(t, err)
	require.True(t, errs.Of(err, errs.KindPlanning))
	require.False(t, sr.Frozen())
}

func TestSchemaRegistry_FreezeFreezesAllSchemas(t *testing.T) {
	sr := registry.NewSchemaRegistry[any]()
	reg := registry.NewTypeRegistry[any]()
	s := registry.NewSchema[any](1, reg, nil)
	require.NoError(t, sr.Register(1, s))

	require.NoError(t, sr.Freeze())
	require.True(t, reg.Frozen())
	require.Error(t, registry.Register(reg, codec.NewType(codec.Ref("x"), codec.Bool[any]())))
}
