// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package ctydyn implements dynamic.Ops over github.com/zclconf/go-cty
// cty.Value trees, the encoding the registry/hcldecl schema
// declaration DSL evaluates its HCL bodies into.
//
// cty has a single Number primitive (github.com/zclconf/go-cty's
// arbitrary-precision cty.Number, backed by math/big), so the six
// distinct numeric widths DynamicOps distinguishes are canonicalized
// on read: an integral cty.Number classifies as TypeI64, a
// non-integral one as TypeF64. This is canonical numeric widening, not
// silent narrowing: constructors still accept and round-trip every
// width, only TypeOf's classification collapses to the canonical
// pair.
package ctydyn

import (
	"fmt"
	"math"
	"math/big"

	"github.com/zclconf/go-cty/cty"

	"github.com/fixerlab/datafixer/dynamic"
)

// Ops implements dynamic.Ops[cty.Value].
type Ops struct{}

var _ dynamic.Ops[cty.Value] = Ops{}

func (Ops) TypeOf(v cty.Value) dynamic.ValueType {
	if !v.IsKnown() || v.IsNull() {
		return dynamic.TypeNull
	}
	t := v.Type()
	switch {
	case t == cty.Bool:
		return dynamic.TypeBool
	case t == cty.String:
		return dynamic.TypeString
	case t == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			return dynamic.TypeI64
		}
		return dynamic.TypeF64
	case t.IsObjectType() || t.IsMapType():
		return dynamic.TypeMap
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		return dynamic.TypeList
	default:
		return dynamic.TypeNull
	}
}

func (Ops) Empty() cty.Value { return cty.EmptyObjectVal }

func (Ops) CreateBoolean(b bool) cty.Value { return cty.BoolVal(b) }
func (Ops) CreateByte(v int8) cty.Value    { return cty.NumberIntVal(int64(v)) }
func (Ops) CreateShort(v int16) cty.Value  { return cty.NumberIntVal(int64(v)) }
func (Ops) CreateInt(v int32) cty.Value    { return cty.NumberIntVal(int64(v)) }
func (Ops) CreateLong(v int64) cty.Value   { return cty.NumberIntVal(v) }
func (Ops) CreateFloat(v float32) cty.Value  { return cty.NumberFloatVal(float64(v)) }
func (Ops) CreateDouble(v float64) cty.Value { return cty.NumberFloatVal(v) }
func (Ops) CreateString(v string) cty.Value  { return cty.StringVal(v) }

func (Ops) CreateList(items []cty.Value) cty.Value {
	if len(items) == 0 {
		return cty.EmptyTupleVal
	}
	return cty.TupleVal(items)
}

func (Ops) CreateMap(entries []dynamic.MapEntry[cty.Value]) cty.Value {
	if len(entries) == 0 {
		return cty.EmptyObjectVal
	}
	m := make(map[string]cty.Value, len(entries))
	for _, e := range entries {
		k, err := keyString(e.K)
		if err != nil {
			continue
		}
		m[k] = e.V
	}
	return cty.ObjectVal(m)
}

func keyString(k cty.Value) (string, error) {
	if k.Type() != cty.String {
		return "", fmt.Errorf("ctydyn: map keys must be strings, got %s", k.Type().FriendlyName())
	}
	return k.AsString(), nil
}

func (Ops) GetBoolean(v cty.Value) dynamic.Result[bool] {
	if v.IsNull() || v.Type() != cty.Bool {
		return dynamic.Failure[bool](fmt.Errorf("ctydyn: %s is not a boolean", v.Type().FriendlyName()), nil)
	}
	return dynamic.Success(v.True())
}

func (Ops) GetNumberValue(v cty.Value) dynamic.Result[float64] {
	if v.IsNull() || v.Type() != cty.Number {
		return dynamic.Failure[float64](fmt.Errorf("ctydyn: %s is not numeric", v.Type().FriendlyName()), nil)
	}
	f, _ := v.AsBigFloat().Float64()
	if math.IsInf(f, 0) {
		return dynamic.Failure[float64](fmt.Errorf("ctydyn: number out of float64 range"), nil)
	}
	return dynamic.Success(f)
}

func (Ops) GetStringValue(v cty.Value) dynamic.Result[string] {
	if v.IsNull() || v.Type() != cty.String {
		return dynamic.Failure[string](fmt.Errorf("ctydyn: %s is not a string", v.Type().FriendlyName()), nil)
	}
	return dynamic.Success(v.AsString())
}

func (Ops) GetMapValues(v cty.Value) dynamic.Result[[]dynamic.MapEntry[cty.Value]] {
	if v.IsNull() || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return dynamic.Failure[[]dynamic.MapEntry[cty.Value]](fmt.Errorf("ctydyn: %s is not a map", v.Type().FriendlyName()), nil)
	}
	vm := v.AsValueMap()
	out := make([]dynamic.MapEntry[cty.Value], 0, len(vm))
	for k, val := range vm {
		out = append(out, dynamic.MapEntry[cty.Value]{K: cty.StringVal(k), V: val})
	}
	return dynamic.Success(out)
}

func (Ops) GetStream(v cty.Value) dynamic.Result[[]cty.Value] {
	if v.IsNull() || !(v.Type().IsTupleType() || v.Type().IsListType() || v.Type().IsSetType()) {
		return dynamic.Failure[[]cty.Value](fmt.Errorf("ctydyn: %s is not a list", v.Type().FriendlyName()), nil)
	}
	return dynamic.Success(v.AsValueSlice())
}

func (o Ops) GetMapEntry(key string, m cty.Value) dynamic.Result[dynamic.MapEntry[cty.Value]] {
	v, ok := attr(m, key)
	if !ok {
		return dynamic.Failure[dynamic.MapEntry[cty.Value]](fmt.Errorf("ctydyn: key %q not found", key), nil)
	}
	return dynamic.Success(dynamic.MapEntry[cty.Value]{K: cty.StringVal(key), V: v})
}

func (o Ops) Get(key string, m cty.Value) dynamic.Result[cty.Value] {
	v, ok := attr(m, key)
	if !ok {
		return dynamic.Failure[cty.Value](fmt.Errorf("ctydyn: key %q not found", key), nil)
	}
	return dynamic.Success(v)
}

func attr(m cty.Value, key string) (cty.Value, bool) {
	if m.IsNull() || !(m.Type().IsObjectType() || m.Type().IsMapType()) {
		return cty.NilVal, false
	}
	if m.Type().IsObjectType() && !m.Type().HasAttribute(key) {
		return cty.NilVal, false
	}
	vm := m.AsValueMap()
	v, ok := vm[key]
	return v, ok
}

func (o Ops) Set(key string, value cty.Value, m cty.Value) cty.Value {
	attrs := asMutableMap(m)
	attrs[key] = value
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

func (o Ops) Remove(key string, m cty.Value) cty.Value {
	attrs := asMutableMap(m)
	delete(attrs, key)
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

func (o Ops) MergeMap(m1, m2 cty.Value) cty.Value {
	attrs := asMutableMap(m1)
	for k, v := range asMutableMap(m2) {
		attrs[k] = v
	}
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

func (o Ops) Update(key string, f func(cty.Value) cty.Value, m cty.Value) cty.Value {
	cur, ok := attr(m, key)
	if !ok {
		cur = cty.NullVal(cty.DynamicPseudoType)
	}
	return o.Set(key, f(cur), m)
}

func asMutableMap(m cty.Value) map[string]cty.Value {
	out := map[string]cty.Value{}
	if m.IsNull() || !(m.Type().IsObjectType() || m.Type().IsMapType()) {
		return out
	}
	for k, v := range m.AsValueMap() {
		out[k] = v
	}
	return out
}

// BigFloat exposes a cty number's full precision, without the lossy
// float64 widening GetNumberValue performs.
func BigFloat(v cty.Value) (*big.Float, error) {
	if v.IsNull() || v.Type() != cty.Number {
		return nil, fmt.Errorf("ctydyn: %s is not numeric", v.Type().FriendlyName())
	}
	return v.AsBigFloat(), nil
}
