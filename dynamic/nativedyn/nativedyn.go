// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package nativedyn implements dynamic.Ops over native Go values
// (map[string]any, []any, and Go scalars), a reference "JSON-like"
// encoding. encoding/json is used only at the boundary
// (FromJSON/ToJSON) to round-trip against real JSON text; the
// in-memory tree itself is plain Go values, matching how a simple
// host encoding would actually be shaped.
package nativedyn

import (
	"encoding/json"
	"fmt"

	"github.com/fixerlab/datafixer/dynamic"
)

// Ops implements dynamic.Ops[any] over native Go values.
type Ops struct{}

var _ dynamic.Ops[any] = Ops{}

func (Ops) TypeOf(t any) dynamic.ValueType {
	switch t.(type) {
	case nil:
		return dynamic.TypeNull
	case bool:
		return dynamic.TypeBool
	case int8:
		return dynamic.TypeI8
	case int16:
		return dynamic.TypeI16
	case int32:
		return dynamic.TypeI32
	case int64, int:
		return dynamic.TypeI64
	case float32:
		return dynamic.TypeF32
	case float64:
		return dynamic.TypeF64
	case string:
		return dynamic.TypeString
	case []any:
		return dynamic.TypeList
	case map[string]any:
		return dynamic.TypeMap
	default:
		return dynamic.TypeNull
	}
}

func (Ops) Empty() any { return nil }

func (Ops) CreateBoolean(b bool) any    { return b }
func (Ops) CreateByte(v int8) any       { return v }
func (Ops) CreateShort(v int16) any     { return v }
func (Ops) CreateInt(v int32) any       { return v }
func (Ops) CreateLong(v int64) any      { return v }
func (Ops) CreateFloat(v float32) any   { return v }
func (Ops) CreateDouble(v float64) any  { return v }
func (Ops) CreateString(v string) any   { return v }
func (Ops) CreateList(items []any) any {
	if items == nil {
		items = []any{}
	}
	return items
}

func (Ops) CreateMap(entries []dynamic.MapEntry[any]) any {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		k, _ := e.K.(string)
		m[k] = e.V
	}
	return m
}

func (Ops) GetBoolean(t any) dynamic.Result[bool] {
	b, ok := t.(bool)
	if !ok {
		return dynamic.Failure[bool](fmt.Errorf("nativedyn: %T is not a boolean", t), nil)
	}
	return dynamic.Success(b)
}

func (Ops) GetNumberValue(t any) dynamic.Result[float64] {
	switch v := t.(type) {
	case int8:
		return dynamic.Success(float64(v))
	case int16:
		return dynamic.Success(float64(v))
	case int32:
		return dynamic.Success(float64(v))
	case int64:
		return dynamic.Success(float64(v))
	case int:
		return dynamic.Success(float64(v))
	case float32:
		return dynamic.Success(float64(v))
	case float64:
		return dynamic.Success(v)
	default:
		return dynamic.Failure[float64](fmt.Errorf("nativedyn: %T is not numeric", t), nil)
	}
}

func (Ops) GetStringValue(t any) dynamic.Result[string] {
	s, ok := t.(string)
	if !ok {
		return dynamic.Failure[string](fmt.Errorf("nativedyn: %T is not a string", t), nil)
	}
	return dynamic.Success(s)
}

func (Ops) GetMapValues(t any) dynamic.Result[[]dynamic.MapEntry[any]] {
	m, ok := t.(map[string]any)
	if !ok {
		return dynamic.Failure[[]dynamic.MapEntry[any]](fmt.Errorf("nativedyn: %T is not a map", t), nil)
	}
	out := make([]dynamic.MapEntry[any], 0, len(m))
	for k, v := range m {
		out = append(out, dynamic.MapEntry[any]{K: k, V: v})
	}
	return dynamic.Success(out)
}

func (Ops) GetStream(t any) dynamic.Result[[]any] {
	l, ok := t.([]any)
	if !ok {
		return dynamic.Failure[[]any](fmt.Errorf("nativedyn: %T is not a list", t), nil)
	}
	return dynamic.Success(l)
}

func (o Ops) GetMapEntry(key string, m any) dynamic.Result[dynamic.MapEntry[any]] {
	mm, ok := m.(map[string]any)
	if !ok {
		return dynamic.Failure[dynamic.MapEntry[any]](fmt.Errorf("nativedyn: %T is not a map", m), nil)
	}
	v, ok := mm[key]
	if !ok {
		return dynamic.Failure[dynamic.MapEntry[any]](fmt.Errorf("nativedyn: key %q not found", key), nil)
	}
	return dynamic.Success(dynamic.MapEntry[any]{K: key, V: v})
}

func (o Ops) Get(key string, m any) dynamic.Result[any] {
	mm, ok := m.(map[string]any)
	if !ok {
		return dynamic.Failure[any](fmt.Errorf("nativedyn: %T is not a map", m), nil)
	}
	v, ok := mm[key]
	if !ok {
		return dynamic.Failure[any](fmt.Errorf("nativedyn: key %q not found", key), nil)
	}
	return dynamic.Success(v)
}

func (o Ops) Set(key string, value any, m any) any {
	out := cloneMap(m)
	out[key] = value
	return out
}

func (o Ops) Remove(key string, m any) any {
	out := cloneMap(m)
	delete(out, key)
	return out
}

func (o Ops) MergeMap(m1, m2 any) any {
	out := cloneMap(m1)
	if mm2, ok := m2.(map[string]any); ok {
		for k, v := range mm2 {
			out[k] = v
		}
	}
	return out
}

func (o Ops) Update(key string, f func(any) any, m any) any {
	out := cloneMap(m)
	out[key] = f(out[key])
	return out
}

func cloneMap(m any) map[string]any {
	mm, ok := m.(map[string]any)
	out := make(map[string]any, len(mm))
	if !ok {
		return out
	}
	for k, v := range mm {
		out[k] = v
	}
	return out
}

// FromJSON decodes JSON text into a Dynamic[any] tree.
func FromJSON(data []byte) (dynamic.Dynamic[any], error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return dynamic.Dynamic[any]{}, fmt.Errorf("nativedyn: decode json: %w", err)
	}
	return dynamic.New[any](Ops{}, normalize(v)), nil
}

// ToJSON encodes a Dynamic[any] tree as JSON text.
func ToJSON(d dynamic.Dynamic[any]) ([]byte, error) {
	b, err := json.Marshal(d.Value)
	if err != nil {
		return nil, fmt.Errorf("nativedyn: encode json: %w", err)
	}
	return b, nil
}

// normalize converts encoding/json's generic decode output
// ([]interface{}/map[string]interface{}/float64/...) into the shapes
// Ops recognizes (float64 stays float64: JSON has no distinct integer
// widths, so a caller narrowing via Dynamic.AsInt gets the usual
// range-checked behavior).
func normalize(v any) any {
	switch vv := v.(type) {
	case map[string]interface{}:
		m := make(map[string]any, len(vv))
		for k, e := range vv {
			m[k] = normalize(e)
		}
		return m
	case []interface{}:
		l := make([]any, len(vv))
		for i, e := range vv {
			l[i] = normalize(e)
		}
		return l
	default:
		return vv
	}
}
