// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package fixer implements the DataFixer runtime: the
// frozen-registry-backed engine that walks a planner path and applies
// each fix in order against a caller's Dynamic value.
package fixer

import (
	"fmt"
	"time"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/internal/errs"
	"github.com/fixerlab/datafixer/planner"
	"github.com/fixerlab/datafixer/registry"
)

// DataFixer is the frozen, concurrency-safe engine exposed once the
// bootstrap sequence completes: registerSchemas, freeze, registerFixes,
// freeze, only then construct a DataFixer.
type DataFixer[T any] struct {
	schemas    *registry.SchemaRegistry[T]
	fixes      *datafix.FixRegistry[T]
	newContext func() datafix.Context
}

// Option configures a DataFixer being constructed.
type Option[T any] func(*DataFixer[T]) error

// WithContext sets the factory used to start a fresh datafix.Context
// for every Update call. Defaults to NewNoopContext.
func WithContext[T any](factory func() datafix.Context) Option[T] {
	return func(f *DataFixer[T]) error {
		f.newContext = factory
		return nil
	}
}

// New builds a DataFixer from frozen schema and fix registries.
// Constructing one against a registry that has not yet been frozen is
// a bootstrap-contract violation and fails fast.
func New[T any](schemas *registry.SchemaRegistry[T], fixes *datafix.FixRegistry[T], opts ...Option[T]) (*DataFixer[T], error) {
	if schemas == nil {
		return nil, errs.Planning("fixer: New", "no schema registry given")
	}
	if fixes == nil {
		return nil, errs.Planning("fixer: New", "no fix registry given")
	}
	if !schemas.Frozen() {
		return nil, errs.Planning("fixer: New", "schema registry must be frozen before constructing a DataFixer")
	}
	if !fixes.Frozen() {
		return nil, errs.Planning("fixer: New", "fix registry must be frozen before constructing a DataFixer")
	}
	f := &DataFixer[T]{schemas: schemas, fixes: fixes}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if f.newContext == nil {
		f.newContext = NewNoopContext
	}
	return f, nil
}

// Update carries d, an instance of ref, from version "from" to
// version "to": plan the fix path, then apply each fix in order.
func (f *DataFixer[T]) Update(ref codec.TypeReference, d dynamic.Dynamic[T], from, to registry.DataVersion) (dynamic.Dynamic[T], error) {
	if from == to {
		return d, nil
	}
	if from.Compare(to) > 0 {
		return d, errs.Planning("fixer: Update", "downgrade unsupported: cannot update %q from %s to %s", ref, from, to)
	}
	path, err := planner.Plan(f.fixes, ref, from, to)
	if err != nil {
		return d, err
	}
	ctx := f.newContext()
	obs, _ := ctx.(Observer[T])
	current := d
	for _, fx := range path {
		m := datafix.MetaOf(fx)
		next, err := applyOne(fx, ref, current, ctx, obs)
		if err != nil {
			return d, errs.FixExecution("fixer: Update", err, "fix %q (%s -> %s) on %q failed", m.Name, m.FromVersion, m.ToVersion, ref.String())
		}
		current = next
		ctx.Info("applied fix %q (%s -> %s) to %q", m.Name, m.FromVersion, m.ToVersion, ref.String())
	}
	return current, nil
}

// applyOne runs a single fix, recovering any panic raised by user fix
// code or by a diagnostic Context's FailOnWarn escalation into a plain
// error so the caller sees a single FixExecutionError regardless of
// cause.
func applyOne[T any](fx datafix.Fix[T], ref codec.TypeReference, current dynamic.Dynamic[T], ctx datafix.Context, obs Observer[T]) (out dynamic.Dynamic[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", r)
			}
		}
	}()
	start := time.Now()
	if obs != nil {
		obs.BeginFix(fx, current)
	}
	out = datafix.Apply(fx, ref, current, ctx)
	if obs != nil {
		obs.EndFix(fx, out, time.Since(start))
	}
	return out, nil
}

// UpdateTagged is Update's TaggedDynamic-carrying counterpart.
func (f *DataFixer[T]) UpdateTagged(tagged TaggedDynamic[T], from, to registry.DataVersion) (TaggedDynamic[T], error) {
	v, err := f.Update(tagged.Type, tagged.Value, from, to)
	if err != nil {
		return tagged, err
	}
	return TaggedDynamic[T]{Type: tagged.Type, Value: v}, nil
}

// CurrentVersion returns the greatest registered schema version, the
// "latest known shape" a fixer can update a value toward.
func (f *DataFixer[T]) CurrentVersion() (registry.DataVersion, bool) {
	s, ok := f.schemas.Latest()
	if !ok {
		return 0, false
	}
	return s.Version(), true
}

// Schemas exposes the frozen SchemaRegistry backing this fixer.
func (f *DataFixer[T]) Schemas() *registry.SchemaRegistry[T] {
	return f.schemas
}
