// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package datafix

import (
	"sync/atomic"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/internal/errs"
)

// FixRegistry maps a TypeReference to its ordered list of Fixes, with
// the same mutable→frozen lifecycle as registry.TypeRegistry.
// Insertion order is preserved within a domain, which is what makes
// same-(fromVersion,toVersion) ties resolve by registration order in
// the planner.
type FixRegistry[T any] struct {
	frozen  atomic.Bool
	domains []codec.TypeReference
	byType  map[string][]Fix[T]
}

// NewFixRegistry builds an empty, mutable FixRegistry.
func NewFixRegistry[T any]() *FixRegistry[T] {
	return &FixRegistry[T]{byType: make(map[string][]Fix[T])}
}

// Register appends f under its TargetType domain. Fails if the
// registry is frozen, or if f's own (fromVersion, toVersion) pair is
// not strictly increasing.
func (r *FixRegistry[T]) Register(f Fix[T]) error {
	if r.frozen.Load() {
		return errs.Frozen("datafix: Register", "fix registry is frozen")
	}
	m := MetaOf(f)
	if m.ToVersion.Compare(m.FromVersion) <= 0 {
		return errs.Planning("datafix: Register", "fix %q: toVersion %s must be greater than fromVersion %s", m.Name, m.ToVersion, m.FromVersion)
	}
	key := m.TargetType.String()
	if _, exists := r.byType[key]; !exists {
		r.domains = append(r.domains, m.TargetType)
	}
	r.byType[key] = append(r.byType[key], f)
	return nil
}

// Freeze transitions r to the frozen phase. Idempotent.
func (r *FixRegistry[T]) Freeze() { r.frozen.Store(true) }

// Frozen reports whether Freeze has been called.
func (r *FixRegistry[T]) Frozen() bool { return r.frozen.Load() }

// FixesFor returns ref's registered fixes, in registration order. A
// copy is returned so callers can't mutate the registry's backing
// slice.
func (r *FixRegistry[T]) FixesFor(ref codec.TypeReference) []Fix[T] {
	src := r.byType[ref.String()]
	out := make([]Fix[T], len(src))
	copy(out, src)
	return out
}

// Domains returns every TargetType with at least one registered fix,
// in first-registration order.
func (r *FixRegistry[T]) Domains() []codec.TypeReference {
	out := make([]codec.TypeReference, len(r.domains))
	copy(out, r.domains)
	return out
}
