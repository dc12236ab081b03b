// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package registry

import (
	"sync/atomic"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/internal/errs"
)

// TypeRegistry maps codec.TypeReference to a named codec.Type, with a
// one-way mutable→frozen lifecycle: Register fails once Freeze has
// been called. The zero value is a ready-to-use, mutable, empty
// registry.
//
// Go generics can't express "a map of Type[A,T] for varying A" with a
// single type parameter, so entries are stored type-erased and
// recovered with the free function Lookup, mirroring how specutil's
// TypeRegistry stores *schemaspec.TypeSpec by name and lets callers
// assert the shape they expect back out.
type TypeRegistry[T any] struct {
	frozen atomic.Bool
	names  []string
	byName map[string]any
}

func newTypeRegistry[T any]() *TypeRegistry[T] {
	return &TypeRegistry[T]{byName: make(map[string]any)}
}

// NewTypeRegistry builds an empty, mutable TypeRegistry.
func NewTypeRegistry[T any]() *TypeRegistry[T] {
	return newTypeRegistry[T]()
}

// Register binds ref to t. Last-writer-wins while mutable; fails with
// a Frozen error once the registry is frozen.
func Register[T, A any](r *TypeRegistry[T], t codec.Type[A, T]) error {
	if r.frozen.Load() {
		return errs.Frozen("registry: Register", "registry is frozen")
	}
	if r.byName == nil {
		r.byName = make(map[string]any)
	}
	name := t.Ref.String()
	if _, exists := r.byName[name]; !exists {
		r.names = append(r.names, name)
	}
	r.byName[name] = t
	return nil
}

// Freeze transitions r to the frozen phase. Idempotent.
func (r *TypeRegistry[T]) Freeze() {
	r.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (r *TypeRegistry[T]) Frozen() bool {
	return r.frozen.Load()
}

// has reports whether ref is bound directly in r (not following any
// parent chain; that's Schema's job).
func (r *TypeRegistry[T]) has(ref codec.TypeReference) bool {
	_, ok := r.byName[ref.String()]
	return ok
}

// Lookup returns the codec.Type bound to ref, type-asserted to A. The
// second result is false if ref is unbound or bound to a different A.
func Lookup[T, A any](r *TypeRegistry[T], ref codec.TypeReference) (codec.Type[A, T], bool) {
	raw, ok := r.byName[ref.String()]
	if !ok {
		return codec.Type[A, T]{}, false
	}
	t, ok := raw.(codec.Type[A, T])
	return t, ok
}

// Require is Lookup's fail-fast counterpart.
func Require[T, A any](r *TypeRegistry[T], ref codec.TypeReference) (codec.Type[A, T], error) {
	t, ok := Lookup[T, A](r, ref)
	if !ok {
		return codec.Type[A, T]{}, errs.Lookup("registry: Require", "type %q not found in registry", ref.String())
	}
	return t, nil
}

// Names returns the bound TypeReferences in registration order.
func (r *TypeRegistry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
