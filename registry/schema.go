// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package registry

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/internal/errs"
)

// Schema is a (DataVersion, TypeRegistry, optional parent) triple. A
// schema's own registry is checked first; on miss, lookup walks the
// parent chain.
type Schema[T any] struct {
	version  DataVersion
	registry *TypeRegistry[T]
	parent   *Schema[T]
}

// NewSchema builds a Schema at version v backed by reg, optionally
// inheriting from parent.
func NewSchema[T any](v DataVersion, reg *TypeRegistry[T], parent *Schema[T]) *Schema[T] {
	return &Schema[T]{version: v, registry: reg, parent: parent}
}

// Version returns the schema's own DataVersion.
func (s *Schema[T]) Version() DataVersion { return s.version }

// Parent returns the schema's parent, or nil at the root.
func (s *Schema[T]) Parent() *Schema[T] { return s.parent }

// Registry returns the schema's own (not-inherited) TypeRegistry.
func (s *Schema[T]) Registry() *TypeRegistry[T] { return s.registry }

// SetParent rebinds s's parent. Exposed so schema declarations that
// resolve parent-by-version (e.g. a forward reference read before its
// target schema is constructed) can wire the link up after the fact,
// during SchemaRegistry's mutable bootstrap phase only.
func (s *Schema[T]) SetParent(parent *Schema[T]) { s.parent = parent }

// freeze freezes this schema's own registry. Called by SchemaRegistry
// when the enclosing registry is frozen; parents are frozen before
// children since schemas are registered in version order.
func (s *Schema[T]) freeze() { s.registry.Freeze() }

// SchemaLookup resolves ref against s's own registry, falling back to
// s's parent chain on miss.
func SchemaLookup[T, A any](s *Schema[T], ref codec.TypeReference) (codec.Type[A, T], bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := Lookup[T, A](cur.registry, ref); ok {
			return t, true
		}
	}
	return codec.Type[A, T]{}, false
}

// SchemaRequire is SchemaLookup's fail-fast counterpart.
func SchemaRequire[T, A any](s *Schema[T], ref codec.TypeReference) (codec.Type[A, T], error) {
	t, ok := SchemaLookup[T, A](s, ref)
	if !ok {
		return codec.Type[A, T]{}, errs.Lookup("registry: SchemaRequire", "type %q not found in schema %s or its ancestors", ref.String(), s.version)
	}
	return t, nil
}
