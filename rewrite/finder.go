// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package rewrite

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/optics"
	"github.com/fixerlab/datafixer/registry"
)

// Finder locates every occurrence of ref's type inside a structural
// descriptor S and returns a Traversal focused on those subtrees.
// Finders drive type-directed rewrites. Finder lives in rewrite rather
// than optics so optics stays free of registry/codec dependencies.
type Finder[S, T any] interface {
	Find(s *registry.Schema[T], ref codec.TypeReference) optics.Traversal[S, dynamic.Dynamic[T]]
}

// FinderFunc adapts a plain function to Finder.
type FinderFunc[S, T any] func(*registry.Schema[T], codec.TypeReference) optics.Traversal[S, dynamic.Dynamic[T]]

func (f FinderFunc[S, T]) Find(s *registry.Schema[T], ref codec.TypeReference) optics.Traversal[S, dynamic.Dynamic[T]] {
	return f(s, ref)
}

// RewriteOccurrences uses a Finder's traversal to apply r to every
// occurrence of ref's type inside s, threading Apply through the
// traversal's Modify.
func RewriteOccurrences[S, T any](finder Finder[S, T], schema *registry.Schema[T], ref codec.TypeReference, r Rule[T], s S) S {
	tr := finder.Find(schema, ref)
	return tr.Modify(s, func(d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		return Apply(r, ref, d)
	})
}
