// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package optics implements a profunctor optics library: Iso, Lens,
// Prism, Affine, Traversal, Getter, each a concrete generic struct
// rather than a type-class/interface hierarchy (Go has no
// higher-kinded types). Composition is an explicit table of
// functions, one per pair of shapes, returning the narrowest optic
// both sides support.
package optics

// Iso is a bijective optic: S and A are the same information in two
// shapes.
type Iso[S, A any] struct {
	Get        func(S) A
	ReverseGet func(A) S
}

// Lens is a total optic: S always has an A to focus on.
type Lens[S, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Prism is a partial optic with a total reverse direction: S may or
// may not contain an A, but any A can be embedded back into an S.
type Prism[S, A any] struct {
	GetOption  func(S) (A, bool)
	ReverseGet func(A) S
}

// Affine is a partial optic with a partial-aware set: S may or may not
// have an A, and setting requires the original S to place the new A
// back in context. A Lens or Prism widens to an Affine (see
// LensToAffine / PrismToAffine).
type Affine[S, A any] struct {
	GetOption func(S) (A, bool)
	Set       func(S, A) S
}

// Traversal focuses on zero or more A's inside an S. Visitation order
// is the traversal's own responsibility to define deterministically
// (declaration order for records, ascending index for lists).
type Traversal[S, A any] struct {
	Modify func(S, func(A) A) S
}

// Getter is a read-only, always-present focus.
type Getter[S, A any] struct {
	Get func(S) A
}

// Id returns the trivial lens s -> s, (_, b) -> b: the identity
// element for lens composition.
func Id[S any]() Lens[S, S] {
	return Lens[S, S]{
		Get: func(s S) S { return s },
		Set: func(_ S, b S) S { return b },
	}
}
