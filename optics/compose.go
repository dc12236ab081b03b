// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package optics

// Widening: an Iso widens to a Lens or a Prism, a Lens or Prism widens
// to an Affine, any of Lens/Prism/Affine widens to a Traversal (0-or-1
// foci), and a Lens widens to a read-only Getter, each by dropping the
// capability the wider shape doesn't need. A Prism or Affine has no
// Getter widening, since a Getter's focus is always present.

// LensToAffine widens a total Lens to a partial Affine.
func LensToAffine[S, A any](l Lens[S, A]) Affine[S, A] {
	return Affine[S, A]{
		GetOption: func(s S) (A, bool) { return l.Get(s), true },
		Set:       l.Set,
	}
}

// PrismToAffine widens a Prism to an Affine.
func PrismToAffine[S, A any](p Prism[S, A]) Affine[S, A] {
	return Affine[S, A]{
		GetOption: p.GetOption,
		Set: func(s S, a A) S {
			return p.ReverseGet(a)
		},
	}
}

// LensToTraversal widens a Lens to a single-focus Traversal.
func LensToTraversal[S, A any](l Lens[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		Modify: func(s S, f func(A) A) S { return l.Set(s, f(l.Get(s))) },
	}
}

// PrismToTraversal widens a Prism to a zero-or-one-focus Traversal.
func PrismToTraversal[S, A any](p Prism[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		Modify: func(s S, f func(A) A) S {
			a, ok := p.GetOption(s)
			if !ok {
				return s
			}
			return p.ReverseGet(f(a))
		},
	}
}

// AffineToTraversal widens an Affine to a zero-or-one-focus Traversal.
func AffineToTraversal[S, A any](af Affine[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		Modify: func(s S, f func(A) A) S {
			a, ok := af.GetOption(s)
			if !ok {
				return s
			}
			return af.Set(s, f(a))
		},
	}
}

// LensToGetter drops a Lens's Set half.
func LensToGetter[S, A any](l Lens[S, A]) Getter[S, A] {
	return Getter[S, A]{Get: l.Get}
}

// IsoToLens widens an Iso to a Lens (Set discards the old S entirely).
func IsoToLens[S, A any](i Iso[S, A]) Lens[S, A] {
	return Lens[S, A]{
		Get: i.Get,
		Set: func(_ S, a A) S { return i.ReverseGet(a) },
	}
}

// IsoToPrism widens an Iso to a total Prism.
func IsoToPrism[S, A any](i Iso[S, A]) Prism[S, A] {
	return Prism[S, A]{
		GetOption:  func(s S) (A, bool) { return i.Get(s), true },
		ReverseGet: i.ReverseGet,
	}
}

// ComposeLensLens: Lens∘Lens = Lens.
func ComposeLensLens[S, A, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B { return inner.Get(outer.Get(s)) },
		Set: func(s S, b B) S {
			a := outer.Get(s)
			return outer.Set(s, inner.Set(a, b))
		},
	}
}

// ComposePrismPrism: Prism∘Prism = Prism.
func ComposePrismPrism[S, A, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				return *new(B), false
			}
			return inner.GetOption(a)
		},
		ReverseGet: func(b B) S { return outer.ReverseGet(inner.ReverseGet(b)) },
	}
}

// ComposeLensPrism: Lens∘Prism = Affine.
func ComposeLensPrism[S, A, B any](outer Lens[S, A], inner Prism[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) { return inner.GetOption(outer.Get(s)) },
		Set: func(s S, b B) S {
			return outer.Set(s, inner.ReverseGet(b))
		},
	}
}

// ComposePrismLens: Prism∘Lens = Affine.
func ComposePrismLens[S, A, B any](outer Prism[S, A], inner Lens[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				return *new(B), false
			}
			return inner.Get(a), true
		},
		Set: func(s S, b B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.ReverseGet(inner.Set(a, b))
		},
	}
}

// ComposeAffineAffine: Affine∘Affine = Affine.
func ComposeAffineAffine[S, A, B any](outer Affine[S, A], inner Affine[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				return *new(B), false
			}
			return inner.GetOption(a)
		},
		Set: func(s S, b B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.Set(s, inner.Set(a, b))
		},
	}
}

// ComposeLensAffine: Lens∘Affine = Affine.
func ComposeLensAffine[S, A, B any](outer Lens[S, A], inner Affine[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) { return inner.GetOption(outer.Get(s)) },
		Set: func(s S, b B) S {
			a := outer.Get(s)
			return outer.Set(s, inner.Set(a, b))
		},
	}
}

// ComposeAffineLens: Affine∘Lens = Affine.
func ComposeAffineLens[S, A, B any](outer Affine[S, A], inner Lens[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				return *new(B), false
			}
			return inner.Get(a), true
		},
		Set: func(s S, b B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.Set(s, inner.Set(a, b))
		},
	}
}

// ComposeTraversalTraversal: Traversal∘Traversal = Traversal.
func ComposeTraversalTraversal[S, A, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		Modify: func(s S, f func(B) B) S {
			return outer.Modify(s, func(a A) A { return inner.Modify(a, f) })
		},
	}
}

// ComposeTraversalLens: Traversal∘Lens = Traversal.
func ComposeTraversalLens[S, A, B any](outer Traversal[S, A], inner Lens[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(outer, LensToTraversal(inner))
}

// ComposeTraversalPrism: Traversal∘Prism = Traversal.
func ComposeTraversalPrism[S, A, B any](outer Traversal[S, A], inner Prism[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(outer, PrismToTraversal(inner))
}

// ComposeTraversalAffine: Traversal∘Affine = Traversal.
func ComposeTraversalAffine[S, A, B any](outer Traversal[S, A], inner Affine[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(outer, AffineToTraversal(inner))
}

// ComposeLensTraversal: Lens∘Traversal = Traversal.
func ComposeLensTraversal[S, A, B any](outer Lens[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(LensToTraversal(outer), inner)
}

// ComposePrismTraversal: Prism∘Traversal = Traversal.
func ComposePrismTraversal[S, A, B any](outer Prism[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(PrismToTraversal(outer), inner)
}

// ComposeAffineTraversal: Affine∘Traversal = Traversal.
func ComposeAffineTraversal[S, A, B any](outer Affine[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return ComposeTraversalTraversal(AffineToTraversal(outer), inner)
}

// ComposeGetterGetter: Getter∘Getter = Getter.
func ComposeGetterGetter[S, A, B any](outer Getter[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{Get: func(s S) B { return inner.Get(outer.Get(s)) }}
}

// ComposeLensGetter: Lens∘Getter = Getter.
func ComposeLensGetter[S, A, B any](outer Lens[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{Get: func(s S) B { return inner.Get(outer.Get(s)) }}
}

// ComposeIsoIso: Iso∘Iso = Iso.
func ComposeIsoIso[S, A, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		Get:        func(s S) B { return inner.Get(outer.Get(s)) },
		ReverseGet: func(b B) S { return outer.ReverseGet(inner.ReverseGet(b)) },
	}
}
