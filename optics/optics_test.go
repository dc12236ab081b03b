// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package optics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fixerlab/datafixer/optics"
)

type point struct{ X, Y int }

func xLens() optics.Lens[point, int] {
	return optics.Lens[point, int]{
		Get: func(p point) int { return p.X },
		Set: func(p point, x int) point { p.X = x; return p },
	}
}

func TestLens_Laws(t *testing.T) {
	l := xLens()
	p := point{X: 1, Y: 2}

	// get-set
	require.Equal(t, p, l.Set(p, l.Get(p)))
	// set-get
	require.Equal(t, 5, l.Get(l.Set(p, 5)))
	// set-set (idempotent in the new value)
	require.Equal(t, l.Set(p, 5), l.Set(l.Set(p, 3), 5))
}

func nonNegPrism() optics.Prism[int, int] {
	return optics.Prism[int, int]{
		GetOption:  func(i int) (int, bool) { return i, i >= 0 },
		ReverseGet: func(i int) int { return i },
	}
}

func TestPrism_PartialInverse(t *testing.T) {
	p := nonNegPrism()
	v, ok := p.GetOption(5)
	require.True(t, ok)
	require.Equal(t, 5, p.ReverseGet(v))

	_, ok = p.GetOption(-1)
	require.False(t, ok)
}

func yLens() optics.Lens[point, int] {
	return optics.Lens[point, int]{
		Get: func(p point) int { return p.Y },
		Set: func(p point, y int) point { p.Y = y; return p },
	}
}

type wrapper struct{ P point }

func wrapperLens() optics.Lens[wrapper, point] {
	return optics.Lens[wrapper, point]{
		Get: func(w wrapper) point { return w.P },
		Set: func(w wrapper, p point) wrapper { w.P = p; return w },
	}
}

func TestComposeLensLens(t *testing.T) {
	composed := optics.ComposeLensLens(wrapperLens(), yLens())
	w := wrapper{P: point{X: 1, Y: 2}}
	require.Equal(t, 2, composed.Get(w))
	w2 := composed.Set(w, 9)
	require.Equal(t, 9, w2.P.Y)
	require.Equal(t, 1, w2.P.X)
}

func TestTraversal_ListOrder(t *testing.T) {
	tr := optics.Traversal[[]int, int]{
		Modify: func(s []int, f func(int) int) []int {
			out := make([]int, len(s))
			for i, v := range s {
				out[i] = f(v)
			}
			return out
		},
	}
	out := tr.Modify([]int{1, 2, 3}, func(i int) int { return i * 10 })
	require.Equal(t, []int{10, 20, 30}, out)
}

func TestLensToAffineWidening(t *testing.T) {
	af := optics.LensToAffine(xLens())
	p := point{X: 1, Y: 2}
	v, ok := af.GetOption(p)
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 7, af.Set(p, 7).X)
}
