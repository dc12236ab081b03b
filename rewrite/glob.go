// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package rewrite

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/fixerlab/datafixer/codec"
)

// GlobSelector builds a selector-style matcher from a doublestar glob
// pattern over TypeReference identifiers (e.g. "entity.*" matches
// "entity.player" and "entity.npc"), mirrored on schemahcl/stdlib.go's
// glob() HCL function. An invalid pattern never matches, rather than
// panicking at rule-construction time.
func GlobSelector(pattern string) func(codec.TypeReference) bool {
	return func(ref codec.TypeReference) bool {
		ok, err := doublestar.Match(pattern, ref.String())
		return err == nil && ok
	}
}

