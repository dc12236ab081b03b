// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package fixer

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/dynamic"
)

// TaggedDynamic pairs a Dynamic with the TypeReference it is an
// instance of, so a caller can round-trip update calls without
// threading the type alongside the value itself.
type TaggedDynamic[T any] struct {
	Type  codec.TypeReference
	Value dynamic.Dynamic[T]
}
