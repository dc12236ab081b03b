// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package codec

// Type pairs a TypeReference with the Codec that knows how to move
// values of that logical type into and out of a tree of host type T.
// A registry.TypeRegistry binds these pairs per schema version so a
// rewrite rule can look up "the player codec, as of this version" by
// name alone.
type Type[A, T any] struct {
	Ref   TypeReference
	Codec Codec[A, T]
}

// NewType names a Codec under a TypeReference.
func NewType[A, T any](ref TypeReference, c Codec[A, T]) Type[A, T] {
	return Type[A, T]{Ref: ref, Codec: c}
}
