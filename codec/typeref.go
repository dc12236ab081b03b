// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package codec implements the named, encodable shapes that carry data
// between a domain type and a tree value: TypeReference, Codec[A], and
// Type[A].
package codec

// TypeReference is a stable string identifier naming a logical domain
// type (e.g. "player"). Equality is case-sensitive exact match.
type TypeReference struct {
	id string
}

// Ref constructs a TypeReference from its identifier.
func Ref(id string) TypeReference { return TypeReference{id: id} }

// String returns the identifier.
func (r TypeReference) String() string { return r.id }

// Equal reports whether two references name the same logical type.
func (r TypeReference) Equal(other TypeReference) bool { return r.id == other.id }

// IsZero reports whether r is the zero TypeReference (unset).
func (r TypeReference) IsZero() bool { return r.id == "" }
