// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package registry implements the indexed storage layer: DataVersion,
// TypeRegistry, Schema, and SchemaRegistry, each with the two-phase
// mutable→frozen lifecycle.
package registry

import "strconv"

// DataVersion is a monotonically comparable version identifier. Total
// order, value equality.
type DataVersion int64

// Less reports whether v sorts before other.
func (v DataVersion) Less(other DataVersion) bool { return v < other }

// Compare returns -1, 0, or 1 per the usual comparator convention.
func (v DataVersion) Compare(other DataVersion) int {
	switch {
	case v < other:
		return -1
	case v > other:
		return 1
	default:
		return 0
	}
}

func (v DataVersion) String() string {
	return strconv.FormatInt(int64(v), 10)
}
