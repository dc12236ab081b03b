// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package rewrite implements the TypeRewriteRule algebra: a closed set
// of rule shapes, each gated by a selector over codec.TypeReference,
// composing by sequencing and choice.
package rewrite

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/dynamic"
)

// Rule is the closed sum type every rewrite rule belongs to, mirrored
// on sql/schema/migrate.go's Change interface: an unexported tag
// method seals the set to this package's own variants.
type Rule[T any] interface {
	rule()
}

// Nop is the identity rule: its selector is total, its transformation
// is the identity.
type Nop[T any] struct{}

func (Nop[T]) rule() {}

// Transform applies f to Dynamic values of the declared type; all
// other types pass through unchanged.
type Transform[T any] struct {
	Type codec.TypeReference
	F    func(dynamic.Dynamic[T]) dynamic.Dynamic[T]
}

func (Transform[T]) rule() {}

// Selector generalizes Transform's selector from a single
// TypeReference to an arbitrary predicate, so a GlobSelector pattern
// can gate a transformation across a whole family of TypeReferences
// that share a naming convention.
type Selector[T any] struct {
	Sel func(codec.TypeReference) bool
	F   func(dynamic.Dynamic[T]) dynamic.Dynamic[T]
}

func (Selector[T]) rule() {}

// RenameField rebinds a map field from one name to another, on
// Dynamics of the declared type. Absent oldName is a no-op; a
// pre-existing newName is overwritten.
type RenameField[T any] struct {
	Type        codec.TypeReference
	From, To string
}

func (RenameField[T]) rule() {}

// RemoveField deletes a map field, on Dynamics of the declared type.
// Absent name is a no-op.
type RemoveField[T any] struct {
	Type codec.TypeReference
	Name string
}

func (RemoveField[T]) rule() {}

// Seq applies its rules left to right against the same Dynamic,
// threading each rule's output into the next.
type Seq[T any] struct {
	Rules []Rule[T]
}

func (Seq[T]) rule() {}

// Or applies the first rule whose selector accepts the query type; if
// none match, the input passes through unchanged.
type Or[T any] struct {
	Rules []Rule[T]
}

func (Or[T]) rule() {}

// NewSeq builds a Seq, flattening the identity law seq(nop, r) =
// seq(r, nop) = r by dropping every Nop from the supplied rules
// rather than special-casing them at apply time.
func NewSeq[T any](rules ...Rule[T]) Rule[T] {
	filtered := make([]Rule[T], 0, len(rules))
	for _, r := range rules {
		if _, ok := r.(Nop[T]); ok {
			continue
		}
		filtered = append(filtered, r)
	}
	switch len(filtered) {
	case 0:
		return Nop[T]{}
	case 1:
		return filtered[0]
	default:
		return Seq[T]{Rules: filtered}
	}
}

// NewOr builds an Or. or(r, nop) = r whenever r's selector is total
// (Nop itself, or another Or/Seq composed entirely of total rules).
// Selects reports that, so Or's own apply logic need not special-case
// it; NewOr only collapses the trivial single-rule case.
func NewOr[T any](rules ...Rule[T]) Rule[T] {
	if len(rules) == 1 {
		return rules[0]
	}
	return Or[T]{Rules: rules}
}
