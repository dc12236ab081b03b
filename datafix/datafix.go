// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package datafix implements the DataFix/SchemaDataFix units and the
// DataFixRegistry that indexes them by target type.
package datafix

import (
	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/dynamic"
	"github.com/fixerlab/datafixer/registry"
	"github.com/fixerlab/datafixer/rewrite"
)

// Context is the sink a fix's Fn uses for info/warn events.
// Concrete implementations live in the packages that import datafix:
// default logging and no-op in fixer, diagnostic-recording in
// diagnostic. Context is declared here, rather than there, precisely
// so datafix itself never needs to import either.
type Context interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
}

// Meta is the metadata every Fix carries regardless of kind: the
// planner and the fixer runtime only ever need this, never the
// concrete variant.
type Meta struct {
	Name                   string
	FromVersion, ToVersion registry.DataVersion
	TargetType             codec.TypeReference
}

// Fix is the closed sum type of fix units: DataFix (an opaque
// transformation function) and SchemaDataFix (a rule materialized
// from a pair of Schemas). Sealed the same way rewrite.Rule is, with
// an unexported tag method.
type Fix[T any] interface {
	fix()
}

// DataFix is an opaque (TypeReference, Dynamic, Context) -> Dynamic
// transformation over its TargetType's subtree.
type DataFix[T any] struct {
	Name                   string
	FromVersion, ToVersion registry.DataVersion
	TargetType             codec.TypeReference
	Fn                     func(codec.TypeReference, dynamic.Dynamic[T], Context) dynamic.Dynamic[T]
}

func (DataFix[T]) fix() {}

// SchemaDataFix derives its transformation from a TypeRewriteRule
// built by MakeRule out of a pair of Schemas, rather than from a
// hand-written function: the common case of "this field moved/was
// renamed/was dropped between these two schema versions".
type SchemaDataFix[T any] struct {
	Name                   string
	FromVersion, ToVersion registry.DataVersion
	TargetType             codec.TypeReference
	Input, Output          *registry.Schema[T]
	MakeRule               func(input, output *registry.Schema[T]) rewrite.Rule[T]
}

func (SchemaDataFix[T]) fix() {}

// MetaOf extracts the common metadata from either Fix variant.
func MetaOf[T any](f Fix[T]) Meta {
	switch v := f.(type) {
	case DataFix[T]:
		return Meta{Name: v.Name, FromVersion: v.FromVersion, ToVersion: v.ToVersion, TargetType: v.TargetType}
	case SchemaDataFix[T]:
		return Meta{Name: v.Name, FromVersion: v.FromVersion, ToVersion: v.ToVersion, TargetType: v.TargetType}
	default:
		return Meta{}
	}
}

// Apply runs f against d for the current type ref. DataFix invokes
// its Fn directly; SchemaDataFix first materializes its rule from
// Input/Output and applies that rule via rewrite.Apply.
func Apply[T any](f Fix[T], ref codec.TypeReference, d dynamic.Dynamic[T], ctx Context) dynamic.Dynamic[T] {
	switch v := f.(type) {
	case DataFix[T]:
		return v.Fn(ref, d, ctx)
	case SchemaDataFix[T]:
		rule := v.MakeRule(v.Input, v.Output)
		return rewrite.Apply(rule, ref, d)
	default:
		return d
	}
}
