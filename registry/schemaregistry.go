// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package registry

import (
	"sort"
	"sync/atomic"

	"github.com/fixerlab/datafixer/internal/errs"
)

// mark is a DFS visitation state, used for cycle detection over the
// schema parent chain before freeze.
type mark int

const (
	unvisited mark = iota
	inProgress
	done
)

// SchemaRegistry is an ordered DataVersion → Schema mapping supporting
// floor lookup, with the same two-phase mutable→frozen lifecycle as
// TypeRegistry.
type SchemaRegistry[T any] struct {
	frozen   atomic.Bool
	versions []DataVersion
	byVer    map[DataVersion]*Schema[T]
}

// NewSchemaRegistry builds an empty, mutable SchemaRegistry.
func NewSchemaRegistry[T any]() *SchemaRegistry[T] {
	return &SchemaRegistry[T]{byVer: make(map[DataVersion]*Schema[T])}
}

// Register binds v to s. Fails if v doesn't match s's own version, or
// if the registry is already frozen.
func (r *SchemaRegistry[T]) Register(v DataVersion, s *Schema[T]) error {
	if r.frozen.Load() {
		return errs.Frozen("registry: Register", "schema registry is frozen")
	}
	if s.Version() != v {
		return errs.Planning("registry: Register", "schema's internal version %s does not match registration version %s", s.Version(), v)
	}
	if _, exists := r.byVer[v]; !exists {
		r.versions = append(r.versions, v)
	}
	r.byVer[v] = s
	return nil
}

// Get returns the floor schema for q: the schema with the greatest
// registered version ≤ q, or false if none exists.
func (r *SchemaRegistry[T]) Get(q DataVersion) (*Schema[T], bool) {
	sorted := r.sortedVersions()
	var best *DataVersion
	for i := range sorted {
		if sorted[i] <= q {
			best = &sorted[i]
		} else {
			break
		}
	}
	if best == nil {
		return nil, false
	}
	return r.byVer[*best], true
}

// Require is Get's fail-fast counterpart.
func (r *SchemaRegistry[T]) Require(q DataVersion) (*Schema[T], error) {
	s, ok := r.Get(q)
	if !ok {
		return nil, errs.Planning("registry: Require", "no schema registered at or below version %s", q)
	}
	return s, nil
}

// Latest returns the schema with the greatest registered version.
func (r *SchemaRegistry[T]) Latest() (*Schema[T], bool) {
	sorted := r.sortedVersions()
	if len(sorted) == 0 {
		return nil, false
	}
	return r.byVer[sorted[len(sorted)-1]], true
}

func (r *SchemaRegistry[T]) sortedVersions() []DataVersion {
	out := make([]DataVersion, len(r.versions))
	copy(out, r.versions)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Versions returns the registered versions in ascending order.
func (r *SchemaRegistry[T]) Versions() []DataVersion {
	return r.sortedVersions()
}

// Freeze detects cycles in the parent chain via DFS-with-marks, then
// (only if acyclic) freezes every registered schema's own TypeRegistry
// and the SchemaRegistry itself. Idempotent once it has succeeded.
func (r *SchemaRegistry[T]) Freeze() error {
	if r.frozen.Load() {
		return nil
	}
	visited := make(map[*Schema[T]]mark)
	for _, v := range r.versions {
		s := r.byVer[v]
		if err := detectCycle(s, visited); err != nil {
			return err
		}
	}
	for _, v := range r.versions {
		r.byVer[v].freeze()
	}
	r.frozen.Store(true)
	return nil
}

func detectCycle[T any](s *Schema[T], visited map[*Schema[T]]mark) error {
	if s == nil {
		return nil
	}
	switch visited[s] {
	case done:
		return nil
	case inProgress:
		return errs.Planning("registry: Freeze", "cyclic schema parent reference detected at version %s", s.Version())
	}
	visited[s] = inProgress
	if err := detectCycle(s.Parent(), visited); err != nil {
		return err
	}
	visited[s] = done
	return nil
}

// Frozen reports whether Freeze has completed successfully.
func (r *SchemaRegistry[T]) Frozen() bool {
	return r.frozen.Load()
}
