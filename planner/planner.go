// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package planner implements the per-domain fix-path planner: given a
// TypeReference domain and a (from, to) version pair, produce the
// ordered list of fixes that carries a Dynamic across that span.
//
// The fix graph has a node per DataVersion and a unit-weight edge per
// registered fix from its FromVersion to its ToVersion; the shortest
// path is found with a textbook Dijkstra (container/heap priority
// queue), the one place this engine reaches for the standard library
// proper instead of a third-party graph/priority-queue package (see
// DESIGN.md).
package planner

import (
	"container/heap"
	"sort"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/internal/errs"
	"github.com/fixerlab/datafixer/registry"
)

// edge is one fix considered as a graph edge, carrying enough to
// break ties deterministically: registration order within its own
// (fromVersion, toVersion) pair.
type edge[T any] struct {
	fix   datafix.Fix[T]
	meta  datafix.Meta
	order int
}

// Plan resolves the fix sequence carrying domain ref from "from" to
// "to", using fixes drawn from reg. Fixes whose fromVersion is below
// "from" are not considered; if the remaining fixes leave a coverage
// gap, Plan fails with a PlanningError.
func Plan[T any](reg *datafix.FixRegistry[T], ref codec.TypeReference, from, to registry.DataVersion) ([]datafix.Fix[T], error) {
	if from == to {
		return nil, nil
	}

	edges := buildEdges(reg, ref, from)

	adj := make(map[registry.DataVersion][]edge[T])
	for _, e := range edges {
		adj[e.meta.FromVersion] = append(adj[e.meta.FromVersion], e)
	}
	for v := range adj {
		es := adj[v]
		sort.SliceStable(es, func(i, j int) bool {
			if es[i].meta.ToVersion != es[j].meta.ToVersion {
				return es[i].meta.ToVersion < es[j].meta.ToVersion
			}
			return es[i].order < es[j].order
		})
		adj[v] = es
	}

	path, ok := dijkstra(adj, from, to)
	if !ok {
		return nil, errs.Planning("planner: Plan", "no fix path from %s to %s for type %q", from, to, ref)
	}
	return path, nil
}

func buildEdges[T any](reg *datafix.FixRegistry[T], ref codec.TypeReference, from registry.DataVersion) []edge[T] {
	fixes := reg.FixesFor(ref)
	edges := make([]edge[T], 0, len(fixes))
	for i, f := range fixes {
		m := datafix.MetaOf(f)
		if m.FromVersion < from {
			continue
		}
		edges = append(edges, edge[T]{fix: f, meta: m, order: i})
	}
	return edges
}

// item is a Dijkstra frontier entry: a node (version) and its
// tentative distance. The "lowest hop at earliest divergence" tie
// break falls out of processing edges in the sorted adjacency order
// built in Plan: the first relaxation to reach a node at a given
// distance wins, and later equal-distance relaxations are ignored.
type item[T any] struct {
	version registry.DataVersion
	dist    int
}

type frontier[T any] []item[T]

func (f frontier[T]) Len() int { return len(f) }
func (f frontier[T]) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}
	return f[i].version < f[j].version
}
func (f frontier[T]) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier[T]) Push(x any)        { *f = append(*f, x.(item[T])) }
func (f *frontier[T]) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}

func dijkstra[T any](adj map[registry.DataVersion][]edge[T], from, to registry.DataVersion) ([]datafix.Fix[T], bool) {
	dist := map[registry.DataVersion]int{from: 0}
	cameFrom := map[registry.DataVersion]edge[T]{}
	cameFromNode := map[registry.DataVersion]registry.DataVersion{}
	visited := map[registry.DataVersion]bool{}

	pq := &frontier[T]{{version: from, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(item[T])
		if visited[cur.version] {
			continue
		}
		visited[cur.version] = true
		if cur.version == to {
			break
		}
		for _, e := range adj[cur.version] {
			nd := cur.dist + 1
			if d, ok := dist[e.meta.ToVersion]; !ok || nd < d {
				dist[e.meta.ToVersion] = nd
				cameFrom[e.meta.ToVersion] = e
				cameFromNode[e.meta.ToVersion] = cur.version
				heap.Push(pq, item[T]{version: e.meta.ToVersion, dist: nd})
			}
		}
	}

	if !visited[to] {
		return nil, false
	}

	var rev []datafix.Fix[T]
	for v := to; v != from; {
		e, ok := cameFrom[v]
		if !ok {
			return nil, false
		}
		rev = append(rev, e.fix)
		v = cameFromNode[v]
	}
	out := make([]datafix.Fix[T], len(rev))
	for i, f := range rev {
		out[len(rev)-1-i] = f
	}
	return out, true
}
