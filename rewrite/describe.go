// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package rewrite

// KindOf names a rule's shape, used by the diagnostic package to
// record which rewrite rule fired for a given fix without that
// package needing to type-switch on Rule itself.
func KindOf[T any](r Rule[T]) string {
	switch r.(type) {
	case Nop[T]:
		return "nop"
	case Transform[T]:
		return "transform"
	case Selector[T]:
		return "selector"
	case RenameField[T]:
		return "rename_field"
	case RemoveField[T]:
		return "remove_field"
	case Seq[T]:
		return "seq"
	case Or[T]:
		return "or"
	default:
		return "unknown"
	}
}

// Flatten expands a Seq into its constituent rules (recursively); any
// other rule shape is returned as a single-element slice. Or is left
// intact since which branch actually fires depends on the query type
// at apply time, not on the rule's static shape.
func Flatten[T any](r Rule[T]) []Rule[T] {
	seq, ok := r.(Seq[T])
	if !ok {
		return []Rule[T]{r}
	}
	out := make([]Rule[T], 0, len(seq.Rules))
	for _, sub := range seq.Rules {
		out = append(out, Flatten(sub)...)
	}
	return out
}
