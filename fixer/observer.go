// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package fixer

import (
	"time"

	"github.com/fixerlab/datafixer/datafix"
	"github.com/fixerlab/datafixer/dynamic"
)

// Observer is an optional extension a datafix.Context may implement to
// receive per-fix lifecycle notifications. It is satisfied
// structurally (diagnostic.Context[T] implements it without this
// package ever importing diagnostic), the same "accept the minimal
// interface you need" shape as a capability interface.
type Observer[T any] interface {
	BeginFix(fix datafix.Fix[T], before dynamic.Dynamic[T])
	EndFix(fix datafix.Fix[T], after dynamic.Dynamic[T], duration time.Duration)
}
