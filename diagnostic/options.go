// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package diagnostic implements the diagnostic-capturing Context: an
// opt-in recorder of every fix start/end, rule application, and
// before/after snapshot, gated by Options.
package diagnostic

// Options are the enumerated capture toggles. The engine pays nothing
// beyond a virtual dispatch on Info/Warn unless a diagnostic Context is
// explicitly constructed and installed via fixer.WithContext.
type Options struct {
	CaptureSnapshots   bool
	CaptureRuleDetails bool
	CaptureTiming      bool
	// MaxSnapshotBytes caps a captured snapshot's length; 0 means
	// unlimited. Snapshots longer than this are truncated, not
	// dropped, so a report still shows the start of an oversized tree.
	MaxSnapshotBytes int
	// FailOnWarn escalates a Warn call to a FixExecutionError instead
	// of merely recording it.
	FailOnWarn bool
}

// Defaults returns the default diagnostic configuration: snapshots,
// rule details, and timing all enabled; unlimited snapshot size;
// warnings non-fatal.
func Defaults() Options {
	return Options{
		CaptureSnapshots:   true,
		CaptureRuleDetails: true,
		CaptureTiming:      true,
		MaxSnapshotBytes:   0,
		FailOnWarn:         false,
	}
}
