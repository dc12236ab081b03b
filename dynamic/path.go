// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package dynamic

import (
	"strings"

	"github.com/fixerlab/datafixer/internal/errs"
)

// splitPath parses a dot-separated field path. Escaping is not
// supported: the empty string, a leading dot, a trailing dot, or an
// empty segment ("..") are all malformed. Callers needing a literal
// dot in a key must use Dynamic.Get(key) directly instead of path
// descent.
func splitPath(op, path string) ([]string, error) {
	if path == "" {
		return nil, errs.PathFormat(op, "empty path")
	}
	if strings.HasPrefix(path, ".") {
		return nil, errs.PathFormat(op, "path %q has a leading dot", path)
	}
	if strings.HasSuffix(path, ".") {
		return nil, errs.PathFormat(op, "path %q has a trailing dot", path)
	}
	segs := strings.Split(path, ".")
	for _, s := range segs {
		if s == "" {
			return nil, errs.PathFormat(op, "path %q contains an empty segment", path)
		}
	}
	return segs, nil
}
