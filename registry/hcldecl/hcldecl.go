// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

// Package hcldecl is a declarative front door onto registry.TypeRegistry:
// a small HCL document names TypeReferences and binds each to a
// primitive codec.Codec[_, cty.Value], sparing callers from writing
// registry.Register calls by hand for the common scalar case.
// Parse-then-walk-blocks, narrowed to a single block kind.
package hcldecl

import (
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"golang.org/x/mod/semver"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/internal/errs"
)

// TypeDecl is one `type "<ref>" { kind = "<kind>" }` block.
type TypeDecl struct {
	Ref   string
	Kind  string
	Range hcl.Range
}

// Declaration is the parsed, not-yet-bound contents of an HCL schema
// declaration file.
type Declaration struct {
	SchemaVersion string
	Types         []TypeDecl
}

// knownKinds lists the primitive kinds hcldecl can bind, in the order
// levenshtein suggestions are ranked against.
var knownKinds = []string{"bool", "int", "long", "string"}

// Parse reads an HCL schema declaration from src. filename is used
// only for diagnostic positions.
func Parse(src []byte, filename string) (*Declaration, error) {
	parser := hclparse.NewParser()
	f, diag := parser.ParseHCL(src, filename)
	if diag.HasErrors() {
		return nil, errs.Decode("hcldecl: Parse", diag, "parsing %s", filename)
	}
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errs.Decode("hcldecl: Parse", nil, "%s: unsupported body implementation", filename)
	}

	decl := &Declaration{}
	if attr, ok := body.Attributes["schema_version"]; ok {
		v, diag := attr.Expr.Value(nil)
		if diag.HasErrors() {
			return nil, errs.Decode("hcldecl: Parse", diag, "%s: schema_version", filename)
		}
		if v.Type().FriendlyName() != "string" {
			return nil, errs.Decode("hcldecl: Parse", nil, "%s: schema_version must be a string", filename)
		}
		sv := v.AsString()
		if !strings.HasPrefix(sv, "v") {
			sv = "v" + sv
		}
		if !semver.IsValid(sv) {
			return nil, errs.Decode("hcldecl: Parse", nil, "%s: schema_version %q is not a valid semantic version", filename, v.AsString())
		}
		decl.SchemaVersion = v.AsString()
	}

	for _, block := range body.Blocks {
		if block.Type != "type" {
			return nil, errs.Decode("hcldecl: Parse", nil, "%s:%d: unsupported block kind %q", filename, block.Range().Start.Line, block.Type)
		}
		if len(block.Labels) != 1 {
			return nil, errs.Decode("hcldecl: Parse", nil, "%s:%d: type block requires exactly one label (its TypeReference)", filename, block.Range().Start.Line)
		}
		kindAttr, ok := block.Body.Attributes["kind"]
		if !ok {
			return nil, errs.Decode("hcldecl: Parse", nil, "%s:%d: type %q: missing required attribute \"kind\"", filename, block.Range().Start.Line, block.Labels[0])
		}
		v, diag := kindAttr.Expr.Value(nil)
		if diag.HasErrors() {
			return nil, errs.Decode("hcldecl: Parse", diag, "%s: type %q kind", filename, block.Labels[0])
		}
		decl.Types = append(decl.Types, TypeDecl{
			Ref:   block.Labels[0],
			Kind:  v.AsString(),
			Range: block.Range(),
		})
	}
	return decl, nil
}

// suggestKind returns the known kind closest to kind by Levenshtein
// distance, for "did you mean" style diagnostics.
func suggestKind(kind string) string {
	best, bestDist := "", -1
	for _, k := range knownKinds {
		d := levenshtein.Distance(kind, k, nil)
		if bestDist == -1 || d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func unknownKindError(decl TypeDecl) error {
	return errs.Decode("hcldecl: Bind", nil,
		"type %q: unknown kind %q (did you mean %q?) at %s",
		decl.Ref, decl.Kind, suggestKind(decl.Kind), decl.Range.String())
}

// Names returns the declared TypeReferences, sorted alphabetically.
func (d *Declaration) Names() []string {
	out := make([]string, len(d.Types))
	for i, t := range d.Types {
		out[i] = t.Ref
	}
	sort.Strings(out)
	return out
}
