// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package ctydyn

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyyaml "github.com/zclconf/go-cty-yaml"

	"github.com/fixerlab/datafixer/dynamic"
)

// FromYAML decodes YAML text into a Dynamic[cty.Value] tree, the
// go-cty-yaml boundary analog of nativedyn's FromJSON: the in-memory
// tree stays cty.Value throughout, YAML is only ever touched at the
// encode/decode edge. The document's cty.Type is inferred from its
// own shape, the same "no schema, infer from what's there" posture
// hcldecl takes with HCL attributes.
func FromYAML(data []byte) (dynamic.Dynamic[cty.Value], error) {
	ty, err := ctyyaml.ImpliedType(data)
	if err != nil {
		return dynamic.Dynamic[cty.Value]{}, fmt.Errorf("ctydyn: infer yaml type: %w", err)
	}
	v, err := ctyyaml.Unmarshal(data, ty)
	if err != nil {
		return dynamic.Dynamic[cty.Value]{}, fmt.Errorf("ctydyn: decode yaml: %w", err)
	}
	return dynamic.New(Ops{}, v), nil
}

// ToYAML encodes a Dynamic[cty.Value] tree as YAML text.
func ToYAML(d dynamic.Dynamic[cty.Value]) ([]byte, error) {
	b, err := ctyyaml.Marshal(d.Value)
	if err != nil {
		return nil, fmt.Errorf("ctydyn: encode yaml: %w", err)
	}
	return b, nil
}
