// Copyright 2024-present The Datafixer Authors. All rights reserved.
// This source code is licensed under the Apache 2.0 license found
// in the LICENSE file in the root directory of this source tree.

package hcldecl

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/fixerlab/datafixer/codec"
	"github.com/fixerlab/datafixer/registry"
)

// Bind registers every type declared in decl into reg, picking the
// primitive codec.Codec[_, cty.Value] matching each declared kind.
// Binding stops at the first unknown kind or registry.Register
// failure (e.g. the registry is already frozen).
func Bind(reg *registry.TypeRegistry[cty.Value], decl *Declaration) error {
	for _, t := range decl.Types {
		ref := codec.Ref(t.Ref)
		var err error
		switch t.Kind {
		case "bool":
			err = registry.Register(reg, codec.NewType(ref, codec.Bool[cty.Value]()))
		case "int":
			err = registry.Register(reg, codec.NewType(ref, codec.Int[cty.Value]()))
		case "long":
			err = registry.Register(reg, codec.NewType(ref, codec.Long[cty.Value]()))
		case "string":
			err = registry.Register(reg, codec.NewType(ref, codec.String[cty.Value]()))
		default:
			err = unknownKindError(t)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
