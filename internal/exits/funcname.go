// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package exits

import "go/types"

// FuncName identifies a function or method independent of type-checker identity.
type FuncName struct {
	Path     string // package path of the function or receiver type
	Receiver string // receiver type name, empty for functions
	Name     string
}

// String formats f like "(path.Receiver).Name" or "path.Name".
func (f FuncName) String() string {
	qualified := f.Receiver
	if qualified == "" {
		qualified = f.Name
	}

	if f.Path != "" {
		qualified = f.Path + "." + qualified
	}

	if f.Receiver == "" {
		return qualified
	}

	return "(" + qualified + ")." + f.Name
}

// FuncNameOf returns the [FuncName] of fun. Methods are named by their
// receiver's base type, regardless of aliases and pointer receivers.
func FuncNameOf(fun *types.Func) FuncName {
	recv := fun.Signature().Recv()
	if recv == nil {
		var path string
		if pkg := fun.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return FuncName{Path: path, Name: fun.Name()}
	}

	path, receiver := receiverName(recv.Type())

	return FuncName{Path: path, Receiver: receiver, Name: fun.Name()}
}

func receiverName(t types.Type) (path, name string) {
	t = types.Unalias(t)
	if ptr, ok := t.(*types.Pointer); ok {
		t = types.Unalias(ptr.Elem())
	}

	switch t := t.(type) {
	case *types.Named:
		obj := t.Obj()
		if pkg := obj.Pkg(); pkg != nil {
			path = pkg.Path()
		}

		return path, obj.Name()

	case *types.Interface:
		return "", "interface"

	default:
		return "", "<invalid>"
	}
}
