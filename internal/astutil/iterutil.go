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

package astutil

import (
	"go/ast"
	"iter"
)

// AllParams yields the named receiver and parameters of fun, skipping blank identifiers.
func AllParams(fun *ast.FuncDecl) iter.Seq[*ast.Ident] {
	return func(yield func(*ast.Ident) bool) {
		for _, list := range [...]*ast.FieldList{fun.Recv, fun.Type.Params} {
			if list == nil {
				continue
			}

			for _, field := range list.List {
				for _, id := range field.Names {
					if id.Name == "_" {
						continue // blank identifier
					}

					if !yield(id) {
						return
					}
				}
			}
		}
	}
}
