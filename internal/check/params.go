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

package check

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/tree"
)

// parameters reports parameters and receivers the function body, or a
// function literal in it, may write.
func (f *function) parameters() {
	var params []*types.Var

	ids := make(map[*types.Var]*ast.Ident)

	for id := range astutil.AllParams(f.fun) {
		if v, ok := f.pass.TypesInfo.Defs[id].(*types.Var); ok {
			params = append(params, v)
			ids[v] = id
		}
	}

	if len(params) == 0 {
		return
	}

	body, err := f.lowerer.Block(f.fun.Body)
	if err != nil {
		f.internalError(f.fun.Body, err)

		return
	}

	var closures []tree.Tree

	for c := range f.body.Preorder((*ast.FuncLit)(nil)) {
		lit := c.Node().(*ast.FuncLit)

		closure, err := f.lowerer.Block(lit.Body)
		if err != nil {
			f.internalError(lit, err)

			return
		}

		closures = append(closures, closure)
	}

	for _, v := range params {
		b := f.lowerer.Binding(v)

		writes, err := f.analysis.Check(body, b)
		if err != nil {
			f.internalError(f.fun.Body, err)

			return
		}

		// Function literal bodies are not part of the evaluation of their
		// declaration, but may run later and assign captured parameters.
		for i := 0; !writes && i < len(closures) && f.escapes().Contains(v); i++ {
			if writes, err = f.analysis.Check(closures[i], b); err != nil {
				f.internalError(f.fun.Body, err)

				return
			}
		}

		if writes {
			f.report(ids[v], "parameter %q is reassigned", v.Name())
		}
	}
}
