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
	"go/token"
	"go/types"
	"slices"

	"fillmore-labs.com/writeguard/internal/exits"
	"fillmore-labs.com/writeguard/tree"
)

// loopConditions reports loops whose condition can't change while the loop runs.
//
// Only conditions built from variables, constants and operators without side
// effects are considered. Each variable must be a local of the function that
// is reachable by name only, and neither the body nor the post statement may
// write it. Loops that can be left otherwise, by break, return or a call that
// does not return, are intentional and skipped.
func (f *function) loopConditions() {
	for c := range f.body.Preorder((*ast.ForStmt)(nil)) {
		loop := c.Node().(*ast.ForStmt)
		if loop.Cond == nil {
			continue
		}

		vars, ok := f.conditionVars(loop.Cond, nil)
		if !ok || len(vars) == 0 || !f.trackable(vars) {
			continue
		}

		if exits.Has(f.pass.TypesInfo, c) {
			continue
		}

		writes, ok := f.loopWrites(loop, vars)
		if !ok || writes {
			continue
		}

		f.report(loop.Cond, "loop condition %q never changes inside the loop", types.ExprString(loop.Cond))
	}
}

// conditionVars collects the variables of a condition without side effects.
func (f *function) conditionVars(e ast.Expr, vars []*types.Var) ([]*types.Var, bool) {
	switch e := e.(type) {
	case *ast.Ident:
		switch obj := f.pass.TypesInfo.Uses[e].(type) {
		case *types.Var:
			if !slices.Contains(vars, obj) {
				vars = append(vars, obj)
			}

			return vars, true

		case *types.Const, *types.Nil:
			return vars, true

		default:
			return vars, false
		}

	case *ast.BasicLit:
		return vars, true

	case *ast.SelectorExpr: // qualified constant
		_, ok := f.pass.TypesInfo.Uses[e.Sel].(*types.Const)

		return vars, ok

	case *ast.ParenExpr:
		return f.conditionVars(e.X, vars)

	case *ast.UnaryExpr:
		switch e.Op {
		case token.NOT, token.SUB, token.ADD, token.XOR:
			return f.conditionVars(e.X, vars)

		default: // & and <-
			return vars, false
		}

	case *ast.BinaryExpr:
		left, ok := f.conditionVars(e.X, vars)
		if !ok {
			return left, false
		}

		return f.conditionVars(e.Y, left)

	default:
		return vars, false
	}
}

// trackable reports whether every change of vars is a write the analysis sees.
func (f *function) trackable(vars []*types.Var) bool {
	for _, v := range vars {
		if v.IsField() || v.Pos() < f.fun.Pos() || v.Pos() >= f.fun.End() {
			return false // not a local
		}

		// Field and element assignments change aggregate values in place.
		switch v.Type().Underlying().(type) {
		case *types.Struct, *types.Array:
			return false
		}

		if f.escapes().Contains(v) {
			return false
		}
	}

	return true
}

// loopWrites reports whether an iteration of loop may write one of vars.
// ok is false when the loop could not be analyzed.
func (f *function) loopWrites(loop *ast.ForStmt, vars []*types.Var) (writes, ok bool) {
	body, err := f.lowerer.Block(loop.Body)
	if err != nil {
		f.internalError(loop, err)

		return false, false
	}

	iteration := &tree.Block{Statements: []tree.Statement{body}}

	if loop.Post != nil {
		post, err := f.lowerer.Stmt(loop.Post)
		if err != nil {
			f.internalError(loop.Post, err)

			return false, false
		}

		iteration.Statements = append(iteration.Statements, post)
	}

	for _, v := range vars {
		w, err := f.analysis.Check(iteration, f.lowerer.Binding(v))
		if err != nil {
			f.internalError(loop, err)

			return false, false
		}

		if w {
			return true, true
		}
	}

	return false, true
}
