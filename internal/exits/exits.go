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

// Package exits finds the ways control can leave a loop other than by its
// condition becoming false.
package exits

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"
)

var exitTypes = []ast.Node{
	(*ast.FuncLit)(nil),
	(*ast.ReturnStmt)(nil),
	(*ast.BranchStmt)(nil),
	(*ast.CallExpr)(nil),
}

var breakTypes = []ast.Node{
	(*ast.ForStmt)(nil),
	(*ast.RangeStmt)(nil),
	(*ast.SwitchStmt)(nil),
	(*ast.TypeSwitchStmt)(nil),
	(*ast.SelectStmt)(nil),
}

// Has reports whether the body of the for or range statement at loop can leave
// the loop: by return, goto, break or labeled continue to an enclosing loop,
// or by calling a function that does not return.
//
// Function literals in the body are not followed.
func Has(info *types.Info, loop inspector.Cursor) bool {
	var body inspector.Cursor

	switch loop.Node().(type) {
	case *ast.ForStmt:
		body = loop.ChildAt(edge.ForStmt_Body, -1)

	case *ast.RangeStmt:
		body = loop.ChildAt(edge.RangeStmt_Body, -1)

	default:
		return true
	}

	l := leaver{info: info, loop: loop, label: labelOf(info, loop)}

	found := false
	body.Inspect(exitTypes, func(c inspector.Cursor) bool {
		if found {
			return false
		}

		switch n := c.Node().(type) {
		case *ast.FuncLit:
			return false

		case *ast.ReturnStmt:
			found = true

		case *ast.BranchStmt:
			found = l.leaves(c, n)

		case *ast.CallExpr:
			found = CantReturn(info, n)
		}

		return !found
	})

	return found
}

// labelOf returns the label of a labeled loop, or nil.
func labelOf(info *types.Info, loop inspector.Cursor) types.Object {
	if k, _ := loop.ParentEdge(); k != edge.LabeledStmt_Stmt {
		return nil
	}

	labeled, ok := loop.Parent().Node().(*ast.LabeledStmt)
	if !ok {
		return nil
	}

	return info.Defs[labeled.Label]
}

type leaver struct {
	info  *types.Info
	loop  inspector.Cursor
	label types.Object
}

func (l leaver) leaves(c inspector.Cursor, n *ast.BranchStmt) bool {
	switch n.Tok {
	case token.BREAK:
		if n.Label == nil {
			return innermost(c) == l.loop
		}

		return l.outside(n.Label)

	case token.CONTINUE:
		if n.Label == nil {
			return false
		}

		if obj := l.info.Uses[n.Label]; obj != nil && obj == l.label {
			return false
		}

		return l.outside(n.Label)

	case token.GOTO:
		return true

	default: // fallthrough
		return false
	}
}

// outside reports whether the label is declared outside of the loop.
func (l leaver) outside(id *ast.Ident) bool {
	obj := l.info.Uses[id]
	if obj == nil {
		return true
	}

	n := l.loop.Node()

	return obj.Pos() < n.Pos() || obj.Pos() >= n.End()
}

// innermost returns the statement an unlabeled break at c terminates.
func innermost(c inspector.Cursor) inspector.Cursor {
	for e := range c.Enclosing(breakTypes...) {
		return e
	}

	return inspector.Cursor{}
}
