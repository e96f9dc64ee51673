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

// Package escape finds local variables whose storage can be reached other
// than through their name.
//
// The write-effect analysis only sees writes that name the variable. A
// variable whose address is taken, or that a function literal captures, can
// change through a pointer or a call, so checks relying on the analysis must
// leave it alone.
package escape

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/internal/astutil"
)

// Set is a set of variables.
type Set map[*types.Var]struct{}

// Contains reports whether v is in s.
func (s Set) Contains(v *types.Var) bool {
	_, ok := s[v]

	return ok
}

var escapeTypes = []ast.Node{
	(*ast.UnaryExpr)(nil),
	(*ast.SliceExpr)(nil),
	(*ast.SelectorExpr)(nil),
	(*ast.FuncLit)(nil),
}

// Collect returns the variables used in body that have their address taken
// or are captured by a function literal.
//
// Addresses are taken explicitly with &, implicitly by slicing an array or by
// calling a pointer method on an addressable value.
func Collect(info *types.Info, body inspector.Cursor) Set {
	s := make(Set)

	for c := range body.Preorder(escapeTypes...) {
		switch n := c.Node().(type) {
		case *ast.UnaryExpr:
			if n.Op == token.AND {
				s.addRoot(info, n.X)
			}

		case *ast.SliceExpr:
			if isArray(info.TypeOf(n.X)) {
				s.addRoot(info, n.X)
			}

		case *ast.SelectorExpr:
			if sel, ok := info.Selections[n]; ok && sel.Kind() == types.MethodVal && !sel.Indirect() && astutil.PointerMethod(sel) {
				s.addRoot(info, n.X)
			}

		case *ast.FuncLit:
			s.addCaptured(info, c, n)
		}
	}

	return s
}

// addRoot adds the variable whose storage contains the addressed operand x.
func (s Set) addRoot(info *types.Info, x ast.Expr) {
	for {
		switch e := ast.Unparen(x).(type) {
		case *ast.Ident:
			if v, ok := info.Uses[e].(*types.Var); ok {
				s[v] = struct{}{}
			}

			return

		case *ast.SelectorExpr:
			sel, ok := info.Selections[e]
			if !ok || sel.Kind() != types.FieldVal || sel.Indirect() {
				return // package variable or field behind a pointer
			}

			x = e.X

		case *ast.IndexExpr:
			if !isArray(info.TypeOf(e.X)) {
				return // slice, map or pointer to array
			}

			x = e.X

		default:
			return
		}
	}
}

// addCaptured adds the variables referenced in lit and declared outside of it.
func (s Set) addCaptured(info *types.Info, c inspector.Cursor, lit *ast.FuncLit) {
	for i := range c.Preorder((*ast.Ident)(nil)) {
		v, ok := info.Uses[i.Node().(*ast.Ident)].(*types.Var)
		if !ok || v.IsField() {
			continue
		}

		if v.Pos() < lit.Pos() || v.Pos() >= lit.End() {
			s[v] = struct{}{}
		}
	}
}

func isArray(t types.Type) bool {
	if t == nil {
		return false
	}

	_, ok := t.Underlying().(*types.Array)

	return ok
}
