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

package lower

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/tree"
)

func (s *lowering) exprs(list []ast.Expr) []tree.Expression {
	if len(list) == 0 {
		return nil
	}

	ts := make([]tree.Expression, 0, len(list))
	for _, e := range list {
		ts = append(ts, s.expr(e))
	}

	return ts
}

func (s *lowering) expr(e ast.Expr) tree.Expression {
	if tv, ok := s.info.Types[e]; ok && tv.IsType() {
		return typeExpr(e)
	}

	switch e := e.(type) {
	case *ast.Ident:
		return s.ident(e)

	case *ast.BasicLit:
		return &tree.Literal{Value: e.Value}

	case *ast.ParenExpr:
		return &tree.Parentheses{Tree: s.expr(e.X)}

	case *ast.UnaryExpr:
		op, ok := unaryOperator(e.Op)
		if !ok {
			s.fail(e)
		}

		return &tree.Unary{Operator: op, Expression: s.expr(e.X)}

	case *ast.StarExpr:
		return &tree.Unary{Operator: tree.OperatorDereference, Expression: s.expr(e.X)}

	case *ast.BinaryExpr:
		op, ok := binaryOperator(e.Op)
		if !ok {
			s.fail(e)
		}

		return &tree.Binary{Operator: op, Left: s.expr(e.X), Right: s.expr(e.Y)}

	case *ast.CallExpr:
		return s.call(e)

	case *ast.SelectorExpr:
		return s.selector(e)

	case *ast.IndexExpr:
		if tv, ok := s.info.Types[e.Index]; ok && tv.IsType() {
			return s.expr(e.X) // instantiation
		}

		return &tree.ArrayAccess{Indexed: s.expr(e.X), Index: s.expr(e.Index)}

	case *ast.IndexListExpr:
		return s.expr(e.X) // instantiation

	case *ast.SliceExpr:
		var args []tree.Expression

		for _, x := range [...]ast.Expr{e.Low, e.High, e.Max} {
			if x != nil {
				args = append(args, s.expr(x))
			}
		}

		return &tree.MethodInvocation{Select: s.expr(e.X), Name: name("[:]"), Arguments: args}

	case *ast.TypeAssertExpr:
		return &tree.TypeCast{Class: typeExpr(e.Type), Expression: s.expr(e.X)}

	case *ast.FuncLit:
		return s.funcLit(e)

	case *ast.CompositeLit:
		return s.composite(e)

	case *ast.ArrayType, *ast.StructType, *ast.FuncType, *ast.InterfaceType,
		*ast.MapType, *ast.ChanType, *ast.Ellipsis:
		return typeExpr(e)

	default: // *ast.BadExpr, stray *ast.KeyValueExpr
		s.fail(e)

		return placeholder()
	}
}

func (s *lowering) call(e *ast.CallExpr) tree.Expression {
	fun := ast.Unparen(e.Fun)

	if tv, ok := s.info.Types[fun]; ok && tv.IsType() {
		if len(e.Args) != 1 {
			s.fail(e)

			return placeholder()
		}

		return &tree.TypeCast{Class: typeExpr(fun), Expression: s.expr(e.Args[0])}
	}

	switch f := fun.(type) {
	case *ast.Ident:
		if b, ok := s.info.Uses[f].(*types.Builtin); ok {
			return s.builtin(b.Name(), e)
		}

		return &tree.MethodInvocation{Name: name(f.Name), Arguments: s.exprs(e.Args)}

	case *ast.SelectorExpr:
		if sel, ok := s.info.Selections[f]; ok {
			if sel.Kind() != types.MethodVal {
				break
			}

			return &tree.MethodInvocation{
				Select:    s.receiver(f.X, sel),
				Name:      name(f.Sel.Name),
				Arguments: s.exprs(e.Args),
			}
		}

		if _, ok := s.info.Uses[f.Sel].(*types.Func); ok { // qualified function
			return &tree.MethodInvocation{Name: name(types.ExprString(f)), Arguments: s.exprs(e.Args)}
		}
	}

	return &tree.MethodInvocation{Select: s.expr(fun), Arguments: s.exprs(e.Args)}
}

func (s *lowering) builtin(fun string, e *ast.CallExpr) tree.Expression {
	switch fun {
	case "make":
		if len(e.Args) == 0 {
			s.fail(e)

			return placeholder()
		}

		return &tree.NewArray{Type: typeExpr(e.Args[0]), Dimensions: s.exprs(e.Args[1:])}

	case "new":
		if len(e.Args) != 1 {
			s.fail(e)

			return placeholder()
		}

		if tv, ok := s.info.Types[e.Args[0]]; ok && tv.IsType() {
			return &tree.NewClass{Class: typeExpr(e.Args[0])}
		}

		return &tree.NewClass{Arguments: []tree.Expression{s.expr(e.Args[0])}}

	default:
		return &tree.MethodInvocation{Name: name(fun), Arguments: s.exprs(e.Args)}
	}
}

// receiver lowers the receiver of a method value or call, making the
// implicit address operation of pointer methods on addressable values explicit.
func (s *lowering) receiver(x ast.Expr, sel *types.Selection) tree.Expression {
	recv := s.expr(x)

	if sel.Indirect() || !astutil.PointerMethod(sel) {
		return recv
	}

	if tv, ok := s.info.Types[x]; !ok || !tv.Addressable() {
		return recv
	}

	return &tree.Unary{Operator: tree.OperatorAddressOf, Expression: recv}
}

func (s *lowering) selector(e *ast.SelectorExpr) tree.Expression {
	sel, ok := s.info.Selections[e]
	if !ok { // qualified identifier
		return s.ident(e.Sel)
	}

	switch sel.Kind() {
	case types.FieldVal:
		return &tree.FieldAccess{Target: s.expr(e.X), Name: name(e.Sel.Name)}

	case types.MethodVal:
		return &tree.MemberReference{Containing: s.receiver(e.X, sel), Reference: name(e.Sel.Name)}

	default: // method expression
		return &tree.MemberReference{Containing: typeExpr(e.X), Reference: name(e.Sel.Name)}
	}
}

func (s *lowering) funcLit(e *ast.FuncLit) tree.Expression {
	var params []*tree.Identifier

	if e.Type.Params != nil {
		for _, field := range e.Type.Params.List {
			for _, id := range field.Names {
				params = append(params, s.ident(id))
			}
		}
	}

	return &tree.Lambda{Parameters: params, Body: s.block(e.Body)}
}

func (s *lowering) composite(e *ast.CompositeLit) tree.Expression {
	var under types.Type
	if t := s.info.TypeOf(e); t != nil {
		under = t.Underlying()
		if p, ok := under.(*types.Pointer); ok { // elided &T
			under = p.Elem().Underlying()
		}
	}

	_, isStruct := under.(*types.Struct)

	elts := make([]tree.Expression, 0, len(e.Elts))

	for _, elt := range e.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			elts = append(elts, s.expr(elt))

			continue
		}

		if !isStruct { // struct keys are field names
			elts = append(elts, s.expr(kv.Key))
		}

		elts = append(elts, s.expr(kv.Value))
	}

	switch under.(type) {
	case *types.Array, *types.Slice:
		return &tree.NewArray{Type: typeExpr(e.Type), Initializer: elts}

	default:
		return &tree.NewClass{Class: typeExpr(e.Type), Arguments: elts}
	}
}

func (s *lowering) isBuiltin(fun ast.Expr, builtin string) bool {
	id, ok := ast.Unparen(fun).(*ast.Ident)
	if !ok {
		return false
	}

	b, ok := s.info.Uses[id].(*types.Builtin)

	return ok && b.Name() == builtin
}
