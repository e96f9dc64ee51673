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
	"go/token"
	"go/types"
	"slices"

	"fillmore-labs.com/writeguard/tree"
)

func (s *lowering) block(b *ast.BlockStmt) *tree.Block {
	if b == nil {
		return &tree.Block{}
	}

	return &tree.Block{Statements: s.stmts(b.List)}
}

func (s *lowering) stmts(list []ast.Stmt) []tree.Statement {
	if len(list) == 0 {
		return nil
	}

	ts := make([]tree.Statement, 0, len(list))
	for _, stmt := range list {
		ts = append(ts, s.stmt(stmt))
	}

	return ts
}

func (s *lowering) stmt(stmt ast.Stmt) tree.Statement {
	switch st := stmt.(type) {
	case *ast.BlockStmt:
		return s.block(st)

	case *ast.ExprStmt:
		return s.exprStmt(st.X)

	case *ast.AssignStmt:
		return s.assign(st)

	case *ast.IncDecStmt:
		op := tree.OperatorPostIncrement
		if st.Tok == token.DEC {
			op = tree.OperatorPostDecrement
		}

		return &tree.Unary{Operator: op, Expression: s.expr(st.X)}

	case *ast.DeclStmt:
		return s.decl(st)

	case *ast.IfStmt:
		return s.ifStmt(st)

	case *ast.ForStmt:
		return s.forStmt(st)

	case *ast.RangeStmt:
		return s.rangeStmt(st)

	case *ast.SwitchStmt:
		sw := &tree.Switch{Cases: s.clauses(st.Body)}
		if st.Tag != nil {
			sw.Selector = &tree.ControlParentheses{Tree: s.expr(st.Tag)}
		}

		return s.withInit(st.Init, sw)

	case *ast.TypeSwitchStmt:
		return s.typeSwitch(st)

	case *ast.SelectStmt:
		return &tree.Switch{Cases: s.clauses(st.Body)}

	case *ast.LabeledStmt:
		return &tree.Label{Name: name(st.Label.Name), Statement: s.stmt(st.Stmt)}

	case *ast.BranchStmt:
		return branch(st)

	case *ast.ReturnStmt:
		return &tree.Return{Expressions: s.exprs(st.Results)}

	case *ast.GoStmt:
		return s.statement(s.expr(st.Call), st)

	case *ast.DeferStmt:
		return s.statement(s.expr(st.Call), st)

	case *ast.SendStmt:
		return &tree.MethodInvocation{
			Select:    s.expr(st.Chan),
			Name:      name("<-"),
			Arguments: []tree.Expression{s.expr(st.Value)},
		}

	case *ast.EmptyStmt:
		return &tree.Empty{}

	default: // *ast.BadStmt
		s.fail(stmt)

		return &tree.Empty{}
	}
}

// statement uses an expression in statement position.
func (s *lowering) statement(e tree.Expression, n ast.Node) tree.Statement {
	if st, ok := e.(tree.Statement); ok {
		return st
	}

	s.fail(n)

	return &tree.Empty{}
}

func (s *lowering) exprStmt(x ast.Expr) tree.Statement {
	x = ast.Unparen(x)

	if call, ok := x.(*ast.CallExpr); ok && len(call.Args) == 1 && s.isBuiltin(call.Fun, "panic") {
		return &tree.Throw{Exception: s.expr(call.Args[0])}
	}

	return s.statement(s.expr(x), x)
}

// sequence combines statements lowered from a single Go statement.
func sequence(stmts []tree.Statement) tree.Statement {
	switch len(stmts) {
	case 0:
		return &tree.Empty{}

	case 1:
		return stmts[0]

	default:
		return &tree.Block{Statements: stmts}
	}
}

// withInit places the init statement of an if or switch before it.
func (s *lowering) withInit(init ast.Stmt, st tree.Statement) tree.Statement {
	if init == nil {
		return st
	}

	return &tree.Block{Statements: []tree.Statement{s.stmt(init), st}}
}

// values lowers the right-hand side for n targets. A single multi-valued
// expression goes to the first target, the others get placeholders.
// Missing values are nil.
func (s *lowering) values(rhs []ast.Expr, n int) []tree.Expression {
	values := make([]tree.Expression, n)

	switch len(rhs) {
	case 0:

	case n:
		for i, e := range rhs {
			values[i] = s.expr(e)
		}

	case 1:
		values[0] = s.expr(rhs[0])
		for i := 1; i < n; i++ {
			values[i] = placeholder()
		}

	default:
		s.fail(rhs[0])
	}

	return values
}

func (s *lowering) assign(st *ast.AssignStmt) tree.Statement {
	switch st.Tok {
	case token.ASSIGN:
		values := s.values(st.Rhs, len(st.Lhs))

		stmts := make([]tree.Statement, 0, len(st.Lhs))
		for i, lhs := range st.Lhs {
			stmts = append(stmts, &tree.Assignment{Variable: s.expr(lhs), Value: values[i]})
		}

		return sequence(stmts)

	case token.DEFINE:
		return s.define(st)

	default:
		op, ok := compoundOperator(st.Tok)
		if !ok || len(st.Lhs) != 1 || len(st.Rhs) != 1 {
			s.fail(st)

			return &tree.Empty{}
		}

		return &tree.CompoundAssignment{Operator: op, Variable: s.expr(st.Lhs[0]), Value: s.expr(st.Rhs[0])}
	}
}

// define lowers a short variable declaration. New variables are declared,
// redeclared ones are assigned.
func (s *lowering) define(st *ast.AssignStmt) tree.Statement {
	values := s.values(st.Rhs, len(st.Lhs))

	var (
		stmts []tree.Statement
		decl  *tree.VariableDeclarations
	)

	for i, lhs := range st.Lhs {
		id, ok := lhs.(*ast.Ident)
		if !ok {
			s.fail(lhs)

			continue
		}

		if _, ok := s.info.Defs[id].(*types.Var); !ok {
			stmts = append(stmts, &tree.Assignment{Variable: s.ident(id), Value: values[i]})

			continue
		}

		if decl == nil {
			decl = &tree.VariableDeclarations{}
			stmts = append(stmts, decl)
		}

		decl.Variables = append(decl.Variables, &tree.NamedVariable{Name: s.ident(id), Initializer: values[i]})
	}

	return sequence(stmts)
}

func (s *lowering) decl(st *ast.DeclStmt) tree.Statement {
	gen, ok := st.Decl.(*ast.GenDecl)
	if !ok {
		s.fail(st)

		return &tree.Empty{}
	}

	if gen.Tok != token.VAR {
		return &tree.Empty{} // constants and types
	}

	stmts := make([]tree.Statement, 0, len(gen.Specs))

	for _, spec := range gen.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			s.fail(spec)

			continue
		}

		values := s.values(vs.Values, len(vs.Names))

		decl := &tree.VariableDeclarations{Type: typeExpr(vs.Type)}
		for i, id := range vs.Names {
			decl.Variables = append(decl.Variables, &tree.NamedVariable{Name: s.ident(id), Initializer: values[i]})
		}

		stmts = append(stmts, decl)
	}

	return sequence(stmts)
}

func (s *lowering) ifStmt(st *ast.IfStmt) tree.Statement {
	t := &tree.If{
		Condition: &tree.ControlParentheses{Tree: s.expr(st.Cond)},
		Then:      s.block(st.Body),
	}

	if st.Else != nil {
		t.Else = &tree.Else{Body: s.stmt(st.Else)}
	}

	return s.withInit(st.Init, t)
}

func (s *lowering) forStmt(st *ast.ForStmt) tree.Statement {
	if st.Init == nil && st.Post == nil {
		cond := tree.Expression(&tree.Literal{Value: "true"})
		if st.Cond != nil {
			cond = s.expr(st.Cond)
		}

		return &tree.WhileLoop{
			Condition: &tree.ControlParentheses{Tree: cond},
			Body:      s.block(st.Body),
		}
	}

	control := &tree.ForLoopControl{}

	if st.Init != nil {
		control.Init = []tree.Statement{s.stmt(st.Init)}
	}

	if st.Cond != nil {
		control.Condition = s.expr(st.Cond)
	}

	if st.Post != nil {
		control.Update = []tree.Statement{s.stmt(st.Post)}
	}

	return &tree.ForLoop{Control: control, Body: s.block(st.Body)}
}

func (s *lowering) rangeStmt(st *ast.RangeStmt) tree.Statement {
	control := &tree.ForEachControl{Iterable: s.expr(st.X)}

	switch st.Tok {
	case token.DEFINE:
		decl := &tree.VariableDeclarations{}

		for _, e := range [...]ast.Expr{st.Key, st.Value} {
			if id, ok := e.(*ast.Ident); ok {
				decl.Variables = append(decl.Variables, &tree.NamedVariable{Name: s.ident(id)})
			}
		}

		control.Variables = []tree.Tree{decl}

	case token.ASSIGN:
		for _, e := range [...]ast.Expr{st.Key, st.Value} {
			if e != nil {
				control.Variables = append(control.Variables, s.expr(e))
			}
		}
	}

	return &tree.ForEachLoop{Control: control, Body: s.block(st.Body)}
}

// clauses lowers the body of a switch or select statement.
func (s *lowering) clauses(body *ast.BlockStmt) *tree.Block {
	cases := &tree.Block{}

	for _, stmt := range body.List {
		switch c := stmt.(type) {
		case *ast.CaseClause:
			cases.Statements = append(cases.Statements, &tree.Case{
				Labels:     s.exprs(c.List),
				Statements: s.stmts(c.Body),
			})

		case *ast.CommClause:
			stmts := s.stmts(c.Body)
			if c.Comm != nil {
				stmts = slices.Insert(stmts, 0, s.stmt(c.Comm))
			}

			cases.Statements = append(cases.Statements, &tree.Case{Statements: stmts})

		default:
			s.fail(stmt)
		}
	}

	return cases
}

func (s *lowering) typeSwitch(st *ast.TypeSwitchStmt) tree.Statement {
	var x ast.Expr

	switch a := st.Assign.(type) {
	case *ast.AssignStmt: // x := y.(type)
		if len(a.Rhs) == 1 {
			x = a.Rhs[0]
		}

	case *ast.ExprStmt: // y.(type)
		x = a.X
	}

	ta, ok := ast.Unparen(x).(*ast.TypeAssertExpr)
	if !ok {
		s.fail(st.Assign)

		return &tree.Empty{}
	}

	cases := &tree.Block{}

	for _, stmt := range st.Body.List {
		c, ok := stmt.(*ast.CaseClause)
		if !ok {
			s.fail(stmt)

			continue
		}

		labels := make([]tree.Expression, 0, len(c.List))
		for _, e := range c.List {
			labels = append(labels, typeExpr(e))
		}

		stmts := s.stmts(c.Body)

		// The symbolic variable is declared anew in every clause.
		if v, ok := s.info.Implicits[c].(*types.Var); ok {
			decl := &tree.VariableDeclarations{Variables: []*tree.NamedVariable{{
				Name: &tree.Identifier{Name: v.Name(), Binding: s.Binding(v)},
			}}}
			stmts = slices.Insert(stmts, 0, tree.Statement(decl))
		}

		cases.Statements = append(cases.Statements, &tree.Case{Labels: labels, Statements: stmts})
	}

	sw := &tree.Switch{
		Selector: &tree.ControlParentheses{Tree: s.expr(ta.X)},
		Cases:    cases,
	}

	return s.withInit(st.Init, sw)
}

func branch(st *ast.BranchStmt) tree.Statement {
	var label *tree.Identifier
	if st.Label != nil {
		label = name(st.Label.Name)
	}

	switch st.Tok {
	case token.BREAK:
		return &tree.Break{Label: label}

	case token.CONTINUE:
		return &tree.Continue{Label: label}

	default: // goto, fallthrough
		return &tree.Empty{}
	}
}
