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

// Package lower translates type-checked Go syntax into [tree] nodes.
//
// Lowering keeps everything the write-effect analysis needs: every
// assignment target, every evaluated operand and every variable's identity.
// Types are reduced to their source text and constructs the analysis cannot
// distinguish collapse to the closest node kind: a conversion becomes a
// [tree.TypeCast], a send a [tree.MethodInvocation] on the channel.
package lower

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"

	"fillmore-labs.com/writeguard/tree"
)

// ErrUnsupportedSyntax is returned for Go syntax that has no lowering.
var ErrUnsupportedSyntax = errors.New("unsupported syntax")

// UnsupportedSyntaxError reports the first node that could not be lowered.
type UnsupportedSyntaxError struct {
	Node ast.Node
}

func (e *UnsupportedSyntaxError) Error() string {
	return fmt.Sprintf("%v: %T", ErrUnsupportedSyntax, e.Node)
}

func (e *UnsupportedSyntaxError) Unwrap() error {
	return ErrUnsupportedSyntax
}

// Lowerer translates the syntax of one package.
//
// Variables are interned: every use of a [types.Var] lowers to the same
// *[tree.Binding], across calls. A Lowerer is not safe for concurrent use.
type Lowerer struct {
	info     *types.Info
	bindings map[*types.Var]*tree.Binding
}

// New creates a [Lowerer] for syntax checked with info.
// info must record Types, Defs, Uses, Implicits and Selections.
func New(info *types.Info) *Lowerer {
	return &Lowerer{
		info:     info,
		bindings: make(map[*types.Var]*tree.Binding),
	}
}

// Binding returns the binding of v.
func (l *Lowerer) Binding(v *types.Var) *tree.Binding {
	if b, ok := l.bindings[v]; ok {
		return b
	}

	b := tree.NewBinding(v.Name())
	l.bindings[v] = b

	return b
}

// Block lowers a block statement.
func (l *Lowerer) Block(b *ast.BlockStmt) (*tree.Block, error) {
	s := lowering{Lowerer: l}
	t := s.block(b)

	return t, s.err
}

// Stmt lowers a statement.
func (l *Lowerer) Stmt(stmt ast.Stmt) (tree.Statement, error) {
	s := lowering{Lowerer: l}
	t := s.stmt(stmt)

	return t, s.err
}

// Expr lowers an expression.
func (l *Lowerer) Expr(expr ast.Expr) (tree.Expression, error) {
	s := lowering{Lowerer: l}
	t := s.expr(expr)

	return t, s.err
}

// lowering is a single translation. It keeps the first error and lets the
// walk finish with placeholders.
type lowering struct {
	*Lowerer
	err error
}

func (s *lowering) fail(n ast.Node) {
	if s.err == nil {
		s.err = &UnsupportedSyntaxError{Node: n}
	}
}

// ident lowers an identifier, resolving variables to their binding.
func (s *lowering) ident(id *ast.Ident) *tree.Identifier {
	obj := s.info.Defs[id]
	if obj == nil {
		obj = s.info.Uses[id]
	}

	t := &tree.Identifier{Name: id.Name}
	if v, ok := obj.(*types.Var); ok && id.Name != "_" {
		t.Binding = s.Binding(v)
	}

	return t
}

// name is an identifier that never denotes a variable.
func name(n string) *tree.Identifier {
	return &tree.Identifier{Name: n}
}

// typeExpr lowers a type to its source text.
func typeExpr(e ast.Expr) tree.Expression {
	if e == nil {
		return nil
	}

	return name(types.ExprString(e))
}

// placeholder stands for a value of a multi-valued expression that is already
// accounted for elsewhere.
func placeholder() *tree.Literal {
	return &tree.Literal{Value: "_"}
}
