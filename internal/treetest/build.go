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

// Package treetest builds syntax trees for tests.
package treetest

import "fillmore-labs.com/writeguard/tree"

// Var returns an identifier denoting b.
func Var(b *tree.Binding) *tree.Identifier {
	return &tree.Identifier{Name: b.Name(), Binding: b}
}

// Name returns an identifier that is not a variable (a type, method or label).
func Name(name string) *tree.Identifier {
	return &tree.Identifier{Name: name}
}

// Lit returns a literal.
func Lit(value string) *tree.Literal {
	return &tree.Literal{Value: value}
}

// Assign returns "target = value".
func Assign(target, value tree.Expression) *tree.Assignment {
	return &tree.Assignment{Variable: target, Value: value}
}

// AssignOp returns "target op= value".
func AssignOp(op tree.Operator, target, value tree.Expression) *tree.CompoundAssignment {
	return &tree.CompoundAssignment{Operator: op, Variable: target, Value: value}
}

// Unary returns "op x".
func Unary(op tree.Operator, x tree.Expression) *tree.Unary {
	return &tree.Unary{Operator: op, Expression: x}
}

// Binary returns "x op y".
func Binary(op tree.Operator, x, y tree.Expression) *tree.Binary {
	return &tree.Binary{Operator: op, Left: x, Right: y}
}

// Paren returns "(x)".
func Paren(x tree.Expression) *tree.Parentheses {
	return &tree.Parentheses{Tree: x}
}

// Cond returns the control parentheses around x.
func Cond(x tree.Expression) *tree.ControlParentheses {
	return &tree.ControlParentheses{Tree: x}
}

// Block returns "{ stmts }".
func Block(stmts ...tree.Statement) *tree.Block {
	return &tree.Block{Statements: stmts}
}

// Call returns "sel.name(args)"; sel may be nil.
func Call(sel tree.Expression, name string, args ...tree.Expression) *tree.MethodInvocation {
	return &tree.MethodInvocation{Select: sel, Name: Name(name), Arguments: args}
}

// Index returns "x[i]".
func Index(x, i tree.Expression) *tree.ArrayAccess {
	return &tree.ArrayAccess{Indexed: x, Index: i}
}

// Field returns "x.name".
func Field(x tree.Expression, name string) *tree.FieldAccess {
	return &tree.FieldAccess{Target: x, Name: Name(name)}
}

// Decl returns "typ name = init"; init may be nil.
func Decl(typ string, name *tree.Identifier, init tree.Expression) *tree.VariableDeclarations {
	return &tree.VariableDeclarations{
		Type:      Name(typ),
		Variables: []*tree.NamedVariable{{Name: name, Initializer: init}},
	}
}

// If returns "if (cond) then else els"; els may be nil.
func If(cond tree.Expression, then, els tree.Statement) *tree.If {
	t := &tree.If{Condition: Cond(cond), Then: then}
	if els != nil {
		t.Else = &tree.Else{Body: els}
	}

	return t
}

// While returns "while (cond) body".
func While(cond tree.Expression, body tree.Statement) *tree.WhileLoop {
	return &tree.WhileLoop{Condition: Cond(cond), Body: body}
}
