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

package tree

import "iter"

// Inspect traverses t in depth-first order. It calls f(n) for each node n; if f
// returns true, Inspect visits the children of n, left to right.
//
// The traversal keeps its own stack, so arbitrarily deep trees are fine.
func Inspect(t Tree, f func(Tree) bool) {
	walk(t, func(n Tree) (bool, bool) { return f(n), true })
}

// Preorder yields t and all its descendants in depth-first order.
func Preorder(t Tree) iter.Seq[Tree] {
	return func(yield func(Tree) bool) {
		walk(t, func(n Tree) (bool, bool) {
			ok := yield(n)

			return ok, ok
		})
	}
}

// walk visits t and its descendants in depth-first order. visit reports
// whether to descend into n and whether to continue at all.
func walk(t Tree, visit func(n Tree) (descend, more bool)) {
	if t == nil {
		return
	}

	stack := []Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		descend, more := visit(n)
		if !more {
			return
		}

		if !descend {
			continue
		}

		children := Children(n)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
}

// Children returns the direct, non-nil children of t in source order.
func Children(t Tree) []Tree {
	return Dispatch[[]Tree](t, children{})
}

// children implements [Visitor] by listing sub-trees.
type children struct{}

var _ Visitor[[]Tree] = children{}

func (children) VisitArrayAccess(t *ArrayAccess) []Tree {
	return add(nil, t.Indexed, t.Index)
}

func (children) VisitAssert(t *Assert) []Tree {
	return add(nil, t.Condition, t.Detail)
}

func (children) VisitAssignment(t *Assignment) []Tree {
	return add(nil, t.Variable, t.Value)
}

func (children) VisitBinary(t *Binary) []Tree {
	return add(nil, t.Left, t.Right)
}

func (children) VisitBlock(t *Block) []Tree {
	return add(nil, t.Statements...)
}

func (children) VisitBreak(t *Break) []Tree {
	return add(nil, t.Label)
}

func (children) VisitCase(t *Case) []Tree {
	return add(add(nil, t.Labels...), t.Statements...)
}

func (children) VisitCompoundAssignment(t *CompoundAssignment) []Tree {
	return add(nil, t.Variable, t.Value)
}

func (children) VisitContinue(t *Continue) []Tree {
	return add(nil, t.Label)
}

func (children) VisitControlParentheses(t *ControlParentheses) []Tree {
	return add(nil, t.Tree)
}

func (children) VisitDoWhileLoop(t *DoWhileLoop) []Tree {
	return add(add(nil, t.Body), t.Condition)
}

func (children) VisitElse(t *Else) []Tree {
	return add(nil, t.Body)
}

func (children) VisitEmpty(*Empty) []Tree { return nil }

func (children) VisitEnumValueSet(t *EnumValueSet) []Tree {
	var ts []Tree
	for _, e := range t.Enums {
		ts = add(add(ts, e.Name), e.Initializer)
	}

	return ts
}

func (children) VisitFieldAccess(t *FieldAccess) []Tree {
	return add(add(nil, t.Target), t.Name)
}

func (children) VisitForEachControl(t *ForEachControl) []Tree {
	return add(add(nil, t.Variables...), t.Iterable)
}

func (children) VisitForEachLoop(t *ForEachLoop) []Tree {
	return add(add(nil, t.Control), t.Body)
}

func (children) VisitForLoop(t *ForLoop) []Tree {
	return add(add(nil, t.Control), t.Body)
}

func (children) VisitForLoopControl(t *ForLoopControl) []Tree {
	return add(add(add(nil, t.Init...), t.Condition), t.Update...)
}

func (children) VisitIdentifier(*Identifier) []Tree { return nil }

func (children) VisitIf(t *If) []Tree {
	return add(add(add(nil, t.Condition), t.Then), t.Else)
}

func (children) VisitInstanceOf(t *InstanceOf) []Tree {
	return add(nil, t.Expression, t.Class)
}

func (children) VisitLabel(t *Label) []Tree {
	return add(add(nil, t.Name), t.Statement)
}

func (children) VisitLambda(t *Lambda) []Tree {
	return add(add(nil, t.Parameters...), t.Body)
}

func (children) VisitLiteral(*Literal) []Tree { return nil }

func (children) VisitMemberReference(t *MemberReference) []Tree {
	return add(add(nil, t.Containing), t.Reference)
}

func (children) VisitMethodDeclaration(t *MethodDeclaration) []Tree {
	return add(add(add(nil, t.Name), t.Parameters...), t.Body)
}

func (children) VisitMethodInvocation(t *MethodInvocation) []Tree {
	return add(add(add(nil, t.Select), t.Name), t.Arguments...)
}

func (children) VisitNewArray(t *NewArray) []Tree {
	return add(add(add(nil, t.Type), t.Dimensions...), t.Initializer...)
}

func (children) VisitNewClass(t *NewClass) []Tree {
	return add(add(add(nil, t.Enclosing, t.Class), t.Arguments...), t.Body)
}

func (children) VisitParentheses(t *Parentheses) []Tree {
	return add(nil, t.Tree)
}

func (children) VisitReturn(t *Return) []Tree {
	return add(nil, t.Expressions...)
}

func (children) VisitSwitch(t *Switch) []Tree {
	return add(add(nil, t.Selector), t.Cases)
}

func (children) VisitSynchronized(t *Synchronized) []Tree {
	return add(add(nil, t.Lock), t.Body)
}

func (children) VisitTernary(t *Ternary) []Tree {
	return add(nil, t.Condition, t.TruePart, t.FalsePart)
}

func (children) VisitThrow(t *Throw) []Tree {
	return add(nil, t.Exception)
}

func (children) VisitTry(t *Try) []Tree {
	ts := add(add(nil, t.Resources...), t.Body)
	for _, c := range t.Catches {
		ts = add(add(ts, c.Parameter), c.Body)
	}

	return add(ts, t.Finally)
}

func (children) VisitTryResource(t *TryResource) []Tree {
	return add(nil, t.Declaration)
}

func (children) VisitTypeCast(t *TypeCast) []Tree {
	return add(nil, t.Class, t.Expression)
}

func (children) VisitUnary(t *Unary) []Tree {
	return add(nil, t.Expression)
}

func (children) VisitVariableDeclarations(t *VariableDeclarations) []Tree {
	ts := add(nil, t.Type)
	for _, v := range t.Variables {
		ts = add(add(ts, v.Name), v.Initializer)
	}

	return ts
}

func (children) VisitWhileLoop(t *WhileLoop) []Tree {
	return add(add(nil, t.Condition), t.Body)
}

// add appends the non-nil elements of xs to ts.
func add[T interface {
	Tree
	comparable
}](ts []Tree, xs ...T) []Tree {
	var null T
	for _, x := range xs {
		if x != null {
			ts = append(ts, x)
		}
	}

	return ts
}
