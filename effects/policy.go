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

package effects

import "fillmore-labs.com/writeguard/tree"

var _ tree.Visitor[bool] = (*writes)(nil)

// Assignments and steps.

func (w *writes) VisitAssignment(t *tree.Assignment) bool {
	return w.writesAsSide(t.Variable, LValue) || w.writes(t.Value)
}

// VisitCompoundAssignment folds the read of the target into the value.
func (w *writes) VisitCompoundAssignment(t *tree.CompoundAssignment) bool {
	return w.writesAsSide(t.Variable, LValue) || w.writes(t.Value)
}

func (w *writes) VisitUnary(t *tree.Unary) bool {
	if t.Operator.Step() {
		// x++ is x = x + 1: the operand is both target and value.
		return w.writesAsSide(t.Expression, LValue) || w.writesAsSide(t.Expression, RValue)
	}

	return w.writes(t.Expression)
}

// Operators.

func (w *writes) VisitBinary(t *tree.Binary) bool {
	return w.writes(t.Left) || w.writes(t.Right)
}

func (w *writes) VisitTernary(t *tree.Ternary) bool {
	return w.writes(t.Condition) || w.writes(t.TruePart) || w.writes(t.FalsePart)
}

func (w *writes) VisitParentheses(t *tree.Parentheses) bool {
	return w.writes(t.Tree)
}

func (w *writes) VisitControlParentheses(t *tree.ControlParentheses) bool {
	return w.writes(t.Tree)
}

func (w *writes) VisitTypeCast(t *tree.TypeCast) bool {
	return w.writes(t.Expression)
}

func (w *writes) VisitInstanceOf(t *tree.InstanceOf) bool {
	return w.writes(t.Expression)
}

// Accesses and terminals.

func (w *writes) VisitIdentifier(t *tree.Identifier) bool {
	return w.writesAsSide(t, RValue)
}

func (w *writes) VisitFieldAccess(t *tree.FieldAccess) bool {
	return w.writesAsSide(t, RValue)
}

func (w *writes) VisitArrayAccess(t *tree.ArrayAccess) bool {
	return w.writesAsSide(t, RValue)
}

func (w *writes) VisitLiteral(*tree.Literal) bool { return false }

func (w *writes) VisitBreak(*tree.Break) bool { return false }

func (w *writes) VisitContinue(*tree.Continue) bool { return false }

func (w *writes) VisitEmpty(*tree.Empty) bool { return false }

// Calls and allocations.

// VisitMethodInvocation does not look into the callee. A local variable that is
// not captured by reference cannot be written by a call.
func (w *writes) VisitMethodInvocation(t *tree.MethodInvocation) bool {
	return t.Select != nil && w.writes(t.Select) || anyWrites(w, t.Arguments)
}

// VisitMemberReference only evaluates the containing expression; the referenced
// member is not a local variable.
func (w *writes) VisitMemberReference(t *tree.MemberReference) bool {
	return w.writes(t.Containing)
}

func (w *writes) VisitNewClass(t *tree.NewClass) bool {
	return t.Enclosing != nil && w.writes(t.Enclosing) ||
		anyWrites(w, t.Arguments) ||
		t.Body != nil && w.writes(t.Body)
}

func (w *writes) VisitNewArray(t *tree.NewArray) bool {
	return anyWrites(w, t.Initializer) || anyWrites(w, t.Dimensions)
}

// VisitLambda treats an expression body as if it ran where the lambda is
// written, and skips a block body. See the package documentation.
func (w *writes) VisitLambda(t *tree.Lambda) bool {
	body, ok := t.Body.(tree.Expression)

	return ok && w.writes(body)
}

// VisitMethodDeclaration is false, a declared body does not run at the declaration.
func (w *writes) VisitMethodDeclaration(*tree.MethodDeclaration) bool { return false }

func (w *writes) VisitEnumValueSet(t *tree.EnumValueSet) bool {
	for _, e := range t.Enums {
		if e.Initializer != nil && w.writes(e.Initializer) {
			return true
		}
	}

	return false
}

// Statements.

func (w *writes) VisitBlock(t *tree.Block) bool {
	return anyWrites(w, t.Statements)
}

func (w *writes) VisitVariableDeclarations(t *tree.VariableDeclarations) bool {
	for _, v := range t.Variables {
		if v.Initializer != nil && w.writes(v.Initializer) {
			return true
		}
	}

	return false
}

// VisitLabel answers for the labeled statement; a constant false would miss `l: v = 1`.
func (w *writes) VisitLabel(t *tree.Label) bool {
	return w.writes(t.Statement)
}

func (w *writes) VisitReturn(t *tree.Return) bool {
	return anyWrites(w, t.Expressions)
}

func (w *writes) VisitThrow(t *tree.Throw) bool {
	return w.writes(t.Exception)
}

func (w *writes) VisitAssert(t *tree.Assert) bool {
	return w.writes(t.Condition) || t.Detail != nil && w.writes(t.Detail)
}

// Control flow. Branches and bodies count whether or not they are taken, and
// loop bodies count once.

func (w *writes) VisitIf(t *tree.If) bool {
	return w.writes(t.Condition) || w.writes(t.Then) || t.Else != nil && w.writes(t.Else)
}

func (w *writes) VisitElse(t *tree.Else) bool {
	return w.writes(t.Body)
}

func (w *writes) VisitWhileLoop(t *tree.WhileLoop) bool {
	return w.writes(t.Condition) || w.writes(t.Body)
}

func (w *writes) VisitDoWhileLoop(t *tree.DoWhileLoop) bool {
	return w.writes(t.Condition) || w.writes(t.Body)
}

func (w *writes) VisitForLoop(t *tree.ForLoop) bool {
	return w.writes(t.Control) || w.writes(t.Body)
}

func (w *writes) VisitForLoopControl(t *tree.ForLoopControl) bool {
	return anyWrites(w, t.Init) || anyWrites(w, t.Update) || t.Condition != nil && w.writes(t.Condition)
}

func (w *writes) VisitForEachLoop(t *tree.ForEachLoop) bool {
	return w.writes(t.Control) || w.writes(t.Body)
}

// VisitForEachControl treats declared loop variables like declarations and
// existing storage as assignment targets.
func (w *writes) VisitForEachControl(t *tree.ForEachControl) bool {
	for _, v := range t.Variables {
		switch v := v.(type) {
		case *tree.VariableDeclarations:
			if w.writes(v) {
				return true
			}

		case tree.Expression:
			if w.writesAsSide(v, LValue) {
				return true
			}

		default:
			if w.writes(v) {
				return true
			}
		}
	}

	return w.writes(t.Iterable)
}

func (w *writes) VisitSwitch(t *tree.Switch) bool {
	return t.Selector != nil && w.writes(t.Selector) || t.Cases != nil && w.writes(t.Cases)
}

func (w *writes) VisitCase(t *tree.Case) bool {
	return anyWrites(w, t.Labels) || anyWrites(w, t.Statements)
}

func (w *writes) VisitTry(t *tree.Try) bool {
	if anyWrites(w, t.Resources) || w.writes(t.Body) {
		return true
	}

	for _, c := range t.Catches {
		if w.writes(c.Body) {
			return true
		}
	}

	return t.Finally != nil && w.writes(t.Finally)
}

func (w *writes) VisitTryResource(t *tree.TryResource) bool {
	return w.writes(t.Declaration)
}

func (w *writes) VisitSynchronized(t *tree.Synchronized) bool {
	return w.writes(t.Lock) || w.writes(t.Body)
}
