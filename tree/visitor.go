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

import (
	"errors"
	"fmt"
)

// Visitor has one method per [Kind]. Use [Dispatch] to call the method matching a node.
type Visitor[R any] interface {
	VisitArrayAccess(t *ArrayAccess) R
	VisitAssert(t *Assert) R
	VisitAssignment(t *Assignment) R
	VisitBinary(t *Binary) R
	VisitBlock(t *Block) R
	VisitBreak(t *Break) R
	VisitCase(t *Case) R
	VisitCompoundAssignment(t *CompoundAssignment) R
	VisitContinue(t *Continue) R
	VisitControlParentheses(t *ControlParentheses) R
	VisitDoWhileLoop(t *DoWhileLoop) R
	VisitElse(t *Else) R
	VisitEmpty(t *Empty) R
	VisitEnumValueSet(t *EnumValueSet) R
	VisitFieldAccess(t *FieldAccess) R
	VisitForEachControl(t *ForEachControl) R
	VisitForEachLoop(t *ForEachLoop) R
	VisitForLoop(t *ForLoop) R
	VisitForLoopControl(t *ForLoopControl) R
	VisitIdentifier(t *Identifier) R
	VisitIf(t *If) R
	VisitInstanceOf(t *InstanceOf) R
	VisitLabel(t *Label) R
	VisitLambda(t *Lambda) R
	VisitLiteral(t *Literal) R
	VisitMemberReference(t *MemberReference) R
	VisitMethodDeclaration(t *MethodDeclaration) R
	VisitMethodInvocation(t *MethodInvocation) R
	VisitNewArray(t *NewArray) R
	VisitNewClass(t *NewClass) R
	VisitParentheses(t *Parentheses) R
	VisitReturn(t *Return) R
	VisitSwitch(t *Switch) R
	VisitSynchronized(t *Synchronized) R
	VisitTernary(t *Ternary) R
	VisitThrow(t *Throw) R
	VisitTry(t *Try) R
	VisitTryResource(t *TryResource) R
	VisitTypeCast(t *TypeCast) R
	VisitUnary(t *Unary) R
	VisitVariableDeclarations(t *VariableDeclarations) R
	VisitWhileLoop(t *WhileLoop) R
}

// Dispatch calls the method of v matching the kind of t.
//
// Dispatch panics with an *[UnsupportedError] when t is nil or of a kind
// without a Visitor method. This is an internal defect, never a property of
// the input program.
func Dispatch[R any](t Tree, v Visitor[R]) R {
	switch t := t.(type) {
	case *ArrayAccess:
		return v.VisitArrayAccess(t)
	case *Assert:
		return v.VisitAssert(t)
	case *Assignment:
		return v.VisitAssignment(t)
	case *Binary:
		return v.VisitBinary(t)
	case *Block:
		return v.VisitBlock(t)
	case *Break:
		return v.VisitBreak(t)
	case *Case:
		return v.VisitCase(t)
	case *CompoundAssignment:
		return v.VisitCompoundAssignment(t)
	case *Continue:
		return v.VisitContinue(t)
	case *ControlParentheses:
		return v.VisitControlParentheses(t)
	case *DoWhileLoop:
		return v.VisitDoWhileLoop(t)
	case *Else:
		return v.VisitElse(t)
	case *Empty:
		return v.VisitEmpty(t)
	case *EnumValueSet:
		return v.VisitEnumValueSet(t)
	case *FieldAccess:
		return v.VisitFieldAccess(t)
	case *ForEachControl:
		return v.VisitForEachControl(t)
	case *ForEachLoop:
		return v.VisitForEachLoop(t)
	case *ForLoop:
		return v.VisitForLoop(t)
	case *ForLoopControl:
		return v.VisitForLoopControl(t)
	case *Identifier:
		return v.VisitIdentifier(t)
	case *If:
		return v.VisitIf(t)
	case *InstanceOf:
		return v.VisitInstanceOf(t)
	case *Label:
		return v.VisitLabel(t)
	case *Lambda:
		return v.VisitLambda(t)
	case *Literal:
		return v.VisitLiteral(t)
	case *MemberReference:
		return v.VisitMemberReference(t)
	case *MethodDeclaration:
		return v.VisitMethodDeclaration(t)
	case *MethodInvocation:
		return v.VisitMethodInvocation(t)
	case *NewArray:
		return v.VisitNewArray(t)
	case *NewClass:
		return v.VisitNewClass(t)
	case *Parentheses:
		return v.VisitParentheses(t)
	case *Return:
		return v.VisitReturn(t)
	case *Switch:
		return v.VisitSwitch(t)
	case *Synchronized:
		return v.VisitSynchronized(t)
	case *Ternary:
		return v.VisitTernary(t)
	case *Throw:
		return v.VisitThrow(t)
	case *Try:
		return v.VisitTry(t)
	case *TryResource:
		return v.VisitTryResource(t)
	case *TypeCast:
		return v.VisitTypeCast(t)
	case *Unary:
		return v.VisitUnary(t)
	case *VariableDeclarations:
		return v.VisitVariableDeclarations(t)
	case *WhileLoop:
		return v.VisitWhileLoop(t)

	default:
		panic(&UnsupportedError{Tree: t})
	}
}

// ErrUnsupported is wrapped by [UnsupportedError].
var ErrUnsupported = errors.New("unsupported syntax tree kind")

// UnsupportedError is raised when a node reaches [Dispatch] that has no [Visitor] method.
type UnsupportedError struct {
	Tree Tree
}

func (e *UnsupportedError) Error() string {
	if e.Tree == nil {
		return ErrUnsupported.Error() + ": <nil>"
	}

	return fmt.Sprintf("%v: %T", ErrUnsupported, e.Tree)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
