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

// Kind identifies the variant of a [Tree].
type Kind uint8

//go:generate go tool stringer -type Kind -trimprefix Kind
const (
	// KindInvalid is the zero Kind, no node has it.
	KindInvalid Kind = iota

	// KindArrayAccess is an indexed access a[i].
	KindArrayAccess

	// KindAssert is an assertion statement.
	KindAssert

	// KindAssignment is a simple assignment t = e.
	KindAssignment

	// KindBinary is a binary operation.
	KindBinary

	// KindBlock is a statement sequence.
	KindBlock

	// KindBreak is a break statement.
	KindBreak

	// KindCase is one case of a switch.
	KindCase

	// KindCompoundAssignment is an assignment with operator, t op= e.
	KindCompoundAssignment

	// KindContinue is a continue statement.
	KindContinue

	// KindControlParentheses is the parenthesized condition of a control statement.
	KindControlParentheses

	// KindDoWhileLoop is a loop testing its condition after the body.
	KindDoWhileLoop

	// KindElse is the else part of an if statement.
	KindElse

	// KindEmpty is the empty statement.
	KindEmpty

	// KindEnumValueSet is the constant list of an enumeration.
	KindEnumValueSet

	// KindFieldAccess is a field selection x.f.
	KindFieldAccess

	// KindForEachControl is the header of a for-each loop.
	KindForEachControl

	// KindForEachLoop is a loop over the elements of an iterable.
	KindForEachLoop

	// KindForLoop is a three-clause loop.
	KindForLoop

	// KindForLoopControl is the header of a three-clause loop.
	KindForLoopControl

	// KindIdentifier is a name.
	KindIdentifier

	// KindIf is an if statement.
	KindIf

	// KindInstanceOf is a type test.
	KindInstanceOf

	// KindLabel is a labeled statement.
	KindLabel

	// KindLambda is a function literal.
	KindLambda

	// KindLiteral is a constant.
	KindLiteral

	// KindMemberReference is a method value x::m.
	KindMemberReference

	// KindMethodDeclaration is a method declared inside a class body.
	KindMethodDeclaration

	// KindMethodInvocation is a call.
	KindMethodInvocation

	// KindNewArray is an array allocation.
	KindNewArray

	// KindNewClass is an object allocation.
	KindNewClass

	// KindParentheses is a parenthesized expression.
	KindParentheses

	// KindReturn is a return statement.
	KindReturn

	// KindSwitch is a switch statement.
	KindSwitch

	// KindSynchronized is a block guarded by a lock.
	KindSynchronized

	// KindTernary is a conditional expression c ? a : b.
	KindTernary

	// KindThrow is a throw or panic.
	KindThrow

	// KindTry is a try statement.
	KindTry

	// KindTryResource is one resource of a try statement.
	KindTryResource

	// KindTypeCast is a conversion or type assertion.
	KindTypeCast

	// KindUnary is a unary operation.
	KindUnary

	// KindVariableDeclarations is a variable declaration statement.
	KindVariableDeclarations

	// KindWhileLoop is a loop testing its condition before the body.
	KindWhileLoop
)
