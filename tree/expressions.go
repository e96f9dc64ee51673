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

// Identifier is a name. Binding is the variable it denotes, nil for names of
// types, methods, packages, labels and other non-variables.
type Identifier struct {
	expr
	Name    string
	Binding *Binding
}

// Literal is a constant; Value is its source text.
type Literal struct {
	expr
	Value string
}

// Assignment is "Variable = Value".
type Assignment struct {
	exprStmt
	Variable Expression
	Value    Expression
}

// CompoundAssignment is "Variable Operator= Value".
type CompoundAssignment struct {
	exprStmt
	Operator Operator
	Variable Expression
	Value    Expression
}

// Unary applies Operator to Expression.
type Unary struct {
	exprStmt
	Operator   Operator
	Expression Expression
}

// Binary is "Left Operator Right".
type Binary struct {
	expr
	Operator Operator
	Left     Expression
	Right    Expression
}

// Ternary is "Condition ? TruePart : FalsePart".
type Ternary struct {
	expr
	Condition Expression
	TruePart  Expression
	FalsePart Expression
}

// Parentheses is a parenthesized expression.
type Parentheses struct {
	expr
	Tree Expression
}

// ControlParentheses is the condition or selector of a control statement.
type ControlParentheses struct {
	expr
	Tree Expression
}

// FieldAccess is "Target.Name".
type FieldAccess struct {
	expr
	Target Expression
	Name   *Identifier
}

// ArrayAccess is "Indexed[Index]".
type ArrayAccess struct {
	expr
	Indexed Expression
	Index   Expression
}

// MethodInvocation is "Select.Name(Arguments...)".
//
// Select is nil for unqualified calls. Name is nil when the callee is computed,
// in which case Select holds the function expression.
type MethodInvocation struct {
	exprStmt
	Select    Expression
	Name      *Identifier
	Arguments []Expression
}

// MemberReference is "Containing::Reference", a method value.
type MemberReference struct {
	expr
	Containing Expression
	Reference  *Identifier
}

// NewClass allocates an object: "Enclosing.new Class(Arguments...) Body".
//
// Enclosing and Body are optional; Body is the member list of an anonymous class.
type NewClass struct {
	exprStmt
	Enclosing Expression
	Class     Expression
	Arguments []Expression
	Body      *Block
}

// NewArray allocates an array, either sized by Dimensions or filled from Initializer.
type NewArray struct {
	expr
	Type        Expression
	Dimensions  []Expression
	Initializer []Expression
}

// TypeCast converts Expression to Class.
type TypeCast struct {
	expr
	Class      Expression
	Expression Expression
}

// InstanceOf tests whether Expression has type Class.
type InstanceOf struct {
	expr
	Expression Expression
	Class      Expression
}

// Lambda is a function literal. Body is either an [Expression] or a *[Block].
type Lambda struct {
	expr
	Parameters []*Identifier
	Body       Tree
}

func (*Identifier) Kind() Kind         { return KindIdentifier }
func (*Literal) Kind() Kind            { return KindLiteral }
func (*Assignment) Kind() Kind         { return KindAssignment }
func (*CompoundAssignment) Kind() Kind { return KindCompoundAssignment }
func (*Unary) Kind() Kind              { return KindUnary }
func (*Binary) Kind() Kind             { return KindBinary }
func (*Ternary) Kind() Kind            { return KindTernary }
func (*Parentheses) Kind() Kind        { return KindParentheses }
func (*ControlParentheses) Kind() Kind { return KindControlParentheses }
func (*FieldAccess) Kind() Kind        { return KindFieldAccess }
func (*ArrayAccess) Kind() Kind        { return KindArrayAccess }
func (*MethodInvocation) Kind() Kind   { return KindMethodInvocation }
func (*MemberReference) Kind() Kind    { return KindMemberReference }
func (*NewClass) Kind() Kind           { return KindNewClass }
func (*NewArray) Kind() Kind           { return KindNewArray }
func (*TypeCast) Kind() Kind           { return KindTypeCast }
func (*InstanceOf) Kind() Kind         { return KindInstanceOf }
func (*Lambda) Kind() Kind             { return KindLambda }
