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

// Block is a statement sequence.
type Block struct {
	stmt
	Statements []Statement
}

// If is "if Condition Then else Else". Else is optional.
type If struct {
	stmt
	Condition *ControlParentheses
	Then      Statement
	Else      *Else
}

// Else is the else part of an [If].
type Else struct {
	node
	Body Statement
}

// WhileLoop is "while Condition Body".
type WhileLoop struct {
	stmt
	Condition *ControlParentheses
	Body      Statement
}

// DoWhileLoop is "do Body while Condition".
type DoWhileLoop struct {
	stmt
	Body      Statement
	Condition *ControlParentheses
}

// ForLoop is "for Control Body".
type ForLoop struct {
	stmt
	Control *ForLoopControl
	Body    Statement
}

// ForLoopControl is "Init; Condition; Update". Condition is optional.
type ForLoopControl struct {
	node
	Init      []Statement
	Condition Expression
	Update    []Statement
}

// ForEachLoop is "for Control Body".
type ForEachLoop struct {
	stmt
	Control *ForEachControl
	Body    Statement
}

// ForEachControl binds Variables to the elements of Iterable.
//
// Each variable is either a *[VariableDeclarations], declaring fresh variables,
// or an [Expression] naming an existing storage location that is assigned.
type ForEachControl struct {
	node
	Variables []Tree
	Iterable  Expression
}

// Switch selects one of Cases. Selector is nil for a condition-less switch.
type Switch struct {
	stmt
	Selector *ControlParentheses
	Cases    *Block
}

// Case is one case of a [Switch]; a default case has no Labels.
type Case struct {
	stmt
	Labels     []Expression
	Statements []Statement
}

// Try is "try (Resources) Body Catches finally Finally". Finally is optional.
type Try struct {
	stmt
	Resources []*TryResource
	Body      *Block
	Catches   []*Catch
	Finally   *Block
}

// TryResource is a resource of a [Try], a *[VariableDeclarations] or an [Expression].
type TryResource struct {
	node
	Declaration Tree
}

// Catch is a catch clause of a [Try].
type Catch struct {
	Parameter *VariableDeclarations
	Body      *Block
}

// Synchronized is "synchronized Lock Body".
type Synchronized struct {
	stmt
	Lock *ControlParentheses
	Body *Block
}

// Label is "Name: Statement".
type Label struct {
	stmt
	Name      *Identifier
	Statement Statement
}

// Break leaves a loop or switch. Label is optional.
type Break struct {
	stmt
	Label *Identifier
}

// Continue starts the next loop iteration. Label is optional.
type Continue struct {
	stmt
	Label *Identifier
}

// Empty is the empty statement.
type Empty struct {
	stmt
}

// Throw raises Exception.
type Throw struct {
	stmt
	Exception Expression
}

// Return leaves the enclosing function. Expressions is empty for a bare return.
type Return struct {
	stmt
	Expressions []Expression
}

// Assert checks Condition; Detail is optional and only evaluated when the assertion fails.
type Assert struct {
	stmt
	Condition Expression
	Detail    Expression
}

// VariableDeclarations declares Variables of type Type. Type is optional.
type VariableDeclarations struct {
	stmt
	Type      Expression
	Variables []*NamedVariable
}

// NamedVariable is one variable of [VariableDeclarations]. Initializer is optional.
type NamedVariable struct {
	Name        *Identifier
	Initializer Expression
}

// EnumValueSet is the constant list of an enumeration.
type EnumValueSet struct {
	stmt
	Enums []*EnumValue
}

// EnumValue is one enumeration constant. Initializer is optional.
type EnumValue struct {
	Name        *Identifier
	Initializer Expression
}

// MethodDeclaration declares a method in a class body. Body is nil for abstract methods.
type MethodDeclaration struct {
	stmt
	Name       *Identifier
	Parameters []*Identifier
	Body       *Block
}

func (*Block) Kind() Kind                { return KindBlock }
func (*If) Kind() Kind                   { return KindIf }
func (*Else) Kind() Kind                 { return KindElse }
func (*WhileLoop) Kind() Kind            { return KindWhileLoop }
func (*DoWhileLoop) Kind() Kind          { return KindDoWhileLoop }
func (*ForLoop) Kind() Kind              { return KindForLoop }
func (*ForLoopControl) Kind() Kind       { return KindForLoopControl }
func (*ForEachLoop) Kind() Kind          { return KindForEachLoop }
func (*ForEachControl) Kind() Kind       { return KindForEachControl }
func (*Switch) Kind() Kind               { return KindSwitch }
func (*Case) Kind() Kind                 { return KindCase }
func (*Try) Kind() Kind                  { return KindTry }
func (*TryResource) Kind() Kind          { return KindTryResource }
func (*Synchronized) Kind() Kind         { return KindSynchronized }
func (*Label) Kind() Kind                { return KindLabel }
func (*Break) Kind() Kind                { return KindBreak }
func (*Continue) Kind() Kind             { return KindContinue }
func (*Empty) Kind() Kind                { return KindEmpty }
func (*Throw) Kind() Kind                { return KindThrow }
func (*Return) Kind() Kind               { return KindReturn }
func (*Assert) Kind() Kind               { return KindAssert }
func (*VariableDeclarations) Kind() Kind { return KindVariableDeclarations }
func (*EnumValueSet) Kind() Kind         { return KindEnumValueSet }
func (*MethodDeclaration) Kind() Kind    { return KindMethodDeclaration }
