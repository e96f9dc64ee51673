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

// Tree is implemented by every syntax node.
type Tree interface {
	// Kind returns the node's kind.
	Kind() Kind
	aTree()
}

// Expression is implemented by nodes that yield a value.
type Expression interface {
	Tree
	aExpr()
}

// Statement is implemented by nodes that can appear in a statement list.
//
// Some nodes, like assignments and method invocations, are both.
type Statement interface {
	Tree
	aStmt()
}

// node is embedded in all syntax nodes.
type node struct{}

func (*node) aTree() {}

// expr is embedded in expression nodes.
type expr struct{ node }

func (*expr) aExpr() {}

// stmt is embedded in statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// exprStmt is embedded in nodes usable both as expression and as statement.
type exprStmt struct{ node }

func (*exprStmt) aExpr() {}
func (*exprStmt) aStmt() {}

// Binding is the identity of one variable declaration.
//
// Bindings are compared by pointer. The name is informational, two different
// declarations of "x" have two different bindings.
type Binding struct {
	name string
}

// NewBinding returns a fresh binding that compares unequal to all others.
func NewBinding(name string) *Binding {
	return &Binding{name: name}
}

// Name returns the declared name.
func (b *Binding) Name() string {
	if b == nil {
		return "<nil>"
	}

	return b.name
}

// String implements [fmt.Stringer].
func (b *Binding) String() string { return b.Name() }
