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

package tree_test

import (
	"reflect"
	"testing"

	. "fillmore-labs.com/writeguard/tree"
)

func TestPreorder(t *testing.T) {
	t.Parallel()

	v := NewBinding("v")

	// if (v) { v = 1; } else ;
	root := &If{
		Condition: &ControlParentheses{Tree: &Identifier{Name: "v", Binding: v}},
		Then: &Block{Statements: []Statement{
			&Assignment{Variable: &Identifier{Name: "v", Binding: v}, Value: &Literal{Value: "1"}},
		}},
		Else: &Else{Body: &Empty{}},
	}

	var got []Kind
	for n := range Preorder(root) {
		got = append(got, n.Kind())
	}

	want := []Kind{
		KindIf,
		KindControlParentheses, KindIdentifier,
		KindBlock, KindAssignment, KindIdentifier, KindLiteral,
		KindElse, KindEmpty,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Preorder = %v, want %v", got, want)
	}
}

func TestPreorderStop(t *testing.T) {
	t.Parallel()

	root := &Block{Statements: []Statement{&Empty{}, &Empty{}, &Empty{}}}

	count := 0
	for range Preorder(root) {
		count++
		if count == 2 {
			break
		}
	}

	if count != 2 {
		t.Errorf("Expected iteration to stop after 2 nodes, got %d", count)
	}
}

func TestInspectSkip(t *testing.T) {
	t.Parallel()

	// f(g(x), y)
	root := &MethodInvocation{
		Name: &Identifier{Name: "f"},
		Arguments: []Expression{
			&MethodInvocation{Name: &Identifier{Name: "g"}, Arguments: []Expression{&Identifier{Name: "x"}}},
			&Identifier{Name: "y"},
		},
	}

	var names []string

	Inspect(root, func(n Tree) bool {
		switch n := n.(type) {
		case *Identifier:
			names = append(names, n.Name)

		case *MethodInvocation:
			return n.Name.Name != "g"
		}

		return true
	})

	if want := []string{"f", "y"}; !reflect.DeepEqual(names, want) {
		t.Errorf("Inspect visited %v, want %v", names, want)
	}
}

func TestChildrenOmitsAbsent(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		tree Tree
		want int
	}{
		{"bare_return", &Return{}, 0},
		{"if_without_else", &If{Condition: &ControlParentheses{Tree: &Literal{Value: "true"}}, Then: &Empty{}}, 2},
		{"tagless_switch", &Switch{Cases: &Block{}}, 1},
		{"try_without_finally", &Try{Body: &Block{}, Catches: []*Catch{{Body: &Block{}}}}, 2},
		{"declaration_without_type", &VariableDeclarations{Variables: []*NamedVariable{{Name: &Identifier{Name: "x"}}}}, 1},
		{"unqualified_call", &MethodInvocation{Name: &Identifier{Name: "f"}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Children(tt.tree); len(got) != tt.want {
				t.Errorf("Got %d children %v, want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestOperator(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		op                  Operator
		str                 string
		binary, unary, step bool
	}{
		{OperatorAdd, "+", true, false, false},
		{OperatorAndNot, "&^", true, false, false},
		{OperatorGreaterOrEqual, ">=", true, false, false},
		{OperatorNegative, "-", false, true, false},
		{OperatorPreIncrement, "++", false, true, true},
		{OperatorPostDecrement, "--", false, true, true},
		{OperatorAddressOf, "&", false, true, false},
		{OperatorReceive, "<-", false, true, false},
		{OperatorInvalid, "invalid", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			t.Parallel()

			if got := tt.op.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}

			if got := tt.op.Binary(); got != tt.binary {
				t.Errorf("Binary() = %t, want %t", got, tt.binary)
			}

			if got := tt.op.Unary(); got != tt.unary {
				t.Errorf("Unary() = %t, want %t", got, tt.unary)
			}

			if got := tt.op.Step(); got != tt.step {
				t.Errorf("Step() = %t, want %t", got, tt.step)
			}
		})
	}
}

func TestBindingIdentity(t *testing.T) {
	t.Parallel()

	a, b := NewBinding("x"), NewBinding("x")

	if a == b {
		t.Error("Expected distinct bindings for two declarations of the same name")
	}

	if got := a.String(); got != "x" {
		t.Errorf("String() = %q, want %q", got, "x")
	}

	var null *Binding
	if got := null.Name(); got != "<nil>" {
		t.Errorf("Name() of nil = %q, want %q", got, "<nil>")
	}
}

func TestPreorderDeep(t *testing.T) {
	t.Parallel()

	const depth = 100_000

	var root Expression = &Identifier{Name: "v"}
	for range depth {
		root = &Parentheses{Tree: root}
	}

	count := 0
	for range Preorder(root) {
		count++
	}

	if count != depth+1 {
		t.Errorf("Preorder visited %d nodes, want %d", count, depth+1)
	}
}
