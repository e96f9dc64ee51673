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

package treetest

import "fillmore-labs.com/writeguard/tree"

// Sample is a tree together with whether it may write the variable the corpus was built for.
type Sample struct {
	Name   string
	Tree   tree.Tree
	Writes bool
}

// Corpus returns samples covering every node kind, built around the variable v.
func Corpus(v *tree.Binding) []Sample {
	var (
		w      = tree.NewBinding("w")
		arr    = tree.NewBinding("arr")
		o      = tree.NewBinding("o")
		x      = tree.NewBinding("x")
		shadow = tree.NewBinding(v.Name()) // same name, different declaration
	)

	setV := func() *tree.Assignment { return Assign(Var(v), Lit("1")) }
	setW := func() *tree.Assignment { return Assign(Var(w), Lit("1")) }

	return []Sample{
		// Assignments
		{"assign", setV(), true},
		{"assign_other", Assign(Var(w), Var(v)), false},
		{"assign_paren_target", Assign(Paren(Var(v)), Lit("1")), true},
		{"assign_in_value", Assign(Var(w), Paren(setV())), true},
		{"assign_shadow", Assign(Var(shadow), Lit("1")), false},
		{"compound", AssignOp(tree.OperatorAdd, Var(v), Lit("1")), true},
		{"compound_other", AssignOp(tree.OperatorAdd, Var(w), Var(v)), false},
		{"compound_in_value", AssignOp(tree.OperatorMultiply, Var(w), Paren(setV())), true},

		// Steps
		{"post_increment", Unary(tree.OperatorPostIncrement, Var(v)), true},
		{"pre_increment", Unary(tree.OperatorPreIncrement, Var(v)), true},
		{"post_decrement", Unary(tree.OperatorPostDecrement, Var(v)), true},
		{"pre_decrement", Unary(tree.OperatorPreDecrement, Paren(Var(v))), true},
		{"increment_other", Unary(tree.OperatorPostIncrement, Var(w)), false},
		{"increment_element", Unary(tree.OperatorPostIncrement, Index(Var(v), Lit("0"))), false},
		{"increment_index", Unary(tree.OperatorPreIncrement, Index(Var(arr), Paren(setV()))), true},
		{"negate", Unary(tree.OperatorNegative, Var(v)), false},
		{"not_assign", Unary(tree.OperatorNot, Paren(setV())), true},
		{"address_of", Unary(tree.OperatorAddressOf, Var(v)), false},

		// Accesses
		{"identifier", Var(v), false},
		{"index_assign", Index(Var(arr), Paren(setV())), true},
		{"index_read", Index(Var(v), Var(v)), false},
		{"element_store", Assign(Index(Var(arr), Var(x)), Var(v)), false},
		{"element_store_of_v", Assign(Index(Var(v), Lit("0")), Lit("1")), false},
		{"element_store_index", Assign(Index(Var(arr), Unary(tree.OperatorPostIncrement, Var(v))), Lit("0")), true},
		{"element_store_array", Assign(Index(Paren(setV()), Lit("0")), Lit("0")), true},
		{"field_store", Assign(Field(Var(v), "f"), Lit("1")), false},
		{"field_store_receiver", Assign(Field(Paren(setV()), "f"), Lit("1")), true},
		{"field_read", Field(Paren(setV()), "f"), true},
		{"literal", Lit("42"), false},

		// Operators
		{"binary", Binary(tree.OperatorAdd, Var(v), Lit("1")), false},
		{"binary_right", Binary(tree.OperatorAdd, Var(w), Paren(setV())), true},
		{"binary_short_circuit", Binary(tree.OperatorAnd, Lit("false"), Paren(setV())), true},
		{"ternary", &tree.Ternary{Condition: Var(x), TruePart: setV(), FalsePart: Lit("0")}, true},
		{"ternary_read", &tree.Ternary{Condition: Var(v), TruePart: Var(v), FalsePart: Var(v)}, false},
		{"cast", &tree.TypeCast{Class: Name("T"), Expression: Paren(setV())}, true},
		{"cast_read", &tree.TypeCast{Class: Name("T"), Expression: Var(v)}, false},
		{"instanceof", &tree.InstanceOf{Expression: Paren(setV()), Class: Name("T")}, true},
		{"instanceof_read", &tree.InstanceOf{Expression: Var(v), Class: Name("T")}, false},
		{"control_parentheses", Cond(setV()), true},

		// Calls and allocations
		{"call_read", Call(nil, "f", Var(v)), false},
		{"call_assign", Call(nil, "f", Assign(Var(v), Lit("2"))), true},
		{"call_select", Call(Paren(Assign(Var(v), Var(o))), "m"), true},
		{"call_receiver", Call(Var(v), "m"), false},
		{"member_reference", &tree.MemberReference{Containing: Paren(Assign(Var(v), Var(o))), Reference: Name("m")}, true},
		{"member_reference_read", &tree.MemberReference{Containing: Var(v), Reference: Name("m")}, false},
		{"new_class", &tree.NewClass{Class: Name("C"), Arguments: []tree.Expression{setV()}}, true},
		{"new_class_read", &tree.NewClass{Class: Name("C"), Arguments: []tree.Expression{Var(v)}}, false},
		{"new_class_enclosing", &tree.NewClass{Enclosing: Paren(Assign(Var(v), Var(o))), Class: Name("C")}, true},
		{"new_class_body", &tree.NewClass{Class: Name("C"), Body: Block(Block(setV()))}, true},
		{"new_class_method", &tree.NewClass{Class: Name("C"), Body: Block(
			&tree.MethodDeclaration{Name: Name("run"), Body: Block(setV())},
		)}, false},
		{"new_array_dimension", &tree.NewArray{Type: Name("int"), Dimensions: []tree.Expression{Assign(Var(v), Lit("3"))}}, true},
		{"new_array_initializer", &tree.NewArray{Type: Name("int"), Initializer: []tree.Expression{Lit("0"), setV()}}, true},
		{"new_array_read", &tree.NewArray{Type: Name("int"), Initializer: []tree.Expression{Var(v)}}, false},
		{"lambda_expression", &tree.Lambda{Body: setV()}, true},
		{"lambda_block", &tree.Lambda{Body: Block(setV())}, false},
		{"lambda_parameter", &tree.Lambda{Parameters: []*tree.Identifier{Var(shadow)}, Body: Assign(Var(shadow), Lit("1"))}, false},
		{"method_declaration", &tree.MethodDeclaration{Name: Name("m"), Parameters: []*tree.Identifier{Var(x)}, Body: Block(setV())}, false},
		{"enum", &tree.EnumValueSet{Enums: []*tree.EnumValue{
			{Name: Name("A")},
			{Name: Name("B"), Initializer: &tree.NewClass{Class: Name("E"), Arguments: []tree.Expression{setV()}}},
		}}, true},
		{"enum_read", &tree.EnumValueSet{Enums: []*tree.EnumValue{
			{Name: Name("A"), Initializer: &tree.NewClass{Class: Name("E"), Arguments: []tree.Expression{Var(v)}}},
		}}, false},

		// Statements
		{"block", Block(setW(), setV()), true},
		{"block_read", Block(setW(), Assign(Var(w), Var(v))), false},
		{"empty", &tree.Empty{}, false},
		{"declaration", Decl("int", Var(x), setV()), true},
		{"declaration_of_v", Decl("int", Var(v), Lit("1")), false},
		{"declaration_without_initializer", Decl("int", Var(x), nil), false},
		{"label", &tree.Label{Name: Name("outer"), Statement: Block(setV())}, true},
		{"label_empty", &tree.Label{Name: Name("outer"), Statement: &tree.Empty{}}, false},
		{"break", &tree.Break{Label: Name("outer")}, false},
		{"continue", &tree.Continue{}, false},
		{"return", &tree.Return{}, false},
		{"return_assign", &tree.Return{Expressions: []tree.Expression{Var(w), setV()}}, true},
		{"return_read", &tree.Return{Expressions: []tree.Expression{Var(v)}}, false},
		{"throw", &tree.Throw{Exception: Paren(Assign(Var(v), Var(o)))}, true},
		{"throw_read", &tree.Throw{Exception: Var(v)}, false},
		{"assert", &tree.Assert{Condition: Binary(tree.OperatorGreater, Var(v), Lit("0"))}, false},
		{"assert_condition", &tree.Assert{Condition: Paren(setV())}, true},
		{"assert_detail", &tree.Assert{Condition: Var(x), Detail: setV()}, true},

		// Control flow
		{"if_false", If(Lit("false"), Block(setV()), nil), true},
		{"if_else", If(Var(x), Block(), Block(setV())), true},
		{"if_condition", If(Paren(setV()), &tree.Empty{}, nil), true},
		{"if_read", If(Var(v), Block(Assign(Var(w), Var(v))), Block()), false},
		{"else", &tree.Else{Body: setV()}, true},
		{"while_false", While(Lit("false"), Block(setV())), true},
		{"while_condition", While(Binary(tree.OperatorLess, Unary(tree.OperatorPostIncrement, Var(v)), Lit("10")), &tree.Empty{}), true},
		{"while_read", While(Binary(tree.OperatorLess, Var(v), Lit("10")), Block(Unary(tree.OperatorPostIncrement, Var(w)))), false},
		{"do_while", &tree.DoWhileLoop{Body: Block(setV()), Condition: Cond(Lit("false"))}, true},
		{"do_while_condition", &tree.DoWhileLoop{
			Body:      Block(),
			Condition: Cond(Binary(tree.OperatorNotEqual, Paren(Assign(Var(v), Call(nil, "next"))), Lit("null"))),
		}, true},
		{"for", &tree.ForLoop{
			Control: &tree.ForLoopControl{
				Init:      []tree.Statement{Decl("int", Var(x), Lit("0"))},
				Condition: Binary(tree.OperatorLess, Var(x), Var(v)),
				Update:    []tree.Statement{Unary(tree.OperatorPostIncrement, Var(x))},
			},
			Body: Block(Assign(Var(w), Var(v))),
		}, false},
		{"for_init", &tree.ForLoop{Control: &tree.ForLoopControl{Init: []tree.Statement{setV()}}, Body: Block()}, true},
		{"for_update", &tree.ForLoop{Control: &tree.ForLoopControl{Update: []tree.Statement{Unary(tree.OperatorPostIncrement, Var(v))}}, Body: Block()}, true},
		{"for_condition", &tree.ForLoop{Control: &tree.ForLoopControl{Condition: Paren(setV())}, Body: Block()}, true},
		{"for_body", &tree.ForLoop{Control: &tree.ForLoopControl{}, Body: Block(setV())}, true},
		{"for_control", &tree.ForLoopControl{Update: []tree.Statement{AssignOp(tree.OperatorSubtract, Var(v), Lit("1"))}}, true},
		{"foreach_declared", &tree.ForEachLoop{
			Control: &tree.ForEachControl{Variables: []tree.Tree{Decl("int", Var(x), nil)}, Iterable: Var(v)},
			Body:    Block(Assign(Var(w), Var(x))),
		}, false},
		{"foreach_body", &tree.ForEachLoop{
			Control: &tree.ForEachControl{Variables: []tree.Tree{Decl("int", Var(x), nil)}, Iterable: Var(arr)},
			Body:    Block(Assign(Var(v), Var(x))),
		}, true},
		{"foreach_existing", &tree.ForEachLoop{
			Control: &tree.ForEachControl{Variables: []tree.Tree{Var(v)}, Iterable: Var(arr)},
			Body:    Block(),
		}, true},
		{"foreach_element", &tree.ForEachControl{Variables: []tree.Tree{Index(Var(v), Lit("0"))}, Iterable: Var(arr)}, false},
		{"foreach_iterable", &tree.ForEachControl{Variables: []tree.Tree{Var(x)}, Iterable: Paren(Assign(Var(v), Var(arr)))}, true},
		{"switch_case", &tree.Switch{
			Selector: Cond(Var(v)),
			Cases: Block(
				&tree.Case{Labels: []tree.Expression{Lit("1")}, Statements: []tree.Statement{&tree.Break{}}},
				&tree.Case{Labels: []tree.Expression{Lit("2")}, Statements: []tree.Statement{Assign(Var(v), Lit("2"))}},
			),
		}, true},
		{"switch_selector", &tree.Switch{Selector: Cond(Paren(setV())), Cases: Block()}, true},
		{"switch_read", &tree.Switch{
			Selector: Cond(Var(x)),
			Cases:    Block(&tree.Case{Labels: []tree.Expression{Lit("1")}, Statements: []tree.Statement{Assign(Var(w), Var(v)), &tree.Break{}}}),
		}, false},
		{"switch_tagless", &tree.Switch{Cases: Block(&tree.Case{Statements: []tree.Statement{setV()}})}, true},
		{"case_label", &tree.Case{Labels: []tree.Expression{Paren(setV())}}, true},
		{"try_body", &tree.Try{Body: Block(setV())}, true},
		{"try_resource", &tree.Try{
			Resources: []*tree.TryResource{{Declaration: Decl("R", Var(x), Call(nil, "open", setV()))}},
			Body:      Block(),
		}, true},
		{"try_catch", &tree.Try{
			Body:    Block(),
			Catches: []*tree.Catch{{Parameter: Decl("Exception", Var(x), nil), Body: Block(setV())}},
		}, true},
		{"try_finally", &tree.Try{Body: Block(), Finally: Block(setV())}, true},
		{"try_read", &tree.Try{
			Resources: []*tree.TryResource{{Declaration: Var(v)}},
			Body:      Block(Call(Var(v), "close")),
			Catches:   []*tree.Catch{{Parameter: Decl("Exception", Var(x), nil), Body: Block(&tree.Throw{Exception: Var(x)})}},
			Finally:   Block(Assign(Var(w), Var(v))),
		}, false},
		{"try_resource_node", &tree.TryResource{Declaration: Decl("R", Var(x), setV())}, true},
		{"synchronized", &tree.Synchronized{Lock: Cond(Var(o)), Body: Block(setV())}, true},
		{"synchronized_lock", &tree.Synchronized{Lock: Cond(Paren(Assign(Var(v), Var(o)))), Body: Block()}, true},
		{"synchronized_read", &tree.Synchronized{Lock: Cond(Var(v)), Body: Block()}, false},
	}
}
