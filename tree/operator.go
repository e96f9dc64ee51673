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

// Operator is the operator of a [Unary], [Binary] or [CompoundAssignment] node.
type Operator uint8

//go:generate go tool stringer -type Operator -linecomment
const (
	OperatorInvalid Operator = iota // invalid

	// Binary operators.

	OperatorAdd                // +
	OperatorSubtract           // -
	OperatorMultiply           // *
	OperatorDivide             // /
	OperatorModulo             // %
	OperatorBitAnd             // &
	OperatorBitOr              // |
	OperatorBitXor             // ^
	OperatorAndNot             // &^
	OperatorShiftLeft          // <<
	OperatorShiftRight         // >>
	OperatorUnsignedShiftRight // >>>
	OperatorAnd                // &&
	OperatorOr                 // ||
	OperatorEqual              // ==
	OperatorNotEqual           // !=
	OperatorLess               // <
	OperatorLessOrEqual        // <=
	OperatorGreater            // >
	OperatorGreaterOrEqual     // >=

	// Unary operators.

	OperatorPositive      // +
	OperatorNegative      // -
	OperatorNot           // !
	OperatorComplement    // ^
	OperatorPreIncrement  // ++
	OperatorPreDecrement  // --
	OperatorPostIncrement // ++
	OperatorPostDecrement // --
	OperatorAddressOf     // &
	OperatorDereference   // *
	OperatorReceive       // <-
)

// Binary reports whether o combines two operands.
func (o Operator) Binary() bool {
	return OperatorAdd <= o && o <= OperatorGreaterOrEqual
}

// Unary reports whether o applies to a single operand.
func (o Operator) Unary() bool {
	return OperatorPositive <= o && o <= OperatorReceive
}

// Step reports whether o is an increment or decrement, which both reads and writes its operand.
func (o Operator) Step() bool {
	return OperatorPreIncrement <= o && o <= OperatorPostDecrement
}
