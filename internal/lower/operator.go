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

package lower

import (
	"go/token"

	"fillmore-labs.com/writeguard/tree"
)

var binaryOperators = map[token.Token]tree.Operator{
	token.ADD:     tree.OperatorAdd,
	token.SUB:     tree.OperatorSubtract,
	token.MUL:     tree.OperatorMultiply,
	token.QUO:     tree.OperatorDivide,
	token.REM:     tree.OperatorModulo,
	token.AND:     tree.OperatorBitAnd,
	token.OR:      tree.OperatorBitOr,
	token.XOR:     tree.OperatorBitXor,
	token.AND_NOT: tree.OperatorAndNot,
	token.SHL:     tree.OperatorShiftLeft,
	token.SHR:     tree.OperatorShiftRight,
	token.LAND:    tree.OperatorAnd,
	token.LOR:     tree.OperatorOr,
	token.EQL:     tree.OperatorEqual,
	token.NEQ:     tree.OperatorNotEqual,
	token.LSS:     tree.OperatorLess,
	token.LEQ:     tree.OperatorLessOrEqual,
	token.GTR:     tree.OperatorGreater,
	token.GEQ:     tree.OperatorGreaterOrEqual,
}

var unaryOperators = map[token.Token]tree.Operator{
	token.ADD:   tree.OperatorPositive,
	token.SUB:   tree.OperatorNegative,
	token.NOT:   tree.OperatorNot,
	token.XOR:   tree.OperatorComplement,
	token.AND:   tree.OperatorAddressOf,
	token.ARROW: tree.OperatorReceive,
}

func binaryOperator(tok token.Token) (tree.Operator, bool) {
	op, ok := binaryOperators[tok]

	return op, ok
}

// compoundOperator maps "op=" to op.
func compoundOperator(tok token.Token) (tree.Operator, bool) {
	// go/token orders the assignment operators like their binary counterparts.
	if token.ADD_ASSIGN <= tok && tok <= token.AND_NOT_ASSIGN {
		return binaryOperator(tok + (token.ADD - token.ADD_ASSIGN))
	}

	return tree.OperatorInvalid, false
}

func unaryOperator(tok token.Token) (tree.Operator, bool) {
	op, ok := unaryOperators[tok]

	return op, ok
}
