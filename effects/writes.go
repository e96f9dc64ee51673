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

import (
	"fmt"

	"fillmore-labs.com/writeguard/tree"
)

// DefaultMaxDepth is the nesting depth analyzed when [Analysis.MaxDepth] is unset.
const DefaultMaxDepth = 10_000

// Analysis is a configured write-effect analysis. The zero value is ready to use.
//
// An Analysis holds no state between calls and may be used concurrently.
type Analysis struct {
	// MaxDepth bounds the syntactic nesting depth the analysis descends into.
	// Deeper trees are reported as writing. Values <= 0 select [DefaultMaxDepth].
	MaxDepth int
}

// Writes reports whether evaluating t may write v.
//
// Writes panics with a *[tree.UnsupportedError] when it reaches a node kind
// without a rule; use [Check] to get an error instead.
func Writes(t tree.Tree, v *tree.Binding) bool {
	return Analysis{}.Writes(t, v)
}

// Check is like [Writes], but returns an error wrapping [tree.ErrUnsupported]
// when the tree contains a node kind without a rule. In that case the result is
// true: the analysis is inapplicable, and nothing may rely on the absence of a write.
func Check(t tree.Tree, v *tree.Binding) (bool, error) {
	return Analysis{}.Check(t, v)
}

// Writes reports whether evaluating t may write v.
func (a Analysis) Writes(t tree.Tree, v *tree.Binding) bool {
	w := writes{v: v, maxDepth: a.maxDepth()}

	return w.writes(t)
}

// Check is like [Analysis.Writes], but converts unsupported node kinds into an error.
func (a Analysis) Check(t tree.Tree, v *tree.Binding) (result bool, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		u, ok := r.(*tree.UnsupportedError)
		if !ok {
			panic(r)
		}

		result, err = true, fmt.Errorf("write effect of %q: %w", v.Name(), u)
	}()

	return a.Writes(t, v), nil
}

func (a Analysis) maxDepth() int {
	if a.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return a.MaxDepth
}

// writes is the state of one analysis call: the variable and the current depth.
type writes struct {
	v        *tree.Binding
	depth    int
	maxDepth int
}

// writes is the general entry point: may evaluating t write w.v?
func (w *writes) writes(t tree.Tree) bool {
	if w.depth >= w.maxDepth {
		return true
	}

	w.depth++
	defer func() { w.depth-- }()

	return tree.Dispatch[bool](t, w)
}

// writesAsSide decides whether t, occurring in the role side, is itself a write of w.v.
//
// Receivers and indexes of accesses are evaluated as reads regardless of side;
// other nodes fall back to [writes.writes].
func (w *writes) writesAsSide(t tree.Expression, side Side) bool {
	if w.depth >= w.maxDepth {
		return true
	}

	switch t := t.(type) {
	case *tree.Identifier:
		return side == LValue && w.v != nil && t.Binding == w.v

	case *tree.FieldAccess:
		// Writing a field mutates the object, not the variable holding the reference.
		return w.writes(t.Target)

	case *tree.ArrayAccess:
		// Likewise for array slots.
		return w.writes(t.Indexed) || w.writes(t.Index)

	case *tree.Parentheses:
		w.depth++
		defer func() { w.depth-- }()

		return w.writesAsSide(t.Tree, side)

	case *tree.ControlParentheses:
		w.depth++
		defer func() { w.depth-- }()

		return w.writesAsSide(t.Tree, side)

	default:
		return w.writes(t)
	}
}

// anyWrites reports whether any of ts may write w.v, stopping at the first that does.
func anyWrites[T tree.Tree](w *writes, ts []T) bool {
	for _, t := range ts {
		if w.writes(t) {
			return true
		}
	}

	return false
}
