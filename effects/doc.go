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

// Package effects decides whether evaluating a syntax tree may write a variable.
//
// The analysis is conservative: [Writes] returns true whenever some sub-tree
// can assign the variable, whether or not control flow reaches it. A false
// result proves the absence of a write, provided the variable is local and not
// captured by reference; calls are assumed to leave such a variable alone.
//
// Every node kind has exactly one rule. The rules combine a side-sensitive
// primitive, deciding whether a node in an assignment target position is the
// variable itself, with structural recursion over the children that are
// evaluated.
//
// # Known inconsistency
//
// A lambda with an expression body is analyzed as if the body ran where the
// lambda is written, while a lambda with a block body is not analyzed at all.
// Both behaviors are kept deliberately; callers needing a sound answer for
// closures must rule out captured variables themselves.
package effects
