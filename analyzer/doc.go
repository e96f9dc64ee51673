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

// Package analyzer implements the writeguard static analysis pass.
//
// # Overview
//
// WriteGuard decides, for a local variable and a piece of code, whether
// running the code may assign the variable. It uses this to find loops that
// cannot terminate by their condition.
//
// # Example
//
//	func drain(queue []int) {
//	    n := len(queue)
//	    for n > 0 {  // loop condition "n > 0" never changes inside the loop
//	        process(queue[0])
//	        queue = queue[1:]
//	    }
//	}
//
// Fixed:
//
//	    for n > 0 {
//	        process(queue[0])
//	        queue = queue[1:]
//	        n--
//	    }
//
// # Checks
//
//   - loop conditions (-loopcond, on by default): a for loop whose condition
//     only reads local variables that no iteration writes, and that has no other
//     way out of the loop.
//   - parameters (-params, off by default): function parameters and receivers
//     that the function body reassigns.
//
// Variables whose address is taken or that function literals capture are
// never reported, since they can change without being named.
//
// Findings can be suppressed with a //nolint:writeguard comment on the line,
// the function declaration or the file.
package analyzer
