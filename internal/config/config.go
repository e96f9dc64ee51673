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

package config

// CheckFlags represents specific checks.
type CheckFlags uint8

const (
	// LoopConditionCheck reports loop conditions that the loop body never changes.
	LoopConditionCheck CheckFlags = 1 << iota

	// ParametersCheck reports reassigned function parameters and receivers.
	ParametersCheck
)

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to include analysis of generated files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// Checks is the set of enabled checks.
type Checks = BitMask[CheckFlags]

// Behavior holds behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultChecks returns the checks enabled by default.
func DefaultChecks() Checks {
	return NewBitMask(LoopConditionCheck)
}

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return NewBitMask[BehaviorFlags]()
}
