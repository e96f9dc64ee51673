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

package config_test

import (
	"testing"

	. "fillmore-labs.com/writeguard/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(LoopConditionCheck)

	if !b.Enabled(LoopConditionCheck) || b.Enabled(ParametersCheck) {
		t.Fatal("Expected only the loop condition check")
	}

	b.Set(ParametersCheck, true)
	b.Set(LoopConditionCheck, false)

	if b.Enabled(LoopConditionCheck) || !b.Enabled(ParametersCheck) {
		t.Error("Expected only the parameters check")
	}

	if b.Enabled(LoopConditionCheck | ParametersCheck) {
		t.Error("Expected combined flags to require all bits")
	}

	if b.Enabled(0) {
		t.Error("Expected no flag to be disabled")
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	if c := DefaultChecks(); !c.Enabled(LoopConditionCheck) || c.Enabled(ParametersCheck) {
		t.Error("Expected only the loop condition check by default")
	}

	if b := DefaultBehavior(); b.Enabled(IncludeGenerated) {
		t.Error("Expected generated files to be skipped by default")
	}
}
