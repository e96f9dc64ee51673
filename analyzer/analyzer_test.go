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

package analyzer_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	. "fillmore-labs.com/writeguard/analyzer"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	testdata := analysistest.TestData()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "./a",
		},
		{
			name:    "Parameters",
			dir:     "./params",
			options: Options{WithLoopCondition(false), WithParameters(true)},
		},
		{
			name:    "Generated",
			dir:     "./generated",
			options: WithGenerated(true),
		},
		{
			name:    "MaxDepth",
			dir:     "./maxdepth",
			options: WithMaxDepth(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			analysistest.Run(t, testdata, a, tt.dir)
		})
	}
}

func TestOptionsLogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithParameters(true), nil, Options{WithMaxDepth(5)}}

	if got, want := opts.LogValue().String(), "[parameters=true nil=<nil> max-depth=5]"; got != want {
		t.Errorf("LogValue() = %q, want %q", got, want)
	}

	if got, want := WithGenerated(true).LogAttr().String(), "generated=true"; got != want {
		t.Errorf("LogAttr() = %q, want %q", got, want)
	}
}
