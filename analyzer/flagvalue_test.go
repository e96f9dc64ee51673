// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
	"flag"
	"io"
	"strings"
	"testing"

	. "fillmore-labs.com/writeguard/analyzer"
	"fillmore-labs.com/writeguard/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CheckFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.LoopConditionCheck,
			args:    []string{"-params"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.ParametersCheck,
			args:    []string{"-params=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Checks
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.ParametersCheck
			fv := NewCheckValue(&flags, value)
			fs.Var(fv, "params", "report reassigned parameters")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("ParametersCheck enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Checks
	flags.Set(config.LoopConditionCheck, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&flags, config.LoopConditionCheck)
	fs.Var(fv, "loopcond", "report loop conditions that never change")

	const expectedUsage = `
  -loopcond
    	report loop conditions that never change (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Checks

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(NewCheckValue(&flags, config.ParametersCheck), "params", "report reassigned parameters")

	if err := fs.Parse([]string{"-params=maybe"}); err == nil {
		t.Error("Expected parse error")
	}

	if flags.Enabled(config.ParametersCheck) {
		t.Error("Expected check to stay disabled")
	}
}

func TestAnalyzerFlags(t *testing.T) {
	t.Parallel()

	a := New()

	for _, name := range [...]string{"generated", "loopcond", "params", "max-depth"} {
		if a.Flags.Lookup(name) == nil {
			t.Errorf("Flag -%s not registered", name)
		}
	}

	if err := a.Flags.Parse([]string{"-loopcond=false", "-params", "-max-depth=100"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := a.Flags.Lookup("params").Value.(flag.Getter).Get(); got != true {
		t.Errorf("params = %v, want true", got)
	}

	if got := a.Flags.Lookup("max-depth").Value.String(); got != "100" {
		t.Errorf("max-depth = %s, want 100", got)
	}
}
