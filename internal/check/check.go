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

// Package check implements the writeguard checks on top of the write-effect analysis.
package check

import (
	"context"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/writeguard/effects"
	"fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/internal/config"
	"fillmore-labs.com/writeguard/internal/escape"
	"fillmore-labs.com/writeguard/internal/lower"
)

// Checker runs the enabled checks on the function declarations of a package.
type Checker struct {
	pass     *analysis.Pass
	lowerer  *lower.Lowerer
	analysis effects.Analysis
	checks   config.Checks
}

// New creates a [Checker] for the package of p.
func New(p *analysis.Pass, checks config.Checks, maxDepth int) *Checker {
	return &Checker{
		pass:     p,
		lowerer:  lower.New(p.TypesInfo),
		analysis: effects.Analysis{MaxDepth: maxDepth},
		checks:   checks,
	}
}

// Func runs the enabled checks on the function declaration at c and returns the findings.
// Defects of the checker itself are reported directly as internal errors.
func (k *Checker) Func(ctx context.Context, c inspector.Cursor) []analysis.Diagnostic {
	fun, ok := c.Node().(*ast.FuncDecl)
	if !ok || fun.Body == nil {
		return nil
	}

	f := function{Checker: k, fun: fun, body: c.ChildAt(edge.FuncDecl_Body, -1)}

	if k.checks.Enabled(config.LoopConditionCheck) {
		trace.WithRegion(ctx, "LoopCondition", f.loopConditions)
	}

	if k.checks.Enabled(config.ParametersCheck) {
		trace.WithRegion(ctx, "Parameters", f.parameters)
	}

	return f.diagnostics
}

// function holds the state of checking one function declaration.
type function struct {
	*Checker
	fun         *ast.FuncDecl
	body        inspector.Cursor
	escaped     escape.Set
	diagnostics []analysis.Diagnostic
}

func (f *function) report(rng analysis.Range, format string, args ...any) {
	f.diagnostics = append(f.diagnostics, analysis.Diagnostic{
		Pos:     rng.Pos(),
		End:     rng.End(),
		Message: fmt.Sprintf(format, args...),
	})
}

func (f *function) internalError(rng analysis.Range, err error) {
	astutil.InternalError(f.pass, rng, err)
}

// escapes returns the variables of the function that are reachable other
// than by name, computed on first use.
func (f *function) escapes() escape.Set {
	if f.escaped == nil {
		f.escaped = escape.Collect(f.pass.TypesInfo, f.body)
	}

	return f.escaped
}
