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

package astutil_test

import (
	"fmt"
	"go/ast"
	"go/token"
	"maps"
	"slices"
	"testing"

	"golang.org/x/tools/go/analysis"

	. "fillmore-labs.com/writeguard/internal/astutil"
	"fillmore-labs.com/writeguard/internal/testsource"
)

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text string
		want bool
	}{
		{"//nolint:writeguard", true},
		{"// nolint:writeguard", true},
		{"//nolint:all", true},
		{"//nolint:gocritic,WriteGuard // reason", true},
		{"//nolint:govet", false},
		{"//nolint", false},
		{"// writeguard", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(&ast.Comment{Text: tt.text}); got != tt.want {
			t.Errorf("CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	const src = `package test

//go:generate echo

func f(a, _ int) {
	for a > 0 { //nolint:writeguard
	}

	for a < 0 {
	} // nolint:writeguard
}
`

	fset, f, fn, _ := testsource.ParseFile(t, src)

	c := NewCurrentFile(fset, f)
	if !c.Valid() || c.Generated() {
		t.Fatalf("Expected a valid, hand-written file")
	}

	loops := fn.Body.List
	if !c.NoLintComment(loops[0].Pos()) {
		t.Error("Expected nolint comment on the first loop")
	}

	if c.NoLintComment(loops[1].Pos()) {
		t.Error("Expected no nolint comment on the second loop's line")
	}

	if NewCurrentFile(token.NewFileSet(), f).Valid() {
		t.Error("Expected file outside of the file set to be invalid")
	}

	if NewCurrentFile(fset, nil).Valid() {
		t.Error("Expected nil file to be invalid")
	}
}

func TestAllParams(t *testing.T) {
	t.Parallel()

	const src = `package test

func (r *recv) f(a, _ int, b string) {}

type recv struct{}
`

	_, _, fn, _ := testsource.ParseFile(t, src)

	var names []string
	for id := range AllParams(fn) {
		names = append(names, id.Name)
	}

	if want := []string{"r", "a", "b"}; !slices.Equal(names, want) {
		t.Errorf("AllParams = %v, want %v", names, want)
	}
}

func TestPointerMethod(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(c counter) (func(), func(), int) {
	return c.inc, c.get, c.n
}

type counter struct{ n int }

func (c *counter) inc() { c.n++ }

func (c counter) get() {}
`

	fset, f, _, _ := testsource.ParseFile(t, src)
	_, info := testsource.Check(t, fset, f)

	got := make(map[string]bool)
	for sel, selection := range info.Selections {
		got[sel.Sel.Name] = PointerMethod(selection)
	}

	if want := map[string]bool{"inc": true, "get": false, "n": false}; !maps.Equal(got, want) {
		t.Errorf("PointerMethod = %v, want %v", got, want)
	}
}

func TestSuppressed(t *testing.T) {
	t.Parallel()

	const src = `package test

func f(a int) {
	for a > 0 {
	}
}

//nolint:writeguard
func g(a int) {
	for a > 0 {
	}
}
`

	fset, f, fn, _ := testsource.ParseFile(t, src)

	c := NewCurrentFile(fset, f)
	if c.Ignored() {
		t.Fatal("Expected file not to be ignored")
	}

	g := f.Decls[1].(*ast.FuncDecl)

	if c.DeclIgnored(fn) || !c.DeclIgnored(g) {
		t.Error("Expected only g to be ignored")
	}

	if c.Suppressed(fn.Body.List[0].Pos()) {
		t.Error("Expected finding in f to be reported")
	}

	if !c.Suppressed(g.Body.List[0].Pos()) {
		t.Error("Expected finding in g to be suppressed")
	}
}

func TestFileIgnored(t *testing.T) {
	t.Parallel()

	const src = `//nolint:writeguard
package test

func f(a int) {
	for a > 0 {
	}
}
`

	fset, f, fn, _ := testsource.ParseFile(t, src)

	c := NewCurrentFile(fset, f)
	if !c.Ignored() || !c.Suppressed(fn.Body.Pos()) {
		t.Error("Expected file-wide suppression")
	}
}

func TestInternalError(t *testing.T) {
	t.Parallel()

	var got []analysis.Diagnostic

	p := &analysis.Pass{Report: func(d analysis.Diagnostic) { got = append(got, d) }}

	err := fmt.Errorf("test: %w", ErrInvalidFile)
	InternalError(p, &ast.Ident{NamePos: 1, Name: "x"}, err)

	if len(got) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(got))
	}

	if d := got[0]; d.Category != InternalCategory || d.Message != "Internal Error: "+err.Error() || d.Pos != 1 || d.End != 2 {
		t.Errorf("Got diagnostic %+v", d)
	}
}
