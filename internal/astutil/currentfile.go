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

package astutil

import (
	"go/ast"
	"go/token"
	"regexp"
	"slices"
	"strings"
)

// writeguard is the name of the linter.
const writeguard = "writeguard"

// CurrentFile holds the suppression state of one file under analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	nolint    bool // file-wide //nolint:writeguard
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
// The result is invalid when the file is not part of fset.
func NewCurrentFile(fset *token.FileSet, file *ast.File) CurrentFile {
	if file == nil {
		return CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return CurrentFile{}
	}

	return CurrentFile{
		file:      file,
		handle:    handle,
		generated: ast.IsGenerated(file),
		nolint:    groupHasNoLint(file.Doc),
	}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Ignored reports whether the whole file is excluded by a //nolint:writeguard
// directive in its package documentation.
func (c CurrentFile) Ignored() bool {
	return c.nolint
}

// DeclIgnored reports whether fun carries a //nolint:writeguard directive as
// the last line of its documentation.
func (c CurrentFile) DeclIgnored(fun *ast.FuncDecl) bool {
	return groupHasNoLint(fun.Doc)
}

// Suppressed reports whether a finding at pos is excluded, either by the file
// or the enclosing function declaration, or by a //nolint:writeguard comment
// ending the line of pos.
func (c CurrentFile) Suppressed(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	if c.nolint {
		return true
	}

	if fun, ok := c.declAt(pos).(*ast.FuncDecl); ok && c.DeclIgnored(fun) {
		return true
	}

	return c.NoLintComment(pos)
}

// declAt returns the top-level declaration containing pos, or nil.
func (c CurrentFile) declAt(pos token.Pos) ast.Decl {
	i, found := slices.BinarySearchFunc(c.file.Decls, pos, func(d ast.Decl, p token.Pos) int {
		switch {
		case d.End() <= p:
			return -1
		case d.Pos() > p:
			return 1
		default:
			return 0
		}
	})
	if !found {
		return nil
	}

	return c.file.Decls[i]
}

func (c CurrentFile) line(pos token.Pos) int {
	return c.handle.PositionFor(pos, false).Line
}

// NoLintComment checks if the line of pos ends in a //nolint:writeguard comment.
func (c CurrentFile) NoLintComment(pos token.Pos) bool {
	if c.file == nil {
		return false
	}

	// find the first comment starting after pos
	i, _ := slices.BinarySearchFunc(c.file.Comments, pos,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })
	if i >= len(c.file.Comments) {
		return false
	}

	comment := c.file.Comments[i].List[0]

	if c.line(comment.Pos()) != c.line(pos) {
		return false // not on this line
	}

	return CommentHasNoLint(comment)
}

func groupHasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && CommentHasNoLint(doc.List[len(doc.List)-1])
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// CommentHasNoLint checks if the provided comment contains a `//nolint:writeguard` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == writeguard || l == "all" {
			return true
		}
	}

	return false
}
