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

// Package tree defines the immutable syntax model the write-effect analysis consumes.
//
// A tree is built once by a frontend (a parser and type checker, or a lowering of
// another language's syntax tree) and is read-only afterwards. Nodes belong to a
// closed set of kinds: every node type embeds an unexported marker, so no other
// package can add kinds. Variables are identified by [*Binding] values; two
// identifiers denote the same variable iff their bindings are the same pointer.
//
// [Dispatch] selects the [Visitor] method for a node's kind. Implementing
// [Visitor] requires one method per kind, so adding a kind breaks every visitor
// at compile time instead of silently falling through at run time.
package tree
