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
	"errors"

	"golang.org/x/tools/go/analysis"
)

// ErrInvalidFile is reported for files the pass has no position information for.
var ErrInvalidFile = errors.New("file without valid position information")

// InternalCategory is the [analysis.Diagnostic] category of internal errors.
const InternalCategory = "internal"

// InternalError reports err as a diagnostic at rng.
// These errors indicate bugs in the analyzer or a missing feature of the
// write-effect analysis rather than issues in the user's code; the affected
// check is skipped.
func InternalError(p *analysis.Pass, rng analysis.Range, err error) {
	p.Report(analysis.Diagnostic{
		Pos:      rng.Pos(),
		End:      rng.End(),
		Category: InternalCategory,
		Message:  "Internal Error: " + err.Error(),
	})
}
