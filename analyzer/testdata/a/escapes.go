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

package a

var globalDone bool

func closure() {
	done := false
	go func() { done = true }()
	for !done {
	}
}

func pointer() {
	stop := false
	p := &stop
	for !stop {
		*p = true
	}
}

func decrement(p *int) { *p-- }

func addressTaken(n int) {
	for n > 0 {
		decrement(&n)
	}
}

func global() {
	for !globalDone {
	}
}

func call(n int) {
	for n > len("x") {
	}
}

func nolint(n int) {
	for n > 0 { //nolint:writeguard
	}
}

//nolint:writeguard
func suppressed(n int) {
	for n > 0 {
	}
}
