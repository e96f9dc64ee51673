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

package params

type counter struct{ n int }

func reassigned(a int, b string) int { // want `parameter "a" is reassigned`
	a++
	return a + len(b)
}

func compound(x int) int { // want `parameter "x" is reassigned`
	x += 1
	return x
}

func (c *counter) reset() { // want `parameter "c" is reassigned`
	c = nil
	_ = c
}

func (c *counter) inc() {
	c.n++
}

func closure(a int) func() { // want `parameter "a" is reassigned`
	return func() { a = 1 }
}

func shadow(a int) {
	{
		a := 2
		a++
		_ = a
	}

	_ = a
}

func captured(a int) func() int {
	return func() int { return a + 1 }
}

func deferred(err error) error { // want `parameter "err" is reassigned`
	defer func() {
		if r := recover(); r != nil {
			err = nil
		}
	}()

	return err
}

func blank(_ int) {}

func loop(n int) {
	for n > 0 {
	}
}

func nolint(a int) int { //nolint:writeguard
	a = 1
	return a
}
