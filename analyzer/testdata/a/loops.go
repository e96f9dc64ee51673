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

func process(int) {}

func check() bool { return true }

func drain(queue []int) {
	n := len(queue)
	for n > 0 { // want `loop condition "n > 0" never changes inside the loop`
		process(queue[0])
		queue = queue[1:]
	}
}

func countdown(n int) {
	for n > 0 {
		n--
	}
}

func withPost(limit int) {
	for i := 0; i < limit; i++ {
		process(i)
	}
}

func wrongPost(limit int) {
	j := 0
	for i := 0; i < limit; j++ { // want `loop condition "i < limit" never changes inside the loop`
		process(i + j)
	}
}

func notReady(ready bool) {
	for !ready { // want `loop condition "!ready" never changes inside the loop`
		process(0)
	}
}

func constant(n int) {
	const limit = 10
	for n < limit { // want `loop condition "n < limit" never changes inside the loop`
	}
}

func nested(n int) {
	for i := 0; i < n; i++ {
		for n > 0 { // want `loop condition "n > 0" never changes inside the loop`
			process(i)
		}
	}
}

func shadowed() {
	for i := 0; i < 10; { // want `loop condition "i < 10" never changes inside the loop`
		i := 5
		i++
		process(i)
	}
}

func withBreak(done bool) {
	for !done {
		if check() {
			break
		}
	}
}

func withReturn(ready bool) {
	for !ready {
		if check() {
			return
		}
	}
}

func panics(ok bool) {
	for !ok {
		panic("not ok")
	}
}

func labeled(n int) {
outer:
	for n > 0 {
		for {
			break outer
		}
	}
}

func rangeAssign(n int, xs []int) {
	for n > 0 {
		for n = range xs {
		}
	}
}

func selectWrite(ch chan int, n int) {
	for n > 0 {
		select {
		case n = <-ch:
		}
	}
}

func switchWrite(n int) {
	for n > 0 {
		switch {
		case n > 10:
			n -= 10
		}
	}
}
