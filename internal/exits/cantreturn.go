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

package exits

import (
	"go/ast"
	"go/types"
)

// exitFuncs lists functions that never return to their caller, by package
// path and receiver type. Methods promoted from unexported embedded types are
// listed under the embedded type.
var exitFuncs = map[string]map[string][]string{
	"log": {
		"":       {"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"},
		"Logger": {"Fatal", "Fatalf", "Fatalln", "Panic", "Panicf", "Panicln"},
	},
	"os":      {"": {"Exit"}},
	"syscall": {"": {"Exit"}},
	"runtime": {"": {"Goexit"}},
	"testing": {
		"common": {"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"},
		"TB":     {"Fatal", "Fatalf", "FailNow", "Skip", "Skipf", "SkipNow"},
	},
	"github.com/sirupsen/logrus": {
		"Entry":  {"Panic", "Panicf", "Panicln"},
		"Logger": {"Exit", "Panic", "Panicf", "Panicln"},
	},
	"go.uber.org/zap": {
		"Logger":        {"Fatal", "Panic"},
		"SugaredLogger": {"Fatal", "Fatalf", "Fatalln", "Fatalw", "Panic", "Panicf", "Panicln", "Panicw"},
	},
	"k8s.io/klog":    {"": {"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
	"k8s.io/klog/v2": {"": {"Exit", "ExitDepth", "Exitf", "Exitln", "Fatal", "FatalDepth", "Fatalf", "Fatalln"}},
}

var knownFuncs = func() map[FuncName]struct{} {
	known := make(map[FuncName]struct{})

	for path, receivers := range exitFuncs {
		for receiver, names := range receivers {
			for _, name := range names {
				known[FuncName{Path: path, Receiver: receiver, Name: name}] = struct{}{}
			}
		}
	}

	return known
}()

var builtinPanic = types.Universe.Lookup("panic").(*types.Builtin)

// CantReturn reports whether call is known never to return, because it panics,
// exits the program or ends the goroutine.
func CantReturn(info *types.Info, call *ast.CallExpr) bool {
	fun := call.Fun

	for {
		switch f := fun.(type) {
		case *ast.Ident:
			return cantReturn(info.Uses[f])

		case *ast.SelectorExpr:
			return cantReturn(info.Uses[f.Sel])

		case *ast.IndexExpr: // instantiation "f[T]"
			fun = f.X

		case *ast.IndexListExpr: // instantiation "f[T, U]"
			fun = f.X

		case *ast.ParenExpr:
			fun = f.X

		default: // computed function value
			return false
		}
	}
}

func cantReturn(obj types.Object) bool {
	switch obj := obj.(type) {
	case *types.Func:
		_, ok := knownFuncs[FuncNameOf(obj)]

		return ok

	case *types.Builtin:
		return obj == builtinPanic

	default:
		return false
	}
}
