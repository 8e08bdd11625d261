// +build !debug

//
// chessgo - a UCI chess engine core written in Go
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert provides debug-only invariant checks that compile
// away to nothing in release builds. Build with `-tags debug` to
// activate them during development and testing.
package assert

// DEBUG mirrors the build tag so call sites can skip evaluating
// expensive arguments to Assert in release builds:
//
//	if assert.DEBUG {
//		assert.Assert(expensiveCheck(), "message %d", n)
//	}
const DEBUG = false

// Assert is a no-op in release builds. Arguments are still evaluated
// by the caller before the call, so guard expensive checks with
// `if assert.DEBUG` at the call site rather than relying on this
// function alone.
func Assert(test bool, msg string, a ...interface{}) {}
