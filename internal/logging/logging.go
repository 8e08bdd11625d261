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

// Package logging configures the single stdout-backed op/go-logging
// backend shared by every package in the engine and hands out loggers
// for it. Packages that need the *logging.Logger type import
// github.com/op/go-logging directly (its type, not a wrapper of it);
// this package is only responsible for wiring up the shared backend
// once and naming loggers consistently.
package logging

import (
	"os"
	"sync"

	golog "github.com/op/go-logging"

	"github.com/frankkopp/chessgo/internal/config"
)

const logFormat = `%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`

var once sync.Once

func setup() {
	raw := golog.NewLogBackend(os.Stdout, "", 0)
	formatter := golog.NewBackendFormatter(raw, golog.MustStringFormatter(logFormat))
	levelled := golog.AddModuleLevel(formatter)
	levelled.SetLevel(golog.DEBUG, "")
	golog.SetBackend(levelled)
}

// GetLog returns the logger for the given module name, wiring up the
// shared stdout backend on first use. Called with no name it returns
// (and resets the level of) the root logger — main() uses this form
// once at startup to make sure the level picked up from config/flags
// takes effect for every package-level logger created during init().
func GetLog(name ...string) *golog.Logger {
	once.Do(setup)
	module := ""
	if len(name) > 0 {
		module = name[0]
	} else {
		golog.SetLevel(golog.Level(config.LogLevel), "")
	}
	return golog.MustGetLogger(module)
}

// GetTestLog returns a logger suitable for _test.go files: same shared
// backend, named "Test".
func GetTestLog() *golog.Logger {
	return GetLog("Test")
}
