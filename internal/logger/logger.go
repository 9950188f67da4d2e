/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the build log. It can be silenced for library use and tests.
package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	mu     sync.Mutex
	logger = log.New(os.Stderr, "", 0)

	warnPrefix  = color.New(color.FgYellow, color.Bold).SprintFunc()
	errorPrefix = color.New(color.FgRed, color.Bold).SprintFunc()
	debug       bool
)

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = log.New(w, "", 0)
}

// SetDebug enables or disables Debug output.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

// Info logs an informational message.
func Info(format string, args ...any) {
	printf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	printf(warnPrefix("warning:")+" "+format, args...)
}

// Error logs an error message.
func Error(format string, args ...any) {
	printf(errorPrefix("error:")+" "+format, args...)
}

// Debug logs a message only when debug output is enabled.
func Debug(format string, args ...any) {
	mu.Lock()
	enabled := debug
	mu.Unlock()
	if enabled {
		printf(format, args...)
	}
}

func printf(format string, args ...any) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Printf(format, args...)
}
