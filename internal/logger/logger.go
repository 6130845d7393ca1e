/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the build log. It writes to stderr and can be
// silenced in tests.
package logger

import (
	"io"
	"log"
	"os"

	"github.com/fatih/color"
)

var (
	output io.Writer = os.Stderr
	logger *log.Logger

	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	successColor = color.New(color.FgGreen)
)

func init() {
	logger = log.New(output, "", 0)
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Print(warnColor.Sprintf("warning: "+format, args...))
}

// Error logs an error message without stopping the run.
func Error(format string, args ...any) {
	logger.Print(errorColor.Sprintf("error: "+format, args...))
}

// Success logs a completion message.
func Success(format string, args ...any) {
	logger.Print(successColor.Sprintf(format, args...))
}
