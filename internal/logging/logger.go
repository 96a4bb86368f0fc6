// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "folio"})

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}

// StdLogger adapts L for packages that expect a *log.Logger. Lines are
// logged at info level.
func StdLogger() *log.Logger {
	return L.StandardLog(clog.StandardLogOptions{ForceLevel: clog.InfoLevel})
}

// SetVerbose switches between debug and info level.
func SetVerbose(verbose bool) {
	if verbose {
		L.SetLevel(clog.DebugLevel)
		L.SetReportTimestamp(true)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetOutput redirects the logger.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ToFile redirects log output to path while a full-screen program owns the
// terminal. The returned function restores stderr and closes the file.
func ToFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return func() {}, err
	}
	L.SetOutput(f)
	return func() {
		L.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
