// Package util holds the logging helpers shared by the command-line tools.
package util

import (
	"fmt"
	"log"
)

func init() {
	log.SetFlags(0)
}

// Warnf logs a formatted message without terminating the run.
func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Warning logs err with optional printf-style context and reports whether
// there was an error to log.
func Warning(err error, v ...interface{}) bool {
	if err == nil {
		return false
	}
	Warnf("warning: %s", describe(err, v))
	return true
}

// Fatalf logs a formatted message and exits with a non-zero status.
func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert exits the run when err is non-nil, with optional printf-style
// context.
func Assert(err error, v ...interface{}) {
	if err != nil {
		Fatalf("error: %s", describe(err, v))
	}
}

// describe renders an error with its optional context prefix.
func describe(err error, v []interface{}) string {
	if len(v) == 0 {
		return err.Error()
	}
	format := v[0].(string)
	return fmt.Sprintf(format, v[1:]...) + ": " + err.Error()
}
