// Package errors holds the command-boundary error helpers: commands return
// plain errors and main funnels the final result through Fatal.
package errors

import (
	"fmt"
	"os"

	"github.com/nisu0001/bea-apa3.0/internal/logger"
)

// Format renders an error for terminal output with the "Error: " prefix.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Fatal logs the error, prints it to stderr and exits with status 1. A nil
// error is a no-op so main can call it unconditionally on the command result.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("Command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
