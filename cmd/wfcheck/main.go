package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess     = 0 // All checks passed
	ExitCheckFailed = 1 // One or more checks failed
	ExitError       = 2 // Configuration or usage error
)

// CheckFailureError indicates that the checks ran, but at least one
// workflow file failed.
type CheckFailureError struct {
	Message string
}

func (e *CheckFailureError) Error() string {
	return e.Message
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var checkFailureErr *CheckFailureError
		if errors.As(err, &checkFailureErr) {
			os.Exit(ExitCheckFailed)
		}

		// All other errors are configuration/usage errors
		os.Exit(ExitError)
	}
}
