package main

import (
	"fmt"

	"github.com/richhaase/pylint-exit/internal/domain"
)

// exitCodeError is a wrapper type for returning exit codes via error interface.
type exitCodeError struct {
	code domain.ExitCode
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("blocking issues found (exit code %d)", e.code)
}

func exitCode(code domain.ExitCode) error {
	if code == domain.ExitGraceful {
		return nil
	}
	return exitCodeError{code: code}
}
