// Package domain provides core types shared by the decoder and the CLI.
package domain

// ExitCode represents a process exit status owned by the tool itself,
// as opposed to the aggregate computed from a decoded mask.
type ExitCode int

const (
	// ExitGraceful indicates no blocking categories were triggered.
	ExitGraceful ExitCode = 0
	// ExitUsage indicates invalid arguments, matching the argument-parser convention.
	ExitUsage ExitCode = 2
)

// Int returns the exit code as an int for use with os.Exit.
func (e ExitCode) Int() int {
	return int(e)
}
