// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates normal completion, including quitting the menu or
	// an interrupt.
	Success = 0

	// Failure indicates an unhandled error reached the process boundary.
	Failure = 1
)
