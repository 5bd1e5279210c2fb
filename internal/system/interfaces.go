// Package system abstracts process execution so launches can be tested.
package system

import "context"

// CommandExecutor abstracts command execution for testability.
type CommandExecutor interface {
	// Run starts name with args under env, with stdin, stdout and stderr
	// attached to this process, and waits for it to exit. The returned
	// status is the child's exit code, or 128+signal if a signal killed it.
	// err is non-nil only when the command could not be started or waited on.
	Run(ctx context.Context, env []string, name string, args ...string) (status int, err error)
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementation.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}
