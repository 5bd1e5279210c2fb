package errors

import (
	"errors"
	"fmt"
)

// Exit codes for wgstart
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConfigError     = 3
	ExitNetworkError    = 4
	ExitPatternNotFound = 5
	ExitLaunchError     = 6
	ExitUsage           = 64
)

// Kind classifies an Error.
type Kind string

const (
	KindGeneral         Kind = "general"
	KindUsage           Kind = "usage"
	KindConfig          Kind = "config"
	KindMissingField    Kind = "missing-field"
	KindNoPeers         Kind = "no-peers"
	KindInvalidAddress  Kind = "invalid-address"
	KindNetwork         Kind = "network"
	KindPatternNotFound Kind = "pattern-not-found"
	KindLaunch          Kind = "launch"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrMissingField    = &Error{Kind: KindMissingField, Code: ExitConfigError, Message: "missing field"}
	ErrNoPeers         = &Error{Kind: KindNoPeers, Code: ExitConfigError, Message: "no peers"}
	ErrInvalidAddress  = &Error{Kind: KindInvalidAddress, Code: ExitConfigError, Message: "invalid address"}
	ErrNetwork         = &Error{Kind: KindNetwork, Code: ExitNetworkError, Message: "network error"}
	ErrPatternNotFound = &Error{Kind: KindPatternNotFound, Code: ExitPatternNotFound, Message: "pattern not found"}
	ErrLaunch          = &Error{Kind: KindLaunch, Code: ExitLaunchError, Message: "launch error"}
)

// Error is the base error type for wgstart
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// ExitCode returns the exit code for this error
func (e *Error) ExitCode() int {
	return e.Code
}

// New creates a new Error
func New(kind Kind, code int, message string) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(kind Kind, code int, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// MissingField returns an error for a required config key that is absent.
func MissingField(section, key string) *Error {
	return New(KindMissingField, ExitConfigError, fmt.Sprintf("missing field: [%s].%s", section, key))
}

// NoPeers returns an error for a config without any [Peer] section.
func NoPeers() *Error {
	return New(KindNoPeers, ExitConfigError, "config has no [Peer] section")
}

// InvalidAddress returns an error for an Address that is not a CIDR network.
func InvalidAddress(addr string, cause error) *Error {
	return Wrap(KindInvalidAddress, ExitConfigError, fmt.Sprintf("invalid address %q", addr), cause)
}

// ConfigError returns an error for configuration issues not covered above,
// such as an unreadable file.
func ConfigError(message string, cause error) *Error {
	return Wrap(KindConfig, ExitConfigError, message, cause)
}

// NetworkError returns an error for a failed request through the proxy.
func NetworkError(cause error) *Error {
	return Wrap(KindNetwork, ExitNetworkError, "request through proxy failed", cause)
}

// PatternNotFound returns an error when the response has no egress address.
func PatternNotFound() *Error {
	return New(KindPatternNotFound, ExitPatternNotFound, "egress address not found in response")
}

// LaunchError returns an error when the proxy binary cannot be started.
func LaunchError(binary string, cause error) *Error {
	return Wrap(KindLaunch, ExitLaunchError, fmt.Sprintf("failed to launch %s", binary), cause)
}

// UsageError returns an error for bad invocations.
func UsageError(message string) *Error {
	return New(KindUsage, ExitUsage, message)
}

// ExitStatus carries a child process exit status up to main.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the child's status.
func (e *ExitStatus) ExitCode() int {
	return e.Code
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var status *ExitStatus
	if errors.As(err, &status) {
		return status.ExitCode()
	}
	var wgErr *Error
	if errors.As(err, &wgErr) {
		return wgErr.ExitCode()
	}
	return ExitGeneralError
}

// KindOf returns the Kind of the first Error in err's chain.
func KindOf(err error) Kind {
	var wgErr *Error
	if errors.As(err, &wgErr) {
		return wgErr.Kind
	}
	return KindGeneral
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
