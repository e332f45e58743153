// Package errors provides standardized error types for the stead CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// SetupError is the primary error type, containing:
//   - Code: Categorizes the error (BOX, HOSTS, PROVISION, etc.)
//   - Message: Human-readable error description
//   - Step: The setup step involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Wrapping an underlying error with a category
//	return errors.Wrap(errors.ErrCodeBox, "failed to load Homestead.yaml", err)
//
//	// Tagging an error with the step that produced it
//	return errors.WrapStep(errors.ErrCodeProvision, "provision", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrVagrantNotFound) {
//	    // Handle missing vagrant binary
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeConfig     ErrorCode = "CONFIG"     // Project configuration resolution error
	ErrCodeBox        ErrorCode = "BOX"        // Homestead.yaml read/parse/write error
	ErrCodeHosts      ErrorCode = "HOSTS"      // Hosts file registration error
	ErrCodeProvision  ErrorCode = "PROVISION"  // Vagrant reload/provision error
	ErrCodeSSL        ErrorCode = "SSL"        // Certificate staging/import error
	ErrCodeTemplate   ErrorCode = "TEMPLATE"   // Env template materialization error
	ErrCodePermission ErrorCode = "PERMISSION" // Permission denied
	ErrCodeInternal   ErrorCode = "INTERNAL"   // Internal/unexpected error
)

// SetupError represents a structured error with context about the operation.
type SetupError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Step    string    // Setup step name (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	if e.Step != "" && e.Err != nil {
		return fmt.Sprintf("step %s: %s: %v", e.Step, e.Message, e.Err)
	}
	if e.Step != "" {
		return fmt.Sprintf("step %s: %s", e.Step, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SetupError) Is(target error) bool {
	t, ok := target.(*SetupError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrVagrantNotFound indicates the vagrant binary is not on PATH.
	ErrVagrantNotFound = &SetupError{Code: ErrCodeProvision, Message: "vagrant not installed"}

	// ErrBoxConfigInvalid indicates Homestead.yaml could not be parsed.
	ErrBoxConfigInvalid = &SetupError{Code: ErrCodeBox, Message: "invalid box configuration"}

	// ErrHostsNotWritable indicates the hosts file could not be appended to.
	ErrHostsNotWritable = &SetupError{Code: ErrCodeHosts, Message: "hosts file not writable"}

	// ErrPermissionDenied indicates insufficient privileges for the operation.
	ErrPermissionDenied = &SetupError{Code: ErrCodePermission, Message: "permission denied"}
)

// Validation creates a configuration validation error with a custom message.
func Validation(msg string) error {
	return &SetupError{
		Code:    ErrCodeConfig,
		Message: msg,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SetupError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// WrapStep creates an error carrying the setup step that produced it.
func WrapStep(code ErrorCode, step string, err error) error {
	return &SetupError{
		Code: code,
		Step: step,
		Err:  err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
