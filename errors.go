package valext

import (
	"errors"
	"fmt"
)

// Core error definitions
var (
	// ErrPropertyNotFound reports that a flat key or a pointer segment
	// does not exist in the tree.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrTypeMismatch reports that a node exists but its variant does
	// not match the requested type.
	ErrTypeMismatch = errors.New("value type mismatch")

	// ErrNotObject reports that an object was required where the value
	// itself (usually the root) is not one. No path applies.
	ErrNotObject = errors.New("value is not an object")

	// ErrSerialization reports that the serialization collaborator
	// failed to encode or decode a value.
	ErrSerialization = errors.New("serialization failed")
)

// AccessError represents a failed tree operation with essential context.
type AccessError struct {
	Op       string // Operation that failed
	Path     string // Path where the error occurred, when one applies
	Expected string // Requested type, for type-mismatch errors
	Message  string // Human-readable error message
	Err      error  // Underlying sentinel or collaborator error
}

func (e *AccessError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("valext %s failed at path %q: %s", e.Op, e.Path, e.Message)
	}
	return fmt.Sprintf("valext %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *AccessError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is
func (e *AccessError) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*AccessError); ok {
		return e.Op == targetErr.Op && errors.Is(e.Err, targetErr.Err)
	}
	return errors.Is(e.Err, target)
}

// newNotFoundError creates an AccessError for a missing key or segment
func newNotFoundError(op, path string) error {
	return &AccessError{
		Op:      op,
		Path:    path,
		Message: "property not found",
		Err:     ErrPropertyNotFound,
	}
}

// newTypeMismatchError creates an AccessError for a node of the wrong variant
func newTypeMismatchError(op, path, expected string) error {
	return &AccessError{
		Op:       op,
		Path:     path,
		Expected: expected,
		Message:  fmt.Sprintf("expected %s", expected),
		Err:      ErrTypeMismatch,
	}
}

// newRootTypeError creates an AccessError for a contextless type mismatch,
// where no path is meaningful
func newRootTypeError(op, expected string) error {
	return &AccessError{
		Op:       op,
		Expected: expected,
		Message:  fmt.Sprintf("expected %s", expected),
		Err:      ErrNotObject,
	}
}

// newSerializationError wraps a collaborator encode/decode failure
func newSerializationError(op, path string, err error) error {
	return &AccessError{
		Op:      op,
		Path:    path,
		Message: err.Error(),
		Err:     fmt.Errorf("%w: %w", ErrSerialization, err),
	}
}

// CustomError creates an AccessError for situations the taxonomy does
// not cover.
func CustomError(op, message string) error {
	return &AccessError{
		Op:      op,
		Message: message,
	}
}

// WrapError wraps an error with operation and path context. A nil err
// returns nil.
func WrapError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return &AccessError{
		Op:      op,
		Path:    path,
		Message: err.Error(),
		Err:     err,
	}
}
