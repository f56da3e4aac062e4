// Package errdefs defines the error taxonomy shared by the analyzer and the
// cycle detector. Callers classify failures with errors.Is against the
// sentinels; messages carry context via fmt.Errorf wrapping.
package errdefs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks invalid arguments (blank path, non-positive
	// bounds). Never retried, never recovered locally.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a missing target file on an explicit request.
	ErrNotFound = errors.New("not found")

	// ErrExtraction marks malformed file content. Recovered locally during
	// traversal: the file is recorded with zero dependencies.
	ErrExtraction = errors.New("extraction error")

	// ErrDirectoryAccess marks a permission failure while walking a project
	// tree. Recovered locally: the subtree is skipped.
	ErrDirectoryAccess = errors.New("directory access error")
)

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Extractionf wraps ErrExtraction with a formatted message.
func Extractionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExtraction, fmt.Sprintf(format, args...))
}

// DirectoryAccessf wraps ErrDirectoryAccess with a formatted message.
func DirectoryAccessf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDirectoryAccess, fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsExtraction reports whether err is an extraction error.
func IsExtraction(err error) bool { return errors.Is(err, ErrExtraction) }

// IsDirectoryAccess reports whether err is a directory access error.
func IsDirectoryAccess(err error) bool { return errors.Is(err, ErrDirectoryAccess) }
