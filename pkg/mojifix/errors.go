package mojifix

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := fixer.Run(ctx, ".")
//	if errors.Is(err, mojifix.ErrInvalidUTF8) {
//	    // A file could not be decoded; files before it may already be rewritten
//	}
var (
	// ErrInvalidConfig indicates mojifix.yaml or the flags are invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidUTF8 indicates a matching file is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

	// ErrWriteFailed indicates the repaired content could not be written back.
	ErrWriteFailed = errors.New("write failed")

	// ErrRootNotFound indicates the directory to scan is missing or not a directory.
	ErrRootNotFound = errors.New("root directory not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInvalidUTF8):
		return ExitDecodeError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootMissing
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"accepts at most",
		"accepts 1 arg",
		"invalid argument",
	} {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
