package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/input"
	"github.com/d2verb/pq-falcon-sigs/internal/keys"
	"github.com/d2verb/pq-falcon-sigs/internal/keystore"
	"github.com/d2verb/pq-falcon-sigs/internal/safeio"
	"github.com/d2verb/pq-falcon-sigs/internal/ui"
)

// Exit codes for CLI commands.
const (
	exitSuccess            = 0
	exitError              = 1
	exitVerificationFailed = 2
	exitRefusedOverwrite   = 3
	exitBadKey             = 4
	exitNoInput            = 5
	exitNotFound           = 6
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string { return e.Message }

func (e *ExitError) Unwrap() error { return e.Err }

func errVerificationFailed(err error) *ExitError {
	return &ExitError{
		Code:    exitVerificationFailed,
		Message: "Signature verification failed: the data was not signed by this key or has been modified.",
		Err:     err,
	}
}

func errRefusedOverwrite(cause error) *ExitError {
	return &ExitError{
		Code:    exitRefusedOverwrite,
		Message: capitalize(cause.Error()),
		Err:     cause,
	}
}

func errLevelMismatch(err *keys.LevelMismatchError, cause error) *ExitError {
	return &ExitError{
		Code: exitBadKey,
		Message: fmt.Sprintf("The %s key is a %s key but %s was selected.\nRun with: --level %d",
			err.Kind, err.Detected, err.Selected, int(err.Detected)),
		Err: cause,
	}
}

func errBadLength(cause error) *ExitError {
	return &ExitError{
		Code:    exitBadKey,
		Message: fmt.Sprintf("Invalid key: %v", cause),
		Err:     cause,
	}
}

func errNoInput(cause error) *ExitError {
	return &ExitError{
		Code:    exitNoInput,
		Message: "No input data. Pass a file (-f FILE or FILE) or pipe data to stdin.",
		Err:     cause,
	}
}

func errKeyNotFound(err *keystore.MissingKeyError) *ExitError {
	return &ExitError{
		Code:    exitNotFound,
		Message: fmt.Sprintf("%s key not found: %s\nGenerate keys with: pq-falcon-sigs keygen", capitalize(string(err.Kind)), err.Path),
		Err:     err,
	}
}

func errNotFound(err *safeio.NotFoundError) *ExitError {
	return &ExitError{
		Code:    exitNotFound,
		Message: fmt.Sprintf("File not found: %s", err.Path),
		Err:     err,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// toExitError maps engine errors to exit codes and user-facing messages.
func toExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var (
		mismatch   *keys.LevelMismatchError
		missingKey *keystore.MissingKeyError
		notFound   *safeio.NotFoundError
	)
	switch {
	case errors.Is(err, falcon.ErrVerificationFailed):
		return errVerificationFailed(err)
	case safeio.IsRefusedOverwrite(err):
		return errRefusedOverwrite(err)
	case errors.As(err, &mismatch):
		return errLevelMismatch(mismatch, err)
	case keys.IsBadLength(err):
		return errBadLength(err)
	case errors.Is(err, input.ErrNoInputData):
		return errNoInput(err)
	case errors.As(err, &missingKey):
		return errKeyNotFound(missingKey)
	case errors.As(err, &notFound):
		return errNotFound(notFound)
	case errors.Is(err, context.Canceled):
		return &ExitError{Code: exitError, Message: "Interrupted.", Err: err}
	default:
		return &ExitError{Code: exitError, Message: fmt.Sprintf("Error: %v", err), Err: err}
	}
}

// exitCode reports err to the user and returns the process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	exitErr := toExitError(err)
	if exitErr.Message != "" {
		ui.PrintError(exitErr.Message)
	}
	return exitErr.Code
}
