package safeio

import (
	"errors"
	"fmt"
)

// RefusedOverwriteError indicates a write blocked because the target exists
// and overwriting was not authorized.
type RefusedOverwriteError struct {
	Path string
}

func (e *RefusedOverwriteError) Error() string {
	return fmt.Sprintf("refusing to overwrite existing file %s (use --force)", e.Path)
}

// NotFoundError indicates a file that does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsRefusedOverwrite reports whether err is a blocked overwrite.
func IsRefusedOverwrite(err error) bool {
	var ro *RefusedOverwriteError
	return errors.As(err, &ro)
}

// IsNotFound reports whether err indicates a missing file.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
