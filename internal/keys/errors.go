package keys

import (
	"errors"
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
)

// Kind names the role of a key in error messages.
type Kind string

const (
	KindPublic Kind = "public"
	KindSecret Kind = "secret"
)

// BadLengthError indicates key bytes whose size does not match the level.
type BadLengthError struct {
	Kind     Kind
	Level    falcon.Level
	Expected int
	Actual   int
}

func (e *BadLengthError) Error() string {
	return fmt.Sprintf("%s key has %d bytes, %s expects %d", e.Kind, e.Actual, e.Level, e.Expected)
}

// LevelMismatchError indicates a key that is valid for the other
// security level than the one selected.
type LevelMismatchError struct {
	Kind     Kind
	Selected falcon.Level
	Detected falcon.Level
	Length   *BadLengthError
}

func (e *LevelMismatchError) Error() string {
	return fmt.Sprintf("%s key is a %s key but %s was selected", e.Kind, e.Detected, e.Selected)
}

func (e *LevelMismatchError) Unwrap() error {
	return e.Length
}

// EncodingError indicates a key literal that is not valid base64.
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("decode base64 public key: %v", e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// IsBadLength reports whether err is a key length error, including a
// level mismatch.
func IsBadLength(err error) bool {
	var bl *BadLengthError
	return errors.As(err, &bl)
}

// IsLevelMismatch reports whether err indicates a key of the wrong level.
func IsLevelMismatch(err error) bool {
	var lm *LevelMismatchError
	return errors.As(err, &lm)
}
