// Package errors classifies the error taxonomy used across the service mesh.
//
// Every classified error wraps one of the sentinels below, so a caller can
// recover the category with Is while the wrapped text carries diagnostic
// context (ticker, line number, inquiry id, ...) into the log line.
package errors

import (
	stderrors "errors"

	"github.com/yanun0323/errors"
)

var (
	// ErrParse marks a malformed input line: missing delimiter, bad
	// numeric field, or unrecognized side token.
	ErrParse = errors.New("parse error")
	// ErrUnknownProduct marks a ticker absent from the static reference table.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrMissingDepth marks an order book with an empty bid or offer stack.
	ErrMissingDepth = errors.New("missing depth")
	// ErrInvalidState marks an inquiry transition that violates the state table.
	ErrInvalidState = errors.New("invalid state transition")
	// ErrIOError marks a persistence or input-file open failure.
	ErrIOError = errors.New("io error")
)

// New builds a plain error, for cases outside the taxonomy above.
func New(text string) error {
	return errors.New(text)
}

// Wrap attaches context text to a sentinel or any other error, keeping it
// unwrappable so Is can still classify it.
func Wrap(err error, text string) error {
	if err == nil {
		return nil
	}
	if len(text) == 0 {
		return err
	}
	return &wrappedError{err: err, msg: text}
}

// Is reports whether err is, or wraps, target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

type wrappedError struct {
	err error
	msg string
}

const sep = ", err: "

func (e *wrappedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + sep + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
