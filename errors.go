// SPDX-License-Identifier: EPL-2.0

package fathomwt

import (
	"errors"
	"io/fs"
	"strings"
)

// Kind classifies why a conversion failed.
type Kind int

const (
	// KindOpen means the source could not be opened or is not integer PCM.
	KindOpen Kind = iota + 1
	// KindValidation means the source opened but breaks a format condition.
	KindValidation
	// KindRead means the sample data ended early or could not be decoded.
	KindRead
	// KindParse means a wave table document could not be parsed.
	KindParse
	// KindWrite means the target file could not be written.
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindValidation:
		return "validation"
	case KindRead:
		return "read"
	case KindParse:
		return "parse"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

var (
	// ErrOpen matches every ConversionError of kind KindOpen
	ErrOpen = errors.New("source could not be opened")

	// ErrValidation matches every ConversionError of kind KindValidation
	ErrValidation = errors.New("source does not meet the format conditions")

	// ErrRead matches every ConversionError of kind KindRead
	ErrRead = errors.New("source could not be read")

	// ErrParse matches every ConversionError of kind KindParse
	ErrParse = errors.New("wave table could not be parsed")

	// ErrWrite matches every ConversionError of kind KindWrite
	ErrWrite = errors.New("target could not be written")

	// ErrInvalidConfig indicates a Config that cannot drive a conversion
	ErrInvalidConfig = errors.New("invalid configuration")
)

func (k Kind) sentinel() error {
	switch k {
	case KindOpen:
		return ErrOpen
	case KindValidation:
		return ErrValidation
	case KindRead:
		return ErrRead
	case KindParse:
		return ErrParse
	case KindWrite:
		return ErrWrite
	default:
		return nil
	}
}

// Messages carried by ConversionError. They are printed verbatim in the
// batch report.
const (
	MsgFileNotFound = "File not found"
	MsgUnreadable   = "File could not be read. Conditions might not be met, e.g. not in PCM."
	MsgNotMono      = "Not exactly one channel"
	MsgBitDepth     = "Not 16 or 32 bit"
	MsgFrameCount   = "Wrong number of samples"
	MsgReadFailed   = "Error while reading byte stream."
	MsgNoSamples    = "No sample data"
	MsgParseFailed  = "File could not be parsed as a Fathom wave table."
	MsgWriteFailed  = "Target file could not be written."
)

// ConversionError is the failure of a single conversion. Messages lists
// every problem found, in check order; Err is the underlying cause, if any.
type ConversionError struct {
	Kind     Kind
	Source   string
	Messages []string
	Err      error
}

func (e *ConversionError) Error() string {
	msg := e.Kind.String() + " failed"
	if len(e.Messages) > 0 {
		msg = strings.Join(e.Messages, "; ")
	}

	if e.Source != "" {
		msg = e.Source + ": " + msg
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *ConversionError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *ConversionError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func newError(kind Kind, source string, err error, messages ...string) *ConversionError {
	return &ConversionError{
		Kind:     kind,
		Source:   source,
		Messages: messages,
		Err:      err,
	}
}

// openError reports a source that could not be opened from disk.
func openError(path string, err error) *ConversionError {
	msg := MsgUnreadable
	if errors.Is(err, fs.ErrNotExist) {
		msg = MsgFileNotFound
	}

	return newError(KindOpen, path, err, msg)
}

// withSource fills in the source path of a ConversionError built before
// the path was known.
func withSource(err error, source string) error {
	var convErr *ConversionError
	if errors.As(err, &convErr) && convErr.Source == "" {
		convErr.Source = source
	}

	return err
}
