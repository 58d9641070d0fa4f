package backend

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrTruncatedStatus = errors.New("truncated status output")
	ErrRepoNotSet      = errors.New("repository root not set")
)

// MalformedRecordError describes commit output that does not have the
// hash/parents/message shape.
type MalformedRecordError struct {
	Reason string
	Input  string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s: %s (input %q)", ErrMalformedRecord, e.Reason, truncateForError(e.Input))
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

// TruncatedError is returned when a status stream ends while a record is
// still incomplete.
type TruncatedError struct {
	Leftover []byte
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s: %d undecoded bytes (%q)", ErrTruncatedStatus, len(e.Leftover), truncateForError(string(e.Leftover)))
}

func (e *TruncatedError) Unwrap() error {
	return ErrTruncatedStatus
}

func truncateForError(s string) string {
	const limit = 64
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
