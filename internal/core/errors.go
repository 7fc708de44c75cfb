package core

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every *IndexOutOfRange via errors.Is.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexOutOfRange reports a row or column query outside the board.
type IndexOutOfRange struct {
	Kind  string // "row" or "column"
	Index int
	Len   int
}

func (e *IndexOutOfRange) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

// Is lets errors.Is(err, ErrIndexOutOfRange) match.
func (e *IndexOutOfRange) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CheckIndex returns an *IndexOutOfRange if i is outside [0, n).
func CheckIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRange{Kind: kind, Index: i, Len: n}
	}
	return nil
}

// Fault is an unrecoverable, user-facing failure.
// It is surfaced only at the process boundary.
type Fault struct {
	Op  string
	Msg string
	Err error
}

// NewFault creates a fault for the given operation.
func NewFault(op, msg string, err error) *Fault {
	return &Fault{Op: op, Msg: msg, Err: err}
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Op, f.Msg, f.Err)
	}
	return fmt.Sprintf("%s: %s", f.Op, f.Msg)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
