package sequence

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every *OutOfRangeError via errors.Is.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports a checked access outside [0, Len).
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("sequence: index %d out of range [0, %d)", e.Index, e.Len)
}

// Is lets errors.Is(err, ErrOutOfRange) succeed for any OutOfRangeError.
func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
