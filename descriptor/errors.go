package descriptor

import (
	"errors"
	"fmt"
)

// ErrFormat matches every *FormatError under errors.Is.
var ErrFormat = errors.New("malformed descriptor")

// FormatError reports a syntax error in a descriptor string. Index is the
// zero-based position of the parser when it gave up.
type FormatError struct {
	Message string
	Input   string
	Index   int
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s (input: '%s' index: %d)", e.Message, e.Input, e.Index)
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
