package tokenizer

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned by Peek and Next once no tokens remain. It is the
// normal end-of-stream signal, not a failure; HasMore is the intended way to
// drive a scan loop.
var ErrExhausted = errors.New("tokenizer: no more tokens")

// InvalidCharacterError reports a byte classified as Invalid. The scan cannot
// continue past it. Line and Col are 1-based.
type InvalidCharacterError struct {
	Char byte
	Line int
	Col  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("tokenizer: invalid character %q at line %d, column %d", e.Char, e.Line, e.Col)
}

// DanglingEscapeError reports an escape byte with nothing after it on its
// line, which leaves no character to form a control sequence from. It can
// only occur with end-of-line synthesis disabled. Line and Col are 1-based.
type DanglingEscapeError struct {
	Line int
	Col  int
}

func (e *DanglingEscapeError) Error() string {
	return fmt.Sprintf("tokenizer: escape character at end of line %d, column %d", e.Line, e.Col)
}
