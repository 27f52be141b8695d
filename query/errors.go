package query

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the sentinel wrapped, with line context, around every
// parse failure in a queries file.
var ErrMalformedInput = errors.New("query: malformed input")

func parseErrorf(lineNo int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: line %d: %s", ErrMalformedInput, lineNo, msg)
}
