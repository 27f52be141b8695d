package graphbuilder

import (
	"errors"
	"fmt"
)

// Sentinel errors, wrapped with %w plus line context by builderErrorf.
var (
	ErrMalformedInput   = errors.New("graphbuilder: malformed input")
	ErrNegativeSelfWeight = errors.New("graphbuilder: negative self-weight")
	ErrUnknownEdgeType  = errors.New("graphbuilder: unknown edge type")
)

func builderErrorf(base error, lineNo int, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: line %d: %s", base, lineNo, msg)
}
