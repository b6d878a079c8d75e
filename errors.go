package huffpack

import (
	"errors"
	"fmt"
)

// ErrCorruptContainer is returned by Decompress when a container does not
// parse or does not decode cleanly.  Errors returned by this package wrap
// it with details; test for it with errors.Is.
var ErrCorruptContainer = errors.New("corrupt container")

// ErrUnresolvedTrailingBits is the ErrCorruptContainer case where the
// payload ends partway through a code.
var ErrUnresolvedTrailingBits = fmt.Errorf("%w: unresolved trailing bits", ErrCorruptContainer)

func corruptf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorruptContainer, fmt.Sprintf(format, args...))
}
