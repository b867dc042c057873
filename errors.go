package colorformats

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWrongLength is matched by every *LengthError.
	ErrWrongLength = errors.New("wrong number of bytes")
	// ErrUnknownFormat is returned when decoding raw parts with a format
	// tag that is not one of the known formats.
	ErrUnknownFormat = errors.New("unknown color format")
)

// LengthError reports a byte slice that does not match any of the
// footprints of the format it was being decoded as.
type LengthError struct {
	Type     string
	Expected []int
	Got      int
}

func (e *LengthError) Error() string {
	exp := make([]string, len(e.Expected))
	for i, n := range e.Expected {
		exp[i] = fmt.Sprint(n)
	}
	return fmt.Sprintf("%s: wrong number of bytes: expected %s, got %d", e.Type, strings.Join(exp, " or "), e.Got)
}

func (e *LengthError) Is(target error) bool { return target == ErrWrongLength }
