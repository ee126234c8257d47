// errors.go: parse and range failures as data-exception records.
package sqltime

import (
	"errors"
	"fmt"

	sqlerror "github.com/xgx-io/xgx-sqlerror"
)

var (
	// ErrInvalidFormat matches any failure to parse an escape-format string.
	ErrInvalidFormat = errors.New("sqltime: invalid format")
	// ErrOutOfRange matches components outside their calendar or clock range.
	ErrOutOfRange = errors.New("sqltime: value out of range")
)

const stateDatetimeOverflow = "22008"

func formatError(kind, input, layout string, cause error) *sqlerror.Error {
	wrapped := ErrInvalidFormat
	if cause != nil {
		wrapped = fmt.Errorf("%w: %w", ErrInvalidFormat, cause)
	}
	rec := sqlerror.DataError(fmt.Sprintf("invalid %s %q, want %s", kind, input, layout)).
		WithState(sqlerror.StateInvalidDatetimeFormat).
		WithCause(wrapped)
	return sqlerror.FieldInput.Set(rec, input)
}

func rangeError(kind string, args ...any) *sqlerror.Error {
	return sqlerror.DataError(fmt.Sprintf("%s out of range: %v", kind, args)).
		WithState(stateDatetimeOverflow).
		WithCause(ErrOutOfRange)
}
