// error.go: the chained database-access error record.
//
// An *Error is one failure reported by a driver or database. Related
// failures (later statements of the same batch, follow-up warnings) are
// linked behind it as siblings through Append; the lower-level error that
// triggered it is its cause and is exposed through Unwrap.
//
// Mutation rules:
//   - The sibling link is the only mutable field. It is written at most once,
//     through a compare-and-swap, and read freely by any goroutine.
//   - Everything else is fixed at construction. Fluent builders (With, Ctx,
//     WithState, ...) return a NEW, unlinked record.
package sqlerror

import (
	"errors"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/xgx-io/xgx-sqlerror/sqltypes"
)

var (
	// ErrInvalidArgument is returned when a required argument is nil.
	ErrInvalidArgument = errors.New("sqlerror: invalid argument")
	// ErrCycle is returned by Append when linking would make the chain loop.
	ErrCycle = errors.New("sqlerror: append would create a cycle")
	// ErrUnsupportedOperation is returned by Iterator.Remove.
	ErrUnsupportedOperation = errors.New("sqlerror: unsupported operation")
)

// Error is a database-access failure that can be chained to related failures.
// The zero value is not useful; use a constructor.
type Error struct {
	msg    string
	state  string
	vendor int
	cat    Category
	cause  error
	ctx    fields
	stk    Stack

	counts *updateCounts
	trunc  *TruncationInfo
	props  map[string]sqltypes.ClientInfoStatus

	next atomic.Pointer[Error]
}

// Error renders the message followed by the SQLSTATE and vendor code when
// they are set, e.g. `table "users" not found (sqlstate=42S02 vendor=1146)`.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.msg
	if msg == "" {
		msg = e.cat.String()
	}
	if e.state == "" && e.vendor == 0 {
		return msg
	}
	var sb strings.Builder
	sb.Grow(len(msg) + 32)
	sb.WriteString(msg)
	sb.WriteString(" (")
	if e.state != "" {
		sb.WriteString("sqlstate=")
		sb.WriteString(e.state)
	}
	if e.vendor != 0 {
		if e.state != "" {
			sb.WriteByte(' ')
		}
		sb.WriteString("vendor=")
		sb.WriteString(strconv.Itoa(e.vendor))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Unwrap returns the wrapped cause. Siblings are not part of the unwrap
// chain; use All or Walk to visit them.
func (e *Error) Unwrap() error { return e.cause }

// Message returns the human-readable reason.
func (e *Error) Message() string { return e.msg }

// SQLState returns the five-character SQLSTATE, or "" when unknown.
func (e *Error) SQLState() string { return e.state }

// VendorCode returns the database-specific error number.
func (e *Error) VendorCode() int { return e.vendor }

// Category returns the failure classification.
func (e *Error) Category() Category { return e.cat }

// Stack returns the captured stack, if any.
func (e *Error) Stack() Stack { return e.stk }

// Context returns a copy of the attached fields (last write wins).
func (e *Error) Context() map[string]any { return e.ctx.toMap() }

// Next returns the sibling linked behind e, or nil.
func (e *Error) Next() *Error {
	if e == nil {
		return nil
	}
	return e.next.Load()
}

// clone copies every immutable field into a fresh, unlinked record.
func (e *Error) clone() *Error {
	return &Error{
		msg:    e.msg,
		state:  e.state,
		vendor: e.vendor,
		cat:    e.cat,
		cause:  e.cause,
		ctx:    e.ctx.with(),
		stk:    e.stk,
		counts: e.counts,
		trunc:  e.trunc,
		props:  e.props,
	}
}
