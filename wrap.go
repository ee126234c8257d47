// wrap.go: adapt arbitrary errors into records.
//
// Foreign errors keep their identity as the cause, so errors.Is/As against
// the original value still succeeds through Unwrap. Well-known stdlib
// failures are classified on the way in:
//
//	context.DeadlineExceeded  → CategoryTimeout, HYT00
//	context.Canceled          → CategoryGeneric, HY008
//	driver.ErrBadConn         → CategoryTransientConnection, 08006
//	sql.ErrConnDone           → CategoryNonTransientConnection, 08003
package sqlerror

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
)

// From converts err into a record without adding a message of its own.
//   - nil → nil
//   - *Error → returned as is
//   - anything else → a new record whose cause is err
func From(err error) *Error {
	if err == nil {
		return nil
	}
	if rec, ok := err.(*Error); ok {
		return rec
	}
	cat, state := classify(err)
	return &Error{msg: err.Error(), state: state, cat: cat, cause: err}
}

// Wrap creates a new record with message msg around err. The category and
// SQLSTATE are inherited from the nearest record in err's unwrap chain, or
// derived from err when there is none. Wrap(nil, ...) returns a generic
// record carrying only msg and the fields.
func Wrap(err error, msg string, kv ...any) *Error {
	rec := &Error{msg: msg, cat: CategoryGeneric, ctx: fieldsFromKV(kv...), cause: err}
	if err == nil {
		return rec
	}
	var inner *Error
	if errors.As(err, &inner) {
		rec.cat, rec.state, rec.vendor = inner.cat, inner.state, inner.vendor
		return rec
	}
	rec.cat, rec.state = classify(err)
	return rec
}

// WithStack adapts err with From and returns a copy carrying the caller's
// stack. It returns nil for nil.
func WithStack(err error) *Error {
	rec := From(err)
	if rec == nil {
		return nil
	}
	return rec.WithStackSkip(1)
}

func classify(err error) (Category, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CategoryTimeout, StateTimeoutExpired
	case errors.Is(err, context.Canceled):
		return CategoryGeneric, StateOperationCanceled
	case errors.Is(err, driver.ErrBadConn):
		return CategoryTransientConnection, StateConnectionFailure
	case errors.Is(err, sql.ErrConnDone):
		return CategoryNonTransientConnection, StateConnectionDoesNotExist
	}
	return CategoryGeneric, ""
}
