// construct.go: constructors and copy-on-write builders.
//
// Constructors create an unlinked record in a given category. Builders never
// touch the receiver: they return a fresh record that carries the receiver's
// fields with one change applied and no sibling link. Link records with
// Append once they are fully built.
package sqlerror

import "fmt"

// New creates an unclassified record.
func New(msg, state string, vendor int) *Error {
	return &Error{msg: msg, state: state, vendor: vendor, cat: CategoryGeneric}
}

// Newf is New with a formatted message and no state or vendor code.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), cat: CategoryGeneric}
}

func newIn(cat Category, msg string) *Error {
	return &Error{msg: msg, cat: cat}
}

// Transient reports a failure that may succeed if retried unchanged.
func Transient(msg string) *Error { return newIn(CategoryTransient, msg) }

// TransientConnection reports a connection failure that a retry may cure.
func TransientConnection(msg string) *Error { return newIn(CategoryTransientConnection, msg) }

// TransactionRollback reports a transaction the database rolled back, e.g.
// after a deadlock or serialization failure.
func TransactionRollback(msg string) *Error { return newIn(CategoryTransactionRollback, msg) }

// Timeout reports that a statement or login timeout expired.
func Timeout(msg string) *Error { return newIn(CategoryTimeout, msg).WithState(StateTimeoutExpired) }

// NonTransient reports a failure that repeats until its cause is fixed.
func NonTransient(msg string) *Error { return newIn(CategoryNonTransient, msg) }

// NonTransientConnection reports a connection that cannot be established or
// is gone for good.
func NonTransientConnection(msg string) *Error { return newIn(CategoryNonTransientConnection, msg) }

// DataError reports an invalid value, such as a malformed literal.
func DataError(msg string) *Error { return newIn(CategoryData, msg) }

// FeatureNotSupported reports an optional capability the driver lacks.
func FeatureNotSupported(msg string) *Error {
	return newIn(CategoryFeatureNotSupported, msg).WithState(StateFeatureNotSupported)
}

// IntegrityViolation reports a violated constraint such as a duplicate key.
func IntegrityViolation(msg string) *Error { return newIn(CategoryIntegrityConstraint, msg) }

// InvalidAuthorization reports rejected credentials.
func InvalidAuthorization(msg string) *Error { return newIn(CategoryInvalidAuthorization, msg) }

// Syntax reports a statement the database could not parse or resolve.
func Syntax(msg string) *Error { return newIn(CategorySyntax, msg) }

// Recoverable reports a failure the application can recover from by closing
// the connection and retrying.
func Recoverable(msg string) *Error { return newIn(CategoryRecoverable, msg) }

// Warn creates a warning record. Warnings chain like any other record.
func Warn(msg, state string, vendor int) *Error {
	if state == "" {
		state = StateGeneralWarning
	}
	return &Error{msg: msg, state: state, vendor: vendor, cat: CategoryWarning}
}

// WithState returns a copy carrying the given SQLSTATE.
func (e *Error) WithState(state string) *Error {
	n := e.clone()
	n.state = state
	return n
}

// WithVendorCode returns a copy carrying the given vendor code.
func (e *Error) WithVendorCode(code int) *Error {
	n := e.clone()
	n.vendor = code
	return n
}

// WithCause returns a copy wrapping cause. If the copy has no message, the
// cause's text becomes the message.
func (e *Error) WithCause(cause error) *Error {
	n := e.clone()
	n.cause = cause
	if n.msg == "" && cause != nil {
		n.msg = cause.Error()
	}
	return n
}

// WithCategory returns a reclassified copy. Invalid categories are ignored.
func (e *Error) WithCategory(c Category) *Error {
	n := e.clone()
	if c.Valid() {
		n.cat = c
	}
	return n
}

// With returns a copy with one more context field.
func (e *Error) With(key string, val any) *Error {
	n := e.clone()
	n.ctx = e.ctx.with(Field{Key: key, Val: val})
	return n
}

// Ctx returns a copy with the given fields appended. msg only fills an empty
// message; it never replaces or concatenates an existing one.
func (e *Error) Ctx(msg string, kv ...any) *Error {
	n := e.clone()
	if n.msg == "" {
		n.msg = msg
	}
	if add := fieldsFromKV(kv...); len(add) > 0 {
		n.ctx = e.ctx.with(add...)
	}
	return n
}

// WithStack returns a copy carrying the caller's stack.
func (e *Error) WithStack() *Error { return e.WithStackSkip(1) }

// WithStackSkip is WithStack for helpers: skip extra frames are dropped
// above the caller.
func (e *Error) WithStackSkip(skip int) *Error {
	n := e.clone()
	n.stk = callers(skip + 1)
	return n
}
