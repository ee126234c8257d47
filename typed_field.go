// typed_field.go: type-safe access to context fields.
//
// A TypedField names a context key and the Go type stored under it. It is a
// thin layer over With and Context; both APIs can be mixed freely.
//
//	var StatementIndex = sqlerror.FieldOf[int]("statement")
//
//	err := StatementIndex.Set(sqlerror.Syntax("bad token"), 3)
//	idx, ok := StatementIndex.Get(err) // 3, true
//
// The stored dynamic type must be exactly T; no conversions are made.
package sqlerror

import "fmt"

// TypedField is a context key bound to a value type.
type TypedField[T any] struct {
	key string
}

// FieldOf returns the TypedField for key.
func FieldOf[T any](key string) TypedField[T] { return TypedField[T]{key: key} }

// Key returns the context key.
func (f TypedField[T]) Key() string { return f.key }

// Set returns a copy of e carrying key = val. A nil e yields a generic
// record holding only the field.
func (f TypedField[T]) Set(e *Error, val T) *Error {
	if e == nil {
		e = &Error{cat: CategoryGeneric}
	}
	return e.With(f.key, val)
}

// Get returns the value stored under the key by the first record reachable
// from err (siblings included, in Walk order) that carries it. Within one
// record the last write wins.
func (f TypedField[T]) Get(err error) (T, bool) {
	var (
		zero  T
		out   T
		found bool
	)
	Walk(err, func(e error) bool {
		rec, ok := e.(*Error)
		if !ok {
			return true
		}
		v, ok := rec.ctx.lookup(f.key)
		if !ok {
			return true
		}
		out, found = v.(T)
		return false
	})
	if !found {
		return zero, false
	}
	return out, true
}

// MustGet is Get for code where absence is a programming error. It panics
// if the field is missing or holds another type.
func (f TypedField[T]) MustGet(err error) T {
	var zero T
	if err == nil {
		panic(fmt.Errorf("sqlerror.TypedField[%T](%q): error is nil", zero, f.key))
	}
	v, ok := f.Get(err)
	if !ok {
		panic(fmt.Errorf("sqlerror.TypedField[%T](%q): field missing or of another type", zero, f.key))
	}
	return v
}

// Well-known fields attached by this module and by drivers built on it.
var (
	// FieldStatement is the SQL text being executed.
	FieldStatement = FieldOf[string]("statement")
	// FieldBatchIndex is the position of the failing statement in a batch.
	FieldBatchIndex = FieldOf[int]("batch_index")
	// FieldInput is the raw text a value was parsed from.
	FieldInput = FieldOf[string]("input")
)
