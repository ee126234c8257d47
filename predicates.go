// predicates.go: classification questions over any error.
//
// CategoryOf, SQLStateOf and VendorCodeOf look at the first record on err's
// unwrap chain (errors.As order). HasState and HasCategory search the whole
// graph, siblings included, using Walk.
package sqlerror

import (
	"context"
	"errors"
)

// CategoryOf returns the category of the first record in err's unwrap chain.
func CategoryOf(err error) (Category, bool) {
	var rec *Error
	if errors.As(err, &rec) {
		return rec.cat, true
	}
	return CategoryGeneric, false
}

// SQLStateOf returns the SQLSTATE of the first record in err's unwrap chain.
func SQLStateOf(err error) string {
	var rec *Error
	if errors.As(err, &rec) {
		return rec.state
	}
	return ""
}

// VendorCodeOf returns the vendor code of the first record in err's unwrap
// chain.
func VendorCodeOf(err error) int {
	var rec *Error
	if errors.As(err, &rec) {
		return rec.vendor
	}
	return 0
}

// IsTransient reports whether retrying the failed operation may succeed.
// A bare context.DeadlineExceeded counts as transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if cat, ok := CategoryOf(err); ok {
		return cat.IsTransient()
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// IsNonTransient reports whether err is in the non-transient family.
func IsNonTransient(err error) bool {
	cat, ok := CategoryOf(err)
	return ok && cat.IsNonTransient()
}

// IsRecoverable reports whether err asks the application to run recovery
// steps before retrying.
func IsRecoverable(err error) bool {
	cat, ok := CategoryOf(err)
	return ok && cat == CategoryRecoverable
}

// IsWarning reports whether err is a warning rather than a failure.
func IsWarning(err error) bool {
	cat, ok := CategoryOf(err)
	return ok && cat.IsWarning()
}

// HasState reports whether any record reachable from err carries state.
func HasState(err error, state string) bool {
	found := false
	Walk(err, func(e error) bool {
		if rec, ok := e.(*Error); ok && rec.state == state {
			found = true
		}
		return !found
	})
	return found
}

// HasCategory reports whether any record reachable from err belongs to
// family.
func HasCategory(err error, family Category) bool {
	found := false
	Walk(err, func(e error) bool {
		if rec, ok := e.(*Error); ok && rec.cat.Is(family) {
			found = true
		}
		return !found
	})
	return found
}
