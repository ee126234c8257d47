// join.go: build one chain out of several failures.
package sqlerror

// Join links the given errors into one chain, in argument order, and returns
// its head. nil entries are skipped; non-*Error values are adapted with From.
// *Error arguments are linked in place, so their existing siblings come
// along. An argument already reachable from the chain is skipped rather than
// linked twice. Join returns nil if every argument is nil.
func Join(errs ...error) *Error {
	var head *Error
	for _, err := range errs {
		rec := From(err)
		if rec == nil {
			continue
		}
		if head == nil {
			head = rec
			continue
		}
		if reaches(head, rec) {
			continue
		}
		// ErrCycle here means rec's chain already holds head's tail; skipping
		// rec keeps every record reachable exactly once.
		_ = head.Append(rec)
	}
	return head
}
