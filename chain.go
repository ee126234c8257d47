// chain.go: lock-free sibling chain.
//
// Append is an insert-at-tail on a singly linked list whose links are
// atomic.Pointer values. Finding the tail and publishing the link are retried
// together: when a compare-and-swap loses, another appender has just linked a
// node behind the node we were looking at, so the scan continues from there.
//
// Two goroutines cross-linking two chains (a.Append(b) while b.Append(a))
// are not supported; the cycle check cannot observe a link that has not
// been published yet.
package sqlerror

// Append links next at the end of e's chain. It never blocks and never fails
// because of contention. It returns ErrInvalidArgument if e or next is nil
// and ErrCycle if next's chain already reaches e's tail; in both cases the
// chain is left unchanged.
//
// next keeps its own siblings: appending a chain splices the whole chain.
func (e *Error) Append(next *Error) error {
	if e == nil || next == nil {
		return ErrInvalidArgument
	}
	cur := e
	for {
		if nx := cur.next.Load(); nx != nil {
			cur = nx
			continue
		}
		if reaches(next, cur) {
			return ErrCycle
		}
		if cur.next.CompareAndSwap(nil, next) {
			return nil
		}
		// Lost the race for cur's slot; cur.next is now set, keep walking.
	}
}

// reaches reports whether target is in the sibling chain starting at from.
func reaches(from, target *Error) bool {
	for n := from; n != nil; n = n.next.Load() {
		if n == target {
			return true
		}
	}
	return false
}

// Len returns the number of records in the chain starting at e.
func (e *Error) Len() int {
	n := 0
	for cur := e; cur != nil; cur = cur.next.Load() {
		n++
	}
	return n
}

// Tail returns the last record currently in e's chain.
func (e *Error) Tail() *Error {
	if e == nil {
		return nil
	}
	cur := e
	for nx := cur.next.Load(); nx != nil; nx = cur.next.Load() {
		cur = nx
	}
	return cur
}

// Siblings returns a snapshot of the chain starting at e, e included.
func (e *Error) Siblings() []*Error {
	var out []*Error
	for cur := e; cur != nil; cur = cur.next.Load() {
		out = append(out, cur)
	}
	return out
}
