// iterate.go: interleaved traversal of siblings and their causes.
//
// Order: the record itself, then its cause, the cause's cause and so on
// until the cause chain ends, then the next sibling followed by that
// sibling's causes, and so on down the chain. Causes of a record are always
// exhausted before moving on to the next sibling.
//
// Traversal is iterative; neither long sibling chains nor long cause chains
// grow the goroutine stack. Causes are followed through Unwrap() error only;
// a cause that unwraps to several errors ends its cause chain. An error met a
// second time within one cause chain ends that chain, so cyclic Unwrap
// implementations cannot loop. The guard is per chain: two siblings wrapping
// the same cause (io.EOF, say) each show it. A sibling record that was
// already yielded as some record's cause is not yielded again.
package sqlerror

import "iter"

// Iterator walks a chain in interleaved order. It is not safe for use by
// several goroutines, but the chain it walks may be appended to concurrently:
// an append that lands before the iterator reaches the old tail is observed.
type Iterator struct {
	head    *Error
	sibling *Error
	cause   error
	pending error

	chain    seenSet // the current record and its cause chain
	records  seenSet // every record yielded
	siblings seenSet // every sibling visited, yielded or not
}

// Iterator returns a fresh iterator positioned before e.
func (e *Error) Iterator() *Iterator {
	return &Iterator{head: e}
}

// HasNext reports whether Next would return an element.
func (it *Iterator) HasNext() bool {
	if it.pending == nil {
		it.pending = it.advance()
	}
	return it.pending != nil
}

// Next returns the next element, or (nil, false) once the chain is exhausted.
// A later Next may still succeed if a sibling is appended in between.
func (it *Iterator) Next() (error, bool) {
	err := it.pending
	if err == nil {
		err = it.advance()
	}
	it.pending = nil
	return err, err != nil
}

// Remove always fails: chains cannot be shortened.
func (it *Iterator) Remove() error {
	return ErrUnsupportedOperation
}

func (it *Iterator) advance() error {
	if it.head != nil {
		cur := it.head
		it.head = nil
		it.siblings.mark(cur)
		it.records.mark(cur)
		it.startChain(cur)
		return cur
	}
	if it.cause != nil {
		cur := it.cause
		if rec, ok := cur.(*Error); ok {
			it.records.mark(rec)
		}
		it.cause = it.causeOf(cur)
		return cur
	}
	for it.sibling != nil {
		nx := it.sibling.next.Load()
		if nx == nil {
			// Keep the position so a later append is still picked up.
			return nil
		}
		if !it.siblings.mark(nx) {
			it.sibling = nil
			return nil
		}
		it.sibling = nx
		if !it.records.mark(nx) {
			// Already yielded as some record's cause, together with its
			// own causes.
			continue
		}
		it.startChain(nx)
		return nx
	}
	return nil
}

// startChain makes rec the current sibling and resets the cycle guard for
// its cause chain.
func (it *Iterator) startChain(rec *Error) {
	it.sibling = rec
	it.chain = seenSet{}
	it.chain.mark(rec)
	it.cause = it.causeOf(rec)
}

func (it *Iterator) causeOf(err error) error {
	u, ok := err.(singleUnwrapper)
	if !ok {
		return nil
	}
	c := u.Unwrap()
	if c == nil || !it.chain.mark(c) {
		return nil
	}
	return c
}

// All returns the chain in interleaved order. Each call starts a new
// traversal, so the sequence may be ranged over more than once.
func (e *Error) All() iter.Seq[error] {
	return func(yield func(error) bool) {
		if e == nil {
			return
		}
		it := e.Iterator()
		for {
			err, ok := it.Next()
			if !ok || !yield(err) {
				return
			}
		}
	}
}

// Collect returns All as a slice.
func (e *Error) Collect() []error {
	var out []error
	for err := range e.All() {
		out = append(out, err)
	}
	return out
}
