// unwrap.go: cycle-safe traversal over arbitrary error graphs.
//
// Walk generalizes the interleaved order of All to any error value: a
// record's children are its cause followed by its next sibling, and other
// errors contribute their Unwrap() error or Unwrap() []error children. The
// walk is a pre-order DFS on an explicit stack, so for a plain chain whose
// causes are all distinct it yields exactly what All yields. Unlike All it
// visits every error once across the whole graph, and it also descends into
// the sibling chains of records that appear as causes.
//
// Seen tracking cannot use map[error] blindly: an interface whose dynamic
// type is not comparable panics as a map key. Comparable values go in one
// set, non-comparable pointers are tracked by address, and anything else is
// treated as acyclic and bounded by maxUntracked. Records are always
// tracked, so sibling chains of any length are walked to the end.
package sqlerror

import (
	"errors"
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

// maxUntracked bounds how many errors the seen set cannot identify (neither
// comparable nor pointers) a single Walk will descend into.
const maxUntracked = 1 << 12

type seenSet struct {
	byVal map[error]struct{}
	byPtr map[uintptr]struct{}
}

// mark records err and reports whether it was not seen before.
func (s *seenSet) mark(err error) bool {
	fresh, _ := s.track(err)
	return fresh
}

// track is mark that also reports whether err could be recorded at all.
// Untracked values are always fresh, so a cycle through them is only
// stopped by a bound.
func (s *seenSet) track(err error) (fresh, tracked bool) {
	if err == nil {
		return false, true
	}
	if rec, ok := err.(*Error); ok {
		return s.markVal(rec), true
	}
	t := reflect.TypeOf(err)
	if t.Comparable() {
		return s.markVal(err), true
	}
	if v := reflect.ValueOf(err); v.Kind() == reflect.Pointer && !v.IsNil() {
		if s.byPtr == nil {
			s.byPtr = make(map[uintptr]struct{}, 4)
		}
		id := v.Pointer()
		if _, dup := s.byPtr[id]; dup {
			return false, true
		}
		s.byPtr[id] = struct{}{}
		return true, true
	}
	return true, false
}

func (s *seenSet) markVal(err error) bool {
	if s.byVal == nil {
		s.byVal = make(map[error]struct{}, 8)
	}
	if _, dup := s.byVal[err]; dup {
		return false
	}
	s.byVal[err] = struct{}{}
	return true
}

// Walk visits every distinct error reachable from err in pre-order and stops
// early when visit returns false. For a record the order matches All.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	var seen seenSet
	seen.mark(err)
	stack := make([]error, 1, 8)
	stack[0] = err

	untracked := 0
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(cur) {
			return
		}
		kids := children(cur)
		// Push right to left so the leftmost child is visited first.
		for i := len(kids) - 1; i >= 0; i-- {
			fresh, tracked := seen.track(kids[i])
			if !fresh {
				continue
			}
			if !tracked {
				if untracked >= maxUntracked {
					continue
				}
				untracked++
			}
			stack = append(stack, kids[i])
		}
	}
}

func children(err error) []error {
	switch e := err.(type) {
	case *Error:
		var kids []error
		if e.cause != nil {
			kids = append(kids, e.cause)
		}
		if nx := e.next.Load(); nx != nil {
			kids = append(kids, nx)
		}
		return kids
	case multiUnwrapper:
		return e.Unwrap()
	case singleUnwrapper:
		if u := e.Unwrap(); u != nil {
			return []error{u}
		}
	}
	return nil
}

// RootCause follows Unwrap() error links to the innermost error. It returns
// err itself when nothing is wrapped and nil for nil.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	var seen seenSet
	seen.mark(err)
	for {
		next := errors.Unwrap(err)
		if next == nil || !seen.mark(next) {
			return err
		}
		err = next
	}
}
