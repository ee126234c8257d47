// format.go: fmt.Formatter for records.
//
//	%s, %v  → Error()
//	%q      → quoted Error()
//	%+v     → the whole chain, one block per element in All order:
//
//	  category=syntax error sqlstate=42000 vendor=1064 msg="bad token"
//	  ctx: statement=3
//	  stack:
//	    pkg.fn /src/file.go:12
//	  caused by: io: read timeout
//	  next: category=batch update msg="batch failed"
//
// Causes are printed with %v because the traversal itself already visits
// the cause chain; recursing with %+v would print it twice.
package sqlerror

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter; %+v prints the whole chain.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			writeChain(s, e)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

func writeChain(w io.Writer, head *Error) {
	first := true
	it := head.Iterator()
	for {
		err, ok := it.Next()
		if !ok {
			return
		}
		rec, isRec := err.(*Error)
		switch {
		case first:
			writeRecord(w, rec)
			first = false
		case isRec && it.sibling == rec:
			// The iterator only moves its sibling cursor onto siblings.
			_, _ = io.WriteString(w, "\nnext: ")
			writeRecord(w, rec)
		case isRec:
			_, _ = io.WriteString(w, "\ncaused by: ")
			writeRecord(w, rec)
		default:
			_, _ = fmt.Fprintf(w, "\ncaused by: %v", err)
		}
	}
}

func writeRecord(w io.Writer, e *Error) {
	_, _ = fmt.Fprintf(w, "category=%s", e.cat)
	if e.state != "" {
		_, _ = fmt.Fprintf(w, " sqlstate=%s", e.state)
	}
	if e.vendor != 0 {
		_, _ = fmt.Fprintf(w, " vendor=%d", e.vendor)
	}
	_, _ = fmt.Fprintf(w, " msg=%q", e.msg)
	if len(e.ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range e.ctx {
			_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
		}
	}
	if e.counts != nil && e.counts.large != nil {
		_, _ = fmt.Fprintf(w, "\nupdate counts: %v", e.counts.large)
	}
	if len(e.stk) > 0 {
		_, _ = io.WriteString(w, "\nstack:")
		for _, fr := range e.stk {
			_, _ = fmt.Fprintf(w, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
}
