// stack.go: opt-in stack capture.
//
// Stacks are only captured when a caller asks for one (WithStack) so that
// building records on a hot failure path stays cheap.
package sqlerror

import "runtime"

// Frame is one resolved call site.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack lists frames from the innermost call outward.
type Stack []Frame

const maxStackDepth = 64

// callers resolves the stack of the function `skip` levels above its caller.
// skip == 0 starts at the caller of callers.
func callers(skip int) Stack {
	pcs := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and callers itself.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	out := make(Stack, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{PC: fr.PC, File: fr.File, Line: fr.Line, Function: fr.Function})
		if !more {
			return out
		}
	}
}
