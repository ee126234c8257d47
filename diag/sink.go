// sink.go: the Sink capability and its in-process implementations.
//
// Package diag reports database-access failures to a log.
//
// There is no process-wide log writer. Code that decides a failure is worth
// reporting receives a Sink and calls Report; everything else stays free of
// logging side effects, which keeps tests quiet and deterministic.
package diag

import (
	"slices"
	"sync"
)

// Sink receives failures worth reporting. Implementations must be safe for
// concurrent use.
type Sink interface {
	Report(err error)
}

// Nop returns a Sink that discards everything.
func Nop() Sink { return nopSink{} }

type nopSink struct{}

func (nopSink) Report(error) {}

// Tee fans every report out to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	out := make(tee, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type tee []Sink

func (t tee) Report(err error) {
	for _, s := range t {
		s.Report(err)
	}
}

// Collector keeps reported errors in memory.
type Collector struct {
	mu   sync.Mutex
	errs []error
}

// Report stores err. nil is ignored.
func (c *Collector) Report(err error) {
	if err == nil {
		return
	}
	c.mu.Lock()
	c.errs = append(c.errs, err)
	c.mu.Unlock()
}

// Reports returns a snapshot of everything reported so far.
func (c *Collector) Reports() []error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.errs)
}

// Reset drops everything collected.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.errs = nil
	c.mu.Unlock()
}
