// zerolog.go: Logger, a Sink that writes chains as zerolog events.
package diag

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	sqlerror "github.com/xgx-io/xgx-sqlerror"
)

// Logger is a Sink that writes one zerolog event per element of a chain, in
// the chain's interleaved order: each record, then its causes, then the next
// record. Warnings are logged at warn level, everything else at error.
type Logger struct {
	zl     zerolog.Logger
	stacks bool
}

var _ Sink = (*Logger)(nil)

// New builds a Logger from options.
func New(opts ...Option) *Logger {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var zl zerolog.Logger
	if o.logger != nil {
		zl = *o.logger
	} else {
		w := o.writer
		if o.pretty {
			w = zerolog.ConsoleWriter{Out: o.writer, NoColor: true, TimeFormat: time.RFC3339}
		}
		zl = zerolog.New(w).With().Timestamp().Str("service", o.service).Logger()
	}

	return &Logger{zl: zl.Level(o.level), stacks: o.stacks}
}

// Report logs err. A record is expanded into its whole chain; any other
// error is walked through its unwrap graph.
func (l *Logger) Report(err error) {
	if err == nil {
		return
	}
	pos := 0
	emit := func(e error) bool {
		l.event(e, pos)
		pos++
		return true
	}
	if rec, ok := err.(*sqlerror.Error); ok {
		for e := range rec.All() {
			emit(e)
		}
		return
	}
	sqlerror.Walk(err, emit)
}

func (l *Logger) event(err error, pos int) {
	rec, isRec := err.(*sqlerror.Error)

	var ev *zerolog.Event
	if isRec && rec.Category().IsWarning() {
		ev = l.zl.Warn()
	} else {
		ev = l.zl.Error()
	}
	if ev == nil {
		// level disabled
		return
	}

	ev = ev.Int("position", pos)
	if !isRec {
		ev.Str("kind", "cause").Msg(err.Error())
		return
	}
	ev.Str("kind", "record").
		EmbedObject(recordObject{rec: rec, stacks: l.stacks}).
		Msg(rec.Message())
}

// Object adapts a record for zerolog's Object/EmbedObject, e.g.
//
//	log.Error().Object("sql", diag.Object(rec)).Msg("query failed")
func Object(rec *sqlerror.Error) zerolog.LogObjectMarshaler {
	return recordObject{rec: rec}
}

type recordObject struct {
	rec    *sqlerror.Error
	stacks bool
}

func (o recordObject) MarshalZerologObject(e *zerolog.Event) {
	rec := o.rec
	if rec == nil {
		return
	}
	e.Str("category", rec.Category().String())
	if s := rec.SQLState(); s != "" {
		e.Str("sqlstate", s)
	}
	if v := rec.VendorCode(); v != 0 {
		e.Int("vendor", v)
	}
	if counts := rec.LargeUpdateCounts(); counts != nil {
		e.Ints64("update_counts", counts)
	}
	if t, ok := rec.Truncation(); ok {
		e.Dict("truncation", zerolog.Dict().
			Int("index", t.Index).
			Bool("parameter", t.Parameter).
			Bool("read", t.Read).
			Int("data_size", t.DataSize).
			Int("transfer_size", t.TransferSize))
	}
	if props := rec.FailedProperties(); len(props) > 0 {
		d := zerolog.Dict()
		for name, status := range props {
			d.Str(name, status.String())
		}
		e.Dict("failed_properties", d)
	}
	if ctx := rec.Context(); len(ctx) > 0 {
		e.Fields(ctx)
	}
	if o.stacks {
		if stk := rec.Stack(); len(stk) > 0 {
			frames := make([]string, len(stk))
			for i, fr := range stk {
				frames[i] = fmt.Sprintf("%s %s:%d", fr.Function, fr.File, fr.Line)
			}
			e.Strs("stack", frames)
		}
	}
}
