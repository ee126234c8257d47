// context.go: ordered, copy-on-write key/value fields attached to a record.
//
// Fields keep insertion order so verbose output and diagnostics are stable.
// A published fields slice is never written again; every addition allocates.
package sqlerror

// Field is one key/value pair attached to an *Error.
type Field struct {
	Key string
	Val any
}

type fields []Field

// with returns a fresh slice holding fs followed by add.
func (fs fields) with(add ...Field) fields {
	if len(fs)+len(add) == 0 {
		return nil
	}
	out := make(fields, len(fs)+len(add))
	copy(out, fs)
	copy(out[len(fs):], add)
	return out
}

// lookup scans newest first so the last write wins without building a map.
func (fs fields) lookup(key string) (any, bool) {
	for i := len(fs) - 1; i >= 0; i-- {
		if fs[i].Key == key {
			return fs[i].Val, true
		}
	}
	return nil, false
}

func (fs fields) toMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		if f.Key == "" {
			continue
		}
		m[f.Key] = f.Val
	}
	return m
}

// fieldsFromKV reads (key, value) pairs left to right. A pair whose key is
// not a string is dropped whole so later pairs stay aligned; a trailing key
// gets a nil value.
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
