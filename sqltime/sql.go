// sql.go: database/sql Valuer and Scanner implementations.
package sqltime

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	sqlerror "github.com/xgx-io/xgx-sqlerror"
)

var (
	_ driver.Valuer = Date{}
	_ driver.Valuer = Time{}
	_ driver.Valuer = Timestamp{}
	_ sql.Scanner   = (*Date)(nil)
	_ sql.Scanner   = (*Time)(nil)
	_ sql.Scanner   = (*Timestamp)(nil)
)

// Value binds d as midnight UTC.
func (d Date) Value() (driver.Value, error) { return d.t, nil }

// Value binds t as its hh:mm:ss text, which every driver accepts for TIME.
func (t Time) Value() (driver.Value, error) { return t.String(), nil }

// Value binds ts as a UTC time.Time carrying its civil fields.
func (ts Timestamp) Value() (driver.Value, error) { return ts.t, nil }

// Scan accepts time.Time, string and []byte.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case string, []byte:
		parsed, err := ParseDate(asString(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	return scanError("Date", src)
}

// Scan accepts time.Time, string and []byte.
func (t *Time) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOf(v)
		return nil
	case string, []byte:
		parsed, err := ParseTime(asString(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	return scanError("Time", src)
}

// Scan accepts time.Time, string and []byte.
func (ts *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts = TimestampOf(v)
		return nil
	case string, []byte:
		parsed, err := ParseTimestamp(asString(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	}
	return scanError("Timestamp", src)
}

func asString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v.(string)
}

func scanError(into string, src any) error {
	if src == nil {
		return sqlerror.DataError("cannot scan NULL into sqltime." + into).
			WithState("22002")
	}
	return sqlerror.DataError(fmt.Sprintf("cannot scan %T into sqltime.%s", src, into)).
		WithState("22018")
}
