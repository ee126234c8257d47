// doc.go: package documentation for sqltime
//
// Package sqltime implements the SQL escape-syntax temporal values DATE,
// TIME and TIMESTAMP.
//
// Each type carries only the components its SQL type has: a Date has no
// clock, a Time has no calendar, and a Timestamp has both plus nanoseconds.
// None of them carries a zone; conversions to and from time.Time read or
// supply the civil fields and leave the zone to the caller.
//
// Escape formats:
//
//	DATE       yyyy-[m]m-[d]d                     → yyyy-mm-dd
//	TIME       [h]h:[m]m:[s]s                     → hh:mm:ss
//	TIMESTAMP  yyyy-[m]m-[d]d [h]h:[m]m:[s]s[.f…] → yyyy-mm-dd hh:mm:ss.f
//
// Malformed input fails with a *sqlerror.Error of category data exception
// (SQLSTATE 22007) that matches errors.Is(err, ErrInvalidFormat).
//
// All three types implement driver.Valuer and sql.Scanner so they can be
// bound as parameters and scanned from rows directly.
package sqltime
