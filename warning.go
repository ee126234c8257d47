// warning.go: data truncation and client-info failures.
package sqlerror

import (
	"maps"

	"github.com/xgx-io/xgx-sqlerror/sqltypes"
)

// TruncationInfo describes a value that was cut short while being read from
// or written to the database.
type TruncationInfo struct {
	// Index is the column or parameter index, -1 when unknown.
	Index int
	// Parameter is true for a parameter value, false for a column value.
	Parameter bool
	// Read is true when truncation happened on read.
	Read bool
	// DataSize is the number of bytes that should have been transferred,
	// -1 when unknown.
	DataSize int
	// TransferSize is the number of bytes actually transferred.
	TransferSize int
}

// DataTruncation reports a truncated value. The SQLSTATE is 01004 for reads
// and 22001 for writes.
func DataTruncation(info TruncationInfo, cause error) *Error {
	state := StateStringRightTruncation
	if info.Read {
		state = StateDataTruncationRead
	}
	t := info
	return &Error{
		msg:   "data truncation",
		state: state,
		cat:   CategoryDataTruncation,
		cause: cause,
		trunc: &t,
	}
}

// Truncation returns the truncation details when e is a data truncation.
func (e *Error) Truncation() (TruncationInfo, bool) {
	if e == nil || e.trunc == nil {
		return TruncationInfo{}, false
	}
	return *e.trunc, true
}

// ClientInfoFailure reports client-info properties that could not be set,
// keyed by property name. failed is copied.
func ClientInfoFailure(msg string, failed map[string]sqltypes.ClientInfoStatus) *Error {
	return &Error{msg: msg, cat: CategoryClientInfo, props: maps.Clone(failed)}
}

// FailedProperties returns a copy of the rejected client-info properties.
func (e *Error) FailedProperties() map[string]sqltypes.ClientInfoStatus {
	if e == nil {
		return nil
	}
	return maps.Clone(e.props)
}
