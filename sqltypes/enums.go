// enums.go: small status enumerations reported by drivers.
package sqltypes

import "strconv"

// ClientInfoStatus is the reason a client-info property could not be set.
type ClientInfoStatus uint8

const (
	// ReasonUnknown: the property could not be set for an unknown reason.
	ReasonUnknown ClientInfoStatus = iota
	// ReasonUnknownProperty: the driver does not recognize the property name.
	ReasonUnknownProperty
	// ReasonValueInvalid: the value is not valid for the property.
	ReasonValueInvalid
	// ReasonValueTruncated: the value exceeded the property's maximum length.
	ReasonValueTruncated
)

// String returns the conventional upper-case name, e.g. REASON_VALUE_INVALID.
func (s ClientInfoStatus) String() string {
	switch s {
	case ReasonUnknown:
		return "REASON_UNKNOWN"
	case ReasonUnknownProperty:
		return "REASON_UNKNOWN_PROPERTY"
	case ReasonValueInvalid:
		return "REASON_VALUE_INVALID"
	case ReasonValueTruncated:
		return "REASON_VALUE_TRUNCATED"
	default:
		return "ClientInfoStatus(" + strconv.Itoa(int(s)) + ")"
	}
}

// RowIdLifetime describes how long a row identifier remains valid.
type RowIdLifetime uint8

const (
	RowIdUnsupported RowIdLifetime = iota
	RowIdValidOther
	RowIdValidSession
	RowIdValidTransaction
	RowIdValidForever
)

// String returns the conventional upper-case name, e.g. ROWID_VALID_SESSION.
func (l RowIdLifetime) String() string {
	switch l {
	case RowIdUnsupported:
		return "ROWID_UNSUPPORTED"
	case RowIdValidOther:
		return "ROWID_VALID_OTHER"
	case RowIdValidSession:
		return "ROWID_VALID_SESSION"
	case RowIdValidTransaction:
		return "ROWID_VALID_TRANSACTION"
	case RowIdValidForever:
		return "ROWID_VALID_FOREVER"
	default:
		return "RowIdLifetime(" + strconv.Itoa(int(l)) + ")"
	}
}

// OutlivesTransaction reports whether an identifier with this lifetime can
// be reused after the transaction that produced it ends.
func (l RowIdLifetime) OutlivesTransaction() bool {
	return l == RowIdValidSession || l == RowIdValidForever
}

// PseudoColumnUsage restricts where a pseudo or hidden column may appear.
type PseudoColumnUsage uint8

const (
	SelectListOnly PseudoColumnUsage = iota
	WhereClauseOnly
	NoUsageRestrictions
	UsageUnknown
)

// String returns the conventional upper-case name.
func (u PseudoColumnUsage) String() string {
	switch u {
	case SelectListOnly:
		return "SELECT_LIST_ONLY"
	case WhereClauseOnly:
		return "WHERE_CLAUSE_ONLY"
	case NoUsageRestrictions:
		return "NO_USAGE_RESTRICTIONS"
	case UsageUnknown:
		return "USAGE_UNKNOWN"
	default:
		return "PseudoColumnUsage(" + strconv.Itoa(int(u)) + ")"
	}
}
