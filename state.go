// state.go: SQLSTATE constants and class-based classification.
//
// A SQLSTATE is five characters: a two-character class followed by a
// three-character subclass. Classification only looks at the class, with
// two refinements: connection failures (class 08) split into transient and
// non-transient by subclass, and the HYT timeout states are recognized in
// full.
package sqlerror

// Well-known states used by the constructors in this module.
const (
	StateGeneralWarning         = "01000"
	StateDataTruncationRead     = "01004"
	StateConnectionRejected     = "08004"
	StateUnableToConnect        = "08001"
	StateConnectionDoesNotExist = "08003"
	StateConnectionFailure      = "08006"
	StateFeatureNotSupported    = "0A000"
	StateStringRightTruncation  = "22001"
	StateInvalidDatetimeFormat  = "22007"
	StateIntegrityConstraint    = "23000"
	StateInvalidAuthorization   = "28000"
	StateSerializationFailure   = "40001"
	StateSyntaxError            = "42000"
	StateOperationCanceled      = "HY008"
	StateTimeoutExpired         = "HYT00"
	StateConnectionTimeout      = "HYT01"
)

// StateClass returns the two-character class of state, or "" if state is
// shorter than two characters.
func StateClass(state string) string {
	if len(state) < 2 {
		return ""
	}
	return state[:2]
}

// CategoryForState maps a SQLSTATE to the category a driver would report
// for it. Unknown or empty states map to CategoryGeneric.
func CategoryForState(state string) Category {
	switch state {
	case StateTimeoutExpired, StateConnectionTimeout:
		return CategoryTimeout
	}
	switch StateClass(state) {
	case "01":
		return CategoryWarning
	case "08":
		switch state {
		case StateUnableToConnect, StateConnectionDoesNotExist, StateConnectionRejected:
			return CategoryNonTransientConnection
		}
		return CategoryTransientConnection
	case "0A":
		return CategoryFeatureNotSupported
	case "22":
		return CategoryData
	case "23":
		return CategoryIntegrityConstraint
	case "28":
		return CategoryInvalidAuthorization
	case "40":
		return CategoryTransactionRollback
	case "42":
		return CategorySyntax
	default:
		return CategoryGeneric
	}
}

// FromState builds a record whose category is derived from state.
func FromState(msg, state string, vendor int) *Error {
	return &Error{msg: msg, state: state, vendor: vendor, cat: CategoryForState(state)}
}
