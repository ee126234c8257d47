// category.go: closed set of failure categories.
//
// A Category replaces a subclass tree: every *Error carries exactly one, and
// families (transient, non-transient, warning) are answered by walking Parent.
// Categories carry no behavior of their own beyond classification.
package sqlerror

import "strconv"

// Category classifies a failure.
type Category uint8

const (
	// CategoryGeneric is an unclassified database-access failure.
	CategoryGeneric Category = iota

	// Transient family: a retry of the same operation may succeed.
	CategoryTransient
	CategoryTransientConnection
	CategoryTransactionRollback
	CategoryTimeout

	// Non-transient family: a retry fails until the cause is corrected.
	CategoryNonTransient
	CategoryNonTransientConnection
	CategoryData
	CategoryFeatureNotSupported
	CategoryIntegrityConstraint
	CategoryInvalidAuthorization
	CategorySyntax

	// CategoryRecoverable: the operation may succeed after the application
	// runs recovery steps, at minimum closing the current connection.
	CategoryRecoverable

	// CategoryBatchUpdate: a batch failed part way; see UpdateCounts.
	CategoryBatchUpdate

	// CategoryClientInfo: one or more client-info properties were rejected.
	CategoryClientInfo

	// Warning family.
	CategoryWarning
	CategoryDataTruncation
)

var allCategories = []Category{
	CategoryGeneric,
	CategoryTransient,
	CategoryTransientConnection,
	CategoryTransactionRollback,
	CategoryTimeout,
	CategoryNonTransient,
	CategoryNonTransientConnection,
	CategoryData,
	CategoryFeatureNotSupported,
	CategoryIntegrityConstraint,
	CategoryInvalidAuthorization,
	CategorySyntax,
	CategoryRecoverable,
	CategoryBatchUpdate,
	CategoryClientInfo,
	CategoryWarning,
	CategoryDataTruncation,
}

var categoryNames = [...]string{
	CategoryGeneric:                "sql error",
	CategoryTransient:              "transient",
	CategoryTransientConnection:    "transient connection",
	CategoryTransactionRollback:    "transaction rollback",
	CategoryTimeout:                "timeout",
	CategoryNonTransient:           "non-transient",
	CategoryNonTransientConnection: "non-transient connection",
	CategoryData:                   "data exception",
	CategoryFeatureNotSupported:    "feature not supported",
	CategoryIntegrityConstraint:    "integrity constraint violation",
	CategoryInvalidAuthorization:   "invalid authorization",
	CategorySyntax:                 "syntax error",
	CategoryRecoverable:            "recoverable",
	CategoryBatchUpdate:            "batch update",
	CategoryClientInfo:             "client info",
	CategoryWarning:                "warning",
	CategoryDataTruncation:         "data truncation",
}

// Categories returns all categories in declaration order.
func Categories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// String returns a short lowercase name such as "syntax error".
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Category(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool { return int(c) < len(categoryNames) }

// Parent returns the family c belongs to. Family roots and CategoryGeneric
// return CategoryGeneric.
func (c Category) Parent() Category {
	switch c {
	case CategoryTransientConnection, CategoryTransactionRollback, CategoryTimeout:
		return CategoryTransient
	case CategoryNonTransientConnection, CategoryData, CategoryFeatureNotSupported,
		CategoryIntegrityConstraint, CategoryInvalidAuthorization, CategorySyntax:
		return CategoryNonTransient
	case CategoryDataTruncation:
		return CategoryWarning
	default:
		return CategoryGeneric
	}
}

// Is reports whether c equals family or belongs to it. Every category is a
// CategoryGeneric.
func (c Category) Is(family Category) bool {
	if family == CategoryGeneric {
		return true
	}
	for cur := c; ; cur = cur.Parent() {
		if cur == family {
			return true
		}
		if cur == CategoryGeneric {
			return false
		}
	}
}

// IsTransient reports whether c is in the transient family.
func (c Category) IsTransient() bool { return c.Is(CategoryTransient) }

// IsNonTransient reports whether c is in the non-transient family.
func (c Category) IsNonTransient() bool { return c.Is(CategoryNonTransient) }

// IsWarning reports whether c is in the warning family.
func (c Category) IsWarning() bool { return c.Is(CategoryWarning) }

// IsConnection reports whether c describes a connection-level failure.
func (c Category) IsConnection() bool {
	return c == CategoryTransientConnection || c == CategoryNonTransientConnection
}
