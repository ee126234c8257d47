// doc.go: package documentation for xgx-sqlerror
//
// Package sqlerror is the database-access error model shared by drivers and
// the applications that call them. A failure is an *Error carrying a
// message, a SQLSTATE, a vendor code, a Category, an optional wrapped cause
// and ordered context fields. Related failures are linked into one chain.
//
// # Chains
//
// A batch that fails on several statements reports one record per failure.
// The first record is returned; the others are linked behind it with
// Append, from any goroutine, without locks:
//
//	head := sqlerror.Syntax("bad token near FROM").WithState("42000")
//	...
//	_ = head.Append(sqlerror.IntegrityViolation("duplicate key").WithCause(ioErr))
//
// Append finds the tail and publishes the link with a compare-and-swap; a
// link, once set, is never replaced.
//
// # Traversal
//
// All (or Iterator) yields the chain interleaved with causes:
//
//	for err := range head.All() {
//	    log.Print(err)
//	}
//
// yields head, head's cause, that cause's cause, …, then the second record,
// its causes, and so on. Walk extends the same order to arbitrary error
// graphs (Unwrap() []error included) and is cycle-safe.
//
// # Categories
//
// A Category replaces a subclass tree. Families are answered with
// Category.Is / IsTransient / IsNonTransient / IsWarning; predicates such as
// IsTransient(err) and HasCategory(err, CategorySyntax) work on any error.
// CategoryForState derives the category from a SQLSTATE class.
//
// # Batch update counts
//
// BatchUpdate and BatchUpdateLarge record per-statement outcome counts and
// mirror them in both widths; SuccessNoInfo and ExecuteFailed pass through
// either conversion unchanged.
//
// # Interop
//
//   - errors.Is/As follow Unwrap(), which returns the cause only.
//   - From/Wrap adapt foreign errors and classify context and database/sql
//     sentinels.
//   - %+v prints the whole chain with context, counts and stacks.
//   - TypedField reads and writes context fields with a fixed Go type.
//
// # Immutability
//
// Only the sibling link ever changes after construction. Builders such as
// With, Ctx, WithState and WithStack return a new, unlinked record.
//
// Logging is not part of this package; pass a diag.Sink to whatever code
// decides a chain is worth reporting.
package sqlerror
