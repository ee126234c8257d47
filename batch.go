// batch.go: per-statement update counts carried by a batch failure.
//
// A batch failure is built from either 32-bit or 64-bit counts and always
// stores both. Widening is exact. Narrowing is a plain Go conversion: values
// outside the int32 range are truncated silently, which is the accepted
// behavior for callers that still read 32-bit counts. The sentinels below fit
// in both widths and therefore survive either conversion unchanged.
package sqlerror

const (
	// SuccessNoInfo marks a statement that succeeded with an unknown row count.
	SuccessNoInfo = -2
	// ExecuteFailed marks a statement that failed.
	ExecuteFailed = -3
)

type updateCounts struct {
	small []int32
	large []int64
}

// BatchUpdate creates a batch failure from 32-bit update counts, one per
// statement in the order the statements were added. counts is copied; nil
// means the driver reported no counts.
func BatchUpdate(msg string, counts []int32) *Error {
	uc := &updateCounts{}
	if counts != nil {
		uc.small = make([]int32, len(counts))
		copy(uc.small, counts)
		uc.large = make([]int64, len(counts))
		for i, c := range counts {
			uc.large[i] = int64(c)
		}
	}
	return &Error{msg: msg, cat: CategoryBatchUpdate, counts: uc}
}

// BatchUpdateLarge creates a batch failure from 64-bit update counts.
func BatchUpdateLarge(msg string, counts []int64) *Error {
	uc := &updateCounts{}
	if counts != nil {
		uc.large = make([]int64, len(counts))
		copy(uc.large, counts)
		uc.small = make([]int32, len(counts))
		for i, c := range counts {
			uc.small[i] = int32(c) // truncates outside the int32 range
		}
	}
	return &Error{msg: msg, cat: CategoryBatchUpdate, counts: uc}
}

// UpdateCounts returns a copy of the 32-bit counts, or nil when e carries
// none.
func (e *Error) UpdateCounts() []int32 {
	if e == nil || e.counts == nil || e.counts.small == nil {
		return nil
	}
	out := make([]int32, len(e.counts.small))
	copy(out, e.counts.small)
	return out
}

// LargeUpdateCounts returns a copy of the 64-bit counts, or nil when e
// carries none.
func (e *Error) LargeUpdateCounts() []int64 {
	if e == nil || e.counts == nil || e.counts.large == nil {
		return nil
	}
	out := make([]int64, len(e.counts.large))
	copy(out, e.counts.large)
	return out
}

// FailedStatements returns the indexes of statements reported as
// ExecuteFailed.
func (e *Error) FailedStatements() []int {
	if e == nil || e.counts == nil {
		return nil
	}
	var idx []int
	for i, c := range e.counts.large {
		if c == ExecuteFailed {
			idx = append(idx, i)
		}
	}
	return idx
}
