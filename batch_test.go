package sqlerror

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchUpdate_WidensExactly(t *testing.T) {
	t.Parallel()

	e := BatchUpdate("batch failed", []int32{3, SuccessNoInfo, 5})
	assert.Equal(t, []int32{3, -2, 5}, e.UpdateCounts())
	assert.Equal(t, []int64{3, -2, 5}, e.LargeUpdateCounts())
	assert.Equal(t, CategoryBatchUpdate, e.Category())
}

func TestBatchUpdateLarge_NarrowsInRange(t *testing.T) {
	t.Parallel()

	e := BatchUpdateLarge("batch failed", []int64{2147483647, 10})
	assert.Equal(t, []int32{2147483647, 10}, e.UpdateCounts())
	assert.Equal(t, []int64{2147483647, 10}, e.LargeUpdateCounts())
}

func TestBatchUpdateLarge_TruncatesOutOfRangeWithoutPanic(t *testing.T) {
	t.Parallel()

	big := int64(9_000_000_000)
	var e *Error
	require.NotPanics(t, func() { e = BatchUpdateLarge("batch failed", []int64{big, 1}) })

	small := e.UpdateCounts()
	require.Len(t, small, 2)
	assert.Equal(t, int32(big), small[0])
	assert.Equal(t, int32(1), small[1])
	assert.Equal(t, []int64{big, 1}, e.LargeUpdateCounts())
}

func TestBatchUpdate_SentinelsSurviveBothWays(t *testing.T) {
	t.Parallel()

	e := BatchUpdateLarge("", []int64{SuccessNoInfo, ExecuteFailed})
	assert.Equal(t, []int32{SuccessNoInfo, ExecuteFailed}, e.UpdateCounts())
}

func TestBatchUpdate_NilCounts(t *testing.T) {
	t.Parallel()

	for _, e := range []*Error{BatchUpdate("x", nil), BatchUpdateLarge("x", nil)} {
		assert.Nil(t, e.UpdateCounts())
		assert.Nil(t, e.LargeUpdateCounts())
		assert.Nil(t, e.FailedStatements())
	}

	empty := BatchUpdate("x", []int32{})
	assert.NotNil(t, empty.UpdateCounts())
	assert.Empty(t, empty.UpdateCounts())
}

func TestBatchUpdate_CopiesInAndOut(t *testing.T) {
	t.Parallel()

	in := []int32{1, 2}
	e := BatchUpdate("x", in)
	in[0] = 99
	assert.Equal(t, []int32{1, 2}, e.UpdateCounts())

	out := e.LargeUpdateCounts()
	out[1] = 99
	assert.Equal(t, []int64{1, 2}, e.LargeUpdateCounts())
}

func TestBatchUpdate_CountsSurviveBuilders(t *testing.T) {
	t.Parallel()

	e := BatchUpdate("x", []int32{4}).WithState("40001").With("table", "t")
	assert.Equal(t, []int32{4}, e.UpdateCounts())
	assert.Equal(t, "40001", e.SQLState())
}

func TestBatchUpdate_NilReceiver(t *testing.T) {
	t.Parallel()

	var none *Error
	require.NotPanics(t, func() {
		assert.Nil(t, none.UpdateCounts())
		assert.Nil(t, none.LargeUpdateCounts())
		assert.Nil(t, none.FailedStatements())
	})
}

func TestFailedStatements(t *testing.T) {
	t.Parallel()

	e := BatchUpdate("x", []int32{1, ExecuteFailed, SuccessNoInfo, ExecuteFailed})
	assert.Equal(t, []int{1, 3}, e.FailedStatements())
	assert.Nil(t, New("plain", "", 0).FailedStatements())
}
