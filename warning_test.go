package sqlerror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgx-io/xgx-sqlerror/sqltypes"
)

func TestWarn_DefaultsState(t *testing.T) {
	t.Parallel()

	w := Warn("value rounded", "", 0)
	assert.Equal(t, StateGeneralWarning, w.SQLState())
	assert.True(t, IsWarning(w))
	assert.False(t, IsTransient(w))

	w = Warn("privilege not revoked", "01006", 12)
	assert.Equal(t, "01006", w.SQLState())
	assert.Equal(t, 12, w.VendorCode())
}

func TestWarnings_Chain(t *testing.T) {
	t.Parallel()

	w := Warn("first", "", 0)
	require.NoError(t, w.Append(Warn("second", "", 0)))
	require.NoError(t, w.Append(DataTruncation(TruncationInfo{Index: 1, Read: true}, nil)))
	assert.Equal(t, 3, w.Len())
	assert.True(t, w.Tail().Category().IsWarning())
}

func TestDataTruncation_StateByDirection(t *testing.T) {
	t.Parallel()

	read := DataTruncation(TruncationInfo{Index: 2, Read: true, DataSize: 10, TransferSize: 4}, nil)
	assert.Equal(t, StateDataTruncationRead, read.SQLState())
	assert.Equal(t, CategoryDataTruncation, read.Category())
	assert.Equal(t, "data truncation", read.Message())

	cause := errors.New("column too narrow")
	write := DataTruncation(TruncationInfo{Index: 1, Parameter: true, DataSize: -1}, cause)
	assert.Equal(t, StateStringRightTruncation, write.SQLState())
	assert.ErrorIs(t, write, cause)

	info, ok := write.Truncation()
	require.True(t, ok)
	assert.Equal(t, TruncationInfo{Index: 1, Parameter: true, DataSize: -1}, info)

	_, ok = New("plain", "", 0).Truncation()
	assert.False(t, ok)
}

func TestWarningAccessors_NilReceiver(t *testing.T) {
	t.Parallel()

	var none *Error
	require.NotPanics(t, func() {
		_, ok := none.Truncation()
		assert.False(t, ok)
		assert.Nil(t, none.FailedProperties())
	})
}

func TestClientInfoFailure_CopiesProperties(t *testing.T) {
	t.Parallel()

	failed := map[string]sqltypes.ClientInfoStatus{
		"ApplicationName": sqltypes.ReasonValueTruncated,
		"Bogus":           sqltypes.ReasonUnknownProperty,
	}
	e := ClientInfoFailure("client info rejected", failed)
	failed["Other"] = sqltypes.ReasonUnknown

	got := e.FailedProperties()
	assert.Len(t, got, 2)
	assert.Equal(t, sqltypes.ReasonValueTruncated, got["ApplicationName"])
	assert.Equal(t, CategoryClientInfo, e.Category())

	got["Bogus"] = sqltypes.ReasonValueInvalid
	assert.Equal(t, sqltypes.ReasonUnknownProperty, e.FailedProperties()["Bogus"])

	assert.Nil(t, New("plain", "", 0).FailedProperties())
}
