package sqltypes

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJDBCTypeOf_KnownCodes(t *testing.T) {
	for _, typ := range JDBCTypes() {
		got, ok := JDBCTypeOf(typ.VendorTypeNumber())
		require.True(t, ok, "code %d should resolve", typ.VendorTypeNumber())
		require.Equal(t, typ, got)
	}
}

func TestJDBCTypeOf_UnknownCode(t *testing.T) {
	_, ok := JDBCTypeOf(4242)
	require.False(t, ok)
	assert.Equal(t, "JDBCType(4242)", JDBCType(4242).String())
}

func TestJDBCType_Names(t *testing.T) {
	assert.Equal(t, "VARCHAR", VarChar.String())
	assert.Equal(t, "TIMESTAMP_WITH_TIMEZONE", TimestampWithTimezone.String())
	assert.Equal(t, "JAVA_OBJECT", JavaObject.String())
	assert.Equal(t, int32(-5), BigInt.VendorTypeNumber())
	assert.Equal(t, int32(2004), Blob.VendorTypeNumber())
}

func TestJDBCTypes_DefensiveCopy(t *testing.T) {
	a := JDBCTypes()
	a[0] = Other
	b := JDBCTypes()
	require.Equal(t, Bit, b[0])
	require.Len(t, b, 39)
}

func TestJDBCType_ScanType(t *testing.T) {
	cases := map[JDBCType]reflect.Type{
		Boolean:   reflect.TypeFor[bool](),
		Integer:   reflect.TypeFor[int32](),
		BigInt:    reflect.TypeFor[int64](),
		Decimal:   reflect.TypeFor[string](),
		NVarChar:  reflect.TypeFor[string](),
		Blob:      reflect.TypeFor[[]byte](),
		Timestamp: reflect.TypeFor[time.Time](),
		Struct:    reflect.TypeFor[any](),
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.ScanType(), typ.String())
	}
}

func TestJDBCType_Classes(t *testing.T) {
	assert.True(t, Clob.IsCharacter())
	assert.False(t, Blob.IsCharacter())
	assert.True(t, Date.IsTemporal())
	assert.False(t, Integer.IsTemporal())
}

func TestEnums_String(t *testing.T) {
	assert.Equal(t, "REASON_VALUE_TRUNCATED", ReasonValueTruncated.String())
	assert.Equal(t, "ClientInfoStatus(9)", ClientInfoStatus(9).String())
	assert.Equal(t, "ROWID_VALID_SESSION", RowIdValidSession.String())
	assert.Equal(t, "WHERE_CLAUSE_ONLY", WhereClauseOnly.String())
	assert.Equal(t, "PseudoColumnUsage(7)", PseudoColumnUsage(7).String())
}

func TestRowIdLifetime_OutlivesTransaction(t *testing.T) {
	assert.True(t, RowIdValidForever.OutlivesTransaction())
	assert.True(t, RowIdValidSession.OutlivesTransaction())
	assert.False(t, RowIdValidTransaction.OutlivesTransaction())
	assert.False(t, RowIdUnsupported.OutlivesTransaction())
}
