// jdbctype.go: generic SQL type identifiers.
//
// The constants double as the classic "Types" constant table: each value is
// the vendor type number drivers put on the wire, so a JDBCType is both the
// enum and the integer code.
package sqltypes

import (
	"reflect"
	"strconv"
	"time"
)

// JDBCType identifies a generic SQL type.
type JDBCType int32

const (
	Bit                   JDBCType = -7
	TinyInt               JDBCType = -6
	SmallInt              JDBCType = 5
	Integer               JDBCType = 4
	BigInt                JDBCType = -5
	Float                 JDBCType = 6
	Real                  JDBCType = 7
	Double                JDBCType = 8
	Numeric               JDBCType = 2
	Decimal               JDBCType = 3
	Char                  JDBCType = 1
	VarChar               JDBCType = 12
	LongVarChar           JDBCType = -1
	Date                  JDBCType = 91
	Time                  JDBCType = 92
	Timestamp             JDBCType = 93
	Binary                JDBCType = -2
	VarBinary             JDBCType = -3
	LongVarBinary         JDBCType = -4
	Null                  JDBCType = 0
	Other                 JDBCType = 1111
	JavaObject            JDBCType = 2000
	Distinct              JDBCType = 2001
	Struct                JDBCType = 2002
	Array                 JDBCType = 2003
	Blob                  JDBCType = 2004
	Clob                  JDBCType = 2005
	Ref                   JDBCType = 2006
	DataLink              JDBCType = 70
	Boolean               JDBCType = 16
	RowID                 JDBCType = -8
	NChar                 JDBCType = -15
	NVarChar              JDBCType = -9
	LongNVarChar          JDBCType = -16
	NClob                 JDBCType = 2011
	SQLXML                JDBCType = 2009
	RefCursor             JDBCType = 2012
	TimeWithTimezone      JDBCType = 2013
	TimestampWithTimezone JDBCType = 2014
)

// allJDBCTypes is ordered as the types are conventionally declared.
var allJDBCTypes = []JDBCType{
	Bit, TinyInt, SmallInt, Integer, BigInt, Float, Real, Double, Numeric,
	Decimal, Char, VarChar, LongVarChar, Date, Time, Timestamp, Binary,
	VarBinary, LongVarBinary, Null, Other, JavaObject, Distinct, Struct,
	Array, Blob, Clob, Ref, DataLink, Boolean, RowID, NChar, NVarChar,
	LongNVarChar, NClob, SQLXML, RefCursor, TimeWithTimezone,
	TimestampWithTimezone,
}

var jdbcTypeNames = map[JDBCType]string{
	Bit:                   "BIT",
	TinyInt:               "TINYINT",
	SmallInt:              "SMALLINT",
	Integer:               "INTEGER",
	BigInt:                "BIGINT",
	Float:                 "FLOAT",
	Real:                  "REAL",
	Double:                "DOUBLE",
	Numeric:               "NUMERIC",
	Decimal:               "DECIMAL",
	Char:                  "CHAR",
	VarChar:               "VARCHAR",
	LongVarChar:           "LONGVARCHAR",
	Date:                  "DATE",
	Time:                  "TIME",
	Timestamp:             "TIMESTAMP",
	Binary:                "BINARY",
	VarBinary:             "VARBINARY",
	LongVarBinary:         "LONGVARBINARY",
	Null:                  "NULL",
	Other:                 "OTHER",
	JavaObject:            "JAVA_OBJECT",
	Distinct:              "DISTINCT",
	Struct:                "STRUCT",
	Array:                 "ARRAY",
	Blob:                  "BLOB",
	Clob:                  "CLOB",
	Ref:                   "REF",
	DataLink:              "DATALINK",
	Boolean:               "BOOLEAN",
	RowID:                 "ROWID",
	NChar:                 "NCHAR",
	NVarChar:              "NVARCHAR",
	LongNVarChar:          "LONGNVARCHAR",
	NClob:                 "NCLOB",
	SQLXML:                "SQLXML",
	RefCursor:             "REF_CURSOR",
	TimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
}

// JDBCTypes returns every known type in declaration order.
func JDBCTypes() []JDBCType {
	out := make([]JDBCType, len(allJDBCTypes))
	copy(out, allJDBCTypes)
	return out
}

// JDBCTypeOf maps a vendor type number to its JDBCType.
func JDBCTypeOf(code int32) (JDBCType, bool) {
	t := JDBCType(code)
	if _, ok := jdbcTypeNames[t]; !ok {
		return 0, false
	}
	return t, true
}

// String returns the SQL name of the type, e.g. "VARCHAR".
func (t JDBCType) String() string {
	if name, ok := jdbcTypeNames[t]; ok {
		return name
	}
	return "JDBCType(" + strconv.Itoa(int(t)) + ")"
}

// VendorTypeNumber returns the integer code of the type.
func (t JDBCType) VendorTypeNumber() int32 { return int32(t) }

var (
	typeBool    = reflect.TypeFor[bool]()
	typeInt8    = reflect.TypeFor[int8]()
	typeInt16   = reflect.TypeFor[int16]()
	typeInt32   = reflect.TypeFor[int32]()
	typeInt64   = reflect.TypeFor[int64]()
	typeFloat32 = reflect.TypeFor[float32]()
	typeFloat64 = reflect.TypeFor[float64]()
	typeString  = reflect.TypeFor[string]()
	typeBytes   = reflect.TypeFor[[]byte]()
	typeTime    = reflect.TypeFor[time.Time]()
	typeAny     = reflect.TypeFor[any]()
)

// ScanType returns the Go type a database/sql driver would typically scan a
// non-NULL column of type t into. Exact numerics map to string so no
// precision is lost. Unknown or structured types map to any.
func (t JDBCType) ScanType() reflect.Type {
	switch t {
	case Bit, Boolean:
		return typeBool
	case TinyInt:
		return typeInt8
	case SmallInt:
		return typeInt16
	case Integer:
		return typeInt32
	case BigInt:
		return typeInt64
	case Real:
		return typeFloat32
	case Float, Double:
		return typeFloat64
	case Numeric, Decimal:
		return typeString
	case Char, VarChar, LongVarChar, NChar, NVarChar, LongNVarChar, Clob, NClob, SQLXML, DataLink:
		return typeString
	case Binary, VarBinary, LongVarBinary, Blob, RowID:
		return typeBytes
	case Date, Time, Timestamp, TimeWithTimezone, TimestampWithTimezone:
		return typeTime
	default:
		return typeAny
	}
}

// IsCharacter reports whether t holds character data.
func (t JDBCType) IsCharacter() bool {
	switch t {
	case Char, VarChar, LongVarChar, NChar, NVarChar, LongNVarChar, Clob, NClob:
		return true
	}
	return false
}

// IsTemporal reports whether t holds a date, time or timestamp.
func (t JDBCType) IsTemporal() bool {
	switch t {
	case Date, Time, Timestamp, TimeWithTimezone, TimestampWithTimezone:
		return true
	}
	return false
}
