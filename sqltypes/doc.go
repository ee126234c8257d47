// doc.go: package documentation for sqltypes
//
// Package sqltypes holds the small, closed vocabularies that drivers and
// applications exchange alongside database failures: generic SQL type codes
// (JDBCType), the reasons a client-info property could not be set
// (ClientInfoStatus), how long a row identifier stays valid (RowIdLifetime)
// and where a pseudo column may be referenced (PseudoColumnUsage).
//
// This is a leaf package: it imports nothing from the rest of the module so
// that any package can depend on it without creating cycles.
//
// Numeric values are stable across serialization boundaries. JDBCType codes
// match the vendor type numbers used by every JDBC/ODBC-derived driver, so
// values read off the wire can be converted with JDBCTypeOf.
package sqltypes
