// Package sqltypes defines the engine-neutral classification codes used to
// describe the data category of a relational column (character, numeric,
// binary, temporal, and so on), independent of any particular database
// dialect.
//
// The numeric values follow the JDBC type-constant catalogue so that codes
// can be exchanged with other schema tooling without translation. Downstream
// consumers compare these codes bit-for-bit; do not renumber.
package sqltypes

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Type is an engine-neutral classification code for a column's data type.
// It is distinct from a native type: a native type identifies a concrete
// dialect-specific type (a MySQL TINYINT, a Postgres OID), while a Type only
// places the column in one of the standard SQL categories below.
type Type int

const (
	Bit                   Type = -7
	TinyInt               Type = -6
	SmallInt              Type = 5
	Integer               Type = 4
	BigInt                Type = -5
	Float                 Type = 6
	Real                  Type = 7
	Double                Type = 8
	Numeric               Type = 2
	Decimal               Type = 3
	Char                  Type = 1
	VarChar               Type = 12
	LongVarChar           Type = -1
	Date                  Type = 91
	Time                  Type = 92
	Timestamp             Type = 93
	Binary                Type = -2
	VarBinary             Type = -3
	LongVarBinary         Type = -4
	Null                  Type = 0
	Other                 Type = 1111
	Object                Type = 2000
	Distinct              Type = 2001
	Struct                Type = 2002
	Array                 Type = 2003
	Blob                  Type = 2004
	Clob                  Type = 2005
	Ref                   Type = 2006
	DataLink              Type = 70
	Boolean               Type = 16
	RowID                 Type = -8
	NChar                 Type = -15
	NVarChar              Type = -9
	LongNVarChar          Type = -16
	NClob                 Type = 2011
	XML                   Type = 2009
	RefCursor             Type = 2012
	TimeWithTimezone      Type = 2013
	TimestampWithTimezone Type = 2014
)

var names = map[Type]string{
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
	Object:                "OBJECT",
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
	XML:                   "XML",
	RefCursor:             "REF_CURSOR",
	TimeWithTimezone:      "TIME_WITH_TIMEZONE",
	TimestampWithTimezone: "TIMESTAMP_WITH_TIMEZONE",
}

// usesCharset is the closed set of categories whose columns carry character
// data and may therefore have an associated character-set name: fixed and
// variable character types, character large objects, national-character
// variants, data links, and XML content. Charset emission downstream depends
// on this exact membership.
var usesCharset = map[Type]bool{
	Char:         true,
	VarChar:      true,
	LongVarChar:  true,
	Clob:         true,
	NChar:        true,
	NVarChar:     true,
	LongNVarChar: true,
	NClob:        true,
	DataLink:     true,
	XML:          true,
}

// UsesCharset reports whether columns of the given type category can have an
// associated character-set name. It is total: unknown codes report false.
func UsesCharset(t Type) bool {
	return usesCharset[t]
}

// Valid reports whether t is one of the standard type categories.
func Valid(t Type) bool {
	_, ok := names[t]
	return ok
}

// All returns every standard type category in ascending code order.
func All() []Type {
	all := make([]Type, 0, len(names))
	for t := range names {
		all = append(all, t)
	}
	slices.Sort(all)
	return all
}

// String returns the conventional SQL name for the type category, or the
// numeric code for values outside the standard set.
func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}
