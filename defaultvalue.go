package relational

import (
	"fmt"

	"github.com/sweat123/relational/internal/sqltools"
)

// DefaultKind identifies which member of the [DefaultValue] variant is set.
type DefaultKind int

const (
	// DefaultAbsent means no default was declared for the column. It is
	// distinct from [DefaultNull]: a column with no default and a column
	// declared DEFAULT NULL are different declarations.
	DefaultAbsent DefaultKind = iota
	DefaultNull
	DefaultBoolean
	DefaultInteger
	DefaultDecimal
	DefaultString
)

// DefaultValue is the declared default of a column, modeled as a tagged
// variant over {absent, null, boolean, integer, decimal, string}. Decimal
// defaults keep the literal text of the declaration (a DECIMAL(4,3) default
// of 2.321 stays "2.321"); they are never routed through binary floating
// point, which would round them.
//
// The zero value is [DefaultAbsent].
type DefaultValue struct {
	kind    DefaultKind
	boolean bool
	integer int64
	text    string
}

// NoDefault returns the absent default, equal to the zero value.
func NoDefault() DefaultValue {
	return DefaultValue{}
}

// NullDefault returns a default representing an explicit DEFAULT NULL
// declaration.
func NullDefault() DefaultValue {
	return DefaultValue{kind: DefaultNull}
}

// BooleanDefault returns a boolean default value.
func BooleanDefault(value bool) DefaultValue {
	return DefaultValue{kind: DefaultBoolean, boolean: value}
}

// IntegerDefault returns an integer default value.
func IntegerDefault(value int64) DefaultValue {
	return DefaultValue{kind: DefaultInteger, integer: value}
}

// DecimalDefault returns a fixed-point default value holding the literal
// text of the declaration.
func DecimalDefault(literal string) DefaultValue {
	return DefaultValue{kind: DefaultDecimal, text: literal}
}

// StringDefault returns a character default value.
func StringDefault(value string) DefaultValue {
	return DefaultValue{kind: DefaultString, text: value}
}

// Kind returns which member of the variant is set.
func (v DefaultValue) Kind() DefaultKind {
	return v.kind
}

// IsPresent reports whether any default was declared, including an explicit
// NULL.
func (v DefaultValue) IsPresent() bool {
	return v.kind != DefaultAbsent
}

// IsNull reports whether the default is an explicit NULL.
func (v DefaultValue) IsNull() bool {
	return v.kind == DefaultNull
}

// Boolean returns the boolean member, and whether the variant holds one.
func (v DefaultValue) Boolean() (bool, bool) {
	return v.boolean, v.kind == DefaultBoolean
}

// Integer returns the integer member, and whether the variant holds one.
func (v DefaultValue) Integer() (int64, bool) {
	return v.integer, v.kind == DefaultInteger
}

// Decimal returns the literal text of a decimal member, and whether the
// variant holds one.
func (v DefaultValue) Decimal() (string, bool) {
	return v.text, v.kind == DefaultDecimal
}

// Text returns the string member, and whether the variant holds one.
func (v DefaultValue) Text() (string, bool) {
	return v.text, v.kind == DefaultString
}

// Equal reports whether two defaults have the same kind and the same value.
// Decimal defaults compare by their literal text: "2.321" and "2.3210" are
// not equal.
func (v DefaultValue) Equal(that DefaultValue) bool {
	return v == that
}

// String renders the default as it would appear after the DEFAULT keyword in
// a column declaration. The absent default renders as the empty string.
func (v DefaultValue) String() string {
	switch v.kind {
	case DefaultNull:
		return "NULL"
	case DefaultBoolean:
		if v.boolean {
			return "TRUE"
		}
		return "FALSE"
	case DefaultInteger:
		return fmt.Sprintf("%d", v.integer)
	case DefaultDecimal:
		return v.text
	case DefaultString:
		return sqltools.Literal(v.text)
	default:
		return ""
	}
}
