// Package relational models the definition of a single relational table
// column: its name, 1-based position, engine-neutral and native type codes,
// length/precision and scale, nullability, and declared default value.
//
// A [Column] is an immutable value. It is produced only by
// [ColumnEditor.Build]; to derive a changed copy, call [Column.Edit] to
// obtain an editor primed with the column's state, mutate it, and build
// again. Because a Column never changes after it is built, it is safe to
// share across goroutines without synchronization.
package relational

import (
	"fmt"
	"strings"

	"github.com/sweat123/relational/internal/sqltools"
	"github.com/sweat123/relational/sqltypes"
)

// Unset marks an integer field whose value does not apply to the column: a
// scale on a character column, a length on a boolean, a native type code
// that was never resolved. It is reserved for that purpose and is never a
// real value for those fields.
const Unset = -1

// Column is an immutable definition of a column. Use [NewColumnEditor] to
// define one, and [Column.Edit] to derive a modified copy.
type Column struct {
	name             string
	position         int
	typeCode         sqltypes.Type
	nativeType       int
	typeName         string
	typeExpression   string
	charsetName      string
	length           int
	scale            int
	optional         bool
	autoIncremented  bool
	generated        bool
	defaultValue     DefaultValue
	defaultValueNull bool
}

// Name returns the name of the column.
func (c Column) Name() string {
	return c.name
}

// Position returns the 1-based position of the column in its table.
func (c Column) Position() int {
	return c.position
}

// Type returns the engine-neutral classification code for the column's data
// type.
func (c Column) Type() sqltypes.Type {
	return c.typeCode
}

// NativeType returns the database-specific type code for the column, or
// [Unset] if it is not known.
func (c Column) NativeType() int {
	return c.nativeType
}

// TypeName returns the database-specific name of the column's data type,
// such as "VARCHAR" or "TINYINT UNSIGNED".
func (c Column) TypeName() string {
	return c.typeName
}

// TypeExpression returns the complete expression defining the column's data
// type, including dimensions, length, precision, character sets, and
// constraints.
func (c Column) TypeExpression() string {
	return c.typeExpression
}

// CharsetName returns the database-specific name of the character set used
// by this column, or "" if the column's type does not use character sets or
// no character set was specified.
func (c Column) CharsetName() string {
	return c.charsetName
}

// Length returns the maximum length of the column's values. For numeric
// columns this is the precision. Returns [Unset] if length does not apply.
func (c Column) Length() int {
	return c.length
}

// Scale returns the scale of the column, or [Unset] if scale does not apply.
func (c Column) Scale() int {
	return c.scale
}

// DecimalSize returns the precision and scale of a fixed-point numeric
// column. ok is false when either is [Unset].
func (c Column) DecimalSize() (precision, scale int, ok bool) {
	if c.length == Unset || c.scale == Unset {
		return 0, 0, false
	}
	return c.length, c.scale, true
}

// IsOptional reports whether the column allows NULL values.
func (c Column) IsOptional() bool {
	return c.optional
}

// IsRequired reports whether the column disallows NULL values. It is always
// the negation of [Column.IsOptional].
func (c Column) IsRequired() bool {
	return !c.optional
}

// IsAutoIncremented reports whether the column's values are automatically
// incremented by the database.
func (c Column) IsAutoIncremented() bool {
	return c.autoIncremented
}

// IsGenerated reports whether the column's values are computed by the
// database rather than supplied by clients.
func (c Column) IsGenerated() bool {
	return c.generated
}

// DefaultValue returns the declared default of the column. The absent
// default means no default was declared; see [Column.IsDefaultValueNull]
// for the distinction from an explicit DEFAULT NULL.
func (c Column) DefaultValue() DefaultValue {
	return c.defaultValue
}

// IsDefaultValueNull reports whether the column was declared with an
// explicit DEFAULT NULL. This is distinct from having no declared default
// at all.
func (c Column) IsDefaultValueNull() bool {
	return c.defaultValueNull
}

// ShouldSetDefaultValue reports whether a consumer emitting this column
// needs to carry a default: true when the default is an explicit NULL, when
// the column is optional, or when a non-null default was declared.
func (c Column) ShouldSetDefaultValue() bool {
	return c.defaultValueNull || c.optional || (c.defaultValue.IsPresent() && !c.defaultValue.IsNull())
}

// TypeUsesCharset reports whether a character set applies to the column's
// type category.
func (c Column) TypeUsesCharset() bool {
	return sqltypes.UsesCharset(c.typeCode)
}

// Compare orders columns by their position within a table. It returns a
// negative number when c comes before that, a positive number when it comes
// after, and 0 when the positions are equal. Two distinct columns with the
// same position compare as equal in ordering even if every other field
// differs; ordering is not equality (see [Column.Equal]).
func (c Column) Compare(that Column) int {
	return c.position - that.position
}

// Equal reports whether every field of the two columns is the same. It is a
// stronger, independent contract from the position-only ordering of
// [Column.Compare]: columns that compare as equal in ordering may still be
// unequal.
func (c Column) Equal(that Column) bool {
	return c == that
}

// Edit returns an editor primed with every field of this column. The editor
// holds its own copy of the state; building from it yields a new Column and
// never modifies the receiver.
func (c Column) Edit() *ColumnEditor {
	return &ColumnEditor{
		name:             c.name,
		position:         c.position,
		typeCode:         c.typeCode,
		nativeType:       c.nativeType,
		typeName:         c.typeName,
		typeExpression:   c.typeExpression,
		charsetName:      c.charsetName,
		length:           c.length,
		scale:            c.scale,
		optional:         c.optional,
		autoIncremented:  c.autoIncremented,
		generated:        c.generated,
		defaultValue:     c.defaultValue,
		defaultValueNull: c.defaultValueNull,
	}
}

// String renders the column as a single-line SQL-flavored definition,
// quoting the name if it needs it.
func (c Column) String() string {
	var b strings.Builder
	b.WriteString(sqltools.Identifier(c.name))
	expr := c.typeExpression
	if expr == "" {
		expr = c.typeName
	}
	if expr != "" {
		b.WriteString(" ")
		b.WriteString(expr)
	}
	if c.charsetName != "" {
		fmt.Fprintf(&b, " CHARACTER SET %s", c.charsetName)
	}
	if !c.optional {
		b.WriteString(" NOT NULL")
	}
	if c.generated {
		b.WriteString(" GENERATED")
	}
	if c.autoIncremented {
		b.WriteString(" AUTO_INCREMENT")
	}
	if c.defaultValueNull {
		b.WriteString(" DEFAULT NULL")
	} else if c.defaultValue.IsPresent() {
		fmt.Fprintf(&b, " DEFAULT %s", c.defaultValue)
	}
	return b.String()
}
