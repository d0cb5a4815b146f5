package relational

import (
	"errors"
	"fmt"

	"github.com/sweat123/relational/sqltypes"
)

// Validation failures reported by [ColumnEditor.Build]. Wrapped errors can
// be tested with [errors.Is].
var (
	// ErrNoName is reported when Build is called before a name was set.
	ErrNoName = errors.New("column name is not set")
	// ErrNoPosition is reported when Build is called before a valid
	// position was set.
	ErrNoPosition = errors.New("column position is not set")
	// ErrInvalidValue wraps every setter argument that violated a
	// constraint, such as a position below 1 or a negative length.
	ErrInvalidValue = errors.New("invalid column value")
)

// NewColumnEditor returns an empty editor for defining a [Column]. Integer
// fields start at [Unset].
//
// An editor accumulates field assignments in any order and produces an
// immutable Column snapshot from [ColumnEditor.Build]. A setter given an
// invalid argument records the violation instead of applying it; the
// recorded violations surface as the Build error. Editors belong to a single
// construction workflow and are not safe for concurrent use, but a built
// Column is detached from the editor and freely shareable.
func NewColumnEditor() *ColumnEditor {
	return &ColumnEditor{
		nativeType: Unset,
		length:     Unset,
		scale:      Unset,
	}
}

// ColumnEditor is a mutable builder for [Column] values. Use
// [NewColumnEditor] to define a column from scratch, or [Column.Edit] to
// start from an existing definition.
type ColumnEditor struct {
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
	errs             []error
}

// Name sets the name of the column. The name must be non-empty.
func (e *ColumnEditor) Name(name string) *ColumnEditor {
	if name == "" {
		e.errs = append(e.errs, fmt.Errorf("%w: name must not be empty", ErrInvalidValue))
		return e
	}
	e.name = name
	return e
}

// Position sets the 1-based position of the column within its table.
func (e *ColumnEditor) Position(position int) *ColumnEditor {
	if position < 1 {
		e.errs = append(e.errs, fmt.Errorf("%w: position must be at least 1, got %d", ErrInvalidValue, position))
		return e
	}
	e.position = position
	return e
}

// Type sets the engine-neutral type code, the database-specific type name,
// and the full type expression for the column. If typeExpression is empty
// the type name is used as the expression.
func (e *ColumnEditor) Type(code sqltypes.Type, typeName, typeExpression string) *ColumnEditor {
	e.typeCode = code
	e.typeName = typeName
	if typeExpression == "" {
		typeExpression = typeName
	}
	e.typeExpression = typeExpression
	return e
}

// TypeName overrides the database-specific type name.
func (e *ColumnEditor) TypeName(typeName string) *ColumnEditor {
	e.typeName = typeName
	return e
}

// TypeExpression overrides the full type declaration expression.
func (e *ColumnEditor) TypeExpression(typeExpression string) *ColumnEditor {
	e.typeExpression = typeExpression
	return e
}

// NativeType sets the database-specific type code, or [Unset] when unknown.
func (e *ColumnEditor) NativeType(nativeType int) *ColumnEditor {
	e.nativeType = nativeType
	return e
}

// Length sets the maximum length (or, for numeric columns, the precision).
// It must be [Unset] or non-negative.
func (e *ColumnEditor) Length(length int) *ColumnEditor {
	if length < Unset {
		e.errs = append(e.errs, fmt.Errorf("%w: length must be Unset or non-negative, got %d", ErrInvalidValue, length))
		return e
	}
	e.length = length
	return e
}

// Scale sets the scale of the column. It must be [Unset] or non-negative.
func (e *ColumnEditor) Scale(scale int) *ColumnEditor {
	if scale < Unset {
		e.errs = append(e.errs, fmt.Errorf("%w: scale must be Unset or non-negative, got %d", ErrInvalidValue, scale))
		return e
	}
	e.scale = scale
	return e
}

// ClearLength marks length as not applicable.
func (e *ColumnEditor) ClearLength() *ColumnEditor {
	e.length = Unset
	return e
}

// ClearScale marks scale as not applicable.
func (e *ColumnEditor) ClearScale() *ColumnEditor {
	e.scale = Unset
	return e
}

// CharsetName sets the database-specific character set name. It is only
// meaningful for type categories where [sqltypes.UsesCharset] holds.
func (e *ColumnEditor) CharsetName(charsetName string) *ColumnEditor {
	e.charsetName = charsetName
	return e
}

// Optional sets whether the column allows NULL values.
func (e *ColumnEditor) Optional(optional bool) *ColumnEditor {
	e.optional = optional
	return e
}

// AutoIncremented sets whether the column's values are automatically
// incremented by the database.
func (e *ColumnEditor) AutoIncremented(autoIncremented bool) *ColumnEditor {
	e.autoIncremented = autoIncremented
	return e
}

// Generated sets whether the column's values are computed by the database.
func (e *ColumnEditor) Generated(generated bool) *ColumnEditor {
	e.generated = generated
	return e
}

// DefaultValue sets the declared default of the column. Setting an explicit
// [NullDefault] also marks the default-is-null flag, since the two describe
// the same declaration.
func (e *ColumnEditor) DefaultValue(value DefaultValue) *ColumnEditor {
	e.defaultValue = value
	if value.IsNull() {
		e.defaultValueNull = true
	}
	return e
}

// DefaultValueNull records whether the column was declared with an explicit
// DEFAULT NULL. Marking it true when no default value has been set also
// records the default as [NullDefault], keeping the two views of the
// declaration consistent.
func (e *ColumnEditor) DefaultValueNull(defaultValueNull bool) *ColumnEditor {
	e.defaultValueNull = defaultValueNull
	if defaultValueNull && !e.defaultValue.IsPresent() {
		e.defaultValue = NullDefault()
	}
	return e
}

// ClearDefaultValue removes any declared default, returning the editor to
// the "no default declared" state.
func (e *ColumnEditor) ClearDefaultValue() *ColumnEditor {
	e.defaultValue = NoDefault()
	e.defaultValueNull = false
	return e
}

// Err returns the validation failures recorded so far, or nil. Build reports
// the same failures; Err allows checking them without building.
func (e *ColumnEditor) Err() error {
	return errors.Join(e.errs...)
}

// Build produces an immutable [Column] snapshot of the editor's state. It
// fails if the name or position is unset, or if any setter was given an
// invalid argument.
//
// The returned Column shares no storage with the editor: further edits do
// not affect it. Build does not consume the editor; it may be called again
// after more changes to produce incremental variants from one base state.
func (e *ColumnEditor) Build() (Column, error) {
	errs := append([]error(nil), e.errs...)
	if e.name == "" {
		errs = append(errs, ErrNoName)
	}
	if e.position < 1 {
		errs = append(errs, ErrNoPosition)
	}
	if err := errors.Join(errs...); err != nil {
		return Column{}, fmt.Errorf("build column: %w", err)
	}
	return Column{
		name:             e.name,
		position:         e.position,
		typeCode:         e.typeCode,
		nativeType:       e.nativeType,
		typeName:         e.typeName,
		typeExpression:   e.typeExpression,
		charsetName:      e.charsetName,
		length:           e.length,
		scale:            e.scale,
		optional:         e.optional,
		autoIncremented:  e.autoIncremented,
		generated:        e.generated,
		defaultValue:     e.defaultValue,
		defaultValueNull: e.defaultValueNull,
	}, nil
}
