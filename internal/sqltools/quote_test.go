package sqltools_test

import (
	"testing"

	"github.com/peterldowns/testy/check"

	"github.com/sweat123/relational/internal/sqltools"
)

func TestLiteral(t *testing.T) {
	t.Parallel()
	check.Equal(t, `'hello'`, sqltools.Literal(`hello`))
	check.Equal(t, `'''hello'''`, sqltools.Literal(`'hello'`))
	check.Equal(t, `'"hello"'`, sqltools.Literal(`"hello"`))
	check.Equal(t, ` E'abc\\def'`, sqltools.Literal(`abc\def`)) // literal \, not an escape character
	check.Equal(t, `'0'`, sqltools.Literal(`0`))
	check.Equal(t, `''`, sqltools.Literal(``))
}

// These tests show how Identifier behaves with typical column names.
func TestIdentifierExpectedInputs(t *testing.T) {
	t.Parallel()
	// a plain lower-case name passes through untouched
	check.Equal(t, `title`, sqltools.Identifier(`title`))
	check.Equal(t, `created_at`, sqltools.Identifier(`created_at`))
	check.Equal(t, `col2`, sqltools.Identifier(`col2`))
	// reserved keywords require quoting
	check.Equal(t, `"order"`, sqltools.Identifier(`order`))
	check.Equal(t, `"user"`, sqltools.Identifier(`user`))
	check.Equal(t, `"default"`, sqltools.Identifier(`default`))
	// any upper-case character requires quoting
	check.Equal(t, `"Cats"`, sqltools.Identifier(`Cats`))
	check.Equal(t, `"CATS"`, sqltools.Identifier(`CATS`))
	check.Equal(t, `"F"`, sqltools.Identifier(`F`))
}

// These tests show how Identifier behaves with inputs that are not typical,
// but could theoretically be passed to it.
func TestIdentifierGarbageInputs(t *testing.T) {
	t.Parallel()
	// a leading digit requires quoting
	check.Equal(t, `"2fast"`, sqltools.Identifier(`2fast`))
	// spaces and hyphens require quoting
	check.Equal(t, `"my column"`, sqltools.Identifier(`my column`))
	check.Equal(t, `"my-column"`, sqltools.Identifier(`my-column`))
	// any literal double quote " gets escaped by doubling `"` -> `""`,
	// which requires surrounding the identifier with quotes as well.
	check.Equal(t, `"""name"""`, sqltools.Identifier(`"name"`))
	// the empty identifier renders as empty quotes rather than vanishing
	check.Equal(t, `""`, sqltools.Identifier(``))
}
