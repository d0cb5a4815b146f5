package sqltools

import (
	"fmt"
	"strings"
)

// Literal quotes a string value for use as an SQL literal, for example when
// rendering a character default value after the DEFAULT keyword.
//
// Any single quotes in the value will be escaped by doubling. Any
// backslashes (i.e. "\") will be replaced by two backslashes (i.e. "\\")
// and the C-style escape identifier ('E') will be prepended to the string.
func Literal(literal string) string {
	// substitute any single-quotes (') with two single-quotes ('')
	literal = strings.ReplaceAll(literal, `'`, `''`)
	// if the string has any backslashes (\), replace them with two
	// backslashes (\\) and wrap the entire string with a C-style escape.
	if strings.Contains(literal, `\`) {
		literal = strings.ReplaceAll(literal, `\`, `\\`)
		literal = ` E'` + literal + `'`
	} else {
		literal = `'` + literal + `'`
	}
	return literal
}

// Identifier quotes an identifier (the name of a column, a table, a type)
// for use in a rendered definition referencing that object. It returns the
// same identifier when possible, only introducing quotes when:
//
//   - the identifier has an upper-case character
//   - the identifier contains a character outside [a-z0-9_$]
//   - the identifier starts with a digit
//   - the identifier is a reserved SQL keyword
func Identifier(identifier string) string {
	if requiresQuoting(identifier) {
		return fmt.Sprintf(`"%s"`, strings.ReplaceAll(identifier, `"`, `""`))
	}
	return identifier
}

func requiresQuoting(identifier string) bool {
	if identifier == "" {
		return true
	}
	if _, ok := reservedKeywords[identifier]; ok {
		return true
	}
	for i, r := range identifier {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_' || r == '$':
		case r >= '0' && r <= '9':
			if i == 0 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// reservedKeywords holds the standard-SQL reserved words that show up as
// column names often enough to matter when rendering definitions. It is not
// the full reserved list of any one engine.
var reservedKeywords = map[string]struct{}{
	"all":        {},
	"and":        {},
	"any":        {},
	"as":         {},
	"asc":        {},
	"between":    {},
	"by":         {},
	"case":       {},
	"cast":       {},
	"check":      {},
	"collate":    {},
	"column":     {},
	"constraint": {},
	"create":     {},
	"cross":      {},
	"current":    {},
	"default":    {},
	"delete":     {},
	"desc":       {},
	"distinct":   {},
	"drop":       {},
	"else":       {},
	"end":        {},
	"except":     {},
	"exists":     {},
	"false":      {},
	"for":        {},
	"foreign":    {},
	"from":       {},
	"full":       {},
	"grant":      {},
	"group":      {},
	"having":     {},
	"in":         {},
	"index":      {},
	"inner":      {},
	"insert":     {},
	"intersect":  {},
	"into":       {},
	"is":         {},
	"join":       {},
	"key":        {},
	"left":       {},
	"like":       {},
	"limit":      {},
	"not":        {},
	"null":       {},
	"offset":     {},
	"on":         {},
	"or":         {},
	"order":      {},
	"outer":      {},
	"primary":    {},
	"references": {},
	"right":      {},
	"select":     {},
	"set":        {},
	"table":      {},
	"then":       {},
	"to":         {},
	"true":       {},
	"union":      {},
	"unique":     {},
	"update":     {},
	"user":       {},
	"using":      {},
	"values":     {},
	"when":       {},
	"where":      {},
	"with":       {},
}
