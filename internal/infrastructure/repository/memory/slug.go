package memory

import (
	"strings"
	"unicode"
)

// slug lowercases name and joins its letter and digit runs with dashes. Non-ASCII letters are kept.
func slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
