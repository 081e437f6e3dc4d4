package stylesheet

import (
	"regexp"
	"strings"
)

// declarationRegex matches "--ident: value;" where value holds no ';' and
// no braces. Values spanning several declarations are not supported.
var declarationRegex = regexp.MustCompile(`--` + identPattern + `\s*:\s*[^;{}]+;`)

// ExtractVariables returns the custom-property declarations found in css.
// A name declared more than once keeps its last value.
func ExtractVariables(css string) *Set[Declaration] {
	set := NewSet[Declaration]()

	for i, match := range declarationRegex.FindAllString(css, -1) {
		raw := strings.TrimSpace(match)
		name, _, ok := SplitDeclaration(raw)
		if !ok {
			continue
		}
		set.Put(Declaration{Name: name, Raw: raw, Order: i})
	}

	return set
}

// SplitDeclaration splits "name: value;" at the first colon that is not
// escaped by a backslash. Surrounding whitespace and the trailing
// semicolon are dropped.
func SplitDeclaration(raw string) (name, value string, ok bool) {
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case '\\':
			i++ // skip the escaped character
		case ':':
			name = strings.TrimSpace(raw[:i])
			value = strings.TrimSpace(raw[i+1:])
			value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
			return name, value, name != ""
		}
	}
	return "", "", false
}
