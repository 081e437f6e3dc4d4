package stylesheet

import "regexp"

// identPattern matches a CSS identifier: ASCII word characters, hyphens,
// any non-ASCII code point and backslash escapes.
const identPattern = `(?:[\w-]|[^\x00-\x7F]|\\.)+`

// keyframesRegex matches the header of a keyframes block up to and
// including its opening brace.
var keyframesRegex = regexp.MustCompile(`@keyframes\s+(` + identPattern + `)\s*\{`)

type blockSpan struct {
	start int // offset of "@keyframes"
	end   int // offset just past the closing brace
	name  string
}

// ExtractKeyframes finds every brace-balanced @keyframes block in css and
// returns them together with css minus those blocks.
//
// A block whose braces never balance is neither returned nor removed.
// A header found inside an accepted block belongs to that block. When a
// name repeats, the last block wins; every occurrence is removed.
func ExtractKeyframes(css string) (*Set[Keyframes], string) {
	var spans []blockSpan
	limit := 0

	for _, loc := range keyframesRegex.FindAllStringSubmatchIndex(css, -1) {
		start := loc[0]
		if start < limit {
			continue
		}
		end, ok := matchBrace(css, loc[1]-1)
		if !ok {
			continue
		}
		spans = append(spans, blockSpan{start: start, end: end, name: css[loc[2]:loc[3]]})
		limit = end
	}

	set := NewSet[Keyframes]()
	for i, s := range spans {
		set.Put(Keyframes{Name: s.name, Raw: css[s.start:s.end], Order: i})
	}

	// Remove from the end so earlier offsets stay valid.
	residual := css
	for i := len(spans) - 1; i >= 0; i-- {
		residual = residual[:spans[i].start] + residual[spans[i].end:]
	}

	return set, residual
}

// matchBrace walks forward from the '{' at open and returns the offset just
// past its matching '}'.
func matchBrace(css string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(css); i++ {
		switch css[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}
