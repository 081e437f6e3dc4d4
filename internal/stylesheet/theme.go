package stylesheet

import (
	"errors"
	"regexp"
)

// ErrNoThemeBlock is returned when a stylesheet has no balanced @theme block.
var ErrNoThemeBlock = errors.New("no @theme block found")

var themeRegex = regexp.MustCompile(`@theme\s*\{`)

// Span locates a block within a text.
type Span struct {
	Start     int // offset of the block's first byte
	End       int // offset just past the closing brace
	BodyStart int // offset just past the opening brace
	BodyEnd   int // offset of the closing brace
}

// FindThemeBlock locates the first @theme block in css.
// Only one @theme block per document is supported.
func FindThemeBlock(css string) (Span, error) {
	loc := themeRegex.FindStringIndex(css)
	if loc == nil {
		return Span{}, ErrNoThemeBlock
	}

	end, ok := matchBrace(css, loc[1]-1)
	if !ok {
		return Span{}, ErrNoThemeBlock
	}

	return Span{
		Start:     loc[0],
		End:       end,
		BodyStart: loc[1],
		BodyEnd:   end - 1,
	}, nil
}
