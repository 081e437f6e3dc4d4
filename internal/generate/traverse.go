// Package generate converts a design-token config tree into CSS custom
// properties wrapped in a component layer.
package generate

import (
	"math"
	"regexp"
	"strconv"

	"github.com/jmylchreest/tokentheme/internal/mapping"
	"github.com/jmylchreest/tokentheme/internal/tokens"
)

// DefaultLineHeight is used for a font size without a line-height option.
const DefaultLineHeight = "1"

// Declaration is one generated custom property.
type Declaration struct {
	Name  string // Including the leading "--"
	Value string
}

// String renders the declaration as "name: value;".
func (d Declaration) String() string {
	return d.Name + ": " + d.Value + ";"
}

// Options controls leaf formatting.
type Options struct {
	// StrictLineHeight emits font-size line heights as a unitless ratio
	// of line height to size.
	StrictLineHeight bool
}

// Traverse walks m depth-first in insertion order and returns the custom
// properties of its leaves. The accumulated prefix is passed through
// mapper at every level, so an entry may match a full path such as
// "color-brand" as well as a single category.
func Traverse(m *tokens.Map, prefix string, mapper mapping.NameMapper, opts Options) []Declaration {
	var out []Declaration

	m.Each(func(key string, value tokens.Node) {
		mapped := mapper.MapName(prefix)
		name := key
		if mapped != "" {
			name = mapped + "-" + key
		}

		switch v := value.(type) {
		case *tokens.Map:
			out = append(out, Traverse(v, name, mapper, opts)...)
		case tokens.Tuple:
			out = append(out, formatTuple(mapped, name, v, opts)...)
		case tokens.Scalar:
			out = append(out, formatScalar(mapped, name, v)...)
		}
	})

	return out
}

func formatTuple(mapped, name string, t tokens.Tuple, opts Options) []Declaration {
	switch mapped {
	case mapping.PrefixText:
		size := t.Primary()
		return []Declaration{
			{Name: "--" + name, Value: size},
			{Name: "--" + name + "--line-height", Value: lineHeight(size, t, opts.StrictLineHeight)},
		}
	case mapping.PrefixAspectRatio:
		return nil
	default:
		return []Declaration{{Name: "--" + name, Value: t.Primary()}}
	}
}

func formatScalar(mapped, name string, s tokens.Scalar) []Declaration {
	if mapped == mapping.PrefixAspectRatio {
		return nil
	}
	return []Declaration{{Name: "--" + name, Value: s.Value}}
}

// lineHeight picks the line height of a (size, options) tuple: the
// options' lineHeight, a plain second element, or DefaultLineHeight.
func lineHeight(size string, t tokens.Tuple, strict bool) string {
	lh := DefaultLineHeight
	if opts, ok := t.Options(); ok {
		if v := opts.String("lineHeight"); v != "" {
			lh = v
		}
	} else if len(t.Items) > 1 {
		if s, ok := t.Items[1].(tokens.Scalar); ok && s.Value != "" {
			lh = s.Value
		}
	}

	if strict {
		if r, ok := Ratio(lh, size); ok {
			return r
		}
	}
	return lh
}

var dimensionRegex = regexp.MustCompile(`^\s*([-+]?(?:\d+\.?\d*|\.\d+))[a-zA-Z%]*\s*$`)

// Ratio divides two dimensions after stripping their unit suffixes,
// e.g. Ratio("1.5rem", "1rem") = "1.5". The result has at most four
// decimals. It reports false when either value is not a number or the
// divisor is zero.
func Ratio(numerator, denominator string) (string, bool) {
	n, ok := stripUnit(numerator)
	if !ok {
		return "", false
	}
	d, ok := stripUnit(denominator)
	if !ok || d == 0 {
		return "", false
	}

	r := math.Round(n/d*10000) / 10000
	return strconv.FormatFloat(r, 'f', -1, 64), true
}

func stripUnit(v string) (float64, bool) {
	m := dimensionRegex.FindStringSubmatch(v)
	if m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
