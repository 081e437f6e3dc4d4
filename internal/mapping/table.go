package mapping

import "sort"

// NameMapper maps a token-category prefix to a custom-property prefix.
type NameMapper interface {
	MapName(prefix string) string
}

// Well-known mapped prefixes with special leaf formatting.
const (
	PrefixText        = "text"
	PrefixAspectRatio = "aspect-ratio"
	PrefixAnimate     = "animate"
)

// Table is a static NameMapper backed by a map.
type Table map[string]string

// defaultTable maps Tailwind theme keys (as exported from Figma token
// plugins) to Tailwind v4 theme namespaces.
var defaultTable = Table{
	"colors":          "color",
	"backgroundColor": "color",
	"textColor":       "color",
	"borderColor":     "color",
	"fontFamily":      "font",
	"fontSize":        PrefixText,
	"fontWeight":      "font-weight",
	"letterSpacing":   "tracking",
	"lineHeight":      "leading",
	"spacing":         "spacing",
	"borderRadius":    "radius",
	"borderWidth":     "border-width",
	"boxShadow":       "shadow",
	"dropShadow":      "drop-shadow",
	"blur":            "blur",
	"screens":         "breakpoint",
	"containers":      "container",
	"maxWidth":        "container",
	"aspectRatio":     PrefixAspectRatio,
	"animation":       PrefixAnimate,
	"perspective":     "perspective",
	"opacity":         "opacity",
	"zIndex":          "z-index",
}

// Default returns a copy of the built-in mapping table.
func Default() Table {
	return defaultTable.With(nil)
}

// MapName returns the mapped prefix, or prefix itself when no entry exists.
func (t Table) MapName(prefix string) string {
	if mapped, ok := t[prefix]; ok {
		return mapped
	}
	return prefix
}

// With returns a new table containing t's entries overlaid with overrides.
// The receiver is not modified.
func (t Table) With(overrides map[string]string) Table {
	merged := make(Table, len(t)+len(overrides))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// Keys returns the table's keys in ascending order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var _ NameMapper = Table(nil)
