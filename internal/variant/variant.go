// Package variant derives @custom-variant rules from a token config.
//
// Structured variants are taken as given. Plugin entries are a best-effort
// fallback: their source text (or the string values of a plain object) is
// scanned for addVariant("name", "selector") calls, which only works while
// the source keeps that shape.
package variant

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/jmylchreest/tokentheme/internal/tokens"
)

// addVariantRegex matches addVariant('name', 'selector') with either quote
// style and free spacing.
var addVariantRegex = regexp.MustCompile(`addVariant\s*\(\s*['"]([^'"]+)['"]\s*,\s*['"]([^'"]+)['"]\s*\)`)

// Rule is one custom variant.
type Rule struct {
	Name     string
	Selector string
}

// String renders the rule as CSS.
func (r Rule) String() string {
	return fmt.Sprintf("@custom-variant %s (%s);", r.Name, r.Selector)
}

// Extract returns the structured variants followed by those found in the
// plugins, in the order they occur. A name already seen is skipped.
// Plugins that cannot be read are logged and skipped.
func Extract(plugins []tokens.Plugin, structured []tokens.Variant, logger *slog.Logger) []Rule {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]bool)
	var rules []Rule
	add := func(r Rule) {
		if seen[r.Name] {
			logger.Debug("duplicate custom variant ignored", "name", r.Name)
			return
		}
		seen[r.Name] = true
		rules = append(rules, r)
	}

	for _, v := range structured {
		add(Rule{Name: v.Name, Selector: v.Selector})
	}

	if len(plugins) > 0 {
		logger.Debug("extracting custom variants from plugins", "count", len(plugins))
	}
	for _, p := range plugins {
		text, err := PluginText(p)
		if err != nil {
			logger.Warn("error processing plugin", "index", p.Index, "error", err)
			continue
		}
		for _, r := range Scan(text) {
			add(r)
		}
	}

	return rules
}

// Scan returns every addVariant call found in text.
func Scan(text string) []Rule {
	if !strings.Contains(text, "addVariant") {
		return nil
	}

	var rules []Rule
	for _, m := range addVariantRegex.FindAllStringSubmatch(text, -1) {
		rules = append(rules, Rule{Name: m[1], Selector: m[2]})
	}
	return rules
}

// PluginText returns the text representation of a plugin entry.
func PluginText(p tokens.Plugin) (string, error) {
	switch {
	case p.Err != nil:
		return "", p.Err
	case p.Source != "":
		return p.Source, nil
	case p.Handler != "":
		return p.Handler, nil
	case p.Object != nil:
		leaves := stringLeaves(p.Object, nil)
		if len(leaves) == 0 {
			return "", errors.New("plugin object holds no source text")
		}
		return strings.Join(leaves, "\n"), nil
	default:
		return "", errors.New("empty plugin entry")
	}
}

// stringLeaves appends the string values found in v, depth first. Map
// entries are visited in key order.
func stringLeaves(v any, out []string) []string {
	switch x := v.(type) {
	case string:
		return append(out, x)
	case []any:
		for _, item := range x {
			out = stringLeaves(item, out)
		}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = stringLeaves(x[k], out)
		}
	case map[any]any:
		keys := make([]string, 0, len(x))
		values := make(map[string]any, len(x))
		for k, item := range x {
			key := fmt.Sprint(k)
			keys = append(keys, key)
			values[key] = item
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = stringLeaves(values[k], out)
		}
	}
	return out
}

// Render joins rules into CSS, one rule per line.
func Render(rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}
