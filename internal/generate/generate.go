package generate

import (
	"log/slog"
	"strings"

	"github.com/jmylchreest/tokentheme/internal/mapping"
	"github.com/jmylchreest/tokentheme/internal/tokens"
	"github.com/jmylchreest/tokentheme/internal/variant"
)

// Defaults for configs that omit a name or selector.
const (
	DefaultName     = "theme"
	DefaultSelector = ".theme"
	LayerName       = "components"
)

// Result is a generated stylesheet.
type Result struct {
	FileName     string // <name>.css
	CSS          string
	Declarations []Declaration
	Keyframes    []string // Generated keyframe names, in output order
	Variants     []variant.Rule
}

// Generator renders token configs as CSS.
type Generator struct {
	mapper mapping.NameMapper
	opts   Options
	logger *slog.Logger
}

// New creates a Generator. A nil mapper uses mapping.Default().
func New(mapper mapping.NameMapper, opts Options, logger *slog.Logger) *Generator {
	if mapper == nil {
		mapper = mapping.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{mapper: mapper, opts: opts, logger: logger}
}

// Generate renders cfg.
//
// Declarations come from extend (in key order), then the top-level
// animation map. Keyframes from extend.keyframes and the top-level
// keyframes map are nested inside the selector block. Custom variants
// follow the layer.
func (g *Generator) Generate(cfg *tokens.Config) *Result {
	decls, keyframes := g.declarations(cfg)
	rules := variant.Extract(cfg.Plugins, cfg.Variants, g.logger)

	selector := DefaultSelector
	if len(cfg.Selectors) > 0 && cfg.Selectors[0] != "" {
		selector = cfg.Selectors[0]
	}

	var b strings.Builder
	b.WriteString("@layer " + LayerName + " {\n")
	b.WriteString("  " + selector + " {\n")
	for _, d := range decls {
		b.WriteString("    " + d.String() + "\n")
	}
	names := writeKeyframes(&b, keyframes, g.logger)
	b.WriteString("  }\n}\n")

	if len(rules) > 0 {
		b.WriteString("\n" + variant.Render(rules) + "\n")
	}

	name := cfg.Name
	if name == "" {
		name = DefaultName
	}

	g.logger.Debug("generated stylesheet",
		"name", name,
		"declarations", len(decls),
		"keyframes", len(names),
		"variants", len(rules))

	return &Result{
		FileName:     name + ".css",
		CSS:          b.String(),
		Declarations: decls,
		Keyframes:    names,
		Variants:     rules,
	}
}

// declarations collects the custom properties of cfg and the keyframes map
// that should be rendered structurally.
func (g *Generator) declarations(cfg *tokens.Config) ([]Declaration, *tokens.Map) {
	var decls []Declaration
	keyframes := tokens.NewMap()

	cfg.Extend.Each(func(section string, values tokens.Node) {
		m, ok := values.(*tokens.Map)
		if !ok {
			g.logger.Warn("skipping non-mapping token section", "section", section)
			return
		}

		switch section {
		case "keyframes":
			m.Each(keyframes.Set)
		case "animation":
			decls = append(decls, animations(m)...)
		default:
			decls = append(decls, Traverse(m, g.mapper.MapName(section), g.mapper, g.opts)...)
		}
	})

	decls = append(decls, animations(cfg.Animation)...)
	cfg.Keyframes.Each(keyframes.Set)

	return decls, keyframes
}

// animations emits --animate-<name> for each entry of m.
func animations(m *tokens.Map) []Declaration {
	var out []Declaration
	m.Each(func(name string, value tokens.Node) {
		switch v := value.(type) {
		case tokens.Scalar:
			out = append(out, Declaration{Name: "--" + mapping.PrefixAnimate + "-" + name, Value: v.Value})
		case tokens.Tuple:
			out = append(out, Declaration{Name: "--" + mapping.PrefixAnimate + "-" + name, Value: v.Primary()})
		}
	})
	return out
}

// writeKeyframes renders name -> step -> property -> value maps nested in
// the selector block and returns the rendered names.
func writeKeyframes(b *strings.Builder, keyframes *tokens.Map, logger *slog.Logger) []string {
	var names []string

	keyframes.Each(func(name string, node tokens.Node) {
		steps, ok := node.(*tokens.Map)
		if !ok {
			logger.Warn("skipping keyframes that are not a mapping", "name", name)
			return
		}
		names = append(names, name)

		b.WriteString("    @keyframes " + name + " {\n")
		steps.Each(func(step string, node tokens.Node) {
			props, ok := node.(*tokens.Map)
			if !ok {
				logger.Warn("skipping keyframe step that is not a mapping", "name", name, "step", step)
				return
			}
			b.WriteString("      " + step + " {\n")
			props.Each(func(prop string, value tokens.Node) {
				b.WriteString("        " + prop + ": " + leafText(value) + ";\n")
			})
			b.WriteString("      }\n")
		})
		b.WriteString("    }\n")
	})

	return names
}

func leafText(n tokens.Node) string {
	switch v := n.(type) {
	case tokens.Scalar:
		return v.Value
	case tokens.Tuple:
		return v.Primary()
	default:
		return ""
	}
}
