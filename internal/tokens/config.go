package tokens

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when the configuration root is not a mapping.
var ErrNotMapping = errors.New("config root must be a mapping")

// Config is a decoded token configuration.
type Config struct {
	Name      string    // Output file base name
	Selectors []string  // First entry wraps the generated declarations
	Extend    *Map      // Nested token categories
	Animation *Map      // name -> animation shorthand
	Keyframes *Map      // name -> step -> property -> value
	Plugins   []Plugin  // Raw plugin entries, scanned for addVariant calls
	Variants  []Variant // Structured custom variants
}

// Plugin is one raw entry of the plugins list.
// Exactly one of Source, Handler or Object is set unless Err is non-nil.
type Plugin struct {
	Index   int    // Position in the plugins list
	Source  string // Callable source text
	Handler string // Source text of the entry's handler field
	Object  any    // Any other entry, kept for a structural dump
	Err     error  // Why the entry cannot be processed
}

// Variant is a custom variant given as structured data.
type Variant struct {
	Name     string
	Selector string
}

// Decode parses a YAML or JSON token configuration.
// Key order is preserved at every level of the tree.
func Decode(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := &Config{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return cfg, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, ErrNotMapping
	}

	if err := cfg.decodeSection(root); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeSection reads the recognized keys of a mapping node into cfg.
// A "theme" key is read recursively so theme.extend and friends work.
func (cfg *Config) decodeSection(root *yaml.Node) error {
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		value := resolve(root.Content[i+1])

		switch key {
		case "name":
			cfg.Name = value.Value
		case "selectors":
			cfg.Selectors = decodeStrings(value)
		case "extend":
			cfg.Extend = mergeMaps(cfg.Extend, decodeMap(value))
		case "animation":
			cfg.Animation = mergeMaps(cfg.Animation, decodeMap(value))
		case "keyframes":
			cfg.Keyframes = mergeMaps(cfg.Keyframes, decodeMap(value))
		case "plugins":
			cfg.Plugins = append(cfg.Plugins, decodePlugins(value, len(cfg.Plugins))...)
		case "variants":
			variants, err := decodeVariants(value)
			if err != nil {
				return err
			}
			cfg.Variants = append(cfg.Variants, variants...)
		case "theme":
			if value.Kind == yaml.MappingNode {
				if err := cfg.decodeSection(value); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// convert turns a YAML node into a token Node.
func convert(n *yaml.Node) Node {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(n.Content); i += 2 {
			m.Set(n.Content[i].Value, convert(n.Content[i+1]))
		}
		return m
	case yaml.SequenceNode:
		items := make([]Node, 0, len(n.Content))
		for _, c := range n.Content {
			items = append(items, convert(c))
		}
		return Tuple{Items: items}
	default:
		if n.Tag == "!!null" {
			return Scalar{}
		}
		return Scalar{Value: n.Value}
	}
}

// resolve follows aliases and unwraps documents.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		default:
			return n
		}
	}
	return n
}

func decodeMap(n *yaml.Node) *Map {
	if m, ok := convert(n).(*Map); ok {
		return m
	}
	return nil
}

// mergeMaps overlays src onto dst; dst may be nil.
func mergeMaps(dst, src *Map) *Map {
	if src == nil {
		return dst
	}
	if dst == nil {
		return src
	}
	src.Each(dst.Set)
	return dst
}

func decodeStrings(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return nil
		}
		return []string{n.Value}
	case yaml.SequenceNode:
		out := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			c = resolve(c)
			if c.Kind == yaml.ScalarNode {
				out = append(out, c.Value)
			}
		}
		return out
	}
	return nil
}

func decodePlugins(n *yaml.Node, offset int) []Plugin {
	if n.Kind != yaml.SequenceNode {
		return nil
	}

	plugins := make([]Plugin, 0, len(n.Content))
	for i, c := range n.Content {
		c = resolve(c)
		p := Plugin{Index: offset + i}

		switch {
		case c.Kind == yaml.ScalarNode && c.Tag == "!!null":
			p.Err = errors.New("plugin entry is null")
		case c.Kind == yaml.ScalarNode:
			p.Source = c.Value
		case c.Kind == yaml.MappingNode && hasKey(c, "handler"):
			h := resolve(valueOf(c, "handler"))
			if h.Kind != yaml.ScalarNode || h.Tag == "!!null" {
				p.Err = errors.New("plugin handler is not source text")
			} else {
				p.Handler = h.Value
			}
		default:
			var obj any
			if err := c.Decode(&obj); err != nil {
				p.Err = fmt.Errorf("decode plugin object: %w", err)
			} else {
				p.Object = obj
			}
		}

		plugins = append(plugins, p)
	}
	return plugins
}

// decodeVariants accepts either a name -> selector mapping or a list of
// {name, selector} mappings.
func decodeVariants(n *yaml.Node) ([]Variant, error) {
	var variants []Variant

	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			sel := resolve(n.Content[i+1])
			if sel.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("variant %q: selector must be a string", n.Content[i].Value)
			}
			variants = append(variants, Variant{Name: n.Content[i].Value, Selector: sel.Value})
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			var v struct {
				Name     string `yaml:"name"`
				Selector string `yaml:"selector"`
			}
			if err := resolve(c).Decode(&v); err != nil {
				return nil, fmt.Errorf("variant %d: %w", i, err)
			}
			if v.Name == "" || v.Selector == "" {
				return nil, fmt.Errorf("variant %d: name and selector are required", i)
			}
			variants = append(variants, Variant{Name: v.Name, Selector: v.Selector})
		}
	}
	return variants, nil
}

func hasKey(n *yaml.Node, key string) bool {
	return valueOf(n, key) != nil
}

func valueOf(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
