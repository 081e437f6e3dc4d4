package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesOrder(t *testing.T) {
	data := []byte(`
name: casino
selectors: [".casino", ".casino-dark"]
extend:
  colors:
    zebra: "#000"
    apple: "#f00"
    mango: "#fa0"
`)
	cfg, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, "casino", cfg.Name)
	assert.Equal(t, []string{".casino", ".casino-dark"}, cfg.Selectors)

	colors, ok := cfg.Extend.Get("colors")
	require.True(t, ok)
	m, ok := colors.(*Map)
	require.True(t, ok)
	assert.Equal(t, []string{"zebra", "apple", "mango"}, m.Keys())
	assert.Equal(t, "#f00", m.String("apple"))
}

func TestDecode_JSON(t *testing.T) {
	data := []byte(`{
  "name": "oddset",
  "extend": {
    "fontSize": {
      "sm": ["0.875rem", {"lineHeight": "1.25rem"}]
    },
    "opacity": {"half": 0.5}
  }
}`)
	cfg, err := Decode(data)
	require.NoError(t, err)

	fontSize, ok := cfg.Extend.Get("fontSize")
	require.True(t, ok)
	sm, ok := fontSize.(*Map).Get("sm")
	require.True(t, ok)

	tuple, ok := sm.(Tuple)
	require.True(t, ok)
	assert.Equal(t, "0.875rem", tuple.Primary())

	opts, ok := tuple.Options()
	require.True(t, ok)
	assert.Equal(t, "1.25rem", opts.String("lineHeight"))

	opacity, _ := cfg.Extend.Get("opacity")
	assert.Equal(t, "0.5", opacity.(*Map).String("half"))
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Name)
	assert.Equal(t, 0, cfg.Extend.Len())
}

func TestDecode_RootNotMapping(t *testing.T) {
	_, err := Decode([]byte(`- a
- b`))
	assert.ErrorIs(t, err, ErrNotMapping)
}

func TestDecode_InvalidYAML(t *testing.T) {
	_, err := Decode([]byte("extend: [unclosed"))
	assert.Error(t, err)
}

func TestDecode_ThemeWrapper(t *testing.T) {
	data := []byte(`
theme:
  extend:
    spacing:
      lg: 2rem
  keyframes:
    spin:
      to:
        transform: rotate(360deg)
animation:
  spin: spin 1s linear infinite
`)
	cfg, err := Decode(data)
	require.NoError(t, err)

	spacing, ok := cfg.Extend.Get("spacing")
	require.True(t, ok)
	assert.Equal(t, "2rem", spacing.(*Map).String("lg"))
	assert.Equal(t, []string{"spin"}, cfg.Keyframes.Keys())
	assert.Equal(t, "spin 1s linear infinite", cfg.Animation.String("spin"))
}

func TestDecode_Plugins(t *testing.T) {
	data := []byte(`
plugins:
  - |
    function ({ addVariant }) { addVariant('hocus', '&:hover') }
  - handler: "({ addVariant }) => addVariant('open', '&[open]')"
  - options:
      size: 3
  - handler: [not, text]
  - null
`)
	cfg, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, cfg.Plugins, 5)

	assert.Contains(t, cfg.Plugins[0].Source, "addVariant('hocus'")
	assert.Contains(t, cfg.Plugins[1].Handler, "addVariant('open'")
	assert.NotNil(t, cfg.Plugins[2].Object)
	assert.Error(t, cfg.Plugins[3].Err)
	assert.Error(t, cfg.Plugins[4].Err)

	for i, p := range cfg.Plugins {
		assert.Equal(t, i, p.Index)
	}
}

func TestDecode_Variants(t *testing.T) {
	t.Run("mapping", func(t *testing.T) {
		cfg, err := Decode([]byte(`
variants:
  hocus: "&:hover, &:focus"
  open: "&[open]"
`))
		require.NoError(t, err)
		assert.Equal(t, []Variant{
			{Name: "hocus", Selector: "&:hover, &:focus"},
			{Name: "open", Selector: "&[open]"},
		}, cfg.Variants)
	})

	t.Run("list", func(t *testing.T) {
		cfg, err := Decode([]byte(`
variants:
  - name: hocus
    selector: "&:hover"
`))
		require.NoError(t, err)
		assert.Equal(t, []Variant{{Name: "hocus", Selector: "&:hover"}}, cfg.Variants)
	})

	t.Run("missing selector", func(t *testing.T) {
		_, err := Decode([]byte(`
variants:
  - name: hocus
`))
		assert.Error(t, err)
	})
}

func TestDecode_Aliases(t *testing.T) {
	data := []byte(`
shared: &brand
  primary: "#123456"
extend:
  colors: *brand
`)
	cfg, err := Decode(data)
	require.NoError(t, err)

	colors, ok := cfg.Extend.Get("colors")
	require.True(t, ok)
	assert.Equal(t, "#123456", colors.(*Map).String("primary"))
}

func TestMap_SetKeepsPosition(t *testing.T) {
	m := NewMap()
	m.Set("a", Scalar{Value: "1"})
	m.Set("b", Scalar{Value: "2"})
	m.Set("a", Scalar{Value: "3"})

	assert.Equal(t, []string{"a", "b"}, m.Keys())
	assert.Equal(t, "3", m.String("a"))
	assert.Equal(t, 2, m.Len())
}

func TestTuple_Primary(t *testing.T) {
	assert.Equal(t, "", Tuple{}.Primary())
	assert.Equal(t, "x", Tuple{Items: []Node{Scalar{Value: "x"}, Scalar{Value: "y"}}}.Primary())
	assert.Equal(t, "in", Tuple{Items: []Node{Tuple{Items: []Node{Scalar{Value: "in"}}}}}.Primary())

	_, ok := Tuple{Items: []Node{Scalar{Value: "x"}, Scalar{Value: "y"}}}.Options()
	assert.False(t, ok)
}
