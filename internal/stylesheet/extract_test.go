package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractVariables(t *testing.T) {
	css := `@theme {
  --color-a: red;
  --spacing-lg:   2rem;
  --font-sans: "Inter", sans-serif;
}
.x { color: var(--color-a); }`

	set := ExtractVariables(css)

	assert.Equal(t, []string{"--color-a", "--spacing-lg", "--font-sans"}, set.Names())

	d, ok := set.Get("--spacing-lg")
	require.True(t, ok)
	assert.Equal(t, "--spacing-lg:   2rem;", d.Raw)
}

func TestExtractVariables_LastWithinSourceWins(t *testing.T) {
	css := `:root { --brand: red; --other: 1; }
.dark { --brand: blue; }`

	set := ExtractVariables(css)

	assert.Equal(t, []string{"--brand", "--other"}, set.Names())
	d, _ := set.Get("--brand")
	assert.Equal(t, "--brand: blue;", d.Raw)
}

func TestExtractVariables_IgnoresMalformed(t *testing.T) {
	tests := []struct {
		name string
		css  string
	}{
		{"no semicolon", `--a: red`},
		{"no value", `--a:;`},
		{"brace in value", `--a: { x };`},
		{"single dash", `-a: red;`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, ExtractVariables(tt.css).Len())
		})
	}
}

func TestExtractVariables_Idempotent(t *testing.T) {
	css := `--b: 2; --a: 1; --b: 3;`
	first := ExtractVariables(css)

	again := ""
	for _, d := range first.Items() {
		again += d.Raw + "\n"
	}
	second := ExtractVariables(again)

	assert.Equal(t, first.Names(), second.Names())
	for _, name := range first.Names() {
		a, _ := first.Get(name)
		b, _ := second.Get(name)
		assert.Equal(t, a.Raw, b.Raw)
	}
}

func TestSplitDeclaration(t *testing.T) {
	tests := []struct {
		raw   string
		name  string
		value string
		ok    bool
	}{
		{"--a: red;", "--a", "red", true},
		{"--a:red;", "--a", "red", true},
		{"--a  :  red  ;", "--a", "red", true},
		{"--url: url(http://x);", "--url", "url(http://x)", true},
		{`--a\:b: 1;`, `--a\:b`, "1", true},
		{"no colon", "", "", false},
		{": value;", "", "value", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, value, ok := SplitDeclaration(tt.raw)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.name, name)
				assert.Equal(t, tt.value, value)
			}
		})
	}
}

func TestExtractKeyframes_NestedBraces(t *testing.T) {
	block := `@keyframes pulse {
  0% { transform: scale(1); }
  50% { transform: scale(1.1); }
  100% { transform: scale(1); }
}`
	css := "a { color: red; }\n" + block + "\nb { color: blue; }"

	set, residual := ExtractKeyframes(css)

	require.Equal(t, 1, set.Len())
	k, ok := set.Get("pulse")
	require.True(t, ok)
	assert.Equal(t, block, k.Raw)
	assert.Equal(t, "a { color: red; }\n\nb { color: blue; }", residual)
}

func TestExtractKeyframes_Multiple(t *testing.T) {
	css := `@keyframes a { to { opacity: 1; } }
x
@keyframes b { from { opacity: 0; } }
y
@keyframes c { 0% { top: 0; } }`

	set, residual := ExtractKeyframes(css)

	assert.Equal(t, []string{"a", "b", "c"}, set.Names())
	assert.Equal(t, "\nx\n\ny\n", residual)

	b, _ := set.Get("b")
	assert.Equal(t, "@keyframes b { from { opacity: 0; } }", b.Raw)
}

func TestExtractKeyframes_Unbalanced(t *testing.T) {
	css := `@keyframes ok { to { opacity: 1; } }
@keyframes broken { to { opacity: 0; }`

	set, residual := ExtractKeyframes(css)

	assert.Equal(t, []string{"ok"}, set.Names())
	assert.Equal(t, "\n@keyframes broken { to { opacity: 0; }", residual)
}

func TestExtractKeyframes_DuplicateNameLastWins(t *testing.T) {
	css := `@keyframes spin { to { rotate: 90deg; } }@keyframes spin { to { rotate: 360deg; } }`

	set, residual := ExtractKeyframes(css)

	require.Equal(t, 1, set.Len())
	k, _ := set.Get("spin")
	assert.Contains(t, k.Raw, "360deg")
	assert.Empty(t, residual)
}

func TestExtractKeyframes_HeaderInsideBlock(t *testing.T) {
	css := `@keyframes outer { 0% { content: "@keyframes inner { }"; } }`

	set, residual := ExtractKeyframes(css)

	assert.Equal(t, []string{"outer"}, set.Names())
	assert.Empty(t, residual)
}

func TestExtractKeyframes_None(t *testing.T) {
	css := `.a { color: red; }`
	set, residual := ExtractKeyframes(css)
	assert.Equal(t, 0, set.Len())
	assert.Equal(t, css, residual)
}

func TestExtractKeyframes_NonASCIIName(t *testing.T) {
	css := "@keyframes café { to { --bad: 1; } }\n@keyframes a\\:b { from { opacity: 0; } }\n--a: 1;"

	set, residual := ExtractKeyframes(css)

	assert.Equal(t, []string{"café", `a\:b`}, set.Names())
	assert.Equal(t, "\n\n--a: 1;", residual)
}

func TestExtractVariables_NonASCIIName(t *testing.T) {
	set := ExtractVariables("--couleur-é: red;\n--ü: 3;\n--a\\:b: x;")

	assert.Equal(t, []string{"--couleur-é", "--ü", `--a\:b`}, set.Names())
	d, ok := set.Get("--ü")
	require.True(t, ok)
	assert.Equal(t, "--ü: 3;", d.Raw)
}

func TestFindThemeBlock(t *testing.T) {
	css := `@import "tailwindcss";
@theme {
  --a: 1;
}
.x {}`

	span, err := FindThemeBlock(css)
	require.NoError(t, err)

	assert.Equal(t, "@theme {\n  --a: 1;\n}", css[span.Start:span.End])
	assert.Equal(t, "\n  --a: 1;\n", css[span.BodyStart:span.BodyEnd])
}

func TestFindThemeBlock_Missing(t *testing.T) {
	tests := []string{
		`.x { --a: 1; }`,
		`@theme { --a: 1;`,
		``,
	}

	for _, css := range tests {
		_, err := FindThemeBlock(css)
		assert.ErrorIs(t, err, ErrNoThemeBlock)
	}
}

func TestSet_Clone(t *testing.T) {
	s := NewSet[Declaration]()
	s.Put(Declaration{Name: "--a", Raw: "--a: 1;"})

	c := s.Clone()
	c.Put(Declaration{Name: "--b", Raw: "--b: 2;"})
	c.Put(Declaration{Name: "--a", Raw: "--a: 9;"})

	assert.Equal(t, []string{"--a"}, s.Names())
	d, _ := s.Get("--a")
	assert.Equal(t, "--a: 1;", d.Raw)
	assert.Equal(t, []string{"--a", "--b"}, c.Names())
}

func TestCompareNames(t *testing.T) {
	assert.Negative(t, CompareNames("--color-a", "--color-b"))
	assert.Positive(t, CompareNames("--spacing", "--color"))
	assert.Negative(t, CompareNames("--text-sm", "--text-sm--line-height"))
	assert.Zero(t, CompareNames("--a", "--a"))
	// Locale-aware: case is a tertiary difference, not a primary one.
	assert.Negative(t, CompareNames("--apple", "--Banana"))
}
