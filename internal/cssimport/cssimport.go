// Package cssimport inlines local @import statements so that custom
// properties declared in partials are visible to the merger.
package cssimport

import (
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// importRegex matches @import "file.css"; or @import 'file.css'; or @import url("file.css");
var importRegex = regexp.MustCompile(`@import\s+(?:url\s*\(\s*)?["']([^"']+)["']\s*\)?;?`)

// Inliner resolves @import statements relative to a base directory.
type Inliner struct {
	logger *slog.Logger
}

// New creates an Inliner.
func New(logger *slog.Logger) *Inliner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Inliner{logger: logger}
}

// InlineFile reads path and inlines its imports. It also returns the
// partials that were inlined, in first-inclusion order.
func (in *Inliner) InlineFile(path string) (string, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	st := newState()
	st.active[abs] = true
	css := in.inline(string(data), filepath.Dir(path), st)
	return css, st.files, nil
}

// Inline replaces every @import of an existing local .css file with the
// file's content, recursively. Imports that are not local files (package
// imports such as "tailwindcss", URLs) are left as written. A file that
// imports itself through its own chain is replaced by a comment; a file
// already inlined elsewhere is inlined only once.
func (in *Inliner) Inline(css string, baseDir string) (string, []string) {
	st := newState()
	out := in.inline(css, baseDir, st)
	return out, st.files
}

// state tracks one inlining run. active holds the files on the current
// import chain; included holds every file inlined so far.
type state struct {
	active   map[string]bool
	included map[string]bool
	files    []string
}

func newState() *state {
	return &state{
		active:   make(map[string]bool),
		included: make(map[string]bool),
	}
}

func (in *Inliner) inline(css string, baseDir string, st *state) string {
	return importRegex.ReplaceAllStringFunc(css, func(match string) string {
		submatch := importRegex.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}

		importPath := submatch[1]
		if !isLocal(importPath) {
			return match
		}

		fullPath := importPath
		if !filepath.IsAbs(importPath) {
			fullPath = filepath.Join(baseDir, importPath)
		}
		if abs, err := filepath.Abs(fullPath); err == nil {
			fullPath = abs
		}

		if st.active[fullPath] {
			in.logger.Warn("circular import skipped", "import", importPath)
			return "/* circular import prevented: " + importPath + " */"
		}
		if st.included[fullPath] {
			in.logger.Debug("repeated import elided", "import", importPath)
			return "/* already imported: " + importPath + " */"
		}

		imported, err := os.ReadFile(fullPath)
		if err != nil {
			in.logger.Warn("import not inlined", "import", importPath, "error", err)
			return match
		}
		st.included[fullPath] = true
		st.files = append(st.files, fullPath)

		in.logger.Debug("inlined import", "import", importPath, "path", fullPath)
		st.active[fullPath] = true
		processed := in.inline(string(imported), filepath.Dir(fullPath), st)
		delete(st.active, fullPath)

		return "/* imported: " + importPath + " */\n" + processed
	})
}

// isLocal reports whether an import target names a local stylesheet.
func isLocal(target string) bool {
	if strings.Contains(target, "://") || strings.HasPrefix(target, "//") {
		return false
	}
	return strings.HasSuffix(target, ".css")
}
