package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokentheme/internal/config"
	"github.com/jmylchreest/tokentheme/internal/cssimport"
	"github.com/jmylchreest/tokentheme/internal/output"
	"github.com/jmylchreest/tokentheme/internal/stylesheet"
)

// errOutOfDate is returned by --check when the merged file would change.
var errOutOfDate = errors.New("merged output is out of date")

var mergeOpts struct {
	base   string
	themes []string
	output string
	check  bool
	stdout bool
	watch  bool
	inline bool
}

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge theme stylesheets into the base @theme block",
	Long: `Merge the custom properties and keyframes of theme stylesheets into the
@theme block of a base stylesheet.

The base always wins a name collision; among themes the first listed wins.
Variables and keyframes are sorted by name. Running merge on its own output
changes nothing.

Examples:
  # Use base, themes and output from the config file
  tokentheme merge

  # Explicit inputs
  tokentheme merge --base theme-base.css \
    --theme theme-casino.css --theme theme-oddset.css

  # Fail in CI when base.merged.css is stale
  tokentheme merge --check`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringVarP(&mergeOpts.base, "base", "b", "",
		"Base stylesheet holding the @theme block (default from config: theme-base.css)")
	mergeCmd.Flags().StringArrayVarP(&mergeOpts.themes, "theme", "t", nil,
		"Theme stylesheet to merge, repeatable; replaces the configured list")
	mergeCmd.Flags().StringVarP(&mergeOpts.output, "output", "o", "",
		"Merged output file (default from config: base.merged.css)")
	mergeCmd.Flags().BoolVar(&mergeOpts.check, "check", false,
		"Exit non-zero if the output file is not up to date; do not write")
	mergeCmd.Flags().BoolVar(&mergeOpts.stdout, "stdout", false,
		"Write the merged CSS to stdout instead of a file")
	mergeCmd.Flags().BoolVarP(&mergeOpts.watch, "watch", "w", false,
		"Re-merge whenever the base or a theme file changes")
	mergeCmd.Flags().BoolVar(&mergeOpts.inline, "inline-imports", false,
		"Inline local @import files of each theme before merging")
}

func runMerge(cmd *cobra.Command, args []string) error {
	settings := cfg.Merge
	if mergeOpts.base != "" {
		settings.Base = mergeOpts.base
	}
	if len(mergeOpts.themes) > 0 {
		settings.Themes = mergeOpts.themes
	}
	if mergeOpts.output != "" {
		settings.Output = mergeOpts.output
	}
	if cmd.Flags().Changed("inline-imports") {
		settings.InlineImports = mergeOpts.inline
	}

	effective := *cfg
	effective.Merge = settings
	if err := effective.Validate(); err != nil {
		return err
	}

	var partials []string
	run := func() error {
		imported, err := mergeOnce(cmd, settings)
		if imported != nil {
			partials = imported
		}
		return err
	}

	if err := run(); err != nil {
		return err
	}

	if mergeOpts.watch {
		inputs := func() []string {
			paths := append([]string{settings.Base}, settings.Themes...)
			return append(paths, partials...)
		}
		return watchAndRun(cmd.Context(), inputs, run)
	}
	return nil
}

// mergeOnce runs one merge and returns the partials inlined into the themes,
// which --watch adds to its watch set.
func mergeOnce(cmd *cobra.Command, settings config.MergeConfig) ([]string, error) {
	basePath, outPath := settings.Base, settings.Output

	base, err := os.ReadFile(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read base file: %w", err)
	}

	themes, partials, err := readThemes(settings)
	if err != nil {
		return nil, err
	}

	result, err := stylesheet.Merge(string(base), themes)
	if err != nil {
		return partials, fmt.Errorf("%s: %w", basePath, err)
	}

	logger.Debug("merged themes",
		"base", basePath,
		"themes", len(settings.Themes),
		"variables", len(result.Variables),
		"keyframes", len(result.Keyframes))

	data := []byte(result.CSS)

	switch {
	case mergeOpts.stdout:
		_, err := fmt.Fprint(cmd.OutOrStdout(), result.CSS)
		return partials, err

	case mergeOpts.check:
		ok, err := output.UpToDate(outPath, data)
		if err != nil {
			return partials, err
		}
		if !ok {
			printStale(cmd.OutOrStdout(), outPath)
			return partials, errOutOfDate
		}
		return partials, nil
	}

	if err := output.WriteFile(outPath, data); err != nil {
		return partials, err
	}

	printSummary(cmd.OutOrStdout(), "Merged", outPath, len(data),
		fmt.Sprintf("%d variables (+%d), %d keyframes (+%d)",
			len(result.Variables), result.AddedVariables,
			len(result.Keyframes), result.AddedKeyframes))
	return partials, nil
}

// readThemes returns the text of every theme file, with local imports
// inlined when enabled, and the partials that were inlined.
func readThemes(settings config.MergeConfig) ([]string, []string, error) {
	inliner := cssimport.New(logger)
	themes := make([]string, 0, len(settings.Themes))
	var partials []string

	for _, path := range settings.Themes {
		if !settings.InlineImports {
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to read theme file: %w", err)
			}
			themes = append(themes, string(data))
			continue
		}

		text, files, err := inliner.InlineFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read theme file: %w", err)
		}
		themes = append(themes, text)
		partials = append(partials, files...)
	}

	return themes, partials, nil
}
