package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokentheme/internal/generate"
	"github.com/jmylchreest/tokentheme/internal/mapping"
	"github.com/jmylchreest/tokentheme/internal/output"
	"github.com/jmylchreest/tokentheme/internal/tokens"
)

var generateOpts struct {
	outDir string
	strict bool
	stdout bool
	watch  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate <config>",
	Short: "Generate CSS custom properties from a token config",
	Long: `Generate a CSS file from a design-token config (YAML or JSON).

The output is written to <out-dir>/<name>.css, where name comes from the
config's "name" field.

Examples:
  # Generate Outputs/casino.css
  tokentheme generate tokens/casino.yaml

  # Emit line heights as unitless ratios
  tokentheme generate tokens/casino.yaml --strict

  # Print instead of writing
  tokentheme generate tokens/casino.json --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateOpts.outDir, "out-dir", "o", "",
		"Output directory (default from config: Outputs)")
	generateCmd.Flags().BoolVar(&generateOpts.strict, "strict", false,
		"Emit font-size line heights as line-height/size ratios")
	generateCmd.Flags().BoolVar(&generateOpts.stdout, "stdout", false,
		"Write the CSS to stdout instead of a file")
	generateCmd.Flags().BoolVarP(&generateOpts.watch, "watch", "w", false,
		"Regenerate whenever the config file changes")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	configPath := args[0]

	outDir := cfg.Generate.OutputDir
	if generateOpts.outDir != "" {
		outDir = generateOpts.outDir
	}

	opts := generate.Options{StrictLineHeight: cfg.Generate.StrictLineHeight}
	if cmd.Flags().Changed("strict") {
		opts.StrictLineHeight = generateOpts.strict
	}

	gen := generate.New(mapping.Default().With(cfg.Generate.Mapping), opts, logger)

	run := func() error {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("unable to load the config file at %q: %w", configPath, err)
		}

		tokenCfg, err := tokens.Decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", configPath, err)
		}

		result := gen.Generate(tokenCfg)

		if generateOpts.stdout {
			_, err := fmt.Fprint(cmd.OutOrStdout(), result.CSS)
			return err
		}

		outPath := filepath.Join(outDir, result.FileName)
		if err := output.WriteFile(outPath, []byte(result.CSS)); err != nil {
			return err
		}

		printSummary(cmd.OutOrStdout(), "Generated", outPath, len(result.CSS),
			fmt.Sprintf("%d properties, %d keyframes, %d variants",
				len(result.Declarations), len(result.Keyframes), len(result.Variants)))
		return nil
	}

	if err := run(); err != nil {
		return err
	}

	if generateOpts.watch {
		return watchAndRun(cmd.Context(), func() []string { return []string{configPath} }, run)
	}
	return nil
}
