package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/tokentheme/internal/mapping"
)

var mappingCmd = &cobra.Command{
	Use:   "mapping",
	Short: "Print the token-category to CSS prefix table",
	Long: `Print the effective name table used by generate: the built-in
entries overlaid with [generate.mapping] from the config file.`,
	Args: cobra.NoArgs,
	RunE: runMapping,
}

func init() {
	rootCmd.AddCommand(mappingCmd)
}

func runMapping(cmd *cobra.Command, args []string) error {
	table := mapping.Default().With(cfg.Generate.Mapping)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, key := range table.Keys() {
		fmt.Fprintf(w, "%s\t%s\n", key, table.MapName(key))
	}
	return w.Flush()
}
