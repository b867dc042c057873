package cmd

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/colorformats"
	"github.com/kovidgoyal/colorformats/types"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <from> <to>",
	Short: "Show the route a conversion takes",
	Long: `Print the sequence of formats visited when converting between two
formats, followed by the formats the source converts to directly.`,
	Args: cobra.ExactArgs(2),
	RunE: runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func joinFormats(fs []types.Format, sep string) string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return strings.Join(names, sep)
}

func runPath(cmd *cobra.Command, args []string) error {
	from, err := types.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid source format: %w", err)
	}
	to, err := types.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid target format: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, joinFormats(colorformats.Path(from, to), " -> "))
	fmt.Fprintf(out, "direct: %s\n", joinFormats(colorformats.DirectTargets(from), ", "))
	return nil
}
