package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/kovidgoyal/colorformats"
	"github.com/kovidgoyal/colorformats/types"
	"github.com/kovidgoyal/go-parallel"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table <color>",
	Short: "Show a color in every format",
	Args:  cobra.ExactArgs(1),
	RunE:  runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

// convertAll converts c to every format, in the order of types.All.
func convertAll(c colorformats.Color, white *colorformats.CieXyz) ([]colorformats.Color, error) {
	ans := make([]colorformats.Color, len(types.All))
	err := parallel.Run_in_parallel_over_range(0, func(start, limit int) {
		for i := start; i < limit; i++ {
			ans[i] = adaptWhite(c.Convert(types.All[i]), white)
		}
	}, 0, len(types.All))
	if err != nil {
		return nil, err
	}
	return ans, nil
}

func runTable(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	white, err := configuredWhite()
	if err != nil {
		return err
	}
	c, err := parseColor(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse color: %w", err)
	}
	rows, err := convertAll(c, white)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for i, f := range types.All {
		marker := ""
		if f == c.Format() {
			marker = "*"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%d\n", f, marker, rows[i], len(colorformats.Path(c.Format(), f))-1)
	}
	return w.Flush()
}
