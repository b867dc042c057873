package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/kovidgoyal/colorformats/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Convert a color to another format",
	Long: `Convert a color to the format named by --to. CIE results are adapted to
the reference white given by --white, if any.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("to", "t", "srgb", "Target format")
	convertCmd.Flags().Bool("bytes", false, "Also print the native byte encoding as hex")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.to", "to"},
		{"convert.bytes", "bytes"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	to, err := types.Parse(viper.GetString("convert.to"))
	if err != nil {
		return fmt.Errorf("invalid --to: %w", err)
	}
	white, err := configuredWhite()
	if err != nil {
		return err
	}
	c, err := parseColor(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse color: %w", err)
	}

	logger.Debug("Converting color", "from", c.Format().String(), "to", to.String())
	ans := adaptWhite(c.Convert(to), white)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ans)
	if viper.GetBool("convert.bytes") {
		fmt.Fprintln(out, hex.EncodeToString(ans.Bytes()))
	}
	return nil
}
