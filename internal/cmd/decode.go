package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/kovidgoyal/colorformats"
	"github.com/kovidgoyal/colorformats/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <format> <hex-bytes>",
	Short: "Decode a color from its native byte encoding",
	Args:  cobra.ExactArgs(2),
	RunE:  runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringP("to", "t", "", "Convert the decoded color to this format")
	if err := viper.BindPFlag("decode.to", decodeCmd.Flags().Lookup("to")); err != nil {
		panic(fmt.Sprintf("failed to bind flag to: %v", err))
	}
}

func decodeHex(f types.Format, s string) (colorformats.Color, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(s, " ", ""), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return colorformats.Color{}, fmt.Errorf("invalid hex bytes: %w", err)
	}
	return colorformats.FromRawParts(f, b)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	f, err := types.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	c, err := decodeHex(f, args[1])
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", f, err)
	}
	if name := viper.GetString("decode.to"); name != "" {
		to, err := types.Parse(name)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		white, err := configuredWhite()
		if err != nil {
			return err
		}
		c = adaptWhite(c.Convert(to), white)
	}
	fmt.Fprintln(cmd.OutOrStdout(), c)
	return nil
}
