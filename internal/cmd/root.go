package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kovidgoyal/colorformats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "colorconv",
	Short: "Convert single colors between pixel formats",
	Long: `colorconv converts a single color between the fifteen supported formats:
integer and float grayscale, linear and gamma encoded RGB, RGBA, HSV, HSL,
CIE XYZ and CIE L*a*b*.

Colors are given as #rgb or #rrggbb hex, CSS color names or format literals
such as "lab:50,20,-30" or "rgba64:65535,0,0,32768".`,
	Version:      colorformats.Version,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("white", "", "Reference white for CIE output: d65, d50 or x,y,z")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose logging of conversion hops")

	if err := viper.BindPFlag("white", rootCmd.PersistentFlags().Lookup("white")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
	if err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose")); err != nil {
		panic(fmt.Sprintf("failed to bind flag: %v", err))
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("COLORCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func initLogging() {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	colorformats.SetLogger(logger)
}

// configuredWhite returns nil when no reference white was requested.
func configuredWhite() (*colorformats.CieXyz, error) {
	s := viper.GetString("white")
	if s == "" {
		return nil, nil
	}
	w, err := parseWhite(s)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
