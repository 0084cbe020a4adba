package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/shapeconv/internal/convert"
	"github.com/pdiddy/shapeconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert path markup files into shape definitions",
	Long: `Convert reads one .xaml file, or every .xaml file in a directory, extracts
the path geometry, and writes a shape definition per input into the output
directory. Geometry given as a Data attribute stays an attribute; geometry
given as nested Path.Data markup stays nested markup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		if _, err := os.Stat(in); err != nil {
			return fmt.Errorf("input path %s does not exist: %w", in, err)
		}

		cfg, err := convertConfig(cmd)
		if err != nil {
			return err
		}

		result, err := convert.Run(cfg, in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if result.HasFailures() {
			return fmt.Errorf("%d file(s) failed to convert", result.Failed)
		}
		return nil
	},
}

// convertConfig builds the run configuration: defaults, then config-file
// values, then any flag set on the command line. Nothing downstream reads
// viper or flags directly.
func convertConfig(cmd *cobra.Command) (types.ConvertConfig, error) {
	cfg := types.DefaultConvertConfig()

	if viper.IsSet("out") {
		cfg.OutputDir = viper.GetString("out")
	}
	if viper.IsSet("pretty") {
		cfg.Pretty = viper.GetBool("pretty")
	}
	if viper.IsSet("attr_layout") {
		cfg.AttrLayout = types.AttrLayout(viper.GetString("attr_layout"))
	}
	if viper.IsSet("on_error") {
		cfg.OnError = types.ErrorPolicy(viper.GetString("on_error"))
	}
	if viper.IsSet("manifest") {
		cfg.ManifestPath = viper.GetString("manifest")
	}

	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutputDir, _ = flags.GetString("out")
	}
	if flags.Changed("pretty") {
		cfg.Pretty, _ = flags.GetBool("pretty")
	}
	if flags.Changed("attr-layout") {
		v, _ := flags.GetString("attr-layout")
		cfg.AttrLayout = types.AttrLayout(v)
	}
	if flags.Changed("on-error") {
		v, _ := flags.GetString("on-error")
		cfg.OnError = types.ErrorPolicy(v)
	}
	if flags.Changed("manifest") {
		cfg.ManifestPath, _ = flags.GetString("manifest")
	}

	if !cfg.AttrLayout.Valid() {
		return cfg, fmt.Errorf("invalid attr-layout %q: must be auto, on, or off", cfg.AttrLayout)
	}
	if !cfg.OnError.Valid() {
		return cfg, fmt.Errorf("invalid on-error policy %q: must be abort or skip", cfg.OnError)
	}
	return cfg, nil
}

func init() {
	convertCmd.Flags().StringP("in", "i", "", "input .xaml file or directory (required)")
	convertCmd.Flags().StringP("out", "o", "output", "output directory, created if missing")
	convertCmd.Flags().BoolP("pretty", "p", false, "indented, human-readable output")
	convertCmd.Flags().String("attr-layout", "auto", "attribute layout when pretty-printing: auto, on, or off")
	convertCmd.Flags().String("on-error", "abort", "batch failure policy: abort or skip")
	convertCmd.Flags().String("manifest", "", "write a YAML manifest of the run to this path")
	_ = convertCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(convertCmd)
}
