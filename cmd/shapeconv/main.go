// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the shapeconv CLI, which converts
// vector path markup (.xaml documents carrying a single Path element) into
// custom shape definition files for the target drawing application.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the shapeconv CLI.
var rootCmd = &cobra.Command{
	Use:   "shapeconv",
	Short: "Convert vector path markup into custom shape definitions",
	Long: `shapeconv reads vector-markup XML documents that describe a single path
and produces shape definition files the target application can load. Each
input file yields one output file; the geometry keeps the encoding the
source used (Data attribute or nested Path.Data markup).

Point it at a single file or at a directory of .xaml files.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./shapeconv.yaml or ~/.config/shapeconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shapeconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "shapeconv"))
		}
	}

	viper.SetEnvPrefix("SHAPECONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
