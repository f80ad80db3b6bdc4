// Command enumgen generates Go enumerations from declaration documents.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "enumgen",
	Short: "Generate Go enumerations with typed per-variant properties",
	Long: "enumgen compiles YAML declaration documents into Go source: one\n" +
		"interface per property contract and one concrete enumeration per\n" +
		"implementing enum, with every property resolved per variant.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .enumgen.yaml)")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".enumgen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("ENUMGEN")
	viper.AutomaticEnv()

	// No config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
