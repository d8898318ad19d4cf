// Package main is the jankc command-line entry point: read a jank source
// file, run it through the reader and semantic analyzer, and print the
// resulting expression tree.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "jankc",
	Short: "jankc — jank semantic analyzer CLI",
	Long: `jankc drives the jank semantic analyzer over source files.

Getting started:
  jankc analyze file.jank       Read, parse, and analyze a source file
  jankc analyze -               Analyze source from stdin

This binary implements only the analyzer's external interfaces (reading a
parse stream, producing an expression tree); it does not generate code or
evaluate programs.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jankc.yaml)")
	rootCmd.PersistentFlags().String("namespace", "user", "namespace new forms are analyzed under")
	rootCmd.PersistentFlags().Bool("compiling", true, "run the analyzer in compiling mode")
	viper.BindPFlag("namespace", rootCmd.PersistentFlags().Lookup("namespace"))
	viper.BindPFlag("compiling", rootCmd.PersistentFlags().Lookup("compiling"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".jankc")
	}
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}
