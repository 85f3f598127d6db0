package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "parsekit",
	Short: "Combinator-based lexing toolkit",
	Long:  "Parsekit tokenizes DOT-subset sources and matches named combinator grammars against input.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("PARSEKIT")
	viper.AutomaticEnv()
}
