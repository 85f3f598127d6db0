package main

import (
	"fmt"
	"os"

	"github.com/martinemde/parsekit/dotlex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a DOT-subset file",
	Long:  "Read a file, tokenize it with the combinator-based lexer, and print one token per line.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().Bool("count", false, "Print only the number of tokens")

	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	verbose := viper.GetBool("verbose")
	countOnly, _ := cmd.Flags().GetBool("count")

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}

	tokens, err := dotlex.Tokenize(src)
	if err != nil {
		return fmt.Errorf("tokenizing: %w", err)
	}

	if countOnly {
		fmt.Println(len(tokens))
		return nil
	}

	for _, tok := range tokens {
		fmt.Printf("%6d  %-14s %q\n", tok.Pos, tok.Kind, tok.Literal)
		if !verbose {
			continue
		}
		// In verbose mode also show the typed value for tokens that can
		// stand in value position.
		if v, err := dotlex.ParseValue(tok); err == nil {
			fmt.Printf("        value: %s\n", formatValue(v))
		}
	}
	return nil
}

func formatValue(v dotlex.Value) string {
	switch v.Kind {
	case dotlex.ValueInt:
		return fmt.Sprintf("int %d", v.Int)
	case dotlex.ValueFloat:
		return fmt.Sprintf("float %g", v.Float)
	case dotlex.ValueBool:
		return fmt.Sprintf("bool %t", v.Bool)
	case dotlex.ValueDuration:
		return fmt.Sprintf("duration %s", v.Duration)
	default:
		return fmt.Sprintf("string %q", v.Str)
	}
}
