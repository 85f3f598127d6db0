package main

import (
	"fmt"
	"strings"

	"github.com/martinemde/parsekit/dotlex"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var matchCmd = &cobra.Command{
	Use:   "match <grammar> <input>",
	Short: "Match a named grammar against an input string",
	Long: "Run one of the named token grammars (" + strings.Join(dotlex.GrammarNames(), ", ") +
		") against the input and report where it stopped.",
	Args: cobra.ExactArgs(2),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().Int("position", 0, "Byte position to start matching at")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	name, input := args[0], args[1]
	position, _ := cmd.Flags().GetInt("position")
	verbose := viper.GetBool("verbose")

	grammar := dotlex.Grammar(name)
	if grammar == nil {
		return fmt.Errorf("unknown grammar %q (available: %s)", name, strings.Join(dotlex.GrammarNames(), ", "))
	}
	if position < 0 || position > len(input) {
		return fmt.Errorf("position %d out of range [0, %d]", position, len(input))
	}

	r := grammar.Parse(position, []byte(input))
	if !r.OK {
		return fmt.Errorf("no match for %s at position %d", name, position)
	}

	fmt.Printf("matched %s %q, next position %d\n", r.Value.Kind, r.Value.Literal, r.Pos)
	if verbose {
		if v, err := dotlex.ParseValue(r.Value); err == nil {
			fmt.Printf("value: %s\n", formatValue(v))
		}
		if r.Pos < len(input) {
			fmt.Printf("unconsumed: %q\n", input[r.Pos:])
		}
	}
	return nil
}
