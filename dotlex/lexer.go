package dotlex

import (
	"fmt"

	"github.com/martinemde/parsekit/combinator"
)

// Tokenize scans src into its full token stream. Layout (whitespace and
// comments) between tokens is discarded. Returns a *LexError pointing at the
// first byte that cannot start a token.
func Tokenize(src []byte) ([]Token, error) {
	var tokens []Token
	cursor := 0
	for {
		// layout is a Star grammar and never fails.
		cursor = layout.Parse(cursor, src).Pos
		if cursor >= len(src) {
			return tokens, nil
		}
		r := token.Parse(cursor, src)
		if !r.OK {
			return nil, &LexError{
				Message: fmt.Sprintf("unexpected character %q", src[cursor]),
				Offset:  cursor,
			}
		}
		tok := r.Value
		tok.Pos = cursor
		tokens = append(tokens, tok)
		cursor = r.Pos
	}
}

// Grammar returns a named token grammar, or nil if the name is unknown.
// Grammars are handed out as clones, so the caller owns the returned parser
// outright.
func Grammar(name string) combinator.Parser[Token] {
	switch name {
	case "identifier":
		return identToken.Clone()
	case "string":
		return stringToken.Clone()
	case "integer":
		return integerToken.Clone()
	case "float":
		return floatToken.Clone()
	case "duration":
		return durationToken.Clone()
	case "token":
		return token.Clone()
	}
	return nil
}

// GrammarNames lists the names accepted by Grammar.
func GrammarNames() []string {
	return []string{"duration", "float", "identifier", "integer", "string", "token"}
}
