// Package dotlex tokenizes the Attractor DOT-subset lexical language using
// combinator grammars instead of a hand-written scanner.
//
// The token vocabulary covers bare identifiers, keywords, quoted strings with
// escape processing, integers, floats, durations (42s, 250ms, 1d), the edge
// arrow ->, and the punctuation { } [ ] = , ; . Line comments (//) and block
// comments (/* */) are treated as layout and discarded along with whitespace.
//
// Every grammar in this package is assembled from the parsers in
// package combinator; the only exception is the block-comment matcher, which
// needs one byte of lookahead for its closing delimiter and therefore
// implements combinator.Parser directly.
//
// Usage:
//
//	tokens, err := dotlex.Tokenize(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, tok := range tokens {
//	    fmt.Println(tok.Pos, tok.Kind, tok.Literal)
//	}
package dotlex
