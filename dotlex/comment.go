package dotlex

import "github.com/martinemde/parsekit/combinator"

// blockComment matches a /* ... */ comment including its delimiters.
// Recognizing the closing delimiter takes one byte of lookahead, which the
// combinator algebra cannot express, so this implements combinator.Parser
// directly. An unterminated comment fails; Tokenize then reports the
// comment's opening byte as unexpected input.
type blockComment struct{}

func (blockComment) Parse(pos int, src []byte) combinator.Result[[]byte] {
	if pos+1 >= len(src) || src[pos] != '/' || src[pos+1] != '*' {
		return combinator.Fail[[]byte]()
	}
	for i := pos + 2; i+1 < len(src); i++ {
		if src[i] == '*' && src[i+1] == '/' {
			return combinator.Success(i+2, src[pos:i+2])
		}
	}
	return combinator.Fail[[]byte]()
}

func (blockComment) Clone() combinator.Parser[[]byte] {
	return blockComment{}
}
