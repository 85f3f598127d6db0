package dotlex

import (
	"github.com/martinemde/parsekit/combinator"
)

// Byte-level building blocks.
var (
	digit      = combinator.Range('0', '9')
	identStart = combinator.OneOf(combinator.Range('a', 'z'), combinator.Range('A', 'Z'), combinator.Byte('_'))
	identPart  = combinator.OneOf(identStart, digit)
)

// one lifts a single-byte parser into a byte-slice parser.
func one(p combinator.Parser[byte]) combinator.Parser[[]byte] {
	return combinator.Process(func(b byte) []byte { return []byte{b} }, p)
}

// cat matches byte-slice parsers in sequence and joins their output.
func cat(parts ...combinator.Parser[[]byte]) combinator.Parser[[]byte] {
	return combinator.Process(flatten, combinator.Concat(parts...))
}

func flatten(chunks [][]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

// Token spellings.
var (
	sign   = combinator.Opt(combinator.Byte('-'))
	digits = combinator.Plus(digit)

	identText   = cat(one(identStart), combinator.Star(identPart))
	integerText = cat(sign, digits)
	floatText   = cat(sign, combinator.Star(digit), combinator.Tag("."), digits)

	// "ms" before "m": ordered choice would otherwise stop at the 'm'.
	durationSuffix = combinator.OneOf(
		combinator.Tag("ms"),
		combinator.Tag("s"),
		combinator.Tag("m"),
		combinator.Tag("h"),
		combinator.Tag("d"),
	)
	durationText = cat(sign, digits, durationSuffix)
)

// escapeSeq matches a backslash escape and decodes \" \\ \n \t.
// Unknown escapes are preserved as-is.
var escapeSeq = combinator.Process(decodeEscape, combinator.Concat(combinator.Byte('\\'), combinator.ReadChar()))

func decodeEscape(pair []byte) []byte {
	switch pair[1] {
	case '"':
		return []byte{'"'}
	case '\\':
		return []byte{'\\'}
	case 'n':
		return []byte{'\n'}
	case 't':
		return []byte{'\t'}
	default:
		return []byte{'\\', pair[1]}
	}
}

// stringChunk is one logical character of a quoted string: an escape
// sequence, or any plain byte other than '"' and '\'.
var stringChunk = combinator.OneOf(
	escapeSeq,
	one(combinator.Require(isPlainStringByte, combinator.ReadChar())),
)

func isPlainStringByte(c byte) bool { return c != '"' && c != '\\' }

// stringText matches a quoted string and yields its decoded content
// without the surrounding quotes. An unterminated string simply fails.
var stringText = combinator.Process(func(parts [][]byte) []byte {
	return parts[1]
}, combinator.Concat(
	combinator.Tag(`"`),
	combinator.Process(flatten, combinator.Star(stringChunk)),
	combinator.Tag(`"`),
))

// textToken wraps a spelling into a Token of the given kind. The token's
// Pos is stamped later by Tokenize, which knows the cursor.
func textToken(kind TokenKind, text combinator.Parser[[]byte]) combinator.Parser[Token] {
	return combinator.Process(func(bs []byte) Token {
		return Token{Kind: kind, Literal: string(bs)}
	}, text)
}

func punct(kind TokenKind, ch byte) combinator.Parser[Token] {
	return textToken(kind, one(combinator.Byte(ch)))
}

// identToken classifies identifier spellings against the keyword table.
var identToken = combinator.Process(func(bs []byte) Token {
	literal := string(bs)
	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal}
	}
	return Token{Kind: TokenIdentifier, Literal: literal}
}, identText)

var (
	stringToken   = textToken(TokenString, stringText)
	arrowToken    = textToken(TokenArrow, combinator.Tag("->"))
	floatToken    = textToken(TokenFloat, floatText)
	durationToken = textToken(TokenDuration, durationText)
	integerToken  = textToken(TokenInteger, integerText)
)

// token is the full token grammar. Ordering is load-bearing under ordered
// choice: float before duration and integer (it requires the dot), duration
// before integer (it requires its suffix), identifiers before punctuation so
// '.' inside a spelling never splits a number.
var token = combinator.OneOf(
	stringToken,
	arrowToken,
	floatToken,
	durationToken,
	integerToken,
	identToken,
	punct(TokenLBrace, '{'),
	punct(TokenRBrace, '}'),
	punct(TokenLBracket, '['),
	punct(TokenRBracket, ']'),
	punct(TokenEquals, '='),
	punct(TokenComma, ','),
	punct(TokenSemicolon, ';'),
	punct(TokenDot, '.'),
)

// Layout: whitespace and comments between tokens. Every alternative consumes
// at least one byte, so the repetition terminates.
var (
	whitespace  = combinator.Plus(combinator.Require(isSpace, combinator.ReadChar()))
	lineComment = cat(combinator.Tag("//"), combinator.Star(combinator.Require(notNewline, combinator.ReadChar())))
	layout      = combinator.Star(combinator.OneOf(whitespace, lineComment, blockComment{}))
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func notNewline(c byte) bool { return c != '\n' }
