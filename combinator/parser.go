package combinator

// Parser is the capability interface implemented by every parser and
// combinator. A Parser is immutable once constructed: Parse is a pure
// function of its arguments, so a single Parser may be invoked from multiple
// call sites, including concurrently.
//
// New parser kinds can be added by implementing this interface directly;
// none of the combinators need to know about them.
type Parser[T any] interface {
	// Parse attempts a match at pos within src. pos must be within
	// [0, len(src)]. On success the result's Pos is >= pos; a parser may
	// succeed without consuming input, but the byte primitive always
	// advances by exactly one.
	Parse(pos int, src []byte) Result[T]

	// Clone returns an independent parser with behavior identical to the
	// receiver. Combinators clone their children at construction, so a
	// parent owns its sub-parsers outright and never aliases a parser
	// held elsewhere.
	Clone() Parser[T]
}

// cloneAll clones every parser in the list, preserving order.
func cloneAll[T any](parsers []Parser[T]) []Parser[T] {
	cloned := make([]Parser[T], len(parsers))
	for i, p := range parsers {
		cloned[i] = p.Clone()
	}
	return cloned
}

// charParser is the primitive parser: it consumes exactly one byte.
type charParser struct{}

func (charParser) Parse(pos int, src []byte) Result[byte] {
	if pos < len(src) {
		return Success(pos+1, src[pos])
	}
	return Fail[byte]()
}

func (charParser) Clone() Parser[byte] {
	return charParser{}
}

// ReadChar returns a parser that consumes exactly one byte and succeeds with
// it. It fails only when pos is at or past the end of the source.
func ReadChar() Parser[byte] {
	return charParser{}
}
