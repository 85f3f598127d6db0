package combinator

// Derived combinators. Everything here is a composition of the primitive and
// the five core combinators; no new parser kinds are introduced. All closures
// capture only immutable configuration, keeping the parsers referentially
// transparent.

// Byte returns a parser that matches exactly the byte b.
func Byte(b byte) Parser[byte] {
	return Require(func(c byte) bool { return c == b }, ReadChar())
}

// Range returns a parser that matches any byte in the inclusive range
// [lo, hi].
func Range(lo, hi byte) Parser[byte] {
	return Require(func(c byte) bool { return c >= lo && c <= hi }, ReadChar())
}

// Tag returns a parser that matches the literal bytes of s in order and
// succeeds with them. Tag("") succeeds at the input position without
// consuming anything.
func Tag(s string) Parser[[]byte] {
	parsers := make([]Parser[byte], len(s))
	for i := 0; i < len(s); i++ {
		parsers[i] = Byte(s[i])
	}
	return Concat(parsers...)
}

// Plus returns a one-or-more repetition of p: Star constrained to have
// matched at least once.
func Plus[T any](p Parser[T]) Parser[[]T] {
	return Require(func(vs []T) bool { return len(vs) > 0 }, Star(p))
}

// Opt returns a zero-or-one repetition of p: a one-element slice when p
// matches, otherwise a zero-width success with an empty slice.
func Opt[T any](p Parser[T]) Parser[[]T] {
	return OneOf(
		Process(func(v T) []T { return []T{v} }, p),
		Concat[T](),
	)
}

// Text converts a byte-slice parser into a string parser.
func Text(p Parser[[]byte]) Parser[string] {
	return Process(func(bs []byte) string { return string(bs) }, p)
}
