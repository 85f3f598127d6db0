package combinator

// choiceParser tries its alternatives in order at the same position.
type choiceParser[T any] struct {
	parsers []Parser[T]
}

// OneOf returns a parser that tries each alternative in order, all at the
// original input position, and returns the first success. This is ordered
// choice: the first listed match wins even if a later alternative would also
// match, or would match more input. An empty OneOf always fails.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	return choiceParser[T]{parsers: cloneAll(parsers)}
}

func (c choiceParser[T]) Parse(pos int, src []byte) Result[T] {
	for _, p := range c.parsers {
		if r := p.Parse(pos, src); r.OK {
			return r
		}
	}
	return Fail[T]()
}

func (c choiceParser[T]) Clone() Parser[T] {
	return choiceParser[T]{parsers: cloneAll(c.parsers)}
}
