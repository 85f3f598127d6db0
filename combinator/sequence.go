package combinator

// sequenceParser runs its sub-parsers in order, threading the cursor.
type sequenceParser[T any] struct {
	parsers []Parser[T]
}

// Concat returns a parser that runs the given parsers in order, feeding each
// one the position the previous one stopped at, and succeeds with the
// collected values only if every parser succeeds. Failure of any sub-parser
// fails the whole sequence; input consumed by earlier sub-parsers is not
// reported. An empty Concat succeeds at the input position with an empty
// slice.
func Concat[T any](parsers ...Parser[T]) Parser[[]T] {
	return sequenceParser[T]{parsers: cloneAll(parsers)}
}

func (s sequenceParser[T]) Parse(pos int, src []byte) Result[[]T] {
	cursor := pos
	parsed := make([]T, 0, len(s.parsers))
	for _, p := range s.parsers {
		r := p.Parse(cursor, src)
		if !r.OK {
			return Fail[[]T]()
		}
		parsed = append(parsed, r.Value)
		cursor = r.Pos
	}
	return Success(cursor, parsed)
}

func (s sequenceParser[T]) Clone() Parser[[]T] {
	return sequenceParser[T]{parsers: cloneAll(s.parsers)}
}
