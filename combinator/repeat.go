package combinator

// starParser greedily repeats its wrapped parser.
type starParser[T any] struct {
	parser Parser[T]
}

// Star wraps p into a greedy zero-or-more repetition: p is applied
// repeatedly, the cursor advancing past each success, until the first
// failure, at which point Star succeeds with everything collected so far.
// Star never fails; at end of input it succeeds with no elements.
//
// The wrapped parser must consume input on every success. If p can succeed
// without advancing the cursor, Star does not terminate.
func Star[T any](p Parser[T]) Parser[[]T] {
	return starParser[T]{parser: p.Clone()}
}

func (s starParser[T]) Parse(pos int, src []byte) Result[[]T] {
	cursor := pos
	var results []T
	for {
		r := s.parser.Parse(cursor, src)
		if !r.OK {
			return Success(cursor, results)
		}
		results = append(results, r.Value)
		cursor = r.Pos
	}
}

func (s starParser[T]) Clone() Parser[[]T] {
	return starParser[T]{parser: s.parser.Clone()}
}
