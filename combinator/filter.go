package combinator

// filterParser accepts a wrapped parser's success only if a predicate holds.
type filterParser[T any] struct {
	parser Parser[T]
	pred   func(T) bool
}

// Require wraps p so that a successful parse is kept only when pred accepts
// the value. A rejected value becomes a plain failure; the input consumed by
// p is not reported. pred must be pure: no side effects and no captured
// mutable state, so the filtered parser stays safe to share.
func Require[T any](pred func(T) bool, p Parser[T]) Parser[T] {
	return filterParser[T]{parser: p.Clone(), pred: pred}
}

func (f filterParser[T]) Parse(pos int, src []byte) Result[T] {
	r := f.parser.Parse(pos, src)
	if !r.OK {
		return r
	}
	if f.pred(r.Value) {
		return r
	}
	return Fail[T]()
}

func (f filterParser[T]) Clone() Parser[T] {
	return filterParser[T]{parser: f.parser.Clone(), pred: f.pred}
}
