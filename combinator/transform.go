package combinator

// mapParser applies a function to the wrapped parser's value.
type mapParser[T, U any] struct {
	parser Parser[T]
	fn     func(T) U
}

// Process wraps p so that a successful value is replaced by fn(value), at the
// same advanced position. Failure passes through unchanged. fn must be pure
// and total over every value p can produce; there is no error path for fn.
func Process[T, U any](fn func(T) U, p Parser[T]) Parser[U] {
	return mapParser[T, U]{parser: p.Clone(), fn: fn}
}

func (m mapParser[T, U]) Parse(pos int, src []byte) Result[U] {
	r := m.parser.Parse(pos, src)
	if !r.OK {
		return Fail[U]()
	}
	return Success(r.Pos, m.fn(r.Value))
}

func (m mapParser[T, U]) Clone() Parser[U] {
	return mapParser[T, U]{parser: m.parser.Clone(), fn: m.fn}
}
