package combinator

// Result is the outcome of a single parse attempt: either a failure, or a
// success carrying the cursor position immediately after the consumed input
// and the parsed value. Results are plain values produced fresh per call.
type Result[T any] struct {
	OK    bool
	Pos   int // next cursor position; meaningless unless OK
	Value T   // parsed value; zero unless OK
}

// Success returns a successful Result at pos carrying value. pos is the
// position of the first unconsumed byte and must be at least the position
// the parse was attempted at.
func Success[T any](pos int, value T) Result[T] {
	return Result[T]{OK: true, Pos: pos, Value: value}
}

// Fail returns a failed Result. Failure carries no position, no cause, and
// no partial progress; it means only "no match here".
func Fail[T any]() Result[T] {
	return Result[T]{}
}
