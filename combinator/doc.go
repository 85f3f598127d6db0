// Package combinator implements a parser-combinator engine: small composable
// parsing primitives that build recursive-descent parsers over a byte slice
// without hand-written state machines.
//
// Every parser implements the Parser[T] capability interface: attempt a match
// at a position within a source, producing a Result[T] that is either a
// failure or a success carrying the next cursor position and a typed value.
// Failure is a single uninformative signal; it carries no position and no
// cause. Combinators treat child failure as ordinary control flow.
//
// The engine provides one primitive and five combinators:
//
//   - ReadChar: consume exactly one byte.
//   - Concat: run parsers in order, collecting their values.
//   - OneOf: ordered choice, first success wins.
//   - Require: keep a success only if a predicate accepts the value.
//   - Process: map a success value to a new value or type.
//   - Star: greedy zero-or-more repetition, never fails.
//
// Parsers are immutable once constructed and safe for concurrent use.
// Combinators own independent clones of their children, so no two parser
// trees share state.
//
// Usage:
//
//	word := combinator.Text(combinator.Star(combinator.ReadChar()))
//	r := word.Parse(0, []byte("test"))
//	if r.OK {
//	    fmt.Println(r.Pos, r.Value) // 4 test
//	}
package combinator
