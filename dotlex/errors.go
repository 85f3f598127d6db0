package dotlex

import "fmt"

// LexError reports input that cannot be tokenized.
type LexError struct {
	Message string
	Offset  int // byte offset into the source
}

func (e *LexError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

// ValueError reports a token that cannot be converted to a typed value.
type ValueError struct {
	Message string
	Offset  int
	Cause   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Message)
}

func (e *ValueError) Unwrap() error { return e.Cause }
