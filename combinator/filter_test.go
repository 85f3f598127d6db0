package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAcceptsMatchingValue(t *testing.T) {
	p := Require(func(c byte) bool { return c == 't' }, ReadChar())

	r := p.Parse(0, []byte("test"))
	require.True(t, r.OK)
	assert.Equal(t, 1, r.Pos)
	assert.Equal(t, byte('t'), r.Value)
}

func TestRequireRejectsNonMatchingValue(t *testing.T) {
	p := Require(func(c byte) bool { return c == 'x' }, ReadChar())

	r := p.Parse(0, []byte("test"))
	assert.False(t, r.OK)
}

func TestRequirePropagatesFailure(t *testing.T) {
	p := Require(func(byte) bool { return true }, ReadChar())

	r := p.Parse(4, []byte("test"))
	assert.False(t, r.OK)
}

func TestRequireRejectionIsAllOrNothing(t *testing.T) {
	// The wrapped sequence consumes two bytes before the predicate
	// rejects; none of that progress is reported.
	p := Require(func(bs []byte) bool { return string(bs) == "xx" },
		Concat(ReadChar(), ReadChar()))

	r := p.Parse(0, []byte("test"))
	assert.False(t, r.OK)
	assert.Zero(t, r.Pos)
}
