package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMapsValueKeepsPosition(t *testing.T) {
	p := Process(func(c byte) string { return string(c) }, ReadChar())

	r := p.Parse(0, []byte("test"))
	require.True(t, r.OK)
	assert.Equal(t, 1, r.Pos)
	assert.Equal(t, "t", r.Value)
}

func TestProcessPropagatesFailure(t *testing.T) {
	p := Process(func(c byte) int { return int(c) }, ReadChar())

	r := p.Parse(0, []byte{})
	assert.False(t, r.OK)
}

func TestProcessSamePositionAsUntransformed(t *testing.T) {
	src := []byte("test")
	plain := Star(ReadChar())
	mapped := Process(func(bs []byte) string { return string(bs) }, Star(ReadChar()))

	pr := plain.Parse(0, src)
	mr := mapped.Parse(0, src)
	require.True(t, pr.OK)
	require.True(t, mr.OK)
	assert.Equal(t, pr.Pos, mr.Pos)
	assert.Equal(t, "test", mr.Value)
}

func TestProcessRoundTrip(t *testing.T) {
	// Decoding the bytes collected by Star(ReadChar) reproduces the
	// source text at its full length.
	decode := Process(func(bs []byte) string { return string(bs) }, Star(ReadChar()))

	for _, s := range []string{"", "t", "test", "hello, world"} {
		r := decode.Parse(0, []byte(s))
		require.True(t, r.OK, "input %q", s)
		assert.Equal(t, len(s), r.Pos, "input %q", s)
		assert.Equal(t, s, r.Value, "input %q", s)
	}
}
