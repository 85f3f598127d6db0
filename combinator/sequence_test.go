package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcatCollectsInOrder(t *testing.T) {
	p := Concat(ReadChar(), ReadChar(), ReadChar(), ReadChar())

	r := p.Parse(0, []byte("test"))
	require.True(t, r.OK)
	assert.Equal(t, 4, r.Pos)
	assert.Equal(t, []byte("test"), r.Value)
}

func TestConcatFailureIsTotal(t *testing.T) {
	p := Concat(ReadChar(), ReadChar(), ReadChar(), ReadChar())

	// Three bytes available, four required: the whole sequence fails,
	// not just the last element.
	r := p.Parse(0, []byte("tes"))
	assert.False(t, r.OK)
}

func TestConcatThreadsCursor(t *testing.T) {
	p := Concat(ReadChar(), ReadChar())

	r := p.Parse(1, []byte("test"))
	require.True(t, r.OK)
	assert.Equal(t, 3, r.Pos)
	assert.Equal(t, []byte("es"), r.Value)
}

func TestConcatEmptySucceedsZeroWidth(t *testing.T) {
	p := Concat[byte]()

	r := p.Parse(2, []byte("test"))
	require.True(t, r.OK)
	assert.Equal(t, 2, r.Pos)
	assert.Empty(t, r.Value)
}

func TestConcatShortCircuitsOnFirstFailure(t *testing.T) {
	rejectAll := Require(func(byte) bool { return false }, ReadChar())
	p := Concat(ReadChar(), rejectAll, ReadChar())

	r := p.Parse(0, []byte("test"))
	assert.False(t, r.OK)
}
