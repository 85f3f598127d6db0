package combinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCharConsumesOneByte(t *testing.T) {
	src := []byte("test")

	r := ReadChar().Parse(0, src)
	require.True(t, r.OK)
	assert.Equal(t, 1, r.Pos)
	assert.Equal(t, byte('t'), r.Value)
}

func TestReadCharEveryPosition(t *testing.T) {
	src := []byte("test")
	p := ReadChar()

	for pos := 0; pos < len(src); pos++ {
		r := p.Parse(pos, src)
		require.True(t, r.OK, "position %d", pos)
		assert.Equal(t, pos+1, r.Pos, "position %d", pos)
		assert.Equal(t, src[pos], r.Value, "position %d", pos)
	}
}

func TestReadCharFailsAtEnd(t *testing.T) {
	src := []byte("test")

	r := ReadChar().Parse(4, src)
	assert.False(t, r.OK)
}

func TestReadCharFailsOnEmptySource(t *testing.T) {
	r := ReadChar().Parse(0, []byte{})
	assert.False(t, r.OK)
}

func TestCloneBehavesIdentically(t *testing.T) {
	src := []byte("test")
	p := Require(func(c byte) bool { return c == 't' }, ReadChar())
	clone := p.Clone()

	original := p.Parse(0, src)
	cloned := clone.Parse(0, src)
	assert.Equal(t, original, cloned)

	// Both remain usable after the other has run.
	assert.Equal(t, p.Parse(1, src), clone.Parse(1, src))
}
