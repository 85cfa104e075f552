package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadUint64ShortBufferNotOk(t *testing.T) {
	_, _, ok := readUint64([]byte{1, 2, 3}, 0)
	assert.False(t, ok)
}

func TestReadCStringWaitsForTerminator(t *testing.T) {
	_, _, ok := readCString([]byte("no terminator"), 0)
	assert.False(t, ok)

	s, next, ok := readCString([]byte("hi\x00trailing"), 0)
	assert.True(t, ok)
	assert.Equal(t, "hi", s)
	assert.Equal(t, 3, next)
}

func TestReadUTF16Len8RoundTrips(t *testing.T) {
	field := utf16Len8Field("hi")
	s, next, ok := readUTF16Len8(field, 0)
	assert.True(t, ok)
	assert.Equal(t, "hi", s)
	assert.Equal(t, len(field), next)
}

func TestReadUTF16Len8ShortOnPartialText(t *testing.T) {
	field := utf16Len8Field("hi")
	_, _, ok := readUTF16Len8(field[:len(field)-1], 0)
	assert.False(t, ok)
}

func TestReadUTF8Len8RoundTrips(t *testing.T) {
	field := utf8Len8Field("hello")
	s, next, ok := readUTF8Len8(field, 0)
	assert.True(t, ok)
	assert.Equal(t, "hello", s)
	assert.Equal(t, len(field), next)
}

func TestUTF16ToStringHandlesSurrogatePairs(t *testing.T) {
	// U+1F600 GRINNING FACE, encoded as the surrogate pair 0xd83d 0xde00.
	got := utf16ToString([]uint16{0xd83d, 0xde00})
	assert.Equal(t, "😀", got)
}
