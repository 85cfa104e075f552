package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeaderThreadID(t *testing.T) {
	h, err := parseHeader(validHeader(0x1234))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x1234), h.ThreadID)
	assert.Equal(t, metadataUUID[:], h.MetadataUUID[:])
}

func TestParseHeaderRejectsBadMagic(t *testing.T) {
	b := validHeader(1)
	b[1] = 0x00
	_, err := parseHeader(b)
	assert.IsType(t, &InvalidMagicError{}, err)
}

func TestParseHeaderRejectsBadUUID(t *testing.T) {
	b := validHeader(1)
	b[10] ^= 0x01
	_, err := parseHeader(b)
	assert.IsType(t, &InvalidUUIDError{}, err)
}

func TestParseHeaderRejectsNonZeroCompressionMode(t *testing.T) {
	b := validHeader(1)
	b[28] = 0x01
	_, err := parseHeader(b)
	require.IsType(t, &UnsupportedCompressionModeError{}, err)
	assert.Equal(t, byte(0x01), err.(*UnsupportedCompressionModeError).Mode)
}
