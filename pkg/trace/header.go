package trace

import "github.com/google/uuid"

// headerSize is the fixed byte length of a stream's packet header
// (§4.3.1): 4-byte magic, 16-byte metadata UUID, 8-byte thread ID,
// 1-byte compression mode.
const headerSize = 29

// ctfMagic is the four-byte Common Trace Format sentinel (GLOSSARY
// "CTF magic").
var ctfMagic = [4]byte{0xc1, 0x1f, 0xfc, 0xc1}

// metadataUUID is the quick-lint-js trace format's fixed metadata field.
// It is not a well-formed RFC-4122 UUID (§9's open question) — the reader
// checks it as a literal 16-byte sequence, never as a parsed/validated
// UUID, and only renders it through uuid.UUID for readable error and log
// output.
var metadataUUID = [16]byte{
	0x71, 0x75, 0x69, 0x63, 0x6b, 0x2d, 0x5f, 0x49,
	0x3e, 0xb9, 0x6c, 0x69, 0x6e, 0x74, 0x6a, 0x73,
}

// PacketHeader is the one-per-stream preamble (§4.3.1), delivered to the
// visitor as the stream's first callback.
type PacketHeader struct {
	ThreadID     uint64
	MetadataUUID uuid.UUID
}

// parseHeader parses a complete, exactly headerSize-byte header. The
// caller is responsible for buffering until headerSize bytes have
// arrived; parseHeader itself never handles a short buffer.
func parseHeader(buf []byte) (PacketHeader, error) {
	var magic [4]byte
	copy(magic[:], buf[0:4])
	if magic != ctfMagic {
		return PacketHeader{}, &InvalidMagicError{Got: magic}
	}

	var gotUUID [16]byte
	copy(gotUUID[:], buf[4:20])
	if gotUUID != metadataUUID {
		return PacketHeader{}, &InvalidUUIDError{Got: gotUUID}
	}

	threadID, _, _ := readUint64(buf, 20)

	mode := buf[28]
	if mode != 0x00 {
		return PacketHeader{}, &UnsupportedCompressionModeError{Mode: mode}
	}

	parsedUUID, _ := uuid.FromBytes(gotUUID[:])
	return PacketHeader{ThreadID: threadID, MetadataUUID: parsedUUID}, nil
}
