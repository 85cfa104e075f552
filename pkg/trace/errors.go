package trace

import (
	"fmt"

	"github.com/google/uuid"
)

// InvalidMagicError reports that the stream's first four bytes were not
// the CTF magic sentinel (§4.3.1, §7).
type InvalidMagicError struct {
	Got [4]byte
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("trace: invalid magic bytes % x", e.Got)
}

// InvalidUUIDError reports that the stream's 16-byte metadata field did
// not literal-match the expected quick-lint-js UUID (§4.3.1, §9's open
// question — the field is not a well-formed RFC-4122 UUID, so this is a
// literal byte comparison, not a UUID-validity check).
type InvalidUUIDError struct {
	Got [16]byte
}

func (e *InvalidUUIDError) Error() string {
	return fmt.Sprintf("trace: invalid metadata uuid %s", uuid.UUID(e.Got).String())
}

// UnsupportedCompressionModeError reports a non-zero compression-mode
// byte (§4.3.1).
type UnsupportedCompressionModeError struct {
	Mode byte
}

func (e *UnsupportedCompressionModeError) Error() string {
	return fmt.Sprintf("trace: unsupported compression mode 0x%02x", e.Mode)
}

// UnknownEventIDError reports an event-id byte outside the known 0x01-0x08
// range (§4.3.2, §9's open question — treated as fatal per the spec's own
// recommendation).
type UnknownEventIDError struct {
	ID byte
}

func (e *UnknownEventIDError) Error() string {
	return fmt.Sprintf("trace: unknown event id 0x%02x", e.ID)
}
