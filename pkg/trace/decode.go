package trace

import "encoding/binary"

// These helpers are pure: each takes a buffer and an offset and returns
// (value, nextOffset, ok). They never mutate their input and never
// consume a partial field — ok is false, and off is meaningless, whenever
// fewer bytes remain than the field needs. This is what lets the reader
// try a decode speculatively against whatever has arrived so far and
// simply wait for more bytes on ok == false, per §4.3.3 and §9
// ("never parse partial fields").

func readUint64(buf []byte, off int) (uint64, int, bool) {
	if len(buf)-off < 8 {
		return 0, off, false
	}
	return binary.LittleEndian.Uint64(buf[off : off+8]), off + 8, true
}

func readByte(buf []byte, off int) (byte, int, bool) {
	if len(buf)-off < 1 {
		return 0, off, false
	}
	return buf[off], off + 1, true
}

// readCString reads a NUL-terminated UTF-8 string (used by init's version
// field and the histogram event's owner field). It is "not ok" until the
// terminating NUL has actually arrived in the buffer.
func readCString(buf []byte, off int) (string, int, bool) {
	for i := off; i < len(buf); i++ {
		if buf[i] == 0 {
			return string(buf[off:i]), i + 1, true
		}
	}
	return "", off, false
}

// readUTF16Len8 reads an 8-byte little-endian UTF-16 code-unit count N
// followed by 2*N bytes of UTF-16LE text, decoding it to a Go string.
func readUTF16Len8(buf []byte, off int) (string, int, bool) {
	n, next, ok := readUint64(buf, off)
	if !ok {
		return "", off, false
	}
	byteLen := int(n) * 2
	if len(buf)-next < byteLen {
		return "", off, false
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(buf[next+i*2 : next+i*2+2])
	}
	return utf16ToString(units), next + byteLen, true
}

// readUTF8Len8 reads an 8-byte little-endian byte count N followed by N
// bytes of UTF-8 text.
func readUTF8Len8(buf []byte, off int) (string, int, bool) {
	n, next, ok := readUint64(buf, off)
	if !ok {
		return "", off, false
	}
	if len(buf)-next < int(n) {
		return "", off, false
	}
	return string(buf[next : next+int(n)]), next + int(n), true
}

// utf16ToString decodes UTF-16 code units to a Go (UTF-8) string,
// preserving unpaired surrogates as the Unicode replacement character —
// trace payloads come from a text editor's live buffer and are not
// guaranteed to be well-formed at arbitrary byte offsets.
func utf16ToString(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xd800 && u <= 0xdbff && i+1 < len(units) && units[i+1] >= 0xdc00 && units[i+1] <= 0xdfff:
			lo := units[i+1]
			r := (rune(u)-0xd800)<<10 | (rune(lo) - 0xdc00)
			runes = append(runes, r+0x10000)
			i++
		default:
			runes = append(runes, rune(u))
		}
	}
	return string(runes)
}
