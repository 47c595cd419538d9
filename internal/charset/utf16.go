package charset

// DecodeUTF16 converts UTF-16/UCS-2 bytes to UTF-8.
//
// When order is ByteOrderUnspecified a leading byte-order mark selects
// the endianness and is consumed; without one the stream is assumed
// big-endian, which is also the sanest reading of unmarked UCS-2.
//
// Decoding is best-effort: an odd trailing byte is dropped, a lone
// trailing high surrogate ends the stream, and a high surrogate that is
// not followed by a low surrogate is emitted on its own while the
// following unit is re-examined as an ordinary unit. None of these
// conditions is an error.
//
// ok is false only when the input is too short to hold a single 16-bit
// unit; the caller should then keep its original bytes.
func DecodeUTF16(content []byte, order ByteOrder) (text string, ok bool) {
	if len(content) < 2 {
		return "", false
	}

	bigEndian := true
	switch order {
	case ByteOrderLittle:
		bigEndian = false
	case ByteOrderUnspecified:
		if content[0] == 0xFE && content[1] == 0xFF {
			content = content[2:]
		} else if content[0] == 0xFF && content[1] == 0xFE {
			bigEndian = false
			content = content[2:]
		}
	}

	// Drop a trailing half unit now so the loop only sees whole units.
	content = content[:len(content)&^1]

	buf := newOutputBuffer(len(content) / 2)
	for i := 0; i < len(content); i += 2 {
		unit := decodeUnit(content[i], content[i+1], bigEndian)
		if isHighSurrogate(unit) {
			if i+4 > len(content) {
				// Truncated pair at end of data.
				break
			}
			next := decodeUnit(content[i+2], content[i+3], bigEndian)
			if isLowSurrogate(next) {
				i += 2
				buf.appendRune(0x10000 + rune(unit&0x3FF)<<10 + rune(next&0x3FF))
				continue
			}
		}
		buf.appendRune(rune(unit))
	}
	return buf.string(), true
}

func decodeUnit(b0, b1 byte, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

func isHighSurrogate(u uint16) bool { return u >= 0xD800 && u <= 0xDBFF }

func isLowSurrogate(u uint16) bool { return u >= 0xDC00 && u <= 0xDFFF }
