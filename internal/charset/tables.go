package charset

// cp1252ToUnicode remaps bytes 128-159, where windows-1252 assigns
// printable characters to what iso-8859-1 leaves as control codes.
// Unassigned bytes (0x81, 0x8D, 0x8F, 0x90, 0x9D) pass through as the
// matching control codepoints.
var cp1252ToUnicode = [32]rune{
	0x20AC, 0x0081, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008D, 0x017D, 0x008F,
	0x0090, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x009D, 0x017E, 0x0178,
}

// iso8859_15ToUnicode remaps bytes 164-190, the only range where
// iso-8859-15 differs from iso-8859-1.
var iso8859_15ToUnicode = [27]rune{
	0x20AC, 0x00A5, 0x0160, 0x00A7, 0x0161, 0x00A9, 0x00AA, 0x00AB,
	0x00AC, 0x00AD, 0x00AE, 0x00AF, 0x00B0, 0x00B1, 0x00B2, 0x00B3,
	0x017D, 0x00B5, 0x00B6, 0x00B7, 0x017E, 0x00B9, 0x00BA, 0x00BB,
	0x0152, 0x0153, 0x0178,
}

// DecodeWindows1252 converts windows-1252 (or mislabelled iso-8859-1)
// bytes to UTF-8.
func DecodeWindows1252(content []byte) string {
	return decodeSingleByte(content, cp1252ToUnicode[:], 128)
}

// DecodeISO8859_15 converts iso-8859-15 bytes to UTF-8.
func DecodeISO8859_15(content []byte) string {
	return decodeSingleByte(content, iso8859_15ToUnicode[:], 164)
}

// decodeSingleByte decodes an encoding that is an identity mapping
// everywhere except the exceptional range covered by table, which
// starts at byte value base.
func decodeSingleByte(content []byte, table []rune, base int) string {
	buf := newOutputBuffer(len(content))
	for _, ch := range content {
		cp := rune(ch)
		if i := int(ch) - base; i >= 0 && i < len(table) {
			cp = table[i]
		}
		buf.appendRune(cp)
	}
	return buf.string()
}
