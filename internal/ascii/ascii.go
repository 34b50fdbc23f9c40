// Package ascii provides single-byte classification predicates used by the
// header value tokenizer and the parameter validators. The Content-disposition
// grammar is ASCII-only, so these operate on bytes rather than runes.
package ascii

// IsControl returns true if the byte is an ASCII control character, which
// includes 0x00 through 0x1F as well as DEL (0x7F).
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// IsVisible returns true if the byte is a visible (printing) ASCII character,
// i.e., anything from '!' through '~'.
func IsVisible(b byte) bool {
	return b >= '!' && b <= '~'
}

// IsVisibleOrSpace returns true if the byte is a visible ASCII character or
// the space character.
func IsVisibleOrSpace(b byte) bool {
	return b == ' ' || IsVisible(b)
}

// IsDigit returns true if the byte is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Lower returns the lowercase form of an ASCII uppercase letter. All other
// bytes are returned unchanged.
func Lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// LowerString returns the given string with every ASCII uppercase letter
// replaced by its lowercase form. Bytes outside the ASCII uppercase range are
// left alone, so this is safe to apply to strings that might contain UTF-8.
func LowerString(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}

	if !hasUpper {
		return s
	}

	bs := []byte(s)
	for i, b := range bs {
		bs[i] = Lower(b)
	}
	return string(bs)
}
