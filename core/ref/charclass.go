package ref

import "unicode"

// Character classes used by the reference scanners. They are fixed here
// rather than taken from the host locale so that parsing gives the same
// result for every target language.
//
//   - digit:      ASCII 0-9 only; other Nd digits are not numerals here
//   - letter:     unicode.IsLetter, i.e. categories L* of UnicodeVersion
//   - dash:       U+002D HYPHEN-MINUS and U+2013 EN DASH
//   - bidi mark:  U+200E LEFT-TO-RIGHT MARK and U+200F RIGHT-TO-LEFT MARK
//   - space:      unicode.IsSpace
//
// Anything else is punctuation and terminates a numeral.

// UnicodeVersion is the Unicode version the letter and space classes follow.
const UnicodeVersion = unicode.Version

const (
	leftToRightMark = '\u200E'
	rightToLeftMark = '\u200F'
	enDash          = '\u2013'
)

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch)
}

func isDash(ch rune) bool {
	return ch == '-' || ch == enDash
}

func isBidiMark(ch rune) bool {
	return ch == leftToRightMark || ch == rightToLeftMark
}

func isSpace(ch rune) bool {
	return unicode.IsSpace(ch)
}
