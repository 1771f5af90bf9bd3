package ref

import (
	"strconv"
	"strings"
)

// Format controls MakeReferenceString.
type Format struct {
	// ChapterVerseSep separates chapter and verse, e.g. ":".
	ChapterVerseSep string

	// Bridge joins the two ends of a range, e.g. "-".
	Bridge string

	// TitleLiteral replaces the chapter number of a title reference (0:0).
	// Nil prints the chapter number; an empty string omits it.
	TitleLiteral *string

	// IntroLiteral replaces the chapter number of an intro reference (1:0).
	// Nil prints the chapter number; an empty string omits it.
	IntroLiteral *string
}

// DefaultFormat uses ":" and "-" and prints raw chapter numbers.
var DefaultFormat = Format{ChapterVerseSep: ":", Bridge: "-"}

// Literal returns a pointer to s for use in Format.
func Literal(s string) *string {
	return &s
}

// stripBidi reduces a 3-character separator to its middle character; such
// separators are a character wrapped in directional marks.
func stripBidi(s string) string {
	runes := []rune(s)
	if len(runes) == 3 {
		return string(runes[1])
	}
	return s
}

// MakeReferenceString formats start..end for display, e.g. "Genesis 1:1-5",
// "Genesis 1:5-2:3" or "Genesis 3".
func MakeReferenceString(bookName string, start, end Ref, f Format) string {
	sep := stripBidi(f.ChapterVerseSep)
	bridge := stripBidi(f.Bridge)

	var sb strings.Builder
	sb.WriteString(bookName)

	if start.Chapter != end.Chapter {
		withVerses := start.Verse > 0 || end.Verse > 0
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(start.Chapter))
		if withVerses {
			sb.WriteString(sep)
			sb.WriteString(strconv.Itoa(start.Verse))
		}
		sb.WriteString(bridge)
		sb.WriteString(strconv.Itoa(end.Chapter))
		if withVerses {
			sb.WriteString(sep)
			sb.WriteString(strconv.Itoa(end.Verse))
		}
		return sb.String()
	}

	if start.Verse != end.Verse {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(start.Chapter))
		sb.WriteString(sep)
		sb.WriteString(strconv.Itoa(start.Verse))
		sb.WriteString(bridge)
		sb.WriteString(strconv.Itoa(end.Verse))
		return sb.String()
	}

	if start.Verse > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(start.Chapter))
		sb.WriteString(sep)
		sb.WriteString(strconv.Itoa(start.Verse))
		return sb.String()
	}

	var literal *string
	switch start.Chapter {
	case 0:
		literal = f.TitleLiteral
	case 1:
		literal = f.IntroLiteral
	}
	switch {
	case literal == nil:
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(start.Chapter))
	case *literal != "":
		sb.WriteString(" ")
		sb.WriteString(*literal)
	}
	return sb.String()
}
