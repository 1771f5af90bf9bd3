package multiling

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold returns the comparison key of a book name: NFC-normalized and
// case-folded, so "GÉNESIS" and "génesis" (composed or not) compare equal.
// A Caser carries state, so each call gets its own.
func fold(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return norm.NFC.String(cases.Fold().String(norm.NFC.String(s)))
}
