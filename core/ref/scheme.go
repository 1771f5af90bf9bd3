package ref

import (
	"strings"

	"github.com/FocuswithJustin/scrref/core/errors"
)

// Scheme identifies a versification scheme.
type Scheme int

// Known versification schemes. The numeric values are stable and are
// stored in exported databases.
const (
	SchemeUnknown Scheme = iota
	SchemeOriginal
	SchemeSeptuagint
	SchemeVulgate
	SchemeEnglish
	SchemeRussianProtestant
	SchemeRussianOrthodox
)

// SchemeStandard is the scheme that versification mappings point at.
const SchemeStandard = SchemeOriginal

var schemeNames = map[Scheme]string{
	SchemeUnknown:           "Unknown",
	SchemeOriginal:          "Original",
	SchemeSeptuagint:        "Septuagint",
	SchemeVulgate:           "Vulgate",
	SchemeEnglish:           "English",
	SchemeRussianProtestant: "RussianProtestant",
	SchemeRussianOrthodox:   "RussianOrthodox",
}

// Schemes returns every known scheme except SchemeUnknown.
func Schemes() []Scheme {
	return []Scheme{
		SchemeOriginal,
		SchemeSeptuagint,
		SchemeVulgate,
		SchemeEnglish,
		SchemeRussianProtestant,
		SchemeRussianOrthodox,
	}
}

func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "Unknown"
}

// IsValid reports whether s is a known scheme other than SchemeUnknown.
func (s Scheme) IsValid() bool {
	return s > SchemeUnknown && s <= SchemeRussianOrthodox
}

// ParseScheme resolves a scheme by its name (case-insensitive).
func ParseScheme(name string) (Scheme, error) {
	name = strings.TrimSpace(name)
	for s, n := range schemeNames {
		if s != SchemeUnknown && strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return SchemeUnknown, errors.NewNotFound("versification scheme", name)
}
