package versification

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// vrsLine is one non-comment line of a versification data file:
//
//	GEN 1:31 2:25 3:24          chapter/verse counts
//	GEN 31:55 = GEN 32:1        mapping of one verse
//	GEN 32:1-32 = GEN 32:2      mapping replayed for each verse of a run
//
//nolint:govet // participle grammar tags are not standard struct tags
type vrsLine struct {
	Book   string     `@Book`
	First  *vrsPair   `@@`
	End    *int       `( "-" @Int )?`
	Target *vrsTarget `( "=" @@ )?`
	Rest   []*vrsPair `@@*`
}

//nolint:govet // participle grammar tags are not standard struct tags
type vrsPair struct {
	Chapter int `@Int ":"`
	Verse   int `@Int`
}

//nolint:govet // participle grammar tags are not standard struct tags
type vrsTarget struct {
	Book string   `@Book`
	Pair *vrsPair `@@`
}

func (l *vrsLine) isMapping() bool {
	return l.Target != nil
}

// vrsLexer tokenizes data-file lines. Book codes may start with a digit
// ("1SA") but always contain a letter, which keeps them apart from Int.
var vrsLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `[0-9]?[A-Z][A-Z0-9]{1,2}`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:=\-]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var vrsParser = participle.MustBuild[vrsLine](
	participle.Lexer(vrsLexer),
	participle.Elide("Whitespace"),
)

// stripComment removes a "#" comment and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
