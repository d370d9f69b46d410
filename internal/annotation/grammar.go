package annotation

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// line is the participle grammar for the payload of a //dinject:...
// comment, after the prefix has been stripped. Grounded on
// Toyz-axon/internal/annotations/participle_parser.go's ParticipleParser,
// whose lexer this mirrors; unlike the teacher, the built parser is
// actually invoked below instead of left unwired.
type line struct {
	Keyword string  `parser:"@Ident"`
	Value   *value  `parser:"@@?"`
}

type value struct {
	Str *string  `parser:"  @String"`
	Num *float64 `parser:"| @Number"`
}

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var lineParser = participle.MustBuild[line](
	participle.Lexer(lineLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Grammar tokenizes and parses one //dinject:... comment payload.
type Grammar struct{}

// NewGrammar constructs a Grammar. It exists (rather than exposing
// package-level functions only) so future call sites can carry parser
// options without changing the call signature.
func NewGrammar() *Grammar {
	return &Grammar{}
}

// Parse parses the payload following the "dinject:" prefix, e.g. the
// `named "electric"` in `//dinject:named "electric"`.
func (g *Grammar) Parse(payload string) (Parsed, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return Parsed{}, fmt.Errorf("empty annotation")
	}
	parsedLine, err := lineParser.ParseString("", payload)
	if err != nil {
		return Parsed{}, fmt.Errorf("parse annotation %q: %w", payload, err)
	}
	t, err := ParseType(parsedLine.Keyword)
	if err != nil {
		return Parsed{}, err
	}
	parsed := Parsed{Type: t}
	if parsedLine.Value != nil {
		switch {
		case parsedLine.Value.Str != nil:
			parsed.StrValue = unquote(*parsedLine.Value.Str)
			parsed.HasStr = true
		case parsedLine.Value.Num != nil:
			parsed.IntValue = int(*parsedLine.Value.Num)
			parsed.HasInt = true
		}
	}
	return parsed, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		inner := s[1 : len(s)-1]
		return strings.ReplaceAll(inner, `\"`, `"`)
	}
	return s
}
