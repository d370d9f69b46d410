package annotation

import (
	"go/ast"
	"reflect"
	"strconv"
	"strings"
)

// Probe tests Go declarations and struct tags for the presence of the
// annotation surface, combining Toyz-axon's comment-stripping convention
// (//dinject:keyword on a type or method's doc comment) with
// arpabet-beans' struct-tag convention (inject:"qualifier=...,nullable"
// on a field or parameter) for the finer-grained field/parameter markers.
type Probe struct {
	grammar *Grammar
}

// NewProbe constructs a Probe.
func NewProbe() *Probe {
	return &Probe{grammar: NewGrammar()}
}

// FromComment collects every //dinject:... annotation found in a doc
// comment group, in source order. A declaration carries zero or more;
// callers decide which ones are meaningful in context.
func (p *Probe) FromComment(group *ast.CommentGroup) []Parsed {
	if group == nil {
		return nil
	}
	var out []Parsed
	for _, c := range group.List {
		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimSpace(text)
		if !strings.HasPrefix(text, Prefix) {
			continue
		}
		payload := strings.TrimPrefix(text, Prefix)
		parsed, err := p.grammar.Parse(payload)
		if err != nil {
			continue
		}
		out = append(out, parsed)
	}
	return out
}

// Has reports whether group carries an annotation of the given type, and
// returns its parsed form.
func (p *Probe) Has(group *ast.CommentGroup, t Type) (Parsed, bool) {
	for _, a := range p.FromComment(group) {
		if a.Type == t {
			return a, true
		}
	}
	return Parsed{}, false
}

// TagQualifier is the decoded content of a field or parameter's
// `inject:"..."` struct tag: an optional explicit qualifier and the
// nullable flag. Grounded on arpabet-beans/bean.go's tag-driven field
// wiring, adapted here to the comma-separated key/key=value grammar
// arpabet-beans/registry.go uses for its own tag parsing.
type TagQualifier struct {
	Qualifier string
	Nullable  bool
	Present   bool
}

// ParseFieldTag decodes the inject struct tag of a single struct field.
// A field with neither an inject nor a nullable tag gets a zero
// TagQualifier with Present false, and sigreader.FieldReader does not
// treat it as an injection point; a nullable tag alone counts as present
// and nullable.
func ParseFieldTag(tag reflect.StructTag) TagQualifier {
	raw, ok := tag.Lookup("inject")
	result := TagQualifier{Present: ok}
	if !ok {
		if _, nullableOnly := tag.Lookup("nullable"); nullableOnly {
			result.Present = true
			result.Nullable = true
		}
		return result
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if part == "nullable" {
			result.Nullable = true
			continue
		}
		if strings.HasPrefix(part, "qualifier=") {
			result.Qualifier = strings.TrimPrefix(part, "qualifier=")
		}
	}
	return result
}

// ParseStructTagLiteral decodes the raw *ast.BasicLit string of a struct
// field tag (as found on ast.Field.Tag) without needing a reflect.Type.
func ParseStructTagLiteral(lit *ast.BasicLit) TagQualifier {
	if lit == nil {
		return TagQualifier{}
	}
	unquoted, err := strconv.Unquote(lit.Value)
	if err != nil {
		return TagQualifier{}
	}
	return ParseFieldTag(reflect.StructTag(unquoted))
}
