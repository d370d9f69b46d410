// Package sigreader reads Go type strings and parameter lists off
// go/ast nodes: the raw material the collector and bean reader build
// model.Parameter, model.FieldPoint and model.ConstructorPoint from.
// Grounded on Toyz-axon/internal/parser/parser.go's getFieldTypeName
// and analyzeHandlerSignature, generalized from route-handler analysis
// to constructor/method/field analysis.
package sigreader

import (
	"go/ast"
	"strconv"
	"strings"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/model"
)

// TypeString renders an ast.Expr type node back to its canonical source
// form, e.g. "*Heater", "[]Pump", "map[string]int", "Provider[Heater]".
func TypeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + TypeString(t.X)
	case *ast.SelectorExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name + "." + t.Sel.Name
		}
		return t.Sel.Name
	case *ast.ArrayType:
		if t.Len != nil {
			return "[" + TypeString(t.Len) + "]" + TypeString(t.Elt)
		}
		return "[]" + TypeString(t.Elt)
	case *ast.MapType:
		return "map[" + TypeString(t.Key) + "]" + TypeString(t.Value)
	case *ast.Ellipsis:
		return "..." + TypeString(t.Elt)
	case *ast.IndexExpr:
		return TypeString(t.X) + "[" + TypeString(t.Index) + "]"
	case *ast.IndexListExpr:
		parts := make([]string, len(t.Indices))
		for i, idx := range t.Indices {
			parts[i] = TypeString(idx)
		}
		return TypeString(t.X) + "[" + strings.Join(parts, ", ") + "]"
	case *ast.InterfaceType:
		if t.Methods == nil || len(t.Methods.List) == 0 {
			return "interface{}"
		}
		return "interface{...}"
	case *ast.BasicLit:
		return t.Value
	default:
		return "unknown"
	}
}

// MethodReader extracts parameter lists from function/method signatures.
type MethodReader struct {
	probe *annotation.Probe
}

// NewMethodReader constructs a MethodReader.
func NewMethodReader(probe *annotation.Probe) *MethodReader {
	return &MethodReader{probe: probe}
}

// Parameters reads the parameter list of a function type, expanding
// grouped names (e.g. "a, b int") into one model.Parameter per name and
// decoding each parameter's inject struct-tag-equivalent from its own
// doc comment is not applicable here — parameters carry no comments in
// Go, so qualifier/nullable on a parameter are read from the matching
// constructor-level //dinject:named / //dinject:nullable comment
// instead, via ApplyParameterAnnotations.
func (r *MethodReader) Parameters(fl *ast.FieldList) []model.Parameter {
	if fl == nil {
		return nil
	}
	var out []model.Parameter
	anon := 0
	for _, field := range fl.List {
		typeName := TypeString(field.Type)
		names := field.Names
		if len(names) == 0 {
			out = append(out, model.Parameter{
				Name:     syntheticParamName(typeName, anon),
				TypeName: typeName,
			})
			anon++
			continue
		}
		for _, name := range names {
			out = append(out, model.Parameter{
				Name:     name.Name,
				TypeName: typeName,
			})
		}
	}
	return out
}

func syntheticParamName(typeName string, index int) string {
	base := strings.ToLower(strings.TrimPrefix(typeName, "*"))
	if idx := strings.LastIndexAny(base, "]."); idx >= 0 {
		base = base[idx+1:]
	}
	if base == "" {
		base = "arg"
	}
	return base + suffixFor(index)
}

func suffixFor(index int) string {
	if index == 0 {
		return ""
	}
	return "_" + strconv.Itoa(index)
}

// ApplyParameterAnnotations overlays //dinject:named "qualifier" and
// //dinject:nullable markers found in a constructor/method's own doc
// comment onto its already-extracted parameter list, matched by
// parameter name — e.g.:
//
//	//dinject:named "primary" heater
//	func NewWaterHeater(heater Heater) *WaterHeater { ... }
//
// qualifies the "heater" parameter as wanting the "primary" bean.
func (r *MethodReader) ApplyParameterAnnotations(doc *ast.CommentGroup, params []model.Parameter) []model.Parameter {
	if doc == nil || r.probe == nil {
		return params
	}
	byName := make(map[string]*model.Parameter, len(params))
	for i := range params {
		byName[params[i].Name] = &params[i]
	}
	for _, c := range doc.List {
		text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
		if !strings.HasPrefix(text, annotation.Prefix) {
			continue
		}
		payload := strings.TrimPrefix(text, annotation.Prefix)
		fields := strings.Fields(payload)
		if len(fields) < 2 {
			continue
		}
		target := fields[len(fields)-1]
		p, ok := byName[target]
		if !ok {
			continue
		}
		parsed, err := annotation.NewGrammar().Parse(strings.Join(fields[:len(fields)-1], " "))
		if err != nil {
			continue
		}
		switch parsed.Type {
		case annotation.Named:
			if parsed.HasStr {
				p.Qualifier = parsed.StrValue
			}
		case annotation.Nullable:
			p.Nullable = true
		}
	}
	return params
}
