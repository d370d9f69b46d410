package sigreader

import (
	"go/ast"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/model"
)

// FieldReader extracts field injection points from a struct's field list.
// A field is an injection point when it carries an inject struct tag, per
// spec.md §4.1 ("field is an injection point iff annotated or tagged").
type FieldReader struct{}

// NewFieldReader constructs a FieldReader.
func NewFieldReader() *FieldReader {
	return &FieldReader{}
}

// InjectFields walks a struct type's field list and returns one
// model.FieldPoint per tagged field, attributing each to declaringType.
// Embedded (anonymous) fields used for the superclass-chain walk are
// skipped here; TypeIndex/the bean reader handles embedding separately.
func (r *FieldReader) InjectFields(st *ast.StructType, declaringType string) []model.FieldPoint {
	if st == nil || st.Fields == nil {
		return nil
	}
	var out []model.FieldPoint
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			continue // anonymous/embedded field, not a plain injection point
		}
		tag := annotation.ParseStructTagLiteral(field.Tag)
		if !tag.Present {
			continue
		}
		typeName := TypeString(field.Type)
		for _, name := range field.Names {
			out = append(out, model.FieldPoint{
				FieldName:     name.Name,
				DeclaredType:  typeName,
				Qualifier:     tag.Qualifier,
				Nullable:      tag.Nullable,
				DeclaringType: declaringType,
			})
		}
	}
	return out
}

// EmbeddedFieldTypes returns the canonical type names of every anonymous
// (embedded) field on st, nearest-declared-first. This is the Go
// analogue of a Java class's superclass reference, consumed by the
// registry's TypeIndex to walk a bean's "superclass chain".
func EmbeddedFieldTypes(st *ast.StructType) []string {
	if st == nil || st.Fields == nil {
		return nil
	}
	var out []string
	for _, field := range st.Fields.List {
		if len(field.Names) != 0 {
			continue
		}
		out = append(out, TypeString(field.Type))
	}
	return out
}
