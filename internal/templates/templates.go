// Package templates holds the text/template definitions the emitter
// renders into autogen_module.go, and the small per-bean rendering
// helpers that feed them. Grounded on
// Toyz-axon/internal/templates/templates.go's executeTemplate/FuncMap
// pattern, generalized from FX-provider generation to dinject.Entry
// registration generation. This file holds every template the package
// defines; the teacher's HTTP-routing template files were removed — see
// DESIGN.md.
package templates

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/dinject/dinject/internal/model"
)

// RegistrationData is the per-bean template input for RegistrationTemplate.
type RegistrationData struct {
	VarName           string
	BaseType          string
	Qualifier         string
	AssignableTypes   []string
	Annotations       []string
	PriorityClass     string
	PriorityValue     string // empty if unset, else the literal int
	HasPostConstruct  bool
	PostConstructName string
	HasPreDestroy     bool
	PreDestroyName    string
	// ResolveStmts are executed, in order, before ConstructorCall —
	// each resolves one non-local constructor dependency from the
	// builder under construction and assigns it to a local variable
	// ConstructorCall then references.
	ResolveStmts    []string
	ConstructorCall string // e.g. "NewElectricHeater(dep0)" — no error return, constructors are plain funcs

	// FieldAssignments and MethodCalls are rendered, in order, right
	// after construction and before the bean is wrapped in its Entry —
	// each is a complete, already-indented statement block (any resolve
	// statements the field/method's dependencies need, followed by the
	// assignment or call itself).
	FieldAssignments []string
	MethodCalls      []string
}

// RegistrationTemplate renders one bean's construction + registration
// block. Grounded on the teacher's strings.Builder-composed provider
// block per service, translated from FX-provider code to
// dinject.Builder.Register calls.
const RegistrationTemplate = `{{range .ResolveStmts}}{{.}}
{{end}}	{{.VarName}} := {{.ConstructorCall}}
{{range .FieldAssignments}}{{.}}
{{end}}{{range .MethodCalls}}{{.}}
{{end}}	{{.VarName}}Entry := &dinject.Entry{
		Instance:        {{.VarName}},
		Qualifier:       {{printf "%q" .Qualifier}},
		PriorityClass:   {{.PriorityClass}},
		AssignableTypes: {{goStringSlice .AssignableTypes}},
		Annotations:     {{goStringSlice .Annotations}},
{{- if .PriorityValue}}
		PriorityValue:   intPtr({{.PriorityValue}}),
{{- end}}
{{- if .HasPostConstruct}}
		PostConstruct:   func() error { return {{.VarName}}.{{.PostConstructName}}() },
{{- end}}
{{- if .HasPreDestroy}}
		PreDestroy:      func() error { return {{.VarName}}.{{.PreDestroyName}}() },
{{- end}}
	}
	builder.Register({{.VarName}}Entry)
{{- if or .HasPostConstruct .HasPreDestroy}}
	builder.RegisterLifecycle({{.VarName}}Entry)
{{- end}}
`

// ModuleHeaderData is the template input for ModuleHeaderTemplate.
type ModuleHeaderData struct {
	PackageName string
	ImportPaths []string
	// NeedsFmt is true when the generated body calls fmt.Errorf (a
	// non-nullable cross-package/builder resolve failed check) — a
	// package whose beans have no such resolve must not import fmt
	// unconditionally, or the generated file fails to compile with an
	// unused import.
	NeedsFmt bool
}

// ModuleHeaderTemplate renders the "DO NOT EDIT" banner, package clause,
// and import block shared by every generated file — the same shape as
// Toyz-axon/internal/generator/generator.go's header-then-imports
// strings.Builder sequence, rendered through text/template instead.
const ModuleHeaderTemplate = `// Code generated by dinject. DO NOT EDIT.

package {{.PackageName}}

import (
{{- if .NeedsFmt}}
	"fmt"
{{- end}}

	"github.com/dinject/dinject/pkg/dinject"
{{- range .ImportPaths}}
	{{printf "%q" .}}
{{- end}}
)

func intPtr(n int) *int { return &n }

// Register builds every bean declared in this package and adds it to
// builder. Generated code calls this once per package during scope
// assembly; it never mutates builder after returning.
func Register(builder *dinject.Builder) error {
`

// ModuleFooterTemplate closes the Register function body.
const ModuleFooterTemplate = `	return nil
}
`

func goStringSlice(values []string) string {
	if len(values) == 0 {
		return "nil"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

var funcMap = template.FuncMap{
	"goStringSlice": goStringSlice,
}

// ExecuteTemplate parses and executes a named template string against
// data, mirroring Toyz-axon/internal/templates/templates.go's
// executeTemplate.
func ExecuteTemplate(name, templateStr string, data any) (string, error) {
	tmpl, err := template.New(name).Funcs(funcMap).Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// PriorityClassExpr renders a model.BeanDescriptor's priority flags as
// the dinject.Priority constant expression the registration block uses.
func PriorityClassExpr(d *model.BeanDescriptor) string {
	switch {
	case d.Primary:
		return "dinject.Primary"
	case d.Secondary:
		return "dinject.Secondary"
	default:
		return "dinject.Normal"
	}
}
