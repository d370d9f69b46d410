package generator

import (
	"fmt"
	"strings"

	"github.com/dinject/dinject/internal/model"
	"github.com/dinject/dinject/internal/templates"
)

// GeneratedModule is the emitter's output for one package: the rendered
// autogen_module.go source and the path it belongs at. Grounded on
// Toyz-axon/internal/generator/generator.go's models.GeneratedModule,
// trimmed to the two fields dinject actually needs.
type GeneratedModule struct {
	PackageName string
	FilePath    string
	Content     string
}

// Generator renders one package's collected bean descriptors into a
// single autogen_module.go, in the style of
// Toyz-axon/internal/generator/generator.go's
// GenerateModuleWithRequiredPackages: a strings.Builder-composed
// header, a body assembled from one rendered block per bean, and a
// footer, rather than the teacher's per-controller FX-provider and
// Echo-route blocks.
type Generator struct{}

// New constructs a Generator.
func New() *Generator {
	return &Generator{}
}

// GenerateModule topologically sorts descs by their local constructor
// dependencies (see TopoSort) and renders the package's
// autogen_module.go: a single Register(builder *dinject.Builder) error
// function that constructs each bean, in dependency order, performs its
// field/method injection, invokes its factory methods, and adds every
// resulting bean to builder. importPaths lists the additional package
// import paths the constructor calls and field types in descs require;
// the CLI driver computes them from the descriptors' dependency type
// origins before calling this.
func (g *Generator) GenerateModule(packageName string, filePath string, descs []*model.BeanDescriptor, importPaths []string) (*GeneratedModule, error) {
	ordered, err := TopoSort(descs)
	if err != nil {
		return nil, fmt.Errorf("generator: %w", err)
	}

	var regs strings.Builder

	localVar := make(map[string]string, len(ordered)) // BaseType -> local variable name
	for i, d := range ordered {
		varName := fmt.Sprintf("bean%d", i)
		if d.BaseType != "" {
			localVar[d.BaseType] = varName
		}

		rendered, err := renderRegistration(varName, d, localVar)
		if err != nil {
			return nil, fmt.Errorf("generator: rendering %s: %w", describeBean(d), err)
		}
		regs.WriteString(rendered)

		for fi, m := range d.FactoryMethods {
			factoryVar := fmt.Sprintf("%sFactory%d", varName, fi)
			rendered, err := renderFactoryRegistration(factoryVar, varName, m, localVar)
			if err != nil {
				return nil, fmt.Errorf("generator: rendering factory %s.%s: %w", describeBean(d), m.MethodName, err)
			}
			regs.WriteString(rendered)
			if m.ReturnType != "" {
				localVar[m.ReturnType] = factoryVar
			}
		}
	}

	header, err := templates.ExecuteTemplate("module-header", templates.ModuleHeaderTemplate, templates.ModuleHeaderData{
		PackageName: packageName,
		ImportPaths: importPaths,
		NeedsFmt:    strings.Contains(regs.String(), "fmt.Errorf"),
	})
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	body.WriteString(header)
	body.WriteString(regs.String())
	body.WriteString(templates.ModuleFooterTemplate)

	return &GeneratedModule{
		PackageName: packageName,
		FilePath:    filePath,
		Content:     body.String(),
	}, nil
}

func describeBean(d *model.BeanDescriptor) string {
	if d.BaseType != "" {
		return d.BaseType
	}
	return "<generic bean>"
}

// renderRegistration builds the Go source for one bean's construction,
// field/method injection, and dinject.Builder registration. A
// dependency satisfied by another descriptor already built earlier in
// this same package's topological order is wired directly to that
// local variable; every other dependency is resolved from the builder
// via dinject.ResolveAs into its own local variable first, covering
// cross-package dependencies an earlier-run Register call already
// registered.
func renderRegistration(varName string, d *model.BeanDescriptor, localVar map[string]string) (string, error) {
	if d.Constructor == nil {
		return "", fmt.Errorf("no constructor New%s found", describeBean(d))
	}
	resolveStmts, argNames := constructorArgs(varName, d, localVar)
	call := fmt.Sprintf("New%s(%s)", describeBean(d), strings.Join(argNames, ", "))

	data := templates.RegistrationData{
		VarName:           varName,
		BaseType:          describeBean(d),
		Qualifier:         d.ImplicitQualifier,
		AssignableTypes:   d.AssignableTypes,
		Annotations:       d.Annotations,
		PriorityClass:     templates.PriorityClassExpr(d),
		HasPostConstruct:  d.PostConstruct != "",
		PostConstructName: d.PostConstruct,
		HasPreDestroy:     d.PreDestroy != "",
		PreDestroyName:    d.PreDestroy,
		ResolveStmts:      resolveStmts,
		ConstructorCall:   call,
		FieldAssignments:  fieldAssignments(varName, d, localVar),
		MethodCalls:       methodCalls(varName, d, localVar),
	}
	if d.Priority != nil {
		data.PriorityValue = fmt.Sprintf("%d", *d.Priority)
	}

	return templates.ExecuteTemplate("registration", templates.RegistrationTemplate, data)
}

// renderFactoryRegistration builds the Go source for one //dinject:bean
// factory method's product: a pseudo-bean constructed by calling the
// method on its already-built owner instead of a New<Type> function,
// carrying the "bean" annotation so it surfaces through
// Scope.BeansWithAnnotation the way the original's
// getBeansWithAnnotation doc comment names as its use case (see
// SPEC_FULL.md's web adapter examples).
func renderFactoryRegistration(varName, ownerVar string, m model.MethodPoint, localVar map[string]string) (string, error) {
	var stmts []string
	args := make([]string, len(m.Parameters))
	for i, p := range m.Parameters {
		expr, stmt := resolveArg(fmt.Sprintf("%sArg%d", varName, i), p, m.DeclaringType, localVar)
		args[i] = expr
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}

	call := fmt.Sprintf("%s.%s(%s)", ownerVar, m.MethodName, strings.Join(args, ", "))

	data := templates.RegistrationData{
		VarName:         varName,
		BaseType:        m.ReturnType,
		Qualifier:       m.Qualifier,
		AssignableTypes: []string{m.ReturnType},
		Annotations:     []string{"bean"},
		PriorityClass:   "dinject.Normal",
		ResolveStmts:    stmts,
		ConstructorCall: call,
	}

	return templates.ExecuteTemplate("registration", templates.RegistrationTemplate, data)
}

// constructorArgs returns the resolve-statement block and the ordered
// list of argument expressions (local variable names) for d's chosen
// constructor. A bean with no discovered constructor never reaches
// here — renderRegistration fails generation for it first.
func constructorArgs(varName string, d *model.BeanDescriptor, localVar map[string]string) ([]string, []string) {
	var stmts []string
	args := make([]string, len(d.Constructor.Parameters))
	for i, p := range d.Constructor.Parameters {
		argVar := fmt.Sprintf("%sArg%d", varName, i)
		expr, stmt := resolveArg(argVar, p, describeBean(d), localVar)
		args[i] = expr
		if stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, args
}

// fieldAssignments renders one "resolve then assign" block per field
// injection point on d, in base-to-derived order (model.BeanDescriptor
// already carries InjectFields in that order).
func fieldAssignments(varName string, d *model.BeanDescriptor, localVar map[string]string) []string {
	var blocks []string
	for i, f := range d.InjectFields {
		p := model.Parameter{TypeName: f.DeclaredType, Qualifier: f.Qualifier, Nullable: f.Nullable}
		expr, stmt := resolveArg(fmt.Sprintf("%sField%d", varName, i), p, describeBean(d), localVar)
		assign := fmt.Sprintf("\t%s.%s = %s", varName, f.FieldName, expr)
		if stmt != "" {
			blocks = append(blocks, stmt+"\n"+assign)
		} else {
			blocks = append(blocks, assign)
		}
	}
	return blocks
}

// methodCalls renders one "resolve each parameter, then call" block per
// method injection point on d, in base-to-derived order.
func methodCalls(varName string, d *model.BeanDescriptor, localVar map[string]string) []string {
	var blocks []string
	for mi, m := range d.InjectMethods {
		var stmts []string
		args := make([]string, len(m.Parameters))
		for pi, p := range m.Parameters {
			expr, stmt := resolveArg(fmt.Sprintf("%sMethod%dArg%d", varName, mi, pi), p, describeBean(d), localVar)
			args[pi] = expr
			if stmt != "" {
				stmts = append(stmts, stmt)
			}
		}
		call := fmt.Sprintf("\t%s.%s(%s)", varName, m.MethodName, strings.Join(args, ", "))
		blocks = append(blocks, strings.Join(append(stmts, call), "\n"))
	}
	return blocks
}

// resolveArg returns the Go expression a dependency should be referenced
// by (either an already-built local variable, or argVar itself) and the
// resolve statement to emit before using it (empty when the dependency
// is satisfied locally — no statement needed). The dependency's type
// name is normalized to its bare declaration name before either the
// local-variable lookup or the ResolveAs key, so that a same-package
// constructor parameter ("Motor") and a cross-package field of the
// pointer/selector shape sigreader.TypeString renders ("*motor.Motor")
// both key against the same "Motor" a package's own Register function
// registers its beans under.
func resolveArg(argVar string, p model.Parameter, ownerDescription string, localVar map[string]string) (expr string, stmt string) {
	bare := bareTypeName(p.TypeName)
	if v, ok := localVar[bare]; ok {
		return v, ""
	}
	return argVar, resolveStatement(argVar, bare, p, ownerDescription)
}

// bareTypeName strips the pointer/slice prefixes and package selector a
// dependency's declared type name may carry, leaving the bean identity
// key BaseType is always recorded under: "*motor.Motor" and "Motor"
// both normalize to "Motor".
func bareTypeName(typeName string) string {
	trimmed := strings.TrimLeft(typeName, "*[]")
	if idx := strings.LastIndex(trimmed, "."); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

// resolveStatement renders the "resolve, then check" block for one
// non-local dependency via dinject.ResolveAs, keyed by bare (already
// normalized by resolveArg). A nullable parameter discards the error
// and keeps the zero value instead of failing generation-time
// registration, per spec.md §4.4's optional dependency semantics.
func resolveStatement(argVar, bare string, p model.Parameter, ownerDescription string) string {
	if p.Nullable {
		return fmt.Sprintf(
			"\t%s, _ := dinject.ResolveAs[%s](builder, %q, %q)",
			argVar, bare, bare, p.Qualifier,
		)
	}
	return fmt.Sprintf(
		"\t%s, err := dinject.ResolveAs[%s](builder, %q, %q)\n\tif err != nil {\n\t\treturn fmt.Errorf(\"construct %s: resolve %s: %%w\", err)\n\t}",
		argVar, bare, bare, p.Qualifier, ownerDescription, bare,
	)
}
