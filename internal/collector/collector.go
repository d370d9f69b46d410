// Package collector implements one pass per hop of a bean's embedded-
// field chain, accumulating inject fields, inject methods (with
// override suppression), factory methods, lifecycle hooks and
// constructor candidates. Grounded on
// original_source/inject-generator/.../TypeExtendsInjection.java,
// translated hop-for-hop to Go: a "class" becomes a struct declaration,
// a "superclass" becomes an embedded (anonymous) struct field's type,
// and a "constructor" becomes the package-level `func New<Type>(...)`
// naming convention (see SPEC_FULL.md §1).
package collector

import (
	"fmt"
	"go/ast"
	"strings"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/model"
	"github.com/dinject/dinject/internal/registry"
	"github.com/dinject/dinject/internal/sigreader"
)

// Collector accumulates injection points across every hop of one bean's
// embedded-field chain. Read is called once per hop, most-derived type
// first, exactly mirroring TypeExtendsReader.process's derived-to-base
// call order into TypeExtendsInjection.read.
type Collector struct {
	idx          *registry.TypeIndex
	probe        *annotation.Probe
	methodReader *sigreader.MethodReader
	fieldReader  *sigreader.FieldReader
	factory      bool

	injectConstructor *model.ConstructorPoint
	otherConstructors []model.ConstructorPoint

	factoryMethods []model.MethodPoint

	injectFields []model.FieldPoint

	injectMethods     map[string]model.MethodPoint
	injectMethodOrder []string
	notInjectMethods  map[string]bool

	postConstruct string
	preDestroy    string
}

// New constructs a Collector over idx. factory marks whether //dinject:bean
// factory methods should also be collected (only the bean's own factory
// type does this, per spec.md §4.4).
func New(idx *registry.TypeIndex, probe *annotation.Probe, factory bool) *Collector {
	return &Collector{
		idx:               idx,
		probe:             probe,
		methodReader:      sigreader.NewMethodReader(probe),
		fieldReader:       sigreader.NewFieldReader(),
		factory:           factory,
		injectMethods:     make(map[string]model.MethodPoint),
		notInjectMethods:  make(map[string]bool),
	}
}

// Read processes one hop of the chain: typeName's tagged fields, its
// declared methods (subject to override suppression), and — only when
// isBaseType is true — its constructor candidates. Mirrors
// TypeExtendsInjection.read(type), with readConstructor's "only the top
// level type's constructors count" restricted here to isBaseType.
func (c *Collector) Read(typeName string, isBaseType bool) error {
	entry, ok := c.idx.Lookup(typeName)
	if !ok {
		return fmt.Errorf("collector: type %q not found", typeName)
	}

	if isBaseType {
		c.readConstructor(typeName)
	}

	if entry.Struct != nil {
		c.injectFields = append(c.injectFields, c.fieldReader.InjectFields(entry.Struct, typeName)...)
	}

	for _, method := range c.idx.MethodsOf(typeName) {
		c.readMethod(method, typeName)
	}

	return nil
}

func (c *Collector) readConstructor(typeName string) {
	fd, ok := c.idx.Func("New" + typeName)
	if !ok {
		return
	}
	params := c.methodReader.Parameters(fd.Type.Params)
	params = c.methodReader.ApplyParameterAnnotations(fd.Doc, params)

	visibility := model.Unexported
	if isExportedName(fd.Name.Name) {
		visibility = model.Exported
	}

	point := model.ConstructorPoint{
		Parameters:    params,
		DeclaringType: typeName,
		Visibility:    visibility,
	}

	if _, hasInject := c.probe.Has(fd.Doc, annotation.Inject); hasInject {
		c.injectConstructor = &point
		return
	}
	c.otherConstructors = append(c.otherConstructors, point)
}

func (c *Collector) readMethod(fd *ast.FuncDecl, declaringType string) {
	if c.factory {
		if bean, ok := c.probe.Has(fd.Doc, annotation.Bean); ok {
			c.addFactoryMethod(fd, declaringType, bean)
		}
	}

	methodKey := fd.Name.Name
	// Java's methodReader additionally requires isNotPrivate() here; Go has
	// no private/non-private method split visible to the generated code
	// (it always lives in the same package as the bean), so that gate has
	// no analogue to port.
	_, injected := c.probe.Has(fd.Doc, annotation.Inject)
	if injected && !c.notInjectMethods[methodKey] {
		if _, exists := c.injectMethods[methodKey]; !exists {
			params := c.methodReader.Parameters(fd.Type.Params)
			params = c.methodReader.ApplyParameterAnnotations(fd.Doc, params)
			c.injectMethods[methodKey] = model.MethodPoint{
				MethodName:    methodKey,
				Parameters:    params,
				DeclaringType: declaringType,
			}
			c.injectMethodOrder = append(c.injectMethodOrder, methodKey)
		}
	} else {
		c.notInjectMethods[methodKey] = true
	}

	if _, ok := c.probe.Has(fd.Doc, annotation.PostConstruct); ok && c.postConstruct == "" {
		c.postConstruct = methodKey
	}
	if _, ok := c.probe.Has(fd.Doc, annotation.PreDestroy); ok && c.preDestroy == "" {
		c.preDestroy = methodKey
	}
}

func (c *Collector) addFactoryMethod(fd *ast.FuncDecl, declaringType string, bean annotation.Parsed) {
	params := c.methodReader.Parameters(fd.Type.Params)
	params = c.methodReader.ApplyParameterAnnotations(fd.Doc, params)

	qualifier := ""
	if named, ok := c.probe.Has(fd.Doc, annotation.Named); ok && named.HasStr {
		qualifier = named.StrValue
	} else if bean.HasStr {
		qualifier = bean.StrValue
	}

	c.factoryMethods = append(c.factoryMethods, model.MethodPoint{
		MethodName:    fd.Name.Name,
		Parameters:    params,
		DeclaringType: declaringType,
		Qualifier:     qualifier,
		ReturnType:    factoryReturnType(fd),
	})
}

// factoryReturnType reads a //dinject:bean method's sole declared result
// type, the bean type it produces. A factory method with no or multiple
// results has no well-defined product and returns "".
func factoryReturnType(fd *ast.FuncDecl) string {
	if fd.Type.Results == nil || len(fd.Type.Results.List) != 1 {
		return ""
	}
	result := fd.Type.Results.List[0]
	if len(result.Names) > 1 {
		return ""
	}
	return sigreader.TypeString(result.Type)
}

func isExportedName(name string) bool {
	return name != "" && strings.ToUpper(name[:1]) == name[:1]
}

// InjectFields returns the collected field injection points in
// base-to-derived order, mirroring TypeExtendsInjection.getInjectFields's
// Collections.reverse of its derived-to-base collection order.
func (c *Collector) InjectFields() []model.FieldPoint {
	out := append([]model.FieldPoint(nil), c.injectFields...)
	reverseFieldPoints(out)
	return out
}

// InjectMethods returns the collected method injection points in
// base-to-derived order, mirroring getInjectMethods's reverse.
func (c *Collector) InjectMethods() []model.MethodPoint {
	out := make([]model.MethodPoint, 0, len(c.injectMethodOrder))
	for _, key := range c.injectMethodOrder {
		out = append(out, c.injectMethods[key])
	}
	reverseMethodPoints(out)
	return out
}

// FactoryMethods returns the collected //dinject:bean factory methods,
// in declaration order (the original never reverses these).
func (c *Collector) FactoryMethods() []model.MethodPoint {
	return append([]model.MethodPoint(nil), c.factoryMethods...)
}

// PostConstruct returns the name of the first post-construct hook seen
// while walking most-derived-to-base, so the nearest declaration to the
// concrete bean type wins (spec.md §4.3's "nearest declaration wins").
func (c *Collector) PostConstruct() string { return c.postConstruct }

// PreDestroy returns the name of the first pre-destroy hook seen, by the
// same rule as PostConstruct.
func (c *Collector) PreDestroy() string { return c.preDestroy }

// Constructor resolves the bean's constructor following
// TypeExtendsInjection.getConstructor: an //dinject:inject-annotated
// constructor wins outright; else the sole non-exported... in Go terms,
// the sole remaining candidate; else the sole exported candidate; else
// nil (callers must treat this as the NoConstructor fatal case).
func (c *Collector) Constructor() *model.ConstructorPoint {
	if c.injectConstructor != nil {
		return c.injectConstructor
	}
	if len(c.otherConstructors) == 1 {
		return &c.otherConstructors[0]
	}
	var exported []model.ConstructorPoint
	for _, ctor := range c.otherConstructors {
		if ctor.Visibility == model.Exported {
			exported = append(exported, ctor)
		}
	}
	if len(exported) == 1 {
		return &exported[0]
	}
	return nil
}

func reverseFieldPoints(s []model.FieldPoint) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseMethodPoints(s []model.MethodPoint) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
