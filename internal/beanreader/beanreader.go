// Package beanreader is the top-level orchestrator of bean metadata
// reading: it unwraps provider-of on the bean's own type, walks the
// embedded-field chain via the TypeIndex, drives one collector.Read per
// hop, computes the implicit qualifier, and assembles the resulting
// model.BeanDescriptor. Grounded on
// original_source/inject-generator/.../TypeExtendsReader.java's process
// and addSuperType.
package beanreader

import (
	"fmt"
	"go/ast"
	"sort"
	"strings"

	"github.com/dinject/dinject/internal/annotation"
	"github.com/dinject/dinject/internal/collector"
	"github.com/dinject/dinject/internal/model"
	"github.com/dinject/dinject/internal/registry"
	"github.com/dinject/dinject/internal/sigreader"
	"github.com/dinject/dinject/internal/typeutil"
)

// CandidateTypes returns, in sorted order, the name of every struct type
// indexed by idx that is itself a bean declaration: one carrying
// //dinject:singleton on its own type doc comment. This is the driver's
// discovery boundary (spec.md is silent on it; DESIGN.md pins
// @Singleton as the type-level marker that promotes a struct from
// "reachable via an embedded-field hop" to "a bean the emitter must
// construct and register" — every other struct in the package is only
// ever seen as a superclass hop or a constructor-parameter type).
func CandidateTypes(idx *registry.TypeIndex, probe *annotation.Probe) []string {
	var names []string
	for _, name := range idx.Names() {
		entry, ok := idx.Lookup(name)
		if !ok || entry.Struct == nil || entry.Spec == nil {
			continue
		}
		if _, ok := probe.Has(entry.Spec.Doc, annotation.Singleton); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// IsFactoryType reports whether name's own declaration carries
// //dinject:factory, the marker that makes its //dinject:bean-annotated
// methods additional bean sources (spec.md §4.4).
func IsFactoryType(idx *registry.TypeIndex, probe *annotation.Probe, name string) bool {
	entry, ok := idx.Lookup(name)
	if !ok || entry.Spec == nil {
		return false
	}
	_, ok = probe.Has(entry.Spec.Doc, annotation.Factory)
	return ok
}

// Reader reads one bean's BeanDescriptor given its declared type name.
type Reader struct {
	idx   *registry.TypeIndex
	probe *annotation.Probe
}

// New constructs a Reader over idx.
func New(idx *registry.TypeIndex, probe *annotation.Probe) *Reader {
	return &Reader{idx: idx, probe: probe}
}

// Read walks beanTypeName's embedded-field chain and produces its
// BeanDescriptor. isFactory marks whether the type is itself a factory
// bean whose methods should be scanned for //dinject:bean factories.
func (r *Reader) Read(beanTypeName string, isFactory bool) (*model.BeanDescriptor, error) {
	base := typeutil.UnwrapProvider(beanTypeName)

	desc := &model.BeanDescriptor{}
	col := collector.New(r.idx, r.probe, isFactory)

	// seenAssignable guards against the same type name being appended
	// twice — e.g. a bean that embeds an interface it also structurally
	// satisfies (spec.md's scenario B, ElectricHeater embedding the
	// Heater interface) would otherwise hit both the embedded-field hop
	// below and structurallySatisfiedInterfaces, producing a duplicate
	// AssignableTypes entry that indexes the bean twice under the same
	// type and breaks the §8 "all entries are distinct" invariant.
	seenAssignable := make(map[string]bool)
	addAssignable := func(name string) {
		if name == "" || seenAssignable[name] {
			return
		}
		seenAssignable[name] = true
		desc.AssignableTypes = append(desc.AssignableTypes, name)
	}

	generic := typeutil.IsGeneric(base)
	if !generic {
		desc.BaseType = base
		addAssignable(base)
	}

	entry, ok := r.idx.Lookup(base)
	if !ok {
		return nil, fmt.Errorf("beanreader: bean type %q not found", base)
	}

	if !generic {
		if err := col.Read(base, true); err != nil {
			return nil, err
		}
	}

	// Walk the embedded-field chain. The first hop's immediate supertype
	// also determines the implicit qualifier (spec.md §4.4 step 3).
	first := true
	current := entry
	for {
		embedded := sigreader.EmbeddedFieldTypes(current.Struct)
		if len(embedded) == 0 {
			break
		}
		superName := typeutil.UnwrapProvider(embedded[0])
		superEntry, known := r.idx.Lookup(superName)
		if !known {
			// Not a struct declared in the scanned source set: the Go
			// analogue of reaching java.lang.Object. Stop the walk.
			break
		}

		if first {
			if qualifier, ok := implicitQualifier(base, superName); ok {
				desc.ImplicitQualifier = qualifier
			}
			first = false
		}

		if !typeutil.IsGeneric(superName) {
			addAssignable(superName)
			if err := col.Read(superName, false); err != nil {
				return nil, err
			}
		}
		// else: skip generic supertype's assignable-types contribution,
		// but continue the walk through its own embedded fields.

		current = superEntry
	}

	for _, name := range r.structurallySatisfiedInterfaces(base) {
		addAssignable(name)
	}

	desc.Constructor = col.Constructor()
	desc.InjectFields = col.InjectFields()
	desc.InjectMethods = col.InjectMethods()
	desc.FactoryMethods = col.FactoryMethods()
	desc.PostConstruct = col.PostConstruct()
	desc.PreDestroy = col.PreDestroy()

	if entry.Spec != nil {
		if _, ok := r.probe.Has(entry.Spec.Doc, annotation.Primary); ok {
			desc.Primary = true
		}
		if _, ok := r.probe.Has(entry.Spec.Doc, annotation.Secondary); ok {
			desc.Secondary = true
		}
		if _, ok := r.probe.Has(entry.Spec.Doc, annotation.Singleton); ok {
			desc.Singleton = true
		}
		if priority, ok := r.probe.Has(entry.Spec.Doc, annotation.Priority); ok && priority.HasInt {
			p := priority.IntValue
			desc.Priority = &p
		}
		if named, ok := r.probe.Has(entry.Spec.Doc, annotation.Named); ok && named.HasStr {
			desc.ImplicitQualifier = named.StrValue
		}
		if _, ok := r.probe.Has(entry.Spec.Doc, annotation.Bean); ok {
			desc.Annotations = append(desc.Annotations, annotation.Bean.String())
		}
		if _, ok := r.probe.Has(entry.Spec.Doc, annotation.Factory); ok {
			desc.Annotations = append(desc.Annotations, annotation.Factory.String())
		}
	}

	return desc, nil
}

// implicitQualifier mirrors TypeExtendsReader.process's suffix match:
// if baseName ends with superName and is strictly longer, the leading
// portion, lowercased, is the implicit qualifier.
func implicitQualifier(baseName, superName string) (string, bool) {
	if baseName == superName || !strings.HasSuffix(baseName, superName) {
		return "", false
	}
	prefix := strings.TrimSuffix(baseName, superName)
	if prefix == "" {
		return "", false
	}
	return strings.ToLower(prefix), true
}

// structurallySatisfiedInterfaces scans every interface declaration
// indexed by idx and returns the name of each one whose method set is a
// subset of beanTypeName's own declared methods plus its chain's
// methods — the generation-time structural check SPEC_FULL.md §1
// substitutes for runtime reflect.Type.Implements.
func (r *Reader) structurallySatisfiedInterfaces(beanTypeName string) []string {
	beanMethods := make(map[string]bool)
	name := beanTypeName
	for {
		for _, m := range r.idx.MethodsOf(name) {
			beanMethods[m.Name.Name] = true
		}
		entry, ok := r.idx.Lookup(name)
		if !ok {
			break
		}
		embedded := sigreader.EmbeddedFieldTypes(entry.Struct)
		if len(embedded) == 0 {
			break
		}
		name = typeutil.UnwrapProvider(embedded[0])
	}

	var satisfied []string
	for _, name := range r.idx.Names() {
		entry, ok := r.idx.Lookup(name)
		if !ok || entry.Spec == nil {
			continue
		}
		iface, ok := entry.Spec.Type.(*ast.InterfaceType)
		if !ok {
			continue
		}
		if interfaceSatisfiedBy(iface, beanMethods) {
			satisfied = append(satisfied, name)
		}
	}
	return satisfied
}

// interfaceSatisfiedBy reports whether every named method of iface
// appears in beanMethods. This is a structural best-effort check, not a
// full type-checker: an embedded interface reference (e.g. ReadWriter
// embedding Reader and Writer) is not resolved transitively, so an
// interface containing one is treated as not structurally checkable and
// reported unsatisfied rather than trivially satisfied — the opposite
// of that would mark every bean assignable to it.
func interfaceSatisfiedBy(iface *ast.InterfaceType, beanMethods map[string]bool) bool {
	if iface.Methods == nil || len(iface.Methods.List) == 0 {
		return false
	}
	for _, m := range iface.Methods.List {
		if len(m.Names) == 0 {
			return false // embedded interface reference, not resolved here
		}
		if _, ok := m.Type.(*ast.FuncType); !ok {
			continue
		}
		for _, name := range m.Names {
			if !beanMethods[name.Name] {
				return false
			}
		}
	}
	return true
}
