// Package model holds the generation-time data model produced by the
// bean reader and consumed by the emitter: injection points, the
// normalized bean descriptor, and the small value types they're built
// from. Nothing in this package touches go/ast directly — it is the
// output shape, not the reading machinery.
package model

// Visibility captures a declaration's reachability for constructor
// selection (spec.md §4.3). Go has no package-private-vs-private split
// the way Java does; within one scanned module everything is reachable,
// so "non-private" collapses to "declared" and only the exported/
// unexported axis is meaningful for documentation purposes.
type Visibility int

const (
	Unexported Visibility = iota
	Exported
)

func (v Visibility) String() string {
	if v == Exported {
		return "exported"
	}
	return "unexported"
}

// Parameter is one entry of a method or constructor's parameter list.
type Parameter struct {
	Name      string
	TypeName  string
	Qualifier string // explicit @Named value, empty if none
	Nullable  bool
}

// FieldPoint is a field injection point.
type FieldPoint struct {
	FieldName    string
	DeclaredType string
	Qualifier    string
	Nullable     bool
	// DeclaringType is the canonical name of the type the field is
	// declared on, needed because inject_fields spans the hierarchy.
	DeclaringType string
}

// MethodPoint is a method injection point or a factory method.
// Lifecycle hooks are recorded as plain method names on BeanDescriptor.
type MethodPoint struct {
	MethodName    string
	Parameters    []Parameter
	DeclaringType string
	Qualifier     string // @Named on a factory method

	// ReturnType is the declared return type of a //dinject:bean factory
	// method — the bean type the method produces. Empty for inject
	// methods, which return nothing meaningful to the emitter.
	ReturnType string
}

// ConstructorPoint is the chosen injection constructor for a bean.
type ConstructorPoint struct {
	Parameters    []Parameter
	DeclaringType string
	Visibility    Visibility
}

// BeanDescriptor is the reader's normalized output for one bean type,
// matching the Reader -> Emitter contract of spec.md §6.
type BeanDescriptor struct {
	// BaseType is empty when the bean's own type is generic (spec §4.7,
	// the "GenericBean (soft)" case): the descriptor is still emitted,
	// but excluded from type-keyed lookups.
	BaseType string

	// AssignableTypes always starts with BaseType (when set), followed
	// by each non-generic superclass-chain hop (here: embedded-field
	// hop) nearest to furthest, plus any interface the bean structurally
	// satisfies.
	AssignableTypes []string

	ImplicitQualifier string // empty if none inferred

	Constructor *ConstructorPoint // nil only if generation should fail

	InjectFields  []FieldPoint  // base-to-derived order
	InjectMethods []MethodPoint // base-to-derived order

	FactoryMethods []MethodPoint

	PostConstruct string // method name, empty if none
	PreDestroy    string // method name, empty if none

	// Priority-related annotations recognized on the bean type itself.
	Primary   bool
	Secondary bool
	Singleton bool
	Priority  *int // value of @Priority(n), nil if not annotated

	// Annotations lists the recognized type-level annotation keywords
	// found on this bean's declaration (e.g. "bean", "factory"),
	// carried through to dinject.Entry.Annotations for
	// Scope.BeansWithAnnotation lookups.
	Annotations []string
}
