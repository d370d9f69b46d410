package dinject

// Priority is a bean's precedence class in the resolution ladder (spec
// §4.6), distinct from the numeric @Priority(n) annotation value used by
// ListByPriority.
type Priority int

const (
	Normal Priority = iota
	Primary
	Secondary
	Supplied
)

func (p Priority) String() string {
	switch p {
	case Primary:
		return "primary"
	case Secondary:
		return "secondary"
	case Supplied:
		return "supplied"
	default:
		return "normal"
	}
}

// defaultPriorityValue is the numeric priority ListByPriority assigns a
// bean that carries no explicit @Priority(n) annotation (spec.md §4.6).
const defaultPriorityValue = 5000

// Entry is one registered bean: its instance, its resolution-ladder
// priority class, its optional qualifier, the full set of type names it
// is assignable to, the annotation names it carries (consulted by
// BeansWithAnnotation), and its optional numeric priority value and
// lifecycle hooks. Mirrors spec.md §3's CandidateEntry / BeanEntry.
type Entry struct {
	Instance        any
	PriorityClass   Priority
	Qualifier       string
	AssignableTypes []string
	Annotations     []string

	// PriorityValue is the @Priority(n) value, nil if not annotated —
	// ListByPriority substitutes defaultPriorityValue in that case.
	PriorityValue *int

	// PostConstruct and PreDestroy are nil when the bean declares no
	// corresponding lifecycle hook.
	PostConstruct func() error
	PreDestroy    func() error
}

// priorityValueOrDefault returns the entry's numeric priority, or
// defaultPriorityValue if it declares none.
func (e Entry) priorityValueOrDefault() int {
	if e.PriorityValue == nil {
		return defaultPriorityValue
	}
	return *e.PriorityValue
}

// hasAnnotation reports whether the entry carries the named annotation.
func (e Entry) hasAnnotation(name string) bool {
	for _, a := range e.Annotations {
		if a == name {
			return true
		}
	}
	return false
}

// assignableTo reports whether the entry is assignable to typeName.
func (e Entry) assignableTo(typeName string) bool {
	for _, t := range e.AssignableTypes {
		if t == typeName {
			return true
		}
	}
	return false
}
