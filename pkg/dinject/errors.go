package dinject

import "fmt"

// ErrorKind tags the runtime failure modes a Scope can raise, mirroring
// Toyz-axon/internal/errors/types.go's ErrorCode enum but scoped to the
// bean-scope resolution ladder and generation-time constructor/priority
// failures named in spec.md §7.
type ErrorKind int

const (
	UnknownErrorKind ErrorKind = iota
	NoConstructor
	GenericBean
	MultiplePrimary
	MultipleNormal
	MultipleSecondary
	PriorityAnnotationMalformed
	NotFound
)

func (k ErrorKind) String() string {
	switch k {
	case NoConstructor:
		return "NoConstructor"
	case GenericBean:
		return "GenericBean"
	case MultiplePrimary:
		return "MultiplePrimary"
	case MultipleNormal:
		return "MultipleNormal"
	case MultipleSecondary:
		return "MultipleSecondary"
	case PriorityAnnotationMalformed:
		return "PriorityAnnotationMalformed"
	case NotFound:
		return "NotFound"
	default:
		return "UnknownError"
	}
}

// ScopeError is the single error type raised by the resolution ladder
// shared by Scope and Builder. Kind identifies which of spec.md §7's
// named failure modes occurred; Type and Qualifier identify which lookup
// triggered it. Only NotFound and the Multiple* kinds are raised in this
// package; NoConstructor, GenericBean and PriorityAnnotationMalformed
// are defined but nothing constructs them.
type ScopeError struct {
	Kind      ErrorKind
	Type      string
	Qualifier string
	Detail    string
}

func (e *ScopeError) Error() string {
	q := e.Qualifier
	if q == "" {
		q = "<none>"
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: type=%s qualifier=%s: %s", e.Kind, e.Type, q, e.Detail)
	}
	return fmt.Sprintf("%s: type=%s qualifier=%s", e.Kind, e.Type, q)
}

// Is supports errors.Is(err, &ScopeError{Kind: X}) comparisons by kind
// alone, letting callers check "was this an ambiguity error" without
// matching the exact type/qualifier.
func (e *ScopeError) Is(target error) bool {
	other, ok := target.(*ScopeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newAmbiguousError(kind ErrorKind, typeName, qualifier string) *ScopeError {
	return &ScopeError{Kind: kind, Type: typeName, Qualifier: qualifier}
}

func newNotFoundError(typeName, qualifier string) *ScopeError {
	return &ScopeError{Kind: NotFound, Type: typeName, Qualifier: qualifier}
}
