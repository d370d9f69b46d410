package dinject

import "fmt"

// GetAs resolves and type-asserts a bean by its registered type name,
// the generic-friendly form of Scope.Get — Go has no runtime generic
// dispatch on a type parameter's name the way the original's get<T>
// infers T from a reified Class<T>, so callers pass typeName explicitly
// (it must match the name the generator recorded in AssignableTypes).
func GetAs[T any](s *Scope, typeName, qualifier string) (T, error) {
	var zero T
	raw, err := s.Get(typeName, qualifier)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("dinject: bean registered as %q did not assert to the requested type", typeName)
	}
	return v, nil
}

// ResolveAs is the Builder.Resolve counterpart of GetAs, used by
// generated constructors to fetch a typed dependency mid-registration.
func ResolveAs[T any](b *Builder, typeName, qualifier string) (T, error) {
	var zero T
	raw, err := b.Resolve(typeName, qualifier)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("dinject: bean registered as %q did not assert to the requested type", typeName)
	}
	return v, nil
}

// ListAs is the generic-friendly counterpart of Scope.List.
func ListAs[T any](s *Scope, typeName string) ([]T, error) {
	raw := s.List(typeName)
	out := make([]T, 0, len(raw))
	for _, r := range raw {
		v, ok := r.(T)
		if !ok {
			return nil, fmt.Errorf("dinject: bean registered as %q did not assert to the requested type", typeName)
		}
		out = append(out, v)
	}
	return out, nil
}
