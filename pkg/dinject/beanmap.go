package dinject

import "sync"

// beanKey is the (type, qualifier) pair a BeanMap indexes candidates
// under, per spec.md §4.5.
type beanKey struct {
	typeName  string
	qualifier string
}

// BeanMap is the runtime index of every registered Entry, keyed both by
// (type, qualifier) and by annotation name. It is read-only after
// construction — every write happens through Builder.Register, before
// Builder.Build — matching spec.md §5 ("the BeanMap is read-only after
// construction"). Lookups still take the read lock, since
// Builder.Resolve reads the map while registration is under way.
// Grounded on
// arpabet-beans/registry.go's dual byName/byType map shape, generalized
// to the (type, qualifier) composite key spec.md names, plus
// Toyz-axon/internal/registry's Register/Get/List surface.
type BeanMap struct {
	mu          sync.RWMutex
	byKey       map[beanKey][]*Entry
	byAnnotation map[string][]*Entry
	insertOrder []*Entry
}

// NewBeanMap constructs an empty BeanMap.
func NewBeanMap() *BeanMap {
	return &BeanMap{
		byKey:        make(map[beanKey][]*Entry),
		byAnnotation: make(map[string][]*Entry),
	}
}

// Register indexes entry under every element of its AssignableTypes —
// once with no qualifier and, if entry.Qualifier is set, once more with
// it — and under each of its Annotations. Per spec.md §4.5.
func (b *BeanMap) Register(entry *Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.insertOrder = append(b.insertOrder, entry)
	for _, typeName := range entry.AssignableTypes {
		b.byKey[beanKey{typeName, ""}] = append(b.byKey[beanKey{typeName, ""}], entry)
		if entry.Qualifier != "" {
			b.byKey[beanKey{typeName, entry.Qualifier}] = append(b.byKey[beanKey{typeName, entry.Qualifier}], entry)
		}
	}
	for _, a := range entry.Annotations {
		b.byAnnotation[a] = append(b.byAnnotation[a], entry)
	}
}

// Candidates returns every entry registered under (typeName, qualifier),
// or under (typeName, "") when qualifier is empty.
func (b *BeanMap) Candidates(typeName, qualifier string) []*Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*Entry(nil), b.byKey[beanKey{typeName, qualifier}]...)
}

// All returns every entry assignable to typeName, in insertion order.
func (b *BeanMap) All(typeName string) []*Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*Entry
	for _, e := range b.insertOrder {
		if e.assignableTo(typeName) {
			out = append(out, e)
		}
	}
	return out
}

// WithAnnotation returns every entry carrying the named annotation, in
// insertion order.
func (b *BeanMap) WithAnnotation(name string) []*Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*Entry(nil), b.byAnnotation[name]...)
}
