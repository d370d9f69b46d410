package dinject

// Builder assembles a Scope from the entries the generated
// autogen_module.go Register function (or a hand-written main) provides,
// per spec.md §6's "Builder → Scope contract".
type Builder struct {
	beans     *BeanMap
	lifecycle []*Entry
}

// NewBuilder constructs an empty Builder.
func NewBuilder() *Builder {
	return &Builder{beans: NewBeanMap()}
}

// Register adds entry to the scope being built.
func (b *Builder) Register(entry *Entry) {
	b.beans.Register(entry)
}

// RegisterLifecycle adds entry to the ordered lifecycle list consulted
// by Start/Close, in addition to whatever Register already did for it.
// Generated code calls both for any bean declaring a PostConstruct or
// PreDestroy hook.
func (b *Builder) RegisterLifecycle(entry *Entry) {
	b.lifecycle = append(b.lifecycle, entry)
}

// Resolve looks up an already-registered bean by typeName and qualifier
// using the same Supplied → Primary → Normal → Secondary ladder as
// Scope.Get. Generated autogen_module.go Register functions call this
// to obtain a dependency that another package's Register call already
// built. The generator orders beans only within one package, so the
// caller must run the packages' Register functions dependencies-first.
func (b *Builder) Resolve(typeName, qualifier string) (any, error) {
	entry, err := resolveFromMap(b.beans, typeName, qualifier)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, newNotFoundError(typeName, qualifier)
	}
	return entry.Instance, nil
}

// Build finalizes the Scope. After Build, the BeanMap is read-only.
func (b *Builder) Build() *Scope {
	return newScope(b.beans, b.lifecycle)
}
