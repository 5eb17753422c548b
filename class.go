package classkit

// KV carries keyword parameter values for instantiation and bulk updates.
type KV map[string]any

// ParamHook is the signature of the pre-assignment callback. A class body
// may bind one under AttrParamHook; it runs with the pre-assignment object
// state before every successful parameter set. A non-nil error aborts the
// single assignment.
type ParamHook func(self *Instance, name string, future any) error

// PostInitFunc is the signature of the post-initialization hook bound under
// AttrPostInit. It runs after construction-time parameter assignment.
type PostInitFunc func(self *Instance, args ...any) error

// Well-known hook attribute names.
const (
	AttrParamHook = "on_param_will_be_set"
	AttrPostInit  = "post_init"
)

// Class is a class object. Participating classes (built by Construct) carry
// a Meta record and route every attribute access through the interceptor;
// plain classes (built by Plain) behave vanilla.
type Class struct {
	name      string
	bases     []*Class
	mro       []*Class
	attrs     map[string]any
	abstracts map[string]struct{}
	meta      *Meta // nil for plain classes
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// Bases returns a copy of the direct ancestor list.
func (c *Class) Bases() []*Class {
	out := make([]*Class, len(c.bases))
	copy(out, c.bases)
	return out
}

// MRO returns a copy of the linearized ancestor chain, starting with the
// class itself.
func (c *Class) MRO() []*Class {
	out := make([]*Class, len(c.mro))
	copy(out, c.mro)
	return out
}

// Meta returns the metadata record, or nil for plain classes.
func (c *Class) Meta() *Meta { return c.meta }

// IsSubclassOf reports whether other appears in the linearized chain.
func (c *Class) IsSubclassOf(other *Class) bool {
	for _, a := range c.mro {
		if a == other {
			return true
		}
	}
	return false
}

// participating reports whether the class was built by Construct.
func (c *Class) participating() bool { return c.meta != nil }

// Get resolves an attribute on the class object. Parameters resolve by
// direct storage lookup over the linearized chain, bypassing the descriptor
// protocol; other names honor it.
func (c *Class) Get(name string) (any, error) {
	if name == ImplAttr {
		if c.meta == nil {
			return nil, Issues{unknownAttrIssue(c.name, name)}
		}
		return c.meta, nil
	}
	raw, ok := c.lookup(name)
	if !ok {
		return nil, Issues{unknownAttrIssue(c.name, name)}
	}
	if c.meta != nil && c.meta.IsParam(name) {
		return raw, nil
	}
	if d, isDesc := raw.(Descriptor); isDesc {
		return d.Get(c)
	}
	return raw, nil
}

// Set binds an attribute on the class object. Protected names are rejected;
// a Protect-wrapped value is assigned unwrapped with a warning, since
// protection cannot be retrofitted after class construction.
func (c *Class) Set(name string, val any) error {
	if name == ImplAttr {
		return Issues{protectedIssue(c.name, name, nil)}
	}
	if c.meta != nil {
		if owner, ok := c.meta.Owner(name); ok {
			return Issues{protectedIssue(c.name, name, owner)}
		}
	}
	val, wasProtected := unprotect(val)
	if IsMissing(val) {
		return Issues{issueAt(c.name, name, CodeMissingValue, nil)}
	}
	if wasProtected {
		warnf(c.name, name, "cannot protect attribute after class creation, ignored")
	}
	c.attrs[name] = val
	delete(c.abstracts, name)
	return nil
}

// Delete removes an attribute from the class's own storage.
func (c *Class) Delete(name string) error {
	if name == ImplAttr {
		return Issues{protectedIssue(c.name, name, nil)}
	}
	if c.meta != nil {
		if owner, ok := c.meta.Owner(name); ok {
			return Issues{protectedIssue(c.name, name, owner)}
		}
	}
	if _, ok := c.attrs[name]; !ok {
		return Issues{unknownAttrIssue(c.name, name)}
	}
	delete(c.attrs, name)
	return nil
}

// lookup walks the linearized chain and returns the first raw storage hit.
func (c *Class) lookup(name string) (any, bool) {
	for _, a := range c.mro {
		if v, ok := a.attrs[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// lookupHolder is like lookup but also reports the declaring class.
func (c *Class) lookupHolder(name string) (any, *Class, bool) {
	for _, a := range c.mro {
		if v, ok := a.attrs[name]; ok {
			return v, a, true
		}
	}
	return nil, nil, false
}

// unresolvedAbstracts returns the sorted abstract member names whose nearest
// definition in the chain is still the abstract declaration.
func (c *Class) unresolvedAbstracts() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, a := range c.mro {
		for name := range a.abstracts {
			if _, done := seen[name]; done {
				continue
			}
			seen[name] = struct{}{}
			if !c.resolvesAbstract(name, a) {
				out = append(out, name)
			}
		}
	}
	sortStrings(out)
	return out
}

// resolvesAbstract reports whether some class ahead of decl in the chain
// provides a concrete value for name.
func (c *Class) resolvesAbstract(name string, decl *Class) bool {
	for _, a := range c.mro {
		if a == decl {
			return false
		}
		if _, ok := a.attrs[name]; ok {
			return true
		}
	}
	return false
}

// New instantiates the class. Keyword parameter values are validated as a
// batch (no partial effect on invalid keys), assigned through the
// interceptor (firing the pre-set hook), then the post-init hook runs with
// postArgs. Classes with unresolved abstract members cannot be instantiated.
func (c *Class) New(params KV, postArgs ...any) (*Instance, error) {
	if c.meta == nil {
		return nil, Issues{issueAt(c.name, "", CodeInvalidType, map[string]string{
			"type": "plain class is not instantiable through the construction protocol",
		})}
	}
	if names := c.unresolvedAbstracts(); len(names) > 0 {
		return nil, Issues{issueAt(c.name, "", CodeAbstractClass, map[string]string{
			"names": joinQuoted(names),
		})}
	}
	if err := validateParamKeys(c, params); err != nil {
		return nil, err
	}
	in := &Instance{class: c, dict: map[string]any{}}
	for _, name := range sortedKeys(params) {
		if err := in.Set(name, params[name]); err != nil {
			return nil, err
		}
	}
	if raw, ok := c.lookup(AttrPostInit); ok {
		if fn, ok := raw.(PostInitFunc); ok {
			if err := fn(in, postArgs...); err != nil {
				return nil, err
			}
		}
	}
	return in, nil
}

// validateParamKeys rejects the whole batch when any key is not a registered
// parameter.
func validateParamKeys(c *Class, params KV) error {
	var wrong []string
	for name := range params {
		if !c.meta.IsParam(name) {
			wrong = append(wrong, name)
		}
	}
	if len(wrong) == 0 {
		return nil
	}
	sortStrings(wrong)
	return Issues{issueAt(c.name, "", CodeUnknownParam, map[string]string{
		"names": joinQuoted(wrong),
	})}
}
