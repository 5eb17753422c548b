package classkit

// Instance is a per-object attribute namespace under interceptor control.
type Instance struct {
	class *Class
	dict  map[string]any
}

// Class returns the instance's class.
func (in *Instance) Class() *Class { return in.class }

// Dict exposes the raw instance storage. Mutating it bypasses every
// protection and parameter guarantee; stray entries for protected names are
// purged on the next read. This is the documented "breaking the protection"
// escape hatch, not part of the supported surface.
func (in *Instance) Dict() map[string]any { return in.dict }

// Get resolves an attribute on the instance. Parameters resolve by direct
// storage lookup (instance storage first, then the class chain), bypassing
// the descriptor protocol; other names follow standard resolution with data
// descriptors taking precedence over instance storage.
func (in *Instance) Get(name string) (any, error) {
	cls := in.class
	if name == ImplAttr {
		return cls.meta, nil
	}

	// Self-heal: a protected name can only enter instance storage through
	// low-level bypass. Purge it before resolving.
	if _, stray := in.dict[name]; stray {
		if _, prot := cls.meta.Owner(name); prot {
			delete(in.dict, name)
		}
	}

	if cls.meta.IsParam(name) {
		if v, ok := in.dict[name]; ok {
			return v, nil
		}
		if v, ok := cls.lookup(name); ok {
			return v, nil
		}
		return nil, Issues{unknownAttrIssue(cls.name, name)}
	}

	classVal, _, found := cls.lookupHolder(name)
	if found && isDataDescriptor(classVal) {
		if d, ok := classVal.(Descriptor); ok {
			return d.Get(in)
		}
	}
	if v, ok := in.dict[name]; ok {
		return v, nil
	}
	if found {
		if d, ok := classVal.(Descriptor); ok {
			return d.Get(in)
		}
		return classVal, nil
	}
	return nil, Issues{unknownAttrIssue(cls.name, name)}
}

// Set binds an attribute on the instance. Protected names are rejected;
// parameter assignment fires the pre-set hook and writes raw storage,
// bypassing data descriptors; other names follow standard assignment.
func (in *Instance) Set(name string, val any) error {
	cls := in.class
	if owner, ok := cls.meta.Owner(name); ok {
		return Issues{protectedIssue(cls.name, name, owner)}
	}
	val, wasProtected := unprotect(val)
	if IsMissing(val) {
		return Issues{issueAt(cls.name, name, CodeMissingValue, nil)}
	}
	if wasProtected {
		warnf(cls.name, name, "cannot protect attribute on instance assignment, ignored")
	}

	if cls.meta.IsParam(name) {
		if raw, ok := cls.lookup(AttrParamHook); ok {
			if hook, ok := raw.(ParamHook); ok {
				if err := hook(in, name, val); err != nil {
					return err
				}
			}
		}
		in.dict[name] = val
		return nil
	}

	if classVal, ok := cls.lookup(name); ok {
		if s, ok := classVal.(Setter); ok {
			return s.Set(in, val)
		}
	}
	in.dict[name] = val
	return nil
}

// Delete removes an attribute from the instance. Parameters delete raw
// instance storage, bypassing data descriptors.
func (in *Instance) Delete(name string) error {
	cls := in.class
	if owner, ok := cls.meta.Owner(name); ok {
		return Issues{protectedIssue(cls.name, name, owner)}
	}

	if cls.meta.IsParam(name) {
		if _, ok := in.dict[name]; !ok {
			return Issues{unknownAttrIssue(cls.name, name)}
		}
		delete(in.dict, name)
		return nil
	}

	if classVal, ok := cls.lookup(name); ok {
		if d, ok := classVal.(Deleter); ok {
			return d.Delete(in)
		}
	}
	if _, ok := in.dict[name]; !ok {
		return Issues{unknownAttrIssue(cls.name, name)}
	}
	delete(in.dict, name)
	return nil
}
