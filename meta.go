package classkit

import "sort"

// ImplAttr is the reserved attribute name exposing the Meta record on any
// participating class. The constructor always owns this slot; it can never
// be bound or protected by user code.
const ImplAttr = "__classkit_impl_"

// Meta is the per-class immutable metadata record: parameter annotations and
// protected-attribute ownership. It is built once, atomically, when class
// construction completes. Parameter defaults are not duplicated here; they
// are read live from the class attributes.
type Meta struct {
	params     map[string]any    // parameter name -> declared annotation
	protected  map[string]*Class // protected name -> owner (nil = root)
	sortedKeys []string          // cached sorted parameter names
}

func newMeta(params map[string]any, protected map[string]*Class) *Meta {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &Meta{params: params, protected: protected, sortedKeys: keys}
}

// Params returns a copy of the parameter-name -> annotation mapping.
func (m *Meta) Params() map[string]any {
	out := make(map[string]any, len(m.params))
	for k, v := range m.params {
		out[k] = v
	}
	return out
}

// ParamNames returns the registered parameter names in sorted order.
func (m *Meta) ParamNames() []string {
	out := make([]string, len(m.sortedKeys))
	copy(out, m.sortedKeys)
	return out
}

// IsParam reports whether name is a registered parameter.
func (m *Meta) IsParam(name string) bool {
	_, ok := m.params[name]
	return ok
}

// Annotation returns the declared annotation for a parameter name.
func (m *Meta) Annotation(name string) (any, bool) {
	a, ok := m.params[name]
	return a, ok
}

// Protected returns a copy of the protected-name -> owner mapping. A nil
// owner denotes root protection by the constructor.
func (m *Meta) Protected() map[string]*Class {
	out := make(map[string]*Class, len(m.protected))
	for k, v := range m.protected {
		out[k] = v
	}
	return out
}

// Owner returns the class that protects name, if any. The boolean reports
// whether the name is protected at all; the owner is nil for root protection.
func (m *Meta) Owner(name string) (*Class, bool) {
	o, ok := m.protected[name]
	return o, ok
}
