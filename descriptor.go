package classkit

// Descriptor is the computed-attribute protocol. A class attribute whose
// value implements Descriptor is invoked on standard attribute resolution.
// Parameter access never invokes it: parameters bypass the descriptor
// protocol and expose the raw stored value instead.
type Descriptor interface {
	// Get resolves the computed value for the given target, which is the
	// *Class itself for class-level access or the *Instance otherwise.
	Get(target any) (any, error)
}

// Setter is implemented by data descriptors that intercept assignment.
// A Descriptor with Setter takes precedence over instance storage on
// standard resolution, matching the usual precedence rules.
type Setter interface {
	Set(target any, val any) error
}

// Deleter is implemented by data descriptors that intercept deletion.
type Deleter interface {
	Delete(target any) error
}

// isDataDescriptor reports whether v intercepts set or delete.
func isDataDescriptor(v any) bool {
	if _, ok := v.(Setter); ok {
		return true
	}
	_, ok := v.(Deleter)
	return ok
}
