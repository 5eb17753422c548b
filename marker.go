package classkit

// missingType is the type of the Missing sentinel.
type missingType struct{ repr string }

func (m missingType) String() string { return m.repr }

// Missing is the unique sentinel denoting "parameter declared but never
// assigned". Assigning it to any attribute is rejected.
var Missing = missingType{"?"}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool { return v == Missing }

// Protected wraps a value bound in a class body to request protection for
// its name. Once protected, the name can never be rebound by any subclass.
// Protection is consumed at construction time; the marker is never observed
// by runtime code afterwards.
type Protected struct{ val any }

// Protect makes a class-body binding read-only, including in subclasses.
// Protection does not apply to annotations.
func Protect(val any) Protected { return Protected{val: val} }

// unprotect unwraps a protected value, recursively if needed.
func unprotect(val any) (any, bool) {
	p, ok := val.(Protected)
	if !ok {
		return val, false
	}
	inner, _ := unprotect(p.val)
	return inner, true
}

// AbstractMarker declares an abstract member when bound to a name in a class
// body. A class with unresolved abstract members cannot be instantiated.
type AbstractMarker struct{}

// Abstract returns the abstract-member marker.
func Abstract() AbstractMarker { return AbstractMarker{} }
