package classkit

import (
	"strings"

	"github.com/reoring/classkit/internal/c3"
)

// Body is a declared class body: name -> value bindings plus name -> type
// annotations. Every annotated name becomes a parameter.
type Body struct {
	Attrs map[string]any
	Annot map[string]any
}

// Construct builds a participating class from an ordered ancestor list and a
// declared body. It linearizes the ancestors, merges their protection
// metadata, rejects conflicting redefinitions, unwraps Protect markers and
// attaches the immutable Meta record. On failure no class is produced.
func Construct(name string, bases []*Class, body Body) (*Class, error) {
	cls := &Class{
		name:      name,
		bases:     append([]*Class(nil), bases...),
		attrs:     map[string]any{},
		abstracts: map[string]struct{}{},
	}

	mro, err := c3.Linearize(cls, func(c *Class) []*Class { return c.bases })
	if err != nil {
		return nil, Issues{issueAt(name, "", CodeLinearizeError, nil)}
	}
	cls.mro = mro
	if err := checkAncestorOrder(name, mro); err != nil {
		return nil, err
	}

	// Ancestor metadata: parameters and protection.
	params := map[string]any{}
	protected := map[string]*Class{ImplAttr: nil}
	for i := len(bases) - 1; i >= 0; i-- {
		base := bases[i]
		if base.meta != nil {
			for k, v := range base.meta.params {
				params[k] = v
			}
			if err := mergeProtected(name, protected, base.meta.protected); err != nil {
				return nil, err
			}
		}
		// A base redefining a name protected by a different owner is the
		// order-sensitive half of the conflict check.
		for attr := range base.attrs {
			if attr == ImplAttr {
				continue
			}
			if owner, ok := protected[attr]; ok && owner != base {
				return nil, Issues{conflictIssue(name, attr, base, owner)}
			}
		}
	}

	// Body bindings: enforce protection, unwrap markers, record abstracts.
	protectedNew := []string{}
	for _, attr := range sortedAttrNames(body.Attrs) {
		if isReservedName(attr) {
			return nil, Issues{issueAt(name, attr, CodeReservedAttribute, nil)}
		}
		if owner, ok := protected[attr]; ok {
			return nil, Issues{protectedIssue(name, attr, owner)}
		}
		val, wasProtected := unprotect(body.Attrs[attr])
		if IsMissing(val) {
			return nil, Issues{issueAt(name, attr, CodeMissingValue, nil)}
		}
		if _, abstract := val.(AbstractMarker); abstract {
			if wasProtected {
				iss := issueAt(name, attr, CodeInvalidParam, nil)
				iss.Hint = "an abstract member cannot be protected; subclasses must be able to bind it"
				return nil, Issues{iss}
			}
			cls.abstracts[attr] = struct{}{}
			continue
		}
		cls.attrs[attr] = val
		if wasProtected {
			protectedNew = append(protectedNew, attr)
		}
	}

	// Annotations: collect new parameters. A fresh annotation on an inherited
	// name updates the record (last declaring class wins).
	for _, attr := range sortedAttrNames(body.Annot) {
		if owner, ok := protected[attr]; ok {
			return nil, Issues{protectedIssue(name, attr, owner)}
		}
		if isReservedName(attr) {
			return nil, Issues{issueAt(name, attr, CodeInvalidParam, nil)}
		}
		params[attr] = body.Annot[attr]
	}

	for _, attr := range protectedNew {
		protected[attr] = cls
	}
	cls.meta = newMeta(params, protected)
	return cls, nil
}

// MustConstruct is like Construct but panics on error.
func MustConstruct(name string, bases []*Class, body Body) *Class {
	c, err := Construct(name, bases, body)
	if err != nil {
		panic(err)
	}
	return c
}

// Plain builds a non-participating class: no Meta record, no protection, no
// interception beyond vanilla storage semantics. Plain classes may appear as
// ancestors of participating classes only behind every participating one.
func Plain(name string, bases []*Class, attrs map[string]any) (*Class, error) {
	cls := &Class{
		name:      name,
		bases:     append([]*Class(nil), bases...),
		attrs:     map[string]any{},
		abstracts: map[string]struct{}{},
	}
	for k, v := range attrs {
		cls.attrs[k] = v
	}
	mro, err := c3.Linearize(cls, func(c *Class) []*Class { return c.bases })
	if err != nil {
		return nil, Issues{issueAt(name, "", CodeLinearizeError, nil)}
	}
	cls.mro = mro
	return cls, nil
}

// checkAncestorOrder fails when a non-participating ancestor would be
// linearized ahead of a participating one, which would let it shadow the
// protection-aware lookup chain.
func checkAncestorOrder(name string, mro []*Class) error {
	plainSeen := false
	for _, a := range mro[1:] {
		if a.participating() {
			if plainSeen {
				return Issues{issueAt(name, "", CodeLinearizeError, nil)}
			}
			continue
		}
		plainSeen = true
	}
	return nil
}

// mergeProtected updates dst with upd, verifying consistent shared keys.
func mergeProtected(class string, dst map[string]*Class, upd map[string]*Class) error {
	for attr, owner := range upd {
		prev, ok := dst[attr]
		if !ok {
			dst[attr] = owner
			continue
		}
		if prev != owner {
			return Issues{conflictIssue(class, attr, owner, prev)}
		}
	}
	return nil
}

func sortedAttrNames(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sortStrings(out)
	return out
}

// isReservedName matches the reserved slot and any name of the same
// "__name__"-delimited shape, which is kept off-limits for forward
// compatibility of the metadata surface.
func isReservedName(attr string) bool {
	if attr == ImplAttr {
		return true
	}
	return strings.HasPrefix(attr, "__") && strings.HasSuffix(attr, "__") && len(attr) > 4
}
