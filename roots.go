package classkit

// RawBase is the minimal participating root: construction protocol,
// protection and parameter semantics, but no convenience layer.
var RawBase = MustConstruct("RawBase", nil, Body{})

// Base is the full-featured participating root. Classes descending from it
// additionally expose the convenience layer (Params, MissingParams,
// SetParams, String rendering).
var Base = MustConstruct("Base", []*Class{RawBase}, Body{})

// IsParamClass reports whether c was built through the construction
// protocol. With raw true, descending from RawBase is enough; otherwise c
// must descend from Base to count as full-featured.
func IsParamClass(c *Class, raw bool) bool {
	if c == nil || !c.participating() {
		return false
	}
	root := Base
	if raw {
		root = RawBase
	}
	for _, a := range c.mro {
		if a == root {
			return true
		}
	}
	return false
}
