package classkit

import (
	"fmt"
	"reflect"
	"strings"
)

// Params returns the current parameter mapping for the instance; parameters
// without a resolvable value map to Missing. Requires descent from Base.
func (in *Instance) Params() (map[string]any, error) {
	if err := in.requireConvenience("params"); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(in.class.meta.params))
	for _, name := range in.class.meta.sortedKeys {
		v, err := in.Get(name)
		if err != nil {
			v = Missing
		}
		out[name] = v
	}
	return out, nil
}

// MissingParams returns the sorted parameter names whose current resolved
// value is the Missing sentinel. Requires descent from Base.
func (in *Instance) MissingParams() ([]string, error) {
	if err := in.requireConvenience("missing_params"); err != nil {
		return nil, err
	}
	var out []string
	for _, name := range in.class.meta.sortedKeys {
		v, err := in.Get(name)
		if err != nil || IsMissing(v) {
			out = append(out, name)
		}
	}
	return out, nil
}

// SetParams assigns multiple parameter values at once. The whole batch is
// rejected with no partial effect when any key is not a registered
// parameter. Requires descent from Base.
func (in *Instance) SetParams(params KV) error {
	if err := in.requireConvenience("set_params"); err != nil {
		return err
	}
	if err := validateParamKeys(in.class, params); err != nil {
		return err
	}
	for _, name := range sortedKeys(params) {
		if err := in.Set(name, params[name]); err != nil {
			return err
		}
	}
	return nil
}

// String renders the instance as Name(a=1, b=?), showing parameters that are
// missing or differ from their live class default.
func (in *Instance) String() string {
	meta := in.class.meta
	parts := []string{}
	for _, name := range meta.sortedKeys {
		def, hasDefault := in.class.lookup(name)
		cur, err := in.Get(name)
		if err != nil {
			cur = Missing
		}
		if hasDefault && !IsMissing(cur) && reflect.DeepEqual(cur, def) {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", name, cur))
	}
	return fmt.Sprintf("%s(%s)", in.class.name, strings.Join(parts, ", "))
}

func (in *Instance) requireConvenience(op string) error {
	if IsParamClass(in.class, false) {
		return nil
	}
	iss := unknownAttrIssue(in.class.name, op)
	iss.Hint = "the convenience layer requires descent from Base, not just RawBase"
	return Issues{iss}
}
