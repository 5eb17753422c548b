// Package jsonschema projects a participating class's parameter registry
// into a JSON Schema document.
package jsonschema

import (
	js "github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	classkit "github.com/reoring/classkit"
)

// FromClass builds an object schema with one property per registered
// parameter. String annotations from the classfile vocabulary map straight
// to JSON Schema types; live class defaults become property defaults;
// parameters without a resolvable default are required.
func FromClass(c *classkit.Class) (*js.Schema, error) {
	meta := c.Meta()
	if meta == nil {
		return nil, classkit.Issues{{
			Class:   c.Name(),
			Code:    classkit.CodeInvalidType,
			Message: "not a participating class",
		}}
	}

	schema := &js.Schema{
		Type:                 "object",
		Title:                c.Name(),
		Properties:           orderedmap.New[string, *js.Schema](),
		AdditionalProperties: js.FalseSchema,
	}
	for _, name := range meta.ParamNames() {
		prop := &js.Schema{}
		if annot, ok := meta.Annotation(name); ok {
			if t, ok := annot.(string); ok && t != "any" && t != "" {
				prop.Type = t
			}
		}
		def, err := c.Get(name)
		if err != nil || classkit.IsMissing(def) {
			schema.Required = append(schema.Required, name)
		} else if marshalable(def) {
			prop.Default = def
		}
		schema.Properties.Set(name, prop)
	}
	return schema, nil
}

// marshalable filters defaults that have no JSON rendering (functions,
// descriptors and the like stay library-side).
func marshalable(v any) bool {
	switch v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64,
		[]any, map[string]any:
		return true
	}
	return false
}
