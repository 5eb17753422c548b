package classfile

import (
	"os"
	"path/filepath"
	"strings"

	classkit "github.com/reoring/classkit"
)

// Registry holds the classes constructed from one document, in declaration
// order.
type Registry struct {
	classes map[string]*classkit.Class
	order   []string
}

// Get returns the class registered under name.
func (r *Registry) Get(name string) (*classkit.Class, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// Names returns the registered class names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered classes.
func (r *Registry) Len() int { return len(r.order) }

// Load decodes a document and constructs every declared class in order.
func Load(data []byte, format Format) (*Registry, error) {
	doc, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	return Build(doc)
}

// LoadFile is Load with the format chosen by file extension (.yaml/.yml,
// .json, .toml).
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classkit.Issues{{
			Code:    classkit.CodeParseError,
			Message: "cannot read classfile",
			Hint:    err.Error(),
		}}
	}
	return Load(data, formatForPath(path))
}

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON
	case ".toml":
		return TOML
	default:
		return YAML
	}
}

// Build constructs the document's classes. Failure on any entry aborts the
// whole load; no partial registry is returned.
func Build(doc *Document) (*Registry, error) {
	reg := &Registry{classes: map[string]*classkit.Class{}}
	for _, def := range doc.Classes {
		if def.Name == "" {
			return nil, classkit.Issues{{
				Code:    classkit.CodeParseError,
				Message: "class entry without a name",
			}}
		}
		if _, dup := reg.classes[def.Name]; dup {
			return nil, classkit.Issues{{
				Class:   def.Name,
				Code:    classkit.CodeDuplicateClass,
				Message: "duplicate class " + def.Name,
			}}
		}
		cls, err := buildClass(reg, def)
		if err != nil {
			return nil, err
		}
		reg.classes[def.Name] = cls
		reg.order = append(reg.order, def.Name)
	}
	return reg, nil
}

func buildClass(reg *Registry, def ClassDef) (*classkit.Class, error) {
	bases, err := resolveBases(reg, def)
	if err != nil {
		return nil, err
	}

	body := classkit.Body{Attrs: map[string]any{}, Annot: map[string]any{}}
	for k, v := range def.Attrs {
		body.Attrs[k] = v
	}
	for _, p := range def.Params {
		if _, ok := knownTypes[p.Type]; !ok {
			return nil, classkit.Issues{{
				Class:   def.Name,
				Attr:    p.Name,
				Code:    classkit.CodeInvalidType,
				Message: "invalid parameter type: " + p.Type,
				Hint:    "one of string, number, integer, boolean, object, array, any",
			}}
		}
		body.Annot[p.Name] = p.Type
		switch {
		case p.Abstract:
			body.Attrs[p.Name] = classkit.Abstract()
		case p.Default != nil && p.Protected:
			body.Attrs[p.Name] = classkit.Protect(p.Default)
		case p.Default != nil:
			body.Attrs[p.Name] = p.Default
		case p.Protected:
			return nil, classkit.Issues{{
				Class: def.Name,
				Attr:  p.Name,
				Code:  classkit.CodeInvalidParam,
				Hint:  "a protected parameter needs a default; protection applies to the bound value",
			}}
		}
	}
	for _, name := range def.Protect {
		v, ok := body.Attrs[name]
		if !ok {
			return nil, classkit.Issues{{
				Class:   def.Name,
				Attr:    name,
				Code:    classkit.CodeUnknownAttribute,
				Message: "protect names an attribute the entry does not bind: " + name,
			}}
		}
		body.Attrs[name] = classkit.Protect(v)
	}

	return classkit.Construct(def.Name, bases, body)
}

func resolveBases(reg *Registry, def ClassDef) ([]*classkit.Class, error) {
	if len(def.Bases) == 0 {
		return []*classkit.Class{classkit.Base}, nil
	}
	out := make([]*classkit.Class, 0, len(def.Bases))
	for _, name := range def.Bases {
		switch name {
		case "Base":
			out = append(out, classkit.Base)
		case "RawBase":
			out = append(out, classkit.RawBase)
		default:
			c, ok := reg.classes[name]
			if !ok {
				return nil, classkit.Issues{{
					Class:   def.Name,
					Code:    classkit.CodeUnknownBase,
					Message: "unknown base class: " + name,
					Hint:    "bases must be Base, RawBase, or an earlier entry in the document",
				}}
			}
			out = append(out, c)
		}
	}
	return out, nil
}
