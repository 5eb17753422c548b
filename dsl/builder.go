package dsl

import (
	classkit "github.com/reoring/classkit"
)

type classBuilder struct {
	name      string
	bases     []*classkit.Class
	attrs     map[string]any
	annot     map[string]any
	protectMe map[string]struct{}
}

type paramStep struct {
	b    *classBuilder
	name string
}

// Class creates a new class builder with safe defaults (extends Base).
func Class(name string) *classBuilder {
	return &classBuilder{
		name:      name,
		bases:     nil,
		attrs:     map[string]any{},
		annot:     map[string]any{},
		protectMe: map[string]struct{}{},
	}
}

// Extends sets the ordered direct ancestor list, replacing the default Base.
func (b *classBuilder) Extends(bases ...*classkit.Class) *classBuilder {
	b.bases = bases
	return b
}

// Param declares a parameter with its annotation.
func (b *classBuilder) Param(name string, annot any) *paramStep {
	b.annot[name] = annot
	return &paramStep{b: b, name: name}
}

// Default sets the parameter's default value.
func (p *paramStep) Default(v any) *paramStep {
	p.b.attrs[p.name] = v
	return p
}

// Protected marks the parameter's binding as protected. The parameter must
// also receive a Default; protection applies to the bound value, never to
// the annotation alone.
func (p *paramStep) Protected() *paramStep {
	p.b.protectMe[p.name] = struct{}{}
	return p
}

func (p *paramStep) Param(name string, annot any) *paramStep { return p.b.Param(name, annot) }
func (p *paramStep) Attr(name string, v any) *classBuilder   { return p.b.Attr(name, v) }
func (p *paramStep) ProtectedAttr(name string, v any) *classBuilder {
	return p.b.ProtectedAttr(name, v)
}
func (p *paramStep) AbstractAttr(name string) *classBuilder { return p.b.AbstractAttr(name) }
func (p *paramStep) OnParamWillBeSet(fn classkit.ParamHook) *classBuilder {
	return p.b.OnParamWillBeSet(fn)
}
func (p *paramStep) PostInit(fn classkit.PostInitFunc) *classBuilder { return p.b.PostInit(fn) }
func (p *paramStep) Build() (*classkit.Class, error)                 { return p.b.Build() }
func (p *paramStep) MustBuild() *classkit.Class                      { return p.b.MustBuild() }

// Attr binds a plain class attribute.
func (b *classBuilder) Attr(name string, v any) *classBuilder {
	b.attrs[name] = v
	return b
}

// ProtectedAttr binds a class attribute wrapped in the protection marker.
func (b *classBuilder) ProtectedAttr(name string, v any) *classBuilder {
	b.attrs[name] = classkit.Protect(v)
	return b
}

// AbstractAttr declares an abstract member; subclasses must bind it before
// instantiation.
func (b *classBuilder) AbstractAttr(name string) *classBuilder {
	b.attrs[name] = classkit.Abstract()
	return b
}

// OnParamWillBeSet binds the pre-assignment callback.
func (b *classBuilder) OnParamWillBeSet(fn classkit.ParamHook) *classBuilder {
	b.attrs[classkit.AttrParamHook] = fn
	return b
}

// PostInit binds the post-initialization hook.
func (b *classBuilder) PostInit(fn classkit.PostInitFunc) *classBuilder {
	b.attrs[classkit.AttrPostInit] = fn
	return b
}

// Build validates the builder and constructs the class.
func (b *classBuilder) Build() (*classkit.Class, error) {
	attrs := make(map[string]any, len(b.attrs))
	for k, v := range b.attrs {
		attrs[k] = v
	}
	for name := range b.protectMe {
		v, ok := attrs[name]
		if !ok {
			return nil, classkit.Issues{{
				Class: b.name,
				Attr:  name,
				Code:  classkit.CodeInvalidParam,
				Hint:  "Protected() on a parameter requires a Default; protection applies to the bound value",
			}}
		}
		attrs[name] = classkit.Protect(v)
	}
	bases := b.bases
	if bases == nil {
		bases = []*classkit.Class{classkit.Base}
	}
	return classkit.Construct(b.name, bases, classkit.Body{Attrs: attrs, Annot: b.annot})
}

// MustBuild is like Build but panics on error.
func (b *classBuilder) MustBuild() *classkit.Class {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}
