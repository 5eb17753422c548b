package classkit

// Package classkit provides:
//
// - Parameter-holding classes built through an explicit construction protocol
//   (Construct/Plain), with C3 linearization over an explicit ancestor list
// - Attribute-level protection: once a name is protected by a class, no
//   subclass may rebind it, and the conflict surfaces at construction time
// - An attribute interceptor (Get/Set/Delete on classes and instances) that
//   bypasses the descriptor protocol for parameters and enforces protection
// - A stable error model via Issues (attribute, owning class, code, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the linearization
//   algorithm under internal/c3.
// - Place the class-builder DSL under dsl/, document loading under
//   classfile/, schema projection under jsonschema/, and the CLI under
//   cmd/classkit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	a := dsl.Class("Estimator").
//		Param("x", "number").
//		ProtectedAttr("fit", fitFunc).
//		MustBuild()
//	inst, err := a.New(classkit.KV{"x": 5})
//	v, err := inst.Get("x")
//
