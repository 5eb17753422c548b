// Package classfile loads declarative class-hierarchy documents (YAML, JSON
// or TOML) and constructs the declared classes in order into a Registry.
//
// Document shape:
//
//	classes:
//	  - name: Estimator
//	    params:
//	      - name: x
//	        type: number
//	      - name: tol
//	        type: number
//	        default: 0.001
//	        protected: true
//	    attrs:
//	      solver: lbfgs
//	    protect: [solver]
//	  - name: Ridge
//	    bases: [Estimator]
//
// Bases resolve to earlier entries in the same document, or to the built-in
// roots "Base" and "RawBase". All construction failures surface as
// classkit.Issues.
package classfile
