// Package dsl provides a chained builder for declaring participating
// classes: names, ancestors, parameters with defaults and protection,
// plain and abstract attributes, and hook bindings.
package dsl
