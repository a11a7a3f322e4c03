// Package kernelerr defines the error taxonomy returned by the kernel's
// build and insert operations.
//
// Errors are values, never panics. Each of build/insert is an atomic
// transaction: it either returns a handle or the first error it hit.
//
//	InvariantViolated  - a full entity failed validation on insertion.
//	UnresolvableCycle  - the partial graph has a self-dependency no
//	                     inference rule could break.
//	MissingField       - a required attribute was still unset after all
//	                     inference rules ran.
//	NumericDegeneracy  - a geometric constructor was given degenerate
//	                     input (collinear points, coincident points, ...).
package kernelerr

import "fmt"

// InvariantViolated reports that a full entity failed its validator on
// insertion into the store. The entity is not stored.
type InvariantViolated struct {
	Kind   string
	Detail string
}

func (e *InvariantViolated) Error() string {
	return fmt.Sprintf("invariant violated: %s: %s", e.Kind, e.Detail)
}

// UnresolvableCycle reports that a partial cell depends on itself
// transitively with no inference rule able to break the cycle.
type UnresolvableCycle struct {
	Cell string
}

func (e *UnresolvableCycle) Error() string {
	return fmt.Sprintf("unresolvable cycle at cell %s", e.Cell)
}

// MissingField reports that a required attribute was still unset after
// every inference rule had a chance to fill it in.
type MissingField struct {
	Entity string
	Field  string
}

func (e *MissingField) Error() string {
	return fmt.Sprintf("missing field: %s.%s", e.Entity, e.Field)
}

// NumericDegeneracy reports a geometric constructor given degenerate input.
type NumericDegeneracy struct {
	Detail string
}

func (e *NumericDegeneracy) Error() string {
	return fmt.Sprintf("numeric degeneracy: %s", e.Detail)
}
