// Package geom provides the numeric primitives the kernel builds on: points
// and vectors in 1, 2 and 3 dimensions, tolerant equality, and the small
// parametric-curve/surface machinery (GlobalPath, Surface) that the object
// model's geometry entities wrap.
//
// Vector3 arithmetic is backed by gonum's spatial/r3 package rather than
// hand-rolled (Point3, Point2 and Vector2 use plain field arithmetic); there is no reason to re-derive cross products and norms
// the ecosystem already gets right.
package geom

import (
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultTolerance is the tolerance used by AbsDiffEq helpers when callers
// don't have a more specific value on hand.
const DefaultTolerance = 1e-9

// Vector3 is a vector in 3-space.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 builds a Vector3 from a 3-element array.
func NewVector3(a [3]float64) Vector3 { return Vector3{a[0], a[1], a[2]} }

func (v Vector3) toR3() r3.Vec        { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }
func vector3FromR3(w r3.Vec) Vector3  { return Vector3{X: w.X, Y: w.Y, Z: w.Z} }

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return vector3FromR3(r3.Add(v.toR3(), o.toR3())) }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return vector3FromR3(r3.Sub(v.toR3(), o.toR3())) }

// Scale returns v scaled by f.
func (v Vector3) Scale(f float64) Vector3 { return vector3FromR3(r3.Scale(f, v.toR3())) }

// Neg returns -v.
func (v Vector3) Neg() Vector3 { return v.Scale(-1) }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 { return r3.Dot(v.toR3(), o.toR3()) }

// Cross returns the cross product of v and o.
func (v Vector3) Cross(o Vector3) Vector3 { return vector3FromR3(r3.Cross(v.toR3(), o.toR3())) }

// Length returns the Euclidean norm of v.
func (v Vector3) Length() float64 { return r3.Norm(v.toR3()) }

// Normalize returns v scaled to unit length. The zero vector normalizes to
// itself.
func (v Vector3) Normalize() Vector3 {
	if v.Length() == 0 {
		return v
	}
	return vector3FromR3(r3.Unit(v.toR3()))
}

// AbsDiffEq reports whether v and o are equal to within tol on every
// component.
func (v Vector3) AbsDiffEq(o Vector3, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, tol) &&
		scalar.EqualWithinAbs(v.Y, o.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, o.Z, tol)
}

// Array returns v as a 3-element array.
func (v Vector3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Vector2 is a vector in the 2D parameter space of a Surface.
type Vector2 struct {
	U, V float64
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.U + o.U, v.V + o.V} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.U - o.U, v.V - o.V} }

// Scale returns v scaled by f.
func (v Vector2) Scale(f float64) Vector2 { return Vector2{v.U * f, v.V * f} }

// Length returns the Euclidean norm of v.
func (v Vector2) Length() float64 { return r3.Norm(r3.Vec{X: v.U, Y: v.V}) }

// AbsDiffEq reports whether v and o are equal to within tol on every
// component.
func (v Vector2) AbsDiffEq(o Vector2, tol float64) bool {
	return scalar.EqualWithinAbs(v.U, o.U, tol) && scalar.EqualWithinAbs(v.V, o.V, tol)
}
