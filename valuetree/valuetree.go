// Package valuetree carries the constructive-geometry value tree the
// kernel's build pass eventually consumes: a 3D shape is either a leaf
// sweep of a 2D shape, a boolean combination of two 3D shapes, or a
// rigid transform applied to one. These types hold no behavior of their
// own and no code in this module reads them; algo.TransformObject takes a
// geom.Transform directly. The shape mirrors fj/src/shape_3d.rs.
package valuetree

import "github.com/ajsb85/brepkernel/internal/geom"

// Shape3d is a node in the 3D half of the value tree.
type Shape3d interface {
	isShape3d()
}

// Difference is the set difference of two 3D shapes: A minus B.
type Difference struct {
	A, B Shape3d
}

func (Difference) isShape3d() {}

// Union is the set union of two 3D shapes.
type Union struct {
	A, B Shape3d
}

func (Union) isShape3d() {}

// Sweep extrudes a 2D shape along the z-axis by Length.
type Sweep struct {
	Shape  Shape2d
	Length float64
}

func (Sweep) isShape3d() {}

// Transform rotates Shape by Angle radians about Axis, then translates it
// by Offset.
type Transform struct {
	Shape  Shape3d
	Axis   geom.Vector3
	Angle  float64
	Offset geom.Vector3
}

func (Transform) isShape3d() {}

// Shape2d is a node in the 2D half of the value tree. Sketch is the only
// variant carried here; the original's richer 2D shape set (circles,
// polygons assembled from more than one sketch) wasn't part of the
// retrieved source and is left for a future constructive-geometry layer
// to add.
type Shape2d interface {
	isShape2d()
}

// Sketch is a closed 2D outline given as a flat polygon, to be swept or
// otherwise built into a Face.
type Sketch struct {
	Points []geom.Point2
}

func (Sketch) isShape2d() {}

// Shape is the root of the value tree: either a 3D shape or a 2D one.
type Shape interface {
	isShape()
}

// Of3d wraps a Shape3d as a Shape.
type Of3d struct{ Shape3d Shape3d }

func (Of3d) isShape() {}

// Of2d wraps a Shape2d as a Shape.
type Of2d struct{ Shape2d Shape2d }

func (Of2d) isShape() {}
