package geom

import "gonum.org/v1/gonum/spatial/r3"

// Transform is a rigid transform: a rotation of Angle radians about Axis,
// followed by a translation by Offset.
type Transform struct {
	Axis   Vector3
	Angle  float64
	Offset Vector3
}

// TransformPoint applies t to p.
func (t Transform) TransformPoint(p Point3) Point3 {
	rot := r3.NewRotation(t.Angle, t.Axis.toR3())
	rotated := rot.Rotate(p.toVec3AsR3())
	return vector3FromR3(rotated).Add(t.Offset).asPoint3()
}

// TransformVector applies only the rotation part of t to v (vectors don't
// translate).
func (t Transform) TransformVector(v Vector3) Vector3 {
	rot := r3.NewRotation(t.Angle, t.Axis.toR3())
	return vector3FromR3(rot.Rotate(v.toR3()))
}

func (p Point3) toVec3AsR3() r3.Vec { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

func (v Vector3) asPoint3() Point3 { return Point3{v.X, v.Y, v.Z} }
