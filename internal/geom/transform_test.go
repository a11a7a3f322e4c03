package geom

import (
	"math"
	"testing"
)

func Test_Transform_RotateAboutZ(t *testing.T) {
	tr := Transform{Axis: Vector3{Z: 1}, Angle: math.Pi / 2, Offset: Vector3{}}
	p := Point3{X: 1}
	got := tr.TransformPoint(p)
	want := Point3{Y: 1}
	if !got.AbsDiffEq(want, 1e-9) {
		t.Errorf("rotate (1,0,0) by 90deg about Z = %v, want %v", got, want)
	}
}

func Test_Transform_Offset(t *testing.T) {
	tr := Transform{Axis: Vector3{Z: 1}, Angle: 0, Offset: Vector3{X: 5, Y: -2, Z: 1}}
	got := tr.TransformPoint(Point3{})
	want := Point3{X: 5, Y: -2, Z: 1}
	if !got.AbsDiffEq(want, 1e-9) {
		t.Errorf("zero-rotation translate = %v, want %v", got, want)
	}
}

func Test_Transform_VectorsDontTranslate(t *testing.T) {
	tr := Transform{Axis: Vector3{Z: 1}, Angle: 0, Offset: Vector3{X: 100, Y: 100}}
	v := Vector3{X: 1, Y: 2, Z: 3}
	got := tr.TransformVector(v)
	if !got.AbsDiffEq(v, 1e-9) {
		t.Errorf("zero-rotation TransformVector = %v, want unchanged %v", got, v)
	}
}
