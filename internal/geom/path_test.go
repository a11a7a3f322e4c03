package geom

import (
	"testing"

	"github.com/ajsb85/brepkernel/kernelerr"
)

func Test_LineFromPoints(t *testing.T) {
	a, b := Point3{0, 0, 0}, Point3{1, 0, 0}
	line, err := LineFromPoints(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := line.PointAt(0); !got.AbsDiffEq(a, DefaultTolerance) {
		t.Errorf("PointAt(0) = %v, want %v", got, a)
	}
	if got := line.PointAt(1); !got.AbsDiffEq(b, DefaultTolerance) {
		t.Errorf("PointAt(1) = %v, want %v", got, b)
	}
}

func Test_LineFromPoints_Coincident(t *testing.T) {
	_, err := LineFromPoints(Point3{1, 1, 1}, Point3{1, 1, 1})
	var degErr *kernelerr.NumericDegeneracy
	if err == nil {
		t.Fatal("expected NumericDegeneracy, got nil")
	}
	if !asDegeneracy(err, &degErr) {
		t.Errorf("expected *kernelerr.NumericDegeneracy, got %T", err)
	}
}

func asDegeneracy(err error, target **kernelerr.NumericDegeneracy) bool {
	e, ok := err.(*kernelerr.NumericDegeneracy)
	if ok {
		*target = e
	}
	return ok
}

// Test_PlaneFromPoints_Coords covers P6: the three construction points map
// back to (0,0), (1,0) and (0,1) in surface coordinates.
func Test_PlaneFromPoints_Coords(t *testing.T) {
	a := Point3{1, 0, 0}
	b := Point3{0, 1, 0}
	c := Point3{0, 0, 1}

	surf, err := PlaneFromPoints(a, b, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		p    Point2
		want Point3
	}{
		{Point2{0, 0}, a},
		{Point2{1, 0}, b},
		{Point2{0, 1}, c},
	}
	for i, cs := range cases {
		if got := surf.PointFromSurfaceCoords(cs.p); !got.AbsDiffEq(cs.want, DefaultTolerance) {
			t.Errorf("test %d: PointFromSurfaceCoords(%v) = %v, want %v", i, cs.p, got, cs.want)
		}
	}
}

func Test_PlaneFromPoints_Collinear(t *testing.T) {
	_, err := PlaneFromPoints(Point3{0, 0, 0}, Point3{1, 0, 0}, Point3{2, 0, 0})
	if err == nil {
		t.Fatal("expected NumericDegeneracy for collinear points, got nil")
	}
	if _, ok := err.(*kernelerr.NumericDegeneracy); !ok {
		t.Errorf("expected *kernelerr.NumericDegeneracy, got %T", err)
	}
}

func Test_Surface_Equal(t *testing.T) {
	s1, err := PlaneFromPoints(Point3{}, Point3{1, 0, 0}, Point3{0, 1, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Same plane, different spanning points.
	s2, err := PlaneFromPoints(Point3{}, Point3{2, 0, 0}, Point3{0, 3, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s1.Equal(s2, DefaultTolerance) {
		t.Errorf("expected %v and %v to describe the same plane", s1, s2)
	}

	s3, err := PlaneFromPoints(Point3{0, 0, 1}, Point3{1, 0, 1}, Point3{0, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1.Equal(s3, DefaultTolerance) {
		t.Errorf("expected %v and %v to describe different planes", s1, s3)
	}
}
