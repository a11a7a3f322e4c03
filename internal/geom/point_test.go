package geom

import (
	"math"
	"math/rand"
	"testing"
)

func Test_Point3_AddSub(t *testing.T) {
	testSet := []struct {
		p, q Point3
		sum  Point3
		diff Vector3
	}{
		{Point3{1, 2, 3}, Point3{4, 5, 6}, Point3{5, 7, 9}, Vector3{3, 3, 3}},
		{Point3{}, Point3{}, Point3{}, Vector3{}},
		{Point3{-1, -2, -3}, Point3{1, 2, 3}, Point3{0, 0, 0}, Vector3{2, 4, 6}},
	}
	for i, test := range testSet {
		v := test.q.Sub(Point3{})
		if got := test.p.Add(v); !got.AbsDiffEq(test.sum, DefaultTolerance) {
			t.Errorf("test %d: Add = %v, want %v", i, got, test.sum)
		}
		if got := test.q.Sub(test.p); !got.AbsDiffEq(test.diff, DefaultTolerance) {
			t.Errorf("test %d: Sub = %v, want %v", i, got, test.diff)
		}
	}
}

func Test_Point3_AbsDiffEq(t *testing.T) {
	a := Point3{1, 2, 3}
	b := Point3{1 + 1e-10, 2, 3}
	if !a.AbsDiffEq(b, DefaultTolerance) {
		t.Errorf("expected %v and %v to be equal within tolerance", a, b)
	}
	c := Point3{1.1, 2, 3}
	if a.AbsDiffEq(c, DefaultTolerance) {
		t.Errorf("expected %v and %v to not be equal within tolerance", a, c)
	}
}

func Test_Point3_Array(t *testing.T) {
	arr := [3]float64{1, 2, 3}
	p := NewPoint3(arr)
	if got := p.Array(); got != arr {
		t.Errorf("Array round trip = %v, want %v", got, arr)
	}
}

func Test_Point1_AbsDiffEq(t *testing.T) {
	testSet := []struct {
		a, b Point1
		tol  float64
		want bool
	}{
		{Point1{0}, Point1{0}, DefaultTolerance, true},
		{Point1{0}, Point1{1}, DefaultTolerance, false},
		{Point1{1}, Point1{-1}, 3, true},
	}
	for i, test := range testSet {
		if got := test.a.AbsDiffEq(test.b, test.tol); got != test.want {
			t.Errorf("test %d: AbsDiffEq = %v, want %v", i, got, test.want)
		}
	}
}

// sanity test with random points, mirroring the teacher's mesh3_test.go
// random-sample pattern.
func Test_Point2_Sanity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		a := Point2{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		v := Vector2{rng.Float64()*10 - 5, rng.Float64()*10 - 5}
		b := a.Add(v)
		back := b.Sub(v)
		if !back.AbsDiffEq(a, 1e-9) {
			t.Errorf("test %d: round trip Add/Sub = %v, want %v", i, back, a)
		}
		if math.IsNaN(b.U) || math.IsNaN(b.V) {
			t.Errorf("test %d: NaN in result %v", i, b)
		}
	}
}
