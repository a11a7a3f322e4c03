package geom

// Point3 is a point in 3-space.
type Point3 struct {
	X, Y, Z float64
}

// NewPoint3 builds a Point3 from a 3-element array.
func NewPoint3(a [3]float64) Point3 { return Point3{a[0], a[1], a[2]} }

// Add returns p translated by v.
func (p Point3) Add(v Vector3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub returns the vector from o to p.
func (p Point3) Sub(o Point3) Vector3 { return Vector3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

// AbsDiffEq reports whether p and o are equal to within tol on every
// component.
func (p Point3) AbsDiffEq(o Point3, tol float64) bool {
	return p.Sub(o).AbsDiffEq(Vector3{}, tol)
}

// Array returns p as a 3-element array.
func (p Point3) Array() [3]float64 { return [3]float64{p.X, p.Y, p.Z} }

// Point2 is a point in a Surface's (u, v) parameter space.
type Point2 struct {
	U, V float64
}

// NewPoint2 builds a Point2 from a 2-element array.
func NewPoint2(a [2]float64) Point2 { return Point2{a[0], a[1]} }

// Add returns p translated by v.
func (p Point2) Add(v Vector2) Point2 { return Point2{p.U + v.U, p.V + v.V} }

// Sub returns the vector from o to p.
func (p Point2) Sub(o Point2) Vector2 { return Vector2{p.U - o.U, p.V - o.V} }

// AbsDiffEq reports whether p and o are equal to within tol on every
// component.
func (p Point2) AbsDiffEq(o Point2, tol float64) bool {
	return p.Sub(o).AbsDiffEq(Vector2{}, tol)
}

// Array returns p as a 2-element array.
func (p Point2) Array() [2]float64 { return [2]float64{p.U, p.V} }

// Point1 is a point in a Curve's 1D parameter space.
type Point1 struct {
	T float64
}

// NewPoint1 builds a Point1 from its t coordinate.
func NewPoint1(t float64) Point1 { return Point1{t} }

// Sub returns o's t-distance from p.
func (p Point1) Sub(o Point1) float64 { return p.T - o.T }

// AbsDiffEq reports whether p and o are equal to within tol.
func (p Point1) AbsDiffEq(o Point1, tol float64) bool {
	d := p.T - o.T
	if d < 0 {
		d = -d
	}
	return d <= tol
}
