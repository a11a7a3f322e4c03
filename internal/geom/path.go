package geom

import "github.com/ajsb85/brepkernel/kernelerr"

// Line is a 3D line through Origin in direction Direction. Direction is not
// required to be a unit vector: LineFromPoints sets it to b-a so that
// PointAt(1) lands exactly on b, matching how Surface.PointFromSurfaceCoords
// recovers the three points a plane was built from.
type Line struct {
	Origin    Point3
	Direction Vector3
}

// LineFromPoints builds the line through a and b. It fails with
// NumericDegeneracy if a and b coincide.
func LineFromPoints(a, b Point3) (Line, error) {
	dir := b.Sub(a)
	if dir.Length() == 0 {
		return Line{}, &kernelerr.NumericDegeneracy{Detail: "line_from_points: coincident points"}
	}
	return Line{Origin: a, Direction: dir}, nil
}

// PointAt evaluates the line at parameter t.
func (l Line) PointAt(t float64) Point3 {
	return l.Origin.Add(l.Direction.Scale(t))
}

// GlobalPath is a parametric curve in 3D space. The kernel is designed to
// admit additional variants (circular arcs, etc.) without changes to
// topology; for now Line is the only one.
type GlobalPath interface {
	// PointFromPathCoords evaluates the path at parameter t.
	PointFromPathCoords(t float64) Point3
	isGlobalPath()
}

// LinePath is the Line variant of GlobalPath.
type LinePath struct {
	Line Line
}

func (p LinePath) PointFromPathCoords(t float64) Point3 { return p.Line.PointAt(t) }
func (p LinePath) isGlobalPath()                        {}

// Surface is a parametric surface defined by a path for its u-coordinate and
// a vector for its v-coordinate: a point at surface coordinates (u, v) is
// u-path(u) + v*v-vector.
type Surface struct {
	U GlobalPath
	V Vector3
}

// PlaneFromPoints constructs a plane surface from three non-collinear
// points: u = Line(a, b), v = c - a. It fails with NumericDegeneracy if the
// points are collinear (including coincident).
func PlaneFromPoints(a, b, c Point3) (Surface, error) {
	line, err := LineFromPoints(a, b)
	if err != nil {
		return Surface{}, &kernelerr.NumericDegeneracy{Detail: "plane_from_points: " + err.Error()}
	}
	v := c.Sub(a)
	if v.Cross(line.Direction).Length() <= DefaultTolerance*line.Direction.Length()*v.Length() {
		return Surface{}, &kernelerr.NumericDegeneracy{Detail: "plane_from_points: collinear points"}
	}
	return Surface{U: LinePath{line}, V: v}, nil
}

// PointFromSurfaceCoords maps surface-parameter coordinates to a 3D point.
func (s Surface) PointFromSurfaceCoords(p Point2) Point3 {
	return s.U.PointFromPathCoords(p.U).Add(s.V.Scale(p.V))
}

// Equal reports whether s and o describe the same plane geometry. Surfaces
// compare by geometry, not by the identity of the points used to build them.
func (s Surface) Equal(o Surface, tol float64) bool {
	lp, ok1 := s.U.(LinePath)
	lo, ok2 := o.U.(LinePath)
	if !ok1 || !ok2 {
		return false
	}
	// Two planes are the same if their normals are parallel and the origin
	// of one lies in the other's plane.
	n1 := lp.Line.Direction.Cross(s.V)
	n2 := lo.Line.Direction.Cross(o.V)
	if n1.Cross(n2).Length() > tol {
		return false
	}
	offset := lo.Line.Origin.Sub(lp.Line.Origin).Dot(n1.Normalize())
	return offset <= tol && offset >= -tol
}
