package object

import "github.com/ajsb85/brepkernel/internal/geom"

// Surface is a parametric surface, (u, v) -> 3D point. See geom.Surface for
// the plane-from-three-points constructor.
type Surface = geom.Surface

// GlobalCurve is an identity token representing a curve in 3D space. It
// carries no attributes beyond identity: two HalfEdges referencing the same
// GlobalCurve handle agree they trace the same physical curve, regardless of
// each one's local parameterization.
type GlobalCurve struct{}

// GlobalVertex is a point in 3D space, identified by handle. The store
// interns GlobalVertex values with exactly equal positions to one handle;
// positions that differ only within WeldTolerance are merged by
// Store.WeldGlobalVertex, not by plain insertion.
type GlobalVertex struct {
	Position geom.Point3
}

// Line2D is a line in a Surface's 2D (u, v) parameter space.
type Line2D struct {
	Origin    geom.Point2
	Direction geom.Vector2
}

// PointAt evaluates the line at parameter t.
func (l Line2D) PointAt(t float64) geom.Point2 {
	return l.Origin.Add(l.Direction.Scale(t))
}

// SurfacePath is a curve's image in its surface's 2D parameter space. Only
// the Line variant is implemented, matching GlobalPath's scope (§6 of the
// spec); the interface leaves room for circular arcs later.
type SurfacePath interface {
	PointAt(t float64) geom.Point2
	isSurfacePath()
}

// LineSurfacePath is the Line variant of SurfacePath.
type LineSurfacePath struct {
	Line Line2D
}

func (p LineSurfacePath) PointAt(t float64) geom.Point2 { return p.Line.PointAt(t) }
func (p LineSurfacePath) isSurfacePath()                {}

// Curve is a curve's 2D image on its surface, plus a pointer to its 3D
// identity (GlobalForm).
type Curve struct {
	Surface    Handle[Surface]
	Path       SurfacePath
	GlobalForm Handle[GlobalCurve]
}

// SurfaceVertex is a vertex expressed in a surface's 2D parameter space,
// bridging the 1D curve parameter and the 3D global position.
type SurfaceVertex struct {
	Position   geom.Point2
	Surface    Handle[Surface]
	GlobalForm Handle[GlobalVertex]
}

// Vertex is a vertex in curve-parameter space, tied to its surface and
// global witnesses.
type Vertex struct {
	Position    geom.Point1
	Curve       Handle[Curve]
	SurfaceForm Handle[SurfaceVertex]
}

// GlobalEdge is the identity-only, orientation-free witness of a physical
// edge, shared across every local (HalfEdge) use of it. Vertices is an
// unordered pair; use Vertices or VerticesNormalized rather than comparing
// the two slots positionally.
type GlobalEdge struct {
	Curve    Handle[GlobalCurve]
	vertices [2]Handle[GlobalVertex]
}

// NewGlobalEdge builds a GlobalEdge over an unordered pair of vertices.
func NewGlobalEdge(curve Handle[GlobalCurve], vertices [2]Handle[GlobalVertex]) GlobalEdge {
	return GlobalEdge{Curve: curve, vertices: vertices}
}

// Vertices returns the edge's two vertices in the order they were
// constructed with. Store.InsertGlobalEdge stores the pair normalized, so
// for an edge read back from a Store this is the VerticesNormalized order.
func (e GlobalEdge) Vertices() [2]Handle[GlobalVertex] { return e.vertices }

// VerticesNormalized returns the edge's two vertices sorted by handle
// identity, so that two GlobalEdges built from the same unordered pair in
// either order compare equal and round-trip identically through from_full.
func (e GlobalEdge) VerticesNormalized() [2]Handle[GlobalVertex] {
	a, b := e.vertices[0], e.vertices[1]
	if a.id > b.id {
		a, b = b, a
	}
	return [2]Handle[GlobalVertex]{a, b}
}

// HalfEdge is one oriented use of a physical edge; each physical edge has
// exactly two, pointing in opposite directions.
type HalfEdge struct {
	Vertices   [2]Handle[Vertex]
	GlobalForm Handle[GlobalEdge]
}

// Cycle is a closed, ordered sequence of half-edges bounding a face region.
type Cycle struct {
	HalfEdges []Handle[HalfEdge]
}

// Color is a face's render color. The zero value is opaque black, matching
// the teacher's default-color convention.
type Color struct {
	R, G, B, A uint8
}

// DefaultColor is the color a Face gets when none is specified.
var DefaultColor = Color{R: 0, G: 0, B: 0, A: 255}

// Face is bounded by an exterior cycle, with zero or more interior cycles
// cut out of it as holes.
type Face struct {
	Exterior  Handle[Cycle]
	Interiors []Handle[Cycle]
	Color     Color
}

// Shell is a set of faces intended to form a closed 2-manifold.
type Shell struct {
	Faces []Handle[Face]
}
