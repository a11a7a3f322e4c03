package object

import (
	"sync"

	"github.com/ajsb85/brepkernel/internal/geom"
)

// WeldTolerance is the distance within which two independently-built
// GlobalVertex positions are considered the same physical corner by the
// store's weld index (see vertexIndex). It is deliberately tighter than
// typical modeling tolerances since it only exists to catch accidental
// near-duplicates, not to snap distinct nearby features together.
const WeldTolerance = 1e-7

// Store is a process-wide collection of typed interning tables, one per
// full-entity kind. It is the single source of identity: two handles are
// equal iff they came from the same logical insert. A Store is owned by a
// single "service" context that callers thread through explicitly; per
// spec.md §5 it is not safe for concurrent mutation.
type Store struct {
	surfaces        *table[Surface]
	globalCurves    *table[GlobalCurve]
	globalVertices  *table[GlobalVertex]
	curves          *table[Curve]
	surfaceVertices *table[SurfaceVertex]
	vertices        *table[Vertex]
	globalEdges     *table[GlobalEdge]
	halfEdges       *table[HalfEdge]
	cycles          *table[Cycle]
	faces           *table[Face]
	shells          *table[Shell]

	weld *vertexIndex

	planesOnce sync.Once
	xyPlane    Handle[Surface]
	xzPlane    Handle[Surface]
	yzPlane    Handle[Surface]
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		surfaces:        newTable[Surface](),
		globalCurves:    newTable[GlobalCurve](),
		globalVertices:  newTable[GlobalVertex](),
		curves:          newTable[Curve](),
		surfaceVertices: newTable[SurfaceVertex](),
		vertices:        newTable[Vertex](),
		globalEdges:     newTable[GlobalEdge](),
		halfEdges:       newTable[HalfEdge](),
		cycles:          newTable[Cycle](),
		faces:           newTable[Face](),
		shells:          newTable[Shell](),
		weld:            newVertexIndex(WeldTolerance),
	}
}

// --- Surface ---

// InsertSurface interns a Surface. Surfaces have no cross-entity invariant
// to validate; insertion can't fail.
func (s *Store) InsertSurface(surf Surface) Handle[Surface] {
	h, _ := s.surfaces.insert(surf, nil)
	return h
}

// GetSurface returns the surface h refers to.
func (s *Store) GetSurface(h Handle[Surface]) Surface { return s.surfaces.get(h) }

func (s *Store) initPlanes() {
	s.planesOnce.Do(func() {
		origin := geom.Point3{}
		x := geom.Point3{X: 1}
		y := geom.Point3{Y: 1}
		z := geom.Point3{Z: 1}

		xy, _ := geom.PlaneFromPoints(origin, x, y)
		xz, _ := geom.PlaneFromPoints(origin, x, z)
		yz, _ := geom.PlaneFromPoints(origin, y, z)

		s.xyPlane = s.InsertSurface(xy)
		s.xzPlane = s.InsertSurface(xz)
		s.yzPlane = s.InsertSurface(yz)
	})
}

// XYPlane returns the cached handle for the plane through the origin
// spanned by the X and Y axes.
func (s *Store) XYPlane() Handle[Surface] { s.initPlanes(); return s.xyPlane }

// XZPlane returns the cached handle for the plane through the origin
// spanned by the X and Z axes.
func (s *Store) XZPlane() Handle[Surface] { s.initPlanes(); return s.xzPlane }

// YZPlane returns the cached handle for the plane through the origin
// spanned by the Y and Z axes.
func (s *Store) YZPlane() Handle[Surface] { s.initPlanes(); return s.yzPlane }

// --- GlobalCurve ---

// InsertGlobalCurve interns a fresh GlobalCurve identity token.
func (s *Store) InsertGlobalCurve(gc GlobalCurve) Handle[GlobalCurve] {
	h, _ := s.globalCurves.insert(gc, nil)
	return h
}

// GetGlobalCurve returns the global curve h refers to.
func (s *Store) GetGlobalCurve(h Handle[GlobalCurve]) GlobalCurve { return s.globalCurves.get(h) }

// --- GlobalVertex ---

// InsertGlobalVertex interns a GlobalVertex.
func (s *Store) InsertGlobalVertex(gv GlobalVertex) Handle[GlobalVertex] {
	h, _ := s.globalVertices.insert(gv, nil)
	return h
}

// GetGlobalVertex returns the global vertex h refers to.
func (s *Store) GetGlobalVertex(h Handle[GlobalVertex]) GlobalVertex {
	return s.globalVertices.get(h)
}

// WeldGlobalVertex interns a GlobalVertex at position p, first checking the
// store's spatial weld index for an existing vertex within WeldTolerance so
// that independently-built graphs that happen to land on the same physical
// corner share one handle instead of minting duplicates.
func (s *Store) WeldGlobalVertex(p geom.Point3) Handle[GlobalVertex] {
	if h, ok := s.weld.find(p); ok {
		return h
	}
	h := s.InsertGlobalVertex(GlobalVertex{Position: p})
	s.weld.insert(h, p)
	return h
}

// --- Curve ---

// InsertCurve interns a Curve.
func (s *Store) InsertCurve(c Curve) Handle[Curve] {
	h, _ := s.curves.insert(c, nil)
	return h
}

// GetCurve returns the curve h refers to.
func (s *Store) GetCurve(h Handle[Curve]) Curve { return s.curves.get(h) }

// --- SurfaceVertex ---

// InsertSurfaceVertex interns a SurfaceVertex.
func (s *Store) InsertSurfaceVertex(sv SurfaceVertex) Handle[SurfaceVertex] {
	h, _ := s.surfaceVertices.insert(sv, nil)
	return h
}

// GetSurfaceVertex returns the surface vertex h refers to.
func (s *Store) GetSurfaceVertex(h Handle[SurfaceVertex]) SurfaceVertex {
	return s.surfaceVertices.get(h)
}

// --- Vertex ---

// InsertVertex interns a Vertex.
func (s *Store) InsertVertex(v Vertex) Handle[Vertex] {
	h, _ := s.vertices.insert(v, nil)
	return h
}

// GetVertex returns the vertex h refers to.
func (s *Store) GetVertex(h Handle[Vertex]) Vertex { return s.vertices.get(h) }

// --- GlobalEdge ---

// InsertGlobalEdge interns a GlobalEdge. The vertex pair is stored in
// normalized order, so the same pair given in either order interns to one
// handle.
func (s *Store) InsertGlobalEdge(e GlobalEdge) Handle[GlobalEdge] {
	e.vertices = e.VerticesNormalized()
	h, _ := s.globalEdges.insert(e, nil)
	return h
}

// GetGlobalEdge returns the global edge h refers to.
func (s *Store) GetGlobalEdge(h Handle[GlobalEdge]) GlobalEdge { return s.globalEdges.get(h) }

// --- HalfEdge ---

// InsertHalfEdge validates and interns a HalfEdge. See validateHalfEdge for
// the I1/I2 checks run here.
func (s *Store) InsertHalfEdge(he HalfEdge) (Handle[HalfEdge], error) {
	return s.halfEdges.insert(he, s.validateHalfEdge)
}

// GetHalfEdge returns the half-edge h refers to.
func (s *Store) GetHalfEdge(h Handle[HalfEdge]) HalfEdge { return s.halfEdges.get(h) }

// --- Cycle ---

// InsertCycle validates and interns a Cycle. See validateCycle for the
// I5 closedness/single-surface checks run here.
func (s *Store) InsertCycle(c Cycle) (Handle[Cycle], error) {
	return s.cycles.insert(c, s.validateCycle)
}

// GetCycle returns the cycle h refers to.
func (s *Store) GetCycle(h Handle[Cycle]) Cycle { return s.cycles.get(h) }

// --- Face ---

// InsertFace interns a Face. Face validity (I6, interiors fully inside the
// exterior) is a checker, not an enforced invariant; see CheckFaceInteriors.
func (s *Store) InsertFace(f Face) Handle[Face] {
	h, _ := s.faces.insert(f, nil)
	return h
}

// GetFace returns the face h refers to.
func (s *Store) GetFace(h Handle[Face]) Face { return s.faces.get(h) }

// --- Shell ---

// InsertShell validates and interns a Shell. See validateShell for the I3
// check (every boundary is welded to exactly one other half-edge, with
// opposite orientation) run here.
func (s *Store) InsertShell(sh Shell) (Handle[Shell], error) {
	return s.shells.insert(sh, s.validateShell)
}

// GetShell returns the shell h refers to.
func (s *Store) GetShell(h Handle[Shell]) Shell { return s.shells.get(h) }
