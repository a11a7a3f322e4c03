package partial_test

import (
	"testing"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/partial"
)

// Test_Vertex_MissingPosition covers the MissingField branch of Vertex.Build.
func Test_Vertex_MissingPosition(t *testing.T) {
	s := object.NewStore()
	v := partial.NewVertexDraft()
	v.Draft().Curve = partial.NewCurveDraft()
	v.Draft().SurfaceForm = partial.NewSurfaceVertexDraft()

	_, err := v.Build(s, partial.NewCache())
	if err == nil {
		t.Fatal("expected MissingField, got nil")
	}
	mf, ok := err.(*kernelerr.MissingField)
	if !ok {
		t.Fatalf("expected *kernelerr.MissingField, got %T: %v", err, err)
	}
	if mf.Entity != "Vertex" || mf.Field != "Position" {
		t.Errorf("got %+v, want Entity=Vertex Field=Position", mf)
	}
}

// Test_Curve_MissingSurface covers Curve.Build's MissingField branch.
func Test_Curve_MissingSurface(t *testing.T) {
	s := object.NewStore()
	c := partial.NewCurveDraft()
	c.AsLineSegmentFromPoints(geom.Point2{}, geom.Point2{U: 1})
	_, err := c.Build(s, partial.NewCache())
	if err == nil {
		t.Fatal("expected MissingField, got nil")
	}
	if _, ok := err.(*kernelerr.MissingField); !ok {
		t.Fatalf("expected *kernelerr.MissingField, got %T", err)
	}
}

// Test_HalfEdge_ReconcileVertexCurves covers the fill-in rule: a
// HalfEdge's two vertices that don't yet share a Curve adopt the first
// vertex's curve into the second.
func Test_HalfEdge_ReconcileVertexCurves(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	curve := partial.NewCurveDraft()
	curve.WithSurface(surf).AsLineSegmentFromPoints(geom.Point2{}, geom.Point2{U: 1})

	v0 := partial.NewVertexDraft()
	v0.WithPosition(0)
	v0.Draft().Curve = curve
	sv0 := partial.NewSurfaceVertexDraft()
	sv0.WithPosition(geom.Point2{}).WithSurface(surf)
	v0.Draft().SurfaceForm = sv0

	v1 := partial.NewVertexDraft()
	v1.WithPosition(1)
	// v1's curve is intentionally left unset.
	sv1 := partial.NewSurfaceVertexDraft()
	sv1.WithPosition(geom.Point2{U: 1}).WithSurface(surf)
	v1.Draft().SurfaceForm = sv1

	he := partial.NewHalfEdgeDraft()
	he.Draft().Vertices = [2]partial.VertexRef{v0, v1}

	handle, err := he.Build(s, partial.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	built := s.GetHalfEdge(handle)
	a := s.GetVertex(built.Vertices[0])
	b := s.GetVertex(built.Vertices[1])
	if a.Curve != b.Curve {
		t.Errorf("expected both vertices to share a curve after inference, got %v and %v", a.Curve, b.Curve)
	}
}

// Test_SurfaceVertex_InferGlobalPosition covers infer_global_position: a
// SurfaceVertex with no GlobalForm gets one computed from the surface.
func Test_SurfaceVertex_InferGlobalPosition(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	sv := partial.NewSurfaceVertexDraft()
	sv.WithPosition(geom.Point2{U: 3, V: 4}).WithSurface(surf)

	handle, err := sv.Build(s, partial.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	built := s.GetSurfaceVertex(handle)
	gv := s.GetGlobalVertex(built.GlobalForm)

	want := s.GetSurface(surf).PointFromSurfaceCoords(geom.Point2{U: 3, V: 4})
	if !gv.Position.AbsDiffEq(want, 1e-9) {
		t.Errorf("inferred global position = %v, want %v", gv.Position, want)
	}
}

// Test_GlobalEdge_MissingVertices covers GlobalEdge.Build's MissingField
// branch.
func Test_GlobalEdge_MissingVertices(t *testing.T) {
	s := object.NewStore()
	ge := partial.NewGlobalEdgeDraft()
	_, err := ge.Build(s, partial.NewCache())
	if err == nil {
		t.Fatal("expected MissingField, got nil")
	}
	if _, ok := err.(*kernelerr.MissingField); !ok {
		t.Fatalf("expected *kernelerr.MissingField, got %T", err)
	}
}

// Test_FromFull_RoundTrip covers property P5: decomposing a built face and
// rebuilding it reproduces the original handle.
func Test_FromFull_RoundTrip(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	cb := partial.NewCycleDraft()
	pts := []geom.Point2{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}}
	for i := 0; i < len(pts); i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		curve := partial.NewCurveDraft()
		curve.WithSurface(surf).AsLineSegmentFromPoints(a, b)

		v0 := partial.NewVertexDraft()
		v0.WithPosition(0)
		v0.Draft().Curve = curve
		sv0 := partial.NewSurfaceVertexDraft()
		sv0.WithPosition(a).WithSurface(surf)
		v0.Draft().SurfaceForm = sv0

		v1 := partial.NewVertexDraft()
		v1.WithPosition(b.Sub(a).Length())
		v1.Draft().Curve = curve
		sv1 := partial.NewSurfaceVertexDraft()
		sv1.WithPosition(b).WithSurface(surf)
		v1.Draft().SurfaceForm = sv1

		he := partial.NewHalfEdgeDraft()
		he.Draft().Vertices = [2]partial.VertexRef{v0, v1}
		cb.Push(he)
	}

	face := partial.NewFaceDraft()
	face.Draft().Exterior = cb

	original, err := face.Build(s, partial.NewCache())
	if err != nil {
		t.Fatalf("unexpected error building face: %v", err)
	}

	cache := partial.NewFullToPartialCache(s)
	decomposed := partial.FromFullFace(cache, original)

	rebuilt, err := decomposed.Build(s, partial.NewCache())
	if err != nil {
		t.Fatalf("unexpected error rebuilding face: %v", err)
	}
	if rebuilt != original {
		t.Errorf("rebuilt handle %v != original %v", rebuilt, original)
	}
}

// Test_FromFull_SharedCachePreservesWelding covers scenario S6 at
// half-edge scope: decomposing the same built half-edge twice through one
// shared FullToPartialCache yields the same draft cell, which rebuilds to
// the original handle.
func Test_FromFull_SharedCachePreservesWelding(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	curve := partial.NewCurveDraft()
	curve.WithSurface(surf).AsLineSegmentFromPoints(geom.Point2{}, geom.Point2{U: 1})
	v0 := partial.NewVertexDraft()
	v0.WithPosition(0)
	v0.Draft().Curve = curve
	sv0 := partial.NewSurfaceVertexDraft()
	sv0.WithPosition(geom.Point2{}).WithSurface(surf)
	v0.Draft().SurfaceForm = sv0
	v1 := partial.NewVertexDraft()
	v1.WithPosition(1)
	v1.Draft().Curve = curve
	sv1 := partial.NewSurfaceVertexDraft()
	sv1.WithPosition(geom.Point2{U: 1}).WithSurface(surf)
	v1.Draft().SurfaceForm = sv1

	he := partial.NewHalfEdgeDraft()
	he.Draft().Vertices = [2]partial.VertexRef{v0, v1}

	heHandle, err := he.Build(s, partial.NewCache())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache := partial.NewFullToPartialCache(s)
	a := partial.FromFullHalfEdge(cache, heHandle)
	b := partial.FromFullHalfEdge(cache, heHandle)

	// Both decompositions must resolve to one build-cache entry since they
	// share the same draft cell.
	buildCache := partial.NewCache()
	ah, err := a.Build(s, buildCache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bh, err := b.Build(s, buildCache)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ah != bh || ah != heHandle {
		t.Errorf("expected both decompositions to rebuild to the original handle %v, got %v and %v", heHandle, ah, bh)
	}
}
