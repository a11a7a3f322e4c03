package builder

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/partial"
)

// ShellBuilder assembles a closed Shell from already-built Face handles, or
// synthesizes one from scratch with WithCubeFromEdgeLength.
type ShellBuilder struct {
	store *object.Store
	faces []object.Handle[object.Face]
}

// NewShellBuilder returns a ShellBuilder backed by store.
func NewShellBuilder(s *object.Store) *ShellBuilder {
	return &ShellBuilder{store: s}
}

// WithFaces adds already-built faces to the shell.
func (b *ShellBuilder) WithFaces(faces ...object.Handle[object.Face]) *ShellBuilder {
	b.faces = append(b.faces, faces...)
	return b
}

// cubeFaceSpec describes one of a cube's six faces: the corner indices in
// outward-CCW winding order, and how to map a corner's 3D position onto the
// face's own 2D surface coordinates.
type cubeFaceSpec struct {
	corners [4]int
	coord   func(p geom.Point3) geom.Point2
}

// WithCubeFromEdgeLength builds the six faces of a cube of the given edge
// length, centered at the origin, and adds them to the shell. Each of the
// cube's twelve edges is built exactly once and shared, in opposite
// orientation, between the two faces that meet there, so the result
// satisfies I3 (every GlobalEdge used by exactly two half-edges, pointing
// in opposite directions) without a separate reverse/glue pass. This
// mirrors with_cube_from_edge_length, trading its shared-Partial-pointer
// bookkeeping for explicit per-physical-edge caches, since this kernel
// welds GlobalVertex identity by position rather than by cell pointer.
func (b *ShellBuilder) WithCubeFromEdgeLength(edgeLength float64) (*ShellBuilder, error) {
	h := edgeLength / 2

	corners := [8]geom.Point3{
		{X: -h, Y: -h, Z: -h}, // 0
		{X: h, Y: -h, Z: -h},  // 1
		{X: h, Y: h, Z: -h},   // 2
		{X: -h, Y: h, Z: -h},  // 3
		{X: -h, Y: -h, Z: h},  // 4
		{X: h, Y: -h, Z: h},   // 5
		{X: h, Y: h, Z: h},    // 6
		{X: -h, Y: h, Z: h},   // 7
	}

	var cornerGV [8]object.Handle[object.GlobalVertex]
	for i, p := range corners {
		cornerGV[i] = b.store.WeldGlobalVertex(p)
	}

	bottomSurface, err := geom.PlaneFromPoints(
		geom.Point3{Z: -h}, geom.Point3{X: 1, Z: -h}, geom.Point3{Y: 1, Z: -h})
	if err != nil {
		return b, err
	}
	topSurface, err := geom.PlaneFromPoints(
		geom.Point3{Z: h}, geom.Point3{X: 1, Z: h}, geom.Point3{Y: 1, Z: h})
	if err != nil {
		return b, err
	}
	frontSurface, err := geom.PlaneFromPoints(
		geom.Point3{Y: -h}, geom.Point3{X: 1, Y: -h}, geom.Point3{Y: -h, Z: 1})
	if err != nil {
		return b, err
	}
	backSurface, err := geom.PlaneFromPoints(
		geom.Point3{Y: h}, geom.Point3{X: 1, Y: h}, geom.Point3{Y: h, Z: 1})
	if err != nil {
		return b, err
	}
	rightSurface, err := geom.PlaneFromPoints(
		geom.Point3{X: h}, geom.Point3{X: h, Y: 1}, geom.Point3{X: h, Z: 1})
	if err != nil {
		return b, err
	}
	leftSurface, err := geom.PlaneFromPoints(
		geom.Point3{X: -h}, geom.Point3{X: -h, Y: 1}, geom.Point3{X: -h, Z: 1})
	if err != nil {
		return b, err
	}

	specs := []struct {
		surface geom.Surface
		spec    cubeFaceSpec
	}{
		{bottomSurface, cubeFaceSpec{[4]int{0, 3, 2, 1}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.X, V: p.Y} }}},
		{topSurface, cubeFaceSpec{[4]int{4, 5, 6, 7}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.X, V: p.Y} }}},
		{frontSurface, cubeFaceSpec{[4]int{0, 1, 5, 4}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.X, V: p.Z} }}},
		{backSurface, cubeFaceSpec{[4]int{2, 3, 7, 6}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.X, V: p.Z} }}},
		{rightSurface, cubeFaceSpec{[4]int{1, 2, 6, 5}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.Y, V: p.Z} }}},
		{leftSurface, cubeFaceSpec{[4]int{0, 4, 7, 3}, func(p geom.Point3) geom.Point2 { return geom.Point2{U: p.Y, V: p.Z} }}},
	}

	type edgeKey [2]int
	globalCurves := make(map[edgeKey]object.Handle[object.GlobalCurve])
	globalEdges := make(map[edgeKey]object.Handle[object.GlobalEdge])

	keyOf := func(i, j int) edgeKey { return edgeKey{min(i, j), max(i, j)} }

	cache := partial.NewCache()

	for _, fs := range specs {
		surfHandle := b.store.InsertSurface(fs.surface)

		cycle := partial.NewCycleDraft()
		for k := 0; k < 4; k++ {
			i, j := fs.spec.corners[k], fs.spec.corners[(k+1)%4]
			key := keyOf(i, j)

			gcHandle, ok := globalCurves[key]
			if !ok {
				gcHandle = b.store.InsertGlobalCurve(object.GlobalCurve{})
				globalCurves[key] = gcHandle
			}

			geHandle, ok := globalEdges[key]
			if !ok {
				geHandle = b.store.InsertGlobalEdge(object.NewGlobalEdge(
					gcHandle,
					[2]object.Handle[object.GlobalVertex]{cornerGV[key[0]], cornerGV[key[1]]},
				))
				globalEdges[key] = geHandle
			}

			ui := fs.spec.coord(corners[i])
			uj := fs.spec.coord(corners[j])
			length := uj.Sub(ui).Length()

			curve := partial.NewCurveDraft()
			curve.WithSurface(surfHandle).AsLineSegmentFromPoints(ui, uj)
			*curve.GlobalForm() = partial.GlobalCurveFromHandle(gcHandle)

			v0 := partial.NewVertexDraft()
			v0.WithPosition(0)
			v0.Draft().Curve = curve
			sv0 := partial.NewSurfaceVertexDraft()
			sv0.WithPosition(ui).WithSurface(surfHandle)
			sv0.Draft().GlobalForm = partial.GlobalVertexFromHandle(cornerGV[i])
			v0.Draft().SurfaceForm = sv0

			v1 := partial.NewVertexDraft()
			v1.WithPosition(length)
			v1.Draft().Curve = curve
			sv1 := partial.NewSurfaceVertexDraft()
			sv1.WithPosition(uj).WithSurface(surfHandle)
			sv1.Draft().GlobalForm = partial.GlobalVertexFromHandle(cornerGV[j])
			v1.Draft().SurfaceForm = sv1

			he := partial.NewHalfEdgeDraft()
			he.Draft().Vertices = [2]partial.VertexRef{v0, v1}
			he.Draft().GlobalForm = partial.GlobalEdgeFromHandle(geHandle)

			cycle.Push(he)
		}

		face := partial.NewFaceDraft()
		face.Draft().Exterior = cycle

		faceHandle, err := face.Build(b.store, cache)
		if err != nil {
			return b, err
		}
		b.faces = append(b.faces, faceHandle)
	}

	return b, nil
}

// Build resolves the shell from its accumulated faces.
func (b *ShellBuilder) Build() (object.Handle[object.Shell], error) {
	return b.store.InsertShell(object.Shell{Faces: b.faces})
}
