// Package builder assembles partial-object drafts into the higher-level
// shapes a caller actually wants: polygonal cycles, faces, and a
// from-scratch cube shell. It is the generalization of the teacher's
// examples/*/main.go "construct a shape, then export it" scripts into a
// reusable API, grounded on the cube-builder algorithm in
// fj-kernel/src/builder/shell.rs.
package builder

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/partial"
)

// CycleBuilder assembles a CycleRef one poly-chain segment at a time.
type CycleBuilder struct {
	Surface object.Handle[object.Surface]
	cycle   partial.CycleRef
	first   geom.Point2
	hasLast bool
	last    geom.Point2
}

// NewCycleBuilder starts a cycle whose half-edges all lie on surface.
func NewCycleBuilder(surface object.Handle[object.Surface]) *CycleBuilder {
	return &CycleBuilder{Surface: surface, cycle: partial.NewCycleDraft()}
}

// WithPolyChainFromPoints appends one line-segment half-edge between each
// consecutive pair of points, leaving the chain open: the cycle is not
// closed until CloseWithLineSegment connects the last point back to the
// first.
func (b *CycleBuilder) WithPolyChainFromPoints(points []geom.Point2) *CycleBuilder {
	for i := 0; i < len(points); i++ {
		if i == 0 {
			b.first = points[0]
			b.last = points[0]
			b.hasLast = true
			continue
		}
		b.pushSegment(b.last, points[i])
		b.last = points[i]
	}
	return b
}

// CloseWithLineSegment appends the final segment connecting the last point
// given to WithPolyChainFromPoints back to the first, closing the cycle.
func (b *CycleBuilder) CloseWithLineSegment() *CycleBuilder {
	if b.hasLast {
		b.pushSegment(b.last, b.first)
	}
	return b
}

func (b *CycleBuilder) pushSegment(a, c geom.Point2) {
	curve := partial.NewCurveDraft()
	curve.WithSurface(b.Surface).AsLineSegmentFromPoints(a, c)

	length := c.Sub(a).Length()

	v0 := partial.NewVertexDraft()
	v0.WithPosition(0)
	v0.Draft().Curve = curve
	sv0 := partial.NewSurfaceVertexDraft()
	sv0.WithPosition(a).WithSurface(b.Surface)
	v0.Draft().SurfaceForm = sv0

	v1 := partial.NewVertexDraft()
	v1.WithPosition(length)
	v1.Draft().Curve = curve
	sv1 := partial.NewSurfaceVertexDraft()
	sv1.WithPosition(c).WithSurface(b.Surface)
	v1.Draft().SurfaceForm = sv1

	he := partial.NewHalfEdgeDraft()
	he.Draft().Vertices = [2]partial.VertexRef{v0, v1}

	b.cycle.Push(he)
}

// Cycle returns the CycleRef assembled so far.
func (b *CycleBuilder) Cycle() partial.CycleRef { return b.cycle }
