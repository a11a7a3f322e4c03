package builder

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/object"
	"github.com/ajsb85/brepkernel/partial"
)

// FaceBuilder assembles a FaceRef from an exterior cycle, zero or more
// interior cycles, and an optional color -- an option-record, the fields
// set one at a time through With* calls before Build resolves everything
// into the store.
type FaceBuilder struct {
	Surface object.Handle[object.Surface]
	face    partial.FaceRef
}

// NewFaceBuilder starts a face on the given surface.
func NewFaceBuilder(surface object.Handle[object.Surface]) *FaceBuilder {
	return &FaceBuilder{Surface: surface, face: partial.NewFaceDraft()}
}

// WithExterior sets the face's exterior cycle directly.
func (b *FaceBuilder) WithExterior(c partial.CycleRef) *FaceBuilder {
	b.face.Draft().Exterior = c
	return b
}

// WithExteriorPolygonFromPoints builds a closed polygon on b.Surface from
// points and sets it as the face's exterior cycle.
func (b *FaceBuilder) WithExteriorPolygonFromPoints(points []geom.Point2) *FaceBuilder {
	cb := NewCycleBuilder(b.Surface)
	cb.WithPolyChainFromPoints(points).CloseWithLineSegment()
	return b.WithExterior(cb.Cycle())
}

// WithInteriors adds cycles cut out of the face as holes.
func (b *FaceBuilder) WithInteriors(cycles ...partial.CycleRef) *FaceBuilder {
	d := b.face.Draft()
	d.Interiors = append(d.Interiors, cycles...)
	return b
}

// WithInteriorPolygonFromPoints builds a closed polygon on b.Surface from
// points and adds it as an interior (hole) cycle.
func (b *FaceBuilder) WithInteriorPolygonFromPoints(points []geom.Point2) *FaceBuilder {
	cb := NewCycleBuilder(b.Surface)
	cb.WithPolyChainFromPoints(points).CloseWithLineSegment()
	return b.WithInteriors(cb.Cycle())
}

// WithColor sets the face's render color.
func (b *FaceBuilder) WithColor(col object.Color) *FaceBuilder {
	b.face.Draft().Color = &col
	return b
}

// Face returns the FaceRef assembled so far.
func (b *FaceBuilder) Face() partial.FaceRef { return b.face }

// Build resolves the face into the store.
func (b *FaceBuilder) Build(s *object.Store) (object.Handle[object.Face], error) {
	return b.face.Build(s, partial.NewCache())
}
