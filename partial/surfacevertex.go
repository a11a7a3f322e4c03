package partial

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// SurfaceVertexDraft is the mutable content of an unbuilt SurfaceVertex.
type SurfaceVertexDraft struct {
	Position   *geom.Point2
	Surface    *object.Handle[object.Surface]
	GlobalForm GlobalVertexRef
}

// SurfaceVertexRef is a partial SurfaceVertex.
type SurfaceVertexRef struct {
	draft *SurfaceVertexDraft
	built *object.Handle[object.SurfaceVertex]
}

// NewSurfaceVertexDraft returns a fresh, empty SurfaceVertexRef.
func NewSurfaceVertexDraft() SurfaceVertexRef {
	return SurfaceVertexRef{draft: &SurfaceVertexDraft{}}
}

// SurfaceVertexFromHandle wraps an already-built SurfaceVertex.
func SurfaceVertexFromHandle(h object.Handle[object.SurfaceVertex]) SurfaceVertexRef {
	return SurfaceVertexRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted SurfaceVertex.
func (r SurfaceVertexRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *SurfaceVertexRef) Draft() *SurfaceVertexDraft {
	if r.built != nil {
		panic("partial: SurfaceVertexRef is already built")
	}
	if r.draft == nil {
		r.draft = &SurfaceVertexDraft{}
	}
	return r.draft
}

// WithPosition sets the vertex's 2D position in its surface's parameter
// space.
func (r *SurfaceVertexRef) WithPosition(p geom.Point2) *SurfaceVertexRef {
	r.Draft().Position = &p
	return r
}

// WithSurface sets the surface the vertex's position is expressed on.
func (r *SurfaceVertexRef) WithSurface(h object.Handle[object.Surface]) *SurfaceVertexRef {
	r.Draft().Surface = &h
	return r
}

// Build resolves r to a SurfaceVertex handle. If the draft's GlobalForm was
// never set, the global position is inferred by evaluating the surface at
// the vertex's 2D position and welding it through the store's spatial
// index, mirroring infer_global_position in the original builder.
func (r SurfaceVertexRef) Build(s *object.Store, c *Cache) (object.Handle[object.SurfaceVertex], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.SurfaceVertex], error) {
		d := r.draft
		var zero object.Handle[object.SurfaceVertex]
		if d.Position == nil {
			return zero, &kernelerr.MissingField{Entity: "SurfaceVertex", Field: "Position"}
		}
		if d.Surface == nil {
			return zero, &kernelerr.MissingField{Entity: "SurfaceVertex", Field: "Surface"}
		}

		global := d.GlobalForm
		if global == (GlobalVertexRef{}) {
			global = NewGlobalVertexDraft()
			surf := s.GetSurface(*d.Surface)
			global.Draft().Position = ptr(surf.PointFromSurfaceCoords(*d.Position))
		}
		globalHandle, err := global.Build(s, c)
		if err != nil {
			return zero, err
		}

		return s.InsertSurfaceVertex(object.SurfaceVertex{
			Position:   *d.Position,
			Surface:    *d.Surface,
			GlobalForm: globalHandle,
		}), nil
	})
}

func ptr[T any](v T) *T { return &v }
