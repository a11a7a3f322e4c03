package partial

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// VertexDraft is the mutable content of an unbuilt Vertex.
type VertexDraft struct {
	Position    *float64
	Curve       CurveRef
	SurfaceForm SurfaceVertexRef
}

// VertexRef is a partial Vertex.
type VertexRef struct {
	draft *VertexDraft
	built *object.Handle[object.Vertex]
}

// NewVertexDraft returns a fresh, empty VertexRef.
func NewVertexDraft() VertexRef {
	return VertexRef{draft: &VertexDraft{}}
}

// VertexFromHandle wraps an already-built Vertex.
func VertexFromHandle(h object.Handle[object.Vertex]) VertexRef {
	return VertexRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted Vertex.
func (r VertexRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *VertexRef) Draft() *VertexDraft {
	if r.built != nil {
		panic("partial: VertexRef is already built")
	}
	if r.draft == nil {
		r.draft = &VertexDraft{}
	}
	return r.draft
}

// WithPosition sets the vertex's 1D position along its curve.
func (r *VertexRef) WithPosition(t float64) *VertexRef {
	r.Draft().Position = &t
	return r
}

// InheritCurve adopts curve as the vertex's curve, if the vertex does not
// already have one. This is how an enclosing HalfEdge fills in a vertex
// that was drafted without a curve of its own (spec.md §4.E: "a partial
// Vertex whose curve is unset inherits it from its enclosing HalfEdge").
func (r *VertexRef) InheritCurve(curve CurveRef) {
	d := r.Draft()
	if d.Curve == (CurveRef{}) {
		d.Curve = curve
	}
}

// Build resolves r to a Vertex handle.
func (r VertexRef) Build(s *object.Store, c *Cache) (object.Handle[object.Vertex], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.Vertex], error) {
		d := r.draft
		var zero object.Handle[object.Vertex]
		if d.Position == nil {
			return zero, &kernelerr.MissingField{Entity: "Vertex", Field: "Position"}
		}
		if d.Curve == (CurveRef{}) {
			return zero, &kernelerr.MissingField{Entity: "Vertex", Field: "Curve"}
		}
		if d.SurfaceForm == (SurfaceVertexRef{}) {
			return zero, &kernelerr.MissingField{Entity: "Vertex", Field: "SurfaceForm"}
		}

		curveHandle, err := d.Curve.Build(s, c)
		if err != nil {
			return zero, err
		}
		svHandle, err := d.SurfaceForm.Build(s, c)
		if err != nil {
			return zero, err
		}

		return s.InsertVertex(object.Vertex{
			Position:    geom.Point1{T: *d.Position},
			Curve:       curveHandle,
			SurfaceForm: svHandle,
		}), nil
	})
}
