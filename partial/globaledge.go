package partial

import (
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// GlobalEdgeDraft is the mutable content of an unbuilt GlobalEdge.
type GlobalEdgeDraft struct {
	Curve    GlobalCurveRef
	Vertices [2]GlobalVertexRef
}

// GlobalEdgeRef is a partial GlobalEdge.
type GlobalEdgeRef struct {
	draft *GlobalEdgeDraft
	built *object.Handle[object.GlobalEdge]
}

// NewGlobalEdgeDraft returns a fresh, empty GlobalEdgeRef.
func NewGlobalEdgeDraft() GlobalEdgeRef {
	return GlobalEdgeRef{draft: &GlobalEdgeDraft{}}
}

// GlobalEdgeFromHandle wraps an already-built GlobalEdge.
func GlobalEdgeFromHandle(h object.Handle[object.GlobalEdge]) GlobalEdgeRef {
	return GlobalEdgeRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted GlobalEdge.
func (r GlobalEdgeRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *GlobalEdgeRef) Draft() *GlobalEdgeDraft {
	if r.built != nil {
		panic("partial: GlobalEdgeRef is already built")
	}
	if r.draft == nil {
		r.draft = &GlobalEdgeDraft{}
	}
	return r.draft
}

// Build resolves r to a GlobalEdge handle. If the draft's curve was never
// set, a fresh GlobalCurve is minted -- the HalfEdge that owns this global
// edge is expected to have adopted its Curve's GlobalForm in already,
// matching the original builder's "the global edge takes its curve from
// the half-edge's curve" rule.
func (r GlobalEdgeRef) Build(s *object.Store, c *Cache) (object.Handle[object.GlobalEdge], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.GlobalEdge], error) {
		d := r.draft
		var zero object.Handle[object.GlobalEdge]
		if d.Vertices[0] == (GlobalVertexRef{}) || d.Vertices[1] == (GlobalVertexRef{}) {
			return zero, &kernelerr.MissingField{Entity: "GlobalEdge", Field: "Vertices"}
		}

		curve := d.Curve
		if curve == (GlobalCurveRef{}) {
			curve = NewGlobalCurveDraft()
		}
		curveHandle, err := curve.Build(s, c)
		if err != nil {
			return zero, err
		}

		v0, err := d.Vertices[0].Build(s, c)
		if err != nil {
			return zero, err
		}
		v1, err := d.Vertices[1].Build(s, c)
		if err != nil {
			return zero, err
		}

		return s.InsertGlobalEdge(object.NewGlobalEdge(curveHandle, [2]object.Handle[object.GlobalVertex]{v0, v1})), nil
	})
}
