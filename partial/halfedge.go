package partial

import "github.com/ajsb85/brepkernel/object"

// HalfEdgeDraft is the mutable content of an unbuilt HalfEdge.
type HalfEdgeDraft struct {
	Vertices   [2]VertexRef
	GlobalForm GlobalEdgeRef
}

// HalfEdgeRef is a partial HalfEdge.
type HalfEdgeRef struct {
	draft *HalfEdgeDraft
	built *object.Handle[object.HalfEdge]
}

// NewHalfEdgeDraft returns a fresh, empty HalfEdgeRef.
func NewHalfEdgeDraft() HalfEdgeRef {
	return HalfEdgeRef{draft: &HalfEdgeDraft{}}
}

// HalfEdgeFromHandle wraps an already-built HalfEdge.
func HalfEdgeFromHandle(h object.Handle[object.HalfEdge]) HalfEdgeRef {
	return HalfEdgeRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted HalfEdge.
func (r HalfEdgeRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *HalfEdgeRef) Draft() *HalfEdgeDraft {
	if r.built != nil {
		panic("partial: HalfEdgeRef is already built")
	}
	if r.draft == nil {
		r.draft = &HalfEdgeDraft{}
	}
	return r.draft
}

// reconcileVertexCurves implements the fill-in rule: a partial HalfEdge
// whose two vertices do not yet share a Curve adopts the first vertex's
// curve into the second.
func (d *HalfEdgeDraft) reconcileVertexCurves() {
	if d.Vertices[0].IsBuilt() || d.Vertices[1].IsBuilt() {
		return
	}
	v0 := d.Vertices[0].Draft()
	if v0.Curve == (CurveRef{}) {
		return
	}
	d.Vertices[1].InheritCurve(v0.Curve)
}

// Build resolves r to a HalfEdge handle.
func (r HalfEdgeRef) Build(s *object.Store, c *Cache) (object.Handle[object.HalfEdge], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.HalfEdge], error) {
		d := r.draft
		var zero object.Handle[object.HalfEdge]

		d.reconcileVertexCurves()

		v0Handle, err := d.Vertices[0].Build(s, c)
		if err != nil {
			return zero, err
		}
		v1Handle, err := d.Vertices[1].Build(s, c)
		if err != nil {
			return zero, err
		}

		globalForm := d.GlobalForm
		if globalForm == (GlobalEdgeRef{}) {
			v0 := s.GetVertex(v0Handle)
			curve := s.GetCurve(v0.Curve)
			sv0 := s.GetSurfaceVertex(v0.SurfaceForm)
			sv1 := s.GetSurfaceVertex(s.GetVertex(v1Handle).SurfaceForm)

			globalForm = NewGlobalEdgeDraft()
			globalForm.Draft().Curve = GlobalCurveFromHandle(curve.GlobalForm)
			globalForm.Draft().Vertices = [2]GlobalVertexRef{
				GlobalVertexFromHandle(sv0.GlobalForm),
				GlobalVertexFromHandle(sv1.GlobalForm),
			}
		}
		globalHandle, err := globalForm.Build(s, c)
		if err != nil {
			return zero, err
		}

		return s.InsertHalfEdge(object.HalfEdge{
			Vertices:   [2]object.Handle[object.Vertex]{v0Handle, v1Handle},
			GlobalForm: globalHandle,
		})
	})
}
