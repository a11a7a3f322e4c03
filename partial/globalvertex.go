package partial

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// GlobalVertexDraft is the mutable content of an unbuilt GlobalVertex.
type GlobalVertexDraft struct {
	Position *geom.Point3
}

// GlobalVertexRef is a partial GlobalVertex: either a pointer to a shared
// GlobalVertexDraft, or an already-built handle.
type GlobalVertexRef struct {
	draft *GlobalVertexDraft
	built *object.Handle[object.GlobalVertex]
}

// NewGlobalVertexDraft returns a fresh, empty GlobalVertexRef.
func NewGlobalVertexDraft() GlobalVertexRef {
	return GlobalVertexRef{draft: &GlobalVertexDraft{}}
}

// GlobalVertexFromHandle wraps an already-built GlobalVertex.
func GlobalVertexFromHandle(h object.Handle[object.GlobalVertex]) GlobalVertexRef {
	return GlobalVertexRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted GlobalVertex.
func (r GlobalVertexRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if r is
// the zero value. Panics if r is already built.
func (r *GlobalVertexRef) Draft() *GlobalVertexDraft {
	if r.built != nil {
		panic("partial: GlobalVertexRef is already built")
	}
	if r.draft == nil {
		r.draft = &GlobalVertexDraft{}
	}
	return r.draft
}

// SetPosition sets the inferred 3D position of the draft, as
// Store.WeldGlobalVertex would if called directly; used by callers that
// already know the coordinates (e.g. SurfaceVertex inference).
func (r *GlobalVertexRef) SetPosition(p geom.Point3) {
	r.Draft().Position = &p
}

// Build resolves r to a GlobalVertex handle, welding through the store's
// spatial index so independently-drafted vertices at the same position
// share one handle.
func (r GlobalVertexRef) Build(s *object.Store, c *Cache) (object.Handle[object.GlobalVertex], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.GlobalVertex], error) {
		if r.draft.Position == nil {
			var zero object.Handle[object.GlobalVertex]
			return zero, &kernelerr.MissingField{Entity: "GlobalVertex", Field: "Position"}
		}
		return s.WeldGlobalVertex(*r.draft.Position), nil
	})
}
