package partial

import "github.com/ajsb85/brepkernel/object"

// CycleDraft is the mutable content of an unbuilt Cycle.
type CycleDraft struct {
	HalfEdges []HalfEdgeRef
}

// CycleRef is a partial Cycle.
type CycleRef struct {
	draft *CycleDraft
	built *object.Handle[object.Cycle]
}

// NewCycleDraft returns a fresh, empty CycleRef.
func NewCycleDraft() CycleRef {
	return CycleRef{draft: &CycleDraft{}}
}

// CycleFromHandle wraps an already-built Cycle.
func CycleFromHandle(h object.Handle[object.Cycle]) CycleRef {
	return CycleRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted Cycle.
func (r CycleRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *CycleRef) Draft() *CycleDraft {
	if r.built != nil {
		panic("partial: CycleRef is already built")
	}
	if r.draft == nil {
		r.draft = &CycleDraft{}
	}
	return r.draft
}

// Push appends a half-edge to the cycle's draft.
func (r *CycleRef) Push(he HalfEdgeRef) {
	d := r.Draft()
	d.HalfEdges = append(d.HalfEdges, he)
}

// Build resolves r to a Cycle handle. Closedness (I5) is checked by
// Store.InsertCycle, not here.
func (r CycleRef) Build(s *object.Store, c *Cache) (object.Handle[object.Cycle], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.Cycle], error) {
		d := r.draft
		var zero object.Handle[object.Cycle]

		handles := make([]object.Handle[object.HalfEdge], len(d.HalfEdges))
		for i, he := range d.HalfEdges {
			h, err := he.Build(s, c)
			if err != nil {
				return zero, err
			}
			handles[i] = h
		}

		return s.InsertCycle(object.Cycle{HalfEdges: handles})
	})
}
