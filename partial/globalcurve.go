package partial

import "github.com/ajsb85/brepkernel/object"

// GlobalCurveRef is a partial GlobalCurve. GlobalCurve carries no fields, so
// a draft has nothing to set; it exists purely so two HalfEdges can share
// the same not-yet-minted identity by holding the same draft pointer, and
// have that identity resolve to one GlobalCurve handle at build time.
type GlobalCurveRef struct {
	draft *struct{}
	built *object.Handle[object.GlobalCurve]
}

// NewGlobalCurveDraft returns an unbuilt GlobalCurveRef. Every call returns
// a reference with its own identity; share the returned value (not a fresh
// call) to mean "the same curve".
func NewGlobalCurveDraft() GlobalCurveRef {
	return GlobalCurveRef{draft: new(struct{})}
}

// GlobalCurveFromHandle wraps an already-built GlobalCurve.
func GlobalCurveFromHandle(h object.Handle[object.GlobalCurve]) GlobalCurveRef {
	return GlobalCurveRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted GlobalCurve.
func (r GlobalCurveRef) IsBuilt() bool { return r.built != nil }

// Build resolves r to a GlobalCurve handle, minting a fresh one on first
// resolution of a given draft identity.
func (r GlobalCurveRef) Build(s *object.Store, c *Cache) (object.Handle[object.GlobalCurve], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.GlobalCurve], error) {
		return s.InsertGlobalCurve(object.GlobalCurve{}), nil
	})
}
