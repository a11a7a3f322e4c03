package partial

import (
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// CurveDraft is the mutable content of an unbuilt Curve.
type CurveDraft struct {
	Surface    *object.Handle[object.Surface]
	Path       object.SurfacePath
	GlobalForm GlobalCurveRef
}

// CurveRef is a partial Curve.
type CurveRef struct {
	draft *CurveDraft
	built *object.Handle[object.Curve]
}

// NewCurveDraft returns a fresh, empty CurveRef.
func NewCurveDraft() CurveRef {
	return CurveRef{draft: &CurveDraft{}}
}

// CurveFromHandle wraps an already-built Curve.
func CurveFromHandle(h object.Handle[object.Curve]) CurveRef {
	return CurveRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted Curve.
func (r CurveRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *CurveRef) Draft() *CurveDraft {
	if r.built != nil {
		panic("partial: CurveRef is already built")
	}
	if r.draft == nil {
		r.draft = &CurveDraft{}
	}
	return r.draft
}

// WithSurface sets the surface the curve's 2D path is defined on.
func (r *CurveRef) WithSurface(h object.Handle[object.Surface]) *CurveRef {
	r.Draft().Surface = &h
	return r
}

// AsLineSegmentFromPoints sets the draft's path to the line through a and b
// in the surface's 2D parameter space, the Curve analogue of
// update_as_line_segment_from_points.
func (r *CurveRef) AsLineSegmentFromPoints(a, b geom.Point2) *CurveRef {
	r.Draft().Path = object.LineSurfacePath{Line: object.Line2D{
		Origin:    a,
		Direction: b.Sub(a),
	}}
	return r
}

// GlobalForm returns the draft's global curve reference, auto-vivifying a
// fresh one on first access so two curves that share a call site share one
// identity.
func (r *CurveRef) GlobalForm() *GlobalCurveRef {
	d := r.Draft()
	if d.GlobalForm == (GlobalCurveRef{}) {
		d.GlobalForm = NewGlobalCurveDraft()
	}
	return &d.GlobalForm
}

// Build resolves r to a Curve handle.
func (r CurveRef) Build(s *object.Store, c *Cache) (object.Handle[object.Curve], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.Curve], error) {
		d := r.draft
		var zero object.Handle[object.Curve]
		if d.Surface == nil {
			return zero, &kernelerr.MissingField{Entity: "Curve", Field: "Surface"}
		}
		if d.Path == nil {
			return zero, &kernelerr.MissingField{Entity: "Curve", Field: "Path"}
		}
		global := d.GlobalForm
		if global == (GlobalCurveRef{}) {
			global = NewGlobalCurveDraft()
		}
		globalHandle, err := global.Build(s, c)
		if err != nil {
			return zero, err
		}
		return s.InsertCurve(object.Curve{
			Surface:    *d.Surface,
			Path:       d.Path,
			GlobalForm: globalHandle,
		}), nil
	})
}
