package partial

import (
	"github.com/ajsb85/brepkernel/kernelerr"
	"github.com/ajsb85/brepkernel/object"
)

// FaceDraft is the mutable content of an unbuilt Face.
type FaceDraft struct {
	Exterior  CycleRef
	Interiors []CycleRef
	Color     *object.Color
}

// FaceRef is a partial Face.
type FaceRef struct {
	draft *FaceDraft
	built *object.Handle[object.Face]
}

// NewFaceDraft returns a fresh, empty FaceRef.
func NewFaceDraft() FaceRef {
	return FaceRef{draft: &FaceDraft{}}
}

// FaceFromHandle wraps an already-built Face.
func FaceFromHandle(h object.Handle[object.Face]) FaceRef {
	return FaceRef{built: &h}
}

// IsBuilt reports whether r already refers to an inserted Face.
func (r FaceRef) IsBuilt() bool { return r.built != nil }

// Draft returns the mutable draft backing r, auto-vivifying one if needed.
func (r *FaceRef) Draft() *FaceDraft {
	if r.built != nil {
		panic("partial: FaceRef is already built")
	}
	if r.draft == nil {
		r.draft = &FaceDraft{}
	}
	return r.draft
}

// WithColor sets the face's render color.
func (r *FaceRef) WithColor(col object.Color) *FaceRef {
	r.Draft().Color = &col
	return r
}

// Build resolves r to a Face handle. A face with no exterior cycle is a
// MissingField error; Face has no other enforced invariant (I6 is an
// opt-in checker, see object.Store.CheckFaceInteriors).
func (r FaceRef) Build(s *object.Store, c *Cache) (object.Handle[object.Face], error) {
	if r.built != nil {
		return *r.built, nil
	}
	return resolve(c, r.draft, func() (object.Handle[object.Face], error) {
		d := r.draft
		var zero object.Handle[object.Face]

		if d.Exterior == (CycleRef{}) {
			return zero, &kernelerr.MissingField{Entity: "Face", Field: "Exterior"}
		}
		exteriorHandle, err := d.Exterior.Build(s, c)
		if err != nil {
			return zero, err
		}

		interiorHandles := make([]object.Handle[object.Cycle], len(d.Interiors))
		for i, in := range d.Interiors {
			h, err := in.Build(s, c)
			if err != nil {
				return zero, err
			}
			interiorHandles[i] = h
		}

		color := object.DefaultColor
		if d.Color != nil {
			color = *d.Color
		}

		return s.InsertFace(object.Face{
			Exterior:  exteriorHandle,
			Interiors: interiorHandles,
			Color:     color,
		}), nil
	})
}
