package object_test

import (
	"testing"

	"github.com/ajsb85/brepkernel/builder"
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/object"
)

func Test_CheckFaceInteriors(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	fb := builder.NewFaceBuilder(surf)
	fb.WithExteriorPolygonFromPoints([]geom.Point2{{U: 0, V: 0}, {U: 10, V: 0}, {U: 10, V: 10}, {U: 0, V: 10}})
	fb.WithInteriorPolygonFromPoints([]geom.Point2{{U: 2, V: 2}, {U: 4, V: 2}, {U: 4, V: 4}, {U: 2, V: 4}})

	faceHandle, err := fb.Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.CheckFaceInteriors(faceHandle) {
		t.Error("expected interior fully inside exterior to pass CheckFaceInteriors")
	}
}

func Test_CheckFaceInteriors_OutsideExterior(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()

	fb := builder.NewFaceBuilder(surf)
	fb.WithExteriorPolygonFromPoints([]geom.Point2{{U: 0, V: 0}, {U: 2, V: 0}, {U: 2, V: 2}, {U: 0, V: 2}})
	fb.WithInteriorPolygonFromPoints([]geom.Point2{{U: 20, V: 20}, {U: 24, V: 20}, {U: 24, V: 24}, {U: 20, V: 24}})

	faceHandle, err := fb.Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.CheckFaceInteriors(faceHandle) {
		t.Error("expected an interior entirely outside the exterior to fail CheckFaceInteriors")
	}
}

func Test_CheckFaceInteriors_NoInteriors(t *testing.T) {
	s := object.NewStore()
	surf := s.XYPlane()
	fb := builder.NewFaceBuilder(surf)
	fb.WithExteriorPolygonFromPoints([]geom.Point2{{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1}})
	faceHandle, err := fb.Build(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.CheckFaceInteriors(faceHandle) {
		t.Error("expected a face with no interiors to trivially pass")
	}
}
