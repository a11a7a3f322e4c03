package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/internal/geom"
)

func Test_Store_InsertSurface_Dedup(t *testing.T) {
	s := NewStore()
	surf, err := geom.PlaneFromPoints(geom.Point3{}, geom.Point3{X: 1}, geom.Point3{Y: 1})
	require.NoError(t, err)

	h1 := s.InsertSurface(surf)
	h2 := s.InsertSurface(surf)
	require.Equal(t, h1, h2, "identical surfaces should dedup to one handle")
}

func Test_Store_Planes_Cached(t *testing.T) {
	s := NewStore()
	require.Equal(t, s.XYPlane(), s.XYPlane(), "XYPlane() should return a stable handle across calls")
	require.NotEqual(t, s.XYPlane(), s.XZPlane(), "XYPlane and XZPlane should be distinct")
}

func Test_Store_WeldGlobalVertex(t *testing.T) {
	s := NewStore()
	h1 := s.WeldGlobalVertex(geom.Point3{X: 1, Y: 2, Z: 3})
	h2 := s.WeldGlobalVertex(geom.Point3{X: 1, Y: 2, Z: 3})
	require.Equal(t, h1, h2, "exact-duplicate positions should weld to one handle")

	h3 := s.WeldGlobalVertex(geom.Point3{X: 1 + WeldTolerance/10, Y: 2, Z: 3})
	require.Equal(t, h1, h3, "a position within weld tolerance should weld")

	h4 := s.WeldGlobalVertex(geom.Point3{X: 1, Y: 2, Z: 3 + 1})
	require.NotEqual(t, h1, h4, "a position a full unit away should mint a fresh vertex")
}

func Test_Table_Get_ReturnsInsertedValue(t *testing.T) {
	s := NewStore()
	gv := GlobalVertex{Position: geom.Point3{X: 9}}
	h := s.InsertGlobalVertex(gv)
	require.Equal(t, gv, s.GetGlobalVertex(h))
}

func Test_Handle_ZeroValueInvalid(t *testing.T) {
	var h Handle[GlobalVertex]
	require.False(t, h.Valid(), "the zero Handle should be invalid")

	s := NewStore()
	minted := s.InsertGlobalVertex(GlobalVertex{})
	require.True(t, minted.Valid(), "a handle from a successful insert should be valid")
}
