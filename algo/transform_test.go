package algo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/algo"
	"github.com/ajsb85/brepkernel/builder"
	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/ajsb85/brepkernel/object"
)

// Test_TransformObject_TranslatesCorners covers a pure translation: every
// corner of a transformed cube should land offset by the translation, and
// the transformed shell should validate (I3) on its own.
func Test_TransformObject_TranslatesCorners(t *testing.T) {
	s := object.NewStore()
	sb, err := builder.NewShellBuilder(s).WithCubeFromEdgeLength(2)
	require.NoError(t, err)
	shell, err := sb.Build()
	require.NoError(t, err)

	offset := geom.Vector3{X: 10, Y: 0, Z: 0}
	transformed, err := algo.TransformObject(s, geom.Transform{Offset: offset}, shell)
	require.NoError(t, err)
	require.True(t, transformed.Valid())

	got := cornerPositions(s, transformed)
	require.Len(t, got, 8)
	for p := range got {
		require.True(t, p[0] >= 9 && p[0] <= 11, "expected translated corner x in [9,11], got %v", p)
	}
}

// Test_TransformObject_RotatesAboutZ covers a 90-degree rotation about Z:
// corner (1,-1,-1) of the edge-length-2 cube should land at (1,1,-1).
func Test_TransformObject_RotatesAboutZ(t *testing.T) {
	s := object.NewStore()
	sb, err := builder.NewShellBuilder(s).WithCubeFromEdgeLength(2)
	require.NoError(t, err)
	shell, err := sb.Build()
	require.NoError(t, err)

	transformed, err := algo.TransformObject(s, geom.Transform{
		Axis:  geom.Vector3{Z: 1},
		Angle: math.Pi / 2,
	}, shell)
	require.NoError(t, err)

	got := cornerPositions(s, transformed)
	require.Containsf(t, got, [3]float64{1, 1, -1}, "rotated corners: %v", got)
}

// Test_TransformObject_FreshGlobalIdentity covers the Open Question
// resolution in DESIGN.md: transforming a shell by a non-trivial rigid
// transform mints fresh GlobalVertex identity rather than reusing the
// source shell's handles.
func Test_TransformObject_FreshGlobalIdentity(t *testing.T) {
	s := object.NewStore()
	sb, err := builder.NewShellBuilder(s).WithCubeFromEdgeLength(2)
	require.NoError(t, err)
	shell, err := sb.Build()
	require.NoError(t, err)

	transformed, err := algo.TransformObject(s, geom.Transform{Offset: geom.Vector3{X: 5}}, shell)
	require.NoError(t, err)

	before := globalVertexHandles(s, shell)
	after := globalVertexHandles(s, transformed)
	for h := range after {
		require.Falsef(t, before[h], "expected transformed shell not to reuse original GlobalVertex handle %v", h)
	}
}

func cornerPositions(s *object.Store, sh object.Handle[object.Shell]) map[[3]float64]bool {
	out := map[[3]float64]bool{}
	shell := s.GetShell(sh)
	for _, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		for _, heh := range cyc.HalfEdges {
			he := s.GetHalfEdge(heh)
			for _, vh := range he.Vertices {
				v := s.GetVertex(vh)
				sv := s.GetSurfaceVertex(v.SurfaceForm)
				gv := s.GetGlobalVertex(sv.GlobalForm)
				out[roundedArray(gv.Position.Array())] = true
			}
		}
	}
	return out
}

func globalVertexHandles(s *object.Store, sh object.Handle[object.Shell]) map[object.Handle[object.GlobalVertex]]bool {
	out := map[object.Handle[object.GlobalVertex]]bool{}
	shell := s.GetShell(sh)
	for _, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		for _, heh := range cyc.HalfEdges {
			he := s.GetHalfEdge(heh)
			for _, vh := range he.Vertices {
				v := s.GetVertex(vh)
				sv := s.GetSurfaceVertex(v.SurfaceForm)
				out[sv.GlobalForm] = true
			}
		}
	}
	return out
}

func roundedArray(a [3]float64) [3]float64 {
	round := func(f float64) float64 { return math.Round(f*1e6) / 1e6 }
	return [3]float64{round(a[0]), round(a[1]), round(a[2])}
}
