package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajsb85/brepkernel/builder"
	"github.com/ajsb85/brepkernel/object"
)

func buildCube(t *testing.T, edgeLength float64) (*object.Store, object.Handle[object.Shell]) {
	t.Helper()
	s := object.NewStore()
	sb, err := builder.NewShellBuilder(s).WithCubeFromEdgeLength(edgeLength)
	require.NoError(t, err, "building cube faces")
	shellHandle, err := sb.Build()
	require.NoError(t, err, "assembling shell")
	return s, shellHandle
}

// Test_Cube_SixFacesFourHalfEdgesEach covers the face/cycle shape implied by
// scenario S3.
func Test_Cube_SixFacesFourHalfEdgesEach(t *testing.T) {
	s, shellHandle := buildCube(t, 2)
	shell := s.GetShell(shellHandle)
	require.Len(t, shell.Faces, 6)

	for i, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		require.Lenf(t, cyc.HalfEdges, 4, "face %d exterior half-edges", i)
		require.Emptyf(t, face.Interiors, "face %d interior cycles", i)
	}
}

// Test_Cube_TwelveEdgesWeldedOppositely covers property P3.
func Test_Cube_TwelveEdgesWeldedOppositely(t *testing.T) {
	s, shellHandle := buildCube(t, 2)
	shell := s.GetShell(shellHandle)

	users := map[uint64][]object.Handle[object.HalfEdge]{}
	for _, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		for _, heh := range cyc.HalfEdges {
			he := s.GetHalfEdge(heh)
			users[he.GlobalForm.ID()] = append(users[he.GlobalForm.ID()], heh)
		}
	}

	require.Len(t, users, 12, "distinct global edges")

	gv := func(h object.Handle[object.Vertex]) object.Handle[object.GlobalVertex] {
		return s.GetSurfaceVertex(s.GetVertex(h).SurfaceForm).GlobalForm
	}
	for gid, used := range users {
		require.Lenf(t, used, 2, "global edge #%d users", gid)

		he0 := s.GetHalfEdge(used[0])
		he1 := s.GetHalfEdge(used[1])
		a0, b0 := gv(he0.Vertices[0]), gv(he0.Vertices[1])
		a1, b1 := gv(he1.Vertices[0]), gv(he1.Vertices[1])
		require.Truef(t, a0 == b1 && b0 == a1, "global edge #%d: half-edges don't point in opposite directions", gid)
	}
}

// Test_Cube_EightGlobalVertices covers property P4.
func Test_Cube_EightGlobalVertices(t *testing.T) {
	s, shellHandle := buildCube(t, 2)
	shell := s.GetShell(shellHandle)

	seen := map[uint64]bool{}
	for _, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		for _, heh := range cyc.HalfEdges {
			he := s.GetHalfEdge(heh)
			for _, vh := range he.Vertices {
				v := s.GetVertex(vh)
				sv := s.GetSurfaceVertex(v.SurfaceForm)
				seen[sv.GlobalForm.ID()] = true
			}
		}
	}
	require.Len(t, seen, 8, "distinct global vertices")
}

// Test_Cube_CornersAtExpectedPositions covers scenario S3's corner
// coordinates for an edge-length-2 cube.
func Test_Cube_CornersAtExpectedPositions(t *testing.T) {
	s, shellHandle := buildCube(t, 2)
	shell := s.GetShell(shellHandle)

	want := map[[3]float64]bool{}
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				want[[3]float64{x, y, z}] = true
			}
		}
	}

	got := map[[3]float64]bool{}
	for _, fh := range shell.Faces {
		face := s.GetFace(fh)
		cyc := s.GetCycle(face.Exterior)
		for _, heh := range cyc.HalfEdges {
			he := s.GetHalfEdge(heh)
			for _, vh := range he.Vertices {
				v := s.GetVertex(vh)
				sv := s.GetSurfaceVertex(v.SurfaceForm)
				gv := s.GetGlobalVertex(sv.GlobalForm)
				got[gv.Position.Array()] = true
			}
		}
	}

	require.Equal(t, want, got)
}

// Test_Cube_ShellValidates confirms the built shell passes the I3 shell
// validator run by Store.InsertShell (a cube that failed welding would
// have failed to build at all).
func Test_Cube_ShellValidates(t *testing.T) {
	_, shellHandle := buildCube(t, 2)
	require.True(t, shellHandle.Valid())
}
