package object

import (
	"fmt"

	"github.com/ajsb85/brepkernel/kernelerr"
)

// validateHalfEdge enforces I1 (both vertices share a Curve) and the part
// of I2 that's checkable locally: both vertices' global witnesses must
// appear in the half-edge's own GlobalEdge.
func (s *Store) validateHalfEdge(he HalfEdge) error {
	v0 := s.GetVertex(he.Vertices[0])
	v1 := s.GetVertex(he.Vertices[1])
	if v0.Curve != v1.Curve {
		return &kernelerr.InvariantViolated{Kind: "HalfEdge", Detail: "vertex curve mismatch"}
	}

	ge := s.GetGlobalEdge(he.GlobalForm)
	globals := ge.Vertices()
	sv0 := s.GetSurfaceVertex(v0.SurfaceForm)
	sv1 := s.GetSurfaceVertex(v1.SurfaceForm)

	if !containsGlobalVertex(globals, sv0.GlobalForm) || !containsGlobalVertex(globals, sv1.GlobalForm) {
		return &kernelerr.InvariantViolated{Kind: "HalfEdge", Detail: "surface vertex global form not in global edge"}
	}
	return nil
}

func containsGlobalVertex(set [2]Handle[GlobalVertex], h Handle[GlobalVertex]) bool {
	return set[0] == h || set[1] == h
}

// validateCycle enforces I5: for all i, the end vertex of half-edge i
// equals the start vertex of half-edge (i+1) mod n, and every half-edge in
// the cycle shares the same Surface via its curve.
func (s *Store) validateCycle(c Cycle) error {
	n := len(c.HalfEdges)
	if n == 0 {
		return &kernelerr.InvariantViolated{Kind: "Cycle", Detail: "empty cycle"}
	}

	var surface Handle[Surface]
	for i, heh := range c.HalfEdges {
		he := s.GetHalfEdge(heh)
		next := s.GetHalfEdge(c.HalfEdges[(i+1)%n])

		end := s.GetSurfaceVertex(s.GetVertex(he.Vertices[1]).SurfaceForm).GlobalForm
		start := s.GetSurfaceVertex(s.GetVertex(next.Vertices[0]).SurfaceForm).GlobalForm
		if end != start {
			return &kernelerr.InvariantViolated{
				Kind:   "Cycle",
				Detail: fmt.Sprintf("not closed: half-edge %d ends at a different vertex than half-edge %d starts", i, (i+1)%n),
			}
		}

		curve := s.GetCurve(s.GetVertex(he.Vertices[0]).Curve)
		if i == 0 {
			surface = curve.Surface
		} else if curve.Surface != surface {
			return &kernelerr.InvariantViolated{Kind: "Cycle", Detail: "half-edges span different surfaces"}
		}
	}
	return nil
}

// validateShell enforces I3: every GlobalEdge used anywhere in the shell's
// faces is used by exactly two half-edges, pointing in opposite directions
// (P3 in the property tests).
func (s *Store) validateShell(sh Shell) error {
	users := make(map[uint64][]Handle[HalfEdge])

	for _, fh := range sh.Faces {
		face := s.GetFace(fh)
		cycles := make([]Handle[Cycle], 0, 1+len(face.Interiors))
		cycles = append(cycles, face.Exterior)
		cycles = append(cycles, face.Interiors...)

		for _, ch := range cycles {
			cyc := s.GetCycle(ch)
			for _, heh := range cyc.HalfEdges {
				he := s.GetHalfEdge(heh)
				gid := he.GlobalForm.id
				users[gid] = append(users[gid], heh)
			}
		}
	}

	for gid, used := range users {
		if len(used) != 2 {
			return &kernelerr.InvariantViolated{
				Kind:   "Shell",
				Detail: fmt.Sprintf("global edge #%d used by %d half-edges, want exactly 2", gid, len(used)),
			}
		}

		he0 := s.GetHalfEdge(used[0])
		he1 := s.GetHalfEdge(used[1])

		a0 := s.globalVertexOfVertex(he0.Vertices[0])
		b0 := s.globalVertexOfVertex(he0.Vertices[1])
		a1 := s.globalVertexOfVertex(he1.Vertices[0])
		b1 := s.globalVertexOfVertex(he1.Vertices[1])

		if !(a0 == b1 && b0 == a1) {
			return &kernelerr.InvariantViolated{
				Kind:   "Shell",
				Detail: fmt.Sprintf("global edge #%d's two half-edges don't point in opposite directions", gid),
			}
		}
	}
	return nil
}

func (s *Store) globalVertexOfVertex(h Handle[Vertex]) Handle[GlobalVertex] {
	v := s.GetVertex(h)
	return s.GetSurfaceVertex(v.SurfaceForm).GlobalForm
}
