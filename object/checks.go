package object

import "github.com/ajsb85/brepkernel/internal/geom"

// CheckFaceInteriors reports whether every interior cycle of the face h is
// fully inside the region bounded by its exterior cycle (I6). Unlike the
// validators in validate.go, this is a checker a caller opts into, not an
// invariant enforced at insertion -- the spec is explicit that interior
// containment is "a checker, not an enforcement".
//
// The test projects each cycle onto its shared surface's (u, v) parameter
// space and uses a standard even-odd ray-casting point-in-polygon test
// against the exterior's vertices for every vertex of every interior.
func (s *Store) CheckFaceInteriors(h Handle[Face]) bool {
	face := s.GetFace(h)
	if len(face.Interiors) == 0 {
		return true
	}

	exterior := s.cyclePolygon(face.Exterior)
	for _, in := range face.Interiors {
		for _, p := range s.cyclePolygon(in) {
			if !pointInPolygon(p, exterior) {
				return false
			}
		}
	}
	return true
}

func (s *Store) cyclePolygon(h Handle[Cycle]) []geom.Point2 {
	cyc := s.GetCycle(h)
	pts := make([]geom.Point2, 0, len(cyc.HalfEdges))
	for _, heh := range cyc.HalfEdges {
		he := s.GetHalfEdge(heh)
		v := s.GetVertex(he.Vertices[0])
		sv := s.GetSurfaceVertex(v.SurfaceForm)
		pts = append(pts, sv.Position)
	}
	return pts
}

// pointInPolygon is the standard even-odd ray-casting test.
func pointInPolygon(p geom.Point2, poly []geom.Point2) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		intersects := (pi.V > p.V) != (pj.V > p.V)
		if intersects {
			uAtV := (pj.U-pi.U)*(p.V-pi.V)/(pj.V-pi.V) + pi.U
			if p.U < uAtV {
				inside = !inside
			}
		}
	}
	return inside
}
