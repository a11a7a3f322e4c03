// Package algo implements the two operations spec.md calls out as
// belonging to the kernel rather than to a builder: reversing the
// orientation of a topological entity, and rigidly transforming one.
// Both operate on already-built (Handle-resolved) entities pulled fresh
// from a Store, not on build-time drafts -- see package partial for that.
package algo

import "github.com/ajsb85/brepkernel/object"

// ReverseHalfEdge swaps a half-edge's two vertices. Its GlobalEdge is
// unordered and carries over unchanged.
func ReverseHalfEdge(s *object.Store, h object.Handle[object.HalfEdge]) (object.Handle[object.HalfEdge], error) {
	he := s.GetHalfEdge(h)
	return s.InsertHalfEdge(object.HalfEdge{
		Vertices:   [2]object.Handle[object.Vertex]{he.Vertices[1], he.Vertices[0]},
		GlobalForm: he.GlobalForm,
	})
}

// ReverseCycle reverses the order of a cycle's half-edges and reverses
// each one individually, so that walking the result traces the same
// boundary in the opposite direction.
func ReverseCycle(s *object.Store, h object.Handle[object.Cycle]) (object.Handle[object.Cycle], error) {
	c := s.GetCycle(h)
	n := len(c.HalfEdges)
	reversed := make([]object.Handle[object.HalfEdge], n)
	for i, heh := range c.HalfEdges {
		rev, err := ReverseHalfEdge(s, heh)
		if err != nil {
			var zero object.Handle[object.Cycle]
			return zero, err
		}
		reversed[n-1-i] = rev
	}
	return s.InsertCycle(object.Cycle{HalfEdges: reversed})
}

// ReverseFace reverses a face's exterior and interior cycles, preserving
// its color.
func ReverseFace(s *object.Store, h object.Handle[object.Face]) (object.Handle[object.Face], error) {
	f := s.GetFace(h)
	var zero object.Handle[object.Face]

	exterior, err := ReverseCycle(s, f.Exterior)
	if err != nil {
		return zero, err
	}

	interiors := make([]object.Handle[object.Cycle], len(f.Interiors))
	for i, in := range f.Interiors {
		rev, err := ReverseCycle(s, in)
		if err != nil {
			return zero, err
		}
		interiors[i] = rev
	}

	return s.InsertFace(object.Face{
		Exterior:  exterior,
		Interiors: interiors,
		Color:     f.Color,
	}), nil
}
