package partial

import "github.com/ajsb85/brepkernel/object"

// FullToPartialCache memoizes full handle -> partial draft, one map per
// entity kind, so that decomposing a full graph for editing preserves
// welded identity (spec.md §4.E/§4.G): two full handles that share a
// GlobalVertex produce the SAME draft cell on decomposition, so editing
// through one ref is visible through every other ref that shares it, and
// re-`Build`ing the decomposed graph reproduces the original handle set
// (property P5, scenario S6).
//
// Unlike *FromHandle (which wraps a handle in a permanently-opaque Built
// ref), the From* functions here copy each full entity's fields into a
// fresh Draft, so the decomposed graph is actually editable -- that's the
// whole point of tearing a built shell back down to partial form.
type FullToPartialCache struct {
	store *object.Store

	globalCurves    map[object.Handle[object.GlobalCurve]]GlobalCurveRef
	globalVertices  map[object.Handle[object.GlobalVertex]]GlobalVertexRef
	curves          map[object.Handle[object.Curve]]CurveRef
	surfaceVertices map[object.Handle[object.SurfaceVertex]]SurfaceVertexRef
	vertices        map[object.Handle[object.Vertex]]VertexRef
	globalEdges     map[object.Handle[object.GlobalEdge]]GlobalEdgeRef
	halfEdges       map[object.Handle[object.HalfEdge]]HalfEdgeRef
	cycles          map[object.Handle[object.Cycle]]CycleRef
	faces           map[object.Handle[object.Face]]FaceRef
}

// NewFullToPartialCache returns an empty decomposition cache reading full
// entities from s. Callers build one cache per decomposition pass (e.g. one
// per shell being torn down for editing) and pass it to every FromFull*
// call in that pass so shared substructure comes out shared.
func NewFullToPartialCache(s *object.Store) *FullToPartialCache {
	return &FullToPartialCache{
		store:           s,
		globalCurves:    make(map[object.Handle[object.GlobalCurve]]GlobalCurveRef),
		globalVertices:  make(map[object.Handle[object.GlobalVertex]]GlobalVertexRef),
		curves:          make(map[object.Handle[object.Curve]]CurveRef),
		surfaceVertices: make(map[object.Handle[object.SurfaceVertex]]SurfaceVertexRef),
		vertices:        make(map[object.Handle[object.Vertex]]VertexRef),
		globalEdges:     make(map[object.Handle[object.GlobalEdge]]GlobalEdgeRef),
		halfEdges:       make(map[object.Handle[object.HalfEdge]]HalfEdgeRef),
		cycles:          make(map[object.Handle[object.Cycle]]CycleRef),
		faces:           make(map[object.Handle[object.Face]]FaceRef),
	}
}

// FromFullGlobalCurve decomposes h into a draft, reusing the one already
// minted for h if this cache has seen it before.
func FromFullGlobalCurve(c *FullToPartialCache, h object.Handle[object.GlobalCurve]) GlobalCurveRef {
	if r, ok := c.globalCurves[h]; ok {
		return r
	}
	r := NewGlobalCurveDraft()
	c.globalCurves[h] = r
	return r
}

// FromFullGlobalVertex decomposes h into a draft pre-populated with its
// built position.
func FromFullGlobalVertex(c *FullToPartialCache, h object.Handle[object.GlobalVertex]) GlobalVertexRef {
	if r, ok := c.globalVertices[h]; ok {
		return r
	}
	r := NewGlobalVertexDraft()
	c.globalVertices[h] = r
	gv := c.store.GetGlobalVertex(h)
	r.SetPosition(gv.Position)
	return r
}

// FromFullCurve decomposes h, recursing into its GlobalForm through c.
func FromFullCurve(c *FullToPartialCache, h object.Handle[object.Curve]) CurveRef {
	if r, ok := c.curves[h]; ok {
		return r
	}
	r := NewCurveDraft()
	c.curves[h] = r
	cur := c.store.GetCurve(h)
	r.WithSurface(cur.Surface)
	r.Draft().Path = cur.Path
	r.Draft().GlobalForm = FromFullGlobalCurve(c, cur.GlobalForm)
	return r
}

// FromFullSurfaceVertex decomposes h, recursing into its GlobalForm.
func FromFullSurfaceVertex(c *FullToPartialCache, h object.Handle[object.SurfaceVertex]) SurfaceVertexRef {
	if r, ok := c.surfaceVertices[h]; ok {
		return r
	}
	r := NewSurfaceVertexDraft()
	c.surfaceVertices[h] = r
	sv := c.store.GetSurfaceVertex(h)
	r.WithPosition(sv.Position).WithSurface(sv.Surface)
	r.Draft().GlobalForm = FromFullGlobalVertex(c, sv.GlobalForm)
	return r
}

// FromFullVertex decomposes h, recursing into its Curve and SurfaceForm.
func FromFullVertex(c *FullToPartialCache, h object.Handle[object.Vertex]) VertexRef {
	if r, ok := c.vertices[h]; ok {
		return r
	}
	r := NewVertexDraft()
	c.vertices[h] = r
	v := c.store.GetVertex(h)
	r.WithPosition(v.Position.T)
	r.Draft().Curve = FromFullCurve(c, v.Curve)
	r.Draft().SurfaceForm = FromFullSurfaceVertex(c, v.SurfaceForm)
	return r
}

// FromFullGlobalEdge decomposes h, recursing into its Curve and both
// Vertices. It reads the vertex pair through VerticesNormalized rather than
// Vertices so that two GlobalEdges built from the same unordered pair (in
// either order) decompose to drafts with the vertices in the same order.
func FromFullGlobalEdge(c *FullToPartialCache, h object.Handle[object.GlobalEdge]) GlobalEdgeRef {
	if r, ok := c.globalEdges[h]; ok {
		return r
	}
	r := NewGlobalEdgeDraft()
	c.globalEdges[h] = r
	ge := c.store.GetGlobalEdge(h)
	verts := ge.VerticesNormalized()
	r.Draft().Curve = FromFullGlobalCurve(c, ge.Curve)
	r.Draft().Vertices = [2]GlobalVertexRef{
		FromFullGlobalVertex(c, verts[0]),
		FromFullGlobalVertex(c, verts[1]),
	}
	return r
}

// FromFullHalfEdge decomposes h, recursing into its two Vertices and its
// GlobalForm.
func FromFullHalfEdge(c *FullToPartialCache, h object.Handle[object.HalfEdge]) HalfEdgeRef {
	if r, ok := c.halfEdges[h]; ok {
		return r
	}
	r := NewHalfEdgeDraft()
	c.halfEdges[h] = r
	he := c.store.GetHalfEdge(h)
	r.Draft().Vertices = [2]VertexRef{
		FromFullVertex(c, he.Vertices[0]),
		FromFullVertex(c, he.Vertices[1]),
	}
	r.Draft().GlobalForm = FromFullGlobalEdge(c, he.GlobalForm)
	return r
}

// FromFullCycle decomposes h, recursing into each of its half-edges.
func FromFullCycle(c *FullToPartialCache, h object.Handle[object.Cycle]) CycleRef {
	if r, ok := c.cycles[h]; ok {
		return r
	}
	r := NewCycleDraft()
	c.cycles[h] = r
	cyc := c.store.GetCycle(h)
	for _, heh := range cyc.HalfEdges {
		r.Push(FromFullHalfEdge(c, heh))
	}
	return r
}

// FromFullFace decomposes h, recursing into its exterior and interior
// cycles and carrying over its color.
func FromFullFace(c *FullToPartialCache, h object.Handle[object.Face]) FaceRef {
	if r, ok := c.faces[h]; ok {
		return r
	}
	r := NewFaceDraft()
	c.faces[h] = r
	f := c.store.GetFace(h)
	r.Draft().Exterior = FromFullCycle(c, f.Exterior)
	for _, in := range f.Interiors {
		r.Draft().Interiors = append(r.Draft().Interiors, FromFullCycle(c, in))
	}
	color := f.Color
	r.Draft().Color = &color
	return r
}
