package object

import (
	"math"

	"github.com/ajsb85/brepkernel/internal/geom"
	"github.com/dhconnelly/rtreego"
)

// indexedVertex adapts a GlobalVertex position to rtreego.Spatial.
type indexedVertex struct {
	handle Handle[GlobalVertex]
	pos    geom.Point3
}

func (v *indexedVertex) Bounds() *rtreego.Rect {
	rect, err := rtreego.NewRect(
		rtreego.Point{v.pos.X, v.pos.Y, v.pos.Z},
		[]float64{1e-12, 1e-12, 1e-12},
	)
	if err != nil {
		// A positive, fixed-size box can't be degenerate.
		panic(err)
	}
	return rect
}

// vertexIndex is a tolerant spatial index over GlobalVertex positions,
// used by Store.WeldGlobalVertex to dedup near-identical corners produced
// by independent builds. It uses an R-tree lookup rather than an O(n)
// linear scan over known points, since the
// store's index spans the whole process lifetime rather than one mesh.
type vertexIndex struct {
	tree *rtreego.Rtree
	tol  float64
}

func newVertexIndex(tol float64) *vertexIndex {
	return &vertexIndex{tree: rtreego.NewTree(3, 4, 16), tol: tol}
}

func (idx *vertexIndex) insert(h Handle[GlobalVertex], p geom.Point3) {
	idx.tree.Insert(&indexedVertex{handle: h, pos: p})
}

// find returns the nearest already-indexed vertex within tolerance of p, if
// any.
func (idx *vertexIndex) find(p geom.Point3) (Handle[GlobalVertex], bool) {
	bb, err := rtreego.NewRect(
		rtreego.Point{p.X - idx.tol, p.Y - idx.tol, p.Z - idx.tol},
		[]float64{2 * idx.tol, 2 * idx.tol, 2 * idx.tol},
	)
	if err != nil {
		panic(err)
	}

	var best *indexedVertex
	bestDist := math.Inf(1)
	for _, obj := range idx.tree.SearchIntersect(bb) {
		candidate := obj.(*indexedVertex)
		d := candidate.pos.Sub(p).Length()
		if d <= idx.tol && d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	if best == nil {
		return Handle[GlobalVertex]{}, false
	}
	return best.handle, true
}
