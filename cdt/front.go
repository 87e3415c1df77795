package cdt

import (
	"math"
	"sort"
)

// FrontNode is one entry of the advancing front: a point and the
// triangle lying immediately below it on the front (spec §3). HasTri is
// false only for the rightmost node, which has no next edge — a
// distinct "no triangle" meaning from NilTriangle (spec §9's tagged
// sentinel note).
type FrontNode struct {
	PointId  PointId
	Point    Point
	Triangle TriangleId
	HasTri   bool
}

// AdvancingFront is the ordered left-to-right chain of boundary vertices
// between the swept and un-swept region, represented as a vector sorted
// by lexicographic (x, y) order with binary search — the documented
// choice of spec §4.5 and §9, grounded on
// original_source/src/advancing_front/vec_backed.rs's AdvancingFrontVec.
type AdvancingFront struct {
	nodes []FrontNode
}

func lessPoint(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// NewAdvancingFront seeds the front with exactly three nodes in
// left-to-right order: HEAD, the lowest real point, and TAIL — all
// pointing at the single bootstrap triangle, except TAIL which has no
// next edge (spec §4.6 step 1).
func NewAdvancingFront(headId, lowId, tailId PointId, headP, lowP, tailP Point, tri TriangleId) *AdvancingFront {
	nodes := []FrontNode{
		{PointId: headId, Point: headP, Triangle: tri, HasTri: true},
		{PointId: lowId, Point: lowP, Triangle: tri, HasTri: true},
		{PointId: tailId, Point: tailP, HasTri: false},
	}
	sort.Slice(nodes, func(i, j int) bool { return lessPoint(nodes[i].Point, nodes[j].Point) })
	return &AdvancingFront{nodes: nodes}
}

func (af *AdvancingFront) search(p Point) int {
	return sort.Search(len(af.nodes), func(i int) bool {
		return !lessPoint(af.nodes[i].Point, p)
	})
}

// Get returns the node exactly at p.
func (af *AdvancingFront) Get(p Point) (FrontNode, bool) {
	idx := af.search(p)
	if idx < len(af.nodes) && af.nodes[idx].Point == p {
		return af.nodes[idx], true
	}
	return FrontNode{}, false
}

// Insert inserts a new node at (id, p, tri), or overwrites the existing
// node at that exact key.
func (af *AdvancingFront) Insert(id PointId, p Point, tri TriangleId) {
	idx := af.search(p)
	if idx < len(af.nodes) && af.nodes[idx].Point == p {
		af.nodes[idx] = FrontNode{PointId: id, Point: p, Triangle: tri, HasTri: true}
		return
	}
	af.nodes = append(af.nodes, FrontNode{})
	copy(af.nodes[idx+1:], af.nodes[idx:])
	af.nodes[idx] = FrontNode{PointId: id, Point: p, Triangle: tri, HasTri: true}
}

// UpdateTriangle sets the triangle of the existing node at p.
func (af *AdvancingFront) UpdateTriangle(p Point, tri TriangleId) {
	idx := af.search(p)
	if idx < len(af.nodes) && af.nodes[idx].Point == p {
		af.nodes[idx].Triangle = tri
		af.nodes[idx].HasTri = true
	}
}

// Delete removes the node at p, if present.
func (af *AdvancingFront) Delete(p Point) {
	idx := af.search(p)
	if idx < len(af.nodes) && af.nodes[idx].Point == p {
		af.nodes = append(af.nodes[:idx], af.nodes[idx+1:]...)
	}
}

// Nth returns the node at position k in front order, used by
// finalization (spec §4.11).
func (af *AdvancingFront) Nth(k int) (FrontNode, bool) {
	if k < 0 || k >= len(af.nodes) {
		return FrontNode{}, false
	}
	return af.nodes[k], true
}

// Locate returns the node with the greatest x less than or equal to x —
// the "floor" node (spec §4.5's locate).
func (af *AdvancingFront) Locate(x float64) (FrontNode, bool) {
	probe := Point{X: x, Y: math.MaxFloat64}
	idx := af.search(probe)
	if idx > 0 {
		idx--
	}
	if idx >= len(af.nodes) {
		return FrontNode{}, false
	}
	return af.nodes[idx], true
}

// LocateAndNext returns the floor node for x and its right neighbor
// (spec §4.5's locate_and_next, used by the point-event handler).
func (af *AdvancingFront) LocateAndNext(x float64) (FrontNode, FrontNode, bool) {
	node, ok := af.Locate(x)
	if !ok {
		return FrontNode{}, FrontNode{}, false
	}
	next, ok := af.Next(node.Point)
	if !ok {
		return FrontNode{}, FrontNode{}, false
	}
	return node, next, true
}

// Next returns the node immediately to the right of p in front order,
// even if p itself is no longer present (matches
// AdvancingFrontVec::locate_next_node's "as if not deleted" semantics).
func (af *AdvancingFront) Next(p Point) (FrontNode, bool) {
	idx := af.search(p)
	if idx < len(af.nodes) && af.nodes[idx].Point == p {
		idx++
	}
	if idx >= len(af.nodes) {
		return FrontNode{}, false
	}
	return af.nodes[idx], true
}

// Prev returns the node immediately to the left of p in front order,
// even if p itself is no longer present.
func (af *AdvancingFront) Prev(p Point) (FrontNode, bool) {
	idx := af.search(p)
	if idx == 0 {
		return FrontNode{}, false
	}
	if idx >= len(af.nodes) || af.nodes[idx].Point != p {
		return af.nodes[idx-1], true
	}
	return af.nodes[idx-1], true
}

// Iter returns the nodes in left-to-right order. Callers must not
// mutate the returned slice.
func (af *AdvancingFront) Iter() []FrontNode { return af.nodes }
