package cdt

import "testing"

func newTestFront() *AdvancingFront {
	head := Point{X: -10, Y: -10}
	low := Point{X: 0, Y: 0}
	tail := Point{X: 10, Y: -10}
	return NewAdvancingFront(0, 1, 2, head, low, tail, 0)
}

func TestAdvancingFrontSeedOrder(t *testing.T) {
	af := newTestFront()
	nodes := af.Iter()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 seed nodes, got %d", len(nodes))
	}
	if nodes[0].PointId != 0 || nodes[1].PointId != 1 || nodes[2].PointId != 2 {
		t.Fatalf("expected head, low, tail left-to-right, got %v", nodes)
	}
	if nodes[2].HasTri {
		t.Fatalf("expected the rightmost (tail) node to have no triangle")
	}
}

func TestAdvancingFrontInsertAndLocate(t *testing.T) {
	af := newTestFront()
	mid := Point{X: 3, Y: -3}
	af.Insert(3, mid, 1)

	node, ok := af.Locate(3)
	if !ok || node.PointId != 3 {
		t.Fatalf("expected to locate the inserted node, got %v ok=%v", node, ok)
	}

	node, ok = af.Locate(4)
	if !ok || node.Point != mid {
		t.Fatalf("expected floor lookup at x=4 to land on the inserted node, got %v", node)
	}
}

func TestAdvancingFrontNextPrev(t *testing.T) {
	af := newTestFront()
	low := Point{X: 0, Y: 0}

	next, ok := af.Next(low)
	if !ok || next.PointId != 2 {
		t.Fatalf("expected tail after low, got %v", next)
	}

	prev, ok := af.Prev(low)
	if !ok || prev.PointId != 0 {
		t.Fatalf("expected head before low, got %v", prev)
	}
}

func TestAdvancingFrontDelete(t *testing.T) {
	af := newTestFront()
	low := Point{X: 0, Y: 0}
	af.Delete(low)

	if _, ok := af.Get(low); ok {
		t.Fatalf("expected low to be gone after Delete")
	}
	if len(af.Iter()) != 2 {
		t.Fatalf("expected 2 nodes remaining, got %d", len(af.Iter()))
	}
}
