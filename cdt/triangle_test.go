package cdt

import "testing"

func TestTriangleRotateCW(t *testing.T) {
	tri := NewTriangle(1, 2, 3)
	tri.RotateCW(1, 4)
	if tri.Points != [3]PointId{3, 1, 4} {
		t.Fatalf("case old=points[0]: got %v", tri.Points)
	}

	tri = NewTriangle(1, 2, 3)
	tri.RotateCW(3, 4)
	if tri.Points != [3]PointId{3, 4, 2} {
		t.Fatalf("case old=points[2]: got %v", tri.Points)
	}

	tri = NewTriangle(1, 2, 3)
	tri.RotateCW(2, 4)
	if tri.Points != [3]PointId{4, 1, 2} {
		t.Fatalf("case old=points[1]: got %v", tri.Points)
	}
}

func TestTrianglePointCWCCW(t *testing.T) {
	tri := NewTriangle(0, 1, 2)
	if tri.PointCW(0) != 2 {
		t.Fatalf("expected PointCW(0)=2, got %v", tri.PointCW(0))
	}
	if tri.PointCCW(0) != 1 {
		t.Fatalf("expected PointCCW(0)=1, got %v", tri.PointCCW(0))
	}
}

func TestTriangleStoreMarkNeighbor(t *testing.T) {
	ts := NewTriangleStore(4)

	p0, p1, p2, p3 := PointId(0), PointId(1), PointId(2), PointId(3)
	t1 := ts.Insert(NewTriangle(p0, p1, p2))
	t2 := ts.Insert(NewTriangle(p1, p2, p3))

	ts.MarkNeighbor(t1, t2)

	if got := ts.Get(t1).Neighbors[0]; got != t2 {
		t.Fatalf("expected t1.Neighbors[0]=t2, got %v", got)
	}
	if got := ts.Get(t2).Neighbors[2]; got != t1 {
		t.Fatalf("expected t2.Neighbors[2]=t1, got %v", got)
	}
}

func TestTriangleStoreGetTwoMutPanicsOnAlias(t *testing.T) {
	ts := NewTriangleStore(1)
	tid := ts.Insert(NewTriangle(0, 1, 2))

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on aliased GetTwoMut")
		}
	}()
	ts.GetTwoMut(tid, tid)
}
