package cdt

import "testing"

func TestPointStoreFinalizeAddsSuperTriangle(t *testing.T) {
	s := NewPointStore()
	s.AddPoint(Point{X: 0, Y: 0})
	s.AddPoint(Point{X: 10, Y: 0})
	s.AddPoint(Point{X: 5, Y: 10})

	if err := s.Finalize(0.3); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	if s.Len() != 5 {
		t.Fatalf("expected 5 points (3 real + head + tail), got %d", s.Len())
	}

	head := s.Get(s.Head())
	tail := s.Get(s.Tail())
	if head.Y >= 0 || tail.Y >= 0 {
		t.Fatalf("expected head/tail below the real points' bounding box, got head=%v tail=%v", head, tail)
	}
	if head.X >= tail.X {
		t.Fatalf("expected head left of tail, got head=%v tail=%v", head, tail)
	}
}

func TestPointStoreFinalizeEmpty(t *testing.T) {
	s := NewPointStore()
	if err := s.Finalize(0.3); err != ErrEmptyOuterPolygon {
		t.Fatalf("expected ErrEmptyOuterPolygon, got %v", err)
	}
}

func TestPointStoreAddAfterFinalizePanics(t *testing.T) {
	s := NewPointStore()
	s.AddPoint(Point{X: 0, Y: 0})
	s.AddPoint(Point{X: 1, Y: 0})
	s.AddPoint(Point{X: 0, Y: 1})
	if err := s.Finalize(0.3); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic adding a point after Finalize")
		}
	}()
	s.AddPoint(Point{X: 2, Y: 2})
}

func TestPointStoreYSortedOrder(t *testing.T) {
	s := NewPointStore()
	idA := s.AddPoint(Point{X: 5, Y: 5})
	idB := s.AddPoint(Point{X: 1, Y: 1})
	idC := s.AddPoint(Point{X: 0, Y: 1})
	if err := s.Finalize(0.3); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	ySorted := s.YSorted()
	// head and tail are synthetic and excluded: only the 3 real points appear.
	if len(ySorted) != 3 {
		t.Fatalf("expected only the 3 real points in y-sorted order, got %v", ySorted)
	}
	// among idB and idC (both y=1), x ascending breaks the tie.
	idxB, idxC := -1, -1
	for i, id := range ySorted {
		if id == idB {
			idxB = i
		}
		if id == idC {
			idxC = i
		}
	}
	if idxC >= idxB {
		t.Fatalf("expected idC (x=0) before idB (x=1) at equal y, got idxC=%d idxB=%d", idxC, idxB)
	}
	if ySorted[len(ySorted)-1] != idA {
		t.Fatalf("expected idA (highest y) last in y-sorted order")
	}
}
