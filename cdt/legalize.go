package cdt

// legalize drains a local work queue of triangles that may violate the
// local Delaunay condition, flipping illegal edges until none remain
// reachable from the seed triangle, then remaps every flipped triangle's
// front-facing neighbor slots back onto the advancing front (spec
// §4.9.1). Grounded on original_source/src/sweeper.rs's legalize.
func (s *Sweeper) legalize(seed TriangleId, observer Observer) {
	observer.WillLegalize(seed, s)

	remap := s.legalizeRemapIds[:0]
	remap = append(remap, seed)

	queue := s.legalizeTaskQueue[:0]
	queue = append(queue, seed)

	for len(queue) > 0 {
		tid := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for pointIdx := 0; pointIdx < 3; pointIdx++ {
			tri := s.tris.Get(tid)
			if tri.Attr[pointIdx].constrained || tri.Attr[pointIdx].delaunay {
				continue
			}

			otId := tri.Neighbors[pointIdx]
			if otId == NilTriangle {
				continue
			}
			ot := s.tris.Get(otId)

			p := tri.Points[pointIdx]
			op := ot.OppositePoint(tri, p)

			illegal := InCircle(
				s.points.Get(p),
				s.points.Get(tri.PointCCW(p)),
				s.points.Get(tri.PointCW(p)),
				s.points.Get(op),
			)
			if !illegal {
				continue
			}

			needRemap := s.rotateTrianglePair(tid, p, otId, op)

			t, ot2 := s.tris.GetTwoMut(tid, otId)
			tIdx, otIdx, ok := t.CommonEdgeIndex(ot2)
			if !ok {
				invariantf("Sweeper.legalize", "rotated pair shares no edge")
			}
			t.SetDelaunay(tIdx, true)
			ot2.SetDelaunay(otIdx, true)

			queue = append(queue, tid, otId)
			if needRemap {
				remap = append(remap, tid, otId)
			}
			break
		}

		observer.LegalizeStep(tid, s)
	}

	for _, tid := range remap {
		s.mapTriangleToNodes(tid)
	}

	s.legalizeTaskQueue = queue[:0]
	s.legalizeRemapIds = remap[:0]

	observer.Legalized(seed, s)
}

// rotateTrianglePair flips the shared edge between t and ot one vertex
// clockwise in place, preserving the outer neighbor/attribute pairs and
// re-deriving the inner neighbor links. Returns true if any of the four
// outer neighbors was missing (a front-facing triangle, a remap
// candidate). Grounded on original_source/src/sweeper.rs's
// rotate_triangle_pair.
func (s *Sweeper) rotateTrianglePair(tId TriangleId, p PointId, otId TriangleId, op PointId) bool {
	t, ot := s.tris.GetTwoMut(tId, otId)

	n1 := t.NeighborCCW(p)
	n2 := t.NeighborCW(p)
	n3 := ot.NeighborCCW(op)
	n4 := ot.NeighborCW(op)

	ea1 := t.EdgeAttrCCW(p)
	ea2 := t.EdgeAttrCW(p)
	ea3 := ot.EdgeAttrCCW(op)
	ea4 := ot.EdgeAttrCW(op)

	t.RotateCW(p, op)
	ot.RotateCW(op, p)

	t.SetEdgeAttrCW(p, ea2)
	t.SetEdgeAttrCCW(op, ea3)
	ot.SetEdgeAttrCCW(p, ea1)
	ot.SetEdgeAttrCW(op, ea4)

	t.ClearNeighbors()
	ot.ClearNeighbors()

	s.tris.MarkNeighbor(tId, otId)

	if n2 != NilTriangle {
		s.tris.MarkNeighbor(tId, n2)
	}
	if n3 != NilTriangle {
		s.tris.MarkNeighbor(tId, n3)
	}
	if n1 != NilTriangle {
		s.tris.MarkNeighbor(otId, n1)
	}
	if n4 != NilTriangle {
		s.tris.MarkNeighbor(otId, n4)
	}

	return n1 == NilTriangle || n2 == NilTriangle || n3 == NilTriangle || n4 == NilTriangle
}

// mapTriangleToNodes re-points any advancing-front node whose triangle
// slot referenced tid's predecessor to tid itself, after a flip changes
// which triangle sits under a front vertex.
func (s *Sweeper) mapTriangleToNodes(tid TriangleId) {
	tri := s.tris.Get(tid)
	for i := 0; i < 3; i++ {
		if tri.Neighbors[i] != NilTriangle {
			continue
		}
		point := s.points.Get(tri.PointCW(tri.Points[i]))
		if _, ok := s.front.Get(point); ok {
			s.front.UpdateTriangle(point, tid)
		}
	}
}
