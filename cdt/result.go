package cdt

// VerifyDelaunay reports whether every triangle ever inserted during a
// completed run satisfies the local Delaunay condition against its
// neighbors, ignoring constrained edges (spec §8's debug verification
// hook). Grounded on original_source/src/sweeper.rs's verify_triangles.
func (s *Sweeper) VerifyDelaunay() bool {
	return len(s.IllegalEdges()) == 0
}

// IllegalEdge names one triangle and the neighbor across an edge that
// fails the in-circle test.
type IllegalEdge struct {
	Triangle TriangleId
	Neighbor TriangleId
}

// IllegalEdges lists every (triangle, neighbor) pair in the mesh whose
// shared edge violates the Delaunay condition. Grounded on
// original_source/src/sweeper.rs's illegal_triangles.
func (s *Sweeper) IllegalEdges() []IllegalEdge {
	var out []IllegalEdge
	for i := 0; i < s.tris.Len(); i++ {
		tid := TriangleId(i)
		for _, n := range s.illegalNeighbors(tid) {
			if n != NilTriangle {
				out = append(out, IllegalEdge{Triangle: tid, Neighbor: n})
			}
		}
	}
	return out
}

func (s *Sweeper) illegalNeighbors(tid TriangleId) [3]TriangleId {
	var result [3]TriangleId
	for i := range result {
		result[i] = NilTriangle
	}

	tri := s.tris.Get(tid)
	for pointIdx := 0; pointIdx < 3; pointIdx++ {
		otId := tri.Neighbors[pointIdx]
		ot := s.tris.Get(otId)
		if ot == nil {
			continue
		}

		p := tri.Points[pointIdx]
		op := ot.OppositePoint(tri, p)
		oi := ot.indexOf(op)
		if ot.Attr[oi].constrained {
			continue
		}

		inside := InCircle(
			s.points.Get(p),
			s.points.Get(tri.PointCCW(p)),
			s.points.Get(tri.PointCW(p)),
			s.points.Get(op),
		)
		if inside {
			result[pointIdx] = otId
		}
	}
	return result
}

// Points returns the point store backing this run, so callers can
// resolve a result triangle's PointIds to coordinates.
func (s *Sweeper) Points() *PointStore { return s.points }

// Result returns the finalized interior triangles, in visitation order.
func (s *Sweeper) Result() []Triangle {
	out := make([]Triangle, 0, len(s.result))
	for _, tid := range s.result {
		out = append(out, *s.tris.Get(tid))
	}
	return out
}
