package cdt

// Sweeper holds the mutable state of one triangulation run: the
// finalized point and constraint stores, the growing triangle arena, the
// advancing front, and the work queues the legalizer and flip walk share.
// Grounded on original_source/src/sweeper.rs's Context + Sweeper split,
// collapsed into one type since Go has no borrow checker forcing the
// split.
type Sweeper struct {
	points *PointStore
	edges  *EdgeStore
	tris   *TriangleStore
	front  *AdvancingFront

	legalizeTaskQueue []TriangleId
	legalizeRemapIds  []TriangleId
	flipQueue         []TriangleId
	flipDepth         int

	result []TriangleId

	basinMaxAngle    float64
	holeFillMaxAngle float64
	flipRecursionMax int
}

// newSweeper bootstraps the initial triangle (lowest real point, HEAD,
// TAIL) and seeds the advancing front from it, per spec §4.6 step 1.
func newSweeper(points *PointStore, edges *EdgeStore, opts builderOptions) *Sweeper {
	tris := NewTriangleStore(points.Len() * 2)

	ySorted := points.YSorted()
	lowId := ySorted[0]

	initial := tris.Insert(NewTriangle(lowId, points.Head(), points.Tail()))

	front := NewAdvancingFront(
		points.Head(), lowId, points.Tail(),
		points.Get(points.Head()), points.Get(lowId), points.Get(points.Tail()),
		initial,
	)

	return &Sweeper{
		points:           points,
		edges:            edges,
		tris:             tris,
		front:            front,
		basinMaxAngle:    opts.basinMaxAngle,
		holeFillMaxAngle: opts.holeFillMaxAngle,
		flipRecursionMax: opts.flipRecursionLimit,
	}
}

// Triangulate runs the sweep to completion with the given observer (pass
// NoopObserver{} for none) and returns the interior triangles as
// (a, b, c) point-id triples. Returns ErrCollinearConstraint if a
// constraint edge passes through three mutually collinear input points
// with no intermediate vertex (spec §1 Non-goals, §4.12) — unsupported
// input rather than an internal bug, so it is reported rather than
// panicked.
func (s *Sweeper) Triangulate(observer Observer) ([]Triangle, error) {
	if observer == nil {
		observer = NoopObserver{}
	}

	if err := s.sweepPoints(observer); err != nil {
		return nil, err
	}
	observer.SweepDone(s)

	s.finalizePolygon()
	observer.Finalized(s)

	return s.Result(), nil
}

func (s *Sweeper) sweepPoints(observer Observer) error {
	ySorted := s.points.YSorted()
	// index 0 is the lowest real point, already seeded into the
	// bootstrap triangle; sweep begins at index 1 (spec §4.6 step 2).
	for _, pointId := range ySorted[1:] {
		point := s.points.Get(pointId)
		s.pointEvent(pointId, point, observer)
		observer.PointEvent(pointId, s)

		for _, p := range s.edges.Incoming(pointId) {
			edge := Edge{P: p, Q: pointId}
			if err := s.edgeEvent(edge, point, observer); err != nil {
				return err
			}
			observer.EdgeEvent(edge, s)
		}
	}
	return nil
}

// pointEvent inserts point_id as a new apex over the two front nodes
// straddling its x coordinate, legalizes the new triangle, and then fills
// any hole or basin the insertion exposed (spec §4.6 step 2, §4.7).
func (s *Sweeper) pointEvent(pointId PointId, point Point, observer Observer) {
	node, next, ok := s.front.LocateAndNext(point.X)
	if !ok {
		invariantf("Sweeper.pointEvent", "advancing front locate failed")
	}

	triangle := s.tris.Insert(NewTriangle(pointId, node.PointId, next.PointId))
	s.tris.MarkNeighbor(node.Triangle, triangle)
	s.front.Insert(pointId, point, triangle)

	s.legalize(triangle, observer)

	if point.X <= node.Point.X+epsilon {
		s.fillOne(node.Point, observer)
	}

	s.fillAdvancingFront(point, observer)
}

// finalizePolygon locates one interior triangle (walking ccw around the
// first real front node until a constrained edge is hit) and flood-fills
// the interior set from it (spec §4.11).
func (s *Sweeper) finalizePolygon() {
	node, ok := s.front.Nth(1)
	if !ok || !node.HasTri {
		return
	}

	t := node.Triangle
	for {
		tri := s.tris.Get(t)
		if tri == nil {
			break
		}
		if !tri.ConstrainedEdgeCW(node.PointId) {
			t = tri.NeighborCCW(node.PointId)
		} else {
			break
		}
	}

	if t != NilTriangle {
		s.cleanMesh(t)
	}
}

// cleanMesh is an iterative flood fill across non-constrained edges,
// marking every reached triangle interior and appending it to the
// result in visitation order.
func (s *Sweeper) cleanMesh(start TriangleId) {
	type frame struct{ t, from TriangleId }
	stack := []frame{{start, NilTriangle}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.t == NilTriangle {
			continue
		}
		tri := s.tris.Get(f.t)
		if tri.Interior {
			continue
		}
		tri.Interior = true
		s.result = append(s.result, f.t)

		for i := 0; i < 3; i++ {
			if !tri.IsConstrained(i) {
				nt := tri.Neighbors[i]
				if nt != f.from {
					stack = append(stack, frame{nt, f.t})
				}
			}
		}
	}
}
