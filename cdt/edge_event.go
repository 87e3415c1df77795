package cdt

// constrainedEdge carries a constraint edge's endpoint coordinates
// alongside its ids, plus the "right" flag (p.x > q.x) the fill-above
// heuristics branch on. Grounded on original_source/src/sweeper.rs's
// ConstrainedEdge.
type constrainedEdge struct {
	edge   Edge
	p, q   Point
	right  bool
}

func (c *constrainedEdge) withQ(q PointId, points *PointStore) *constrainedEdge {
	qp := points.Get(q)
	return &constrainedEdge{
		edge:  Edge{P: c.edge.P, Q: q},
		p:     c.p,
		q:     qp,
		right: c.p.X > qp.X,
	}
}

// edgeEvent ensures the constraint (edge.P, edge.Q) exists as an edge of
// the mesh: first checking whether it already coincides with an edge of
// the triangle under nodePoint, then filling any gap above it, then
// walking triangle-to-triangle toward Q and flipping every triangle the
// straight line from P to Q crosses, legalizing as it goes (spec §4.8).
func (s *Sweeper) edgeEvent(edge Edge, nodePoint Point, observer Observer) error {
	p := s.points.Get(edge.P)
	q := s.points.Get(edge.Q)

	ce := &constrainedEdge{edge: edge, p: p, q: q, right: p.X > q.X}

	node, ok := s.front.Get(nodePoint)
	if !ok {
		invariantf("Sweeper.edgeEvent", "node missing from advancing front")
	}
	triangle := node.Triangle
	if s.tryMarkEdgeForTriangle(edge.P, edge.Q, triangle) {
		return nil
	}

	s.fillEdgeEvent(ce, nodePoint, observer)

	node, ok = s.front.Get(nodePoint)
	if !ok {
		invariantf("Sweeper.edgeEvent", "node missing from advancing front after fill")
	}
	triangle = node.Triangle

	s.flipDepth = 0
	queue := s.flipQueue[:0]
	if err := s.edgeEventProcess(edge.P, edge.Q, ce, triangle, edge.Q, &queue); err != nil {
		s.flipQueue = queue[:0]
		return err
	}

	for _, tid := range queue {
		s.legalize(tid, observer)
	}
	s.flipQueue = queue[:0]
	return nil
}

// tryMarkEdgeForTriangle marks (p, q) constrained if it is already an
// edge slot of tId (and of its neighbor across that edge, if any),
// reporting whether it found such an edge.
func (s *Sweeper) tryMarkEdgeForTriangle(p, q PointId, tId TriangleId) bool {
	tri := s.tris.Get(tId)
	idx, ok := tri.EdgeIndex(p, q)
	if !ok {
		return false
	}
	tri.Attr[idx].constrained = true

	if nt := s.tris.Get(tri.Neighbors[idx]); nt != nil {
		nidx, ok := nt.EdgeIndex(p, q)
		if !ok {
			invariantf("Sweeper.tryMarkEdgeForTriangle", "neighbor does not share marked edge")
		}
		nt.Attr[nidx].constrained = true
	}
	return true
}

func (s *Sweeper) fillEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	if edge.right {
		s.fillRightAboveEdgeEvent(edge, nodePoint, observer)
	} else {
		s.fillLeftAboveEdgeEvent(edge, nodePoint, observer)
	}
}

func (s *Sweeper) fillRightAboveEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	for {
		next, ok := s.front.Next(nodePoint)
		if !ok || next.Point.X >= edge.p.X {
			return
		}
		if Orient2D(edge.q, next.Point, edge.p) == CCW {
			s.fillRightBelowEdgeEvent(edge, nodePoint, observer)
		} else {
			nodePoint = next.Point
		}
	}
}

func (s *Sweeper) fillRightBelowEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	if nodePoint.X >= edge.p.X {
		return
	}

	next, ok := s.front.Next(nodePoint)
	if !ok {
		return
	}
	nextNext, ok := s.front.Next(next.Point)
	if !ok {
		return
	}

	if Orient2D(nodePoint, next.Point, nextNext.Point) == CCW {
		s.fillRightConcaveEdgeEvent(edge, nodePoint, observer)
	} else {
		s.fillRightConvexEdgeEvent(edge, nodePoint, observer)
		s.fillRightBelowEdgeEvent(edge, nodePoint, observer)
	}
}

func (s *Sweeper) fillRightConcaveEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	next, ok := s.front.Next(nodePoint)
	if !ok {
		return
	}
	s.fillOne(next.Point, observer)

	if next.PointId != edge.edge.P {
		if Orient2D(edge.q, next.Point, edge.p) == CCW {
			nextNext, ok := s.front.Next(next.Point)
			if !ok {
				return
			}
			if Orient2D(nodePoint, next.Point, nextNext.Point) == CCW {
				s.fillRightConcaveEdgeEvent(edge, nodePoint, observer)
			}
		}
	}
}

func (s *Sweeper) fillRightConvexEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	next, ok := s.front.Next(nodePoint)
	if !ok {
		return
	}
	nextNext, ok := s.front.Next(next.Point)
	if !ok {
		return
	}
	nextNextNext, ok := s.front.Next(nextNext.Point)
	if !ok {
		return
	}

	if Orient2D(next.Point, nextNext.Point, nextNextNext.Point) == CCW {
		s.fillRightConcaveEdgeEvent(edge, nodePoint, observer)
		return
	}
	if Orient2D(edge.q, nextNext.Point, edge.p) == CCW {
		s.fillRightConvexEdgeEvent(edge, next.Point, observer)
	}
}

func (s *Sweeper) fillLeftAboveEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	for {
		prev, ok := s.front.Prev(nodePoint)
		if !ok || prev.Point.X <= edge.p.X {
			return
		}
		if Orient2D(edge.q, prev.Point, edge.p) == CW {
			s.fillLeftBelowEdgeEvent(edge, nodePoint, observer)
		} else {
			nodePoint = prev.Point
		}
	}
}

func (s *Sweeper) fillLeftBelowEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	if nodePoint.X <= edge.p.X {
		return
	}

	prev, ok := s.front.Prev(nodePoint)
	if !ok {
		return
	}
	prevPrev, ok := s.front.Prev(prev.Point)
	if !ok {
		return
	}

	if Orient2D(nodePoint, prev.Point, prevPrev.Point) == CW {
		s.fillLeftConcaveEdgeEvent(edge, nodePoint, observer)
	} else {
		s.fillLeftConvexEdgeEvent(edge, nodePoint, observer)
		s.fillLeftBelowEdgeEvent(edge, nodePoint, observer)
	}
}

func (s *Sweeper) fillLeftConvexEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	prev, ok := s.front.Prev(nodePoint)
	if !ok {
		return
	}
	prevPrev, ok := s.front.Prev(prev.Point)
	if !ok {
		return
	}
	prevPrevPrev, ok := s.front.Prev(prevPrev.Point)
	if !ok {
		return
	}

	if Orient2D(prev.Point, prevPrev.Point, prevPrevPrev.Point) == CW {
		s.fillLeftConcaveEdgeEvent(edge, prev.Point, observer)
		return
	}
	if Orient2D(edge.q, prevPrev.Point, edge.p) == CW {
		s.fillLeftConvexEdgeEvent(edge, prev.Point, observer)
	}
}

func (s *Sweeper) fillLeftConcaveEdgeEvent(edge *constrainedEdge, nodePoint Point, observer Observer) {
	prev, ok := s.front.Prev(nodePoint)
	if !ok {
		return
	}
	s.fillOne(prev.Point, observer)

	prev, ok = s.front.Prev(nodePoint)
	if !ok {
		return
	}

	if prev.PointId != edge.edge.P {
		if Orient2D(edge.q, prev.Point, edge.p) == CW {
			prevPrev, ok := s.front.Prev(prev.Point)
			if !ok {
				return
			}
			if Orient2D(nodePoint, prev.Point, prevPrev.Point) == CW {
				s.fillLeftConcaveEdgeEvent(edge, nodePoint, observer)
			}
		}
	}
}

// edgeEventProcess walks from triangleId toward eq, looking for the edge
// (ep, eq) as an existing triangle edge or (if the straight line from ep
// to eq crosses a triangle's interior) handing off to flipEdgeEvent.
// Returns ErrCollinearConstraint if the constraint edge passes through
// three mutually collinear input points with no intermediate vertex
// (spec §1 Non-goals, §4.12) — unsupported geometry reachable through
// ordinary caller input, not an internal bug. Grounded on
// original_source/src/sweeper.rs's edge_event_process.
func (s *Sweeper) edgeEventProcess(ep, eq PointId, ce *constrainedEdge, triangleId TriangleId, p PointId, queue *[]TriangleId) error {
	if triangleId == NilTriangle {
		invariantf("Sweeper.edgeEventProcess", "nil triangle")
	}
	s.flipDepth++
	if s.flipDepth > s.flipRecursionMax {
		invariantf("Sweeper.edgeEventProcess", "flip recursion limit exceeded")
	}
	if s.tryMarkEdgeForTriangle(ep, eq, triangleId) {
		return nil
	}

	tri := s.tris.Get(triangleId)
	p1 := tri.PointCCW(p)
	o1 := Orient2D(s.points.Get(eq), s.points.Get(p1), s.points.Get(ep))

	if o1 == Collinear {
		idx, ok := tri.EdgeIndex(eq, p1)
		if !ok {
			return ErrCollinearConstraint
		}
		tri.Attr[idx].constrained = true
		acrossT := tri.NeighborAcross(p)
		return s.edgeEventProcess(ep, p1, ce.withQ(p1, s.points), acrossT, p1, queue)
	}

	p2 := tri.PointCW(p)
	o2 := Orient2D(s.points.Get(eq), s.points.Get(p2), s.points.Get(ep))
	if o2 == Collinear {
		idx, ok := tri.EdgeIndex(eq, p2)
		if !ok {
			return ErrCollinearConstraint
		}
		tri.Attr[idx].constrained = true
		acrossT := tri.NeighborAcross(p)
		return s.edgeEventProcess(ep, p2, ce.withQ(p2, s.points), acrossT, p2, queue)
	}

	if o1 == o2 {
		var next TriangleId
		if o1 == CW {
			next = tri.NeighborCCW(p)
		} else {
			next = tri.NeighborCW(p)
		}
		return s.edgeEventProcess(ep, eq, ce, next, p, queue)
	}

	return s.flipEdgeEvent(ep, eq, ce, triangleId, p, queue)
}

// flipEdgeEvent rotates the edge opposite p one vertex clockwise when the
// constraint line passes through the fan at p, then either marks the
// constraint (if it now matches) or continues the walk toward eq (spec
// §4.9.2). Grounded on original_source/src/sweeper.rs's flip_edge_event.
func (s *Sweeper) flipEdgeEvent(ep, eq PointId, edge *constrainedEdge, triangleId TriangleId, p PointId, queue *[]TriangleId) error {
	s.flipDepth++
	if s.flipDepth > s.flipRecursionMax {
		invariantf("Sweeper.flipEdgeEvent", "flip recursion limit exceeded")
	}
	t := s.tris.Get(triangleId)
	otId := t.NeighborAcross(p)
	if otId == NilTriangle {
		invariantf("Sweeper.flipEdgeEvent", "neighbor across p must be valid")
	}

	ot := s.tris.Get(otId)
	op := ot.OppositePoint(t, p)

	if InScanArea(
		s.points.Get(p),
		s.points.Get(t.PointCCW(p)),
		s.points.Get(t.PointCW(p)),
		s.points.Get(op),
	) {
		if s.rotateTrianglePair(triangleId, p, otId, op) {
			s.mapTriangleToNodes(triangleId)
			s.mapTriangleToNodes(otId)
		}
		*queue = append(*queue, triangleId, otId)

		if p == eq && op == ep {
			if eq == edge.edge.Q && ep == edge.edge.P {
				tt, ot2 := s.tris.GetTwoMut(triangleId, otId)
				setConstrainedForEdge(tt, ep, eq)
				setConstrainedForEdge(ot2, ep, eq)
			}
			return nil
		}
		o := Orient2D(s.points.Get(eq), s.points.Get(op), s.points.Get(ep))
		next := s.nextFlipTriangle(o, triangleId, otId, queue)
		return s.flipEdgeEvent(ep, eq, edge, next, p, queue)
	}

	newP := s.nextFlipPoint(ep, eq, otId, op)
	if err := s.flipScanEdgeEvent(ep, eq, edge, triangleId, otId, newP, queue); err != nil {
		return err
	}
	return s.edgeEventProcess(ep, eq, edge, triangleId, p, queue)
}

func setConstrainedForEdge(t *Triangle, p, q PointId) {
	idx, ok := t.EdgeIndex(p, q)
	if !ok {
		invariantf("setConstrainedForEdge", "triangle does not contain edge")
	}
	t.Attr[idx].constrained = true
}

func (s *Sweeper) nextFlipTriangle(o Orientation, t, ot TriangleId, queue *[]TriangleId) TriangleId {
	if o == CCW {
		*queue = append(*queue, ot)
		return t
	}
	*queue = append(*queue, t)
	return ot
}

func (s *Sweeper) nextFlipPoint(ep, eq PointId, ot TriangleId, op PointId) PointId {
	o := Orient2D(s.points.Get(eq), s.points.Get(op), s.points.Get(ep))
	tri := s.tris.Get(ot)
	switch o {
	case CW:
		return tri.PointCCW(op)
	case CCW:
		return tri.PointCW(op)
	default:
		invariantf("Sweeper.nextFlipPoint", "opposing point on constrained edge")
		return NilPoint
	}
}

func (s *Sweeper) flipScanEdgeEvent(ep, eq PointId, edge *constrainedEdge, flipTriangleId, tId TriangleId, p PointId, queue *[]TriangleId) error {
	t := s.tris.Get(tId)
	ot := t.NeighborAcross(p)
	if ot == NilTriangle {
		invariantf("Sweeper.flipScanEdgeEvent", "null neighbor across")
	}

	op := s.tris.Get(ot).OppositePoint(t, p)
	flipTriangle := s.tris.Get(flipTriangleId)
	p1 := flipTriangle.PointCCW(eq)
	p2 := flipTriangle.PointCW(eq)

	if InScanArea(
		s.points.Get(eq),
		s.points.Get(p1),
		s.points.Get(p2),
		s.points.Get(op),
	) {
		return s.flipEdgeEvent(eq, op, edge, ot, op, queue)
	}
	newP := s.nextFlipPoint(ep, eq, ot, op)
	return s.flipScanEdgeEvent(ep, eq, edge, flipTriangleId, ot, newP, queue)
}
