package cdt

import "math"

// fillOne covers nodePoint with a single new triangle spanning its front
// neighbors, removes it from the advancing front, and legalizes the
// result. Grounded on original_source/src/sweeper.rs's fill_one.
func (s *Sweeper) fillOne(nodePoint Point, observer Observer) {
	node, ok := s.front.Get(nodePoint)
	if !ok {
		return
	}
	prev, ok := s.front.Prev(nodePoint)
	if !ok {
		return
	}
	next, ok := s.front.Next(nodePoint)
	if !ok {
		return
	}

	newTriangle := s.tris.Insert(NewTriangle(prev.PointId, node.PointId, next.PointId))

	s.tris.MarkNeighbor(newTriangle, prev.Triangle)
	s.tris.MarkNeighbor(newTriangle, node.Triangle)

	s.front.Insert(prev.PointId, prev.Point, newTriangle)
	s.front.Delete(nodePoint)

	s.legalize(newTriangle, observer)
}

// fillAdvancingFront fills shallow right and left holes adjacent to
// nodePoint, then fills a qualifying basin, after a point or edge event
// may have exposed one (spec §4.10).
func (s *Sweeper) fillAdvancingFront(nodePoint Point, observer Observer) {
	right := nodePoint
	for {
		next, ok := s.front.Next(right)
		if !ok {
			break
		}
		if _, ok := s.front.Next(next.Point); !ok {
			break
		}
		if s.largeHoleDontFill(next.Point) {
			break
		}
		s.fillOne(next.Point, observer)
		right = next.Point
	}

	left := nodePoint
	for {
		prev, ok := s.front.Prev(left)
		if !ok {
			break
		}
		if _, ok := s.front.Prev(prev.Point); !ok {
			break
		}
		if s.largeHoleDontFill(prev.Point) {
			break
		}
		s.fillOne(prev.Point, observer)
		left = prev.Point
	}

	if s.basinAngleSatisfy(nodePoint) {
		s.fillBasin(nodePoint, observer)
	}
}

// largeHoleDontFill decides whether the wedge at nodePoint, between its
// front neighbors, is too open to fill. It returns false (fill) when the
// signed angle at nodePoint from next to prev lies within
// ±holeFillMaxAngle, and true (leave unfilled) otherwise. Grounded on
// original_source/src/sweeper.rs's large_hole_dont_fill.
func (s *Sweeper) largeHoleDontFill(nodePoint Point) bool {
	next, okN := s.front.Next(nodePoint)
	prev, okP := s.front.Prev(nodePoint)
	if !okN || !okP {
		invariantf("Sweeper.largeHoleDontFill", "node missing a front neighbor")
	}

	angle := Angle(nodePoint, next.Point, prev.Point)
	if angle <= s.holeFillMaxAngle && angle >= -s.holeFillMaxAngle {
		return false
	}
	if angleIsNegative(angle) {
		return true
	}
	return true
}

// Basin describes a bowl-shaped dent in the advancing front: a left
// shoulder, a right shoulder, and the horizontal distance between them,
// used to decide how far a basin fill should proceed (spec §4.10.3).
type Basin struct {
	Left, Right Point
	Width       float64
	LeftHigher  bool
}

func (b *Basin) isShallow(p Point) bool {
	var height float64
	if b.LeftHigher {
		height = b.Left.Y - p.Y
	} else {
		height = b.Right.Y - p.Y
	}
	return b.Width > height
}

func (b *Basin) completed(p Point) bool {
	if p.X >= b.Right.X || p.X <= b.Left.X {
		return true
	}
	return b.isShallow(p)
}

// basinAngleSatisfy reports whether the wedge two steps ahead of
// nodePoint opens wide enough to be treated as a basin rather than a
// simple hole (spec §4.10.3). Compares the slope ay/ax against
// tan(basinMaxAngle) rather than computing atan2 plus a threshold
// compare, avoiding a trig call on every front step; the default
// basinMaxAngle of 3π/4 reproduces the original TAN_3_4_PI = -1.0
// constant from original_source/src/sweeper.rs's basin_angle_satisfy.
func (s *Sweeper) basinAngleSatisfy(nodePoint Point) bool {
	next, ok := s.front.Next(nodePoint)
	if !ok {
		return false
	}
	nextNext, ok := s.front.Next(next.Point)
	if !ok {
		return false
	}

	ax := nodePoint.X - nextNext.Point.X
	ay := nodePoint.Y - nextNext.Point.Y
	tanThreshold := math.Tan(s.basinMaxAngle)

	if ax > 0 {
		return ay < tanThreshold*ax
	}
	return ay > tanThreshold*ax
}

// fillBasin identifies the basin's left, bottom, and right shoulders
// starting at nodePoint and fills it recursively via fillBasinReq.
// Grounded on original_source/src/sweeper.rs's fill_basin.
func (s *Sweeper) fillBasin(nodePoint Point, observer Observer) {
	next, ok := s.front.Next(nodePoint)
	if !ok {
		return
	}
	nextNext, ok := s.front.Next(next.Point)
	if !ok {
		return
	}

	var left Point
	if Orient2D(nodePoint, next.Point, nextNext.Point) == CCW {
		left = nextNext.Point
	} else {
		left = next.Point
	}

	bottom := left
	for {
		n, ok := s.front.Next(bottom)
		if !ok || bottom.Y < n.Point.Y {
			break
		}
		bottom = n.Point
	}
	if bottom == left {
		return
	}

	right := bottom
	for {
		n, ok := s.front.Next(right)
		if !ok || right.Y >= n.Point.Y {
			break
		}
		right = n.Point
	}
	if right == bottom {
		return
	}

	basin := &Basin{
		Left:       left,
		Right:      right,
		Width:      right.X - left.X,
		LeftHigher: left.Y > right.Y,
	}
	s.fillBasinReq(bottom, basin, observer)
}

// fillBasinReq recursively fills the basin from node outward until its
// shoulders are reached or it has become too shallow to continue.
func (s *Sweeper) fillBasinReq(node Point, basin *Basin, observer Observer) {
	if basin.completed(node) {
		return
	}

	s.fillOne(node, observer)

	prev, ok := s.front.Prev(node)
	if !ok {
		return
	}
	next, ok := s.front.Next(node)
	if !ok {
		return
	}

	if prev.Point == basin.Left && next.Point == basin.Right {
		return
	}

	var newNode Point
	switch {
	case prev.Point == basin.Left:
		nextNext, ok := s.front.Next(next.Point)
		if !ok {
			return
		}
		if Orient2D(node, next.Point, nextNext.Point) == CW {
			return
		}
		newNode = next.Point
	case next.Point == basin.Right:
		prevPrev, ok := s.front.Prev(prev.Point)
		if !ok {
			return
		}
		if Orient2D(node, prev.Point, prevPrev.Point) == CCW {
			return
		}
		newNode = prev.Point
	default:
		if prev.Point.Y < next.Point.Y {
			newNode = prev.Point
		} else {
			newNode = next.Point
		}
	}

	s.fillBasinReq(newNode, basin, observer)
}
