package cdt

import "sort"

// Point is a 2-D vertex. Equality is value-equality.
type Point struct {
	X, Y float64
}

// PointId is a stable, dense, non-negative identifier for a Point.
// Identifiers are assigned in insertion order by PointStore.
type PointId int

// NilPoint is never a valid identifier produced by PointStore.
const NilPoint PointId = -1

// PointStore owns the vertex set and assigns stable identifiers.
//
// Build-phase: AddPoint appends a vertex and returns its id. Finalize
// computes the bounding box, appends the two synthetic super-triangle
// points HEAD and TAIL, and produces the y-sorted sweep order. The store
// is immutable after Finalize.
type PointStore struct {
	points   []Point
	head     PointId
	tail     PointId
	ySorted  []PointId // real points only, ascending (y, x)
	final    bool
}

// NewPointStore creates an empty store ready to accept points.
func NewPointStore() *PointStore {
	return &PointStore{head: NilPoint, tail: NilPoint}
}

// AddPoint appends a vertex and returns its identifier.
//
// Panics if called after Finalize.
func (s *PointStore) AddPoint(p Point) PointId {
	if s.final {
		panic("cdt: AddPoint called after PointStore.Finalize")
	}
	id := PointId(len(s.points))
	s.points = append(s.points, p)
	return id
}

// Len returns the number of points stored, including HEAD/TAIL once
// Finalize has run.
func (s *PointStore) Len() int {
	return len(s.points)
}

// Get returns the coordinates for id, including HEAD and TAIL.
func (s *PointStore) Get(id PointId) Point {
	return s.points[id]
}

// Head returns the identifier of the synthetic lower-left super-triangle
// point. Valid only after Finalize.
func (s *PointStore) Head() PointId { return s.head }

// Tail returns the identifier of the synthetic lower-right super-triangle
// point. Valid only after Finalize.
func (s *PointStore) Tail() PointId { return s.tail }

// YSorted returns the real-point identifiers in sweep order: ascending y,
// ties broken by ascending x. Valid only after Finalize.
func (s *PointStore) YSorted() []PointId { return s.ySorted }

// coverMarginDefault is the default bounding-box inflation fraction used
// to place HEAD and TAIL (spec §3: "inflated by 30% on each axis").
const coverMarginDefault = 0.30

// Finalize appends HEAD and TAIL, derived from the bounding box of the
// real points inflated by margin on each axis and placed below ymin, and
// computes the y-sorted sweep order. It is an error to call Finalize
// twice or with zero points.
func (s *PointStore) Finalize(margin float64) error {
	if s.final {
		return errAlreadyFinalized
	}
	if len(s.points) == 0 {
		return ErrEmptyOuterPolygon
	}

	minX, minY := s.points[0].X, s.points[0].Y
	maxX, maxY := s.points[0].X, s.points[0].Y
	for _, p := range s.points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	dx := (maxX - minX) * margin
	dy := (maxY - minY) * margin
	if dx == 0 {
		dx = margin
	}
	if dy == 0 {
		dy = margin
	}

	s.head = s.AddPoint(Point{X: minX - dx, Y: minY - dy})
	s.tail = s.AddPoint(Point{X: maxX + dx, Y: minY - dy})

	realCount := int(s.head)
	ids := make([]PointId, realCount)
	for i := 0; i < realCount; i++ {
		ids[i] = PointId(i)
	}
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := s.points[ids[i]], s.points[ids[j]]
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	s.ySorted = ids
	s.final = true
	return nil
}
