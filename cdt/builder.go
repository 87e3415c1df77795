package cdt

import "math"

// defaultBasinMaxAngle and defaultHoleFillMaxAngle mirror the literal
// constants the sweep's fill heuristics branch on (spec §4.10); they are
// exposed as BuildOptions so callers can retune fill aggressiveness
// without touching the algorithm.
const (
	defaultBasinMaxAngle    = 3 * math.Pi / 4
	defaultHoleFillMaxAngle = math.Pi / 2
	defaultFlipRecursionMax = 1000
)

type builderOptions struct {
	coverMargin        float64
	basinMaxAngle      float64
	holeFillMaxAngle   float64
	flipRecursionLimit int
}

// BuildOption configures a Builder before Build is called.
type BuildOption func(*builderOptions)

// WithCoverMargin sets the fraction of the input bounding box's width and
// height used to place the synthetic HEAD/TAIL super-triangle points
// (spec §4.2). Values <= 0 are ignored and the default of 0.30 is kept.
func WithCoverMargin(margin float64) BuildOption {
	return func(o *builderOptions) {
		if margin > 0 {
			o.coverMargin = margin
		}
	}
}

// WithBasinMaxAngle overrides the opening-angle threshold for basin
// detection (spec §4.10.3).
func WithBasinMaxAngle(angle float64) BuildOption {
	return func(o *builderOptions) { o.basinMaxAngle = angle }
}

// WithHoleFillMaxAngle overrides the angle threshold beyond which a
// front wedge is left unfilled as too open (spec §4.10.2).
func WithHoleFillMaxAngle(angle float64) BuildOption {
	return func(o *builderOptions) { o.holeFillMaxAngle = angle }
}

// WithFlipRecursionLimit bounds the depth of the edge-event flip walk,
// guarding against runaway recursion on pathological input.
func WithFlipRecursionLimit(n int) BuildOption {
	return func(o *builderOptions) {
		if n > 0 {
			o.flipRecursionLimit = n
		}
	}
}

// Builder accumulates an outer polygon, optional holes, and optional
// Steiner points, then produces a ready-to-run Sweeper (spec §6).
type Builder struct {
	outer []Point
	holes [][]Point
	extra []Point
	opts  builderOptions
}

// NewBuilder creates a Builder for the given outer polygon boundary,
// given as an ordered (but not necessarily closed) vertex loop.
func NewBuilder(outer []Point, opts ...BuildOption) *Builder {
	b := &Builder{
		outer: outer,
		opts: builderOptions{
			coverMargin:        coverMarginDefault,
			basinMaxAngle:      defaultBasinMaxAngle,
			holeFillMaxAngle:   defaultHoleFillMaxAngle,
			flipRecursionLimit: defaultFlipRecursionMax,
		},
	}
	for _, opt := range opts {
		opt(&b.opts)
	}
	return b
}

// AddHole adds one hole boundary loop, given as an ordered vertex loop.
func (b *Builder) AddHole(loop []Point) *Builder {
	b.holes = append(b.holes, loop)
	return b
}

// AddHoles adds several hole boundary loops at once.
func (b *Builder) AddHoles(loops [][]Point) *Builder {
	b.holes = append(b.holes, loops...)
	return b
}

// AddSteinerPoint adds a single unconstrained interior point.
func (b *Builder) AddSteinerPoint(p Point) *Builder {
	b.extra = append(b.extra, p)
	return b
}

// AddSteinerPoints adds several unconstrained interior points at once.
func (b *Builder) AddSteinerPoints(pts []Point) *Builder {
	b.extra = append(b.extra, pts...)
	return b
}

// Build validates and finalizes the accumulated geometry and returns a
// Sweeper ready to run. Returns ErrEmptyOuterPolygon if the outer
// boundary has fewer than three vertices, or ErrDuplicatePoint if any
// constraint edge has coincident endpoints.
func (b *Builder) Build() (*Sweeper, error) {
	if len(b.outer) < 3 {
		return nil, ErrEmptyOuterPolygon
	}

	points := NewPointStore()
	loops := make([][]PointId, 0, 1+len(b.holes))

	outerIds := make([]PointId, len(b.outer))
	for i, p := range b.outer {
		outerIds[i] = points.AddPoint(p)
	}
	loops = append(loops, outerIds)

	for _, hole := range b.holes {
		ids := make([]PointId, len(hole))
		for i, p := range hole {
			ids[i] = points.AddPoint(p)
		}
		loops = append(loops, ids)
	}

	for _, p := range b.extra {
		points.AddPoint(p)
	}

	if err := points.Finalize(b.opts.coverMargin); err != nil {
		return nil, err
	}

	edges, err := NewEdgeStore(loops, points)
	if err != nil {
		return nil, err
	}

	return newSweeper(points, edges, b.opts), nil
}
