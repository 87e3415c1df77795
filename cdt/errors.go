package cdt

import "errors"

// Input-validation errors: caller-visible, reportable from Builder.Build.
var (
	ErrEmptyOuterPolygon = errors.New("cdt: outer polygon has fewer than three vertices")
	ErrDuplicatePoint    = errors.New("cdt: duplicate input point")
	ErrDegeneratePolygon = errors.New("cdt: degenerate or self-intersecting polygon loop")

	errAlreadyFinalized = errors.New("cdt: point store already finalized")
)

// ErrCollinearConstraint reports unsupported geometry: a constraint edge
// passing through three mutually collinear input points with no
// intermediate vertex (spec §1 Non-goals, §4.12). Returned from
// Sweeper.Triangulate rather than panicking, since it is caller-reachable
// through ordinary (if unsupported) input rather than an internal bug.
var ErrCollinearConstraint = errors.New("cdt: constraint edge passes through collinear points (unsupported)")

// TriangulationError reports an internal invariant violation: a
// condition the algorithm guarantees never occurs in a correct
// implementation (spec §4.12, §7). These are not recoverable; the
// sweep driver panics with a *TriangulationError rather than returning
// one, matching spec §7's "abort... panic-like failure" directive.
type TriangulationError struct {
	Op  string
	Msg string
}

func (e *TriangulationError) Error() string {
	return "cdt: invariant violation in " + e.Op + ": " + e.Msg
}

func invariantf(op, msg string) {
	panic(&TriangulationError{Op: op, Msg: msg})
}
