package cdt

// Observer receives notifications as the sweep progresses, for
// diagnostics, animation, or step-by-step debugging (spec §6). All
// methods are optional to implement meaningfully; NoopObserver supplies
// do-nothing defaults so callers only override what they need.
type Observer interface {
	PointEvent(p PointId, s *Sweeper)
	EdgeEvent(e Edge, s *Sweeper)
	WillLegalize(t TriangleId, s *Sweeper)
	LegalizeStep(t TriangleId, s *Sweeper)
	Legalized(t TriangleId, s *Sweeper)
	SweepDone(s *Sweeper)
	Finalized(s *Sweeper)
}

// NoopObserver implements Observer with no-op methods. Embed it in a
// partial observer to avoid implementing every method.
type NoopObserver struct{}

func (NoopObserver) PointEvent(PointId, *Sweeper)   {}
func (NoopObserver) EdgeEvent(Edge, *Sweeper)       {}
func (NoopObserver) WillLegalize(TriangleId, *Sweeper) {}
func (NoopObserver) LegalizeStep(TriangleId, *Sweeper) {}
func (NoopObserver) Legalized(TriangleId, *Sweeper)    {}
func (NoopObserver) SweepDone(*Sweeper)                {}
func (NoopObserver) Finalized(*Sweeper)                {}
