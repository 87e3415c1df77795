package cdt

import "testing"

func TestBuilderConvexQuad(t *testing.T) {
	outer := []Point{{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 100, Y: 400}, {X: 0, Y: 400}}
	sweeper, err := NewBuilder(outer).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tris, err := sweeper.Triangulate(nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles for a convex quad, got %d", len(tris))
	}
	if !sweeper.VerifyDelaunay() {
		t.Fatalf("expected a locally Delaunay result, illegal edges: %v", sweeper.IllegalEdges())
	}
}

func TestBuilderSquareWithHole(t *testing.T) {
	outer := []Point{{X: -10, Y: -10}, {X: 810, Y: -10}, {X: 810, Y: 810}, {X: -10, Y: 810}}
	hole := []Point{{X: 400, Y: 400}, {X: 600, Y: 400}, {X: 600, Y: 600}, {X: 400, Y: 600}}

	sweeper, err := NewBuilder(outer).AddHole(hole).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tris, err := sweeper.Triangulate(nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 8 {
		t.Fatalf("expected 8 triangles for a square with a square hole, got %d", len(tris))
	}
}

func TestBuilderSquareWithSteinerPoints(t *testing.T) {
	outer := []Point{{X: 0, Y: 0}, {X: 800, Y: 0}, {X: 800, Y: 800}, {X: 0, Y: 800}}
	steiner := []Point{
		{X: 100, Y: 100}, {X: 300, Y: 150}, {X: 500, Y: 300},
		{X: 200, Y: 600}, {X: 650, Y: 700},
	}

	sweeper, err := NewBuilder(outer).AddSteinerPoints(steiner).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tris, err := sweeper.Triangulate(nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	want := 4 + 2*len(steiner) - 2
	if len(tris) != want {
		t.Fatalf("expected %d triangles (n + 2s - 2), got %d", want, len(tris))
	}
}

func TestBuilderDegenerateSteinerOnEdge(t *testing.T) {
	outer := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	sweeper, err := NewBuilder(outer).AddSteinerPoint(Point{X: 5, Y: 0}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tris, err := sweeper.Triangulate(nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) != 4 {
		t.Fatalf("expected 4 triangles fanning from the on-edge point, got %d", len(tris))
	}
}

func TestBuilderThinBowtieConstraint(t *testing.T) {
	outer := []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}
	hole := []Point{{X: 10, Y: 0.001}, {X: 90, Y: 0.001}, {X: 50, Y: 40}}

	sweeper, err := NewBuilder(outer).AddHole(hole).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tris, err := sweeper.Triangulate(nil)
	if err != nil {
		t.Fatalf("Triangulate: %v", err)
	}
	if len(tris) == 0 {
		t.Fatalf("expected a non-empty triangulation")
	}
}

func TestBuilderEmptyOuterPolygon(t *testing.T) {
	_, err := NewBuilder([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}).Build()
	if err != ErrEmptyOuterPolygon {
		t.Fatalf("expected ErrEmptyOuterPolygon, got %v", err)
	}
}

func TestBuilderOptionsOverrideDefaults(t *testing.T) {
	b := NewBuilder(
		[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		WithCoverMargin(0.5),
		WithBasinMaxAngle(2.0),
		WithHoleFillMaxAngle(1.0),
		WithFlipRecursionLimit(50),
	)
	if b.opts.coverMargin != 0.5 {
		t.Fatalf("expected coverMargin override, got %v", b.opts.coverMargin)
	}
	if b.opts.flipRecursionLimit != 50 {
		t.Fatalf("expected flipRecursionLimit override, got %v", b.opts.flipRecursionLimit)
	}
}
