package game

import (
	"math"
	"testing"
)

func singleSegmentRock(x, y, r float64) Rock {
	rock := Rock{ID: 1, X: x, Y: y, Segments: []Segment{{R: r}}}
	rock.recomputeBound()
	return rock
}

func TestGridRebuildAndQuery(t *testing.T) {
	g := NewGrid(800, 600)
	g.Rebuild([]Rock{singleSegmentRock(300, 300, 60)})

	spheres := g.Query(300, 300)
	if len(spheres) != 1 {
		t.Fatalf("expected 1 sphere at rock centre, got %d", len(spheres))
	}
	if spheres[0].R != 60 {
		t.Errorf("sphere radius = %v, want 60", spheres[0].R)
	}

	if got := g.Query(700, 50); len(got) != 0 {
		t.Errorf("expected empty bucket far from the rock, got %d spheres", len(got))
	}
}

func TestGridQueryOutOfRange(t *testing.T) {
	g := NewGrid(800, 600)
	g.Rebuild([]Rock{singleSegmentRock(300, 300, 60)})

	if got := g.Query(-50, 300); got != nil {
		t.Error("query left of the play area should be empty")
	}
	if got := g.Query(300, 5000); got != nil {
		t.Error("query far below the play area should be empty")
	}
}

func TestGridClearsBetweenRebuilds(t *testing.T) {
	g := NewGrid(800, 600)
	g.Rebuild([]Rock{singleSegmentRock(300, 300, 60)})
	g.Rebuild(nil)

	if got := g.Query(300, 300); len(got) != 0 {
		t.Errorf("buckets must be cleared on rebuild, got %d spheres", len(got))
	}
}

func TestGridSphereSpansMultipleCells(t *testing.T) {
	g := NewGrid(800, 600)
	// Radius 90 at a cell corner: the bounding box overlaps four cells.
	g.Rebuild([]Rock{singleSegmentRock(200, 200, 90)})

	for _, pos := range [][2]float64{{150, 150}, {250, 150}, {150, 250}, {250, 250}} {
		if got := g.Query(pos[0], pos[1]); len(got) != 1 {
			t.Errorf("query(%v,%v) = %d spheres, want 1", pos[0], pos[1], len(got))
		}
	}
}

func TestGridRebuildAppliesRotation(t *testing.T) {
	rock := Rock{ID: 1, X: 400, Y: 300, Segments: []Segment{{DX: 150, R: 20}}, Angle: math.Pi / 2}
	g := NewGrid(800, 600)
	g.Rebuild([]Rock{rock})

	// (150, 0) rotated a quarter turn lands at (0, 150) relative to the rock.
	if got := g.Query(400, 450); len(got) != 1 {
		t.Errorf("expected rotated segment at (400,450), got %d spheres", len(got))
	}
	if got := g.Query(550, 300); len(got) != 0 {
		t.Errorf("unrotated position should be empty, got %d spheres", len(got))
	}
}

func TestGridResize(t *testing.T) {
	g := NewGrid(800, 600)
	if got := g.Query(1500, 300); got != nil {
		t.Error("position beyond the viewport should be out of range")
	}

	g.Resize(1600, 600)
	g.Rebuild([]Rock{singleSegmentRock(1500, 300, 60)})
	if got := g.Query(1500, 300); len(got) != 1 {
		t.Errorf("after resize, expected 1 sphere at (1500,300), got %d", len(got))
	}
}
