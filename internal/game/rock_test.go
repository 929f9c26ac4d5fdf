package game

import (
	"math"
	"testing"
)

func TestSpawnShape(t *testing.T) {
	rs := NewRockSystem(11)
	rs.Spawn(5, 1280, 800)

	if len(rs.Rocks) != 5 {
		t.Fatalf("spawned %d rocks, want 5", len(rs.Rocks))
	}
	for _, rock := range rs.Rocks {
		if rock.X < RockEdgePad || rock.X > 1280-RockEdgePad ||
			rock.Y < RockEdgePad || rock.Y > 800-RockEdgePad {
			t.Errorf("rock %d at (%v,%v) violates edge padding", rock.ID, rock.X, rock.Y)
		}
		n := len(rock.Segments)
		if n < 1+RockSatellitesMin || n > 1+RockSatellitesMax {
			t.Fatalf("rock %d has %d segments, want %d..%d", rock.ID, n, 1+RockSatellitesMin, 1+RockSatellitesMax)
		}
		core := rock.Segments[0]
		if core.DX != 0 || core.DY != 0 {
			t.Errorf("core segment should sit at the local origin")
		}
		if core.R < RockCoreRadiusMin || core.R > RockCoreRadiusMax {
			t.Errorf("core radius %v outside [%v,%v]", core.R, RockCoreRadiusMin, RockCoreRadiusMax)
		}
		for _, seg := range rock.Segments[1:] {
			dist := math.Hypot(seg.DX, seg.DY)
			if dist > 0.4*core.R {
				t.Errorf("satellite offset %v exceeds 0.4 core radius %v", dist, core.R)
			}
			if seg.R < 0.5*core.R || seg.R > 0.9*core.R {
				t.Errorf("satellite radius %v outside 0.5..0.9 of core %v", seg.R, core.R)
			}
			if want := dist + seg.R; rock.Bound < want-1e-9 {
				t.Errorf("bound %v smaller than segment reach %v", rock.Bound, want)
			}
		}
	}
}

func TestRotateAppliesConstantSpin(t *testing.T) {
	rs := NewRockSystem(3)
	rs.Rocks = []Rock{{ID: 0, Spin: 0.01}, {ID: 1, Spin: -0.02}}

	rs.Rotate()
	rs.Rotate()

	if got := rs.Rocks[0].Angle; math.Abs(got-0.02) > 1e-12 {
		t.Errorf("rock 0 angle = %v, want 0.02", got)
	}
	if got := rs.Rocks[1].Angle; math.Abs(got+0.04) > 1e-12 {
		t.Errorf("rock 1 angle = %v, want -0.04", got)
	}
}

func TestDestroyNearIsRotationInvariant(t *testing.T) {
	build := func(angle float64) (*RockSystem, *Rock) {
		rs := NewRockSystem(5)
		rs.Rocks = []Rock{{
			ID:    0,
			X:     400,
			Y:     300,
			Angle: angle,
			Segments: []Segment{
				{DX: 0, DY: 0, R: 70},
				{DX: 20, DY: 0, R: 40},
				{DX: 0, DY: 25, R: 45},
				{DX: -60, DY: -60, R: 35}, // outside the destruction radius
			},
		}}
		return rs, &rs.Rocks[0]
	}

	rsA, rockA := build(0)
	removedA := rsA.DestroyNear(rockA, 0, 0, 50)

	rsB, rockB := build(math.Pi / 2)
	removedB := rsB.DestroyNear(rockB, 0, 0, 50)

	if removedA != removedB {
		t.Fatalf("destruction differs under rotation: %d vs %d", removedA, removedB)
	}
	if removedA != 3 {
		t.Errorf("removed %d segments, want 3", removedA)
	}
	if len(rockA.Segments) != 1 || rockA.Segments[0].DX != -60 {
		t.Error("only the far satellite should survive")
	}
}

func TestDestroyNearRecomputesBound(t *testing.T) {
	rs := NewRockSystem(5)
	rs.Rocks = []Rock{{
		ID:       0,
		Segments: []Segment{{R: 60}, {DX: 24, DY: 0, R: 50}},
	}}
	rock := &rs.Rocks[0]
	rock.recomputeBound()
	if rock.Bound != 74 {
		t.Fatalf("initial bound = %v, want 74", rock.Bound)
	}

	rs.DestroyNear(rock, 24, 0, 10)
	if rock.Bound != 60 {
		t.Errorf("bound after destruction = %v, want 60", rock.Bound)
	}
}

func TestPrune(t *testing.T) {
	rs := NewRockSystem(5)
	rs.Rocks = []Rock{
		{ID: 0, Segments: []Segment{{R: 60}}},
		{ID: 1, Segments: nil},
	}

	if empty := rs.Prune(); empty {
		t.Fatal("registry with one surviving rock is not empty")
	}
	if len(rs.Rocks) != 1 || rs.Rocks[0].ID != 0 {
		t.Fatal("prune should drop only the hollow rock")
	}

	rs.Rocks[0].Segments = nil
	if empty := rs.Prune(); !empty {
		t.Error("prune should report the registry became empty")
	}
}

func TestByIDAfterDestruction(t *testing.T) {
	rs := NewRockSystem(5)
	rs.Spawn(3, 1280, 800)
	id := rs.Rocks[1].ID

	if rs.ByID(id) == nil {
		t.Fatal("live rock should resolve")
	}
	rs.Rocks[1].Segments = nil
	rs.Prune()
	if rs.ByID(id) != nil {
		t.Error("pruned rock must not resolve")
	}
}
