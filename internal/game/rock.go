package game

import "math"

// Segment is one rigid sphere in a rock's local (pre-rotation) frame.
type Segment struct {
	DX, DY float64
	R      float64
}

// Rock is a destructible cluster of segments rotating as a whole around its
// world position. Segments only ever shrink in number; a rock with none left
// is eliminated by Prune.
type Rock struct {
	ID       int
	X, Y     float64
	Segments []Segment
	Bound    float64 // max local distance+radius over segments, for culling/sprites
	Angle    float64
	Spin     float64 // rad per tick, constant
	Hue      float64
}

// SegmentWorld returns the world-space centre of segment si at the rock's
// current rotation.
func (r *Rock) SegmentWorld(si int) (float64, float64) {
	sin, cos := math.Sincos(r.Angle)
	seg := &r.Segments[si]
	return r.X + seg.DX*cos - seg.DY*sin, r.Y + seg.DX*sin + seg.DY*cos
}

func (r *Rock) recomputeBound() {
	bound := 0.0
	for i := range r.Segments {
		seg := &r.Segments[i]
		if d := math.Hypot(seg.DX, seg.DY) + seg.R; d > bound {
			bound = d
		}
	}
	r.Bound = bound
}

// RockSystem owns all rock and segment data.
type RockSystem struct {
	Rocks  []Rock
	seed   uint64
	nextID int
}

func NewRockSystem(seed uint64) *RockSystem {
	return &RockSystem{seed: seed}
}

// Spawn places count rocks at random positions respecting an edge padding.
// Each is one core sphere plus 3-5 satellites hugging it.
func (rs *RockSystem) Spawn(count int, w, h float64) {
	r := NewRand(rs.seed ^ uint64(rs.nextID+1)*0x9E3779B185EBCA87)
	for range count {
		core := r.RangeF(RockCoreRadiusMin, RockCoreRadiusMax)
		segs := make([]Segment, 0, 1+RockSatellitesMax)
		segs = append(segs, Segment{R: core})
		for range r.Range(RockSatellitesMin, RockSatellitesMax) {
			ang := r.RangeF(0, 2*math.Pi)
			dist := r.RangeF(0, 0.4*core)
			segs = append(segs, Segment{
				DX: math.Cos(ang) * dist,
				DY: math.Sin(ang) * dist,
				R:  core * r.RangeF(0.5, 0.9),
			})
		}
		rock := Rock{
			ID:       rs.nextID,
			X:        r.RangeF(RockEdgePad, w-RockEdgePad),
			Y:        r.RangeF(RockEdgePad, h-RockEdgePad),
			Segments: segs,
			Angle:    r.RangeF(0, 2*math.Pi),
			Spin:     r.RangeF(-RockSpinMax, RockSpinMax),
			Hue:      r.RangeF(0, 360),
		}
		rock.recomputeBound()
		rs.Rocks = append(rs.Rocks, rock)
		rs.nextID++
	}
}

// Rotate advances every rock's rotation by its constant angular rate.
func (rs *RockSystem) Rotate() {
	for i := range rs.Rocks {
		rs.Rocks[i].Angle += rs.Rocks[i].Spin
	}
}

// ByID resolves a rock identity to the live entity, nil when destroyed.
// Agents hold IDs, never rock pointers — rocks can vanish under them.
func (rs *RockSystem) ByID(id int) *Rock {
	for i := range rs.Rocks {
		if rs.Rocks[i].ID == id {
			return &rs.Rocks[i]
		}
	}
	return nil
}

// DestroyNear removes every segment within radius of the local-space point
// (lx, ly). Local-space comparison makes destruction rotation-invariant.
// Returns the number of segments removed.
func (rs *RockSystem) DestroyNear(rock *Rock, lx, ly, radius float64) int {
	r2 := radius * radius
	kept := rock.Segments[:0]
	removed := 0
	for _, seg := range rock.Segments {
		dx := seg.DX - lx
		dy := seg.DY - ly
		if dx*dx+dy*dy <= r2 {
			removed++
			continue
		}
		kept = append(kept, seg)
	}
	rock.Segments = kept
	if removed > 0 {
		rock.recomputeBound()
	}
	return removed
}

// Prune drops rocks with no segments left. Returns true if the registry
// became empty (the Lost condition when it happens mid-game).
func (rs *RockSystem) Prune() bool {
	kept := rs.Rocks[:0]
	for i := range rs.Rocks {
		if len(rs.Rocks[i].Segments) > 0 {
			kept = append(kept, rs.Rocks[i])
		}
	}
	rs.Rocks = kept
	return len(rs.Rocks) == 0
}
