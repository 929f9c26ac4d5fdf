package game

import "math"

// SpawnRockBurst converts free water slots to rock debris radiating from an
// impact point. Returns the number of slots converted.
func (pp *ParticlePool) SpawnRockBurst(x, y, hue float64, count int) int {
	r := NewRand(hash2D(pp.seed^0x50C4B512, int(x), int(y)))
	spawned := 0
	for range count {
		i := pp.claim(false)
		if i < 0 {
			break
		}
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(0.8, 5.5)
		pp.Activate(i,
			x+r.RangeF(-4, 4), y+r.RangeF(-4, 4),
			math.Cos(ang)*spd, math.Sin(ang)*spd-r.RangeF(0, 1.2),
			r.RangeF(0.5, 1.0), hue+r.RangeF(-12, 12), KindRockDebris)
		spawned++
	}
	return spawned
}

// SpawnDeathBurst converts up to count slots to agent debris with random
// outward velocity. Near-expired agent debris qualifies as well as free
// water, so a death always reads as a full explosion.
func (pp *ParticlePool) SpawnDeathBurst(x, y, hue float64, count int) int {
	r := NewRand(hash2D(pp.seed^0xDEAD5EA, int(x), int(y)))
	spawned := 0
	for range count {
		i := pp.claim(true)
		if i < 0 {
			break
		}
		ang := r.RangeF(0, 2*math.Pi)
		spd := r.RangeF(0.5, 7.0)
		pp.Activate(i,
			x+r.RangeF(-6, 6), y+r.RangeF(-6, 6),
			math.Cos(ang)*spd, math.Sin(ang)*spd,
			r.RangeF(0.6, 1.0), hue+r.RangeF(-20, 20), KindAgentDebris)
		spawned++
	}
	return spawned
}

// SpawnTrail converts a single free slot to a faint, short-lived piece of
// agent debris near (x, y). No-op when the pool has no free water.
func (pp *ParticlePool) SpawnTrail(x, y, hue float64, r *Rand) {
	i := pp.claim(false)
	if i < 0 {
		return
	}
	pp.Activate(i,
		x+r.RangeF(-3, 3), y+r.RangeF(-3, 3),
		r.RangeF(-0.3, 0.3), r.RangeF(-0.1, 0.4),
		r.RangeF(0.1, 0.25), hue, KindAgentDebris)
}
