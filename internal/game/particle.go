package game

type ParticleKind uint8

const (
	KindWater ParticleKind = iota
	KindAgentDebris
	KindRockDebris
)

// Particle is one slot in the pool. Slots are identified by index, never by
// pointer, and are re-typed in place: debris reverts to water on expiry by a
// full field overwrite of the same slot.
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Life meaning depends on kind: for water >0 means "hot" (carries blast
	// damage until it bleeds off), for debris it is remaining lifetime.
	Life float64

	// Hue is the drift heading in degrees for water, a fixed tint for debris.
	Hue float64

	Kind ParticleKind
}

// ParticlePool owns every simulated point. Capacity is fixed at construction;
// there is no per-particle allocation, only index reuse.
type ParticlePool struct {
	P    []Particle
	seed uint64
	rng  *Rand

	// cursor rotates free-slot scans so bursts don't always consume the
	// low-index water.
	cursor int
}

func NewParticlePool(capacity int, w, h float64, seed uint64) *ParticlePool {
	if capacity <= 0 {
		capacity = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	pp := &ParticlePool{
		P:    make([]Particle, capacity),
		seed: seed,
		rng:  NewRand(seed),
	}
	for i := range pp.P {
		pp.resetToWater(i, w, h)
	}
	return pp
}

// IsFree reports whether slot i can be claimed for debris: water with no
// remaining blast charge. Debris is never reclaimed before expiry.
func (pp *ParticlePool) IsFree(i int) bool {
	p := &pp.P[i]
	return p.Kind == KindWater && p.Life <= 0
}

// Activate overwrites slot i. Indices are valid by construction.
func (pp *ParticlePool) Activate(i int, x, y, vx, vy, life, hue float64, kind ParticleKind) {
	pp.P[i] = Particle{X: x, Y: y, VX: vx, VY: vy, Life: life, Hue: hue, Kind: kind}
}

// resetToWater recycles an expired slot as fresh ambient water at a random
// position. Velocity is near-zero; the noise field takes over from there.
func (pp *ParticlePool) resetToWater(i int, w, h float64) {
	pp.P[i] = Particle{
		X:  pp.rng.RangeF(0, w),
		Y:  pp.rng.RangeF(0, h),
		VX: pp.rng.RangeF(-0.2, 0.2),
		VY: pp.rng.RangeF(-0.2, 0.2),
	}
}

// claim returns the index of a reusable slot, or -1 when none is available
// this tick. With allowDying set, agent debris close to expiry also
// qualifies — death bursts may cannibalise old trails.
func (pp *ParticlePool) claim(allowDying bool) int {
	n := len(pp.P)
	for scanned := 0; scanned < n; scanned++ {
		i := pp.cursor
		pp.cursor++
		if pp.cursor >= n {
			pp.cursor = 0
		}
		if pp.IsFree(i) {
			return i
		}
		if allowDying && pp.P[i].Kind == KindAgentDebris && pp.P[i].Life < 0.1 {
			return i
		}
	}
	return -1
}
