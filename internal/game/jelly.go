package game

import "math"

// Jelly is one autonomous agent. It locks onto a rock by identity, swims at
// it with a pulsed stroke, and chews segments off it until somebody kills it.
type Jelly struct {
	ID          int
	X, Y        float64
	Heading     float64
	TargetAngle float64
	BaseSpeed   float64
	Speed       float64
	Size        float64
	NoisePhase  float64
	SwimPhase   float64
	Hue         float64
	HP          Health
	Stun        int // ticks remaining; the agent cannot act while > 0
	TargetRock  int // rock ID, re-resolved every tick; -1 when unset
	Dead        bool
}

// Forward returns the agent's unit heading vector.
func (j *Jelly) Forward() (float64, float64) {
	return math.Cos(j.Heading), math.Sin(j.Heading)
}

// Pulse is the propulsion strength for the current swim phase: sin² over the
// first half of the cycle, zero over the second — thrust, then glide.
func (j *Jelly) Pulse() float64 {
	ph := math.Mod(j.SwimPhase, 2*math.Pi)
	if ph >= math.Pi {
		return 0
	}
	s := math.Sin(ph)
	return s * s
}

type JellySystem struct {
	Jellies []Jelly
	seed    uint64
	rng     *Rand
	nextID  int
}

func NewJellySystem(seed uint64) *JellySystem {
	if seed == 0 {
		seed = 1
	}
	return &JellySystem{seed: seed, rng: NewRand(seed)}
}

// Spawn creates count agents at random screen-edge points, facing inward.
func (js *JellySystem) Spawn(count int, w, h float64) {
	for range count {
		var x, y float64
		switch js.rng.Intn(4) {
		case 0:
			x, y = js.rng.RangeF(0, w), -JellyEdgeSlack/2
		case 1:
			x, y = js.rng.RangeF(0, w), h+JellyEdgeSlack/2
		case 2:
			x, y = -JellyEdgeSlack/2, js.rng.RangeF(0, h)
		default:
			x, y = w+JellyEdgeSlack/2, js.rng.RangeF(0, h)
		}
		heading := math.Atan2(h/2-y, w/2-x)
		js.Jellies = append(js.Jellies, Jelly{
			ID:          js.nextID,
			X:           x,
			Y:           y,
			Heading:     heading,
			TargetAngle: heading,
			BaseSpeed:   JellyIdleSpeed * js.rng.RangeF(0.8, 1.2),
			Size:        js.rng.RangeF(0.85, 1.3),
			NoisePhase:  js.rng.RangeF(0, 100),
			SwimPhase:   js.rng.RangeF(0, 2*math.Pi),
			Hue:         js.rng.RangeF(260, 340),
			HP:          NewHealth(JellyMaxHP),
			TargetRock:  -1,
		})
		js.nextID++
	}
}

// Update runs one tick of steering and combat for every living agent.
// Rock rotation and the grid rebuild have already happened this tick.
func (js *JellySystem) Update(rocks *RockSystem, pool *ParticlePool, noise *NoiseField, ptr *Pointer, audio AudioSink, w, h, t float64) {
	for i := range js.Jellies {
		j := &js.Jellies[i]
		if j.Dead {
			continue
		}

		if j.Stun > 0 {
			j.Stun--
			j.X += js.rng.RangeF(-0.5, 0.5)
			j.Y -= JellyStunRise
			js.repel(j, ptr)
			continue
		}

		target := rocks.ByID(j.TargetRock)
		if target == nil && len(rocks.Rocks) > 0 {
			target = &rocks.Rocks[js.rng.Intn(len(rocks.Rocks))]
			j.TargetRock = target.ID
		}

		// Steering: the tracked direction lags the true bearing, and the
		// heading lags the tracked direction. Two independent gains keep
		// turns smooth instead of snapping.
		if target != nil {
			bearing := math.Atan2(target.Y-j.Y, target.X-j.X)
			j.TargetAngle += angDiff(j.TargetAngle, bearing) * JellyBearingGain
		}
		j.TargetAngle += noise.At(j.NoisePhase, 0.37, t*0.006) * JellyWanderGain * 0.1
		j.Heading += angDiff(j.Heading, j.TargetAngle) * JellyHeadingGain

		j.SwimPhase += JellySwimRate
		pulse := j.Pulse()
		j.Speed += (j.BaseSpeed + pulse*JellyBurstSpeed - j.Speed) * JellySpeedGain

		fx, fy := j.Forward()
		j.X += fx * j.Speed
		j.Y += fy * j.Speed

		if pulse > JellyTrailMin {
			js.emitTrail(j, pool, fx, fy)
		}

		// An agent far off-screen gets its heading reassigned to point back
		// at the centre; it is never reflected.
		if j.X < -JellyEdgeSlack || j.X > w+JellyEdgeSlack ||
			j.Y < -JellyEdgeSlack || j.Y > h+JellyEdgeSlack {
			j.Heading = math.Atan2(h/2-j.Y, w/2-j.X)
			j.TargetAngle = j.Heading
		}

		js.repel(j, ptr)

		if target != nil {
			js.attack(j, target, rocks, pool, audio, fx, fy)
		}
	}
}

// repel pushes an un-stunned agent away from an idle (non-charging) pointer,
// proportional to penetration of the repulsion radius.
func (js *JellySystem) repel(j *Jelly, ptr *Pointer) {
	if ptr == nil || ptr.Charging || j.Stun > 0 {
		return
	}
	dx := j.X - ptr.X
	dy := j.Y - ptr.Y
	d := math.Hypot(dx, dy)
	if d <= 0.01 || d >= RepulseRadius {
		return
	}
	f := (RepulseRadius - d) * RepulseGain
	j.X += dx / d * f
	j.Y += dy / d * f
}

func (js *JellySystem) emitTrail(j *Jelly, pool *ParticlePool, fx, fy float64) {
	tx := j.X - fx*12*j.Size
	ty := j.Y - fy*12*j.Size
	pool.SpawnTrail(tx, ty, j.Hue, js.rng)
}

// attack tests the locked target rock only — other rocks may be closer, but
// the agent stays committed. At most one landed attack per agent per tick.
func (js *JellySystem) attack(j *Jelly, target *Rock, rocks *RockSystem, pool *ParticlePool, audio AudioSink, fx, fy float64) {
	touch := JellyTouchRadius * j.Size
	hx := j.X + fx*JellyHeadDist*j.Size
	hy := j.Y + fy*JellyHeadDist*j.Size
	sin, cos := math.Sincos(target.Angle)

	for si := range target.Segments {
		seg := &target.Segments[si]
		sx := target.X + seg.DX*cos - seg.DY*sin
		sy := target.Y + seg.DX*sin + seg.DY*cos
		dx := sx - j.X
		dy := sy - j.Y
		reach := seg.R + touch
		if dx*dx+dy*dy >= reach*reach {
			continue
		}

		pool.SpawnRockBurst(hx, hy, target.Hue, RockHitBurst)
		rocks.DestroyNear(target, seg.DX, seg.DY, RockDestroyRadius)
		j.Stun = JellyAttackStun
		j.Speed = JellyAttackRecoil
		j.SwimPhase = 0
		if audio != nil {
			audio.RockHit()
		}
		return
	}
}

// RemoveDead converts every agent flagged dead this tick into a debris burst
// and drops it from the registry. Returns the number removed.
func (js *JellySystem) RemoveDead(pool *ParticlePool, audio AudioSink) int {
	removed := 0
	kept := js.Jellies[:0]
	for i := range js.Jellies {
		j := &js.Jellies[i]
		if !j.Dead {
			kept = append(kept, *j)
			continue
		}
		pool.SpawnDeathBurst(j.X, j.Y, j.Hue, JellyDeathBurst)
		if audio != nil {
			audio.Explosion()
		}
		removed++
	}
	js.Jellies = kept
	return removed
}
