package game

import "math"

const radToDeg = 180.0 / math.Pi

// Update advances every slot by one tick: kind-specific forces and life
// decay, then shared integration, water friction and toroidal wrap.
// Expired debris is re-typed to water in place, never removed.
func (pp *ParticlePool) Update(w, h, t float64, noise *NoiseField) {
	for i := range pp.P {
		p := &pp.P[i]

		switch p.Kind {
		case KindWater:
			// Two decorrelated noise channels: the Y sample reads a far
			// offset of the same field so X/Y drift independently.
			nx := noise.At(p.X*WaterNoiseFq, p.Y*WaterNoiseFq, t)
			ny := noise.At(p.X*WaterNoiseFq+37.7, p.Y*WaterNoiseFq+91.3, t)
			p.VX += nx * WaterDrift
			p.VY += ny * WaterDrift
			if p.Life > 0 {
				p.Life -= WaterHotDecay
			}
			// Displayed colour always reflects the current drift direction.
			p.Hue = math.Atan2(p.VY, p.VX) * radToDeg

		case KindAgentDebris:
			p.VY += AgentDebrisSink
			p.VX *= AgentDebrisDrag
			p.VY *= AgentDebrisDrag
			p.Life -= AgentDebrisDecay
			if p.Life <= 0 {
				pp.resetToWater(i, w, h)
				continue
			}

		case KindRockDebris:
			p.VY += RockDebrisSink
			p.VX *= RockDebrisDrag
			p.VY *= RockDebrisDrag
			p.Life -= RockDebrisDecay
			if p.Life <= 0 {
				pp.resetToWater(i, w, h)
				continue
			}
		}

		p.X += p.VX
		p.Y += p.VY
		if p.Kind == KindWater {
			p.VX *= WaterFriction
			p.VY *= WaterFriction
		}
		wrap(p, w, h)
	}
}

// wrap teleports a particle crossing the margin to the opposite edge,
// preserving velocity. Applies to every kind.
func wrap(p *Particle, w, h float64) {
	if p.X < -WrapMargin {
		p.X = w + WrapMargin
	} else if p.X > w+WrapMargin {
		p.X = -WrapMargin
	}
	if p.Y < -WrapMargin {
		p.Y = h + WrapMargin
	} else if p.Y > h+WrapMargin {
		p.Y = -WrapMargin
	}
}
