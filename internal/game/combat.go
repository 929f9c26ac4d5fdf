package game

import "math"

// resolveCombat runs the per-tick interaction pass, in order: charge
// bookkeeping, blast application, lethal-particle hits, pointer hover push,
// and rock collision. Rock rotation and the grid rebuild have already
// happened; the grid is read-only from here on.
func (w *World) resolveCombat() {
	w.Pointer.chargeTick(w.Audio)
	w.applyBlast()
	w.resolveParticles()
}

// applyBlast overrides the velocity of every water particle caught in an
// armed blast. Direction is the aim vector plus a small random cone spread;
// strong enough blasts also mark the water hot (lethal).
func (w *World) applyBlast() {
	b := &w.Pointer.Blast
	if !b.Armed {
		return
	}
	radius := BlastBaseRadius + b.Strength*BlastRadiusGain
	r2 := radius * radius
	aim := math.Atan2(b.DirY, b.DirX)
	speed := BlastMinSpeed + b.Strength*BlastSpeedGain
	hot := b.Strength > BlastHotMin
	r := NewRand(hash2D(w.Seed^0xB1A57, int(b.X), int(b.Y)))

	for i := range w.Pool.P {
		p := &w.Pool.P[i]
		if p.Kind != KindWater {
			continue
		}
		dx := p.X - b.X
		dy := p.Y - b.Y
		if dx*dx+dy*dy > r2 {
			continue
		}
		ang := aim + r.RangeF(-BlastSpread, BlastSpread)
		p.VX = math.Cos(ang) * speed
		p.VY = math.Sin(ang) * speed
		if hot {
			p.Life = 1.0
		}
	}
}

// resolveParticles walks the pool once for the remaining resolver steps:
// hot-particle damage, hover push, and sphere collision via the grid.
func (w *World) resolveParticles() {
	ptr := &w.Pointer
	for i := range w.Pool.P {
		p := &w.Pool.P[i]
		if p.Kind != KindWater {
			continue
		}

		if p.Life > 0 && p.VX*p.VX+p.VY*p.VY > MinDamageSpeedSq {
			w.damageJellies(p)
		}

		if !ptr.Charging {
			w.hoverPush(p, ptr)
		}

		w.collideRocks(p)
	}
}

// damageJellies tests a lethal particle against each living agent using two
// sphere proxies: a head ahead of the agent and a tail behind it. A head hit
// aligned with the agent's forward vector is a critical; tail hits are
// always standard. At most one agent takes damage per particle per tick.
func (w *World) damageJellies(p *Particle) {
	for i := range w.Jellies.Jellies {
		j := &w.Jellies.Jellies[i]
		if j.Dead {
			continue
		}
		fx, fy := j.Forward()

		hx := j.X + fx*HeadOffset*j.Size
		hy := j.Y + fy*HeadOffset*j.Size
		dx := p.X - hx
		dy := p.Y - hy
		hr := HeadRadius * j.Size
		if dx*dx+dy*dy < hr*hr {
			dmg := DamageHead
			if d := math.Hypot(dx, dy); d > 0.01 {
				if (dx/d)*fx+(dy/d)*fy > CritAlignment {
					dmg = DamageCritical
				}
			}
			w.hitJelly(j, p, dmg)
			return
		}

		tx := j.X - fx*TailOffset*j.Size
		ty := j.Y - fy*TailOffset*j.Size
		dx = p.X - tx
		dy = p.Y - ty
		tr := TailRadius * j.Size
		if dx*dx+dy*dy < tr*tr {
			w.hitJelly(j, p, DamageTail)
			return
		}
	}
}

func (w *World) hitJelly(j *Jelly, p *Particle, dmg float64) {
	j.HP.Damage(dmg)
	j.Stun = JellyHitStun
	if j.HP.IsDead() {
		j.Dead = true // removal and burst happen at end of tick
	}
	p.VX *= HitReflect
	p.VY *= HitReflect
	if w.Audio != nil {
		w.Audio.Hit()
	}
}

// hoverPush shoves water out of the idle pointer's radius and hands it a
// share of recent pointer motion, so dragging through water flings it.
func (w *World) hoverPush(p *Particle, ptr *Pointer) {
	dx := p.X - ptr.X
	dy := p.Y - ptr.Y
	d2 := dx*dx + dy*dy
	if d2 >= HoverRadius*HoverRadius || d2 < 0.0001 {
		return
	}
	d := math.Sqrt(d2)
	pen := (HoverRadius - d) / HoverRadius
	p.VX += dx / d * pen * 1.5
	p.VY += dy / d * pen * 1.5
	p.VX += ptr.VX * HoverFling * pen
	p.VY += ptr.VY * HoverFling * pen
}

// collideRocks resolves the particle against every sphere bucketed in its
// grid cell: push out to the surface along the contact normal, damp, then
// shove outward. A normal pointing generally up also gets a tangential
// nudge so water flows over the top of rocks instead of pooling.
func (w *World) collideRocks(p *Particle) {
	for _, s := range w.Grid.Query(p.X, p.Y) {
		dx := p.X - s.X
		dy := p.Y - s.Y
		d2 := dx*dx + dy*dy
		if d2 >= s.R*s.R {
			continue
		}
		d := math.Sqrt(d2)
		var nx, ny float64
		if d > 0.0001 {
			nx = dx / d
			ny = dy / d
		} else {
			nx, ny = 0, -1
		}
		p.X = s.X + nx*s.R
		p.Y = s.Y + ny*s.R
		p.VX *= RockContactDamp
		p.VY *= RockContactDamp
		p.VX += nx * RockContactPush
		p.VY += ny * RockContactPush
		if ny < -RockUpNormalMin {
			if p.VX >= 0 {
				p.VX += RockOverTopNudge
			} else {
				p.VX -= RockOverTopNudge
			}
		}
	}
}
