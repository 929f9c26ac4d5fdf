package game

import (
	"math"
	"testing"
)

func testJelly(x, y, heading float64) Jelly {
	return Jelly{
		ID:          1,
		X:           x,
		Y:           y,
		Heading:     heading,
		TargetAngle: heading,
		BaseSpeed:   JellyIdleSpeed,
		Size:        1.0,
		HP:          NewHealth(JellyMaxHP),
		TargetRock:  -1,
	}
}

func TestAttackDestroysSegmentAndStuns(t *testing.T) {
	rocks := NewRockSystem(2)
	rocks.Rocks = []Rock{singleSegmentRock(400, 300, 60)}

	js := NewJellySystem(2)
	j := testJelly(400, 370, -math.Pi/2) // 70px below the segment centre, heading at it
	j.TargetRock = rocks.Rocks[0].ID
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(2000, 800, 600, 2)
	js.Update(rocks, pool, NewNoiseField(2), nil, nil, 800, 600, 1)

	if got := len(rocks.Rocks[0].Segments); got != 0 {
		t.Fatalf("attack should destroy the only segment, %d remain", got)
	}
	a := &js.Jellies[0]
	if a.Stun != JellyAttackStun {
		t.Errorf("stun = %d, want %d", a.Stun, JellyAttackStun)
	}
	if a.Speed >= 0 {
		t.Errorf("speed = %v, want negative recoil", a.Speed)
	}
	if a.SwimPhase != 0 {
		t.Errorf("swim phase = %v, want reset to 0", a.SwimPhase)
	}

	// The impact burst spent pool slots on rock debris.
	debris := 0
	for i := range pool.P {
		if pool.P[i].Kind == KindRockDebris {
			debris++
		}
	}
	if debris == 0 {
		t.Error("a landed attack must emit a rock debris burst")
	}
}

func TestAttackOnlyChecksLockedTarget(t *testing.T) {
	rocks := NewRockSystem(2)
	rocks.Rocks = []Rock{
		singleSegmentRock(400, 370, 60), // adjacent, but not the target
		singleSegmentRock(40, 40, 60),
	}
	rocks.Rocks[0].ID = 0
	rocks.Rocks[1].ID = 1

	js := NewJellySystem(2)
	j := testJelly(400, 300, math.Pi/2)
	j.TargetRock = 1 // locked onto the far rock
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(100, 800, 600, 2)
	js.Update(rocks, pool, NewNoiseField(2), nil, nil, 800, 600, 1)

	if len(rocks.Rocks[0].Segments) != 1 {
		t.Error("non-target rock must not be attacked even when closer")
	}
	if js.Jellies[0].Stun != 0 {
		t.Error("no attack landed, agent should not be stunned")
	}
}

func TestTargetReacquiredWhenGone(t *testing.T) {
	rocks := NewRockSystem(2)
	rocks.Rocks = []Rock{singleSegmentRock(600, 500, 60)}
	rocks.Rocks[0].ID = 7

	js := NewJellySystem(2)
	j := testJelly(100, 100, 0)
	j.TargetRock = 99 // destroyed rock
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(100, 800, 600, 2)
	js.Update(rocks, pool, NewNoiseField(2), nil, nil, 800, 600, 1)

	if got := js.Jellies[0].TargetRock; got != 7 {
		t.Errorf("target = %d, want re-acquired rock 7", got)
	}
}

func TestStunnedAgentDriftsAndCannotAct(t *testing.T) {
	rocks := NewRockSystem(2)
	rocks.Rocks = []Rock{singleSegmentRock(400, 330, 60)}

	js := NewJellySystem(2)
	j := testJelly(400, 300, math.Pi/2) // in attack range if it were active
	j.TargetRock = rocks.Rocks[0].ID
	j.Stun = 5
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(100, 800, 600, 2)
	js.Update(rocks, pool, NewNoiseField(2), nil, nil, 800, 600, 1)

	a := &js.Jellies[0]
	if a.Stun != 4 {
		t.Errorf("stun = %d, want 4", a.Stun)
	}
	if a.Y != 300-JellyStunRise {
		t.Errorf("stunned agent should drift up by %v, Y = %v", JellyStunRise, a.Y)
	}
	if len(rocks.Rocks[0].Segments) != 1 {
		t.Error("stunned agent must not attack")
	}
}

func TestEdgeReentryReassignsHeading(t *testing.T) {
	js := NewJellySystem(2)
	j := testJelly(950, 300, 0) // far beyond the right edge, heading out
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(100, 800, 600, 2)
	js.Update(NewRockSystem(2), pool, NewNoiseField(2), nil, nil, 800, 600, 1)

	a := &js.Jellies[0]
	if math.Abs(angDiff(a.Heading, math.Pi)) > 1e-3 {
		t.Errorf("heading = %v, want π (reassigned toward centre)", a.Heading)
	}
	if a.TargetAngle != a.Heading {
		t.Error("target angle should follow the reassigned heading")
	}
}

func TestPointerRepulsion(t *testing.T) {
	js := NewJellySystem(2)
	j := testJelly(450, 300, 0)
	ptr := &Pointer{X: 400, Y: 300}

	js.repel(&j, ptr)
	if j.X <= 450 {
		t.Error("agent should be pushed away from the pointer")
	}

	charged := testJelly(450, 300, 0)
	ptr.Charging = true
	js.repel(&charged, ptr)
	if charged.X != 450 {
		t.Error("charging pointer must not repel")
	}

	stunned := testJelly(450, 300, 0)
	stunned.Stun = 3
	ptr.Charging = false
	js.repel(&stunned, ptr)
	if stunned.X != 450 {
		t.Error("stunned agents are not repelled")
	}
}

func TestRemoveDeadEmitsBoundedBurst(t *testing.T) {
	js := NewJellySystem(2)
	j := testJelly(400, 300, 0)
	j.Dead = true
	j.Hue = 300
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(MaxParticles, 800, 600, 2)
	removed := js.RemoveDead(pool, nil)

	if removed != 1 || len(js.Jellies) != 0 {
		t.Fatalf("dead agent should be removed, removed=%d left=%d", removed, len(js.Jellies))
	}
	debris := 0
	for i := range pool.P {
		if pool.P[i].Kind == KindAgentDebris {
			debris++
		}
	}
	if debris != JellyDeathBurst {
		t.Errorf("death burst converted %d slots, want %d", debris, JellyDeathBurst)
	}
}

func TestRemoveDeadBurstCappedByPool(t *testing.T) {
	js := NewJellySystem(2)
	j := testJelly(400, 300, 0)
	j.Dead = true
	js.Jellies = []Jelly{j}

	pool := NewParticlePool(50, 800, 600, 2)
	js.RemoveDead(pool, nil)

	debris := 0
	for i := range pool.P {
		if pool.P[i].Kind == KindAgentDebris {
			debris++
		}
	}
	if debris != 50 {
		t.Errorf("burst should consume every eligible slot, got %d of 50", debris)
	}
}
